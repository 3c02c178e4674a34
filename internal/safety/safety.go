package safety

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	ErrInvalidName = errors.New("invalid path component")
	ErrEscapesRoot = errors.New("path escapes root")
)

// ValidateName checks that name is a single path segment: non-empty,
// not "." or "..", without separators or NUL bytes, not absolute and,
// on Windows, not a reserved device name.
func ValidateName(name string) error {
	return validateName(name, runtime.GOOS)
}

func validateName(name, goos string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: name must not contain path separators: %q", ErrInvalidName, name)
	}
	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("%w: name must not contain NUL: %q", ErrInvalidName, name)
	}
	if filepath.IsAbs(name) {
		return fmt.Errorf("%w: absolute paths are not allowed: %q", ErrInvalidName, name)
	}
	if goos == "windows" && isReserved(name) {
		return fmt.Errorf("%w: reserved name: %q", ErrInvalidName, name)
	}
	return nil
}

// isReserved reports whether name is a Windows device name, with or without extension.
func isReserved(name string) bool {
	base := strings.ToUpper(name)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	base = strings.TrimRight(base, " ")
	switch base {
	case "CON", "PRN", "AUX", "NUL":
		return true
	}
	if len(base) == 4 && (strings.HasPrefix(base, "COM") || strings.HasPrefix(base, "LPT")) {
		return base[3] >= '1' && base[3] <= '9'
	}
	return false
}

// SafeJoin joins root and parts and makes sure the result stays inside root.
func SafeJoin(root string, parts ...string) (string, error) {
	p := filepath.Join(append([]string{root}, parts...)...)
	cleanRoot := filepath.Clean(root)
	cleanP := filepath.Clean(p)

	rel, err := filepath.Rel(cleanRoot, cleanP)
	if err != nil {
		return "", err
	}
	relSl := filepath.ToSlash(rel)
	if relSl == ".." || strings.HasPrefix(relSl, "../") {
		return "", fmt.Errorf("%w: %s", ErrEscapesRoot, p)
	}
	return cleanP, nil
}
