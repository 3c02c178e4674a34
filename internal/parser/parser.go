// Package parser reads scaffold descriptions from tree(1)-like text or YAML.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"

	"scaffold/internal/safety"
	"scaffold/internal/tree"
)

// entry is one parsed line before nesting is resolved.
type entry struct {
	name  string
	dir   bool
	depth int
	line  int
}

// ParseFile reads path from fsys and picks the format by extension:
// .yaml/.yml is YAML, anything else is tree text.
func ParseFile(fsys afero.Fs, path string) (tree.Root, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return tree.Root{}, err
	}
	defer f.Close()

	if IsYAML(path) {
		return ParseYAML(f)
	}
	return Parse(f)
}

// IsYAML reports whether path has a YAML extension.
func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Parse reads tree-like text and returns the described root.
// Both box drawing (├──/└──) and ASCII (|--/`--) markers are accepted.
// A node is a folder if it ends with "/" or if the next line is deeper.
func Parse(r io.Reader) (tree.Root, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024), 1024*1024)

	var root string
	var entries []entry
	lineNum := 0

	for sc.Scan() {
		lineNum++
		raw := strings.TrimRight(sc.Text(), "\r\n")
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		// First non-empty line is the root.
		if root == "" {
			rootName := strings.TrimSuffix(line, "/")
			if err := safety.ValidateName(rootName); err != nil {
				return tree.Root{}, fmt.Errorf("line %d: invalid root name: %w", lineNum, err)
			}
			root = rootName
			continue
		}

		depth, name, ok := parseTreeLine(raw)
		if !ok {
			// tree(1) ends with "N directories, M files".
			if isTreeSummary(line) {
				continue
			}
			return tree.Root{}, fmt.Errorf("line %d: not a tree line: %q", lineNum, raw)
		}

		name, isDir := stripTypeSuffix(name)

		if err := safety.ValidateName(name); err != nil {
			return tree.Root{}, fmt.Errorf("line %d: %w", lineNum, err)
		}

		entries = append(entries, entry{
			name:  name,
			dir:   isDir,
			depth: depth,
			line:  lineNum,
		})
	}
	if err := sc.Err(); err != nil {
		return tree.Root{}, err
	}
	if root == "" {
		return tree.Root{}, fmt.Errorf("no root found")
	}

	// Second pass: a node followed by a deeper line is a folder.
	for i := range entries {
		if !entries[i].dir && i+1 < len(entries) && entries[i+1].depth > entries[i].depth {
			entries[i].dir = true
		}
	}

	children, _, err := nest(entries, 0, 0)
	if err != nil {
		return tree.Root{}, err
	}
	return tree.New(root, children...), nil
}

// nest builds the nodes at depth starting at entries[i] and returns the index
// of the first entry that does not belong to this level.
func nest(entries []entry, i, depth int) ([]tree.Node, int, error) {
	var nodes []tree.Node
	for i < len(entries) {
		e := entries[i]
		if e.depth < depth {
			break
		}
		if e.depth > depth {
			return nil, i, fmt.Errorf("line %d: invalid nesting: %q at depth %d, expected %d",
				e.line, e.name, e.depth, depth)
		}
		i++
		if !e.dir {
			nodes = append(nodes, tree.File(e.name))
			continue
		}
		children, next, err := nest(entries, i, depth+1)
		if err != nil {
			return nil, next, err
		}
		nodes = append(nodes, tree.Folder(e.name, children...))
		i = next
	}
	return nodes, i, nil
}

// parseTreeLine returns the depth and name of a tree line.
func parseTreeLine(line string) (int, string, bool) {
	markers := []string{"├── ", "└── ", "|-- ", "`-- ", "+-- "}
	idx, used := findMarker(line, markers)
	if idx == -1 {
		// Same markers without the trailing space.
		idx, used = findMarker(line, []string{"├──", "└──", "|--", "`--", "+--"})
	}
	if idx == -1 {
		return 0, "", false
	}

	depth := countDepth(line[:idx])
	name := strings.TrimSpace(line[idx+len(used):])
	return depth, name, true
}

// findMarker returns the leftmost occurrence of any marker.
func findMarker(line string, markers []string) (int, string) {
	idx := -1
	used := ""
	for _, m := range markers {
		if i := strings.Index(line, m); i != -1 && (idx == -1 || i < idx) {
			idx = i
			used = m
		}
	}
	return idx, used
}

// stripTypeSuffix removes the classify marks of tree -F. A trailing "/" means
// a folder; "*", "=", "|" and "@" are dropped, as is a symlink's " -> target".
func stripTypeSuffix(name string) (string, bool) {
	if i := strings.Index(name, " -> "); i >= 0 {
		name = strings.TrimRight(name[:i], " ")
	}
	if strings.HasSuffix(name, "/") {
		return strings.TrimSuffix(name, "/"), true
	}
	if n := len(name); n > 1 && strings.ContainsRune("*=|@", rune(name[n-1])) {
		name = name[:n-1]
	}
	return name, false
}

// countDepth turns the indent prefix into a level: box drawing glyphs, '|'
// and the no-break spaces tree(1) pads with count as columns, every 4 columns
// is one level.
func countDepth(prefix string) int {
	s := prefix
	for _, r := range []string{"│", "└", "├", "─", "|", "\u00a0"} {
		s = strings.ReplaceAll(s, r, " ")
	}
	return utf8.RuneCountInString(s) / 4
}

func isTreeSummary(line string) bool {
	s := strings.ToLower(line)
	return strings.Contains(s, "director") && strings.Contains(s, "file")
}
