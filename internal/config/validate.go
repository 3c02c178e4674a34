package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Validate checks cfg and returns a *multierror.Error listing every problem,
// or nil when cfg is usable.
func Validate(cfg *Config) error {
	var result *multierror.Error
	add := func(format string, args ...any) {
		result = multierror.Append(result, fmt.Errorf(format, args...))
	}

	if cfg.OutDir == "" {
		add("out dir must not be empty")
	}
	switch cfg.Format {
	case FormatAuto, FormatTree, FormatYAML:
	default:
		add("format must be one of auto, tree, yaml; got %q", cfg.Format)
	}
	if cfg.DirPerm == 0 || cfg.DirPerm&^os.ModePerm != 0 {
		add("dir perm must be a permission mode between 0001 and 0777, got %#o", uint32(cfg.DirPerm))
	}
	if cfg.FilePerm == 0 || cfg.FilePerm&^os.ModePerm != 0 {
		add("file perm must be a permission mode between 0001 and 0777, got %#o", uint32(cfg.FilePerm))
	}
	switch {
	case cfg.Comment == "":
		// fsops would silently fall back to "// ".
		add("comment must not be empty")
	case strings.ContainsAny(cfg.Comment, "\r\n"):
		add("comment must be a single line")
	}
	if cfg.Print && cfg.DryRun {
		add("print and dry run are mutually exclusive")
	}
	switch strings.ToLower(cfg.Logger.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		add("logger.level must be debug, info, warn or error; got %q", cfg.Logger.Level)
	}
	switch strings.ToLower(cfg.Logger.Format) {
	case "text", "json":
	default:
		add("logger.format must be text or json; got %q", cfg.Logger.Format)
	}

	if result != nil {
		result.ErrorFormat = listFormat
	}
	return result.ErrorOrNil()
}

func listFormat(errs []error) string {
	var b strings.Builder
	b.WriteString("invalid configuration:")
	for _, err := range errs {
		b.WriteString("\n  ")
		b.WriteString(err.Error())
	}
	return b.String()
}
