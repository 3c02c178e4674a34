package config

import (
	"os"
	"strconv"
	"strings"

	"scaffold/internal/fsops"
)

// Input formats accepted by Config.Format.
const (
	FormatAuto = "auto"
	FormatTree = "tree"
	FormatYAML = "yaml"
)

// Config holds every setting of a run.
type Config struct {
	InPath   string // "" uses the built-in layout, "-" reads stdin
	OutDir   string
	Format   string
	DryRun   bool
	Print    bool
	Check    bool
	Quiet    bool
	Verbose  bool
	DirPerm  os.FileMode
	FilePerm os.FileMode
	Comment  string
	Logger   LoggerConfig
}

// LoggerConfig configures the slog logger.
type LoggerConfig struct {
	Level  string // debug, info, warn, error
	Format string // text, json
	Output string // stderr, stdout or a file path
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() *Config {
	return &Config{
		OutDir:   ".",
		Format:   FormatAuto,
		DirPerm:  fsops.DefaultDirPerm,
		FilePerm: fsops.DefaultFilePerm,
		Comment:  fsops.DefaultComment,
		Logger: LoggerConfig{
			Level:  "warn",
			Format: "text",
			Output: "stderr",
		},
	}
}

// ApplyEnvOverrides maps SCAFFOLD_* env vars to config fields.
// Malformed permissions are kept as-is so Validate can report them.
func ApplyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SCAFFOLD_IN"); v != "" {
		cfg.InPath = v
	}
	if v := os.Getenv("SCAFFOLD_OUT"); v != "" {
		cfg.OutDir = v
	}
	if v := os.Getenv("SCAFFOLD_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("SCAFFOLD_DIR_PERM"); v != "" {
		if p, err := ParsePerm(v, cfg.DirPerm); err == nil {
			cfg.DirPerm = p
		} else {
			cfg.DirPerm = invalidPerm
		}
	}
	if v := os.Getenv("SCAFFOLD_FILE_PERM"); v != "" {
		if p, err := ParsePerm(v, cfg.FilePerm); err == nil {
			cfg.FilePerm = p
		} else {
			cfg.FilePerm = invalidPerm
		}
	}
	if v := os.Getenv("SCAFFOLD_COMMENT"); v != "" {
		cfg.Comment = v
	}
	if v := os.Getenv("SCAFFOLD_LOG_LEVEL"); v != "" {
		cfg.Logger.Level = v
	}
	if v := os.Getenv("SCAFFOLD_LOG_FORMAT"); v != "" {
		cfg.Logger.Format = v
	}
	if v := os.Getenv("SCAFFOLD_LOG_OUTPUT"); v != "" {
		cfg.Logger.Output = v
	}
}

// invalidPerm has bits outside os.ModePerm and is rejected by Validate.
const invalidPerm os.FileMode = 1 << 31

// ParsePerm parses an octal mode such as 0755, 755 or 0o755.
// An empty string yields def.
func ParsePerm(s string, def os.FileMode) (os.FileMode, error) {
	ss := strings.TrimSpace(s)
	if ss == "" {
		return def, nil
	}
	if !strings.HasPrefix(ss, "0") {
		ss = "0" + ss
	}
	// base 0 understands 0755 and 0o755
	u, err := strconv.ParseUint(ss, 0, 32)
	if err != nil {
		return 0, err
	}
	return os.FileMode(u), nil
}
