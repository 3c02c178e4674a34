package config

import (
	"errors"
	"os"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, Validate(cfg))
	assert.Equal(t, ".", cfg.OutDir)
	assert.Equal(t, "", cfg.InPath)
	assert.Equal(t, os.FileMode(0o755), cfg.DirPerm)
	assert.Equal(t, os.FileMode(0o644), cfg.FilePerm)
	assert.Equal(t, "// ", cfg.Comment)
	assert.Equal(t, "warn", cfg.Logger.Level)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("SCAFFOLD_IN", "layout.yaml")
	t.Setenv("SCAFFOLD_OUT", "/tmp/out")
	t.Setenv("SCAFFOLD_FORMAT", "yaml")
	t.Setenv("SCAFFOLD_DIR_PERM", "700")
	t.Setenv("SCAFFOLD_FILE_PERM", "0o600")
	t.Setenv("SCAFFOLD_COMMENT", "# ")
	t.Setenv("SCAFFOLD_LOG_LEVEL", "debug")
	t.Setenv("SCAFFOLD_LOG_FORMAT", "json")
	t.Setenv("SCAFFOLD_LOG_OUTPUT", "stdout")

	cfg := Defaults()
	ApplyEnvOverrides(cfg)
	require.NoError(t, Validate(cfg))

	assert.Equal(t, "layout.yaml", cfg.InPath)
	assert.Equal(t, "/tmp/out", cfg.OutDir)
	assert.Equal(t, FormatYAML, cfg.Format)
	assert.Equal(t, os.FileMode(0o700), cfg.DirPerm)
	assert.Equal(t, os.FileMode(0o600), cfg.FilePerm)
	assert.Equal(t, "# ", cfg.Comment)
	assert.Equal(t, LoggerConfig{Level: "debug", Format: "json", Output: "stdout"}, cfg.Logger)
}

func TestApplyEnvOverridesBadPerm(t *testing.T) {
	t.Setenv("SCAFFOLD_DIR_PERM", "rwx")

	cfg := Defaults()
	ApplyEnvOverrides(cfg)
	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dir perm")
}

func TestParsePerm(t *testing.T) {
	tests := []struct {
		in      string
		want    os.FileMode
		wantErr bool
	}{
		{"0755", 0o755, false},
		{"755", 0o755, false},
		{"0o700", 0o700, false},
		{" 644 ", 0o644, false},
		{"", 0o640, false},
		{"999", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		got, err := ParsePerm(tt.in, 0o640)
		if tt.wantErr {
			assert.Error(t, err, "ParsePerm(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParsePerm(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParsePerm(%q)", tt.in)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Defaults()
	cfg.OutDir = ""
	cfg.Format = "xml"
	cfg.DirPerm = 0
	cfg.FilePerm = os.ModeDir | 0o644
	cfg.Comment = "a\nb"
	cfg.Print = true
	cfg.DryRun = true
	cfg.Logger.Level = "loud"
	cfg.Logger.Format = "xml"

	err := Validate(cfg)
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 8)
	assert.Contains(t, err.Error(), "invalid configuration:\n  out dir must not be empty")
	assert.Contains(t, err.Error(), `format must be one of auto, tree, yaml; got "xml"`)
}

func TestValidateRejectsEmptyComment(t *testing.T) {
	cfg := Defaults()
	cfg.Comment = ""

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "comment must not be empty")
}
