package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadWithEnvironment(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "scripts", cfg.Root)
	assert.Equal(t, []string{"*.sh"}, cfg.Patterns)
	assert.Equal(t, "", cfg.Shell)
	assert.Equal(t, "", cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := LoadWithEnvironment(map[string]string{
		"RRUN_ROOT":      "/opt/ops",
		"RRUN_PATTERNS":  "*.sh,*.bash",
		"RRUN_SHELL":     "bash -e",
		"RRUN_LOG_FILE":  "/tmp/rrun.log",
		"RRUN_LOG_LEVEL": "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, Config{
		Root:     "/opt/ops",
		Patterns: []string{"*.sh", "*.bash"},
		Shell:    "bash -e",
		LogFile:  "/tmp/rrun.log",
		LogLevel: "debug",
	}, cfg)
}

func TestValidate(t *testing.T) {
	assert.Error(t, Config{Patterns: []string{"*.sh"}}.Validate())
	assert.Error(t, Config{Root: "scripts"}.Validate())
}
