package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/collide/internal/config"
)

func parse(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&logPath, "log", config.DefaultLogPath, "")
	addInputFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(parse(t))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestLoadConfigPresetThenFlags(t *testing.T) {
	cfg, err := loadConfig(parse(t, "--preset", "heavy_light", "--v2", "-1"))
	require.NoError(t, err)
	assert.Equal(t, 20.0, cfg.Particles.Mass1)
	assert.Equal(t, 3.0, cfg.Particles.Velocity1)
	assert.Equal(t, -1.0, cfg.Particles.Velocity2)
}

func TestLoadConfigFileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lab.yaml")
	data := "particles:\n  mass1: 2\n  velocity1: 1\nlog_path: lab.csv\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := loadConfig(parse(t, "--config", path, "--m1", "3"))
	require.NoError(t, err)
	assert.Equal(t, 3.0, cfg.Particles.Mass1)
	assert.Equal(t, 1.0, cfg.Particles.Velocity1)
	assert.Equal(t, config.DefaultMass2, cfg.Particles.Mass2)
	assert.Equal(t, "lab.csv", cfg.LogPath)

	cfg, err = loadConfig(parse(t, "--config", path, "--log", "other.csv"))
	require.NoError(t, err)
	assert.Equal(t, "other.csv", cfg.LogPath)
}

func TestLoadConfigRejectsBadInput(t *testing.T) {
	_, err := loadConfig(parse(t, "--m1", "0"))
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = loadConfig(parse(t, "--preset", "nope"))
	assert.ErrorContains(t, err, "unknown preset")

	_, err = loadConfig(parse(t, "--config", filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)
}
