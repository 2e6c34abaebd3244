package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"vicheka.dev/internal/config"
)

func TestInitWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yml")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"init", "--config", path})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Wrote "+path)

	cfg, err := config.Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().API.BaseURL, cfg.API.BaseURL)

	rootCmd.SetArgs([]string{"init", "--config", path})
	assert.Error(t, rootCmd.Execute())
}

func TestNewLogger(t *testing.T) {
	cfg := config.DefaultConfig()

	logger, err := newLogger(cfg)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	verbose = true
	t.Cleanup(func() { verbose = false })
	logger, err = newLogger(cfg)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	verbose = false
	cfg.LogLevel = "loud"
	_, err = newLogger(cfg)
	assert.Error(t, err)
}
