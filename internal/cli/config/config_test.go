package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nncomponent.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Assemble.Annotate)
	assert.False(t, cfg.Assemble.SkipUnrecognized)
	assert.Equal(t, 30*time.Second, cfg.Loader.Timeout)
	assert.Equal(t, "text", cfg.Report.Format)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
assemble:
  skip_unrecognized: true
  root_path: order
loader:
  allow_http: false
  timeout: 5s
report:
  format: html
  title: Orders
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Assemble.SkipUnrecognized)
	assert.Equal(t, "order", cfg.Assemble.RootPath)
	assert.False(t, cfg.Loader.AllowHTTP)
	assert.Equal(t, 5*time.Second, cfg.Loader.Timeout)
	assert.Equal(t, "html", cfg.Report.Format)
	assert.Equal(t, "Orders", cfg.Report.Title)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("NNCOMPONENT_ASSEMBLE_SKIP_UNRECOGNIZED", "true")
	path := writeConfig(t, "log:\n  level: info\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Assemble.SkipUnrecognized)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"level":     "log:\n  level: loud\n",
		"format":    "report:\n  format: pdf\n",
		"root path": "assemble:\n  root_path: \"[].x\"\n",
		"timeout":   "loader:\n  timeout: -1s\n",
	}
	for name, body := range cases {
		body := body
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			require.Error(t, err)
		})
	}
}

func TestConfig_Logger(t *testing.T) {
	cfg := &Config{Log: LogConfig{Level: "error", Development: true}, Report: ReportConfig{Format: "text"}}
	logger, err := cfg.Logger()
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}
