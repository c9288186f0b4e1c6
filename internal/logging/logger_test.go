package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, lvl)

	lvl, err = ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)

	_, err = ParseLevel("loud")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestFileSink(t *testing.T) {
	t.Setenv(LevelEnv, "")
	path := filepath.Join(t.TempDir(), "courselab.log")
	cfg := DefaultConfig()
	cfg.Level = "info"
	cfg.File = path

	logger, flush, err := New(cfg)
	require.NoError(t, err)
	logger.Debugw("hidden")
	logger.Infow("pushed", "value", 7)
	require.NoError(t, flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "pushed", rec["msg"])
	assert.Equal(t, "INFO", rec["level"])
	assert.EqualValues(t, 7, rec["value"])
}

func TestEnvOverridesLevel(t *testing.T) {
	t.Setenv(LevelEnv, "nonsense")
	_, _, err := New(DefaultConfig())
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestInitReplacesDefault(t *testing.T) {
	t.Setenv(LevelEnv, "")
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "x.log")
	require.NoError(t, Init(Config{Level: "error", File: path}))
	Warnf("dropped")
	Errorf("kept %d", 1)
	require.NoError(t, Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), "kept 1")
}
