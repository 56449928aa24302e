package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("verbose")
	assert.ErrorContains(t, err, `"verbose"`)
}

func TestInit_TextWithComponent(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	Init(Config{Level: slog.LevelInfo, Format: "text", Output: &buf})

	ForComponent("lookup").Info("read failed", "file", "STANDARDS.md")
	ForComponent("lookup").Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "component=lookup")
	assert.Contains(t, out, "file=STANDARDS.md")
	assert.NotContains(t, out, "hidden")
}

func TestInit_JSON(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	Init(Config{Level: slog.LevelDebug, Format: "json", Output: &buf})

	ForComponent("issues").Debug("filing", "number", 20)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &rec))
	assert.Equal(t, "issues", rec["component"])
	assert.Equal(t, "filing", rec["msg"])
	assert.EqualValues(t, 20, rec["number"])
}
