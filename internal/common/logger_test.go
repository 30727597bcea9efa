package common

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    slog.Level
		wantErr bool
	}{
		{name: "debug", input: "debug", want: slog.LevelDebug},
		{name: "info", input: "info", want: slog.LevelInfo},
		{name: "empty defaults to info", input: "", want: slog.LevelInfo},
		{name: "warn upper case", input: "WARN", want: slog.LevelWarn},
		{name: "error", input: "error", want: slog.LevelError},
		{name: "unknown", input: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewLogger(&buf, slog.LevelInfo, "json")
	require.NoError(t, err)

	logger.Info("generated", "length", 8)
	assert.Contains(t, buf.String(), `"msg":"generated"`)
	assert.Contains(t, buf.String(), `"length":8`)

	_, err = NewLogger(&buf, slog.LevelInfo, "xml")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLogHelpers(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	require.NoError(t, SetupLogger(&buf, slog.LevelInfo, "json"))

	LogError(errors.New("boom"), "generation failed", Fields{"length": 8})
	LogWarn(errors.New("no display"), "copy failed", nil)
	LogDebug("hidden", Fields{"length": 3})

	out := buf.String()
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"msg":"generation failed"`)
	assert.Contains(t, out, `"error":"boom"`)
	assert.Contains(t, out, `"length":8`)
	assert.Contains(t, out, `"level":"WARN"`)
	assert.NotContains(t, out, "hidden")
}

func TestUserError(t *testing.T) {
	inner := errors.New("boom")
	err := NewUserError("Could not copy", inner)

	assert.Equal(t, "Could not copy: boom", err.Error())
	assert.ErrorIs(t, err, inner)

	bare := NewUserError("Nothing to do", nil)
	assert.Equal(t, "Nothing to do", bare.Error())
}
