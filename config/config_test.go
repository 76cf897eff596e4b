package config

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/taglog/core"
	"github.com/philipp01105/taglog/formatter"
	"github.com/philipp01105/taglog/sink"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "debug", cfg.Level)
		require.Equal(t, LineEndingLF, cfg.LineEnding)
		require.Equal(t, ColorAuto, cfg.Color)
		require.Empty(t, cfg.File)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("TAGLOG_LEVEL", "warn")
		t.Setenv("TAGLOG_LINE_ENDING", "CRLF")
		t.Setenv("TAGLOG_COLOR", "never")
		t.Setenv("TAGLOG_FILE", "/logs/device.log")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, core.WarnLevel, cfg.Threshold())
		require.Equal(t, "/logs/device.log", cfg.File)
		require.Equal(t, formatter.CRLF, cfg.Formatter(false).LineEnding)
	})

	t.Run("invalid values", func(t *testing.T) {
		t.Setenv("TAGLOG_LEVEL", "chatty")
		t.Setenv("TAGLOG_COLOR", "rainbow")

		_, err := Load()
		require.ErrorIs(t, err, ErrEnvVariablesNotValid)
		require.ErrorContains(t, err, "TAGLOG_LEVEL")
		require.ErrorContains(t, err, "TAGLOG_COLOR")
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "info", LineEnding: "lf", Color: "auto"}, false},
		{"numeric level", Config{Level: "99", LineEnding: "crlf", Color: "always"}, false},
		{"bad level", Config{Level: "loud", LineEnding: "lf", Color: "auto"}, true},
		{"bad line ending", Config{Level: "info", LineEnding: "cr", Color: "auto"}, true},
		{"bad color", Config{Level: "info", LineEnding: "lf", Color: "yes"}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(&tt.cfg)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrEnvVariablesNotValid)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer

	require.True(t, (&Config{Color: ColorAlways}).UseColor(&buf))
	require.False(t, (&Config{Color: ColorNever}).UseColor(&buf))
	require.False(t, (&Config{Color: ColorAuto}).UseColor(&buf))
}

func TestBuild(t *testing.T) {
	fs := afero.NewMemMapFs()
	console := sink.NewMemory()

	cfg := &Config{Level: "info", LineEnding: "crlf", Color: ColorAlways, File: "/logs/device.log"}
	l, closeFn, err := cfg.Build(fs, console)
	require.NoError(t, err)
	require.Equal(t, 2, l.Outputs())
	require.Equal(t, core.InfoLevel, l.Level())

	l.Warn("NET", "link down")
	l.Debug("NET", "hidden")
	require.NoError(t, closeFn())

	require.Contains(t, console.String(), "\x1b[33m")
	require.Contains(t, console.String(), "[W] [NET] link down\x1b[0m\r\n")

	data, err := afero.ReadFile(fs, "/logs/device.log")
	require.NoError(t, err)
	require.NotContains(t, string(data), "\x1b[")
	require.Contains(t, string(data), "[W] [NET] link down\r\n")
	require.NotContains(t, string(data), "hidden")
}

func TestBuild_NoConsole(t *testing.T) {
	cfg := &Config{Level: "debug", LineEnding: "lf", Color: ColorAuto}
	l, closeFn, err := cfg.Build(afero.NewMemMapFs(), nil)
	require.NoError(t, err)
	require.Equal(t, 0, l.Outputs())
	require.NoError(t, closeFn())
}

func TestBuild_FileError(t *testing.T) {
	cfg := &Config{Level: "debug", LineEnding: "lf", Color: ColorNever, File: "/logs/device.log"}
	_, _, err := cfg.Build(afero.NewReadOnlyFs(afero.NewMemMapFs()), nil)
	require.Error(t, err)
}
