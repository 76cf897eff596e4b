package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/afero"

	"github.com/philipp01105/taglog/core"
	"github.com/philipp01105/taglog/formatter"
	"github.com/philipp01105/taglog/logger"
	"github.com/philipp01105/taglog/sink"
)

var (
	ErrEnvVariablesNotValid = errors.New("environment variables not valid")
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Line ending names
const (
	LineEndingLF   = "lf"
	LineEndingCRLF = "crlf"
)

type Config struct {
	Level      string `env:"TAGLOG_LEVEL" envDefault:"debug"`
	LineEnding string `env:"TAGLOG_LINE_ENDING" envDefault:"lf"`
	Color      string `env:"TAGLOG_COLOR" envDefault:"auto"`
	File       string `env:"TAGLOG_FILE"`
}

// Load parses and validates the configuration from the environment
func Load() (*Config, error) {
	var envVars Config
	if err := env.Parse(&envVars); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, err.Error())
	}

	if err := Validate(&envVars); err != nil {
		return nil, err
	}
	return &envVars, nil
}

// Validate checks every field and reports all problems at once
func Validate(cfg *Config) error {
	envError := make([]string, 0)

	if _, err := core.ParseLevel(cfg.Level); err != nil {
		envError = append(envError, "TAGLOG_LEVEL is not a valid level")
	}

	switch strings.ToLower(cfg.LineEnding) {
	case LineEndingLF, LineEndingCRLF:
	default:
		envError = append(envError, "TAGLOG_LINE_ENDING must be lf or crlf")
	}

	switch strings.ToLower(cfg.Color) {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		envError = append(envError, "TAGLOG_COLOR must be auto, always or never")
	}

	if len(envError) > 0 {
		return fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, strings.Join(envError, ", "))
	}
	return nil
}

// Threshold returns the configured level. An unparsable value yields
// DebugLevel; call Validate first to reject it.
func (c *Config) Threshold() core.Level {
	level, err := core.ParseLevel(c.Level)
	if err != nil {
		return core.DebugLevel
	}
	return level
}

// UseColor reports whether lines written to w should carry ANSI colors
func (c *Config) UseColor(w io.Writer) bool {
	switch strings.ToLower(c.Color) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return sink.IsTerminal(w)
	}
}

// Formatter returns the line formatter for the configuration
func (c *Config) Formatter(color bool) *formatter.LineFormatter {
	ending := formatter.LF
	if strings.ToLower(c.LineEnding) == LineEndingCRLF {
		ending = formatter.CRLF
	}
	return formatter.NewLineFormatter(formatter.Config{
		LineEnding:   ending,
		DisableColor: !color,
	})
}

// Build creates a Logger writing to console (when not nil) and to the
// configured file on fs (when set). Files never receive color
// sequences. The returned close function releases the file sink; the
// console stays open.
func (c *Config) Build(fs afero.Fs, console io.Writer) (*logger.Logger, func() error, error) {
	closeFn := func() error { return nil }

	color := console != nil && c.UseColor(console)
	if f, ok := console.(*os.File); ok {
		console = sink.Console(f)
	}

	l := logger.NewBuilder().
		WithLevel(c.Threshold()).
		WithFormatter(c.Formatter(color)).
		Build()

	if console != nil {
		l.AddOutput(console)
	}

	if c.File != "" {
		f, err := sink.OpenFile(fs, c.File)
		if err != nil {
			return nil, nil, err
		}
		l.AddOutput(sink.StripColor(f))
		closeFn = f.Close
	}

	return l, closeFn, nil
}
