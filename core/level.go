package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidLevel is returned by ParseLevel for unknown level names
var ErrInvalidLevel = errors.New("invalid level")

// Level represents the severity of a log call. Lower values are more
// severe; a Logger emits a call when its level is at or below the
// configured threshold.
type Level int8

const (
	// NoneLevel is the lowest value and is rendered without a code
	NoneLevel Level = iota
	// ErrorLevel for error messages
	ErrorLevel
	// WarnLevel for warning messages
	WarnLevel
	// InfoLevel for general informational messages
	InfoLevel
	// DebugLevel for detailed debugging information (default threshold)
	DebugLevel
)

// ANSI escape sequences used to color a line
const (
	ColorReset  = "\x1b[0m"
	ColorRed    = "\x1b[31m"
	ColorYellow = "\x1b[33m"
	ColorGreen  = "\x1b[32m"
	ColorBlue   = "\x1b[34m"
)

var levelColors = [...]string{
	NoneLevel:  ColorReset,
	ErrorLevel: ColorRed,
	WarnLevel:  ColorYellow,
	InfoLevel:  ColorGreen,
	DebugLevel: ColorBlue,
}

var levelCodes = [...]byte{
	NoneLevel:  ' ',
	ErrorLevel: 'E',
	WarnLevel:  'W',
	InfoLevel:  'I',
	DebugLevel: 'D',
}

var levelNames = [...]string{
	NoneLevel:  "NONE",
	ErrorLevel: "ERROR",
	WarnLevel:  "WARN",
	InfoLevel:  "INFO",
	DebugLevel: "DEBUG",
}

// Valid reports whether l lies within [NoneLevel, DebugLevel]
func (l Level) Valid() bool {
	return l >= NoneLevel && l <= DebugLevel
}

// String returns the string representation of the level
func (l Level) String() string {
	if !l.Valid() {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// Color returns the ANSI color prefix for the level. Out-of-range levels
// get the reset sequence.
func (l Level) Color() string {
	if !l.Valid() {
		return ColorReset
	}
	return levelColors[l]
}

// Code returns the single character written between brackets for the
// level. Out-of-range levels get '?'.
func (l Level) Code() byte {
	if !l.Valid() {
		return '?'
	}
	return levelCodes[l]
}

// ParseLevel converts a level name ("none", "error", "warn", "warning",
// "info", "debug", case-insensitive) or a decimal number to a Level.
// Numeric values are returned as-is even when they fall outside the
// enumerated range.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NONE":
		return NoneLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	}

	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return NoneLevel, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return Level(n), nil
}
