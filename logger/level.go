package logger

import (
	"github.com/philipp01105/taglog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	NoneLevel  = core.NoneLevel
	ErrorLevel = core.ErrorLevel
	WarnLevel  = core.WarnLevel
	InfoLevel  = core.InfoLevel
	DebugLevel = core.DebugLevel
)

// ParseLevel converts a level name or number to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
