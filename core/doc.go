// Package core defines the shared types used across taglog.
//
// It provides the Level type for severity filtering together with the
// constant color and code tables indexed by Level, the Entry type that
// carries one log call from the Logger to a formatter, and the Clock
// abstraction used to stamp each line with the elapsed milliseconds
// since start.
//
// Every table lookup is preceded by a bounds check, so an out-of-range
// Level never indexes past the end of a table.
package core
