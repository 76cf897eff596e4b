// Package slogadapter provides a log/slog Handler that writes records
// through a taglog Logger, so code written against the standard library
// ends up on the same sinks as the rest of the device log.
//
// Attributes are appended to the message as key=value pairs. An
// attribute named "tag" at the top level replaces the handler's tag.
package slogadapter
