// Package logger is the public API of taglog. Most users only need to
// import this package.
//
// A Logger holds a severity threshold and an ordered list of sinks. Each
// call renders one line
//
//	\x1b[33m  1500 [W] [NET] link down\x1b[0m
//
// and writes it, unchanged, to every sink in registration order:
//
//	log := logger.New()
//	log.AddOutput(sink.Stdout())
//	log.SetLevel(logger.InfoLevel)
//	log.Warn("NET", "link down")
//	log.Debug("NET", "retry %d", 3) // filtered out
//
// Sinks are plain io.Writer values that the Logger never owns. Adding a
// nil sink is ignored, and removing a sink drops every registration of
// it. There is no global logger: every Logger is independent.
//
// Logging never fails loudly. Filtered calls, rejected sinks and failed
// writes are only visible through Stats.
//
// A Logger is meant for a single goroutine, like the single task of a
// microcontroller. Callers sharing one between goroutines must serialize
// access themselves.
package logger
