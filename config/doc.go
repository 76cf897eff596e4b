// Package config reads the Logger configuration from environment
// variables and builds a ready-to-use Logger from it.
//
//	TAGLOG_LEVEL        threshold name or number (default "debug")
//	TAGLOG_LINE_ENDING  "lf" or "crlf" (default "lf")
//	TAGLOG_COLOR        "auto", "always" or "never" (default "auto")
//	TAGLOG_FILE         optional path of an additional file sink
package config
