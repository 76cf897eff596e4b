// Package kv renders key=value pairs appended to a log message by the
// library adapters.
package kv

import (
	"strconv"
	"strings"
)

// Append writes " key=value" to b. Values containing spaces, quotes,
// '=' or control characters are quoted.
func Append(b *strings.Builder, key, value string) {
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	if needsQuoting(value) {
		b.WriteString(strconv.Quote(value))
		return
	}
	b.WriteString(value)
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r <= ' ' || r == '=' || r == '"' || r == 0x7f {
			return true
		}
	}
	return false
}
