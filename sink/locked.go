package sink

import (
	"io"

	"go.uber.org/zap/zapcore"
)

// Locked wraps a sink with a mutex so that one sink can be shared by
// several Loggers, or by a Logger and other writers, without
// interleaving partial lines.
type Locked struct {
	ws zapcore.WriteSyncer
}

// NewLocked wraps w. If w has a Sync method it is kept reachable through
// Locked.Sync.
func NewLocked(w io.Writer) *Locked {
	return &Locked{ws: zapcore.Lock(zapcore.AddSync(w))}
}

// Write writes p while holding the lock
func (l *Locked) Write(p []byte) (int, error) {
	return l.ws.Write(p)
}

// Sync flushes the wrapped sink while holding the lock
func (l *Locked) Sync() error {
	return l.ws.Sync()
}
