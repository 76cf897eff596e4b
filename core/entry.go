package core

// Entry represents a single log call after filtering and message
// rendering. It lives only for the duration of the call.
type Entry struct {
	// Elapsed is the time since start in milliseconds
	Elapsed uint64
	Level   Level
	Tag     string
	Message string
}
