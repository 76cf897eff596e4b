// Package metrics exports the diagnostic counters of a Logger as
// Prometheus metrics.
//
// The collector reads Logger.Stats on every scrape. Stats counters are
// atomic, so scraping from the HTTP server goroutine is safe while the
// owning goroutine keeps logging.
package metrics
