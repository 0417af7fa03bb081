// Package timeouts defines shared timeout constants used by the site process.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// ContentReloadDebounce coalesces bursts of file events into one catalog reload.
const ContentReloadDebounce = 250 * time.Millisecond

// ReportWrite caps a single failure report write to storage.
const ReportWrite = 2 * time.Second

// TelemetryShutdown bounds the span flush on process exit.
const TelemetryShutdown = 5 * time.Second
