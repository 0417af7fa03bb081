// Package storage defines persistence contracts for booking widget failure
// reports.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidReport indicates a failure report without a script source.
var ErrInvalidReport = errors.New("widget failure report is invalid")

// Report origins.
const (
	OriginServer  = "server"
	OriginBrowser = "browser"
)

// WidgetFailure is one external script load failure.
type WidgetFailure struct {
	ID         int64
	Src        string
	Reason     string
	Page       string
	Origin     string
	UserAgent  string
	OccurredAt time.Time
}

// WidgetFailureStore persists widget failure reports.
type WidgetFailureStore interface {
	RecordWidgetFailure(ctx context.Context, failure WidgetFailure) error
}
