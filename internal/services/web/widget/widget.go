// Package widget attaches the third-party booking script to a page at most
// once per load state and reports attach failures without interrupting the
// render.
package widget

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/prestonhollow/detailing/internal/services/web/content"
)

// FallbackContainer is the parent used when the mount element is absent.
const FallbackContainer = "body"

// Script is one external script element.
type Script struct {
	Src   string
	Async bool
}

// Surface is the page the loader attaches scripts to.
type Surface interface {
	HasElement(id string) bool
	Attach(parentID string, script Script) error
}

// Outcome describes what one activation did.
type Outcome int

const (
	OutcomeSkipped Outcome = iota
	OutcomeMounted
	OutcomeFallback
	OutcomeDisabled
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeMounted:
		return "mounted"
	case OutcomeFallback:
		return "fallback"
	case OutcomeDisabled:
		return "disabled"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// LoadState records which script URLs have had a load initiated. It is owned
// by one page lifecycle and safe for concurrent activations.
type LoadState struct {
	mu        sync.Mutex
	initiated map[string]struct{}
}

// NewLoadState returns an empty load state.
func NewLoadState() *LoadState {
	return &LoadState{initiated: make(map[string]struct{})}
}

// Begin marks url as initiated and reports whether this call did so.
func (s *LoadState) Begin(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initiated == nil {
		s.initiated = make(map[string]struct{})
	}
	if _, ok := s.initiated[url]; ok {
		return false
	}
	s.initiated[url] = struct{}{}
	return true
}

// Initiated reports whether a load for url has begun.
func (s *LoadState) Initiated(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.initiated[url]
	return ok
}

// FailureReporter receives attach failures.
type FailureReporter interface {
	ReportFailure(ctx context.Context, failure Failure)
}

// Loader activates one booking widget configuration against a surface.
type Loader struct {
	scriptURL string
	mountID   string
	state     *LoadState
	reporter  FailureReporter
}

// NewLoader builds a loader for booking. A nil state gets a private one; a
// nil reporter drops failures.
func NewLoader(booking content.Booking, state *LoadState, reporter FailureReporter) *Loader {
	if state == nil {
		state = NewLoadState()
	}
	mountID := strings.TrimSpace(booking.MountID)
	if mountID == "" {
		mountID = content.DefaultMountID
	}
	return &Loader{
		scriptURL: strings.TrimSpace(booking.ScriptURL),
		mountID:   mountID,
		state:     state,
		reporter:  reporter,
	}
}

// MountID returns the element the script prefers to attach under.
func (l *Loader) MountID() string {
	return l.mountID
}

// Activate attaches the script once. Repeat activations for the same URL are
// skipped. When the mount element is missing the script goes under
// FallbackContainer. Attach errors are reported and returned with
// OutcomeFailed; callers keep rendering.
func (l *Loader) Activate(ctx context.Context, surface Surface) (Outcome, error) {
	if l.scriptURL == "" {
		return OutcomeDisabled, nil
	}
	if surface == nil {
		return OutcomeFailed, errors.New("widget surface is required")
	}
	if !l.state.Begin(l.scriptURL) {
		return OutcomeSkipped, nil
	}

	parent, outcome := FallbackContainer, OutcomeFallback
	if surface.HasElement(l.mountID) {
		parent, outcome = l.mountID, OutcomeMounted
	}
	if err := surface.Attach(parent, Script{Src: l.scriptURL, Async: true}); err != nil {
		if l.reporter != nil {
			l.reporter.ReportFailure(ctx, Failure{Src: l.scriptURL, Reason: err.Error()})
		}
		return OutcomeFailed, fmt.Errorf("attach widget script: %w", err)
	}
	return outcome, nil
}
