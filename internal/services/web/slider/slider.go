// Package slider holds the before/after comparison slider: a reveal position
// clamped to [0,100] and the view model the templates render from it.
package slider

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	// MinPosition and MaxPosition bound every stored position.
	MinPosition = 0
	MaxPosition = 100
	// DefaultPosition is where every new instance starts.
	DefaultPosition = 50
)

// ErrInvalidInput marks control values that are not numbers.
var ErrInvalidInput = errors.New("slider: invalid input")

// State is the reveal position of one slider instance. It is owned by a
// single render and is not safe for concurrent use.
type State struct {
	position int
}

// New returns a state at DefaultPosition.
func New() *State {
	return &State{position: DefaultPosition}
}

// Position returns the current reveal position.
func (s *State) Position() int {
	if s == nil {
		return DefaultPosition
	}
	return s.position
}

// Set stores clamp(round(v), 0, 100) and returns it. Rounding is half away
// from zero. NaN keeps the current position.
func (s *State) Set(v float64) int {
	switch {
	case math.IsNaN(v):
	case v <= MinPosition:
		s.position = MinPosition
	case v >= MaxPosition:
		s.position = MaxPosition
	default:
		s.position = clamp(int(math.Round(v)))
	}
	return s.position
}

// SetInput parses a raw control value and applies it. Unparseable input keeps
// the current position.
func (s *State) SetInput(raw string) int {
	v, err := ParseInput(raw)
	if err != nil {
		return s.position
	}
	return s.Set(v)
}

// ParseInput parses a control value. Values too large for float64 parse as
// infinities and clamp on Set.
func ParseInput(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidInput)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, raw)
	}
	return v, nil
}

func clamp(v int) int {
	return min(max(v, MinPosition), MaxPosition)
}

// Props describe one slider instance.
type Props struct {
	// ComparisonID is the gallery entry the instance shows.
	ComparisonID string
	// InstanceID distinguishes instances of the same comparison. Empty
	// assigns a new one.
	InstanceID string
	Label      string
	Before     string
	After      string
}

// View is the rendering contract for one instance. The after image fills
// the widget; the before image is layered on top and clipped by BeforeClip;
// the divider sits at DividerLeft.
type View struct {
	DOMID        string
	InstanceID   string
	ComparisonID string
	Label        string
	Before       string
	After        string
	Position     int
	BeforeClip   string
	DividerLeft  string
}

// NewView builds the view for props at the state's position.
func NewView(props Props, state *State) View {
	instanceID := NormalizeInstanceID(props.InstanceID)
	if instanceID == "" {
		instanceID = NewInstanceID()
	}
	position := state.Position()
	return View{
		DOMID:        "slider-" + instanceID,
		InstanceID:   instanceID,
		ComparisonID: props.ComparisonID,
		Label:        props.Label,
		Before:       props.Before,
		After:        props.After,
		Position:     position,
		BeforeClip:   fmt.Sprintf("inset(0 %d%% 0 0)", MaxPosition-position),
		DividerLeft:  fmt.Sprintf("%d%%", position),
	}
}

// NewInstanceID returns a fresh instance id.
func NewInstanceID() string {
	return uuid.NewString()
}

// NormalizeInstanceID returns the canonical form of a client-supplied id, or
// "" when it is not one this package issued.
func NormalizeInstanceID(raw string) string {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return id.String()
}
