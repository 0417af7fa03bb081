package widget

import (
	"fmt"
	"strings"
	"sync"
)

// Document is the server-side Surface used while assembling a page. It knows
// which element ids the layout will render and collects scripts per parent.
type Document struct {
	mu       sync.Mutex
	elements map[string]struct{}
	scripts  map[string][]Script
}

// NewDocument returns a document containing elementIDs plus FallbackContainer.
func NewDocument(elementIDs ...string) *Document {
	d := &Document{
		elements: map[string]struct{}{FallbackContainer: {}},
		scripts:  make(map[string][]Script),
	}
	for _, id := range elementIDs {
		id = strings.TrimSpace(id)
		if id != "" {
			d.elements[id] = struct{}{}
		}
	}
	return d
}

// HasElement reports whether the layout renders id.
func (d *Document) HasElement(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.elements[id]
	return ok
}

// Attach appends script under parentID.
func (d *Document) Attach(parentID string, script Script) error {
	if strings.TrimSpace(script.Src) == "" {
		return fmt.Errorf("script src is required")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.elements[parentID]; !ok {
		return fmt.Errorf("parent element %q not found", parentID)
	}
	d.scripts[parentID] = append(d.scripts[parentID], script)
	return nil
}

// Scripts returns a copy of the scripts attached under parentID.
func (d *Document) Scripts(parentID string) []Script {
	if d == nil {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Script(nil), d.scripts[parentID]...)
}

// Count returns the number of scripts attached anywhere.
func (d *Document) Count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	total := 0
	for _, scripts := range d.scripts {
		total += len(scripts)
	}
	return total
}
