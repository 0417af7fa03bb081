// Package content defines the declarative tables the site is rendered from:
// business identity, booking widget wiring, service packages, materials, and
// gallery comparisons. A Catalog is immutable once built; reloads replace it
// as a whole value.
package content

import (
	"strconv"
	"strings"
)

// DefaultMountID is the element id the booking widget attaches under.
const DefaultMountID = "square-booking-host"

// DefaultComparisonLabel labels gallery entries that omit one.
const DefaultComparisonLabel = "Detail"

// Price is a package price in whole currency units. Configuration may supply
// a fractional value; display truncates it.
type Price float64

// ServicePackage is one priced offering. Name is the identity key and must be
// unique within a list.
type ServicePackage struct {
	Name     string   `json:"name"`
	Price    Price    `json:"price"`
	Duration string   `json:"duration"`
	Features []string `json:"features"`
}

// MaterialEntry explains one product category used on the job. Identity is
// list position; duplicates are allowed.
type MaterialEntry struct {
	UseCase     string `json:"useCase"`
	Explanation string `json:"explanation"`
}

// Comparison is one before/after pair shown in the gallery.
type Comparison struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Before string `json:"before"`
	After  string `json:"after"`
}

// Business holds identity and contact data rendered in chrome and as the
// booking fallback.
type Business struct {
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	ServiceArea string `json:"serviceArea"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}

// Booking wires the third-party booking widget.
type Booking struct {
	// ScriptURL is the widget bootstrap script and its load-state key.
	ScriptURL string `json:"scriptURL"`
	// MountID is the element the script attaches under.
	MountID string `json:"mountID"`
	// HideMount omits the mount element from the page. The script then
	// attaches to the page body, which suits widgets that open their own
	// overlay.
	HideMount bool `json:"hideMount"`
}

// Catalog is the full set of content tables for one site.
type Catalog struct {
	Business        Business         `json:"business"`
	Booking         Booking          `json:"booking"`
	MaintenanceNote string           `json:"maintenanceNote"`
	Packages        []ServicePackage `json:"packages"`
	Materials       []MaterialEntry  `json:"materials"`
	Gallery         []Comparison     `json:"gallery"`
}

// Normalize fills optional fields with their defaults and assigns stable
// gallery ids. It does not validate authoring defects.
func (c Catalog) Normalize() Catalog {
	c.Booking.ScriptURL = strings.TrimSpace(c.Booking.ScriptURL)
	c.Booking.MountID = strings.TrimSpace(c.Booking.MountID)
	if c.Booking.MountID == "" {
		c.Booking.MountID = DefaultMountID
	}

	gallery := make([]Comparison, len(c.Gallery))
	seen := make(map[string]struct{}, len(c.Gallery))
	for i, entry := range c.Gallery {
		entry.Label = strings.TrimSpace(entry.Label)
		if entry.Label == "" {
			entry.Label = DefaultComparisonLabel
		}
		id := slug(entry.ID)
		if id == "" {
			id = slug(entry.Label)
		}
		if id == "" {
			id = "comparison"
		}
		if _, taken := seen[id]; taken {
			id = id + "-" + strconv.Itoa(i+1)
		}
		seen[id] = struct{}{}
		entry.ID = id
		gallery[i] = entry
	}
	c.Gallery = gallery
	return c
}

// Comparison looks up a gallery entry by id.
func (c Catalog) Comparison(id string) (Comparison, bool) {
	id = strings.TrimSpace(id)
	for _, entry := range c.Gallery {
		if entry.ID == id {
			return entry, true
		}
	}
	return Comparison{}, false
}

func slug(value string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(value)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
