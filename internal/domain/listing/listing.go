package listing

import (
	"strings"

	"github.com/staynest/service-stay/internal/pkg/domain"
)

// Fields holds the editable attributes of a listing.
type Fields struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	PriceLabel  string `json:"price"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// Validate requires every field to be non-blank.
func (f Fields) Validate() error {
	for _, v := range []string{f.Name, f.Location, f.PriceLabel, f.Description, f.ImageURL} {
		if strings.TrimSpace(v) == "" {
			return domain.NewValidationError("all fields are required")
		}
	}
	return nil
}

// Listing is a bookable property. Its id is assigned by the backend and
// never changes afterwards.
type Listing struct {
	id     string
	fields Fields
}

// Reconstruct rebuilds a persisted Listing (no validation).
func Reconstruct(id string, fields Fields) *Listing {
	return &Listing{id: id, fields: fields}
}

// ID returns the backend-assigned identifier.
func (l *Listing) ID() string { return l.id }

// Name returns the display name.
func (l *Listing) Name() string { return l.fields.Name }

// Location returns the city or area.
func (l *Listing) Location() string { return l.fields.Location }

// PriceLabel returns the free-form nightly price text, e.g. "$200/night".
func (l *Listing) PriceLabel() string { return l.fields.PriceLabel }

// Description returns the long description.
func (l *Listing) Description() string { return l.fields.Description }

// ImageURL returns the image reference. It is not validated.
func (l *Listing) ImageURL() string { return l.fields.ImageURL }

// Fields returns a copy of the listing's attributes.
func (l *Listing) Fields() Fields { return l.fields }

// NightlyRate returns the numeric rate parsed from the price label.
func (l *Listing) NightlyRate() float64 { return ExtractRate(l.fields.PriceLabel) }

// Matches reports whether name or location contains query, ignoring case.
func (l *Listing) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(l.fields.Name), q) ||
		strings.Contains(strings.ToLower(l.fields.Location), q)
}
