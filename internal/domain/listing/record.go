package listing

import (
	"errors"
	"strings"
)

// ErrUndecodable marks a backend record that cannot become a Listing.
var ErrUndecodable = errors.New("undecodable listing record")

// Record is a listing document as stored by the backend. Nil fields were
// absent from the document.
type Record struct {
	ID          *string
	Name        *string
	Location    *string
	PriceLabel  *string
	Description *string
	ImageURL    *string
}

// RecordFrom builds a fully populated Record for a listing.
func RecordFrom(id string, f Fields) Record {
	return Record{
		ID:          &id,
		Name:        &f.Name,
		Location:    &f.Location,
		PriceLabel:  &f.PriceLabel,
		Description: &f.Description,
		ImageURL:    &f.ImageURL,
	}
}

// Decode converts the record into a Listing. Every field must be present;
// id, name and location must also be non-blank.
func (r Record) Decode() (*Listing, error) {
	if r.ID == nil || r.Name == nil || r.Location == nil ||
		r.PriceLabel == nil || r.Description == nil || r.ImageURL == nil {
		return nil, ErrUndecodable
	}
	if strings.TrimSpace(*r.ID) == "" || strings.TrimSpace(*r.Name) == "" || strings.TrimSpace(*r.Location) == "" {
		return nil, ErrUndecodable
	}
	return Reconstruct(*r.ID, Fields{
		Name:        *r.Name,
		Location:    *r.Location,
		PriceLabel:  *r.PriceLabel,
		Description: *r.Description,
		ImageURL:    *r.ImageURL,
	}), nil
}
