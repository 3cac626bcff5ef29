package booking

import (
	"errors"
	"time"
)

// ErrUndecodable marks a backend record that cannot become a Booking.
var ErrUndecodable = errors.New("undecodable booking record")

// Record is a booking document as stored by the backend. Nil fields were
// absent from the document.
type Record struct {
	ID            *string
	ListingID     *string
	UserID        *string
	Date          *time.Time
	Status        *string
	SnapshotName  *string
	SnapshotImage *string
	CreatedAt     *time.Time
}

// RecordOf builds a fully populated Record from a booking.
func RecordOf(b *Booking) Record {
	id, listingID, userID := b.id, b.listingID, b.userID
	date, createdAt := b.date, b.createdAt
	status := string(b.status)
	name, image := b.snapshotName, b.snapshotImage
	return Record{
		ID:            &id,
		ListingID:     &listingID,
		UserID:        &userID,
		Date:          &date,
		Status:        &status,
		SnapshotName:  &name,
		SnapshotImage: &image,
		CreatedAt:     &createdAt,
	}
}

// Decode converts the record into a Booking. Id, listing, user, date and a
// known status are required; snapshot fields and creation time are optional.
func (r Record) Decode() (*Booking, error) {
	if r.ID == nil || *r.ID == "" || r.ListingID == nil || r.UserID == nil || r.Date == nil || r.Status == nil {
		return nil, ErrUndecodable
	}
	status, err := ParseBookingStatus(*r.Status)
	if err != nil {
		return nil, ErrUndecodable
	}

	var createdAt time.Time
	if r.CreatedAt != nil {
		createdAt = *r.CreatedAt
	}
	return ReconstructBooking(
		*r.ID,
		*r.ListingID,
		*r.UserID,
		NormalizeDate(*r.Date),
		status,
		deref(r.SnapshotName),
		deref(r.SnapshotImage),
		createdAt,
	), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
