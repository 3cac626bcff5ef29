package booking

import (
	"time"

	"github.com/staynest/service-stay/internal/domain/listing"
	"github.com/staynest/service-stay/internal/pkg/domain"
)

// DateLayout is the wire format of a stay date.
const DateLayout = "2006-01-02"

// Booking is a reservation request for one listing on one calendar date.
// The listing name and image are copied at creation time and are not kept
// in sync with later listing edits.
type Booking struct {
	id            string
	listingID     string
	userID        string
	date          time.Time
	status        BookingStatus
	snapshotName  string
	snapshotImage string
	createdAt     time.Time
}

// NewBooking creates an unsaved pending booking for userID on date.
func NewBooking(l *listing.Listing, userID string, date time.Time) (*Booking, error) {
	if userID == "" {
		return nil, domain.NewAuthRequiredError("sign in to book a stay")
	}
	if l == nil || l.ID() == "" {
		return nil, domain.NewValidationError("listing is required")
	}
	if date.IsZero() {
		return nil, domain.NewValidationError("date is required")
	}

	return &Booking{
		listingID:     l.ID(),
		userID:        userID,
		date:          NormalizeDate(date),
		status:        StatusPending,
		snapshotName:  l.Name(),
		snapshotImage: l.ImageURL(),
		createdAt:     time.Now().UTC(),
	}, nil
}

// ReconstructBooking rebuilds a Booking from persistence data (no validation).
func ReconstructBooking(
	id string,
	listingID string,
	userID string,
	date time.Time,
	status BookingStatus,
	snapshotName string,
	snapshotImage string,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		listingID:     listingID,
		userID:        userID,
		date:          date,
		status:        status,
		snapshotName:  snapshotName,
		snapshotImage: snapshotImage,
		createdAt:     createdAt,
	}
}

// NormalizeDate truncates t to midnight UTC of its own calendar date.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD stay date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, domain.NewValidationError("date must be formatted as YYYY-MM-DD")
	}
	return t, nil
}

// --- Getters ---

// ID returns the backend-assigned id, or "" before the booking is saved.
func (b *Booking) ID() string { return b.id }

// ListingID returns the booked listing's id.
func (b *Booking) ListingID() string { return b.listingID }

// UserID returns the requesting user's id.
func (b *Booking) UserID() string { return b.userID }

// Date returns the stay date at midnight UTC.
func (b *Booking) Date() time.Time { return b.date }

// Status returns the current booking status.
func (b *Booking) Status() BookingStatus { return b.status }

// SnapshotName returns the listing name as it was when booked.
func (b *Booking) SnapshotName() string { return b.snapshotName }

// SnapshotImage returns the listing image as it was when booked.
func (b *Booking) SnapshotImage() string { return b.snapshotImage }

// CreatedAt returns the creation timestamp.
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// --- Behavior ---

// Confirm transitions the booking from pending to confirmed.
func (b *Booking) Confirm() error {
	if !b.status.CanTransitionTo(StatusConfirmed) {
		return domain.NewInvalidStateError(string(b.status), string(StatusConfirmed))
	}
	b.status = StatusConfirmed
	return nil
}
