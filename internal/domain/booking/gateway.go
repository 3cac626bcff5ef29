package booking

import "context"

// Gateway is the backend document store as seen by the ledger.
type Gateway interface {
	// FetchAllBookings returns every booking document.
	FetchAllBookings(ctx context.Context) ([]Record, error)

	// FetchBookingsForUser returns the booking documents owned by userID.
	FetchBookingsForUser(ctx context.Context, userID string) ([]Record, error)

	// CreateBooking persists an unsaved booking and returns it with its assigned id.
	CreateBooking(ctx context.Context, b *Booking) (*Booking, error)

	// UpdateBookingStatus sets the status of booking id to next, but only if
	// its stored status is still expected. A mismatch is reported as an
	// invalid state transition; an unknown id as a not-found error.
	UpdateBookingStatus(ctx context.Context, id string, expected, next BookingStatus) error
}
