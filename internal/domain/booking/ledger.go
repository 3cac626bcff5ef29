package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/staynest/service-stay/internal/domain/identity"
	"github.com/staynest/service-stay/internal/domain/listing"
	"github.com/staynest/service-stay/internal/pkg/domain"
)

// Ledger is an in-memory, ordered view of bookings loaded from the backend.
// A Ledger is owned by one caller at a time and is not safe for concurrent use.
type Ledger struct {
	gateway  Gateway
	bookings []*Booking
	skipped  int
}

// NewLedger creates an empty Ledger backed by gateway.
func NewLedger(gateway Gateway) *Ledger {
	return &Ledger{gateway: gateway}
}

// LoadAll replaces the ledger with every booking (admin view).
func (l *Ledger) LoadAll(ctx context.Context) error {
	records, err := l.gateway.FetchAllBookings(ctx)
	if err != nil {
		return wrapBackend("fetch bookings", err)
	}
	l.replace(records)
	return nil
}

// LoadForUser replaces the ledger with the bookings of one user. Filtering
// is done by the gateway.
func (l *Ledger) LoadForUser(ctx context.Context, userID string) error {
	if userID == "" {
		return domain.NewAuthRequiredError("sign in to view bookings")
	}
	records, err := l.gateway.FetchBookingsForUser(ctx, userID)
	if err != nil {
		return wrapBackend("fetch user bookings", err)
	}
	l.replace(records)
	return nil
}

// Bookings returns the loaded bookings in load order.
func (l *Ledger) Bookings() []*Booking {
	out := make([]*Booking, len(l.bookings))
	copy(out, l.bookings)
	return out
}

// Skipped returns how many records the last load could not decode.
func (l *Ledger) Skipped() int { return l.skipped }

// Find returns the loaded booking with the given id.
func (l *Ledger) Find(id string) (*Booking, bool) {
	for _, b := range l.bookings {
		if b.ID() == id {
			return b, true
		}
	}
	return nil, false
}

// CreateBooking persists a pending booking of lst for the caller on date.
// The ledger itself is left untouched; callers reload or merge the
// returned booking.
func (l *Ledger) CreateBooking(ctx context.Context, caller identity.AuthContext, lst *listing.Listing, date time.Time) (*Booking, error) {
	if !caller.IsAuthenticated() {
		return nil, domain.NewAuthRequiredError("sign in to book a stay")
	}

	bk, err := NewBooking(lst, caller.UserID, date)
	if err != nil {
		return nil, err
	}

	saved, err := l.gateway.CreateBooking(ctx, bk)
	if err != nil {
		return nil, wrapBackend("create booking", err)
	}
	return saved, nil
}

// Confirm moves a loaded pending booking to confirmed, persisting the new
// status before updating the in-memory copy. Unknown or already confirmed
// bookings are rejected and nothing changes.
func (l *Ledger) Confirm(ctx context.Context, bookingID string) (*Booking, error) {
	bk, ok := l.Find(bookingID)
	if !ok {
		return nil, domain.NewTransitionError(fmt.Sprintf("booking %s is not loaded", bookingID))
	}
	if !bk.Status().CanTransitionTo(StatusConfirmed) {
		return nil, domain.NewInvalidStateError(string(bk.Status()), string(StatusConfirmed))
	}

	if err := l.gateway.UpdateBookingStatus(ctx, bookingID, bk.Status(), StatusConfirmed); err != nil {
		return nil, wrapBackend("update booking status", err)
	}

	if err := bk.Confirm(); err != nil {
		return nil, err
	}
	return bk, nil
}

func (l *Ledger) replace(records []Record) {
	bookings := make([]*Booking, 0, len(records))
	skipped := 0
	for _, rec := range records {
		bk, err := rec.Decode()
		if err != nil {
			skipped++
			continue
		}
		bookings = append(bookings, bk)
	}
	l.bookings = bookings
	l.skipped = skipped
}

// wrapBackend keeps invalid-state errors from the gateway's status check
// and wraps everything else, not-found included, as a backend error.
func wrapBackend(op string, err error) error {
	if domain.IsInvalidState(err) || domain.IsBackend(err) {
		return err
	}
	return domain.NewBackendError(op, err)
}
