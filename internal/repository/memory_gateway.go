package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/staynest/service-stay/internal/domain/booking"
	"github.com/staynest/service-stay/internal/domain/listing"
	"github.com/staynest/service-stay/internal/pkg/domain"
)

// MemoryGateway keeps listing and booking documents in process memory,
// preserving insertion order. It is safe for concurrent use.
type MemoryGateway struct {
	mu       sync.RWMutex
	listings []listing.Record
	bookings []booking.Record
}

// NewMemoryGateway creates an empty MemoryGateway.
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{}
}

// DemoListings is the sample inventory loaded by development servers.
func DemoListings() []listing.Fields {
	return []listing.Fields{
		{Name: "Luxury Villa", Location: "Los Angeles", PriceLabel: "$500/night", Description: "A beautiful villa with a pool.", ImageURL: "hotel1"},
		{Name: "Cozy Apartment", Location: "New York", PriceLabel: "$150/night", Description: "A small, cozy apartment in the city.", ImageURL: "hotel2"},
		{Name: "Beach House", Location: "Miami", PriceLabel: "$350/night", Description: "A stunning house near the beach.", ImageURL: "hotel3"},
	}
}

// PutListingRecord stores a raw listing document as is, decodable or not.
func (g *MemoryGateway) PutListingRecord(rec listing.Record) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listings = append(g.listings, rec)
}

// PutBookingRecord stores a raw booking document as is, decodable or not.
func (g *MemoryGateway) PutBookingRecord(rec booking.Record) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.bookings = append(g.bookings, rec)
}

// FetchListings returns copies of every stored listing document.
func (g *MemoryGateway) FetchListings(context.Context) ([]listing.Record, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]listing.Record, len(g.listings))
	copy(out, g.listings)
	return out, nil
}

// CreateListing stores a new listing under a fresh id.
func (g *MemoryGateway) CreateListing(_ context.Context, fields listing.Fields) (*listing.Listing, error) {
	id := uuid.NewString()
	g.PutListingRecord(listing.RecordFrom(id, fields))
	return listing.Reconstruct(id, fields), nil
}

// FetchAllBookings returns every stored booking document.
func (g *MemoryGateway) FetchAllBookings(context.Context) ([]booking.Record, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.snapshotBookings(func(booking.Record) bool { return true }), nil
}

// FetchBookingsForUser returns the booking documents owned by userID.
func (g *MemoryGateway) FetchBookingsForUser(_ context.Context, userID string) ([]booking.Record, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.snapshotBookings(func(r booking.Record) bool {
		return r.UserID != nil && *r.UserID == userID
	}), nil
}

// CreateBooking stores an unsaved booking under a fresh id.
func (g *MemoryGateway) CreateBooking(_ context.Context, bk *booking.Booking) (*booking.Booking, error) {
	createdAt := bk.CreatedAt()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	saved := booking.ReconstructBooking(
		uuid.NewString(),
		bk.ListingID(),
		bk.UserID(),
		bk.Date(),
		bk.Status(),
		bk.SnapshotName(),
		bk.SnapshotImage(),
		createdAt,
	)
	g.PutBookingRecord(booking.RecordOf(saved))
	return saved, nil
}

// UpdateBookingStatus sets the status only if the stored one still equals expected.
func (g *MemoryGateway) UpdateBookingStatus(_ context.Context, id string, expected, next booking.BookingStatus) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.bookings {
		rec := &g.bookings[i]
		if rec.ID == nil || *rec.ID != id {
			continue
		}
		stored := ""
		if rec.Status != nil {
			stored = *rec.Status
		}
		if stored != string(expected) {
			return domain.NewInvalidStateError(stored, string(next))
		}
		status := string(next)
		rec.Status = &status
		return nil
	}
	return domain.NewNotFoundError("Booking", id)
}

// snapshotBookings copies matching records; status pointers are cloned so
// later updates do not leak into returned values. Callers hold the lock.
func (g *MemoryGateway) snapshotBookings(keep func(booking.Record) bool) []booking.Record {
	out := make([]booking.Record, 0, len(g.bookings))
	for _, r := range g.bookings {
		if !keep(r) {
			continue
		}
		if r.Status != nil {
			s := *r.Status
			r.Status = &s
		}
		out = append(out, r)
	}
	return out
}
