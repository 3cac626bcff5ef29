package application

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/staynest/service-stay/internal/domain/booking"
	"github.com/staynest/service-stay/internal/domain/identity"
	"github.com/staynest/service-stay/internal/domain/listing"
	"github.com/staynest/service-stay/internal/events"
)

// CreateBookingRequest holds the data needed to book a listing.
type CreateBookingRequest struct {
	ListingID string `json:"listing_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
}

// BookingDTO is the response representation of a booking.
type BookingDTO struct {
	ID           string    `json:"id"`
	ListingID    string    `json:"listing_id"`
	UserID       string    `json:"user_id"`
	Date         string    `json:"date"`
	Status       string    `json:"status"`
	ListingName  string    `json:"listing_name"`
	ListingImage string    `json:"listing_image"`
	CreatedAt    time.Time `json:"created_at"`
}

// BookingService is the application service orchestrating booking use cases.
type BookingService struct {
	backend Backend
	policy  identity.AdminPolicy
	events  eventBus
	logger  *zap.Logger
}

// NewBookingService creates a new BookingService. publisher may be nil.
func NewBookingService(backend Backend, policy identity.AdminPolicy, publisher EventPublisher, logger *zap.Logger) *BookingService {
	return &BookingService{
		backend: backend,
		policy:  policy,
		events:  eventBus{publisher: publisher, logger: logger},
		logger:  logger,
	}
}

// CreateBooking books a listing for the caller on the requested date.
func (s *BookingService) CreateBooking(ctx context.Context, caller identity.AuthContext, req CreateBookingRequest) (*BookingDTO, error) {
	if err := requireAuthenticated(caller); err != nil {
		return nil, err
	}
	date, err := booking.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	catalog := listing.NewCatalog(s.backend)
	if err := catalog.Load(ctx); err != nil {
		s.logger.Error("failed to load listings", zap.Error(err))
		return nil, err
	}
	target, err := catalog.Find(req.ListingID)
	if err != nil {
		return nil, err
	}

	bk, err := booking.NewLedger(s.backend).CreateBooking(ctx, caller, target, date)
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking requested",
		zap.String("booking_id", bk.ID()),
		zap.String("listing_id", bk.ListingID()),
		zap.String("user_id", bk.UserID()),
	)
	s.events.publish(ctx, events.TopicBookingEvents, events.BookingRequested, bk.ID(), events.BookingRequestedEvent{
		BookingID:   bk.ID(),
		ListingID:   bk.ListingID(),
		UserID:      bk.UserID(),
		Date:        bk.Date().Format(booking.DateLayout),
		ListingName: bk.SnapshotName(),
		OccurredAt:  now(),
	})

	result := toBookingDTO(bk)
	return &result, nil
}

// MyBookings returns the caller's own bookings.
func (s *BookingService) MyBookings(ctx context.Context, caller identity.AuthContext) ([]BookingDTO, error) {
	if err := requireAuthenticated(caller); err != nil {
		return nil, err
	}
	ledger := booking.NewLedger(s.backend)
	if err := ledger.LoadForUser(ctx, caller.UserID); err != nil {
		s.logger.Error("failed to load user bookings", zap.String("user_id", caller.UserID), zap.Error(err))
		return nil, err
	}
	s.warnSkipped(ledger)
	return toBookingDTOs(ledger.Bookings()), nil
}

// --- Admin methods ---

// AllBookings returns every booking (admin).
func (s *BookingService) AllBookings(ctx context.Context, caller identity.AuthContext) ([]BookingDTO, error) {
	ledger, err := s.adminLedger(ctx, caller)
	if err != nil {
		return nil, err
	}
	return toBookingDTOs(ledger.Bookings()), nil
}

// ConfirmBooking moves a pending booking to confirmed (admin).
func (s *BookingService) ConfirmBooking(ctx context.Context, caller identity.AuthContext, bookingID string) (*BookingDTO, error) {
	ledger, err := s.adminLedger(ctx, caller)
	if err != nil {
		return nil, err
	}

	bk, err := ledger.Confirm(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking confirmed",
		zap.String("booking_id", bk.ID()),
		zap.String("confirmed_by", caller.Email),
	)
	s.events.publish(ctx, events.TopicBookingEvents, events.BookingConfirmed, bk.ID(), events.BookingConfirmedEvent{
		BookingID:   bk.ID(),
		ListingID:   bk.ListingID(),
		UserID:      bk.UserID(),
		Date:        bk.Date().Format(booking.DateLayout),
		ConfirmedBy: caller.Email,
		OccurredAt:  now(),
	})

	result := toBookingDTO(bk)
	return &result, nil
}

// Stats returns booking counts by status (admin).
func (s *BookingService) Stats(ctx context.Context, caller identity.AuthContext) (*booking.Stats, error) {
	ledger, err := s.adminLedger(ctx, caller)
	if err != nil {
		return nil, err
	}
	stats := booking.ComputeStats(ledger.Bookings())
	return &stats, nil
}

func (s *BookingService) adminLedger(ctx context.Context, caller identity.AuthContext) (*booking.Ledger, error) {
	if err := requireAdmin(s.policy, caller); err != nil {
		return nil, err
	}
	ledger := booking.NewLedger(s.backend)
	if err := ledger.LoadAll(ctx); err != nil {
		s.logger.Error("failed to load bookings", zap.Error(err))
		return nil, err
	}
	s.warnSkipped(ledger)
	return ledger, nil
}

func (s *BookingService) warnSkipped(ledger *booking.Ledger) {
	if n := ledger.Skipped(); n > 0 {
		s.logger.Warn("skipped undecodable booking records", zap.Int("count", n))
	}
}

// --- Helpers ---

func toBookingDTO(bk *booking.Booking) BookingDTO {
	return BookingDTO{
		ID:           bk.ID(),
		ListingID:    bk.ListingID(),
		UserID:       bk.UserID(),
		Date:         bk.Date().Format(booking.DateLayout),
		Status:       bk.Status().String(),
		ListingName:  bk.SnapshotName(),
		ListingImage: bk.SnapshotImage(),
		CreatedAt:    bk.CreatedAt(),
	}
}

func toBookingDTOs(bookings []*booking.Booking) []BookingDTO {
	dtos := make([]BookingDTO, len(bookings))
	for i, bk := range bookings {
		dtos[i] = toBookingDTO(bk)
	}
	return dtos
}
