package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	bookingDomain "github.com/staynest/service-stay/internal/domain/booking"
	"github.com/staynest/service-stay/internal/pkg/domain"
)

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ListingID     *string    `gorm:"size:64;index"`
	UserID        *string    `gorm:"size:128;index"`
	Date          *time.Time `gorm:"type:date"`
	Status        *string    `gorm:"size:20;index"`
	SnapshotName  *string    `gorm:"size:200"`
	SnapshotImage *string    `gorm:"type:text"`
	CreatedAt     time.Time  `gorm:"not null;index"`
	UpdatedAt     time.Time  `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// FetchAllBookings returns every booking document, oldest first.
func (g *GormGateway) FetchAllBookings(ctx context.Context) ([]bookingDomain.Record, error) {
	var models []BookingModel
	if err := g.db.WithContext(ctx).
		Order("created_at ASC").
		Order("id ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	return toBookingRecords(models), nil
}

// FetchBookingsForUser returns the bookings owned by userID, oldest first.
func (g *GormGateway) FetchBookingsForUser(ctx context.Context, userID string) ([]bookingDomain.Record, error) {
	var models []BookingModel
	if err := g.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch user bookings: %w", err)
	}
	return toBookingRecords(models), nil
}

// CreateBooking inserts an unsaved booking and assigns its id.
func (g *GormGateway) CreateBooking(ctx context.Context, bk *bookingDomain.Booking) (*bookingDomain.Booking, error) {
	model := toBookingModel(uuid.New(), bk)
	if err := g.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return bookingDomain.ReconstructBooking(
		model.ID.String(),
		bk.ListingID(),
		bk.UserID(),
		bk.Date(),
		bk.Status(),
		bk.SnapshotName(),
		bk.SnapshotImage(),
		model.CreatedAt,
	), nil
}

// UpdateBookingStatus sets the status only if the stored one still equals expected.
func (g *GormGateway) UpdateBookingStatus(ctx context.Context, id string, expected, next bookingDomain.BookingStatus) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return domain.NewNotFoundError("Booking", id)
	}

	result := g.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("id = ? AND status = ?", uid, string(expected)).
		Updates(map[string]interface{}{
			"status":     string(next),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update booking status: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var current BookingModel
	if err := g.db.WithContext(ctx).Where("id = ?", uid).First(&current).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewNotFoundError("Booking", id)
		}
		return fmt.Errorf("failed to reload booking: %w", err)
	}
	stored := ""
	if current.Status != nil {
		stored = *current.Status
	}
	return domain.NewInvalidStateError(stored, string(next))
}

// --- Conversion Helpers ---

func toBookingModel(id uuid.UUID, bk *bookingDomain.Booking) *BookingModel {
	listingID, userID := bk.ListingID(), bk.UserID()
	date := bk.Date()
	status := string(bk.Status())
	name, image := bk.SnapshotName(), bk.SnapshotImage()
	now := time.Now().UTC()
	createdAt := bk.CreatedAt()
	if createdAt.IsZero() {
		createdAt = now
	}
	return &BookingModel{
		ID:            id,
		ListingID:     &listingID,
		UserID:        &userID,
		Date:          &date,
		Status:        &status,
		SnapshotName:  &name,
		SnapshotImage: &image,
		CreatedAt:     createdAt,
		UpdatedAt:     now,
	}
}

func toBookingRecords(models []BookingModel) []bookingDomain.Record {
	records := make([]bookingDomain.Record, len(models))
	for i := range models {
		m := &models[i]
		id := m.ID.String()
		createdAt := m.CreatedAt
		records[i] = bookingDomain.Record{
			ID:            &id,
			ListingID:     m.ListingID,
			UserID:        m.UserID,
			Date:          m.Date,
			Status:        m.Status,
			SnapshotName:  m.SnapshotName,
			SnapshotImage: m.SnapshotImage,
			CreatedAt:     &createdAt,
		}
	}
	return records
}
