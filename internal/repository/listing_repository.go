package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/staynest/service-stay/internal/domain/listing"
)

// ListingModel is the GORM model for the listings table. Content columns
// are nullable: documents written by other clients may lack fields.
type ListingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        *string   `gorm:"size:200"`
	Location    *string   `gorm:"size:200;index"`
	PriceLabel  *string   `gorm:"column:price;size:100"`
	Description *string   `gorm:"type:text"`
	ImageURL    *string   `gorm:"column:image_url;type:text"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

// TableName returns the table name for the GORM model.
func (ListingModel) TableName() string {
	return "listings"
}

// FetchListings returns every listing document in insertion order.
func (g *GormGateway) FetchListings(ctx context.Context) ([]listing.Record, error) {
	var models []ListingModel
	if err := g.db.WithContext(ctx).
		Order("created_at ASC").
		Order("id ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch listings: %w", err)
	}

	records := make([]listing.Record, len(models))
	for i := range models {
		records[i] = toListingRecord(&models[i])
	}
	return records, nil
}

// CreateListing inserts a new listing document.
func (g *GormGateway) CreateListing(ctx context.Context, fields listing.Fields) (*listing.Listing, error) {
	model := toListingModel(uuid.New(), fields)
	if err := g.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}
	return listing.Reconstruct(model.ID.String(), fields), nil
}

// --- Conversion Helpers ---

func toListingModel(id uuid.UUID, f listing.Fields) *ListingModel {
	return &ListingModel{
		ID:          id,
		Name:        &f.Name,
		Location:    &f.Location,
		PriceLabel:  &f.PriceLabel,
		Description: &f.Description,
		ImageURL:    &f.ImageURL,
		CreatedAt:   time.Now().UTC(),
	}
}

func toListingRecord(m *ListingModel) listing.Record {
	id := m.ID.String()
	return listing.Record{
		ID:          &id,
		Name:        m.Name,
		Location:    m.Location,
		PriceLabel:  m.PriceLabel,
		Description: m.Description,
		ImageURL:    m.ImageURL,
	}
}
