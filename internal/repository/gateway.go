package repository

import (
	"gorm.io/gorm"

	"github.com/staynest/service-stay/internal/domain/booking"
	"github.com/staynest/service-stay/internal/domain/listing"
)

// Gateway is the full backend surface: listings and bookings.
type Gateway interface {
	listing.Gateway
	booking.Gateway
}

// GormGateway stores listing and booking documents in Postgres through GORM.
type GormGateway struct {
	db *gorm.DB
}

// NewGormGateway creates a new GormGateway.
func NewGormGateway(db *gorm.DB) *GormGateway {
	return &GormGateway{db: db}
}

// Models returns the GORM models for auto-migration.
func Models() []interface{} {
	return []interface{}{&ListingModel{}, &BookingModel{}}
}

var (
	_ Gateway = (*GormGateway)(nil)
	_ Gateway = (*MemoryGateway)(nil)
)
