package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/staynest/service-stay/internal/domain/identity"
	"github.com/staynest/service-stay/internal/domain/listing"
	"github.com/staynest/service-stay/internal/events"
	"github.com/staynest/service-stay/internal/pkg/domain"
)

// CreateListingRequest holds the fields of a new listing.
type CreateListingRequest struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Price       string `json:"price"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// ListingDTO is the response representation of a listing.
type ListingDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Price       string  `json:"price"`
	NightlyRate float64 `json:"nightly_rate"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
}

// ListingService orchestrates catalog browsing and listing management.
type ListingService struct {
	backend Backend
	policy  identity.AdminPolicy
	events  eventBus
	logger  *zap.Logger
}

// NewListingService creates a new ListingService. publisher may be nil.
func NewListingService(backend Backend, policy identity.AdminPolicy, publisher EventPublisher, logger *zap.Logger) *ListingService {
	return &ListingService{
		backend: backend,
		policy:  policy,
		events:  eventBus{publisher: publisher, logger: logger},
		logger:  logger,
	}
}

// ListListings loads the catalog, filters it by query and orders it by sort.
func (s *ListingService) ListListings(ctx context.Context, query, sort string) ([]ListingDTO, error) {
	criterion, err := listing.ParseSortCriterion(sort)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	results := catalog.SortedBy(criterion, catalog.Search(query))
	return toListingDTOs(results), nil
}

// GetListing returns a single listing by id.
func (s *ListingService) GetListing(ctx context.Context, id string) (*ListingDTO, error) {
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	l, err := catalog.Find(id)
	if err != nil {
		return nil, err
	}
	result := toListingDTO(l)
	return &result, nil
}

// CreateListing adds a listing on behalf of the admin.
func (s *ListingService) CreateListing(ctx context.Context, caller identity.AuthContext, req CreateListingRequest) (*ListingDTO, error) {
	if err := requireAdmin(s.policy, caller); err != nil {
		return nil, err
	}

	catalog := listing.NewCatalog(s.backend)
	l, err := catalog.AddListing(ctx, listing.Fields{
		Name:        req.Name,
		Location:    req.Location,
		PriceLabel:  req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("listing created",
		zap.String("listing_id", l.ID()),
		zap.String("name", l.Name()),
	)
	s.events.publish(ctx, events.TopicListingEvents, events.ListingCreated, l.ID(), events.ListingCreatedEvent{
		ListingID:  l.ID(),
		Name:       l.Name(),
		Location:   l.Location(),
		PriceLabel: l.PriceLabel(),
		CreatedBy:  caller.Email,
		OccurredAt: now(),
	})

	result := toListingDTO(l)
	return &result, nil
}

func (s *ListingService) loadCatalog(ctx context.Context) (*listing.Catalog, error) {
	catalog := listing.NewCatalog(s.backend)
	if err := catalog.Load(ctx); err != nil {
		s.logger.Error("failed to load listings", zap.Error(err))
		return nil, err
	}
	if n := catalog.Skipped(); n > 0 {
		s.logger.Warn("skipped undecodable listing records", zap.Int("count", n))
	}
	return catalog, nil
}

func toListingDTO(l *listing.Listing) ListingDTO {
	return ListingDTO{
		ID:          l.ID(),
		Name:        l.Name(),
		Location:    l.Location(),
		Price:       l.PriceLabel(),
		NightlyRate: l.NightlyRate(),
		Description: l.Description(),
		ImageURL:    l.ImageURL(),
	}
}

func toListingDTOs(ls []*listing.Listing) []ListingDTO {
	dtos := make([]ListingDTO, len(ls))
	for i, l := range ls {
		dtos[i] = toListingDTO(l)
	}
	return dtos
}
