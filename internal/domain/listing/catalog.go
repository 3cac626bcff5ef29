package listing

import (
	"context"

	"github.com/staynest/service-stay/internal/pkg/domain"
)

// Catalog is an in-memory, ordered view of the backend's listings.
// A Catalog is owned by one caller at a time and is not safe for
// concurrent use.
type Catalog struct {
	gateway  Gateway
	listings []*Listing
	skipped  int
}

// NewCatalog creates an empty Catalog backed by gateway.
func NewCatalog(gateway Gateway) *Catalog {
	return &Catalog{gateway: gateway}
}

// Load replaces the catalog's contents with every listing the gateway
// returns. Records that fail to decode are skipped and counted.
func (c *Catalog) Load(ctx context.Context) error {
	records, err := c.gateway.FetchListings(ctx)
	if err != nil {
		return wrapBackend("fetch listings", err)
	}

	listings := make([]*Listing, 0, len(records))
	skipped := 0
	for _, rec := range records {
		l, err := rec.Decode()
		if err != nil {
			skipped++
			continue
		}
		listings = append(listings, l)
	}

	c.listings = listings
	c.skipped = skipped
	return nil
}

// All returns the loaded listings in load order.
func (c *Catalog) All() []*Listing {
	out := make([]*Listing, len(c.listings))
	copy(out, c.listings)
	return out
}

// Len returns the number of loaded listings.
func (c *Catalog) Len() int { return len(c.listings) }

// Skipped returns how many records the last Load could not decode.
func (c *Catalog) Skipped() int { return c.skipped }

// Search returns the listings whose name or location contains query,
// ignoring case, in load order. An empty query matches everything.
func (c *Catalog) Search(query string) []*Listing {
	if query == "" {
		return c.All()
	}
	out := make([]*Listing, 0, len(c.listings))
	for _, l := range c.listings {
		if l.Matches(query) {
			out = append(out, l)
		}
	}
	return out
}

// SortedBy orders input by criterion. See the package-level SortedBy.
func (c *Catalog) SortedBy(criterion SortCriterion, input []*Listing) []*Listing {
	return SortedBy(criterion, input)
}

// Find returns the loaded listing with the given id.
func (c *Catalog) Find(id string) (*Listing, error) {
	for _, l := range c.listings {
		if l.ID() == id {
			return l, nil
		}
	}
	return nil, domain.NewNotFoundError("Listing", id)
}

// AddListing validates fields, persists them through the gateway and
// appends the stored listing. Invalid fields never reach the gateway.
func (c *Catalog) AddListing(ctx context.Context, fields Fields) (*Listing, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	l, err := c.gateway.CreateListing(ctx, fields)
	if err != nil {
		return nil, wrapBackend("create listing", err)
	}

	c.listings = append(c.listings, l)
	return l, nil
}

func wrapBackend(op string, err error) error {
	if domain.IsDomainError(err) {
		return err
	}
	return domain.NewBackendError(op, err)
}
