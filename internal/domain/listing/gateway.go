package listing

import "context"

// Gateway is the backend document store as seen by the catalog.
type Gateway interface {
	// FetchListings returns every listing document, decodable or not.
	FetchListings(ctx context.Context) ([]Record, error)

	// CreateListing persists a new listing and returns it with its assigned id.
	CreateListing(ctx context.Context, fields Fields) (*Listing, error)
}
