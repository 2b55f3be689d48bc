package domain

import "context"

// CatalogRepository provides access to the remote creature catalog.
// Every call is a single attempt: no retries and no caching.
type CatalogRepository interface {
	// FetchList returns one page of the listing endpoint
	FetchList(ctx context.Context, cursor PageCursor) (Page, error)

	// FetchDetailByName returns the detail record for a catalog slug
	FetchDetailByName(ctx context.Context, name string) (DetailRecord, error)

	// FetchDetailByID returns the detail record for a positive catalog ID
	FetchDetailByID(ctx context.Context, id int) (DetailRecord, error)
}
