package countries

import "context"

// Repository defines access to the upstream country list
type Repository interface {
	FetchAll(ctx context.Context) (*Payload, error)
}

// Service defines the search operations behind the handlers
type Service interface {
	Search(ctx context.Context, query string) ([]CardResponse, error)
	Page(ctx context.Context, query string) PageView
	Status(ctx context.Context) *StatusResponse
}
