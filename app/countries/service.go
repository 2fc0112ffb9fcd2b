package countries

import (
	"context"

	"github.com/joefazee/countrysearch/models"
)

// service implements the Service interface
type service struct {
	state              *State
	placeholderFlagURL string
}

// NewService creates a search service over state
func NewService(state *State, placeholderFlagURL string) Service {
	return &service{
		state:              state,
		placeholderFlagURL: placeholderFlagURL,
	}
}

// Search returns the cards matching query, or models.ErrStillLoading
func (s *service) Search(_ context.Context, query string) ([]CardResponse, error) {
	view := BuildView(s.state.Snapshot(), query, s.placeholderFlagURL)
	if view.Loading() {
		return nil, models.ErrStillLoading
	}
	return ToCardResponseList(view.Cards), nil
}

// Page builds the full page view for query
func (s *service) Page(_ context.Context, query string) PageView {
	return BuildView(s.state.Snapshot(), query, s.placeholderFlagURL)
}

// Status reports the load state
func (s *service) Status(_ context.Context) *StatusResponse {
	snap := s.state.Snapshot()
	resp := &StatusResponse{
		Loading: snap.Loading,
		Failed:  snap.Failed,
		Total:   len(snap.All),
	}
	if !snap.Loading {
		loadedAt := snap.LoadedAt
		resp.LoadedAt = &loadedAt
	}
	return resp
}
