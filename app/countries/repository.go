package countries

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/joefazee/countrysearch/models"
)

// repository reads the country list from the upstream HTTP endpoint
type repository struct {
	client *http.Client
	url    string
}

// NewRepository creates a repository for the endpoint at url
func NewRepository(client *http.Client, url string) Repository {
	if client == nil {
		client = http.DefaultClient
	}
	return &repository{
		client: client,
		url:    url,
	}
}

// FetchAll issues a single GET and normalizes the body. It never retries.
func (r *repository) FetchAll(ctx context.Context) (*Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch countries: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: %s", models.ErrUpstreamStatus, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read countries body: %w", err)
	}

	return Normalize(body)
}
