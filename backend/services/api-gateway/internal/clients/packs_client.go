package clients

import (
	"context"
	"net/http"
)

// PacksClient proxies the service pack catalogue.
type PacksClient struct {
	base *BaseClient
}

// NewPacksClient returns client.
func NewPacksClient(baseURL string, httpClient HTTPDoer) *PacksClient {
	return &PacksClient{base: NewBaseClient("packs", baseURL, httpClient)}
}

// ListPacks fetches upstream data.
func (c *PacksClient) ListPacks(ctx context.Context) (int, []byte, error) {
	return c.base.Do(ctx, http.MethodGet, "/packs", nil, nil)
}
