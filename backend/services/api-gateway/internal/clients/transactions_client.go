package clients

import (
	"context"
	"net/http"
	"strconv"
)

// TransactionsClient proxies the per-user swap and payment history.
type TransactionsClient struct {
	base *BaseClient
}

// NewTransactionsClient returns client.
func NewTransactionsClient(baseURL string, httpClient HTTPDoer) *TransactionsClient {
	return &TransactionsClient{base: NewBaseClient("transactions", baseURL, httpClient)}
}

// ListForUser fetches transactions of the given user. A positive limit is
// forwarded; otherwise the upstream default applies.
func (c *TransactionsClient) ListForUser(ctx context.Context, userID int64, limit int) (int, []byte, error) {
	path := "/transactions/me"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	headers := map[string]string{"X-User-ID": strconv.FormatInt(userID, 10)}
	return c.base.Do(ctx, http.MethodGet, path, nil, headers)
}
