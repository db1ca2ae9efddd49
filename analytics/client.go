package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Well-known fixture endpoints.
const (
	EndpointStores       = "stores"
	EndpointProducts     = "products"
	EndpointSalesHistory = "sales_history"
	EndpointPredictions  = "predictions"
	EndpointAlerts       = "alerts"
)

// Fetcher retrieves a named fixture document as raw JSON.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint string) ([]byte, error)
}

// FixtureClient fetches fixture documents over HTTP from
// {baseURL}/data/{endpoint}.json.
type FixtureClient struct {
	baseURL string
	client  *resty.Client
}

// NewFixtureClient returns a client rooted at baseURL.
func NewFixtureClient(baseURL string) *FixtureClient {
	client := resty.New().
		SetTimeout(10 * time.Second)
	return &FixtureClient{
		baseURL: baseURL,
		client:  client,
	}
}

// Fetch performs a single GET for the named document. There is no retry
// policy: a failed attempt reports immediately so the caller can fall back.
func (fc *FixtureClient) Fetch(ctx context.Context, endpoint string) ([]byte, error) {
	url := fmt.Sprintf("%s/data/%s.json", fc.baseURL, endpoint)

	resp, err := fc.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("fixture fetch failed for %s: %w", endpoint, err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("fixture fetch for %s returned HTTP %d", endpoint, resp.StatusCode())
	}
	return resp.Body(), nil
}
