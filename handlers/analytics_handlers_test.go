package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"smartstock/ai"
	"smartstock/analytics"
)

// stubFetcher serves canned fixture payloads without any network.
type stubFetcher struct {
	payloads map[string]string
}

func (s *stubFetcher) Fetch(ctx context.Context, endpoint string) ([]byte, error) {
	payload, ok := s.payloads[endpoint]
	if !ok {
		return nil, errors.New("no such fixture")
	}
	return []byte(payload), nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	fetcher := &stubFetcher{payloads: map[string]string{
		analytics.EndpointStores: `{"stores":[
			{"id":"ST-001","name":"Koramangala","region":"south","health_score":92,"monthly_revenue":48500000,"inventory_turnover":11.2,"stockout_incidents":1,"risk_level":"low"},
			{"id":"ST-006","name":"Sector 17","region":"north","health_score":47,"monthly_revenue":18600000,"inventory_turnover":4.1,"stockout_incidents":12,"risk_level":"high"}
		]}`,
	}}
	Init(analytics.NewService(fetcher, 0), ai.NewGeminiGenerator(""))

	app := fiber.New()
	app.Get("/api/v1/analytics/stores", HandleGetStores)
	app.Get("/api/v1/analytics/regional-comparison", HandleGetRegionalComparison)
	app.Get("/api/v1/analytics/roi", HandleCalculateROI)
	app.Post("/api/v1/ai/insights", HandleGenerateInsight)
	return app
}

func TestHandleGetStores(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/api/v1/analytics/stores?region=north", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var envelope struct {
		Status string `json:"status"`
		Data   struct {
			Stores []struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"stores"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, "success", envelope.Status)
	if assert.Len(t, envelope.Data.Stores, 1) {
		assert.Equal(t, "ST-006", envelope.Data.Stores[0].ID)
		assert.Equal(t, "critical", envelope.Data.Stores[0].Status)
	}
}

func TestHandleGetStoresBadMinHealth(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/api/v1/analytics/stores?min_health=abc", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleGetRegionalComparison(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/api/v1/analytics/regional-comparison", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"performance_grade"`)
}

func TestHandleCalculateROI(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/api/v1/analytics/roi?investment=1200000&monthly_savings=100000", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	bad := httptest.NewRequest("GET", "/api/v1/analytics/roi?investment=abc", nil)
	resp, err = app.Test(bad, -1)
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleGenerateInsightOffline(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("POST", "/api/v1/ai/insights",
		strings.NewReader(`{"kind":"reorder_strategy","context":{"critical_products":2}}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"is_fallback":true`)
}

func TestHandleGenerateInsightMissingKind(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("POST", "/api/v1/ai/insights", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
