package report

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T, gateways map[string]*fakeGateway) *fiber.App {
	t.Helper()
	app := fiber.New()
	svc := newTestService(t, Config{}, gateways)
	feature := NewFeature(svc, 5*time.Second)
	require.NoError(t, feature.Load(app))
	return app
}

func TestLoader(t *testing.T) {
	feature := NewFeature(newTestService(t, Config{}, nil), 0)
	assert.Equal(t, "report", feature.Name())
	assert.True(t, feature.IsEnabled())
}

func TestHandleDevices(t *testing.T) {
	app := setupTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/report", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 2)
	assert.Equal(t, "lb01", body[0]["device"])
}

func TestHandleReport(t *testing.T) {
	app := setupTestApp(t, map[string]*fakeGateway{"10.0.0.10": {}})

	resp, err := app.Test(httptest.NewRequest("GET", "/report/lb01", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "lb01", body.Device)
	assert.Equal(t, "DC1", body.DataCenter)
	assert.Len(t, body.Rows, 2)
	assert.Equal(t, 1, body.Summary.Pool["available"])
}

func TestHandleReport_UnknownDevice(t *testing.T) {
	app := setupTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/report/lb09", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleReport_CollectionFailure(t *testing.T) {
	app := setupTestApp(t, map[string]*fakeGateway{"10.0.0.10": {poolsErr: errUnreachable}})

	resp, err := app.Test(httptest.NewRequest("GET", "/report/lb01", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 502, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Pools", body["class"])
	assert.Equal(t, "listing", body["collection"])
}

func TestHandleReport_Unreachable(t *testing.T) {
	// No gateway for lb01: dialing fails with a plain error.
	app := setupTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/report/lb01", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestHandleSummary(t *testing.T) {
	app := setupTestApp(t, map[string]*fakeGateway{"10.0.0.11": {}})

	resp, err := app.Test(httptest.NewRequest("GET", "/report/lb02/summary", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body SummaryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "lb02", body.Device)
	require.Len(t, body.Tallies, 3)
	assert.Equal(t, 2, body.Tallies[0].Total)
}

func TestHandleSummary_StatsFailure(t *testing.T) {
	app := setupTestApp(t, map[string]*fakeGateway{"10.0.0.10": {statsErr: errUnreachable}})

	resp, err := app.Test(httptest.NewRequest("GET", "/report/lb01/summary", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 502, resp.StatusCode)
}
