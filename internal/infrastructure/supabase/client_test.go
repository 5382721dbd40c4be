package supabase

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/horus-listing/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(&config.SupabaseConfig{
		URL:            server.URL + "/",
		ServiceKey:     "service-key",
		RequestTimeout: 5 * time.Second,
	}, zap.NewNop())
}

func TestClient_Select(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/cities", r.URL.Path)
		assert.Equal(t, "service-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("Prefer"))
		assert.Equal(t, "eq.القاهرة", r.URL.Query().Get("name"))
		assert.Equal(t, "name.asc", r.URL.Query().Get("order"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":"c1","name":"القاهرة"}]`)
	})

	var rows []map[string]string
	err := client.Select(context.Background(), "cities", url.Values{
		"name":  {Eq("القاهرة")},
		"order": {"name.asc"},
	}, &rows)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "c1", rows[0]["id"])
}

func TestClient_InsertAsksForRepresentation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "الجيزة", body["name"])

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `[{"id":"c2","name":"الجيزة"}]`)
	})

	var rows []map[string]string
	err := client.Insert(context.Background(), "cities", map[string]string{"name": "الجيزة"}, &rows)
	require.NoError(t, err)
	assert.Equal(t, "c2", rows[0]["id"])
}

func TestClient_RPC(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/rpc/generate_next_property_code", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{}`, string(body))
		_, _ = io.WriteString(w, `"Horus012"`)
	})

	var code string
	require.NoError(t, client.RPC(context.Background(), "generate_next_property_code", nil, &code))
	assert.Equal(t, "Horus012", code)
}

func TestClient_APIError(t *testing.T) {
	t.Run("postgrest error body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = io.WriteString(w, `{"code":"23505","message":"duplicate key value violates unique constraint"}`)
		})

		err := client.Insert(context.Background(), "cities", map[string]string{"name": "x"}, nil)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
		assert.Equal(t, "23505", apiErr.Code)
	})

	t.Run("plain text body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = io.WriteString(w, "upstream unavailable")
		})

		err := client.Health(context.Background())
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "upstream unavailable", apiErr.Message)
	})
}
