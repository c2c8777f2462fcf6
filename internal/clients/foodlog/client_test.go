package foodlog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutritrack/internal/api/apierror"
	"nutritrack/internal/api/client"
	"nutritrack/internal/config"
	"nutritrack/internal/logging"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		Environment: config.Development,
		API: config.APIConfig{
			BaseURL:        srv.URL,
			Version:        "v1",
			RequestTimeout: 5 * time.Second,
		},
	}
	return New(client.New(cfg, client.StaticTokenSource("tok"), logging.NewNop()), logging.NewNop())
}

func TestList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/food/logs", r.URL.Path)
		assert.Equal(t, "2026-08-01", r.URL.Query().Get("from"))
		assert.Equal(t, "breakfast", r.URL.Query().Get("meal_type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"e-1","food_id":"f-1","food_name":"Oats","meal_type":"breakfast",
			 "servings":1,"calories":389,"logged_at":"2026-08-01T07:15:00.000000Z"}
		]`))
	})

	entries, err := c.List(context.Background(), Filter{From: "2026-08-01", MealType: "breakfast"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Oats", entries[0].FoodName)
	assert.Equal(t, 2026, entries[0].LoggedAt.Year())
}

func TestCreate(t *testing.T) {
	t.Run("valid entry", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1/food/logs", r.URL.Path)
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"e-2","food_id":"f-9","food_name":"Banana",
				"meal_type":"snack","servings":1,"calories":105,
				"logged_at":"2026-08-29T12:00:00.000000Z"}`))
		})

		entry, err := c.Create(context.Background(), NewEntry{
			FoodID:   "f-9",
			MealType: "snack",
			Servings: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, "e-2", entry.ID)
	})

	t.Run("bad meal type never reaches the server", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("request should not be sent")
		})

		_, err := c.Create(context.Background(), NewEntry{
			FoodID:   "f-9",
			MealType: "brunch",
			Servings: 1,
		})
		assert.Error(t, err)
	})
}

func TestGet_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.Get(context.Background(), "missing")
	assert.True(t, apierror.IsNotFound(err))
}

func TestDelete(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/food/logs/e-3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, c.Delete(context.Background(), "e-3"))
}
