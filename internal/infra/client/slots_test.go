//go:build unit

package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"table-booking/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *SlotClient {
	return NewSlotClient(config.SlotOracleConfig{BaseURL: url + "/", Timeout: time.Second})
}

func TestSlotClient_AvailableTimes(t *testing.T) {
	locationID := uuid.New()

	t.Run("returns slots and sends the query", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/locations/"+locationID.String()+"/availability", r.URL.Path)
			assert.Equal(t, "2025-06-01", r.URL.Query().Get("date"))
			assert.Equal(t, "4", r.URL.Query().Get("partySize"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"slots":["18:00","18:30"]}`))
		}))
		defer srv.Close()

		slots, err := newTestClient(srv.URL).AvailableTimes(context.Background(), locationID, "2025-06-01", 4)

		require.NoError(t, err)
		assert.Equal(t, []string{"18:00", "18:30"}, slots)
	})

	t.Run("retries server errors", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			_, _ = w.Write([]byte(`{"slots":["19:00"]}`))
		}))
		defer srv.Close()

		slots, err := newTestClient(srv.URL).AvailableTimes(context.Background(), locationID, "2025-06-01", 2)

		require.NoError(t, err)
		assert.Equal(t, []string{"19:00"}, slots)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("does not retry client errors", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			http.Error(w, "unknown location", http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).AvailableTimes(context.Background(), locationID, "2025-06-01", 2)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).AvailableTimes(context.Background(), locationID, "2025-06-01", 2)

		require.Error(t, err)
		assert.Equal(t, int32(maxOracleRetries+1), calls.Load())
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).AvailableTimes(context.Background(), locationID, "2025-06-01", 2)

		assert.Error(t, err)
	})
}
