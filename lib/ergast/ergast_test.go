package ergast

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"f1data-backend/lib/telemetry"

	"github.com/stretchr/testify/require"
)

const seasonsBody = `{
	"MRData": {
		"SeasonTable": {
			"Seasons": [
				{"season": "2000", "url": "http://en.wikipedia.org/wiki/2000_Formula_One_season"},
				{"season": "2001"}
			]
		}
	}
}`

func newTestClient(baseUrl string) *Client {
	return NewClient(ClientOptions{
		BaseURL:       baseUrl,
		RateLimit:     time.Millisecond,
		RetryWaitTime: time.Millisecond * 10,
	})
}

func TestRetryAfterTransientErrors(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:ergast")
	defer cleanup()

	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(seasonsBody))
	}))
	defer srv.Close()

	records, err := newTestClient(srv.URL).Seasons(context.Background(), 2000, 2001)
	require.NoError(t, err)
	require.EqualValues(t, 3, attempts.Load())
	require.Len(t, records, 2)
}

func TestRetryBudgetExhausted(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Seasons(context.Background(), 2000, 2001)
	require.Error(t, err)

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	require.Equal(t, http.StatusServiceUnavailable, terr.Status)
	require.Equal(t, "seasons", terr.Endpoint)

	// initial attempt plus two retries, never a fourth
	require.EqualValues(t, 3, attempts.Load())
}

func TestNoRetryOnNotFound(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Drivers(context.Background(), 2021)
	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	require.Equal(t, http.StatusNotFound, terr.Status)
	require.EqualValues(t, 1, attempts.Load())
}

func TestRateLimitSpacesSequentialCalls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(seasonsBody))
	}))
	defer srv.Close()

	rateLimit := time.Millisecond * 60
	c := NewClient(ClientOptions{
		BaseURL:   srv.URL,
		RateLimit: rateLimit,
	})

	// the delay runs inside each successful call, so two calls in a
	// row are spaced by at least one full rate limit each
	start := time.Now()
	for i := 0; i < 2; i++ {
		_, err := c.Seasons(context.Background(), 2000, 2001)
		require.NoError(t, err)
	}
	require.GreaterOrEqual(t, time.Since(start), 2*rateLimit)
}

func TestNoRateLimitDelayOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	rateLimit := time.Millisecond * 300
	c := NewClient(ClientOptions{
		BaseURL:   srv.URL,
		RateLimit: rateLimit,
	})

	start := time.Now()
	_, err := c.Races(context.Background(), 2021)
	require.Error(t, err)
	require.Less(t, time.Since(start), rateLimit)
}

func TestDefaultPageLimit(t *testing.T) {
	var sawLimit atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawLimit.Store(r.URL.Query().Get("limit"))
		w.Write([]byte(seasonsBody))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	_, err := c.request(context.Background(), "seasons", nil)
	require.NoError(t, err)
	require.Equal(t, "1000", sawLimit.Load())

	// a caller-supplied limit wins over the default
	_, err = c.request(context.Background(), "seasons", map[string]string{"limit": "30"})
	require.NoError(t, err)
	require.Equal(t, "30", sawLimit.Load())
}

func TestSchemaErrorOnMissingEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Seasons(context.Background(), 2000, 2001)

	var serr *SchemaError
	require.ErrorAs(t, err, &serr)
	require.Equal(t, "MRData", serr.Field)

	// schema drift must not be mistaken for a transport problem
	var terr *TransportError
	require.False(t, errors.As(err, &terr))
}

func TestSchemaErrorOnMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>definitely not json</html>`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Constructors(context.Background(), 0)

	var serr *SchemaError
	require.ErrorAs(t, err, &serr)
}
