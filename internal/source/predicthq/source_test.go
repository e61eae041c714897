package predicthq

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip_aggregator/internal/domain"
)

func testSource(serverURL string) *Source {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(Config{
		BaseURL: serverURL,
		Token:   "test-token",
		Country: "IN",
		Limit:   10,
		Timeout: 5 * time.Second,
	}, logger)
}

func TestEvents_QueryCarriesCountryLimitAndBearer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/events/", r.URL.Path)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "IN", r.URL.Query().Get("country"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	events, err := testSource(server.URL).Events(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestEvents_MapsFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"results": [{
				"id": "abc123",
				"title": "Diwali Festival",
				"start": "2024-11-01T18:00:00Z",
				"category": "festivals",
				"entities": [{"name": "City Grounds"}],
				"location": [77.59, 12.97]
			}]
		}`))
	}))
	defer server.Close()

	events, err := testSource(server.URL).Events(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)

	e := events[0]
	assert.Equal(t, "Diwali Festival", e.Name)
	assert.Equal(t, "2024-11-01", e.Date)
	assert.Equal(t, "City Grounds", e.Venue)
	require.NotNil(t, e.ImageURL)
	assert.Contains(t, *e.ImageURL, "unsplash.com")
	assert.Equal(t, "https://www.predicthq.com/events/abc123", e.Link)
	assert.Equal(t, "Festivals", e.Category)
	assert.Equal(t, SourceID, e.Source)
}

func TestEvents_VenueFallbackChain(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			"string location when no entities",
			`{"results":[{"id":"1","title":"A","location":"MG Road"}]}`,
			"MG Road",
		},
		{
			"country when location is coordinates",
			`{"results":[{"id":"2","title":"B","location":[77.59,12.97]}]}`,
			"IN",
		},
		{
			"country when nothing is set",
			`{"results":[{"id":"3","title":"C"}]}`,
			"IN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			events, err := testSource(server.URL).Events(context.Background())
			require.NoError(t, err)
			require.Len(t, events, 1)
			assert.Equal(t, tt.want, events[0].Venue)
		})
	}
}

func TestEvents_Defaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"id":"x"}]}`))
	}))
	defer server.Close()

	events, err := testSource(server.URL).Events(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)

	e := events[0]
	assert.Equal(t, "Unnamed Event", e.Name)
	assert.Equal(t, "N/A", e.Date)
	assert.Equal(t, "General", e.Category)
	require.NotNil(t, e.ImageURL)
}

func TestEvents_ShortStartKeptAsIs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"id":"x","title":"Short","start":"2024-11"}]}`))
	}))
	defer server.Close()

	events, err := testSource(server.URL).Events(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "2024-11", events[0].Date)
}

func TestEvents_NonOKIsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := testSource(server.URL).Events(context.Background())
	require.ErrorIs(t, err, domain.ErrUpstream)
}

func TestEvents_BrokenBodyIsMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":`))
	}))
	defer server.Close()

	_, err := testSource(server.URL).Events(context.Background())
	require.ErrorIs(t, err, domain.ErrMalformedPayload)
}
