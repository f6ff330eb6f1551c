package footballdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const seasonPayload = `{
	"name": "English Premier League 2025/26",
	"matches": [
		{
			"round": "Matchday 1",
			"date": "2025-08-16",
			"team1": "Arsenal FC",
			"team2": "Manchester City FC",
			"score": {"ft": [2, 1]}
		},
		{
			"round": "Matchday 2",
			"date": "2025-08-23",
			"team1": "Liverpool FC",
			"team2": "Arsenal FC",
			"score": {"ft": [1, 1]}
		},
		{
			"round": "Matchday 38",
			"date": "2026-05-24",
			"team1": "Arsenal FC",
			"team2": "Liverpool FC"
		}
	]
}`

func TestClient_RecentResults(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/2025-26/en.1.json", r.URL.Path)
		_, _ = w.Write([]byte(seasonPayload))
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		BaseURL: server.URL,
		Seasons: []string{"2025-26"},
		Timeout: 2 * time.Second,
	})

	corpus, err := client.RecentResults(context.Background())
	require.NoError(t, err)

	// The unplayed matchday 38 entry has no full-time score and is dropped.
	require.Len(t, corpus, 2)
	require.Equal(t, "Arsenal FC", corpus[0].HomeTeam)
	require.Equal(t, "Manchester City FC", corpus[0].AwayTeam)
	require.Equal(t, 2, corpus[0].HomeGoals)
	require.Equal(t, 1, corpus[0].AwayGoals)
	require.Equal(t, "2025-26", corpus[0].Season)
	require.Equal(t, time.Date(2025, 8, 16, 0, 0, 0, 0, time.UTC), corpus[0].Date)
}

func TestClient_RecentResultsSkipsBrokenSeason(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/2024-25/en.1.json" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(seasonPayload))
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		BaseURL: server.URL,
		Seasons: []string{"2025-26", "2024-25"},
		Timeout: 2 * time.Second,
	})

	corpus, err := client.RecentResults(context.Background())
	require.NoError(t, err)
	require.Len(t, corpus, 2)
}

func TestClient_RecentResultsFailsWhenNothingReachable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		BaseURL: server.URL,
		Seasons: []string{"2025-26", "2024-25"},
		Timeout: 2 * time.Second,
	})

	_, err := client.RecentResults(context.Background())
	require.Error(t, err)
}
