package creatorhub

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"content_syncer/internal/domain"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(Config{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	}, logger)
}

func TestFetchPage_CursorRequest(t *testing.T) {
	var gotPath, gotCursor, gotSince, gotKey string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotCursor = r.URL.Query().Get("cursor")
		gotSince = r.URL.Query().Get("since")
		gotKey = r.Header.Get("X-Api-Key")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [
				{
					"id": "vid-1",
					"title": "First",
					"mediaUrl": "https://cdn.example.com/vid-1",
					"duration": 120,
					"publishedAt": "2026-08-01T10:00:00Z",
					"lastModified": 1754042400000,
					"stats": {"views": 100, "likes": 5, "comments": 2}
				}
			],
			"nextCursor": "abc"
		}`))
	})

	cursor := "prev"
	page, err := client.FetchPage(context.Background(), "chan-7", domain.PageRequest{
		PageSize: 50,
		Cursor:   &cursor,
	})

	require.NoError(t, err)
	require.Equal(t, "/channels/chan-7/content", gotPath)
	require.Equal(t, "prev", gotCursor)
	require.Empty(t, gotSince)
	require.Equal(t, "test-key", gotKey)

	require.Len(t, page.Items, 1)
	item := page.Items[0]
	require.Equal(t, "vid-1", item.ExternalID)
	require.Equal(t, "First", item.Title)
	require.Equal(t, 120, item.Duration)
	require.Equal(t, time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC), item.PublishedAt)
	require.Equal(t, time.UnixMilli(1754042400000), item.LastModified)
	require.NotNil(t, item.Stats)
	require.Equal(t, int64(100), item.Stats.ViewCount)

	require.NotNil(t, page.NextCursor)
	require.Equal(t, "abc", *page.NextCursor)
}

func TestFetchPage_SinceRequest(t *testing.T) {
	var gotCursor, gotSince string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotCursor = r.URL.Query().Get("cursor")
		gotSince = r.URL.Query().Get("since")
		w.Write([]byte(`{"items": [], "nextCursor": ""}`))
	})

	since := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	page, err := client.FetchPage(context.Background(), "chan-7", domain.PageRequest{
		PageSize: 50,
		Since:    &since,
	})

	require.NoError(t, err)
	require.Empty(t, gotCursor)
	require.Equal(t, "2026-08-20T12:00:00Z", gotSince)
	require.Empty(t, page.Items)
	require.Nil(t, page.NextCursor)
}

func TestFetchPage_UnparsableDatePassesThrough(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"items": [
				{
					"id": "vid-bad",
					"title": "Broken Date",
					"mediaUrl": "https://cdn.example.com/vid-bad",
					"publishedAt": "not-a-date",
					"lastModified": 1754042400000,
					"stats": {}
				}
			]
		}`))
	})

	page, err := client.FetchPage(context.Background(), "chan-7", domain.PageRequest{PageSize: 50})

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	// The zero timestamp is what the ingestor rejects per item.
	require.True(t, page.Items[0].PublishedAt.IsZero())
}

func TestFetchPage_ServerError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.FetchPage(context.Background(), "chan-7", domain.PageRequest{PageSize: 50})

	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status: 500")
}

func TestFetchSourceMeta(t *testing.T) {
	var gotPath string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"id": "chan-7", "totalItems": 4200}`))
	})

	meta, err := client.FetchSourceMeta(context.Background(), "chan-7")

	require.NoError(t, err)
	require.Equal(t, "/channels/chan-7", gotPath)
	require.Equal(t, int64(4200), meta.TotalItems)
}
