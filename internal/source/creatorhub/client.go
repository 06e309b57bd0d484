package creatorhub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"content_syncer/internal/domain"
)

const Provider = "creatorhub"

// Config holds CreatorHub API client configuration.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client fetches paginated channel content from the CreatorHub API.
// Transport errors surface to the caller unretried; the orchestrator
// retries on its next cycle so quota use per cycle stays bounded.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

// New creates a CreatorHub API client.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger.With("provider", Provider),
	}
}

// Provider returns the provider identifier.
func (c *Client) Provider() string {
	return Provider
}

// FetchPage fetches one page of content for a channel. Cursor and
// Since are mutually exclusive per the page contract.
func (c *Client) FetchPage(ctx context.Context, externalID string, req domain.PageRequest) (*domain.PageResult, error) {
	q := url.Values{}
	q.Set("pageSize", strconv.Itoa(req.PageSize))
	if req.Cursor != nil {
		q.Set("cursor", *req.Cursor)
	} else if req.Since != nil {
		q.Set("since", req.Since.UTC().Format(time.RFC3339))
	}

	endpoint := fmt.Sprintf("%s/channels/%s/content?%s", c.baseURL, url.PathEscape(externalID), q.Encode())

	var resp apiResponse
	if err := c.doRequest(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	result := &domain.PageResult{
		Items: c.transform(externalID, resp.Items),
	}
	if resp.NextCursor != "" {
		result.NextCursor = &resp.NextCursor
	}

	c.logger.Debug("fetched page",
		"external_id", externalID,
		"items", len(resp.Items),
		"has_next", result.NextCursor != nil,
	)

	return result, nil
}

// FetchSourceMeta returns the approximate total item count for a
// channel, used to plan a full recrawl.
func (c *Client) FetchSourceMeta(ctx context.Context, externalID string) (*domain.SourceMeta, error) {
	endpoint := fmt.Sprintf("%s/channels/%s", c.baseURL, url.PathEscape(externalID))

	var resp metaResponse
	if err := c.doRequest(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	return &domain.SourceMeta{TotalItems: resp.TotalItems}, nil
}

func (c *Client) doRequest(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "ContentSyncer/1.0")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// transform maps API payloads to domain items. Items with an
// unparsable publish date pass through with a zero timestamp; the
// ingestor counts them as failed without aborting the batch.
func (c *Client) transform(externalID string, items []apiItem) []domain.ContentItem {
	out := make([]domain.ContentItem, 0, len(items))

	for _, it := range items {
		publishedAt, err := time.Parse(time.RFC3339, it.PublishedAt)
		if err != nil {
			c.logger.Warn("failed to parse publish date",
				"external_id", externalID,
				"item_id", it.ID,
				"published_at", it.PublishedAt,
			)
			publishedAt = time.Time{}
		}

		item := domain.ContentItem{
			ExternalID:   it.ID,
			Title:        it.Title,
			Description:  it.Description,
			MediaURL:     it.MediaURL,
			ThumbnailURL: it.ThumbnailURL,
			Duration:     it.Duration,
			PublishedAt:  publishedAt,
			LastModified: time.UnixMilli(it.LastModified),
			Stats: &domain.ContentStats{
				ViewCount:    it.Stats.Views,
				LikeCount:    it.Stats.Likes,
				CommentCount: it.Stats.Comments,
			},
		}

		out = append(out, item)
	}

	return out
}
