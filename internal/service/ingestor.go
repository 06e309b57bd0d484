package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"content_syncer/internal/domain"
)

var errMalformedItem = errors.New("malformed item")

// ContentIngestor performs idempotent upsert of fetched items plus a
// second pass writing the derived per-item statistics. A malformed or
// failing item is counted and skipped; it never aborts the batch.
type ContentIngestor struct {
	contents  ContentStore
	stats     ContentStatsStore
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
	now       func() time.Time
}

func NewContentIngestor(
	contents ContentStore,
	stats ContentStatsStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *ContentIngestor {
	return &ContentIngestor{
		contents:  contents,
		stats:     stats,
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// IngestBatch upserts one page of items for a source. The returned
// error is batch-level only (infrastructure failure before any item
// was attempted); per-item failures land in the failed count.
func (g *ContentIngestor) IngestBatch(ctx context.Context, sourceID int64, items []domain.ContentItem) (int, int, error) {
	if len(items) == 0 {
		return 0, 0, nil
	}

	externalIDs := make([]string, 0, len(items))
	for _, it := range items {
		if it.ExternalID != "" {
			externalIDs = append(externalIDs, it.ExternalID)
		}
	}

	existing, err := g.contents.GetExistingByExternalIDs(ctx, sourceID, externalIDs)
	if err != nil {
		return 0, 0, fmt.Errorf("query existing items: %w", err)
	}

	var ingested, failed int
	for i := range items {
		item := &items[i]
		item.SourceID = sourceID

		if err := validateItem(item); err != nil {
			g.logger.Warn("skipping malformed item",
				"source_id", sourceID,
				"external_id", item.ExternalID,
				"error", err,
			)
			failed++
			continue
		}

		_, isNew := existing[item.ExternalID]
		isNew = !isNew

		if err := g.saveItem(ctx, item); err != nil {
			g.logger.Warn("failed to ingest item",
				"source_id", sourceID,
				"external_id", item.ExternalID,
				"error", err,
			)
			failed++
			continue
		}
		ingested++

		// Publishing is secondary; a broker hiccup must not fail the sync.
		if g.publisher != nil {
			if err := g.publisher.Publish(ctx, item, isNew); err != nil {
				g.logger.Warn("failed to publish item event",
					"source_id", sourceID,
					"external_id", item.ExternalID,
					"error", err,
				)
			}
		}
	}

	return ingested, failed, nil
}

func (g *ContentIngestor) saveItem(ctx context.Context, item *domain.ContentItem) error {
	return g.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		contentID, err := g.contents.Upsert(txCtx, item)
		if err != nil {
			return fmt.Errorf("upsert content: %w", err)
		}
		item.ID = contentID

		if item.Stats != nil {
			stats := *item.Stats
			stats.ContentID = contentID
			stats.CollectedAt = g.now()
			if err := g.stats.Upsert(txCtx, &stats); err != nil {
				return fmt.Errorf("upsert stats: %w", err)
			}
		}

		return nil
	})
}

func validateItem(item *domain.ContentItem) error {
	switch {
	case item.ExternalID == "":
		return fmt.Errorf("%w: missing external id", errMalformedItem)
	case item.Title == "":
		return fmt.Errorf("%w: missing title", errMalformedItem)
	case item.PublishedAt.IsZero():
		return fmt.Errorf("%w: missing publish date", errMalformedItem)
	}
	return nil
}
