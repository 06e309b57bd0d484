package domain

import "time"

// ContentItem is a single piece of creator content pulled from the
// external platform (video, post, short).
type ContentItem struct {
	ID           int64
	SourceID     int64
	ExternalID   string // identifier on the external platform
	Title        string
	Description  *string
	MediaURL     string
	ThumbnailURL *string
	Duration     int // seconds, 0 for non-video content
	PublishedAt  time.Time
	LastModified time.Time
	Stats        *ContentStats
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ContentStats holds per-item engagement statistics collected from the
// platform alongside the item itself. Written in a second pass after
// the content row exists.
type ContentStats struct {
	ContentID    int64     `db:"content_id"`
	ViewCount    int64     `db:"view_count"`
	LikeCount    int64     `db:"like_count"`
	CommentCount int64     `db:"comment_count"`
	CollectedAt  time.Time `db:"collected_at"`
}
