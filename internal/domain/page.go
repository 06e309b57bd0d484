package domain

import "time"

// PageRequest asks the platform for one page of content. Exactly one
// of Cursor or Since is set: Cursor drives a full crawl, Since drives
// an incremental one.
type PageRequest struct {
	Cursor   *string
	Since    *time.Time
	PageSize int
}

// PageResult is one fetched page. A nil NextCursor means the crawl is
// exhausted.
type PageResult struct {
	Items      []ContentItem
	NextCursor *string
}

// SourceMeta is the cheap metadata view of an external account, used
// to plan a full recrawl.
type SourceMeta struct {
	TotalItems int64
}
