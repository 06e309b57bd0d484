package domain

import "time"

// SyncRunStats summarizes a single sync run for one source.
type SyncRunStats struct {
	SourceID int64
	Mode     SyncMode
	Pages    int
	Ingested int
	Failed   int
	Paused   bool // stopped early by the soft quota gate
	Duration time.Duration
}
