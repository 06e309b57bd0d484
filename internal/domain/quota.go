package domain

import "time"

// QuotaUsageRecord is one append-only ledger entry of quota units
// consumed by a billed platform API call.
type QuotaUsageRecord struct {
	ID            int64     `db:"id"`
	Provider      string    `db:"provider"`
	Operation     string    `db:"operation"`
	UnitsConsumed int64     `db:"units_consumed"`
	WindowStart   time.Time `db:"window_start"`
	CreatedAt     time.Time `db:"created_at"`
}

// QuotaSummary is the aggregated budget position for a provider over
// the current window.
type QuotaSummary struct {
	Provider        string  `json:"provider"`
	Consumed        int64   `json:"consumed"`
	Limit           int64   `json:"limit"`
	Remaining       int64   `json:"remaining"`
	UsagePercentage float64 `json:"usage_percentage"`
}
