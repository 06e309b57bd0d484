package domain

import "time"

// Source is an external-platform account (channel) registered for
// synchronization.
type Source struct {
	ID         int64     `db:"id"`
	ExternalID string    `db:"external_id"` // account id on the platform
	Provider   string    `db:"provider"`
	Name       string    `db:"name"`
	Active     bool      `db:"active"`
	CreatedAt  time.Time `db:"created_at"`
}
