package cronedit

import (
	"context"
	"time"
)

// Record is a named, persisted cron expression.
type Record struct {
	// ID is the store-specific identifier, nil until the record is saved.
	ID interface{}

	// Name identifies the record. Saving under an existing name replaces it.
	Name string

	// Cron is the canonical expression.
	Cron string

	// Mode and Dialect describe how Cron was produced. They are informational;
	// Restore re-derives the mode by decoding Cron.
	Mode    Mode
	Dialect Dialect

	UpdatedAt time.Time
}

// ScheduleStore defines the persistence operations an Editor can use to save
// and restore expressions. The editor itself never persists anything unless
// the host calls Save.
//
// Implementations must be safe for concurrent use.
type ScheduleStore interface {
	// Save inserts the record or replaces the one with the same name.
	Save(ctx context.Context, record *Record) error

	// Load returns the record stored under name.
	// Returns an error wrapping ErrRecordNotFound if there is none.
	Load(ctx context.Context, name string) (*Record, error)

	// Remove deletes the record stored under name.
	// Returns an error wrapping ErrRecordNotFound if there is none.
	Remove(ctx context.Context, name string) error
}
