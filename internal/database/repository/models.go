package repository

import "time"

// Blackout is one persisted blocked date range.
type Blackout struct {
	ID        string
	Label     string
	StartAt   time.Time
	EndAt     time.Time
	CreatedAt time.Time
}
