package domain

import "time"

// Event is a department announcement. Events have an independent
// lifecycle; nothing references them and they reference nothing.
type Event struct {
	ID          string
	Title       string
	Description string
	Date        time.Time // calendar date, time-of-day ignored
	Location    string
	CreatedAt   time.Time
}
