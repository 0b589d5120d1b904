package models

import "time"

// ChangeEvent is the notification published when the accidents table is
// modified. It carries no row data: consumers treat it purely as an
// invalidation signal and refetch.
type ChangeEvent struct {
	Table      string    `json:"table"`
	Op         string    `json:"op,omitempty"` // insert, update or delete; informational only
	OccurredAt time.Time `json:"occurred_at"`
}

// DashboardFrame is the message pushed to connected dashboard browsers after
// a snapshot refresh
type DashboardFrame struct {
	Event     string    `json:"event"`
	Count     int       `json:"count"`
	Timestamp time.Time `json:"timestamp"`
}
