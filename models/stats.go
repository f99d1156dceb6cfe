package models

import "time"

// AggregateStats are the counters shown above the reservas table, computed in
// one pass over a Snapshot.
type AggregateStats struct {
	Total      int       `json:"total"`
	Today      int       `json:"hoy"`
	Pending    int       `json:"pendientes"`
	Confirmed  int       `json:"confirmadas"`
	Completed  int       `json:"realizadas"`
	Cancelled  int       `json:"canceladas"`
	WithSource int       `json:"origen"`
	ComputedAt time.Time `json:"computedAt"`
}

// Equal compares the counters, ignoring ComputedAt.
func (s AggregateStats) Equal(o AggregateStats) bool {
	s.ComputedAt, o.ComputedAt = time.Time{}, time.Time{}
	return s == o
}
