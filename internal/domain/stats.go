package domain

import "time"

// TicketStats aggregates the current ticket population. It is derived on
// demand and never persisted. Status counts use fixed fields; the type
// breakdown only carries keys for types actually present.
type TicketStats struct {
	Total             int                `json:"total"`
	Open              int                `json:"open"`
	InProgress        int                `json:"in_progress"`
	OnHold            int                `json:"on_hold"`
	Resolved          int                `json:"resolved"`
	Closed            int                `json:"closed"`
	ByType            map[TicketType]int `json:"by_type"`
	AvgResolutionTime time.Duration      `json:"avg_resolution_time"`
}
