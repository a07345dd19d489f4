package service

import (
	"context"
	"time"

	"github.com/vex-labs/vex-backend/internal/domain"
	"github.com/vex-labs/vex-backend/internal/store"
)

// StatsService derives aggregate ticket statistics on demand.
type StatsService struct {
	store *store.Store
}

// NewStatsService constructs the service.
func NewStatsService(st *store.Store) *StatsService {
	return &StatsService{store: st}
}

// ComputeStats scans the ticket table once, counting totals, the five status
// buckets, the types actually present, and the mean resolution latency over
// resolved tickets (0 when none). No side effects.
func (s *StatsService) ComputeStats(ctx context.Context) domain.TicketStats {
	st := s.store
	st.Lock()
	defer st.Unlock()

	stats := domain.TicketStats{
		ByType: make(map[domain.TicketType]int),
	}
	var resolvedSum time.Duration
	var resolvedCount int

	for _, ticket := range st.Tickets.Ascend() {
		stats.Total++
		switch ticket.Status {
		case domain.TicketStatusOpen:
			stats.Open++
		case domain.TicketStatusInProgress:
			stats.InProgress++
		case domain.TicketStatusOnHold:
			stats.OnHold++
		case domain.TicketStatusResolved:
			stats.Resolved++
		case domain.TicketStatusClosed:
			stats.Closed++
		}
		stats.ByType[ticket.Type]++
		if ticket.ResolvedAt != nil {
			resolvedSum += ticket.ResolvedAt.Sub(ticket.CreatedAt)
			resolvedCount++
		}
	}
	if resolvedCount > 0 {
		stats.AvgResolutionTime = resolvedSum / time.Duration(resolvedCount)
	}
	return stats
}
