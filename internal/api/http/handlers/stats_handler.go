package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vex-labs/vex-backend/internal/api/dto"
	"github.com/vex-labs/vex-backend/internal/domain"
	"github.com/vex-labs/vex-backend/internal/service"
)

// StatsHandler serves aggregate ticket statistics.
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler constructs handler.
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{service: statsService}
}

// GetTicketStats GET /stats/tickets.
func (h *StatsHandler) GetTicketStats(c *fiber.Ctx) error {
	stats := h.service.ComputeStats(c.Context())
	return c.JSON(fiber.Map{"data": statsResponse(stats)})
}

func statsResponse(stats domain.TicketStats) dto.StatsResponse {
	byType := make(map[string]int, len(stats.ByType))
	for ticketType, count := range stats.ByType {
		byType[string(ticketType)] = count
	}
	return dto.StatsResponse{
		Total:               stats.Total,
		Open:                stats.Open,
		InProgress:          stats.InProgress,
		OnHold:              stats.OnHold,
		Resolved:            stats.Resolved,
		Closed:              stats.Closed,
		ByType:              byType,
		AvgResolutionTimeMS: stats.AvgResolutionTime.Milliseconds(),
	}
}
