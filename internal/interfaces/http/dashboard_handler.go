package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/estoque-pro/estoque-api/internal/application/dto"
)

// DashboardService contrato consumido pelo handler do dashboard.
type DashboardService interface {
	GetResumo(ctx context.Context) (*dto.DashboardResponse, error)
}

// DashboardHandler trata as requisições HTTP do dashboard.
type DashboardHandler struct {
	svc DashboardService
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(svc DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// GetResumo godoc
// @Summary      Resumo agregado do estoque
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetResumo(c *fiber.Ctx) error {
	out, err := h.svc.GetResumo(c.UserContext())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
