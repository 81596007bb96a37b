package handlers

import (
	"errors"
	"net/http"

	"github.com/lawyertrader999-svg/personal-finance-app/internal/dto"
	apierrors "github.com/lawyertrader999-svg/personal-finance-app/internal/errors"
	"github.com/lawyertrader999-svg/personal-finance-app/internal/models"
	"github.com/lawyertrader999-svg/personal-finance-app/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler handles the dashboard summary endpoint
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Summary returns the full dashboard aggregation for one month
func (h *DashboardHandler) Summary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.MonthQueryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidMonth)
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationInvalidMonth)
	}

	summary, err := h.dashboardService.GetMonthlySummary(userID, req.Month)
	if err != nil {
		if errors.Is(err, models.ErrInvalidMonth) {
			return SendError(c, apierrors.ValidationInvalidMonth)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}
