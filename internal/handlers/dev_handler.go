package handlers

import (
	"net/http"

	"github.com/lawyertrader999-svg/personal-finance-app/internal/config"
	apierrors "github.com/lawyertrader999-svg/personal-finance-app/internal/errors"
	"github.com/lawyertrader999-svg/personal-finance-app/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
type DevHandler struct {
	seedService services.SeedServiceInterface
	cfg         *config.Config
}

// NewDevHandler creates a new development handler
func NewDevHandler(seedService services.SeedServiceInterface, cfg *config.Config) *DevHandler {
	return &DevHandler{
		seedService: seedService,
		cfg:         cfg,
	}
}

// SeedDemoData populates the authenticated user's account with demo
// categories, transactions, and budgets. Refused outside development
// environments.
func (h *DevHandler) SeedDemoData(c echo.Context) error {
	if !h.cfg.IsDevelopment() {
		return SendError(c, apierrors.SystemSeedingDisabled)
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	result, err := h.seedService.SeedDemoData(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    result,
		Message: "Demo data seeded successfully",
	})
}
