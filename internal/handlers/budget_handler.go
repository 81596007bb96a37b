package handlers

import (
	"errors"
	"net/http"

	"github.com/lawyertrader999-svg/personal-finance-app/internal/dto"
	apierrors "github.com/lawyertrader999-svg/personal-finance-app/internal/errors"
	"github.com/lawyertrader999-svg/personal-finance-app/internal/models"
	"github.com/lawyertrader999-svg/personal-finance-app/internal/repositories"
	"github.com/lawyertrader999-svg/personal-finance-app/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// BudgetHandler handles budget endpoints
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
	}
}

// Upsert creates or replaces the budget for a (category, month) pair
func (h *BudgetHandler) Upsert(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.UpsertBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return SendError(c, apierrors.BudgetInvalidAmount)
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("category_id: must be a valid UUID"))
	}

	budget, err := h.budgetService.UpsertBudget(userID, categoryID, amount, req.Month)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidMonth):
			return SendError(c, apierrors.ValidationInvalidMonth)
		case errors.Is(err, models.ErrNegativeAmount):
			return SendError(c, apierrors.BudgetInvalidAmount)
		case errors.Is(err, services.ErrBudgetCategoryNotFound):
			return SendError(c, apierrors.CategoryNotFound)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, budget)
}

// List returns the authenticated user's budgets for one month
func (h *BudgetHandler) List(c echo.Context) error {
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

	budgets, err := h.budgetService.ListBudgets(userID, req.Month)
	if err != nil {
		if errors.Is(err, models.ErrInvalidMonth) {
			return SendError(c, apierrors.ValidationInvalidMonth)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: budgets})
}

// Delete removes a budget
func (h *BudgetHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("id: must be a valid UUID"))
	}

	if err := h.budgetService.DeleteBudget(id, userID); err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return SendError(c, apierrors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Usage returns the per-category expense totals for one month
func (h *BudgetHandler) Usage(c echo.Context) error {
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

	usage, err := h.budgetService.GetUsage(userID, req.Month)
	if err != nil {
		if errors.Is(err, models.ErrInvalidMonth) {
			return SendError(c, apierrors.ValidationInvalidMonth)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: usage})
}
