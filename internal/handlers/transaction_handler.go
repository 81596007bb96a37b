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

// TransactionHandler handles transaction endpoints
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

func (h *TransactionHandler) bindInput(c echo.Context) (services.TransactionInput, error) {
	var req dto.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return services.TransactionInput{}, SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return services.TransactionInput{}, err
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return services.TransactionInput{}, SendError(c, apierrors.TransactionInvalidAmount)
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return services.TransactionInput{}, SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("category_id: must be a valid UUID"))
	}

	return services.TransactionInput{
		Date:        req.Date,
		Amount:      amount,
		Kind:        req.Kind,
		CategoryID:  categoryID,
		Description: req.Description,
	}, nil
}

func (h *TransactionHandler) sendServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrInvalidDate):
		return SendError(c, apierrors.ValidationInvalidDate)
	case errors.Is(err, models.ErrNegativeAmount):
		return SendError(c, apierrors.TransactionInvalidAmount)
	case errors.Is(err, models.ErrInvalidKind):
		return SendError(c, apierrors.TransactionInvalidKind)
	case errors.Is(err, models.ErrCategoryIDMissing):
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("category_id: is required"))
	case errors.Is(err, services.ErrTransactionCategoryNotFound):
		return SendError(c, apierrors.CategoryNotFound)
	case errors.Is(err, repositories.ErrTransactionNotFound):
		return SendError(c, apierrors.TransactionNotFound)
	default:
		return SendSystemError(c, err)
	}
}

// Create records a new transaction for the authenticated user
func (h *TransactionHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	input, bindErr := h.bindInput(c)
	if bindErr != nil {
		return bindErr
	}

	transaction, err := h.transactionService.CreateTransaction(userID, input)
	if err != nil {
		return h.sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, transaction)
}

// List returns the authenticated user's transactions, optionally filtered by
// calendar month
func (h *TransactionHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.ListTransactionsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidMonth)
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationInvalidMonth)
	}

	transactions, err := h.transactionService.ListTransactions(userID, req.Month)
	if err != nil {
		if errors.Is(err, models.ErrInvalidMonth) {
			return SendError(c, apierrors.ValidationInvalidMonth)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: transactions})
}

// Update replaces the writable fields of a transaction
func (h *TransactionHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("id: must be a valid UUID"))
	}

	input, bindErr := h.bindInput(c)
	if bindErr != nil {
		return bindErr
	}

	transaction, err := h.transactionService.UpdateTransaction(id, userID, input)
	if err != nil {
		return h.sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, transaction)
}

// Delete removes a transaction
func (h *TransactionHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("id: must be a valid UUID"))
	}

	if err := h.transactionService.DeleteTransaction(id, userID); err != nil {
		return h.sendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
