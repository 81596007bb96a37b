package handlers

import (
	"errors"
	"net/http"

	"github.com/lawyertrader999-svg/personal-finance-app/internal/dto"
	apierrors "github.com/lawyertrader999-svg/personal-finance-app/internal/errors"
	"github.com/lawyertrader999-svg/personal-finance-app/internal/models"
	"github.com/lawyertrader999-svg/personal-finance-app/internal/repositories"
	"github.com/lawyertrader999-svg/personal-finance-app/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// Create adds a category for the authenticated user
func (h *CategoryHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.categoryService.CreateCategory(userID, req.Name, req.Kind)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNameRequired):
			return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("name: is required"))
		case errors.Is(err, models.ErrInvalidKind):
			return SendError(c, apierrors.CategoryInvalidKind)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, category)
}

// List returns all of the authenticated user's categories
func (h *CategoryHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	categories, err := h.categoryService.ListCategories(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: categories})
}

// Delete removes an unreferenced category
func (h *CategoryHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("id: must be a valid UUID"))
	}

	if err := h.categoryService.DeleteCategory(id, userID); err != nil {
		switch {
		case errors.Is(err, services.ErrCategoryInUse):
			return SendError(c, apierrors.CategoryInUse)
		case errors.Is(err, repositories.ErrCategoryNotFound):
			return SendError(c, apierrors.CategoryNotFound)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.NoContent(http.StatusNoContent)
}
