package dto

// CreateCategoryRequest contains the fields for a new category
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Kind string `json:"type" validate:"required,oneof=income expense"`
}
