package dto

// UpsertBudgetRequest contains the fields for a budget create-or-replace.
// Month selects the calendar month in YYYY-MM form.
type UpsertBudgetRequest struct {
	CategoryID string `json:"category_id" validate:"required,uuid"`
	Amount     string `json:"amount" validate:"required"`
	Month      string `json:"month" validate:"required,datetime=2006-01"`
}

// MonthQueryRequest carries the required month selector used by budget
// listing, budget usage, and the dashboard summary
type MonthQueryRequest struct {
	Month string `query:"month" validate:"required,datetime=2006-01"`
}
