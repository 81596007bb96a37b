package dto

// TransactionRequest contains the writable fields of a transaction. The same
// shape is used for create and full update.
type TransactionRequest struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Amount      string `json:"amount" validate:"required"`
	Kind        string `json:"type" validate:"required,oneof=income expense"`
	CategoryID  string `json:"category_id" validate:"required,uuid"`
	Description string `json:"description" validate:"max=500"`
}

// ListTransactionsRequest carries the optional month filter (YYYY-MM)
type ListTransactionsRequest struct {
	Month string `query:"month" validate:"omitempty,datetime=2006-01"`
}
