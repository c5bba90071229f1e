package handler

import "time"

// errorResponse documents the error envelope written by api.NewHTTPErrorHandler.
// It is referenced only by the swag annotations.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" form:"password" validate:"required,min=3,max=72"`
}

// loginRequest carries no validation tags: every malformed attempt must fail
// the same way as a wrong password.
type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

type identityResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// --- Customers ---

type customerRequest struct {
	Name    string `json:"name"    validate:"required,max=200"`
	Phone   string `json:"phone"   validate:"max=50"`
	Email   string `json:"email"   validate:"omitempty,email"`
	Address string `json:"address" validate:"max=500"`
}

type customerResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// --- Jobs ---

type createJobRequest struct {
	Service      string  `json:"service"`
	JobDate      string  `json:"jobDate"      validate:"required,datetime=2006-01-02"`
	Price        float64 `json:"price"        validate:"gte=0"`
	Notes        string  `json:"notes"`
	CustomerID   *int64  `json:"customerId"`
	CustomerName string  `json:"customerName" validate:"required_without=CustomerID"`
	Address      string  `json:"address"`
	Paid         bool    `json:"paid"`
}

type updateJobRequest struct {
	Service      string  `json:"service"`
	JobDate      string  `json:"jobDate"      validate:"required,datetime=2006-01-02"`
	Price        float64 `json:"price"        validate:"gte=0"`
	Notes        string  `json:"notes"`
	CustomerName string  `json:"customerName"`
	Address      string  `json:"address"`
}

type jobResponse struct {
	ID            int64   `json:"id"`
	Service       string  `json:"service"`
	CustomerID    *int64  `json:"customerId,omitempty"`
	CustomerName  string  `json:"customerName"`
	Address       string  `json:"address"`
	JobDate       string  `json:"jobDate"`
	Price         float64 `json:"price"`
	Notes         string  `json:"notes"`
	Paid          bool    `json:"paid"`
	InvoiceNumber string  `json:"invoiceNumber,omitempty"`
}

type revenueResponse struct {
	Month  string  `json:"month"`
	Paid   float64 `json:"paid"`
	Unpaid float64 `json:"unpaid"`
}
