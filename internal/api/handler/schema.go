package handler

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// --- Shared ---

type messageResponse struct {
	Message string `json:"message"`
}

// --- Customers ---

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type registerResponse struct {
	Message    string `json:"message"`
	CustomerID uint   `json:"customer_id"`
}

type walletRequest struct {
	Amount *decimal.Decimal `json:"amount"`
}

type walletResponse struct {
	Message    string      `json:"message"`
	NewBalance json.Number `json:"new_balance"`
}

type customerResponse struct {
	ID            uint        `json:"id"`
	FullName      string      `json:"full_name"`
	Username      string      `json:"username"`
	Age           int         `json:"age"`
	Address       string      `json:"address"`
	Gender        *string     `json:"gender"`
	MaritalStatus *string     `json:"marital_status"`
	WalletBalance json.Number `json:"wallet_balance"`
	Role          string      `json:"role"`
	CreatedAt     time.Time   `json:"created_at"`
}

type ledgerEntryResponse struct {
	ID             string      `json:"id"`
	Operation      string      `json:"operation"`
	Amount         json.Number `json:"amount"`
	BalanceAfter   json.Number `json:"balance_after"`
	IdempotencyKey string      `json:"idempotency_key,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

type transactionsResponse struct {
	Username     string                `json:"username"`
	Transactions []ledgerEntryResponse `json:"transactions"`
}

// --- Inventory ---

type productResponse struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Description *string     `json:"description"`
	Price       json.Number `json:"price"`
	Quantity    int         `json:"quantity"`
}

type createProductResponse struct {
	Message string `json:"message"`
	Product uint   `json:"product"`
}

// --- Sales ---

type saleResponse struct {
	ID         uint        `json:"id"`
	CustomerID uint        `json:"customer_id"`
	ProductID  uint        `json:"product_id"`
	Quantity   int         `json:"quantity"`
	TotalPrice json.Number `json:"total_price"`
	CreatedAt  time.Time   `json:"created_at"`
}

type createSaleResponse struct {
	Message string `json:"message"`
	SaleID  uint   `json:"sale_id"`
}

// --- Reviews ---

type moderateRequest struct {
	Action string `json:"action"`
}

type reviewResponse struct {
	ID         uint       `json:"id"`
	ProductID  uint       `json:"product_id"`
	CustomerID uint       `json:"customer_id"`
	Rating     int        `json:"rating"`
	Comment    *string    `json:"comment"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

type reviewMessageResponse struct {
	Message string         `json:"message"`
	Review  reviewResponse `json:"review"`
}

// --- Recommendations ---

type recommendationItem struct {
	Product productResponse `json:"product"`
	Score   float64         `json:"score"`
}

type recommendationsResponse struct {
	CustomerID      uint                 `json:"customer_id"`
	Recommendations []recommendationItem `json:"recommendations"`
}
