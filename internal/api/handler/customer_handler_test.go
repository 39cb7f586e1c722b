package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/storefront/ecommerce-services/internal/api/middleware"
	"github.com/storefront/ecommerce-services/internal/core/domain"
	"github.com/storefront/ecommerce-services/internal/core/ports"
)

func TestCustomerHandler_Register_Success(t *testing.T) {
	stub := &stubCustomerService{
		registerFn: func(ctx context.Context, in ports.RegisterCustomerInput) (uint, error) {
			if in.Username != "alice" || in.Age != 30 || in.Gender == nil || *in.Gender != "Female" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return 7, nil
		},
	}
	h := NewCustomerHandler(stub)

	c, rec := newContext(t, request{
		method: http.MethodPost,
		target: "/customers/register",
		body:   `{"full_name":"Alice","username":"alice","password":"secret1","age":30,"address":"Main St","gender":"Female"}`,
	})
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp registerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.CustomerID != 7 || resp.Message != "Customer registered successfully." {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCustomerHandler_Register_PropagatesDuplicate(t *testing.T) {
	stub := &stubCustomerService{
		registerFn: func(ctx context.Context, in ports.RegisterCustomerInput) (uint, error) {
			return 0, &domain.DuplicateUsernameError{Username: in.Username}
		},
	}
	h := NewCustomerHandler(stub)

	c, _ := newContext(t, request{
		method: http.MethodPost,
		target: "/customers/register",
		body:   `{"username":"alice"}`,
	})
	err := h.Register(c)
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected duplicate username error, got %v", err)
	}
}

func TestCustomerHandler_Register_MalformedBody(t *testing.T) {
	h := NewCustomerHandler(&stubCustomerService{})

	c, _ := newContext(t, request{
		method: http.MethodPost,
		target: "/customers/register",
		body:   `{"username":`,
	})
	requireHTTPError(t, h.Register(c), http.StatusBadRequest)
}

func TestCustomerHandler_Get_OmitsPassword(t *testing.T) {
	stub := &stubCustomerService{
		getFn: func(ctx context.Context, username string) (*domain.Customer, error) {
			return &domain.Customer{
				ID:            1,
				Username:      username,
				PasswordHash:  "$2a$10$hash",
				WalletBalance: decimal.RequireFromString("60"),
				Role:          domain.RoleCustomer,
			}, nil
		},
	}
	h := NewCustomerHandler(stub)

	c, rec := newContext(t, request{
		method: http.MethodGet,
		target: "/customers/alice",
		params: map[string]string{"username": "alice"},
	})
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := body["password"]; ok {
		t.Fatalf("password leaked: %v", body)
	}
	if _, ok := body["password_hash"]; ok {
		t.Fatalf("password hash leaked: %v", body)
	}
	if body["wallet_balance"] != 60.0 || body["role"] != "customer" {
		t.Fatalf("unexpected account payload: %v", body)
	}
	if got := rec.Body.String(); !contains(got, `"wallet_balance":60.00`) {
		t.Fatalf("balance should render with two decimals: %s", got)
	}
}

func TestCustomerHandler_Get_NotFound(t *testing.T) {
	stub := &stubCustomerService{
		getFn: func(ctx context.Context, username string) (*domain.Customer, error) {
			return nil, domain.ErrCustomerNotFound
		},
	}
	h := NewCustomerHandler(stub)

	c, _ := newContext(t, request{
		method: http.MethodGet,
		target: "/customers/ghost",
		params: map[string]string{"username": "ghost"},
	})
	if err := h.Get(c); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCustomerHandler_Update_Message(t *testing.T) {
	stub := &stubCustomerService{
		updateFn: func(ctx context.Context, username string, in ports.UpdateCustomerInput) error {
			if in.Age == nil || *in.Age != 31 || in.FullName != nil {
				t.Fatalf("unexpected patch: %+v", in)
			}
			return nil
		},
	}
	h := NewCustomerHandler(stub)

	c, rec := newContext(t, request{
		method: http.MethodPut,
		target: "/customers/alice",
		body:   `{"age":31}`,
		params: map[string]string{"username": "alice"},
	})
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp messageResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Message != "Customer 'alice' updated successfully." {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestCustomerHandler_Delete_Message(t *testing.T) {
	stub := &stubCustomerService{
		deleteFn: func(ctx context.Context, username string) error { return nil },
	}
	h := NewCustomerHandler(stub)

	c, rec := newContext(t, request{
		method: http.MethodDelete,
		target: "/customers/alice",
		params: map[string]string{"username": "alice"},
	})
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp messageResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Message != "Customer 'alice' deleted successfully." {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestCustomerHandler_Charge_Success(t *testing.T) {
	stub := &stubCustomerService{
		chargeFn: func(ctx context.Context, in ports.WalletInput) (*ports.WalletResult, error) {
			if in.Username != "alice" || in.Amount == nil || !in.Amount.Equal(decimal.NewFromInt(100)) {
				t.Fatalf("unexpected wallet input: %+v", in)
			}
			if in.IdempotencyKey != "k-1" {
				t.Fatalf("idempotency key not forwarded: %q", in.IdempotencyKey)
			}
			return &ports.WalletResult{Balance: decimal.NewFromInt(100)}, nil
		},
	}
	h := NewCustomerHandler(stub)

	c, rec := newContext(t, request{
		method: http.MethodPost,
		target: "/customers/alice/charge",
		body:   `{"amount":100}`,
		header: map[string]string{"Idempotency-Key": "k-1"},
		params: map[string]string{"username": "alice"},
	})
	if err := h.Charge(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); !contains(got, `"new_balance":100.00`) || !contains(got, "Wallet charged successfully.") {
		t.Fatalf("unexpected body: %s", got)
	}
}

func TestCustomerHandler_Deduct_Insufficient(t *testing.T) {
	stub := &stubCustomerService{
		deductFn: func(ctx context.Context, in ports.WalletInput) (*ports.WalletResult, error) {
			return nil, domain.ErrInsufficientFunds
		},
	}
	h := NewCustomerHandler(stub)

	c, _ := newContext(t, request{
		method: http.MethodPost,
		target: "/customers/alice/deduct",
		body:   `{"amount":"500"}`,
		params: map[string]string{"username": "alice"},
	})
	if err := h.Deduct(c); !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected insufficient funds, got %v", err)
	}
}

func TestCustomerHandler_Charge_NonNumericAmount(t *testing.T) {
	h := NewCustomerHandler(&stubCustomerService{})

	c, _ := newContext(t, request{
		method: http.MethodPost,
		target: "/customers/alice/charge",
		body:   `{"amount":"abc"}`,
		params: map[string]string{"username": "alice"},
	})
	requireHTTPError(t, h.Charge(c), http.StatusBadRequest)
}

func TestCustomerHandler_Charge_MissingAmountReachesService(t *testing.T) {
	stub := &stubCustomerService{
		chargeFn: func(ctx context.Context, in ports.WalletInput) (*ports.WalletResult, error) {
			if in.Amount != nil {
				t.Fatalf("expected nil amount")
			}
			return nil, domain.ErrInvalidAmount
		},
	}
	h := NewCustomerHandler(stub)

	c, _ := newContext(t, request{
		method: http.MethodPost,
		target: "/customers/alice/charge",
		body:   `{}`,
		params: map[string]string{"username": "alice"},
	})
	if err := h.Charge(c); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount, got %v", err)
	}
}

func TestCustomerHandler_Me(t *testing.T) {
	stub := &stubCustomerService{
		getByIDFn: func(ctx context.Context, id uint) (*domain.Customer, error) {
			if id != 9 {
				t.Fatalf("unexpected id %d", id)
			}
			return &domain.Customer{ID: 9, Username: "alice"}, nil
		},
	}
	h := NewCustomerHandler(stub)

	c, rec := newContext(t, request{method: http.MethodGet, target: "/customers/me"})
	c.Set(middleware.CustomerIDKey, uint(9))
	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !contains(rec.Body.String(), `"username":"alice"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestCustomerHandler_Me_WithoutClaims(t *testing.T) {
	h := NewCustomerHandler(&stubCustomerService{})

	c, _ := newContext(t, request{method: http.MethodGet, target: "/customers/me"})
	requireHTTPError(t, h.Me(c), http.StatusUnauthorized)
}

func TestCustomerHandler_Login(t *testing.T) {
	stub := &stubCustomerService{
		loginFn: func(ctx context.Context, username, password string) (string, error) {
			if username == "alice" && password == "secret1" {
				return "signed.jwt.token", nil
			}
			return "", domain.ErrInvalidCredentials
		},
	}
	h := NewCustomerHandler(stub)

	c, rec := newContext(t, request{
		method: http.MethodPost,
		target: "/customers/login",
		body:   `{"username":"alice","password":"secret1"}`,
	})
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp loginResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Token != "signed.jwt.token" {
		t.Fatalf("unexpected token %q", resp.Token)
	}

	c, _ = newContext(t, request{
		method: http.MethodPost,
		target: "/customers/login",
		body:   `{"username":"alice","password":"wrong"}`,
	})
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestCustomerHandler_Transactions_ForwardsLimit(t *testing.T) {
	stub := &stubCustomerService{
		transactionsFn: func(ctx context.Context, username string, limit int) ([]domain.LedgerEntry, error) {
			if limit != 3 {
				t.Fatalf("expected limit 3, got %d", limit)
			}
			return []domain.LedgerEntry{{
				ID:           "e-1",
				Operation:    domain.LedgerCharge,
				Amount:       decimal.NewFromInt(10),
				BalanceAfter: decimal.NewFromInt(10),
			}}, nil
		},
	}
	h := NewCustomerHandler(stub)

	c, rec := newContext(t, request{
		method: http.MethodGet,
		target: "/customers/alice/transactions?limit=3",
		params: map[string]string{"username": "alice"},
	})
	if err := h.Transactions(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !contains(rec.Body.String(), `"operation":"charge"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestWalletResultLabel(t *testing.T) {
	tests := []struct {
		name   string
		result *ports.WalletResult
		err    error
		want   string
	}{
		{"ok", &ports.WalletResult{}, nil, "ok"},
		{"replayed", &ports.WalletResult{Replayed: true}, nil, "replayed"},
		{"insufficient", nil, domain.ErrInsufficientFunds, "insufficient_funds"},
		{"not found", nil, domain.ErrCustomerNotFound, "not_found"},
		{"invalid", nil, domain.ErrInvalidAmount, "invalid_amount"},
		{"storage", nil, errors.New("connection reset"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := walletResultLabel(tt.result, tt.err); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
