package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/storefront/ecommerce-services/internal/api/metrics"
	"github.com/storefront/ecommerce-services/internal/core/domain"
	"github.com/storefront/ecommerce-services/internal/core/ports"
)

// CustomerHandler serves account, login and wallet endpoints.
type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// Register creates a new customer account.
//
// @Summary      Register a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      ports.RegisterCustomerInput  true  "Account details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]any
// @Failure      500   {object}  map[string]string
// @Router       /customers/register [post]
func (h *CustomerHandler) Register(c echo.Context) error {
	var in ports.RegisterCustomerInput
	if err := bindBody(c, &in); err != nil {
		return err
	}

	id, err := h.service.Register(c.Request().Context(), in)
	if err != nil {
		return err
	}
	metrics.CustomersRegisteredTotal.Inc()

	return c.JSON(http.StatusCreated, registerResponse{
		Message:    "Customer registered successfully.",
		CustomerID: id,
	})
}

// Login exchanges credentials for a bearer token.
//
// @Summary      Login
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]string
// @Router       /customers/login [post]
func (h *CustomerHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	token, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loginResponse{Token: token})
}

// Me returns the account of the token subject.
//
// @Summary      Current customer
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  customerResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /customers/me [get]
func (h *CustomerHandler) Me(c echo.Context) error {
	id, err := customerIDFromContext(c)
	if err != nil {
		return err
	}

	customer, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// Get handles GET /customers/:username.
//
// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  customerResponse
// @Failure      404       {object}  map[string]string
// @Router       /customers/{username} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	customer, err := h.service.Get(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// List handles GET /customers.
//
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Success      200  {array}   customerResponse
// @Router       /customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomerList(customers))
}

// Update applies a partial profile update.
//
// @Summary      Update a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        username  path      string                     true  "Username"
// @Param        body      body      ports.UpdateCustomerInput  true  "Fields to change"
// @Success      200       {object}  messageResponse
// @Failure      400       {object}  map[string]any
// @Failure      404       {object}  map[string]string
// @Router       /customers/{username} [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	username := c.Param("username")

	var in ports.UpdateCustomerInput
	if err := bindBody(c, &in); err != nil {
		return err
	}

	if err := h.service.Update(c.Request().Context(), username, in); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Customer '%s' updated successfully.", username),
	})
}

// Delete handles DELETE /customers/:username.
//
// @Summary      Delete a customer
// @Tags         customers
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  messageResponse
// @Failure      404       {object}  map[string]string
// @Router       /customers/{username} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	username := c.Param("username")
	if err := h.service.Delete(c.Request().Context(), username); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Customer '%s' deleted successfully.", username),
	})
}

// Charge adds funds to a wallet.
//
// @Summary      Charge a wallet
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        username         path      string         true   "Username"
// @Param        Idempotency-Key  header    string         false  "Replays the first result for a repeated key"
// @Param        body             body      walletRequest  true   "Amount"
// @Success      200              {object}  walletResponse
// @Failure      400              {object}  map[string]string
// @Failure      404              {object}  map[string]string
// @Router       /customers/{username}/charge [post]
func (h *CustomerHandler) Charge(c echo.Context) error {
	return h.wallet(c, domain.LedgerCharge, h.service.Charge, "Wallet charged successfully.")
}

// Deduct removes funds from a wallet.
//
// @Summary      Deduct from a wallet
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        username         path      string         true   "Username"
// @Param        Idempotency-Key  header    string         false  "Replays the first result for a repeated key"
// @Param        body             body      walletRequest  true   "Amount"
// @Success      200              {object}  walletResponse
// @Failure      400              {object}  map[string]string
// @Failure      404              {object}  map[string]string
// @Router       /customers/{username}/deduct [post]
func (h *CustomerHandler) Deduct(c echo.Context) error {
	return h.wallet(c, domain.LedgerDeduct, h.service.Deduct, "Amount deducted successfully.")
}

type walletFunc func(ctx context.Context, in ports.WalletInput) (*ports.WalletResult, error)

func (h *CustomerHandler) wallet(c echo.Context, op domain.LedgerOperation, fn walletFunc, message string) error {
	var req walletRequest
	if err := bindBody(c, &req); err != nil {
		metrics.WalletOperationsTotal.WithLabelValues(string(op), "invalid_amount").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, domain.ErrInvalidAmount.Error())
	}

	result, err := fn(c.Request().Context(), ports.WalletInput{
		Username:       c.Param("username"),
		Amount:         req.Amount,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	metrics.WalletOperationsTotal.WithLabelValues(string(op), walletResultLabel(result, err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, walletResponse{
		Message:    message,
		NewBalance: money(result.Balance),
	})
}

func walletResultLabel(result *ports.WalletResult, err error) string {
	switch {
	case err == nil && result.Replayed:
		return "replayed"
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrCustomerNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	default:
		return "error"
	}
}

// Transactions lists the newest wallet ledger entries of an account.
//
// @Summary      Wallet transactions
// @Tags         wallet
// @Produce      json
// @Param        username  path      string  true   "Username"
// @Param        limit     query     int     false  "Max entries (default 20, max 100)"
// @Success      200       {object}  transactionsResponse
// @Failure      404       {object}  map[string]string
// @Router       /customers/{username}/transactions [get]
func (h *CustomerHandler) Transactions(c echo.Context) error {
	username := c.Param("username")
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	entries, err := h.service.ListTransactions(c.Request().Context(), username, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transactionsResponse{
		Username:     username,
		Transactions: toLedgerList(entries),
	})
}
