package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/storefront/ecommerce-services/internal/core/domain"
)

// --- Request helpers ---

// parseID reads a positive numeric path parameter.
func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

func bindBody(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return nil
}

// --- Domain → HTTP response ---

func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(domain.MoneyPlaces))
}

func toCustomerResponse(c *domain.Customer) customerResponse {
	return customerResponse{
		ID:            c.ID,
		FullName:      c.FullName,
		Username:      c.Username,
		Age:           c.Age,
		Address:       c.Address,
		Gender:        c.Gender,
		MaritalStatus: c.MaritalStatus,
		WalletBalance: money(c.WalletBalance),
		Role:          c.Role,
		CreatedAt:     c.CreatedAt.UTC(),
	}
}

func toCustomerList(items []domain.Customer) []customerResponse {
	out := make([]customerResponse, len(items))
	for i := range items {
		out[i] = toCustomerResponse(&items[i])
	}
	return out
}

func toLedgerList(items []domain.LedgerEntry) []ledgerEntryResponse {
	out := make([]ledgerEntryResponse, len(items))
	for i, e := range items {
		out[i] = ledgerEntryResponse{
			ID:             e.ID,
			Operation:      string(e.Operation),
			Amount:         money(e.Amount),
			BalanceAfter:   money(e.BalanceAfter),
			IdempotencyKey: e.IdempotencyKey,
			CreatedAt:      e.CreatedAt.UTC(),
		}
	}
	return out
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       money(p.Price),
		Quantity:    p.Quantity,
	}
}

func toProductList(items []domain.Product) []productResponse {
	out := make([]productResponse, len(items))
	for i := range items {
		out[i] = toProductResponse(&items[i])
	}
	return out
}

func toSaleResponse(s *domain.Sale) saleResponse {
	return saleResponse{
		ID:         s.ID,
		CustomerID: s.CustomerID,
		ProductID:  s.ProductID,
		Quantity:   s.Quantity,
		TotalPrice: money(s.TotalPrice),
		CreatedAt:  s.CreatedAt.UTC(),
	}
}

func toSaleList(items []domain.Sale) []saleResponse {
	out := make([]saleResponse, len(items))
	for i := range items {
		out[i] = toSaleResponse(&items[i])
	}
	return out
}

func toReviewResponse(r *domain.Review) reviewResponse {
	return reviewResponse{
		ID:         r.ID,
		ProductID:  r.ProductID,
		CustomerID: r.CustomerID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt.UTC(),
		UpdatedAt:  r.UpdatedAt,
	}
}

func toReviewList(items []domain.Review) []reviewResponse {
	out := make([]reviewResponse, len(items))
	for i := range items {
		out[i] = toReviewResponse(&items[i])
	}
	return out
}

func toRecommendations(customerID uint, items []domain.ScoredProduct) recommendationsResponse {
	out := make([]recommendationItem, len(items))
	for i := range items {
		out[i] = recommendationItem{
			Product: toProductResponse(&items[i].Product),
			Score:   items[i].Score,
		}
	}
	return recommendationsResponse{CustomerID: customerID, Recommendations: out}
}
