package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/storefront/ecommerce-services/internal/core/domain"
	"github.com/storefront/ecommerce-services/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Request helper
// ---------------------------------------------------------------------------

type request struct {
	method string
	target string
	body   string
	header map[string]string
	params map[string]string
}

func newContext(t *testing.T, r request) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var body io.Reader
	if r.body != "" {
		body = strings.NewReader(r.body)
	}
	req := httptest.NewRequest(r.method, r.target, body)
	if r.body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range r.header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	names := make([]string, 0, len(r.params))
	values := make([]string, 0, len(r.params))
	for k, v := range r.params {
		names = append(names, k)
		values = append(values, v)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c, rec
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	if he.Code != code {
		t.Fatalf("expected status %d, got %d", code, he.Code)
	}
}

// ---------------------------------------------------------------------------
// Stub services
// ---------------------------------------------------------------------------

type stubCustomerService struct {
	registerFn     func(ctx context.Context, in ports.RegisterCustomerInput) (uint, error)
	updateFn       func(ctx context.Context, username string, in ports.UpdateCustomerInput) error
	deleteFn       func(ctx context.Context, username string) error
	getFn          func(ctx context.Context, username string) (*domain.Customer, error)
	getByIDFn      func(ctx context.Context, id uint) (*domain.Customer, error)
	listFn         func(ctx context.Context) ([]domain.Customer, error)
	chargeFn       func(ctx context.Context, in ports.WalletInput) (*ports.WalletResult, error)
	deductFn       func(ctx context.Context, in ports.WalletInput) (*ports.WalletResult, error)
	transactionsFn func(ctx context.Context, username string, limit int) ([]domain.LedgerEntry, error)
	loginFn        func(ctx context.Context, username, password string) (string, error)
}

func (s *stubCustomerService) Register(ctx context.Context, in ports.RegisterCustomerInput) (uint, error) {
	return s.registerFn(ctx, in)
}

func (s *stubCustomerService) Update(ctx context.Context, username string, in ports.UpdateCustomerInput) error {
	return s.updateFn(ctx, username, in)
}

func (s *stubCustomerService) Delete(ctx context.Context, username string) error {
	return s.deleteFn(ctx, username)
}

func (s *stubCustomerService) Get(ctx context.Context, username string) (*domain.Customer, error) {
	return s.getFn(ctx, username)
}

func (s *stubCustomerService) GetByID(ctx context.Context, id uint) (*domain.Customer, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubCustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.listFn(ctx)
}

func (s *stubCustomerService) Charge(ctx context.Context, in ports.WalletInput) (*ports.WalletResult, error) {
	return s.chargeFn(ctx, in)
}

func (s *stubCustomerService) Deduct(ctx context.Context, in ports.WalletInput) (*ports.WalletResult, error) {
	return s.deductFn(ctx, in)
}

func (s *stubCustomerService) ListTransactions(ctx context.Context, username string, limit int) ([]domain.LedgerEntry, error) {
	return s.transactionsFn(ctx, username, limit)
}

func (s *stubCustomerService) Login(ctx context.Context, username, password string) (string, error) {
	return s.loginFn(ctx, username, password)
}

type stubProductService struct {
	createFn func(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error)
	getFn    func(ctx context.Context, id uint) (*domain.Product, error)
	listFn   func(ctx context.Context) ([]domain.Product, error)
	updateFn func(ctx context.Context, id uint, in ports.UpdateProductInput) (*domain.Product, error)
	deleteFn func(ctx context.Context, id uint) error
}

func (s *stubProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, in)
}

func (s *stubProductService) Get(ctx context.Context, id uint) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.listFn(ctx)
}

func (s *stubProductService) Update(ctx context.Context, id uint, in ports.UpdateProductInput) (*domain.Product, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubProductService) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

type stubSaleService struct {
	createFn func(ctx context.Context, in ports.CreateSaleInput) (*domain.Sale, error)
	getFn    func(ctx context.Context, id uint) (*domain.Sale, error)
	listFn   func(ctx context.Context) ([]domain.Sale, error)
	updateFn func(ctx context.Context, id uint, in ports.UpdateSaleInput) (*domain.Sale, error)
	deleteFn func(ctx context.Context, id uint) error
}

func (s *stubSaleService) Create(ctx context.Context, in ports.CreateSaleInput) (*domain.Sale, error) {
	return s.createFn(ctx, in)
}

func (s *stubSaleService) Get(ctx context.Context, id uint) (*domain.Sale, error) {
	return s.getFn(ctx, id)
}

func (s *stubSaleService) List(ctx context.Context) ([]domain.Sale, error) {
	return s.listFn(ctx)
}

func (s *stubSaleService) Update(ctx context.Context, id uint, in ports.UpdateSaleInput) (*domain.Sale, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubSaleService) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

type stubReviewService struct {
	createFn         func(ctx context.Context, in ports.CreateReviewInput) (*domain.Review, error)
	getFn            func(ctx context.Context, id uint) (*domain.Review, error)
	listByProductFn  func(ctx context.Context, productID uint) ([]domain.Review, error)
	listByCustomerFn func(ctx context.Context, customerID uint) ([]domain.Review, error)
	updateFn         func(ctx context.Context, id uint, in ports.UpdateReviewInput) (*domain.Review, error)
	deleteFn         func(ctx context.Context, id uint) error
	moderateFn       func(ctx context.Context, id uint, action string) (*ports.ModerationResult, error)
}

func (s *stubReviewService) Create(ctx context.Context, in ports.CreateReviewInput) (*domain.Review, error) {
	return s.createFn(ctx, in)
}

func (s *stubReviewService) Get(ctx context.Context, id uint) (*domain.Review, error) {
	return s.getFn(ctx, id)
}

func (s *stubReviewService) ListByProduct(ctx context.Context, productID uint) ([]domain.Review, error) {
	return s.listByProductFn(ctx, productID)
}

func (s *stubReviewService) ListByCustomer(ctx context.Context, customerID uint) ([]domain.Review, error) {
	return s.listByCustomerFn(ctx, customerID)
}

func (s *stubReviewService) Update(ctx context.Context, id uint, in ports.UpdateReviewInput) (*domain.Review, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubReviewService) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func (s *stubReviewService) Moderate(ctx context.Context, id uint, action string) (*ports.ModerationResult, error) {
	return s.moderateFn(ctx, id, action)
}

type stubRecommendationService struct {
	recommendFn func(ctx context.Context, customerID uint, topN int) ([]domain.ScoredProduct, error)
}

func (s *stubRecommendationService) Recommend(ctx context.Context, customerID uint, topN int) ([]domain.ScoredProduct, error) {
	return s.recommendFn(ctx, customerID, topN)
}


func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}
