package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/storefront/ecommerce-services/internal/api/middleware"
	"github.com/storefront/ecommerce-services/internal/core/domain"
	"github.com/storefront/ecommerce-services/internal/core/ports"
	"github.com/storefront/ecommerce-services/internal/core/validation"
)

// Embedding the interface leaves unused methods nil; the routes under test
// only reach the overridden ones.
type routeCustomerService struct {
	ports.CustomerService
}

func (routeCustomerService) Get(ctx context.Context, username string) (*domain.Customer, error) {
	if username == "alice" {
		return &domain.Customer{ID: 1, Username: username}, nil
	}
	return nil, domain.ErrCustomerNotFound
}

func (routeCustomerService) Register(ctx context.Context, in ports.RegisterCustomerInput) (uint, error) {
	if err := validation.Struct(in); err != nil {
		return 0, err
	}
	return 1, nil
}

func (routeCustomerService) GetByID(ctx context.Context, id uint) (*domain.Customer, error) {
	return &domain.Customer{ID: id, Username: "from-token"}, nil
}

type routeReviewService struct {
	ports.ReviewService
}

func (routeReviewService) Create(ctx context.Context, in ports.CreateReviewInput) (*domain.Review, error) {
	return &domain.Review{ID: 1}, nil
}

type routeRecommendationService struct{}

func (routeRecommendationService) Recommend(ctx context.Context, customerID uint, topN int) ([]domain.ScoredProduct, error) {
	return []domain.ScoredProduct{}, nil
}

func newRouteTestServer() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	return e
}

func do(e *echo.Echo, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCustomerRoutes(t *testing.T) {
	e := newRouteTestServer()
	RegisterCustomerRoutes(e, routeCustomerService{}, "secret")

	if rec := do(e, http.MethodGet, "/customers/alice", "", nil); rec.Code != http.StatusOK {
		t.Fatalf("GET /customers/alice: expected 200, got %d", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/customers/ghost", "", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("GET /customers/ghost: expected 404, got %d", rec.Code)
	}

	// /me is a static route guarded by the token, not a username lookup.
	if rec := do(e, http.MethodGet, "/customers/me", "", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("GET /customers/me without token: expected 401, got %d", rec.Code)
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "5",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	rec := do(e, http.MethodGet, "/customers/me", "", map[string]string{"Authorization": "Bearer " + token})
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"username":"from-token"`) {
		t.Fatalf("GET /customers/me: got %d %s", rec.Code, rec.Body.String())
	}
}

func TestCustomerRoutes_FixedPathsCannotBeRegistered(t *testing.T) {
	e := newRouteTestServer()
	RegisterCustomerRoutes(e, routeCustomerService{}, "secret")

	body := `{"full_name":"M E","username":"%s","password":"secret1","age":30,"address":"x"}`
	for _, name := range []string{"me", "login", "register"} {
		rec := do(e, http.MethodPost, "/customers/register", fmt.Sprintf(body, name), nil)
		if rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), `"username"`) {
			t.Errorf("register %q: expected 400 on username, got %d %s", name, rec.Code, rec.Body.String())
		}
	}

	rec := do(e, http.MethodPost, "/customers/register", fmt.Sprintf(body, "meg"), nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register meg: expected 201, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestReviewRoutes_TrailingSlash(t *testing.T) {
	e := newRouteTestServer()
	RegisterReviewRoutes(e, routeReviewService{})

	for _, path := range []string{"/reviews", "/reviews/"} {
		rec := do(e, http.MethodPost, path, `{"product_id":1,"customer_id":1,"rating":4}`, nil)
		if rec.Code != http.StatusCreated {
			t.Fatalf("POST %s: expected 201, got %d", path, rec.Code)
		}
	}
}

func TestRecommendationRoutes_RateLimited(t *testing.T) {
	e := newRouteTestServer()
	RegisterRecommendationRoutes(e, routeRecommendationService{}, middleware.RateLimitConfig{RPS: 0.001, Burst: 1})

	if rec := do(e, http.MethodGet, "/recommendations/1", "", nil); rec.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", rec.Code)
	}
	rec := do(e, http.MethodGet, "/recommendations/1", "", nil)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"error":"rate limit exceeded"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRecommendationRoutes_BadID(t *testing.T) {
	e := newRouteTestServer()
	RegisterRecommendationRoutes(e, routeRecommendationService{}, middleware.RateLimitConfig{RPS: 100, Burst: 100})

	if rec := do(e, http.MethodGet, "/recommendations/abc", "", nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
