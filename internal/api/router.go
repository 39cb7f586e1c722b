package api

import (
	"github.com/labstack/echo/v4"

	"github.com/storefront/ecommerce-services/internal/api/handler"
	"github.com/storefront/ecommerce-services/internal/api/middleware"
	"github.com/storefront/ecommerce-services/internal/core/ports"
)

// RegisterCustomerRoutes mounts the account, login and wallet endpoints.
// Static segments (register, login, me) take precedence over :username.
func RegisterCustomerRoutes(e *echo.Echo, svc ports.CustomerService, jwtSecret string) {
	h := handler.NewCustomerHandler(svc)
	auth := middleware.Auth(jwtSecret)

	g := e.Group("/customers")
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.GET("/me", h.Me, auth)
	g.GET("", h.List)
	g.GET("/:username", h.Get)
	g.PUT("/:username", h.Update)
	g.DELETE("/:username", h.Delete)
	g.POST("/:username/charge", h.Charge)
	g.POST("/:username/deduct", h.Deduct)
	g.GET("/:username/transactions", h.Transactions)
}

func RegisterProductRoutes(e *echo.Echo, svc ports.ProductService) {
	h := handler.NewProductHandler(svc)

	g := e.Group("/products")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func RegisterSaleRoutes(e *echo.Echo, svc ports.SaleService) {
	h := handler.NewSaleHandler(svc)

	g := e.Group("/sales")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func RegisterReviewRoutes(e *echo.Echo, svc ports.ReviewService) {
	h := handler.NewReviewHandler(svc)

	g := e.Group("/reviews")
	g.POST("", h.Create)
	g.POST("/", h.Create)
	g.GET("/:id", h.Get)
	g.GET("/product/:id", h.ListByProduct)
	g.GET("/customer/:id", h.ListByCustomer)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.POST("/moderate/:id", h.Moderate)
}

// RegisterRecommendationRoutes mounts the scorer endpoint behind a per-IP
// rate limiter.
func RegisterRecommendationRoutes(e *echo.Echo, svc ports.RecommendationService, limit middleware.RateLimitConfig) {
	h := handler.NewRecommendationHandler(svc)
	e.GET("/recommendations/:customer_id", h.Recommend, middleware.RateLimit(limit))
}
