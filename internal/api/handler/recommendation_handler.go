package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/storefront/ecommerce-services/internal/api/metrics"
	"github.com/storefront/ecommerce-services/internal/core/ports"
)

const (
	defaultTopN = 5
	maxTopN     = 100
)

type RecommendationHandler struct {
	service ports.RecommendationService
}

func NewRecommendationHandler(service ports.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{service: service}
}

// Recommend handles GET /recommendations/:customer_id?top_n=N.
//
// @Summary      Recommend products
// @Tags         recommendations
// @Produce      json
// @Param        customer_id  path      int  true   "Customer id"
// @Param        top_n        query     int  false  "Number of products (default 5, max 100)"
// @Success      200          {object}  recommendationsResponse
// @Failure      400          {object}  map[string]string
// @Failure      429          {object}  map[string]string
// @Router       /recommendations/{customer_id} [get]
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	customerID, err := parseID(c, "customer_id")
	if err != nil {
		return err
	}

	start := time.Now()
	items, err := h.service.Recommend(c.Request().Context(), customerID, parseTopN(c.QueryParam("top_n")))
	metrics.RecommendationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toRecommendations(customerID, items))
}

func parseTopN(raw string) int {
	n, err := strconv.Atoi(raw)
	switch {
	case err != nil || n < 1:
		return defaultTopN
	case n > maxTopN:
		return maxTopN
	default:
		return n
	}
}
