package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront/ecommerce-services/internal/api/metrics"
	"github.com/storefront/ecommerce-services/internal/core/ports"
)

// ReviewHandler serves product reviews and their moderation.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// Create handles POST /reviews/.
//
// @Summary      Create a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        body  body      ports.CreateReviewInput  true  "Review"
// @Success      201   {object}  reviewMessageResponse
// @Failure      400   {object}  map[string]any
// @Router       /reviews/ [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	var in ports.CreateReviewInput
	if err := bindBody(c, &in); err != nil {
		return err
	}

	r, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, reviewMessageResponse{
		Message: "Review created successfully",
		Review:  toReviewResponse(r),
	})
}

// @Summary      Get a review
// @Tags         reviews
// @Produce      json
// @Param        id   path      int  true  "Review id"
// @Success      200  {object}  reviewResponse
// @Failure      404  {object}  map[string]string
// @Router       /reviews/{id} [get]
func (h *ReviewHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	r, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReviewResponse(r))
}

// ListByProduct handles GET /reviews/product/:id. An unknown product yields
// an empty list.
//
// @Summary      Reviews of a product
// @Tags         reviews
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {array}   reviewResponse
// @Router       /reviews/product/{id} [get]
func (h *ReviewHandler) ListByProduct(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	reviews, err := h.service.ListByProduct(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReviewList(reviews))
}

// @Summary      Reviews by a customer
// @Tags         reviews
// @Produce      json
// @Param        id   path      int  true  "Customer id"
// @Success      200  {array}   reviewResponse
// @Router       /reviews/customer/{id} [get]
func (h *ReviewHandler) ListByCustomer(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	reviews, err := h.service.ListByCustomer(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReviewList(reviews))
}

// @Summary      Update a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id    path      int                      true  "Review id"
// @Param        body  body      ports.UpdateReviewInput  true  "Fields to change"
// @Success      200   {object}  reviewMessageResponse
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]string
// @Router       /reviews/{id} [put]
func (h *ReviewHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var in ports.UpdateReviewInput
	if err := bindBody(c, &in); err != nil {
		return err
	}

	r, err := h.service.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviewMessageResponse{
		Message: "Review updated successfully",
		Review:  toReviewResponse(r),
	})
}

// @Summary      Delete a review
// @Tags         reviews
// @Produce      json
// @Param        id   path      int  true  "Review id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Review deleted successfully"})
}

// Moderate acknowledges an approve or flag decision. Nothing is persisted.
//
// @Summary      Moderate a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "Review id"
// @Param        body  body      moderateRequest  true  "approve or flag"
// @Success      200   {object}  reviewMessageResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /reviews/moderate/{id} [post]
func (h *ReviewHandler) Moderate(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req moderateRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	result, err := h.service.Moderate(c.Request().Context(), id, req.Action)
	if err != nil {
		return err
	}
	metrics.ReviewsModeratedTotal.WithLabelValues(string(result.Action)).Inc()

	return c.JSON(http.StatusOK, reviewMessageResponse{
		Message: fmt.Sprintf("Review %s successfully", result.Action.PastTense()),
		Review:  toReviewResponse(result.Review),
	})
}
