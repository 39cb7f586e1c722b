package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront/ecommerce-services/internal/core/ports"
)

// ProductHandler serves the inventory catalog.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// Create handles POST /products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      ports.CreateProductInput  true  "Product"
// @Success      201   {object}  createProductResponse
// @Failure      400   {object}  map[string]any
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var in ports.CreateProductInput
	if err := bindBody(c, &in); err != nil {
		return err
	}

	p, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createProductResponse{
		Message: "Product created successfully",
		Product: p.ID,
	})
}

// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	p, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(p))
}

// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {array}  productResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductList(products))
}

// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      int                       true  "Product id"
// @Param        body  body      ports.UpdateProductInput  true  "Fields to change"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]string
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var in ports.UpdateProductInput
	if err := bindBody(c, &in); err != nil {
		return err
	}

	if _, err := h.service.Update(c.Request().Context(), id, in); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Product updated successfully"})
}

// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Product deleted successfully"})
}
