package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront/ecommerce-services/internal/core/ports"
)

type SaleHandler struct {
	service ports.SaleService
}

func NewSaleHandler(service ports.SaleService) *SaleHandler {
	return &SaleHandler{service: service}
}

// @Summary      Record a sale
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body      ports.CreateSaleInput  true  "Sale"
// @Success      201   {object}  createSaleResponse
// @Failure      400   {object}  map[string]string
// @Router       /sales [post]
func (h *SaleHandler) Create(c echo.Context) error {
	var in ports.CreateSaleInput
	if err := bindBody(c, &in); err != nil {
		return err
	}

	s, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createSaleResponse{
		Message: "Sale created successfully",
		SaleID:  s.ID,
	})
}

// @Summary      Get a sale
// @Tags         sales
// @Produce      json
// @Param        id   path      int  true  "Sale id"
// @Success      200  {object}  saleResponse
// @Failure      404  {object}  map[string]string
// @Router       /sales/{id} [get]
func (h *SaleHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	s, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSaleResponse(s))
}

// @Summary      List sales
// @Tags         sales
// @Produce      json
// @Success      200  {array}  saleResponse
// @Router       /sales [get]
func (h *SaleHandler) List(c echo.Context) error {
	sales, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSaleList(sales))
}

// @Summary      Update a sale
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "Sale id"
// @Param        body  body      ports.UpdateSaleInput  true  "Fields to change"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /sales/{id} [put]
func (h *SaleHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var in ports.UpdateSaleInput
	if err := bindBody(c, &in); err != nil {
		return err
	}

	if _, err := h.service.Update(c.Request().Context(), id, in); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Sale updated successfully"})
}

// @Summary      Delete a sale
// @Tags         sales
// @Produce      json
// @Param        id   path      int  true  "Sale id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /sales/{id} [delete]
func (h *SaleHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Sale deleted successfully"})
}
