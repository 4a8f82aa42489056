package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/billigi/lending-api/internal/api/metrics"
	"github.com/billigi/lending-api/internal/core/ports"
)

// ItemHandler handles HTTP requests for loan listings.
type ItemHandler struct {
	service ports.ItemService
}

func NewItemHandler(service ports.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

// List handles GET /api/items.
//
// @Summary      List all item listings
// @Tags         items
// @Produce      json
// @Success      200  {array}   domain.Item
// @Failure      500  {object}  errorResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c echo.Context) error {
	items, err := h.service.ListItems(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Create handles POST /api/items.
//
// @Summary      Post an item to lend or a request to borrow
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body      createItemRequest  true  "Item listing"
// @Success      200   {object}  domain.Item
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c echo.Context) error {
	name, err := actingName(c)
	if err != nil {
		return err
	}

	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.CreateItem(c.Request().Context(), ports.CreateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		ActingName:  name,
	})
	if err != nil {
		return err
	}

	metrics.ItemsCreatedTotal.WithLabelValues(string(item.Type)).Inc()
	return c.JSON(http.StatusOK, item)
}

// Claim handles PATCH /api/items/:id, moving an available item to borrowed
// on behalf of the session user.
//
// @Summary      Claim an item listing
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Item id"
// @Param        body  body      claimItemRequest  true  "Requested status"
// @Success      200   {object}  domain.Item
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/items/{id} [patch]
func (h *ItemHandler) Claim(c echo.Context) error {
	name, err := actingName(c)
	if err != nil {
		return err
	}

	var req claimItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.ClaimItem(c.Request().Context(), c.Param("id"), name)
	metrics.ItemClaimsTotal.WithLabelValues(outcome(err)).Inc()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /api/items/:id.
//
// @Summary      Delete an item listing
// @Tags         items
// @Produce      json
// @Param        id   path      string  true  "Item id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c echo.Context) error {
	name, err := actingName(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteItem(c.Request().Context(), c.Param("id"), name); err != nil {
		return err
	}

	metrics.ListingsDeletedTotal.WithLabelValues("item").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Item deleted successfully"})
}
