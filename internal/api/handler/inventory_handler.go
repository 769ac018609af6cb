package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clubstack/inventory-system/internal/api/metrics"
	"github.com/clubstack/inventory-system/internal/core/ports"
)

// InventoryHandler handles HTTP requests for the inventory ledger.
type InventoryHandler struct {
	service ports.InventoryService
}

func NewInventoryHandler(service ports.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

type createItemRequest struct {
	Name        string `json:"name"         validate:"required"`
	Quantity    int    `json:"quantity"     validate:"required,gte=0"`
	Category    string `json:"category"     validate:"required"`
	Description string `json:"description"`
	PictureURL  string `json:"picture_url"`
	IsForBorrow *bool  `json:"is_for_borrow"`
}

type updateItemRequest struct {
	Name        *string `json:"name"`
	Quantity    *int    `json:"quantity"      validate:"omitempty,gte=0"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	PictureURL  *string `json:"picture_url"`
	IsForBorrow *bool   `json:"is_for_borrow"`
}

// Create handles POST /inventory (admin).
//
// @Summary      Create an inventory item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createItemRequest  true  "Item details"
// @Success      201   {object}  domain.InventoryItem
// @Failure      400   {object}  errorResponse
// @Router       /inventory [post]
func (h *InventoryHandler) Create(c echo.Context) error {
	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// items are lendable unless explicitly flagged otherwise
	isForBorrow := true
	if req.IsForBorrow != nil {
		isForBorrow = *req.IsForBorrow
	}

	item, err := h.service.Create(c.Request().Context(), ports.CreateItemInput{
		Name:        req.Name,
		Quantity:    req.Quantity,
		Category:    req.Category,
		Description: req.Description,
		PictureURL:  req.PictureURL,
		IsForBorrow: isForBorrow,
	})
	if err != nil {
		return err
	}
	metrics.ItemsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, item)
}

// Get handles GET /inventory/:id (public).
func (h *InventoryHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	item, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// List handles GET /inventory (public).
func (h *InventoryHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// ListAvailable handles GET /inventory/available (public). Only items with
// available quantity and the borrow flag set are returned.
func (h *InventoryHandler) ListAvailable(c echo.Context) error {
	items, err := h.service.ListAvailable(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// ListByCategory handles GET /inventory/categories/:category (public).
func (h *InventoryHandler) ListByCategory(c echo.Context) error {
	category := c.Param("category")
	if category == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "category is required")
	}

	items, err := h.service.ListByCategory(c.Request().Context(), category)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Update handles PATCH /inventory/:id (admin). Absent fields are left
// unchanged; quantity changes preserve the committed (borrowed) share.
func (h *InventoryHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.Update(c.Request().Context(), id, ports.UpdateItemInput{
		Name:        req.Name,
		Quantity:    req.Quantity,
		Category:    req.Category,
		Description: req.Description,
		PictureURL:  req.PictureURL,
		IsForBorrow: req.IsForBorrow,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /inventory/:id (admin).
func (h *InventoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "item deleted"})
}
