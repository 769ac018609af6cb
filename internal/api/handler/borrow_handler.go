package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clubstack/inventory-system/internal/api/metrics"
	"github.com/clubstack/inventory-system/internal/core/domain"
	"github.com/clubstack/inventory-system/internal/core/ports"
)

// countTransition records the outcome of a lifecycle operation.
func countTransition(transition string, err error) {
	switch {
	case err == nil:
		metrics.BorrowTransitionsTotal.WithLabelValues(transition).Inc()
	case errors.Is(err, domain.ErrInvalidTransition):
		metrics.BorrowConflictsTotal.WithLabelValues("invalid_transition").Inc()
	case errors.Is(err, domain.ErrInsufficientQuantity):
		metrics.BorrowConflictsTotal.WithLabelValues("insufficient_quantity").Inc()
	}
}

// BorrowHandler handles HTTP requests for the borrow lifecycle.
type BorrowHandler struct {
	service ports.BorrowService
}

func NewBorrowHandler(service ports.BorrowService) *BorrowHandler {
	return &BorrowHandler{service: service}
}

type userBorrowRequest struct {
	ItemID    uint      `json:"item_id"    validate:"required"`
	Quantity  int       `json:"quantity"   validate:"required,min=1"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date"   validate:"required"`
	Comment   string    `json:"comment"`
}

type guestBorrowRequest struct {
	ItemID     uint      `json:"item_id"     validate:"required"`
	GuestName  string    `json:"guest_name"  validate:"required"`
	GuestEmail string    `json:"guest_email" validate:"required,email"`
	Quantity   int       `json:"quantity"    validate:"required,min=1"`
	StartDate  time.Time `json:"start_date"  validate:"required"`
	EndDate    time.Time `json:"end_date"    validate:"required"`
	Comment    string    `json:"comment"`
}

// RequestUser handles POST /borrows/user (authenticated). The borrower is
// taken from the token, never from the payload.
//
// @Summary      Request a borrow as a member
// @Tags         borrows
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      userBorrowRequest  true  "Borrow request"
// @Success      201   {object}  domain.BorrowRecord
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /borrows/user [post]
func (h *BorrowHandler) RequestUser(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req userBorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	record, err := h.service.Request(c.Request().Context(), ports.RequestBorrowInput{
		ItemID:    req.ItemID,
		UserID:    &userID,
		Quantity:  req.Quantity,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Comment:   req.Comment,
	})
	if err != nil {
		return err
	}
	metrics.BorrowRequestsTotal.WithLabelValues("user").Inc()

	return c.JSON(http.StatusCreated, record)
}

// RequestGuest handles POST /borrows/guest (public).
//
// @Summary      Request a borrow as a guest
// @Tags         borrows
// @Accept       json
// @Produce      json
// @Param        body  body      guestBorrowRequest  true  "Guest borrow request"
// @Success      201   {object}  domain.BorrowRecord
// @Failure      400   {object}  errorResponse
// @Router       /borrows/guest [post]
func (h *BorrowHandler) RequestGuest(c echo.Context) error {
	var req guestBorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	record, err := h.service.Request(c.Request().Context(), ports.RequestBorrowInput{
		ItemID:     req.ItemID,
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		Quantity:   req.Quantity,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Comment:    req.Comment,
	})
	if err != nil {
		return err
	}
	metrics.BorrowRequestsTotal.WithLabelValues("guest").Inc()

	return c.JSON(http.StatusCreated, record)
}

// Approve handles PUT /borrows/:id/approve (admin). Availability is checked
// and committed inside the store transaction.
func (h *BorrowHandler) Approve(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	record, err := h.service.Approve(c.Request().Context(), id)
	countTransition("approve", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// Reject handles PUT /borrows/:id/reject (admin).
func (h *BorrowHandler) Reject(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	record, err := h.service.Reject(c.Request().Context(), id)
	countTransition("reject", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// Return handles PUT /borrows/:id/return (admin).
func (h *BorrowHandler) Return(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	record, err := h.service.Return(c.Request().Context(), id)
	countTransition("return", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// Delete handles DELETE /borrows/:id (admin). An active loan must be
// returned before its record can be removed.
func (h *BorrowHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "borrow record deleted"})
}

// Get handles GET /borrows/:id (authenticated). Non-admins only see their
// own records.
func (h *BorrowHandler) Get(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	record, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !isAdmin(c) && (record.UserID == nil || *record.UserID != userID) {
		return domain.ErrForbidden
	}

	return c.JSON(http.StatusOK, record)
}

// List handles GET /borrows (authenticated). Admins see everything and may
// filter by item_id, user_id and status; non-admins are pinned to their own
// records.
func (h *BorrowHandler) List(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var filter ports.ListBorrowsFilter
	if isAdmin(c) {
		if raw := c.QueryParam("item_id"); raw != "" {
			v, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid item_id")
			}
			filter.ItemID = uint(v)
		}
		if raw := c.QueryParam("user_id"); raw != "" {
			v, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid user_id")
			}
			id := uint(v)
			filter.UserID = &id
		}
		if raw := c.QueryParam("status"); raw != "" {
			filter.Status = domain.BorrowStatus(raw)
		}
	} else {
		filter.UserID = &userID
	}

	records, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}
