package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clubstack/inventory-system/internal/core/domain"
	"github.com/clubstack/inventory-system/internal/core/ports"
)

// ScheduleHandler handles opening hours and calendar exception periods.
type ScheduleHandler struct {
	service ports.ScheduleService
}

func NewScheduleHandler(service ports.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

type openingHoursRequest struct {
	Weekday   int    `json:"weekday"    validate:"gte=0,lte=6"`
	OpenTime  string `json:"open_time"  validate:"required,datetime=15:04"`
	CloseTime string `json:"close_time" validate:"required,datetime=15:04"`
}

type periodRequest struct {
	StartDate   time.Time `json:"start_date"  validate:"required"`
	EndDate     time.Time `json:"end_date"    validate:"required"`
	Description string    `json:"description"`
	Type        string    `json:"type"        validate:"required,oneof=holiday closed exams"`
}

type updatePeriodRequest struct {
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Description *string    `json:"description"`
	Type        *string    `json:"type" validate:"omitempty,oneof=holiday closed exams"`
}

type periodOpeningRequest struct {
	Weekday   int    `json:"weekday"    validate:"gte=0,lte=6"`
	PeriodID  uint   `json:"period_id"  validate:"required"`
	OpenTime  string `json:"open_time"  validate:"required,datetime=15:04"`
	CloseTime string `json:"close_time" validate:"required,datetime=15:04"`
}

func pathWeekday(c echo.Context) (int, error) {
	raw := c.Param("weekday")
	weekday, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid weekday")
	}
	return weekday, nil
}

// SetOpeningHours handles POST /opening-hours (authenticated). One row per
// weekday; a second create for the same weekday conflicts.
func (h *ScheduleHandler) SetOpeningHours(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req openingHoursRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hours, err := h.service.SetOpeningHours(c.Request().Context(), ports.SetOpeningHoursInput{
		Weekday:   req.Weekday,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
		UpdatedBy: &userID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, hours)
}

// GetOpeningHours handles GET /opening-hours/:weekday (public).
func (h *ScheduleHandler) GetOpeningHours(c echo.Context) error {
	weekday, err := pathWeekday(c)
	if err != nil {
		return err
	}

	hours, err := h.service.GetOpeningHours(c.Request().Context(), weekday)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hours)
}

// ListOpeningHours handles GET /opening-hours (public).
func (h *ScheduleHandler) ListOpeningHours(c echo.Context) error {
	hours, err := h.service.ListOpeningHours(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hours)
}

// UpdateOpeningHours handles PUT /opening-hours/:weekday (authenticated).
func (h *ScheduleHandler) UpdateOpeningHours(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	weekday, err := pathWeekday(c)
	if err != nil {
		return err
	}

	var req openingHoursRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hours, err := h.service.UpdateOpeningHours(c.Request().Context(), ports.SetOpeningHoursInput{
		Weekday:   weekday,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
		UpdatedBy: &userID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, hours)
}

// DeleteOpeningHours handles DELETE /opening-hours/:weekday (authenticated).
func (h *ScheduleHandler) DeleteOpeningHours(c echo.Context) error {
	weekday, err := pathWeekday(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteOpeningHours(c.Request().Context(), weekday); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "opening hours deleted"})
}

// CreatePeriod handles POST /calendar-periods (admin).
func (h *ScheduleHandler) CreatePeriod(c echo.Context) error {
	var req periodRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	period, err := h.service.CreatePeriod(c.Request().Context(), ports.CreatePeriodInput{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
		Type:        domain.PeriodType(req.Type),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, period)
}

// GetPeriod handles GET /calendar-periods/:id (public).
func (h *ScheduleHandler) GetPeriod(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	period, err := h.service.GetPeriod(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, period)
}

// ListPeriods handles GET /calendar-periods (public).
func (h *ScheduleHandler) ListPeriods(c echo.Context) error {
	periods, err := h.service.ListPeriods(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, periods)
}

// UpdatePeriod handles PUT /calendar-periods/:id (admin).
func (h *ScheduleHandler) UpdatePeriod(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updatePeriodRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdatePeriodInput{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	}
	if req.Type != nil {
		t := domain.PeriodType(*req.Type)
		input.Type = &t
	}

	period, err := h.service.UpdatePeriod(c.Request().Context(), id, input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, period)
}

// DeletePeriod handles DELETE /calendar-periods/:id (admin).
func (h *ScheduleHandler) DeletePeriod(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.DeletePeriod(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "calendar period deleted"})
}

// AddPeriodOpening handles POST /calendar-periods/period-openings (admin).
func (h *ScheduleHandler) AddPeriodOpening(c echo.Context) error {
	var req periodOpeningRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	opening, err := h.service.AddPeriodOpening(c.Request().Context(), domain.PeriodOpening{
		Weekday:   req.Weekday,
		PeriodID:  req.PeriodID,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, opening)
}

// ListPeriodOpenings handles GET /calendar-periods/period-openings/:weekday
// (public); an optional period_id query narrows to one period.
func (h *ScheduleHandler) ListPeriodOpenings(c echo.Context) error {
	weekday, err := pathWeekday(c)
	if err != nil {
		return err
	}

	var periodID uint
	if raw := c.QueryParam("period_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid period_id")
		}
		periodID = uint(v)
	}

	openings, err := h.service.ListPeriodOpenings(c.Request().Context(), weekday, periodID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, openings)
}
