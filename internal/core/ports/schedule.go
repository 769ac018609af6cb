package ports

import (
	"context"
	"time"

	"github.com/clubstack/inventory-system/internal/core/domain"
)

// SetOpeningHoursInput carries the opening times for one weekday.
type SetOpeningHoursInput struct {
	Weekday   int
	OpenTime  string
	CloseTime string
	UpdatedBy *uint
}

// CreatePeriodInput carries the fields for a new calendar period.
type CreatePeriodInput struct {
	StartDate   time.Time
	EndDate     time.Time
	Description string
	Type        domain.PeriodType
}

// UpdatePeriodInput is a typed partial update (nil = leave unchanged).
type UpdatePeriodInput struct {
	StartDate   *time.Time
	EndDate     *time.Time
	Description *string
	Type        *domain.PeriodType
}

// ScheduleRepository persists opening hours, calendar periods and the
// per-period weekday overrides.
type ScheduleRepository interface {
	CreateOpeningHours(ctx context.Context, hours *domain.OpeningHours) error
	FindOpeningHours(ctx context.Context, weekday int) (*domain.OpeningHours, error)
	ListOpeningHours(ctx context.Context) ([]domain.OpeningHours, error)
	UpdateOpeningHours(ctx context.Context, hours *domain.OpeningHours) error
	DeleteOpeningHours(ctx context.Context, weekday int) error

	CreatePeriod(ctx context.Context, period *domain.CalendarPeriod) error
	FindPeriod(ctx context.Context, id uint) (*domain.CalendarPeriod, error)
	ListPeriods(ctx context.Context) ([]domain.CalendarPeriod, error)
	UpdatePeriod(ctx context.Context, id uint, input UpdatePeriodInput) (*domain.CalendarPeriod, error)
	DeletePeriod(ctx context.Context, id uint) error

	CreatePeriodOpening(ctx context.Context, opening *domain.PeriodOpening) error
	ListPeriodOpenings(ctx context.Context, weekday int, periodID uint) ([]domain.PeriodOpening, error)
}

// ScheduleService defines use-case operations for opening hours and
// calendar exception periods.
type ScheduleService interface {
	SetOpeningHours(ctx context.Context, input SetOpeningHoursInput) (*domain.OpeningHours, error)
	GetOpeningHours(ctx context.Context, weekday int) (*domain.OpeningHours, error)
	ListOpeningHours(ctx context.Context) ([]domain.OpeningHours, error)
	UpdateOpeningHours(ctx context.Context, input SetOpeningHoursInput) (*domain.OpeningHours, error)
	DeleteOpeningHours(ctx context.Context, weekday int) error

	CreatePeriod(ctx context.Context, input CreatePeriodInput) (*domain.CalendarPeriod, error)
	GetPeriod(ctx context.Context, id uint) (*domain.CalendarPeriod, error)
	ListPeriods(ctx context.Context) ([]domain.CalendarPeriod, error)
	UpdatePeriod(ctx context.Context, id uint, input UpdatePeriodInput) (*domain.CalendarPeriod, error)
	DeletePeriod(ctx context.Context, id uint) error

	AddPeriodOpening(ctx context.Context, opening domain.PeriodOpening) (*domain.PeriodOpening, error)
	ListPeriodOpenings(ctx context.Context, weekday int, periodID uint) ([]domain.PeriodOpening, error)
}
