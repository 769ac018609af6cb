package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/clubstack/inventory-system/internal/core/domain"
	"github.com/clubstack/inventory-system/internal/core/ports"
)

// ScheduleService manages regular opening hours and calendar exception
// periods (holidays, exam weeks, closures).
type ScheduleService struct {
	repo ports.ScheduleRepository
	log  zerolog.Logger
}

func NewScheduleService(repo ports.ScheduleRepository, log zerolog.Logger) *ScheduleService {
	return &ScheduleService{repo: repo, log: log}
}

func validWeekday(weekday int) bool {
	return weekday >= 0 && weekday <= 6
}

func (s *ScheduleService) SetOpeningHours(ctx context.Context, input ports.SetOpeningHoursInput) (*domain.OpeningHours, error) {
	if !validWeekday(input.Weekday) {
		return nil, domain.ErrInvalidWeekday
	}
	if _, err := s.repo.FindOpeningHours(ctx, input.Weekday); err == nil {
		return nil, domain.ErrOpeningHoursExist
	}

	hours := &domain.OpeningHours{
		Weekday:   input.Weekday,
		OpenTime:  input.OpenTime,
		CloseTime: input.CloseTime,
		UpdatedBy: input.UpdatedBy,
	}
	if err := s.repo.CreateOpeningHours(ctx, hours); err != nil {
		return nil, err
	}

	s.log.Info().Int("weekday", input.Weekday).Msg("opening hours created")
	return hours, nil
}

func (s *ScheduleService) GetOpeningHours(ctx context.Context, weekday int) (*domain.OpeningHours, error) {
	if !validWeekday(weekday) {
		return nil, domain.ErrInvalidWeekday
	}
	return s.repo.FindOpeningHours(ctx, weekday)
}

func (s *ScheduleService) ListOpeningHours(ctx context.Context) ([]domain.OpeningHours, error) {
	return s.repo.ListOpeningHours(ctx)
}

func (s *ScheduleService) UpdateOpeningHours(ctx context.Context, input ports.SetOpeningHoursInput) (*domain.OpeningHours, error) {
	if !validWeekday(input.Weekday) {
		return nil, domain.ErrInvalidWeekday
	}

	hours, err := s.repo.FindOpeningHours(ctx, input.Weekday)
	if err != nil {
		return nil, err
	}
	hours.OpenTime = input.OpenTime
	hours.CloseTime = input.CloseTime
	hours.UpdatedBy = input.UpdatedBy

	if err := s.repo.UpdateOpeningHours(ctx, hours); err != nil {
		return nil, err
	}
	return hours, nil
}

func (s *ScheduleService) DeleteOpeningHours(ctx context.Context, weekday int) error {
	if !validWeekday(weekday) {
		return domain.ErrInvalidWeekday
	}
	return s.repo.DeleteOpeningHours(ctx, weekday)
}

func (s *ScheduleService) CreatePeriod(ctx context.Context, input ports.CreatePeriodInput) (*domain.CalendarPeriod, error) {
	if !domain.ValidPeriodType(input.Type) {
		return nil, domain.ErrInvalidPeriodType
	}
	if !input.StartDate.Before(input.EndDate) {
		return nil, domain.ErrInvalidDateRange
	}

	period := &domain.CalendarPeriod{
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Description: input.Description,
		Type:        input.Type,
	}
	if err := s.repo.CreatePeriod(ctx, period); err != nil {
		return nil, err
	}

	s.log.Info().Uint("period_id", period.ID).Str("type", string(period.Type)).Msg("calendar period created")
	return period, nil
}

func (s *ScheduleService) GetPeriod(ctx context.Context, id uint) (*domain.CalendarPeriod, error) {
	return s.repo.FindPeriod(ctx, id)
}

func (s *ScheduleService) ListPeriods(ctx context.Context) ([]domain.CalendarPeriod, error) {
	return s.repo.ListPeriods(ctx)
}

func (s *ScheduleService) UpdatePeriod(ctx context.Context, id uint, input ports.UpdatePeriodInput) (*domain.CalendarPeriod, error) {
	if input.Type != nil && !domain.ValidPeriodType(*input.Type) {
		return nil, domain.ErrInvalidPeriodType
	}
	return s.repo.UpdatePeriod(ctx, id, input)
}

func (s *ScheduleService) DeletePeriod(ctx context.Context, id uint) error {
	return s.repo.DeletePeriod(ctx, id)
}

func (s *ScheduleService) AddPeriodOpening(ctx context.Context, opening domain.PeriodOpening) (*domain.PeriodOpening, error) {
	if !validWeekday(opening.Weekday) {
		return nil, domain.ErrInvalidWeekday
	}
	if _, err := s.repo.FindPeriod(ctx, opening.PeriodID); err != nil {
		return nil, err
	}
	if err := s.repo.CreatePeriodOpening(ctx, &opening); err != nil {
		return nil, err
	}
	return &opening, nil
}

func (s *ScheduleService) ListPeriodOpenings(ctx context.Context, weekday int, periodID uint) ([]domain.PeriodOpening, error) {
	if !validWeekday(weekday) {
		return nil, domain.ErrInvalidWeekday
	}
	return s.repo.ListPeriodOpenings(ctx, weekday, periodID)
}
