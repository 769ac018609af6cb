package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/clubstack/inventory-system/internal/core/domain"
	"github.com/clubstack/inventory-system/internal/core/ports"
)

// ScheduleRepository implements ports.ScheduleRepository on PostgreSQL.
type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) CreateOpeningHours(ctx context.Context, hours *domain.OpeningHours) error {
	m := &openingHoursModel{
		Weekday:   hours.Weekday,
		OpenTime:  hours.OpenTime,
		CloseTime: hours.CloseTime,
		UpdatedBy: hours.UpdatedBy,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrOpeningHoursExist
		}
		return fmt.Errorf("insert opening hours: %w", err)
	}
	*hours = *m.toDomain()
	return nil
}

func (r *ScheduleRepository) FindOpeningHours(ctx context.Context, weekday int) (*domain.OpeningHours, error) {
	var m openingHoursModel
	if err := r.db.WithContext(ctx).First(&m, "weekday = ?", weekday).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOpeningHoursNotFound
		}
		return nil, fmt.Errorf("find opening hours: %w", err)
	}
	return m.toDomain(), nil
}

func (r *ScheduleRepository) ListOpeningHours(ctx context.Context) ([]domain.OpeningHours, error) {
	var models []openingHoursModel
	if err := r.db.WithContext(ctx).Order("weekday").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list opening hours: %w", err)
	}
	hours := make([]domain.OpeningHours, len(models))
	for i := range models {
		hours[i] = *models[i].toDomain()
	}
	return hours, nil
}

func (r *ScheduleRepository) UpdateOpeningHours(ctx context.Context, hours *domain.OpeningHours) error {
	res := r.db.WithContext(ctx).Model(&openingHoursModel{}).
		Where("weekday = ?", hours.Weekday).
		Updates(map[string]any{
			"open_time":  hours.OpenTime,
			"close_time": hours.CloseTime,
			"updated_by": hours.UpdatedBy,
		})
	if res.Error != nil {
		return fmt.Errorf("update opening hours: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrOpeningHoursNotFound
	}
	return nil
}

func (r *ScheduleRepository) DeleteOpeningHours(ctx context.Context, weekday int) error {
	res := r.db.WithContext(ctx).Delete(&openingHoursModel{}, "weekday = ?", weekday)
	if res.Error != nil {
		return fmt.Errorf("delete opening hours: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrOpeningHoursNotFound
	}
	return nil
}

func (r *ScheduleRepository) CreatePeriod(ctx context.Context, period *domain.CalendarPeriod) error {
	m := &calendarPeriodModel{
		StartDate:   period.StartDate,
		EndDate:     period.EndDate,
		Description: period.Description,
		Type:        string(period.Type),
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("insert calendar period: %w", err)
	}
	*period = *m.toDomain()
	return nil
}

func (r *ScheduleRepository) FindPeriod(ctx context.Context, id uint) (*domain.CalendarPeriod, error) {
	var m calendarPeriodModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPeriodNotFound
		}
		return nil, fmt.Errorf("find calendar period: %w", err)
	}
	return m.toDomain(), nil
}

func (r *ScheduleRepository) ListPeriods(ctx context.Context) ([]domain.CalendarPeriod, error) {
	var models []calendarPeriodModel
	if err := r.db.WithContext(ctx).Order("start_date").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list calendar periods: %w", err)
	}
	periods := make([]domain.CalendarPeriod, len(models))
	for i := range models {
		periods[i] = *models[i].toDomain()
	}
	return periods, nil
}

func (r *ScheduleRepository) UpdatePeriod(ctx context.Context, id uint, input ports.UpdatePeriodInput) (*domain.CalendarPeriod, error) {
	var m calendarPeriodModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrPeriodNotFound
			}
			return err
		}

		updates := map[string]any{}
		if input.StartDate != nil {
			updates["start_date"] = *input.StartDate
		}
		if input.EndDate != nil {
			updates["end_date"] = *input.EndDate
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Type != nil {
			updates["type"] = string(*input.Type)
		}
		if len(updates) == 0 {
			return nil
		}

		if err := tx.Model(&calendarPeriodModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&m, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}

// DeletePeriod removes the period together with its weekday overrides.
func (r *ScheduleRepository) DeletePeriod(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&calendarPeriodModel{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrPeriodNotFound
		}
		return tx.Delete(&periodOpeningModel{}, "calendar_period_id = ?", id).Error
	})
}

func (r *ScheduleRepository) CreatePeriodOpening(ctx context.Context, opening *domain.PeriodOpening) error {
	m := &periodOpeningModel{
		Weekday:   opening.Weekday,
		PeriodID:  opening.PeriodID,
		OpenTime:  opening.OpenTime,
		CloseTime: opening.CloseTime,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("insert period opening: %w", err)
	}
	*opening = *m.toDomain()
	return nil
}

// ListPeriodOpenings filters by weekday and period; a negative weekday or a
// zero period id leaves that dimension unconstrained.
func (r *ScheduleRepository) ListPeriodOpenings(ctx context.Context, weekday int, periodID uint) ([]domain.PeriodOpening, error) {
	q := r.db.WithContext(ctx).Model(&periodOpeningModel{}).Order("weekday")
	if weekday >= 0 {
		q = q.Where("weekday = ?", weekday)
	}
	if periodID != 0 {
		q = q.Where("calendar_period_id = ?", periodID)
	}

	var models []periodOpeningModel
	if err := q.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list period openings: %w", err)
	}
	openings := make([]domain.PeriodOpening, len(models))
	for i := range models {
		openings[i] = *models[i].toDomain()
	}
	return openings, nil
}
