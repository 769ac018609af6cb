package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/clubstack/inventory-system/internal/core/domain"
	"github.com/clubstack/inventory-system/internal/core/ports"
)

// EventRepository implements ports.EventRepository on PostgreSQL.
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *domain.Event) error {
	m := eventFromDomain(event)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	*event = *m.toDomain()
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (*domain.Event, error) {
	var m eventModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return m.toDomain(), nil
}

func (r *EventRepository) List(ctx context.Context) ([]domain.Event, error) {
	var models []eventModel
	if err := r.db.WithContext(ctx).Order("start_time").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	events := make([]domain.Event, len(models))
	for i := range models {
		events[i] = *models[i].toDomain()
	}
	return events, nil
}

func (r *EventRepository) Update(ctx context.Context, id uint, input ports.UpdateEventInput) (*domain.Event, error) {
	var m eventModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrEventNotFound
			}
			return err
		}

		updates := map[string]any{}
		if input.Title != nil {
			updates["title"] = *input.Title
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.StartTime != nil {
			updates["start_time"] = *input.StartTime
		}
		if input.EndTime != nil {
			updates["end_time"] = *input.EndTime
		}
		if input.Location != nil {
			updates["location"] = *input.Location
		}
		if len(updates) == 0 {
			return nil
		}

		if err := tx.Model(&eventModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&m, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&eventModel{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete event: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}
