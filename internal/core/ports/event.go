package ports

import (
	"context"
	"time"

	"github.com/clubstack/inventory-system/internal/core/domain"
)

// CreateEventInput carries the fields for a new event.
type CreateEventInput struct {
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	HostID      *uint
	HostName    string
}

// UpdateEventInput is a typed partial update (nil = leave unchanged).
type UpdateEventInput struct {
	Title       *string
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
	Location    *string
}

// EventRepository defines persistence for events.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	FindByID(ctx context.Context, id uint) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
	Update(ctx context.Context, id uint, input UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, id uint) error
}

// EventService defines use-case operations for events.
type EventService interface {
	Create(ctx context.Context, input CreateEventInput) (*domain.Event, error)
	Get(ctx context.Context, id uint) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
	Update(ctx context.Context, id uint, input UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, id uint) error
}
