package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/clubstack/inventory-system/internal/core/domain"
	"github.com/clubstack/inventory-system/internal/core/ports"
)

// EventService implements CRUD for scheduled club events.
type EventService struct {
	repo ports.EventRepository
	log  zerolog.Logger
}

func NewEventService(repo ports.EventRepository, log zerolog.Logger) *EventService {
	return &EventService{repo: repo, log: log}
}

func (s *EventService) Create(ctx context.Context, input ports.CreateEventInput) (*domain.Event, error) {
	if !input.StartTime.Before(input.EndTime) {
		return nil, domain.ErrInvalidDateRange
	}

	event := &domain.Event{
		Title:       input.Title,
		Description: input.Description,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Location:    input.Location,
		HostID:      input.HostID,
		HostName:    input.HostName,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		s.log.Error().Err(err).Str("title", input.Title).Msg("failed to create event")
		return nil, err
	}

	s.log.Info().Uint("event_id", event.ID).Str("title", event.Title).Msg("event created")
	return event, nil
}

func (s *EventService) Get(ctx context.Context, id uint) (*domain.Event, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	return s.repo.List(ctx)
}

func (s *EventService) Update(ctx context.Context, id uint, input ports.UpdateEventInput) (*domain.Event, error) {
	return s.repo.Update(ctx, id, input)
}

func (s *EventService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
