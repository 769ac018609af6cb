package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clubstack/inventory-system/internal/core/domain"
	"github.com/clubstack/inventory-system/internal/core/ports"
)

// BorrowService drives borrow records through the lifecycle state machine
// (pending → borrowed → returned, pending → rejected).
//
// A request does not reserve any quantity: availability is checked again at
// approval time inside the store transaction, so a request may be accepted
// even while stock is momentarily insufficient.
type BorrowService struct {
	repo  ports.BorrowRepository
	items ports.InventoryRepository
	users ports.UserRepository
	cache ListingCache
	log   zerolog.Logger
}

func NewBorrowService(
	repo ports.BorrowRepository,
	items ports.InventoryRepository,
	users ports.UserRepository,
	cache ListingCache,
	log zerolog.Logger,
) *BorrowService {
	return &BorrowService{repo: repo, items: items, users: users, cache: cache, log: log}
}

func (s *BorrowService) Request(ctx context.Context, input ports.RequestBorrowInput) (*domain.BorrowRecord, error) {
	if input.Quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	if !input.StartDate.Before(input.EndDate) {
		return nil, domain.ErrInvalidDateRange
	}

	record := &domain.BorrowRecord{
		ItemID:     input.ItemID,
		UserID:     input.UserID,
		GuestName:  input.GuestName,
		GuestEmail: input.GuestEmail,
		Quantity:   input.Quantity,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Status:     domain.StatusPending,
		Comment:    input.Comment,
	}
	if err := record.ValidateBorrower(); err != nil {
		return nil, err
	}

	item, err := s.items.FindByID(ctx, input.ItemID)
	if err != nil {
		return nil, fmt.Errorf("request borrow: %w", err)
	}
	if !item.IsForBorrow {
		return nil, domain.ErrItemNotBorrowable
	}

	if input.UserID != nil {
		if _, err := s.users.FindByID(ctx, *input.UserID); err != nil {
			return nil, fmt.Errorf("request borrow: %w", err)
		}
	}

	if err := s.repo.Create(ctx, record); err != nil {
		s.log.Error().Err(err).Uint("item_id", input.ItemID).Msg("failed to create borrow record")
		return nil, err
	}

	s.log.Info().
		Uint("borrow_id", record.ID).
		Uint("item_id", record.ItemID).
		Int("quantity", record.Quantity).
		Bool("guest", record.UserID == nil).
		Msg("borrow requested")

	return record, nil
}

// Approve transitions a pending record to borrowed. The availability check,
// the quantity decrement and the status change happen in one repository
// transaction; two concurrent approvals can never both pass the check
// against stale data.
func (s *BorrowService) Approve(ctx context.Context, id uint) (*domain.BorrowRecord, error) {
	record, err := s.repo.Approve(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientQuantity) || errors.Is(err, domain.ErrInvalidTransition) {
			s.log.Warn().Err(err).Uint("borrow_id", id).Msg("borrow approval refused")
		}
		return nil, err
	}

	s.invalidateListings(ctx)
	s.log.Info().Uint("borrow_id", id).Uint("item_id", record.ItemID).Msg("borrow approved")
	return record, nil
}

func (s *BorrowService) Reject(ctx context.Context, id uint) (*domain.BorrowRecord, error) {
	record, err := s.repo.Reject(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Uint("borrow_id", id).Msg("borrow rejected")
	return record, nil
}

func (s *BorrowService) Return(ctx context.Context, id uint) (*domain.BorrowRecord, error) {
	record, err := s.repo.Return(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidateListings(ctx)
	s.log.Info().Uint("borrow_id", id).Uint("item_id", record.ItemID).Msg("borrow returned")
	return record, nil
}

func (s *BorrowService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Uint("borrow_id", id).Msg("borrow record deleted")
	return nil
}

func (s *BorrowService) Get(ctx context.Context, id uint) (*domain.BorrowRecord, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BorrowService) List(ctx context.Context, filter ports.ListBorrowsFilter) ([]domain.BorrowRecord, error) {
	return s.repo.List(ctx, filter)
}

func (s *BorrowService) invalidateListings(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("listing cache invalidation failed")
	}
}
