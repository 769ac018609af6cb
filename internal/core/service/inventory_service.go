package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/clubstack/inventory-system/internal/core/domain"
	"github.com/clubstack/inventory-system/internal/core/ports"
)

// ListingCache abstracts the Redis-backed cache for the public inventory
// listings. Get returns (nil, nil) on a miss. Cache failures are never
// fatal: the store remains the source of truth.
type ListingCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, payload []byte) error
	Invalidate(ctx context.Context) error
}

const (
	cacheKeyAll       = "inventory:all"
	cacheKeyAvailable = "inventory:available"
	cacheKeyCategory  = "inventory:category:"
)

// InventoryService owns item records and the available-quantity invariant.
type InventoryService struct {
	repo  ports.InventoryRepository
	cache ListingCache
	log   zerolog.Logger
}

func NewInventoryService(repo ports.InventoryRepository, cache ListingCache, log zerolog.Logger) *InventoryService {
	return &InventoryService{repo: repo, cache: cache, log: log}
}

func (s *InventoryService) Create(ctx context.Context, input ports.CreateItemInput) (*domain.InventoryItem, error) {
	item := &domain.InventoryItem{
		Name:     input.Name,
		Quantity: input.Quantity,
		// available always starts at the full total
		QuantityAvailable: input.Quantity,
		Category:          input.Category,
		Description:       input.Description,
		PictureURL:        input.PictureURL,
		IsForBorrow:       input.IsForBorrow,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		s.log.Error().Err(err).Str("name", input.Name).Msg("failed to create inventory item")
		return nil, err
	}

	s.invalidateListings(ctx)
	s.log.Info().Uint("item_id", item.ID).Str("name", item.Name).Msg("inventory item created")
	return item, nil
}

func (s *InventoryService) Get(ctx context.Context, id uint) (*domain.InventoryItem, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *InventoryService) List(ctx context.Context) ([]domain.InventoryItem, error) {
	return s.listCached(ctx, cacheKeyAll, s.repo.List)
}

func (s *InventoryService) ListAvailable(ctx context.Context) ([]domain.InventoryItem, error) {
	return s.listCached(ctx, cacheKeyAvailable, s.repo.ListAvailable)
}

func (s *InventoryService) ListByCategory(ctx context.Context, category string) ([]domain.InventoryItem, error) {
	return s.listCached(ctx, cacheKeyCategory+category, func(ctx context.Context) ([]domain.InventoryItem, error) {
		return s.repo.ListByCategory(ctx, category)
	})
}

func (s *InventoryService) Update(ctx context.Context, id uint, input ports.UpdateItemInput) (*domain.InventoryItem, error) {
	item, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}
	s.invalidateListings(ctx)
	s.log.Info().Uint("item_id", id).Msg("inventory item updated")
	return item, nil
}

func (s *InventoryService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateListings(ctx)
	s.log.Info().Uint("item_id", id).Msg("inventory item deleted")
	return nil
}

// listCached serves a listing from the cache when possible, falling back to
// the repository and repopulating the cache on a miss.
func (s *InventoryService) listCached(ctx context.Context, key string, load func(context.Context) ([]domain.InventoryItem, error)) ([]domain.InventoryItem, error) {
	if payload, err := s.cache.Get(ctx, key); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("listing cache read failed")
	} else if payload != nil {
		var items []domain.InventoryItem
		if err := json.Unmarshal(payload, &items); err == nil {
			return items, nil
		}
		s.log.Warn().Str("key", key).Msg("discarding undecodable cache entry")
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(items); err == nil {
		if err := s.cache.Set(ctx, key, payload); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("listing cache write failed")
		}
	}
	return items, nil
}

func (s *InventoryService) invalidateListings(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("listing cache invalidation failed")
	}
}
