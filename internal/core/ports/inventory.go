package ports

import (
	"context"

	"github.com/clubstack/inventory-system/internal/core/domain"
)

// CreateItemInput carries the fields for a new inventory item. The available
// quantity is not part of the input: it always starts equal to Quantity.
type CreateItemInput struct {
	Name        string
	Quantity    int
	Category    string
	Description string
	PictureURL  string
	IsForBorrow bool
}

// UpdateItemInput is a typed partial update. A nil field means "leave
// unchanged", which is distinct from setting a field to its zero value.
type UpdateItemInput struct {
	Name        *string
	Quantity    *int
	Category    *string
	Description *string
	PictureURL  *string
	IsForBorrow *bool
}

// InventoryRepository defines persistence operations for inventory items.
type InventoryRepository interface {
	Create(ctx context.Context, item *domain.InventoryItem) error
	FindByID(ctx context.Context, id uint) (*domain.InventoryItem, error)
	List(ctx context.Context) ([]domain.InventoryItem, error)
	ListAvailable(ctx context.Context) ([]domain.InventoryItem, error)
	ListByCategory(ctx context.Context, category string) ([]domain.InventoryItem, error)
	// Update applies a partial update in one transaction. Lowering the total
	// quantity below the currently borrowed quantity fails with
	// domain.ErrQuantityCommitted; otherwise the available quantity moves by
	// the same delta as the total.
	Update(ctx context.Context, id uint, input UpdateItemInput) (*domain.InventoryItem, error)
	// Delete fails with domain.ErrItemHasActiveBorrows while any borrow
	// record for the item is pending or borrowed.
	Delete(ctx context.Context, id uint) error
}

// InventoryService defines use-case operations for the inventory ledger.
type InventoryService interface {
	Create(ctx context.Context, input CreateItemInput) (*domain.InventoryItem, error)
	Get(ctx context.Context, id uint) (*domain.InventoryItem, error)
	List(ctx context.Context) ([]domain.InventoryItem, error)
	ListAvailable(ctx context.Context) ([]domain.InventoryItem, error)
	ListByCategory(ctx context.Context, category string) ([]domain.InventoryItem, error)
	Update(ctx context.Context, id uint, input UpdateItemInput) (*domain.InventoryItem, error)
	Delete(ctx context.Context, id uint) error
}
