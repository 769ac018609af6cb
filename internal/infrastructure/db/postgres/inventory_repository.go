package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/clubstack/inventory-system/internal/core/domain"
	"github.com/clubstack/inventory-system/internal/core/ports"
)

// InventoryRepository implements ports.InventoryRepository on PostgreSQL.
type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) error {
	m := itemFromDomain(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	*item = *m.toDomain()
	return nil
}

func (r *InventoryRepository) FindByID(ctx context.Context, id uint) (*domain.InventoryItem, error) {
	var m itemModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	return m.toDomain(), nil
}

func (r *InventoryRepository) List(ctx context.Context) ([]domain.InventoryItem, error) {
	return r.list(ctx, r.db.WithContext(ctx))
}

func (r *InventoryRepository) ListAvailable(ctx context.Context) ([]domain.InventoryItem, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("quantity_available > 0 AND is_for_borrow"))
}

func (r *InventoryRepository) ListByCategory(ctx context.Context, category string) ([]domain.InventoryItem, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("category = ?", category))
}

func (r *InventoryRepository) list(_ context.Context, q *gorm.DB) ([]domain.InventoryItem, error) {
	var models []itemModel
	if err := q.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	items := make([]domain.InventoryItem, len(models))
	for i := range models {
		items[i] = *models[i].toDomain()
	}
	return items, nil
}

// Update applies a partial update in one transaction. When the total
// quantity changes, the available quantity moves by the same delta; the
// committed (borrowed) quantity is preserved and can never be cut off.
func (r *InventoryRepository) Update(ctx context.Context, id uint, input ports.UpdateItemInput) (*domain.InventoryItem, error) {
	var m itemModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&m, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrItemNotFound
			}
			return err
		}

		updates := map[string]any{}
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Category != nil {
			updates["category"] = *input.Category
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.PictureURL != nil {
			updates["picture_url"] = *input.PictureURL
		}
		if input.IsForBorrow != nil {
			updates["is_for_borrow"] = *input.IsForBorrow
		}
		if input.Quantity != nil {
			committed := m.Quantity - m.QuantityAvailable
			if *input.Quantity < committed {
				return domain.ErrQuantityCommitted
			}
			updates["quantity"] = *input.Quantity
			updates["quantity_available"] = *input.Quantity - committed
		}
		if len(updates) == 0 {
			return nil
		}

		if err := tx.Model(&itemModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&m, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}

// Delete refuses while any pending or borrowed record still references the
// item; terminal-state history does not block deletion.
func (r *InventoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m itemModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&m, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrItemNotFound
			}
			return err
		}

		var active int64
		if err := tx.Model(&borrowModel{}).
			Where("item_id = ? AND status IN ?", id, []string{
				string(domain.StatusPending),
				string(domain.StatusBorrowed),
			}).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return domain.ErrItemHasActiveBorrows
		}

		return tx.Delete(&itemModel{}, "id = ?", id).Error
	})
}
