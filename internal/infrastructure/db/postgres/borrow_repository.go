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

// BorrowRepository implements ports.BorrowRepository on PostgreSQL.
//
// Every lifecycle transition locks the borrow row and, when inventory is
// touched, the item row FOR UPDATE inside one transaction. Two concurrent
// approvals of the last remaining units serialize on the item lock, so the
// availability check never runs against stale data.
type BorrowRepository struct {
	db *gorm.DB
}

func NewBorrowRepository(db *gorm.DB) *BorrowRepository {
	return &BorrowRepository{db: db}
}

func (r *BorrowRepository) Create(ctx context.Context, record *domain.BorrowRecord) error {
	m := borrowFromDomain(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("insert borrow: %w", err)
	}
	*record = *m.toDomain()
	return nil
}

func (r *BorrowRepository) FindByID(ctx context.Context, id uint) (*domain.BorrowRecord, error) {
	var m borrowModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBorrowNotFound
		}
		return nil, fmt.Errorf("find borrow: %w", err)
	}
	return m.toDomain(), nil
}

func (r *BorrowRepository) List(ctx context.Context, filter ports.ListBorrowsFilter) ([]domain.BorrowRecord, error) {
	q := r.db.WithContext(ctx).Model(&borrowModel{}).Order("created_at DESC")
	if filter.ItemID != 0 {
		q = q.Where("item_id = ?", filter.ItemID)
	}
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}

	var models []borrowModel
	if err := q.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list borrows: %w", err)
	}

	records := make([]domain.BorrowRecord, len(models))
	for i := range models {
		records[i] = *models[i].toDomain()
	}
	return records, nil
}

// Approve executes check availability → decrement → mark borrowed as one
// indivisible unit.
func (r *BorrowRepository) Approve(ctx context.Context, id uint) (*domain.BorrowRecord, error) {
	var m borrowModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockBorrow(tx, id, &m); err != nil {
			return err
		}
		if !domain.BorrowStatus(m.Status).CanTransitionTo(domain.StatusBorrowed) {
			return domain.ErrInvalidTransition
		}

		var item itemModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&item, "id = ?", m.ItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrItemNotFound
			}
			return err
		}
		if item.QuantityAvailable < m.Quantity {
			return domain.ErrInsufficientQuantity
		}

		if err := tx.Model(&itemModel{}).Where("id = ?", item.ID).
			Update("quantity_available", gorm.Expr("quantity_available - ?", m.Quantity)).Error; err != nil {
			return err
		}
		return r.setStatus(tx, &m, domain.StatusBorrowed)
	})
	if err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *BorrowRepository) Reject(ctx context.Context, id uint) (*domain.BorrowRecord, error) {
	var m borrowModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockBorrow(tx, id, &m); err != nil {
			return err
		}
		if !domain.BorrowStatus(m.Status).CanTransitionTo(domain.StatusRejected) {
			return domain.ErrInvalidTransition
		}
		return r.setStatus(tx, &m, domain.StatusRejected)
	})
	if err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}

// Return is the symmetric inverse of Approve: mark returned and hand the
// quantity back to the item, atomically.
func (r *BorrowRepository) Return(ctx context.Context, id uint) (*domain.BorrowRecord, error) {
	var m borrowModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockBorrow(tx, id, &m); err != nil {
			return err
		}
		if !domain.BorrowStatus(m.Status).CanTransitionTo(domain.StatusReturned) {
			return domain.ErrInvalidTransition
		}

		var item itemModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&item, "id = ?", m.ItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrItemNotFound
			}
			return err
		}

		if err := tx.Model(&itemModel{}).Where("id = ?", item.ID).
			Update("quantity_available", gorm.Expr("quantity_available + ?", m.Quantity)).Error; err != nil {
			return err
		}
		return r.setStatus(tx, &m, domain.StatusReturned)
	})
	if err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *BorrowRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m borrowModel
		if err := lockBorrow(tx, id, &m); err != nil {
			return err
		}
		// an active loan must be returned before the record can go
		if domain.BorrowStatus(m.Status) == domain.StatusBorrowed {
			return domain.ErrBorrowActive
		}
		return tx.Delete(&borrowModel{}, "id = ?", id).Error
	})
}

func lockBorrow(tx *gorm.DB, id uint, dst *borrowModel) error {
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(dst, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrBorrowNotFound
		}
		return err
	}
	return nil
}

func (r *BorrowRepository) setStatus(tx *gorm.DB, m *borrowModel, status domain.BorrowStatus) error {
	if err := tx.Model(&borrowModel{}).Where("id = ?", m.ID).
		Update("status", string(status)).Error; err != nil {
		return err
	}
	m.Status = string(status)
	return nil
}
