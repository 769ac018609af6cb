package ports

import (
	"context"
	"time"

	"github.com/clubstack/inventory-system/internal/core/domain"
)

// RequestBorrowInput carries the data for a new borrow request. Exactly one
// of UserID or (GuestName, GuestEmail) must be set.
type RequestBorrowInput struct {
	ItemID     uint
	UserID     *uint
	GuestName  string
	GuestEmail string
	Quantity   int
	StartDate  time.Time
	EndDate    time.Time
	Comment    string
}

// ListBorrowsFilter narrows List results. Zero values mean "no filter".
type ListBorrowsFilter struct {
	ItemID uint
	UserID *uint
	Status domain.BorrowStatus
}

// BorrowRepository defines persistence for borrow records. Approve and
// Return execute the availability check and quantity adjustment atomically
// with the status change, in a single store transaction.
type BorrowRepository interface {
	Create(ctx context.Context, record *domain.BorrowRecord) error
	FindByID(ctx context.Context, id uint) (*domain.BorrowRecord, error)
	List(ctx context.Context, filter ListBorrowsFilter) ([]domain.BorrowRecord, error)
	// Approve transitions pending → borrowed and decrements the item's
	// available quantity. Fails with domain.ErrBorrowNotFound,
	// domain.ErrInvalidTransition or domain.ErrInsufficientQuantity.
	Approve(ctx context.Context, id uint) (*domain.BorrowRecord, error)
	// Reject transitions pending → rejected with no inventory effect.
	Reject(ctx context.Context, id uint) (*domain.BorrowRecord, error)
	// Return transitions borrowed → returned and increments the item's
	// available quantity.
	Return(ctx context.Context, id uint) (*domain.BorrowRecord, error)
	// Delete fails with domain.ErrBorrowActive while the record is borrowed.
	Delete(ctx context.Context, id uint) error
}

// BorrowService drives borrow records through their lifecycle.
type BorrowService interface {
	Request(ctx context.Context, input RequestBorrowInput) (*domain.BorrowRecord, error)
	Approve(ctx context.Context, id uint) (*domain.BorrowRecord, error)
	Reject(ctx context.Context, id uint) (*domain.BorrowRecord, error)
	Return(ctx context.Context, id uint) (*domain.BorrowRecord, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*domain.BorrowRecord, error)
	List(ctx context.Context, filter ListBorrowsFilter) ([]domain.BorrowRecord, error)
}
