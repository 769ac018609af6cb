package domain

import (
	"errors"
	"time"
)

var ErrItemNotFound = errors.New("inventory item not found")
var ErrItemNotBorrowable = errors.New("item is not available for borrowing")
var ErrInsufficientQuantity = errors.New("not enough items available")
var ErrQuantityCommitted = errors.New("total quantity below currently borrowed quantity")
var ErrItemHasActiveBorrows = errors.New("item still referenced by active borrow records")

// InventoryItem is a loanable or consumable resource owned by the club.
//
// Invariant: 0 <= QuantityAvailable <= Quantity at all times. The available
// quantity is mutated only inside borrow lifecycle transactions and direct
// admin edits, never by handlers.
type InventoryItem struct {
	ID                uint      `json:"id"`
	Name              string    `json:"name"`
	Quantity          int       `json:"quantity"`
	QuantityAvailable int       `json:"quantity_available"`
	Description       string    `json:"description,omitempty"`
	Category          string    `json:"category"`
	PictureURL        string    `json:"picture_url,omitempty"`
	IsForBorrow       bool      `json:"is_for_borrow"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
