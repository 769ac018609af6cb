package domain

import (
	"errors"
	"time"
)

// BorrowStatus represents the lifecycle state of a borrow record.
type BorrowStatus string

const (
	StatusPending  BorrowStatus = "pending"
	StatusBorrowed BorrowStatus = "borrowed"
	StatusReturned BorrowStatus = "returned"
	StatusRejected BorrowStatus = "rejected"
)

// validTransitions defines the allowed state machine transitions.
// returned and rejected are terminal.
var validTransitions = map[BorrowStatus][]BorrowStatus{
	StatusPending:  {StatusBorrowed, StatusRejected},
	StatusBorrowed: {StatusReturned},
}

var ErrBorrowNotFound = errors.New("borrow record not found")
var ErrInvalidQuantity = errors.New("quantity must be at least 1")
var ErrInvalidDateRange = errors.New("start date must be before end date")
var ErrInvalidTransition = errors.New("invalid borrow status transition")
var ErrBorrowActive = errors.New("borrow record is currently borrowed")
var ErrBorrowerIdentity = errors.New("exactly one of user or guest identity must be set")

// CanTransitionTo reports whether a transition from s to next is valid.
func (s BorrowStatus) CanTransitionTo(next BorrowStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is defined from s.
func (s BorrowStatus) Terminal() bool {
	return len(validTransitions[s]) == 0
}

// BorrowRecord represents one request/loan of a quantity of one item,
// either by a registered user or by a named guest.
type BorrowRecord struct {
	ID         uint         `json:"id"`
	ItemID     uint         `json:"item_id"`
	UserID     *uint        `json:"user_id,omitempty"`
	GuestName  string       `json:"guest_name,omitempty"`
	GuestEmail string       `json:"guest_email,omitempty"`
	Quantity   int          `json:"quantity"`
	StartDate  time.Time    `json:"start_date"`
	EndDate    time.Time    `json:"end_date"`
	Status     BorrowStatus `json:"status"`
	Comment    string       `json:"comment,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// ValidateBorrower enforces the identity XOR: a record belongs to a
// registered user or to a guest (name and email), never both, never neither.
func (b *BorrowRecord) ValidateBorrower() error {
	if b.UserID != nil {
		if b.GuestName != "" || b.GuestEmail != "" {
			return ErrBorrowerIdentity
		}
		return nil
	}
	if b.GuestName == "" || b.GuestEmail == "" {
		return ErrBorrowerIdentity
	}
	return nil
}
