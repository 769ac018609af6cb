package domain

import "testing"

func TestBorrowStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from BorrowStatus
		to   BorrowStatus
		want bool
	}{
		{StatusPending, StatusBorrowed, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusReturned, false},
		{StatusBorrowed, StatusReturned, true},
		{StatusBorrowed, StatusRejected, false},
		{StatusBorrowed, StatusPending, false},
		{StatusReturned, StatusBorrowed, false},
		{StatusRejected, StatusBorrowed, false},
		{StatusReturned, StatusPending, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s → %s: got %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestBorrowStatus_Terminal(t *testing.T) {
	if StatusPending.Terminal() || StatusBorrowed.Terminal() {
		t.Fatalf("pending and borrowed must not be terminal")
	}
	if !StatusReturned.Terminal() || !StatusRejected.Terminal() {
		t.Fatalf("returned and rejected must be terminal")
	}
}

func TestBorrowRecord_ValidateBorrower(t *testing.T) {
	userID := uint(7)

	tests := []struct {
		name   string
		record BorrowRecord
		ok     bool
	}{
		{"user only", BorrowRecord{UserID: &userID}, true},
		{"guest only", BorrowRecord{GuestName: "Grace", GuestEmail: "g@example.com"}, true},
		{"neither", BorrowRecord{}, false},
		{"guest name only", BorrowRecord{GuestName: "Grace"}, false},
		{"guest email only", BorrowRecord{GuestEmail: "g@example.com"}, false},
		{"user and guest", BorrowRecord{UserID: &userID, GuestName: "Grace", GuestEmail: "g@example.com"}, false},
		{"user and guest name", BorrowRecord{UserID: &userID, GuestName: "Grace"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.ValidateBorrower()
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && err != ErrBorrowerIdentity {
				t.Fatalf("expected ErrBorrowerIdentity, got %v", err)
			}
		})
	}
}
