package service

import (
	"context"
	"sync"

	"github.com/clubstack/inventory-system/internal/core/domain"
	"github.com/clubstack/inventory-system/internal/core/ports"
)

// In-memory stubs shared by the service tests. The borrow stub mirrors the
// transactional guarantees of the SQL repository: every lifecycle transition
// runs under one mutex together with the quantity bookkeeping.

type stubCache struct {
	mu          sync.Mutex
	entries     map[string][]byte
	invalidated int
}

func newStubCache() *stubCache {
	return &stubCache{entries: map[string][]byte{}}
}

func (c *stubCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	payload, ok := c.entries[key]
	if !ok {
		return nil, nil
	}
	return payload, nil
}

func (c *stubCache) Set(_ context.Context, key string, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = payload
	return nil
}

func (c *stubCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = map[string][]byte{}
	c.invalidated++
	return nil
}

type stubUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]domain.User
	// ids with a pending or borrowed record, consulted by Delete
	activeBorrows map[uint]bool
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{nextID: 1, users: map[uint]domain.User{}, activeBorrows: map[uint]bool{}}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = *user
	clone := *user
	return &clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := u
	return &clone, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			clone := u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

func (r *stubUserRepo) UpdatePasswordHash(_ context.Context, id uint, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	r.users[id] = u
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	if r.activeBorrows[id] {
		return domain.ErrUserHasActiveBorrows
	}
	delete(r.users, id)
	return nil
}

type stubItemRepo struct {
	mu     sync.Mutex
	nextID uint
	items  map[uint]domain.InventoryItem
	// ids with a pending or borrowed record, consulted by Delete
	activeBorrows map[uint]bool
}

func newStubItemRepo() *stubItemRepo {
	return &stubItemRepo{nextID: 1, items: map[uint]domain.InventoryItem{}, activeBorrows: map[uint]bool{}}
}

func (r *stubItemRepo) Create(_ context.Context, item *domain.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ID = r.nextID
	r.nextID++
	r.items[item.ID] = *item
	return nil
}

func (r *stubItemRepo) FindByID(_ context.Context, id uint) (*domain.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	clone := it
	return &clone, nil
}

func (r *stubItemRepo) List(context.Context) ([]domain.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]domain.InventoryItem, 0, len(r.items))
	for _, it := range r.items {
		items = append(items, it)
	}
	return items, nil
}

func (r *stubItemRepo) ListAvailable(context.Context) ([]domain.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []domain.InventoryItem
	for _, it := range r.items {
		if it.QuantityAvailable > 0 && it.IsForBorrow {
			items = append(items, it)
		}
	}
	return items, nil
}

func (r *stubItemRepo) ListByCategory(_ context.Context, category string) ([]domain.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []domain.InventoryItem
	for _, it := range r.items {
		if it.Category == category {
			items = append(items, it)
		}
	}
	return items, nil
}

func (r *stubItemRepo) Update(_ context.Context, id uint, input ports.UpdateItemInput) (*domain.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	if input.Name != nil {
		it.Name = *input.Name
	}
	if input.Category != nil {
		it.Category = *input.Category
	}
	if input.Description != nil {
		it.Description = *input.Description
	}
	if input.PictureURL != nil {
		it.PictureURL = *input.PictureURL
	}
	if input.IsForBorrow != nil {
		it.IsForBorrow = *input.IsForBorrow
	}
	if input.Quantity != nil {
		committed := it.Quantity - it.QuantityAvailable
		if *input.Quantity < committed {
			return nil, domain.ErrQuantityCommitted
		}
		it.Quantity = *input.Quantity
		it.QuantityAvailable = *input.Quantity - committed
	}
	r.items[id] = it
	clone := it
	return &clone, nil
}

func (r *stubItemRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrItemNotFound
	}
	if r.activeBorrows[id] {
		return domain.ErrItemHasActiveBorrows
	}
	delete(r.items, id)
	return nil
}

// adjustAvailable is used by the borrow stub while holding its own lock; the
// item lock here keeps the two stubs individually consistent.
func (r *stubItemRepo) adjustAvailable(id uint, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok {
		return domain.ErrItemNotFound
	}
	if it.QuantityAvailable+delta < 0 {
		return domain.ErrInsufficientQuantity
	}
	it.QuantityAvailable += delta
	r.items[id] = it
	return nil
}

type stubBorrowRepo struct {
	mu      sync.Mutex
	nextID  uint
	records map[uint]domain.BorrowRecord
	items   *stubItemRepo
}

func newStubBorrowRepo(items *stubItemRepo) *stubBorrowRepo {
	return &stubBorrowRepo{nextID: 1, records: map[uint]domain.BorrowRecord{}, items: items}
}

func (r *stubBorrowRepo) Create(_ context.Context, record *domain.BorrowRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	record.ID = r.nextID
	r.nextID++
	r.records[record.ID] = *record
	return nil
}

func (r *stubBorrowRepo) FindByID(_ context.Context, id uint) (*domain.BorrowRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, domain.ErrBorrowNotFound
	}
	clone := rec
	return &clone, nil
}

func (r *stubBorrowRepo) List(_ context.Context, filter ports.ListBorrowsFilter) ([]domain.BorrowRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var records []domain.BorrowRecord
	for _, rec := range r.records {
		if filter.ItemID != 0 && rec.ItemID != filter.ItemID {
			continue
		}
		if filter.UserID != nil && (rec.UserID == nil || *rec.UserID != *filter.UserID) {
			continue
		}
		if filter.Status != "" && rec.Status != filter.Status {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *stubBorrowRepo) Approve(_ context.Context, id uint) (*domain.BorrowRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, domain.ErrBorrowNotFound
	}
	if !rec.Status.CanTransitionTo(domain.StatusBorrowed) {
		return nil, domain.ErrInvalidTransition
	}
	if err := r.items.adjustAvailable(rec.ItemID, -rec.Quantity); err != nil {
		return nil, err
	}
	rec.Status = domain.StatusBorrowed
	r.records[id] = rec
	clone := rec
	return &clone, nil
}

func (r *stubBorrowRepo) Reject(_ context.Context, id uint) (*domain.BorrowRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, domain.ErrBorrowNotFound
	}
	if !rec.Status.CanTransitionTo(domain.StatusRejected) {
		return nil, domain.ErrInvalidTransition
	}
	rec.Status = domain.StatusRejected
	r.records[id] = rec
	clone := rec
	return &clone, nil
}

func (r *stubBorrowRepo) Return(_ context.Context, id uint) (*domain.BorrowRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, domain.ErrBorrowNotFound
	}
	if !rec.Status.CanTransitionTo(domain.StatusReturned) {
		return nil, domain.ErrInvalidTransition
	}
	if err := r.items.adjustAvailable(rec.ItemID, rec.Quantity); err != nil {
		return nil, err
	}
	rec.Status = domain.StatusReturned
	r.records[id] = rec
	clone := rec
	return &clone, nil
}

func (r *stubBorrowRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return domain.ErrBorrowNotFound
	}
	if rec.Status == domain.StatusBorrowed {
		return domain.ErrBorrowActive
	}
	delete(r.records, id)
	return nil
}
