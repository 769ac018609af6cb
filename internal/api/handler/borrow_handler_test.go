package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/clubstack/inventory-system/internal/core/domain"
	"github.com/clubstack/inventory-system/internal/core/ports"
)

type stubBorrowService struct {
	requestFn func(ctx context.Context, input ports.RequestBorrowInput) (*domain.BorrowRecord, error)
	approveFn func(ctx context.Context, id uint) (*domain.BorrowRecord, error)
	getFn     func(ctx context.Context, id uint) (*domain.BorrowRecord, error)
	listFn    func(ctx context.Context, filter ports.ListBorrowsFilter) ([]domain.BorrowRecord, error)
}

func (s *stubBorrowService) Request(ctx context.Context, input ports.RequestBorrowInput) (*domain.BorrowRecord, error) {
	return s.requestFn(ctx, input)
}

func (s *stubBorrowService) Approve(ctx context.Context, id uint) (*domain.BorrowRecord, error) {
	return s.approveFn(ctx, id)
}

func (s *stubBorrowService) Reject(context.Context, uint) (*domain.BorrowRecord, error) {
	return nil, errors.New("not implemented")
}

func (s *stubBorrowService) Return(context.Context, uint) (*domain.BorrowRecord, error) {
	return nil, errors.New("not implemented")
}

func (s *stubBorrowService) Delete(context.Context, uint) error {
	return errors.New("not implemented")
}

func (s *stubBorrowService) Get(ctx context.Context, id uint) (*domain.BorrowRecord, error) {
	return s.getFn(ctx, id)
}

func (s *stubBorrowService) List(ctx context.Context, filter ports.ListBorrowsFilter) ([]domain.BorrowRecord, error) {
	return s.listFn(ctx, filter)
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, userID uint, role string) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("username", "alice")
	c.Set("role", role)
	return c
}

func TestBorrowHandler_RequestUser_TakesBorrowerFromToken(t *testing.T) {
	e := newTestEcho()
	stub := &stubBorrowService{
		requestFn: func(_ context.Context, input ports.RequestBorrowInput) (*domain.BorrowRecord, error) {
			if input.UserID == nil || *input.UserID != 7 {
				t.Fatalf("borrower not taken from token: %+v", input.UserID)
			}
			if input.GuestName != "" || input.GuestEmail != "" {
				t.Fatalf("guest identity must stay empty")
			}
			return &domain.BorrowRecord{ID: 1, ItemID: input.ItemID, UserID: input.UserID, Quantity: input.Quantity, Status: domain.StatusPending}, nil
		},
	}
	handler := NewBorrowHandler(stub)

	body := strings.NewReader(`{"item_id":3,"quantity":2,"start_date":"2026-09-01T10:00:00Z","end_date":"2026-09-03T10:00:00Z"}`)
	req := httptest.NewRequest(http.MethodPost, "/borrows/user", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, 7, domain.RoleMember)

	if err := handler.RequestUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != string(domain.StatusPending) {
		t.Fatalf("expected pending record, got %+v", resp)
	}
}

func TestBorrowHandler_RequestUser_Unauthenticated(t *testing.T) {
	e := newTestEcho()
	handler := NewBorrowHandler(&stubBorrowService{})

	req := httptest.NewRequest(http.MethodPost, "/borrows/user", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.RequestUser(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestBorrowHandler_RequestGuest(t *testing.T) {
	e := newTestEcho()
	stub := &stubBorrowService{
		requestFn: func(_ context.Context, input ports.RequestBorrowInput) (*domain.BorrowRecord, error) {
			if input.UserID != nil {
				t.Fatalf("guest request must not carry a user id")
			}
			if input.GuestName != "Grace Visitor" || input.GuestEmail != "grace@example.com" {
				t.Fatalf("unexpected guest identity: %+v", input)
			}
			return &domain.BorrowRecord{ID: 2, Status: domain.StatusPending}, nil
		},
	}
	handler := NewBorrowHandler(stub)

	body := strings.NewReader(`{"item_id":3,"guest_name":"Grace Visitor","guest_email":"grace@example.com","quantity":1,"start_date":"2026-09-01T10:00:00Z","end_date":"2026-09-03T10:00:00Z"}`)
	req := httptest.NewRequest(http.MethodPost, "/borrows/guest", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.RequestGuest(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestBorrowHandler_RequestGuest_MissingEmail(t *testing.T) {
	e := newTestEcho()
	handler := NewBorrowHandler(&stubBorrowService{
		requestFn: func(context.Context, ports.RequestBorrowInput) (*domain.BorrowRecord, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	body := strings.NewReader(`{"item_id":3,"guest_name":"Grace","quantity":1,"start_date":"2026-09-01T10:00:00Z","end_date":"2026-09-03T10:00:00Z"}`)
	req := httptest.NewRequest(http.MethodPost, "/borrows/guest", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.RequestGuest(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestBorrowHandler_Approve_PassesDomainErrorsThrough(t *testing.T) {
	e := newTestEcho()
	stub := &stubBorrowService{
		approveFn: func(context.Context, uint) (*domain.BorrowRecord, error) {
			return nil, domain.ErrInsufficientQuantity
		},
	}
	handler := NewBorrowHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/borrows/5/approve", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, 1, domain.RoleAdmin)
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := handler.Approve(c); !errors.Is(err, domain.ErrInsufficientQuantity) {
		t.Fatalf("expected ErrInsufficientQuantity, got %v", err)
	}
}

func TestBorrowHandler_Get_HidesForeignRecords(t *testing.T) {
	e := newTestEcho()
	owner := uint(3)
	stub := &stubBorrowService{
		getFn: func(_ context.Context, id uint) (*domain.BorrowRecord, error) {
			return &domain.BorrowRecord{ID: id, UserID: &owner, Status: domain.StatusPending}, nil
		},
	}
	handler := NewBorrowHandler(stub)

	// another member must not see the record
	req := httptest.NewRequest(http.MethodGet, "/borrows/9", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, 7, domain.RoleMember)
	c.SetParamNames("id")
	c.SetParamValues("9")

	if err := handler.Get(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// an admin sees everything
	rec = httptest.NewRecorder()
	c = authedContext(e, req, rec, 1, domain.RoleAdmin)
	c.SetParamNames("id")
	c.SetParamValues("9")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestBorrowHandler_List_PinsMembersToOwnRecords(t *testing.T) {
	e := newTestEcho()
	stub := &stubBorrowService{
		listFn: func(_ context.Context, filter ports.ListBorrowsFilter) ([]domain.BorrowRecord, error) {
			if filter.UserID == nil || *filter.UserID != 7 {
				t.Fatalf("member listing not pinned to own user id: %+v", filter)
			}
			return nil, nil
		},
	}
	handler := NewBorrowHandler(stub)

	// even an explicit user_id query is ignored for non-admins
	req := httptest.NewRequest(http.MethodGet, "/borrows?user_id=1", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, 7, domain.RoleMember)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
