package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/billigi/lending-api/internal/core/domain"
	"github.com/billigi/lending-api/internal/core/ports"
)

type stubItemService struct {
	listFn   func(ctx context.Context) ([]*domain.Item, error)
	createFn func(ctx context.Context, in ports.CreateItemInput) (*domain.Item, error)
	claimFn  func(ctx context.Context, id, actingName string) (*domain.Item, error)
	deleteFn func(ctx context.Context, id, actingName string) error
}

func (s *stubItemService) ListItems(ctx context.Context) ([]*domain.Item, error) {
	return s.listFn(ctx)
}

func (s *stubItemService) CreateItem(ctx context.Context, in ports.CreateItemInput) (*domain.Item, error) {
	return s.createFn(ctx, in)
}

func (s *stubItemService) ClaimItem(ctx context.Context, id, actingName string) (*domain.Item, error) {
	return s.claimFn(ctx, id, actingName)
}

func (s *stubItemService) DeleteItem(ctx context.Context, id, actingName string) error {
	return s.deleteFn(ctx, id, actingName)
}

func TestItemHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubItemService{
		listFn: func(context.Context) ([]*domain.Item, error) {
			return []*domain.Item{
				{ID: "665f1a", Name: "Umbrella", Type: domain.ItemLending, Status: domain.ItemAvailable, Owner: "Alice"},
			}, nil
		},
	}
	h := NewItemHandler(stub)

	c, rec := newJSONContext(e, http.MethodGet, "/api/items", nil)
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertStatus(t, rec, http.StatusOK)

	var items []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(items) != 1 || items[0]["_id"] != "665f1a" || items[0]["owner"] != "Alice" {
		t.Fatalf("unexpected payload %+v", items)
	}
	if _, ok := items[0]["borrower"]; ok {
		t.Fatalf("empty borrower should be omitted")
	}
}

func TestItemHandler_List_Empty(t *testing.T) {
	e := newTestEcho()
	stub := &stubItemService{
		listFn: func(context.Context) ([]*domain.Item, error) { return []*domain.Item{}, nil },
	}

	c, rec := newJSONContext(e, http.MethodGet, "/api/items", nil)
	if err := NewItemHandler(stub).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
}

func TestItemHandler_Create_UsesSessionName(t *testing.T) {
	e := newTestEcho()
	stub := &stubItemService{
		createFn: func(_ context.Context, in ports.CreateItemInput) (*domain.Item, error) {
			if in.ActingName != "Alice" {
				t.Fatalf("expected acting name from session, got %q", in.ActingName)
			}
			typ, _ := domain.ParseItemType(in.Type)
			it := domain.NewItem(in.Name, in.Description, typ, in.ActingName)
			it.ID = "new-id"
			return it, nil
		},
	}
	h := NewItemHandler(stub)

	body := strings.NewReader(`{"name":"Umbrella","description":"Blue, folding","type":"lending","owner":"Mallory"}`)
	c, rec := newJSONContext(e, http.MethodPost, "/api/items", body)
	withUser(c, "Alice")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertStatus(t, rec, http.StatusOK)

	var item domain.Item
	if err := json.Unmarshal(rec.Body.Bytes(), &item); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if item.Owner != "Alice" || item.Status != domain.ItemAvailable {
		t.Fatalf("unexpected item %+v", item)
	}
}

func TestItemHandler_Create_RequiresSession(t *testing.T) {
	e := newTestEcho()
	stub := &stubItemService{
		createFn: func(context.Context, ports.CreateItemInput) (*domain.Item, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}

	c, _ := newJSONContext(e, http.MethodPost, "/api/items", strings.NewReader(`{"name":"x","description":"y","type":"lending"}`))
	if err := NewItemHandler(stub).Create(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestItemHandler_Create_InvalidType(t *testing.T) {
	e := newTestEcho()
	stub := &stubItemService{}

	c, _ := newJSONContext(e, http.MethodPost, "/api/items", strings.NewReader(`{"name":"x","description":"y","type":"selling"}`))
	withUser(c, "Alice")

	assertHTTPError(t, NewItemHandler(stub).Create(c), http.StatusBadRequest)
}

func TestItemHandler_Claim(t *testing.T) {
	e := newTestEcho()
	stub := &stubItemService{
		claimFn: func(_ context.Context, id, actingName string) (*domain.Item, error) {
			if id != "abc" || actingName != "Bob" {
				t.Fatalf("unexpected args %s %s", id, actingName)
			}
			return &domain.Item{ID: id, Type: domain.ItemLending, Status: domain.ItemBorrowed, Owner: "Alice", Borrower: "Bob"}, nil
		},
	}

	c, rec := newJSONContext(e, http.MethodPatch, "/api/items/abc", strings.NewReader(`{"status":"borrowed","borrower":"Mallory"}`))
	c.SetParamNames("id")
	c.SetParamValues("abc")
	withUser(c, "Bob")

	if err := NewItemHandler(stub).Claim(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertStatus(t, rec, http.StatusOK)

	var item domain.Item
	_ = json.Unmarshal(rec.Body.Bytes(), &item)
	if item.Borrower != "Bob" || item.Status != domain.ItemBorrowed {
		t.Fatalf("unexpected item %+v", item)
	}
}

func TestItemHandler_Claim_LentAlias(t *testing.T) {
	e := newTestEcho()
	stub := &stubItemService{
		claimFn: func(_ context.Context, id, _ string) (*domain.Item, error) {
			return &domain.Item{ID: id, Status: domain.ItemBorrowed}, nil
		},
	}

	c, rec := newJSONContext(e, http.MethodPatch, "/api/items/abc", strings.NewReader(`{"status":"lent"}`))
	c.SetParamNames("id")
	c.SetParamValues("abc")
	withUser(c, "Bob")

	if err := NewItemHandler(stub).Claim(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertStatus(t, rec, http.StatusOK)
}

func TestItemHandler_Claim_RejectsOtherStatus(t *testing.T) {
	e := newTestEcho()

	c, _ := newJSONContext(e, http.MethodPatch, "/api/items/abc", strings.NewReader(`{"status":"available"}`))
	c.SetParamNames("id")
	c.SetParamValues("abc")
	withUser(c, "Bob")

	assertHTTPError(t, NewItemHandler(&stubItemService{}).Claim(c), http.StatusBadRequest)
}

func TestItemHandler_Claim_Conflict(t *testing.T) {
	e := newTestEcho()
	stub := &stubItemService{
		claimFn: func(context.Context, string, string) (*domain.Item, error) {
			return nil, domain.ErrItemNotAvailable
		},
	}

	c, _ := newJSONContext(e, http.MethodPatch, "/api/items/abc", strings.NewReader(`{"status":"borrowed"}`))
	c.SetParamNames("id")
	c.SetParamValues("abc")
	withUser(c, "Carol")

	if err := NewItemHandler(stub).Claim(c); !errors.Is(err, domain.ErrItemNotAvailable) {
		t.Fatalf("expected ErrItemNotAvailable, got %v", err)
	}
}

func TestItemHandler_Claim_OwnListing(t *testing.T) {
	e := newTestEcho()
	stub := &stubItemService{
		claimFn: func(_ context.Context, _, actingName string) (*domain.Item, error) {
			if actingName != "Alice" {
				t.Fatalf("unexpected acting name %q", actingName)
			}
			return nil, domain.ErrForbidden
		},
	}

	c, rec := newJSONContext(e, http.MethodPatch, "/api/items/abc", strings.NewReader(`{"status":"borrowed"}`))
	c.SetParamNames("id")
	c.SetParamValues("abc")
	withUser(c, "Alice")

	if err := NewItemHandler(stub).Claim(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("no item should be written, got %s", rec.Body.String())
	}
}

func TestItemHandler_Delete(t *testing.T) {
	e := newTestEcho()
	stub := &stubItemService{
		deleteFn: func(_ context.Context, id, actingName string) error {
			if id != "abc" || actingName != "Alice" {
				t.Fatalf("unexpected args %s %s", id, actingName)
			}
			return nil
		},
	}

	c, rec := newJSONContext(e, http.MethodDelete, "/api/items/abc", nil)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	withUser(c, "Alice")

	if err := NewItemHandler(stub).Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertStatus(t, rec, http.StatusOK)
	if !strings.Contains(rec.Body.String(), "Item deleted successfully") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestItemHandler_Delete_Forbidden(t *testing.T) {
	e := newTestEcho()
	stub := &stubItemService{
		deleteFn: func(context.Context, string, string) error { return domain.ErrForbidden },
	}

	c, _ := newJSONContext(e, http.MethodDelete, "/api/items/abc", nil)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	withUser(c, "Mallory")

	if err := NewItemHandler(stub).Delete(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
