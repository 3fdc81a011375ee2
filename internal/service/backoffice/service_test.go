package backoffice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ermalb/suxhuk-orders/internal/domain/models"
)

// fakeAPI keeps inventory and orders in memory and applies upserts the way
// the remote order API would, so reload-after-mutation can be observed.
type fakeAPI struct {
	inventory []models.InventoryItem
	orders    []models.Order

	upsertItemCalls int
	lastUpsert      models.InventoryItem
}

func (f *fakeAPI) ListInventory(ctx context.Context) ([]models.InventoryItem, error) {
	out := make([]models.InventoryItem, len(f.inventory))
	copy(out, f.inventory)
	return out, nil
}

func (f *fakeAPI) UpsertInventoryItem(ctx context.Context, item models.InventoryItem) (*models.InventoryItem, error) {
	f.upsertItemCalls++
	f.lastUpsert = item
	for i := range f.inventory {
		if f.inventory[i].ID == item.ID {
			f.inventory[i] = item
			return &item, nil
		}
	}
	f.inventory = append(f.inventory, item)
	return &item, nil
}

func (f *fakeAPI) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return []models.Customer{{ID: "cust-1", Name: "Blerta", Email: "blerta@example.nz"}}, nil
}

func (f *fakeAPI) UpsertCustomer(ctx context.Context, form models.CustomerForm) (*models.Customer, error) {
	return &models.Customer{ID: "cust-1", Name: form.Name, Email: form.Email}, nil
}

func (f *fakeAPI) ListOrders(ctx context.Context) ([]models.Order, error) {
	out := make([]models.Order, len(f.orders))
	copy(out, f.orders)
	return out, nil
}

func (f *fakeAPI) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	return nil, errors.New("not used by the admin portal")
}

func (f *fakeAPI) SetOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == orderID {
			// Only the status moves; everything else stays as created.
			f.orders[i].Status = status
			order := f.orders[i]
			return &order, nil
		}
	}
	return nil, errors.New("order not found")
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		inventory: []models.InventoryItem{
			{ID: "inv-1", Product: models.ProductSuxhuk, PricePerKg: 50, MinKg: 1, StepKg: 1, AvailableKg: 10},
			{ID: "inv-2", Product: models.ProductMishTeTeren, PricePerKg: 65, MinKg: 3, StepKg: 1, AvailableKg: 5},
		},
		orders: []models.Order{
			{
				ID:            "ord-1",
				CustomerID:    "cust-1",
				Product:       models.ProductSuxhuk,
				QuantityKg:    3,
				TotalPriceNZD: 150,
				Status:        models.StatusReceived,
				CreatedAt:     time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC),
			},
		},
	}
}

func TestAdjustAvailablePlusOne(t *testing.T) {
	api := newFakeAPI()
	svc := NewAdminService(api, nil)

	items, err := svc.AdjustAvailable(context.Background(), "inv-1", 1)
	if err != nil {
		t.Fatalf("AdjustAvailable: %v", err)
	}

	if api.lastUpsert.AvailableKg != 11 {
		t.Errorf("upserted stock = %d, want 11", api.lastUpsert.AvailableKg)
	}
	// The upsert carries the full record, with everything else untouched.
	if api.lastUpsert.PricePerKg != 50 || api.lastUpsert.MinKg != 1 || api.lastUpsert.StepKg != 1 {
		t.Errorf("non-adjusted fields changed: %+v", api.lastUpsert)
	}

	if items[0].AvailableKg != 11 {
		t.Errorf("reloaded stock = %d, want 11", items[0].AvailableKg)
	}
	if items[1].AvailableKg != 5 {
		t.Errorf("other item must be untouched, got %d", items[1].AvailableKg)
	}
}

func TestAdjustAvailableIntoPreorder(t *testing.T) {
	api := newFakeAPI()
	api.inventory[1].AvailableKg = 0
	svc := NewAdminService(api, nil)

	items, err := svc.AdjustAvailable(context.Background(), "inv-2", -1)
	if err != nil {
		t.Fatalf("AdjustAvailable: %v", err)
	}
	if items[1].AvailableKg != -1 {
		t.Errorf("stock = %d, want -1 (preorder territory)", items[1].AvailableKg)
	}
}

func TestAdjustPriceHasNoFloor(t *testing.T) {
	api := newFakeAPI()
	api.inventory[0].PricePerKg = 0
	svc := NewAdminService(api, nil)

	items, err := svc.AdjustPrice(context.Background(), "inv-1", -1)
	if err != nil {
		t.Fatalf("AdjustPrice: %v", err)
	}
	if items[0].PricePerKg != -1 {
		t.Errorf("price = %v, want -1: the board has no client-side guardrail", items[0].PricePerKg)
	}
}

func TestAdjustRejectsArbitraryDeltas(t *testing.T) {
	api := newFakeAPI()
	svc := NewAdminService(api, nil)

	for _, delta := range []int{0, 2, -5, 100} {
		if _, err := svc.AdjustAvailable(context.Background(), "inv-1", delta); !errors.Is(err, ErrInvalidDelta) {
			t.Errorf("delta %d: error = %v, want ErrInvalidDelta", delta, err)
		}
	}
	if api.upsertItemCalls != 0 {
		t.Errorf("rejected deltas must not reach the API, got %d upserts", api.upsertItemCalls)
	}
}

func TestAdjustUnknownItem(t *testing.T) {
	svc := NewAdminService(newFakeAPI(), nil)

	if _, err := svc.AdjustAvailable(context.Background(), "inv-404", 1); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("error = %v, want ErrItemNotFound", err)
	}
}

func TestSetStatusRoundTrip(t *testing.T) {
	api := newFakeAPI()
	svc := NewAdminService(api, nil)

	orders, err := svc.SetStatus(context.Background(), "ord-1", models.StatusReadyForCollection)
	if err != nil {
		t.Fatalf("SetStatus forward: %v", err)
	}
	if orders[0].Status != models.StatusReadyForCollection {
		t.Fatalf("status = %q after forward jump", orders[0].Status)
	}

	// No terminal state: the operator can send it straight back.
	orders, err = svc.SetStatus(context.Background(), "ord-1", models.StatusReceived)
	if err != nil {
		t.Fatalf("SetStatus backward: %v", err)
	}
	if orders[0].Status != models.StatusReceived {
		t.Fatalf("status = %q after backward jump", orders[0].Status)
	}

	// Everything besides status survives both transitions.
	got := orders[0]
	if got.Product != models.ProductSuxhuk || got.QuantityKg != 3 || got.TotalPriceNZD != 150 ||
		got.CustomerID != "cust-1" || !got.CreatedAt.Equal(time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC)) {
		t.Errorf("immutable fields changed: %+v", got)
	}
}

func TestUpsertCustomerReloadsList(t *testing.T) {
	svc := NewAdminService(newFakeAPI(), nil)

	customers, err := svc.UpsertCustomer(context.Background(), models.CustomerForm{Name: "Blerta", Email: "blerta@example.nz"})
	if err != nil {
		t.Fatalf("UpsertCustomer: %v", err)
	}
	if len(customers) != 1 || customers[0].ID != "cust-1" {
		t.Errorf("reloaded customers = %+v", customers)
	}
}

func TestInventorySnapshotReplacedWholesale(t *testing.T) {
	api := newFakeAPI()
	svc := NewAdminService(api, nil)

	if len(svc.Inventory()) != 0 {
		t.Fatal("snapshot must start empty")
	}

	if _, err := svc.RefreshInventory(context.Background()); err != nil {
		t.Fatalf("RefreshInventory: %v", err)
	}
	if len(svc.Inventory()) != 2 {
		t.Fatalf("snapshot = %d items, want 2", len(svc.Inventory()))
	}

	api.inventory = api.inventory[:1]
	if _, err := svc.RefreshInventory(context.Background()); err != nil {
		t.Fatalf("RefreshInventory: %v", err)
	}
	if len(svc.Inventory()) != 1 {
		t.Errorf("snapshot must be replaced wholesale, got %d items", len(svc.Inventory()))
	}
}
