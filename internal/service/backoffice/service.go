package backoffice

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ermalb/suxhuk-orders/internal/domain/models"
	"github.com/ermalb/suxhuk-orders/pkg/clients/orderapi"
)

// ErrItemNotFound is returned when an adjustment targets an inventory item
// missing from the current snapshot.
var ErrItemNotFound = errors.New("inventory item not found")

// ErrInvalidDelta rejects adjustments other than the fixed +1/-1 steps the
// admin board exposes.
var ErrInvalidDelta = errors.New("adjustment delta must be +1 or -1")

// Service describes the admin portal operations the HTTP layer can perform.
type Service interface {
	Inventory() []models.InventoryItem
	RefreshInventory(ctx context.Context) ([]models.InventoryItem, error)
	AdjustAvailable(ctx context.Context, itemID string, deltaKg int) ([]models.InventoryItem, error)
	AdjustPrice(ctx context.Context, itemID string, deltaDollars int) ([]models.InventoryItem, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	UpsertCustomer(ctx context.Context, form models.CustomerForm) ([]models.Customer, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	SetStatus(ctx context.Context, orderID string, status models.OrderStatus) ([]models.Order, error)
}

// AdminService is the production implementation backed by the remote order
// API. It keeps one snapshot per collection and replaces it wholesale after
// every mutation; there is no finer cache invalidation, and no protection
// against two operators adjusting the same item at once.
type AdminService struct {
	client orderapi.Client
	logger *zap.Logger

	mu        sync.RWMutex
	inventory []models.InventoryItem
}

// NewAdminService wires a new admin portal service.
func NewAdminService(client orderapi.Client, logger *zap.Logger) *AdminService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminService{
		client: client,
		logger: logger,
	}
}

// Inventory returns the last loaded snapshot without touching the network.
func (s *AdminService) Inventory() []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inventory
}

// RefreshInventory reloads the inventory snapshot, in the order the API
// returns it.
func (s *AdminService) RefreshInventory(ctx context.Context) ([]models.InventoryItem, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	items, err := s.client.ListInventory(ctxWithTimeout)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.inventory = items
	s.mu.Unlock()
	return items, nil
}

// AdjustAvailable applies a ±1 kg step to an item's available stock. Stock may
// go negative; that is how preorders are represented.
func (s *AdminService) AdjustAvailable(ctx context.Context, itemID string, deltaKg int) ([]models.InventoryItem, error) {
	return s.adjust(ctx, itemID, deltaKg, func(item *models.InventoryItem, delta int) {
		item.AvailableKg += delta
	})
}

// AdjustPrice applies a ±$1 step to an item's price per kg. There is no
// client-side floor: the operator can drive a price negative, same as the
// reference board.
func (s *AdminService) AdjustPrice(ctx context.Context, itemID string, deltaDollars int) ([]models.InventoryItem, error) {
	return s.adjust(ctx, itemID, deltaDollars, func(item *models.InventoryItem, delta int) {
		item.PricePerKg += float64(delta)
	})
}

func (s *AdminService) adjust(ctx context.Context, itemID string, delta int, apply func(*models.InventoryItem, int)) ([]models.InventoryItem, error) {
	if delta != 1 && delta != -1 {
		return nil, ErrInvalidDelta
	}

	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	apply(&item, delta)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// The API expects the full modified record as an upsert.
	if _, err := s.client.UpsertInventoryItem(ctxWithTimeout, item); err != nil {
		return nil, err
	}

	s.logger.Info("inventory adjusted",
		zap.String("item_id", itemID),
		zap.String("product", string(item.Product)),
		zap.Int("delta", delta))

	return s.RefreshInventory(ctx)
}

func (s *AdminService) findItem(ctx context.Context, itemID string) (models.InventoryItem, error) {
	s.mu.RLock()
	snapshot := s.inventory
	s.mu.RUnlock()

	if len(snapshot) == 0 {
		var err error
		snapshot, err = s.RefreshInventory(ctx)
		if err != nil {
			return models.InventoryItem{}, err
		}
	}

	for _, item := range snapshot {
		if item.ID == itemID {
			return item, nil
		}
	}
	return models.InventoryItem{}, ErrItemNotFound
}

// ListCustomers fetches every client record.
func (s *AdminService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return s.client.ListCustomers(ctxWithTimeout)
}

// UpsertCustomer saves a client record from the admin side and returns the
// reloaded list.
func (s *AdminService) UpsertCustomer(ctx context.Context, form models.CustomerForm) ([]models.Customer, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	customer, err := s.client.UpsertCustomer(ctxWithTimeout, form)
	if err != nil {
		return nil, err
	}

	s.logger.Info("customer upserted", zap.String("customer_id", customer.ID))

	return s.ListCustomers(ctx)
}

// ListOrders fetches every order.
func (s *AdminService) ListOrders(ctx context.Context) ([]models.Order, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return s.client.ListOrders(ctxWithTimeout)
}

// SetStatus moves an order to the given status with a single call addressed
// by ID, then reloads the full order list for authoritative state. Any jump
// between the three states is allowed, including backwards; only membership
// of the status set is checked, and that happens before this is called.
func (s *AdminService) SetStatus(ctx context.Context, orderID string, status models.OrderStatus) ([]models.Order, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	updated, err := s.client.SetOrderStatus(ctxWithTimeout, orderID, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info("order status changed",
		zap.String("order_id", updated.ID),
		zap.String("status", string(updated.Status)),
		zap.String("badge", updated.Status.Badge()))

	return s.ListOrders(ctx)
}
