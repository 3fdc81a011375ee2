package storefront

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ermalb/suxhuk-orders/internal/domain/models"
	"github.com/ermalb/suxhuk-orders/internal/domain/pricing"
	"github.com/ermalb/suxhuk-orders/pkg/clients/orderapi"
)

// ErrSessionNotFound is returned when the session ID is unknown so the HTTP
// layer can respond with 404.
var ErrSessionNotFound = errors.New("session not found")

// ErrProductUnavailable is returned when the selected product has no matching
// inventory entry in the current snapshot.
var ErrProductUnavailable = errors.New("product not present in inventory")

// PreconditionError marks a request the portal refused before touching the
// network, such as ordering without a saved profile.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string { return e.Reason }

// Quote is the running order summary shown while the customer adjusts
// quantity. DisplayTotal is advisory; the order API computes the real total.
type Quote struct {
	Item         models.InventoryItem `json:"item"`
	QuantityKg   int                  `json:"quantity_kg"`
	DisplayTotal string               `json:"display_total"`
	StepAligned  bool                 `json:"step_aligned"`
}

// OrderConfirmation reports the authoritative order fields returned by the
// API after a successful creation.
type OrderConfirmation struct {
	OrderID       string  `json:"order_id"`
	ProductLabel  string  `json:"product_label"`
	QuantityKg    int     `json:"quantity_kg"`
	TotalPriceNZD float64 `json:"total_price_nzd"`
	Message       string  `json:"message"`
}

// Service describes the customer portal operations the HTTP layer can perform.
type Service interface {
	StartSession(ctx context.Context) (Session, error)
	SaveProfile(ctx context.Context, sessionID string, form models.CustomerForm) (*models.Customer, error)
	SelectProduct(ctx context.Context, sessionID string, product models.Product) (Quote, error)
	SetQuantity(sessionID string, raw string) (Quote, error)
	Quote(sessionID string) (Quote, error)
	PlaceOrder(ctx context.Context, sessionID, notes string) (*OrderConfirmation, error)
	RefreshInventory(ctx context.Context, sessionID string) error
}

// PortalService is the production implementation backed by the remote order API.
type PortalService struct {
	client   orderapi.Client
	sessions *SessionManager
	logger   *zap.Logger
}

// NewPortalService wires a new customer portal service.
func NewPortalService(client orderapi.Client, logger *zap.Logger) *PortalService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PortalService{
		client:   client,
		sessions: NewSessionManager(),
		logger:   logger,
	}
}

// StartSession opens a fresh customer session with a current inventory
// snapshot and the default product selected.
func (s *PortalService) StartSession(ctx context.Context) (Session, error) {
	sess := s.sessions.Create()
	if err := s.loadInventory(ctx, &sess); err != nil {
		s.sessions.Clear(sess.ID)
		return Session{}, err
	}
	s.sessions.Update(sess)

	s.logger.Info("session started", zap.String("session_id", sess.ID))
	return sess, nil
}

// SaveProfile upserts the customer's profile. Name and email must be present;
// phone and address may stay blank. The API resolves the identity and the
// returned record becomes the session's customer.
func (s *PortalService) SaveProfile(ctx context.Context, sessionID string, form models.CustomerForm) (*models.Customer, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	if strings.TrimSpace(form.Name) == "" {
		return nil, &PreconditionError{Reason: "name is required"}
	}
	if strings.TrimSpace(form.Email) == "" {
		return nil, &PreconditionError{Reason: "email is required"}
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	customer, err := s.client.UpsertCustomer(ctxWithTimeout, form)
	if err != nil {
		return nil, err
	}

	sess.Customer = customer
	s.sessions.Update(sess)

	s.logger.Info("profile saved",
		zap.String("session_id", sessionID),
		zap.String("customer_id", customer.ID))
	return customer, nil
}

// SelectProduct switches the session to another product and resets the
// requested quantity to that product's minimum.
func (s *PortalService) SelectProduct(ctx context.Context, sessionID string, product models.Product) (Quote, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return Quote{}, ErrSessionNotFound
	}

	sess.Product = product
	if item, found := sess.Item(); found {
		sess.QuantityKg = pricing.DefaultQuantity(item)
	}
	s.sessions.Update(sess)

	return s.quoteFor(sess)
}

// SetQuantity applies a requested quantity to the session. Out-of-range or
// non-numeric input falls back to the product's minimum.
func (s *PortalService) SetQuantity(sessionID string, raw string) (Quote, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return Quote{}, ErrSessionNotFound
	}

	item, found := sess.Item()
	if !found {
		return Quote{}, ErrProductUnavailable
	}

	sess.QuantityKg = pricing.NormalizeQuantity(raw, item)
	s.sessions.Update(sess)

	return s.quoteFor(sess)
}

// Quote returns the current running total for the session.
func (s *PortalService) Quote(sessionID string) (Quote, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return Quote{}, ErrSessionNotFound
	}
	return s.quoteFor(sess)
}

// PlaceOrder submits the session's selection as an order. A session without a
// saved profile fails fast and never reaches the API. On success the
// confirmation carries the API's authoritative figures and the session's
// inventory snapshot is refreshed to pick up the stock decrement.
func (s *PortalService) PlaceOrder(ctx context.Context, sessionID, notes string) (*OrderConfirmation, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	if sess.Customer == nil || sess.Customer.ID == "" {
		return nil, &PreconditionError{Reason: "please save your profile first"}
	}

	if _, found := sess.Item(); !found {
		return nil, ErrProductUnavailable
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	order, err := s.client.CreateOrder(ctxWithTimeout, models.CreateOrderRequest{
		CustomerID: sess.Customer.ID,
		Product:    sess.Product,
		QuantityKg: sess.QuantityKg,
		Notes:      notes,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order placed",
		zap.String("session_id", sessionID),
		zap.String("order_id", order.ID),
		zap.String("product", string(order.Product)),
		zap.Int("quantity_kg", order.QuantityKg),
		zap.Float64("total_price_nzd", order.TotalPriceNZD))

	if err := s.RefreshInventory(ctx, sessionID); err != nil {
		// The order went through; a stale snapshot only affects the next quote.
		s.logger.Warn("inventory refresh after order failed", zap.Error(err))
	}

	return &OrderConfirmation{
		OrderID:       order.ID,
		ProductLabel:  order.Product.Label(),
		QuantityKg:    order.QuantityKg,
		TotalPriceNZD: order.TotalPriceNZD,
		Message: fmt.Sprintf("Order placed: %s - %d kg - $%.2f",
			order.Product.Label(), order.QuantityKg, order.TotalPriceNZD),
	}, nil
}

// RefreshInventory reloads the full inventory into the session and resets the
// requested quantity to the selected product's minimum, the same way the order
// form re-initializes after a reload.
func (s *PortalService) RefreshInventory(ctx context.Context, sessionID string) error {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return ErrSessionNotFound
	}

	if err := s.loadInventory(ctx, &sess); err != nil {
		return err
	}
	s.sessions.Update(sess)
	return nil
}

func (s *PortalService) loadInventory(ctx context.Context, sess *Session) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	items, err := s.client.ListInventory(ctxWithTimeout)
	if err != nil {
		return err
	}

	sess.Inventory = items
	if item, found := sess.Item(); found {
		sess.QuantityKg = pricing.DefaultQuantity(item)
	}
	return nil
}

func (s *PortalService) quoteFor(sess Session) (Quote, error) {
	item, found := sess.Item()
	if !found {
		return Quote{}, ErrProductUnavailable
	}

	return Quote{
		Item:         item,
		QuantityKg:   sess.QuantityKg,
		DisplayTotal: pricing.DisplayTotal(item.PricePerKg, sess.QuantityKg),
		StepAligned:  pricing.StepAligned(sess.QuantityKg, item),
	}, nil
}
