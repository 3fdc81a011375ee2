package orderapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/ermalb/suxhuk-orders/internal/config"
	"github.com/ermalb/suxhuk-orders/internal/domain/models"
)

// Client exposes the remote order API operations the portals rely on.
type Client interface {
	ListInventory(ctx context.Context) ([]models.InventoryItem, error)
	UpsertInventoryItem(ctx context.Context, item models.InventoryItem) (*models.InventoryItem, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	UpsertCustomer(ctx context.Context, form models.CustomerForm) (*models.Customer, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error)
	SetOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.Order, error)
}

// APIClient is a resty-backed implementation of Client. Every call is a
// single attempt: no retries, no caching.
type APIClient struct {
	httpClient *resty.Client
}

// New builds an order API client from the provided configuration.
func New(cfg config.OrderAPIConfig) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout)

	return &APIClient{httpClient: restyClient}
}

// apiError mirrors the error payload the order API attaches to non-success
// responses.
type apiError struct {
	Error string `json:"error"`
}

func (c *APIClient) execute(ctx context.Context, method, path string, body, result any) error {
	apiErr := new(apiError)

	req := c.httpClient.R().
		SetContext(ctx).
		SetError(apiErr)
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return &NetworkError{Op: fmt.Sprintf("%s %s", method, path), Err: err}
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return &ServerError{StatusCode: resp.StatusCode(), Message: apiErr.Error}
	}

	return nil
}

// Get issues a GET request against the resource path and decodes the response
// into result.
func (c *APIClient) Get(ctx context.Context, path string, result any) error {
	return c.execute(ctx, http.MethodGet, path, nil, result)
}

// Post issues a POST request with the given body.
func (c *APIClient) Post(ctx context.Context, path string, body, result any) error {
	return c.execute(ctx, http.MethodPost, path, body, result)
}

// Put issues a PUT request with the given body.
func (c *APIClient) Put(ctx context.Context, path string, body, result any) error {
	return c.execute(ctx, http.MethodPut, path, body, result)
}

// Patch issues a PATCH request with the given body.
func (c *APIClient) Patch(ctx context.Context, path string, body, result any) error {
	return c.execute(ctx, http.MethodPatch, path, body, result)
}

// ListInventory fetches the current inventory in the order the API returns it.
func (c *APIClient) ListInventory(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := c.Get(ctx, "/inventory", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpsertInventoryItem sends the full record back; the API matches on identity.
func (c *APIClient) UpsertInventoryItem(ctx context.Context, item models.InventoryItem) (*models.InventoryItem, error) {
	updated := new(models.InventoryItem)
	if err := c.Post(ctx, "/inventory", item, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// ListCustomers fetches every client record.
func (c *APIClient) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := c.Get(ctx, "/customers", &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// UpsertCustomer saves a profile form; the API resolves or assigns the ID.
func (c *APIClient) UpsertCustomer(ctx context.Context, form models.CustomerForm) (*models.Customer, error) {
	customer := new(models.Customer)
	if err := c.Post(ctx, "/customers", form, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// ListOrders fetches every order.
func (c *APIClient) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.Get(ctx, "/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder places an order. The returned record carries the authoritative
// total and defaulted status.
func (c *APIClient) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	order := new(models.Order)
	if err := c.Post(ctx, "/orders", req, order); err != nil {
		return nil, err
	}
	return order, nil
}

// SetOrderStatus moves an order to the given status. The API does not restrict
// which jumps are legal.
func (c *APIClient) SetOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.Order, error) {
	order := new(models.Order)
	path := fmt.Sprintf("/orders/%s/status", orderID)
	if err := c.Patch(ctx, path, models.StatusChangeRequest{Status: status}, order); err != nil {
		return nil, err
	}
	return order, nil
}
