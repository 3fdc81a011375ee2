package models

import (
	"fmt"
	"strings"
	"time"
)

// OrderStatus enumerates the order lifecycle states.
type OrderStatus string

const (
	StatusReceived           OrderStatus = "received"
	StatusInProduction       OrderStatus = "in_production"
	StatusReadyForCollection OrderStatus = "ready_for_collection"
)

// statusBadges maps each status to the color the admin board shows it in.
var statusBadges = map[OrderStatus]string{
	StatusReceived:           "green",
	StatusInProduction:       "orange",
	StatusReadyForCollection: "red",
}

// Badge returns the admin board color for the status.
func (s OrderStatus) Badge() string {
	return statusBadges[s]
}

// ParseStatus validates a wire value against the known status set. Membership
// is the only check: the operator may jump an order between any two states,
// including backwards.
func ParseStatus(raw string) (OrderStatus, error) {
	switch OrderStatus(strings.TrimSpace(strings.ToLower(raw))) {
	case StatusReceived:
		return StatusReceived, nil
	case StatusInProduction:
		return StatusInProduction, nil
	case StatusReadyForCollection:
		return StatusReadyForCollection, nil
	default:
		return "", fmt.Errorf("unknown order status %q", raw)
	}
}

// Order is a placed order as held by the remote API. Product, quantity, total
// and customer reference are fixed at creation; only Status changes afterwards.
type Order struct {
	ID            string      `json:"id"`
	CustomerID    string      `json:"customer_id"`
	Product       Product     `json:"product"`
	QuantityKg    int         `json:"quantity_kg"`
	TotalPriceNZD float64     `json:"total_price_nzd"`
	Status        OrderStatus `json:"status"`
	Notes         string      `json:"notes,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

// CreateOrderRequest is the payload POSTed to /orders. The server computes the
// total from current pricing and defaults the status.
type CreateOrderRequest struct {
	CustomerID string  `json:"customer_id"`
	Product    Product `json:"product"`
	QuantityKg int     `json:"quantity_kg"`
	Notes      string  `json:"notes,omitempty"`
}

// StatusChangeRequest is the payload PATCHed to /orders/{id}/status.
type StatusChangeRequest struct {
	Status OrderStatus `json:"status"`
}
