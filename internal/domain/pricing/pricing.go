// Package pricing holds the quantity and money rules applied while a customer
// builds an order. Everything here is advisory: the remote API recomputes the
// authoritative total when the order is created.
package pricing

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/ermalb/suxhuk-orders/internal/domain/models"
)

// DefaultQuantity is the quantity a fresh product selection starts from.
func DefaultQuantity(item models.InventoryItem) int {
	return item.MinKg
}

// NormalizeQuantity parses a requested quantity against the item's ordering
// constraints. Non-numeric input and anything below the minimum fall back to
// the minimum; step alignment is hinted to the customer but not enforced,
// matching how the order form behaves.
func NormalizeQuantity(raw string, item models.InventoryItem) int {
	qty, err := strconv.Atoi(raw)
	if err != nil || qty < item.MinKg {
		return item.MinKg
	}
	return qty
}

// StepAligned reports whether the quantity lands on the item's increment grid.
func StepAligned(qty int, item models.InventoryItem) bool {
	if item.StepKg <= 0 {
		return true
	}
	return (qty-item.MinKg)%item.StepKg == 0
}

// Total computes price per kg times quantity rounded to two decimal places.
func Total(pricePerKg float64, qtyKg int) decimal.Decimal {
	return decimal.NewFromFloat(pricePerKg).
		Mul(decimal.NewFromInt(int64(qtyKg))).
		Round(2)
}

// DisplayTotal renders the running total the way the order form shows it,
// always with two decimals.
func DisplayTotal(pricePerKg float64, qtyKg int) string {
	return Total(pricePerKg, qtyKg).StringFixed(2)
}
