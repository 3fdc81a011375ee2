package pricing

import (
	"testing"

	"github.com/ermalb/suxhuk-orders/internal/domain/models"
)

var suxhukItem = models.InventoryItem{
	ID:          "inv-1",
	Product:     models.ProductSuxhuk,
	PricePerKg:  50,
	MinKg:       1,
	StepKg:      1,
	AvailableKg: 10,
}

var mishItem = models.InventoryItem{
	ID:          "inv-2",
	Product:     models.ProductMishTeTeren,
	PricePerKg:  65,
	MinKg:       3,
	StepKg:      1,
	AvailableKg: 5,
}

func TestDefaultQuantity(t *testing.T) {
	if got := DefaultQuantity(suxhukItem); got != 1 {
		t.Fatalf("DefaultQuantity(suxhuk) = %d, want 1", got)
	}
	if got := DefaultQuantity(mishItem); got != 3 {
		t.Fatalf("DefaultQuantity(mish_te_teren) = %d, want 3", got)
	}
}

func TestNormalizeQuantity(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		item models.InventoryItem
		want int
	}{
		{name: "valid quantity", raw: "3", item: suxhukItem, want: 3},
		{name: "exactly the minimum", raw: "3", item: mishItem, want: 3},
		{name: "below minimum falls back", raw: "1", item: mishItem, want: 3},
		{name: "zero falls back", raw: "0", item: suxhukItem, want: 1},
		{name: "negative falls back", raw: "-4", item: suxhukItem, want: 1},
		{name: "non-numeric falls back", raw: "plenty", item: suxhukItem, want: 1},
		{name: "empty falls back", raw: "", item: mishItem, want: 3},
		{name: "large order passes", raw: "40", item: suxhukItem, want: 40},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeQuantity(tc.raw, tc.item); got != tc.want {
				t.Fatalf("NormalizeQuantity(%q) = %d, want %d", tc.raw, got, tc.want)
			}
		})
	}
}

func TestStepAligned(t *testing.T) {
	fiveStep := models.InventoryItem{MinKg: 3, StepKg: 5}

	if !StepAligned(8, fiveStep) {
		t.Fatal("8 should align on min 3 step 5")
	}
	if StepAligned(9, fiveStep) {
		t.Fatal("9 should not align on min 3 step 5")
	}
	if !StepAligned(7, models.InventoryItem{MinKg: 1, StepKg: 0}) {
		t.Fatal("zero step must not reject quantities")
	}
}

func TestDisplayTotal(t *testing.T) {
	tests := []struct {
		name       string
		pricePerKg float64
		qtyKg      int
		want       string
	}{
		{name: "suxhuk minimum", pricePerKg: 50, qtyKg: 1, want: "50.00"},
		{name: "suxhuk three kilos", pricePerKg: 50, qtyKg: 3, want: "150.00"},
		{name: "mish te teren minimum", pricePerKg: 65, qtyKg: 3, want: "195.00"},
		{name: "fractional price", pricePerKg: 49.99, qtyKg: 3, want: "149.97"},
		{name: "rounding to two places", pricePerKg: 10.005, qtyKg: 1, want: "10.01"},
		{name: "zero price", pricePerKg: 0, qtyKg: 7, want: "0.00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DisplayTotal(tc.pricePerKg, tc.qtyKg); got != tc.want {
				t.Fatalf("DisplayTotal(%v, %d) = %q, want %q", tc.pricePerKg, tc.qtyKg, got, tc.want)
			}
		})
	}
}
