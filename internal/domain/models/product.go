package models

import (
	"fmt"
	"strings"
)

// Product enumerates the two items the shop sells.
type Product string

const (
	ProductSuxhuk      Product = "suxhuk"
	ProductMishTeTeren Product = "mish_te_teren"
)

var productLabels = map[Product]string{
	ProductSuxhuk:      "Suxhuk",
	ProductMishTeTeren: "Mish te teren",
}

// Label returns the customer-facing display name for the product.
func (p Product) Label() string {
	if label, ok := productLabels[p]; ok {
		return label
	}
	return string(p)
}

// ParseProduct validates a wire value against the known product set.
func ParseProduct(raw string) (Product, error) {
	switch Product(strings.TrimSpace(strings.ToLower(raw))) {
	case ProductSuxhuk:
		return ProductSuxhuk, nil
	case ProductMishTeTeren:
		return ProductMishTeTeren, nil
	default:
		return "", fmt.Errorf("unknown product %q", raw)
	}
}
