package models

// InventoryItem captures per-product stock and ordering constraints as served
// by the remote order API. AvailableKg is signed: a negative balance means the
// shop has accepted preorders beyond what is on hand.
type InventoryItem struct {
	ID          string  `json:"id"`
	Product     Product `json:"product"`
	PricePerKg  float64 `json:"price_per_kg"`
	MinKg       int     `json:"min_kg"`
	StepKg      int     `json:"step_kg"`
	AvailableKg int     `json:"available_kg"`
}
