package dto

// SweetInput is the payload for creating or fully replacing a sweet. Price and
// Quantity are pointers so that "missing" is distinguishable from zero.
type SweetInput struct {
	Name     string   `json:"name" validate:"required"`
	Category string   `json:"category" validate:"required"`
	Price    *float64 `json:"price" validate:"required,gte=0"`
	Quantity *int     `json:"quantity" validate:"required,gte=0"`
}
