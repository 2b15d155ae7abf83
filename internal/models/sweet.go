package models

// Sweet is a catalog entry owned by the remote inventory. The client only ever
// holds a point-in-time snapshot of these.
type Sweet struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// InStock reports whether at least one unit can still be purchased.
func (s Sweet) InStock() bool {
	return s.Quantity > 0
}
