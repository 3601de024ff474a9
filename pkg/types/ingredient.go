package types

// Ingredient is a stock item with a quantity in some unit (e.g. 50 Kg).
type Ingredient struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

// Allergen is a named allergen (e.g. Nuts).
type Allergen struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
