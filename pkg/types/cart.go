package types

// CartLine is a record of intent to purchase one unit of a flavor.
// FlavorID is not checked against the flavors table.
type CartLine struct {
	ID       int64 `json:"id"`
	FlavorID int64 `json:"flavor_id"`
}

// CartItem is a cart line joined with its flavor. Lines whose flavor does
// not exist never appear as items.
type CartItem struct {
	FlavorID   int64  `json:"flavor_id"`
	FlavorName string `json:"flavor_name"`
}
