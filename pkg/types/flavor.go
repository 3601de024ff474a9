package types

// Flavor is a sellable ice-cream variety.
type Flavor struct {
	// ID is assigned by the store on insert.
	ID int64 `json:"id"`

	// Name is unique across flavors.
	Name string `json:"name"`

	Description string `json:"description"`

	// Seasonal marks a flavor as available only part of the year.
	// Stored as 0/1.
	Seasonal bool `json:"is_seasonal"`
}

// SeasonalLabel returns "Yes" for seasonal flavors and "No" otherwise.
func (f Flavor) SeasonalLabel() string {
	if f.Seasonal {
		return "Yes"
	}
	return "No"
}
