package types

import "context"

// Catalog manages flavors, ingredients and allergens. The Add methods return
// a human-readable status message on success.
type Catalog interface {
	// AddFlavor inserts f and sets f.ID. A name that already exists is not
	// an error: the returned status says so and no row is written.
	AddFlavor(ctx context.Context, f *Flavor) (string, error)

	// AddIngredient inserts in and sets in.ID. There is no duplicate check.
	AddIngredient(ctx context.Context, in *Ingredient) (string, error)

	// AddAllergen inserts a and sets a.ID. There is no duplicate check.
	AddAllergen(ctx context.Context, a *Allergen) (string, error)

	// SearchFlavors returns flavors whose name contains keyword, in id
	// order. An empty keyword matches every flavor.
	SearchFlavors(ctx context.Context, keyword string) ([]Flavor, error)

	ListIngredients(ctx context.Context) ([]Ingredient, error)
	ListAllergens(ctx context.Context) ([]Allergen, error)
}

// Cart manages cart lines.
type Cart interface {
	// AddToCart adds one line for flavorID without checking that the
	// flavor exists.
	AddToCart(ctx context.Context, flavorID int64) (string, error)

	// ViewCart returns every line whose flavor exists, in line order.
	ViewCart(ctx context.Context) ([]CartItem, error)

	// RemoveFromCart deletes every line for flavorID. It reports success
	// even when no line matched.
	RemoveFromCart(ctx context.Context, flavorID int64) (string, error)
}

// Parlor is the full storage surface used by the menu loop.
type Parlor interface {
	Catalog
	Cart
}
