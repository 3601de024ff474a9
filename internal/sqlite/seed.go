package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/parlor/pkg/types"
)

// defaultFlavors, defaultIngredients and defaultAllergens are the starter
// catalog written by Seed.
var defaultFlavors = []types.Flavor{
	{Name: "Vanilla Bliss", Description: "Classic vanilla with rich cream"},
	{Name: "Chocolate Burst", Description: "Dark chocolate with nuts"},
	{Name: "Pistachio Perfection", Description: "A balanced flavor of pistachios"},
	{Name: "Butterscotch Delight", Description: "Rich butterscotch with a satisfying flavor", Seasonal: true},
	{Name: "Mango Mirage", Description: "An exotic, dream-like mango experience", Seasonal: true},
}

var defaultIngredients = []types.Ingredient{
	{Name: "Milk", Quantity: 100, Unit: "Liters"},
	{Name: "Sugar", Quantity: 50, Unit: "Kg"},
	{Name: "Chocolate Chips", Quantity: 30, Unit: "Kg"},
	{Name: "Nuts", Quantity: 20, Unit: "Kg"},
	{Name: "Vanilla Extract", Quantity: 5, Unit: "Liters"},
}

var defaultAllergens = []types.Allergen{
	{Name: "Nuts"},
	{Name: "Milk"},
	{Name: "Chocolate"},
	{Name: "Soy"},
}

// SeedResult counts the rows written by Seed per table.
type SeedResult struct {
	Flavors     int `json:"flavors"`
	Ingredients int `json:"ingredients"`
	Allergens   int `json:"allergens"`
}

// Seed writes the starter catalog. Each table is seeded only while it is
// empty, so running Seed again writes nothing.
func (s *Store) Seed(ctx context.Context) (SeedResult, error) {
	var res SeedResult
	var err error

	res.Flavors, err = s.seedTable(ctx, types.FlavorsTable,
		"INSERT INTO flavors (name, description, is_seasonal) VALUES (?, ?, ?)",
		len(defaultFlavors), func(i int) []any {
			f := defaultFlavors[i]
			return []any{f.Name, f.Description, boolToInt(f.Seasonal)}
		})
	if err != nil {
		return res, err
	}

	res.Ingredients, err = s.seedTable(ctx, types.IngredientsTable,
		"INSERT INTO ingredients (name, quantity, unit) VALUES (?, ?, ?)",
		len(defaultIngredients), func(i int) []any {
			in := defaultIngredients[i]
			return []any{in.Name, in.Quantity, in.Unit}
		})
	if err != nil {
		return res, err
	}

	res.Allergens, err = s.seedTable(ctx, types.AllergensTable,
		"INSERT INTO allergens (name) VALUES (?)",
		len(defaultAllergens), func(i int) []any {
			return []any{defaultAllergens[i].Name}
		})
	if err != nil {
		return res, err
	}

	s.logger.Info("seeded catalog",
		zap.Int("flavors", res.Flavors),
		zap.Int("ingredients", res.Ingredients),
		zap.Int("allergens", res.Allergens))
	return res, nil
}

// seedTable inserts n rows with the prepared insert statement when table is
// empty and returns the number of rows written. table must be one of
// types.StandardTableNames.
func (s *Store) seedTable(ctx context.Context, table, insert string, n int, args func(i int) []any) (int, error) {
	written := 0
	err := s.withConnection(ctx, func(tx *sql.Tx) error {
		var count int
		if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
			return fmt.Errorf("counting %s: %w", table, err)
		}
		if count > 0 {
			return nil
		}

		stmt, err := tx.PrepareContext(ctx, insert)
		if err != nil {
			return fmt.Errorf("preparing %s seed: %w", table, err)
		}
		defer stmt.Close()

		for i := 0; i < n; i++ {
			if _, err := stmt.ExecContext(ctx, args(i)...); err != nil {
				return fmt.Errorf("seeding %s: %w", table, err)
			}
			written++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return written, nil
}
