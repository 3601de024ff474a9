package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/parlor/pkg/types"
)

// AddFlavor inserts f and sets f.ID. A name collision is reported in the
// returned status with a nil error and leaves the table unchanged.
func (s *Store) AddFlavor(ctx context.Context, f *types.Flavor) (string, error) {
	if f == nil {
		return "", types.ErrInvalidData
	}
	if f.Name == "" {
		return "", types.ErrInvalidName
	}

	id, err := s.insertFlavor(ctx, f)
	if errors.Is(err, types.ErrDuplicateName) {
		s.logger.Info("flavor already exists", zap.String("name", f.Name))
		return fmt.Sprintf("Flavor '%s' already exists!", f.Name), nil
	}
	if err != nil {
		return "", err
	}

	f.ID = id
	s.logger.Debug("flavor added", zap.Int64("id", id), zap.String("name", f.Name))
	return fmt.Sprintf("Flavor '%s' added successfully!", f.Name), nil
}

// insertFlavor writes one flavor row. A UNIQUE violation on the name is
// returned as types.ErrDuplicateName.
func (s *Store) insertFlavor(ctx context.Context, f *types.Flavor) (int64, error) {
	var id int64
	err := s.withConnection(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO flavors (name, description, is_seasonal) VALUES (?, ?, ?)",
			f.Name, f.Description, boolToInt(f.Seasonal),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("flavor %q: %w", f.Name, types.ErrDuplicateName)
			}
			return fmt.Errorf("inserting flavor: %w", err)
		}
		id, err = res.LastInsertId()
		return err
	})
	return id, err
}

// AddIngredient inserts in and sets in.ID.
func (s *Store) AddIngredient(ctx context.Context, in *types.Ingredient) (string, error) {
	if in == nil {
		return "", types.ErrInvalidData
	}

	err := s.withConnection(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO ingredients (name, quantity, unit) VALUES (?, ?, ?)",
			in.Name, in.Quantity, in.Unit,
		)
		if err != nil {
			return fmt.Errorf("inserting ingredient: %w", err)
		}
		in.ID, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Ingredient '%s' added successfully!", in.Name), nil
}

// AddAllergen inserts a and sets a.ID.
func (s *Store) AddAllergen(ctx context.Context, a *types.Allergen) (string, error) {
	if a == nil {
		return "", types.ErrInvalidData
	}

	err := s.withConnection(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "INSERT INTO allergens (name) VALUES (?)", a.Name)
		if err != nil {
			return fmt.Errorf("inserting allergen: %w", err)
		}
		a.ID, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Allergen '%s' added successfully!", a.Name), nil
}

// SearchFlavors returns flavors whose name matches %keyword% under SQLite's
// LIKE rules (ASCII case-insensitive). LIKE wildcards in keyword are not
// escaped.
func (s *Store) SearchFlavors(ctx context.Context, keyword string) ([]types.Flavor, error) {
	flavors := []types.Flavor{}
	err := s.withConnection(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx,
			`SELECT id, name, COALESCE(description, ''), COALESCE(is_seasonal, 0)
			FROM flavors WHERE name LIKE ? ORDER BY id`,
			"%"+keyword+"%",
		)
		if err != nil {
			return fmt.Errorf("searching flavors: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var (
				f        types.Flavor
				seasonal int
			)
			if err := rows.Scan(&f.ID, &f.Name, &f.Description, &seasonal); err != nil {
				return fmt.Errorf("scanning flavor: %w", err)
			}
			f.Seasonal = seasonal == 1
			flavors = append(flavors, f)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return flavors, nil
}

// ListIngredients returns every ingredient in id order.
func (s *Store) ListIngredients(ctx context.Context) ([]types.Ingredient, error) {
	ingredients := []types.Ingredient{}
	err := s.withConnection(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx,
			"SELECT id, name, COALESCE(quantity, 0), COALESCE(unit, '') FROM ingredients ORDER BY id")
		if err != nil {
			return fmt.Errorf("listing ingredients: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var in types.Ingredient
			if err := rows.Scan(&in.ID, &in.Name, &in.Quantity, &in.Unit); err != nil {
				return fmt.Errorf("scanning ingredient: %w", err)
			}
			ingredients = append(ingredients, in)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return ingredients, nil
}

// ListAllergens returns every allergen in id order.
func (s *Store) ListAllergens(ctx context.Context) ([]types.Allergen, error) {
	allergens := []types.Allergen{}
	err := s.withConnection(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, "SELECT id, name FROM allergens ORDER BY id")
		if err != nil {
			return fmt.Errorf("listing allergens: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var a types.Allergen
			if err := rows.Scan(&a.ID, &a.Name); err != nil {
				return fmt.Errorf("scanning allergen: %w", err)
			}
			allergens = append(allergens, a)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return allergens, nil
}
