package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/parlor/pkg/types"
)

// AddToCart inserts one cart line for flavorID. The flavor is not looked up.
func (s *Store) AddToCart(ctx context.Context, flavorID int64) (string, error) {
	err := s.withConnection(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "INSERT INTO cart (flavor_id) VALUES (?)", flavorID); err != nil {
			return fmt.Errorf("inserting cart line: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	s.logger.Debug("cart line added", zap.Int64("flavor_id", flavorID))
	return fmt.Sprintf("Flavor ID '%d' added to cart!", flavorID), nil
}

// ViewCart joins cart lines to flavors. Lines whose flavor does not exist
// are dropped by the inner join.
func (s *Store) ViewCart(ctx context.Context) ([]types.CartItem, error) {
	items := []types.CartItem{}
	err := s.withConnection(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `SELECT flavors.id, flavors.name
			FROM cart
			INNER JOIN flavors ON cart.flavor_id = flavors.id
			ORDER BY cart.id`)
		if err != nil {
			return fmt.Errorf("querying cart: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var item types.CartItem
			if err := rows.Scan(&item.FlavorID, &item.FlavorName); err != nil {
				return fmt.Errorf("scanning cart item: %w", err)
			}
			items = append(items, item)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// RemoveFromCart deletes every cart line for flavorID and reports success
// whether or not any line matched.
func (s *Store) RemoveFromCart(ctx context.Context, flavorID int64) (string, error) {
	err := s.withConnection(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM cart WHERE flavor_id = ?", flavorID)
		if err != nil {
			return fmt.Errorf("deleting cart lines: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil {
			s.logger.Debug("cart lines removed", zap.Int64("flavor_id", flavorID), zap.Int64("rows", n))
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Flavor ID '%d' removed from cart!", flavorID), nil
}
