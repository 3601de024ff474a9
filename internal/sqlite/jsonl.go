package sqlite

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mesh-intelligence/parlor/pkg/types"
)

// ExportResult counts the records written per file by Export.
type ExportResult struct {
	Flavors     int `json:"flavors"`
	Ingredients int `json:"ingredients"`
	Allergens   int `json:"allergens"`
	CartLines   int `json:"cart_lines"`
}

// Export writes every table to <table>.jsonl in dir. Cart lines are written
// as stored, including lines whose flavor does not exist. Tables are dumped
// concurrently, each on its own connection.
func (s *Store) Export(ctx context.Context, dir string) (ExportResult, error) {
	var res ExportResult
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return res, fmt.Errorf("creating export dir: %w", err)
	}
	file := func(table string) string {
		return filepath.Join(dir, table+".jsonl")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		flavors, err := s.SearchFlavors(gctx, "")
		if err != nil {
			return err
		}
		res.Flavors, err = exportJSONL(file(types.FlavorsTable), flavors)
		return err
	})
	g.Go(func() error {
		ingredients, err := s.ListIngredients(gctx)
		if err != nil {
			return err
		}
		res.Ingredients, err = exportJSONL(file(types.IngredientsTable), ingredients)
		return err
	})
	g.Go(func() error {
		allergens, err := s.ListAllergens(gctx)
		if err != nil {
			return err
		}
		res.Allergens, err = exportJSONL(file(types.AllergensTable), allergens)
		return err
	})
	g.Go(func() error {
		lines, err := s.cartLines(gctx)
		if err != nil {
			return err
		}
		res.CartLines, err = exportJSONL(file(types.CartTable), lines)
		return err
	})
	if err := g.Wait(); err != nil {
		return ExportResult{}, err
	}

	s.logger.Info("exported catalog", zap.String("dir", dir), zap.Int("flavors", res.Flavors),
		zap.Int("cart_lines", res.CartLines))
	return res, nil
}

// cartLines returns the raw cart table in id order.
func (s *Store) cartLines(ctx context.Context) ([]types.CartLine, error) {
	lines := []types.CartLine{}
	err := s.withConnection(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, "SELECT id, COALESCE(flavor_id, 0) FROM cart ORDER BY id")
		if err != nil {
			return fmt.Errorf("listing cart lines: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var l types.CartLine
			if err := rows.Scan(&l.ID, &l.FlavorID); err != nil {
				return fmt.Errorf("scanning cart line: %w", err)
			}
			lines = append(lines, l)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// exportJSONL marshals each record to one line and writes path atomically.
func exportJSONL[T any](path string, records []T) (int, error) {
	raw := make([]json.RawMessage, 0, len(records))
	for _, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			return 0, fmt.Errorf("marshaling record for %s: %w", filepath.Base(path), err)
		}
		raw = append(raw, data)
	}
	if err := writeJSONL(path, raw); err != nil {
		return 0, err
	}
	return len(raw), nil
}

// writeJSONL atomically writes records to a JSONL file using the temp-file,
// fsync, rename pattern.
func writeJSONL(path string, records []json.RawMessage) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing record: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
