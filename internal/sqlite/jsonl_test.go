package sqlite

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/parlor/pkg/types"
)

// readJSONLFile decodes every line of path into a T.
func readJSONLFile[T any](t *testing.T, path string) []T {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	out := []T{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec T
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		out = append(out, rec)
	}
	require.NoError(t, scanner.Err())
	return out
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Seed(ctx)
	require.NoError(t, err)
	_, err = s.AddToCart(ctx, 2)
	require.NoError(t, err)
	_, err = s.AddToCart(ctx, 404)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "export")
	res, err := s.Export(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, ExportResult{Flavors: 5, Ingredients: 5, Allergens: 4, CartLines: 2}, res)

	flavors := readJSONLFile[types.Flavor](t, filepath.Join(dir, "flavors.jsonl"))
	stored, err := s.SearchFlavors(ctx, "")
	require.NoError(t, err)
	if diff := cmp.Diff(stored, flavors); diff != "" {
		t.Errorf("flavors.jsonl mismatch (-store +file):\n%s", diff)
	}

	lines := readJSONLFile[types.CartLine](t, filepath.Join(dir, "cart.jsonl"))
	want := []types.CartLine{{ID: 1, FlavorID: 2}, {ID: 2, FlavorID: 404}}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("cart.jsonl mismatch (-want +got):\n%s", diff)
	}

	allergens := readJSONLFile[types.Allergen](t, filepath.Join(dir, "allergens.jsonl"))
	assert.Len(t, allergens, 4)
}

func TestExport_EmptyStore(t *testing.T) {
	s := newTestStore(t)
	dir := t.TempDir()

	res, err := s.Export(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, ExportResult{}, res)

	for _, table := range types.StandardTableNames {
		info, err := os.Stat(filepath.Join(dir, table+".jsonl"))
		require.NoError(t, err)
		assert.Zero(t, info.Size())
	}
}

func TestWriteJSONL(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T, dir string)
	}{
		{
			name: "replaces existing content",
			check: func(t *testing.T, dir string) {
				path := filepath.Join(dir, "flavors.jsonl")
				require.NoError(t, os.WriteFile(path, []byte("{\"stale\":true}\n{\"stale\":true}\n"), 0o644))

				require.NoError(t, writeJSONL(path, []json.RawMessage{json.RawMessage(`{"id":1}`)}))

				data, err := os.ReadFile(path)
				require.NoError(t, err)
				assert.Equal(t, "{\"id\":1}\n", string(data))
			},
		},
		{
			name: "leaves no temp files behind",
			check: func(t *testing.T, dir string) {
				require.NoError(t, writeJSONL(filepath.Join(dir, "a.jsonl"), nil))

				matches, err := filepath.Glob(filepath.Join(dir, ".jsonl-*.tmp"))
				require.NoError(t, err)
				assert.Empty(t, matches)
			},
		},
		{
			name: "fails when the directory is missing",
			check: func(t *testing.T, dir string) {
				err := writeJSONL(filepath.Join(dir, "missing", "a.jsonl"), nil)
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, t.TempDir())
		})
	}
}
