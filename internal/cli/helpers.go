package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/parlor/internal/sqlite"
	"github.com/mesh-intelligence/parlor/pkg/types"
)

// openStore builds the store from configuration and applies the schema.
// Config problems are user errors; anything the store reports is a system
// error.
func (a *app) openStore(ctx context.Context) (*sqlite.Store, error) {
	cfg, err := a.storeConfig()
	if err != nil {
		return nil, sysError(err)
	}

	store, err := sqlite.NewStore(cfg, sqlite.WithLogger(a.logger))
	if err != nil {
		if errors.Is(err, types.ErrBackendEmpty) || errors.Is(err, types.ErrBackendUnknown) || errors.Is(err, types.ErrDBFileInvalid) {
			return nil, userError(fmt.Errorf("invalid config: %w", err))
		}
		return nil, sysError(err)
	}
	if err := store.InitializeSchema(ctx); err != nil {
		return nil, sysError(fmt.Errorf("initialize schema: %w", err))
	}
	return store, nil
}

// statusResult is the JSON form of a status message.
type statusResult struct {
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

// printStatus writes a status message as text or, in JSON mode, as a
// statusResult.
func (a *app) printStatus(cmd *cobra.Command, msg string, id int64) error {
	if a.flags.jsonMode {
		return a.printJSON(cmd, statusResult{Message: msg, ID: id})
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}

func (a *app) printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysError(fmt.Errorf("marshal output: %w", err))
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// parseFlavorID parses a positional flavor id argument.
func parseFlavorID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, userError(fmt.Errorf("invalid flavor id %q: must be an integer", arg))
	}
	return id, nil
}
