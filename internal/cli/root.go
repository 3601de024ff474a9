// Package cli implements the parlor command-line interface. Running parlor
// without a subcommand starts the interactive menu; the subcommands run a
// single catalog or cart operation for scripting.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/parlor/internal/logging"
	"github.com/mesh-intelligence/parlor/internal/menu"
	"github.com/mesh-intelligence/parlor/pkg/parlor"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
}

// app carries the state shared by one command tree.
type app struct {
	flags     rootFlags
	configDir string
	config    *viper.Viper
	logger    *zap.Logger
}

// NewRootCmd creates the top-level "parlor" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "parlor",
		Short: "Manage an ice-cream parlor's catalog and cart",
		Long: `Parlor keeps flavors, ingredients, allergens and a shopping cart in a
local SQLite file. Run it without arguments for the interactive menu.`,
		Version:           parlor.Version,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: a.runMenu,
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $(CWD)/.parlor)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: $(CWD))")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(a.newVersionCmd())
	root.AddCommand(a.newInitCmd())
	root.AddCommand(a.newSeedCmd())
	root.AddCommand(a.newFlavorCmd())
	root.AddCommand(a.newIngredientCmd())
	root.AddCommand(a.newAllergenCmd())
	root.AddCommand(a.newCartCmd())
	root.AddCommand(a.newExportCmd())

	return root
}

// Execute runs the root command and exits with the matching code.
func Execute() {
	os.Exit(run(NewRootCmd()))
}

// run executes root and maps its error to an exit code.
func run(root *cobra.Command) int {
	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(root.ErrOrStderr(), "parlor:", err)

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// setup loads configuration and builds the logger. The version command
// needs neither.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := resolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return sysError(err)
	}
	a.configDir = configDir
	a.config = cfg

	logger, err := logging.New(cfg.GetString(cfgKeyLogLevel), cfg.GetString(cfgKeyLogFile))
	if err != nil {
		return userError(fmt.Errorf("configure logging: %w", err))
	}
	a.logger = logger
	return nil
}

// runMenu starts the interactive menu on the command's input and output.
func (a *app) runMenu(cmd *cobra.Command, args []string) error {
	store, err := a.openStore(cmd.Context())
	if err != nil {
		return err
	}

	m := menu.New(store, cmd.InOrStdin(), cmd.OutOrStdout(), a.logger)
	if err := m.Run(cmd.Context()); err != nil {
		return sysError(err)
	}
	return nil
}

// exitError carries the process exit code for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// userError marks err as caused by bad input.
func userError(err error) error {
	return &exitError{code: exitUserError, err: err}
}

// sysError marks err as a storage or environment failure.
func sysError(err error) error {
	return &exitError{code: exitSysError, err: err}
}
