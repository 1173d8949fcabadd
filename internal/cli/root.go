// Package cli wires configuration, storage and the inventory service into
// the supermarket command tree.
package cli

import (
	"fmt"

	"github.com/rogerio-castellano/supermarket-pro/internal/config"
	"github.com/rogerio-castellano/supermarket-pro/internal/inventory"
	"github.com/rogerio-castellano/supermarket-pro/internal/logger"
	"github.com/rogerio-castellano/supermarket-pro/internal/repo"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app is the state shared by every subcommand once the root pre-run has
// loaded configuration.
type app struct {
	fs  afero.Fs
	v   *viper.Viper
	cfg *config.Config
	log zerolog.Logger

	products *repo.JSONProductRepository
	sales    *repo.JSONSaleRepository
	svc      *inventory.Service
}

// NewRootCommand builds the command tree on fs. Production passes the OS
// filesystem; tests pass an in-memory one.
func NewRootCommand(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs, v: config.New()}

	rootCmd := &cobra.Command{
		Use:           "supermarket",
		Short:         "Supermarket stock and sales ledger",
		Long:          "Manage a product catalogue, stock levels and an append-only sales ledger stored as JSON files.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default ./config.yaml or ./config/config.yaml)")
	flags.String("data-dir", "", "Directory holding products.json and sales.json")
	flags.String("log-level", "", "Log level (trace, debug, info, warn, error, off)")
	flags.Bool("strict-load", false, "Refuse to read or overwrite unreadable data files")

	_ = a.v.BindPFlag("data.dir", flags.Lookup("data-dir"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("data.strict_load", flags.Lookup("strict-load"))

	rootCmd.AddCommand(newServeCommand(a))
	rootCmd.AddCommand(newInitCommand(a))
	rootCmd.AddCommand(newProductCommand(a))
	rootCmd.AddCommand(newStockCommand(a))
	rootCmd.AddCommand(newSaleCommand(a))
	rootCmd.AddCommand(newSummaryCommand(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if file, _ := cmd.Flags().GetString("config"); file != "" {
		a.v.SetConfigFile(file)
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	// Command output goes to stdout; logs go to stderr so they never mix
	// with tables.
	a.log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}, cmd.ErrOrStderr())

	storeOpts := []repo.Option{
		repo.WithStrictLoad(cfg.Data.StrictLoad),
		repo.WithLogger(a.log),
	}
	a.products = repo.NewJSONProductRepository(a.fs, cfg.Data.ProductsPath(), storeOpts...)
	a.sales = repo.NewJSONSaleRepository(a.fs, cfg.Data.SalesPath(), storeOpts...)
	a.svc = inventory.NewService(a.products, a.sales,
		inventory.WithLogger(a.log),
		inventory.WithStrictLoad(cfg.Data.StrictLoad),
	)
	return nil
}

// ensureFiles creates both data files when they are absent.
func (a *app) ensureFiles() error {
	for _, path := range []string{a.products.Path(), a.sales.Path()} {
		if err := repo.EnsureFile(a.fs, path); err != nil {
			return fmt.Errorf("failed to initialise %s: %w", path, err)
		}
	}
	return nil
}
