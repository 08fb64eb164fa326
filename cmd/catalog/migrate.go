package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bgrbarbosa/product-catalog/internal/infrastructure/db/relational"
	"github.com/bgrbarbosa/product-catalog/pkg/logger"
)

var errSQLiteMigrations = errors.New("sqlite schemas are created from the models; only 'migrate up' is supported")

func newMigrateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the relational schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if a.cfg.DB.Driver == relational.DriverSQLite {
					db, err := a.openDB(cmd.Context(), true)
					if err != nil {
						return err
					}
					return relational.Close(db)
				}
				return a.withMigrator(func(m *relational.Migrator) error {
					if err := m.Up(); err != nil {
						return err
					}
					a.log.Info().Msg("migrations applied")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "down [steps]",
			Short: "Roll back migrations (default 1)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				steps, err := parseSteps(args)
				if err != nil {
					return err
				}
				return a.withMigrator(func(m *relational.Migrator) error {
					if err := m.Down(steps); err != nil {
						return err
					}
					a.log.Info().Int("steps", steps).Msg("migrations rolled back")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the applied migration version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.withMigrator(func(m *relational.Migrator) error {
					v, dirty, err := m.Version()
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "version: %d dirty: %t\n", v, dirty)
					return nil
				})
			},
		},
	)
	return cmd
}

func (a *app) withMigrator(fn func(*relational.Migrator) error) error {
	if a.cfg.DB.Driver == relational.DriverSQLite {
		return errSQLiteMigrations
	}
	m, err := relational.NewMigrator(a.cfg.DB.URL, logger.Component("migrate"))
	if err != nil {
		return err
	}
	defer m.Close()
	return fn(m)
}

// parseSteps reads the optional step count of "migrate down".
func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("steps must be a positive integer, got %q", args[0])
	}
	return n, nil
}
