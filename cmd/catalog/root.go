package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/bgrbarbosa/product-catalog/internal/infrastructure/config"
	"github.com/bgrbarbosa/product-catalog/internal/infrastructure/db/relational"
	"github.com/bgrbarbosa/product-catalog/pkg/logger"
)

const serviceName = "product-catalog"

// app carries what every subcommand needs once the root command has run.
type app struct {
	cfg *config.Config
	log zerolog.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "catalog",
		Short:        "Product catalog API",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.Context())
		},
	}
	root.AddCommand(
		newServeCommand(a),
		newMigrateCommand(a),
		newUserCommand(a),
		newEmailCommand(a),
	)
	return root
}

func (a *app) init(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: serviceName,
	})
	return nil
}

func (a *app) dbOptions() relational.Options {
	return relational.Options{
		Driver:          a.cfg.DB.Driver,
		DSN:             a.cfg.DB.URL,
		MaxOpenConns:    a.cfg.DB.MaxConns,
		MaxIdleConns:    a.cfg.DB.MinConns,
		ConnMaxLifetime: a.cfg.DB.MaxConnLifetime,
	}
}

// openDB connects to the relational store and, when enabled, brings its schema up to date.
func (a *app) openDB(ctx context.Context, migrate bool) (*gorm.DB, error) {
	opts := a.dbOptions()
	db, err := relational.Open(ctx, opts, logger.Component("gorm"))
	if err != nil {
		return nil, err
	}
	if migrate {
		if err := relational.Prepare(ctx, db, opts, logger.Component("migrate")); err != nil {
			_ = relational.Close(db)
			return nil, err
		}
	}
	a.log.Info().Str("driver", opts.Driver).Msg("relational store ready")
	return db, nil
}
