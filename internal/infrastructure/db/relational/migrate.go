package relational

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bgrbarbosa/product-catalog/internal/core/domain"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrator applies the embedded postgres migrations.
type Migrator struct {
	m *migrate.Migrate
}

// NewMigrator opens a dedicated migration connection to the postgres database at dsn.
func NewMigrator(dsn string, logger zerolog.Logger) (*Migrator, error) {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("load migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, migrationURL(dsn))
	if err != nil {
		return nil, fmt.Errorf("migration init failed: %w", err)
	}
	m.Log = &migrateLogger{log: logger.With().Str("component", "migrate").Logger()}
	return &Migrator{m: m}, nil
}

// migrationURL rewrites a postgres URL to the scheme of the pgx/v5 migrate driver.
func migrationURL(dsn string) string {
	for _, scheme := range []string{"postgresql://", "postgres://"} {
		if strings.HasPrefix(dsn, scheme) {
			return "pgx5://" + strings.TrimPrefix(dsn, scheme)
		}
	}
	return dsn
}

func (m *Migrator) Up() error {
	if err := m.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("up failed: %w", err)
	}
	return nil
}

// Down rolls back steps migrations.
func (m *Migrator) Down(steps int) error {
	if steps < 1 {
		return fmt.Errorf("down: invalid steps %d", steps)
	}
	if err := m.m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("down failed: %w", err)
	}
	return nil
}

// Version reports the applied version. A database without migrations is at 0.
func (m *Migrator) Version() (uint, bool, error) {
	v, dirty, err := m.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

func (m *Migrator) Close() error {
	srcErr, dbErr := m.m.Close()
	return errors.Join(srcErr, dbErr)
}

type migrateLogger struct {
	log zerolog.Logger
}

func (l *migrateLogger) Printf(format string, v ...interface{}) {
	l.log.Info().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *migrateLogger) Verbose() bool { return false }

// Prepare brings the schema up to date. Postgres runs the embedded migrations;
// sqlite is created from the models and seeded with the default roles.
func Prepare(ctx context.Context, db *gorm.DB, opts Options, logger zerolog.Logger) error {
	if opts.Driver == DriverPostgres {
		m, err := NewMigrator(opts.DSN, logger)
		if err != nil {
			return err
		}
		defer m.Close()
		return m.Up()
	}

	if err := db.WithContext(ctx).AutoMigrate(&categoryModel{}, &productModel{}, &roleModel{}, &userModel{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return seedRoles(ctx, db)
}

func seedRoles(ctx context.Context, db *gorm.DB) error {
	roles := []roleModel{
		{ID: uuid.New(), Authority: domain.RoleAdmin},
		{ID: uuid.New(), Authority: domain.RoleUser},
	}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "authority"}}, DoNothing: true}).
		Create(&roles).Error
	if err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}
	return nil
}
