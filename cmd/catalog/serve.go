package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/bgrbarbosa/product-catalog/internal/api"
	"github.com/bgrbarbosa/product-catalog/internal/core/ports"
	"github.com/bgrbarbosa/product-catalog/internal/core/service"
	"github.com/bgrbarbosa/product-catalog/internal/infrastructure/auth"
	mongostore "github.com/bgrbarbosa/product-catalog/internal/infrastructure/db/mongo"
	redisstore "github.com/bgrbarbosa/product-catalog/internal/infrastructure/db/redis"
	"github.com/bgrbarbosa/product-catalog/internal/infrastructure/db/relational"
	httpserver "github.com/bgrbarbosa/product-catalog/internal/infrastructure/http"
	"github.com/bgrbarbosa/product-catalog/internal/infrastructure/http/handlers"
	"github.com/bgrbarbosa/product-catalog/internal/infrastructure/mail"
	"github.com/bgrbarbosa/product-catalog/internal/infrastructure/report"
	"github.com/bgrbarbosa/product-catalog/pkg/logger"
)

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(parent context.Context) error {
	if err := a.cfg.ValidateServer(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := a.openDB(ctx, a.cfg.DB.AutoMigrate)
	if err != nil {
		return err
	}
	defer relational.Close(db)

	// --- Optional stores ---
	var (
		mongoDB *mongodriver.Database
		audit   ports.DispatchLog
	)
	if a.cfg.Mongo.URI != "" {
		client, mdb, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      a.cfg.Mongo.URI,
			Database: a.cfg.Mongo.Database,
			AppName:  serviceName,
		})
		if err != nil {
			return err
		}
		defer client.Disconnect(context.Background())

		dispatches := mongostore.NewDispatchLog(mdb)
		if err := dispatches.EnsureIndexes(ctx); err != nil {
			a.log.Warn().Err(err).Msg("failed to ensure email dispatch indexes")
		}
		mongoDB, audit = mdb, dispatches
	} else {
		a.log.Info().Msg("MONGO_URI not set, email audit disabled")
	}

	var (
		rdb   *goredis.Client
		guard ports.LoginGuard
	)
	if a.cfg.Redis.Addr != "" {
		rdb, err = redisstore.Connect(ctx, redisstore.Config{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()
		guard = redisstore.NewLoginGuard(rdb, a.cfg.Login.MaxAttempts, a.cfg.Login.Window)
	} else {
		a.log.Info().Msg("REDIS_ADDR not set, login throttling disabled")
	}

	// --- Repositories ---
	categoryRepo := relational.NewCategoryRepository(db)
	productRepo := relational.NewProductRepository(db)
	userRepo := relational.NewUserRepository(db)
	roleRepo := relational.NewRoleRepository(db)

	// --- Services ---
	tokens := auth.NewJWT(a.cfg.Auth.JWTSecret, a.cfg.Auth.JWTTTL)
	exporter := report.NewExporter()
	mailer := mail.NewSMTPMailer(mail.Config{
		Host:     a.cfg.SMTP.Host,
		Port:     a.cfg.SMTP.Port,
		Username: a.cfg.SMTP.Username,
		Password: a.cfg.SMTP.Password,
		From:     a.cfg.SMTP.From,
	})

	e := api.NewRouter(api.Deps{
		Categories: service.NewCategoryService(categoryRepo, logger.Component("category")),
		Products:   service.NewProductService(productRepo, categoryRepo, logger.Component("product")),
		Users: service.NewUserService(userRepo, roleRepo, auth.NewBcryptHasher(a.cfg.Auth.BcryptCost),
			tokens, guard, logger.Component("user")),
		Reports: service.NewReportService(categoryRepo, productRepo, exporter, logger.Component("report")),
		Email:   service.NewEmailService(productRepo, exporter, mailer, audit, logger.Component("email")),
		Tokens:  tokens,
		Readiness: []handlers.Dependency{
			{Name: "database", Ping: func(ctx context.Context) error { return relational.Ping(ctx, db) }},
			{Name: "mongodb", Ping: handlers.MongoPinger(mongoDB)},
			{Name: "redis", Ping: handlers.RedisPinger(rdb)},
		},
		Logger: logger.Component("http"),
	})

	return httpserver.NewServer(e, ":"+a.cfg.Port, a.cfg.ShutdownTimeout, a.log).Run(ctx)
}
