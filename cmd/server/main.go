package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/partstock/modules/auth"
	"github.com/dmitrymomot/partstock/modules/categories"
	"github.com/dmitrymomot/partstock/modules/manufacturers"
	"github.com/dmitrymomot/partstock/modules/partpackages"
	"github.com/dmitrymomot/partstock/modules/parts"
	"github.com/dmitrymomot/partstock/modules/users"
	"github.com/dmitrymomot/partstock/pkg/config"
	"github.com/dmitrymomot/partstock/pkg/httpserver"
	"github.com/dmitrymomot/partstock/pkg/jwt"
	"github.com/dmitrymomot/partstock/pkg/logger"
	"github.com/dmitrymomot/partstock/pkg/mongo"
	"github.com/dmitrymomot/partstock/pkg/response"
	"github.com/dmitrymomot/partstock/pkg/tokenstore"
)

type appConfig struct {
	Log   logger.Config
	Mongo mongo.Config
	HTTP  httpserver.Config
	Auth  auth.Config
}

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.NewFromConfig(cfg.Log, logger.WithAttr(slog.String("app", "partstock")))

	db, err := mongo.NewWithDatabase(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() { _ = db.Client().Disconnect(context.Background()) }()

	codec, err := jwt.NewFromString(cfg.Auth.SigningSecret)
	if err != nil {
		return err
	}

	userStorage := users.NewStorage(db)
	index := tokenstore.New()
	authSvc := auth.NewService(userStorage, index, codec, log)

	// The gate must not serve a single request before the index reflects the
	// durable ledger.
	if err := authSvc.Reseed(ctx); err != nil {
		return err
	}

	gate := authSvc.Middleware(cfg.Auth.TokenHeader)

	authHandler := auth.NewHandler(authSvc, cfg.Auth.TokenHeader)
	usersHandler := users.NewHandler(userStorage, authSvc)
	partsHandler := parts.NewHandler(parts.NewStorage(db))
	categoriesHandler := categories.NewHandler(categories.NewStorage(db))
	manufacturersHandler := manufacturers.NewHandler(manufacturers.NewStorage(db))
	packagesHandler := partpackages.NewHandler(partpackages.NewStorage(db))

	healthcheck := mongo.Healthcheck(db.Client())

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := healthcheck(r.Context()); err != nil {
			response.Error(w, err)
			return
		}
		response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Mount("/auth", authHandler.Routes())
		r.Mount("/users", usersHandler.Routes(gate, auth.CanModifyUsers, auth.CanDeleteUsers))
		r.Mount("/parts", partsHandler.Routes(gate, auth.CanModifyParts, auth.CanDeleteParts))
		r.Mount("/categories", categoriesHandler.Routes(gate, auth.CanModifyParts, auth.CanDeleteParts))
		r.Mount("/manufacturers", manufacturersHandler.Routes(gate, auth.CanModifyParts, auth.CanDeleteParts))
		r.Mount("/packages", packagesHandler.Routes(gate, auth.CanModifyParts, auth.CanDeleteParts))
	})

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, r)
}
