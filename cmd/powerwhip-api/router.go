// Package main provides the API router setup.
package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/enconnex/powerwhip-engine/cmd/powerwhip-api/handlers"
	"github.com/enconnex/powerwhip-engine/cmd/powerwhip-api/middleware"
	"github.com/enconnex/powerwhip-engine/internal/cache"
	"github.com/enconnex/powerwhip-engine/internal/catalog"
	"github.com/enconnex/powerwhip-engine/internal/config"
	"github.com/enconnex/powerwhip-engine/internal/observability"
	"github.com/enconnex/powerwhip-engine/internal/storage"
	"github.com/enconnex/powerwhip-engine/pkg/engine"
)

// NewRouter creates the main API router with all routes configured. The
// returned cleanup closes the cache and database handles.
func NewRouter(logger *observability.Logger, cfg *config.Config) (http.Handler, func(), error) {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))
	r.Use(chimiddleware.Timeout(cfg.Server.ReadTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"powerwhip-engine"}`))
	})

	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ready"}`))
	})

	// Cache for uploaded lookup tables
	var cacheClient cache.Client
	if cfg.Cache.Driver == "redis" {
		rc, err := cache.NewRedisClient(cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			PoolSize: cfg.Cache.Redis.PoolSize,
		})
		if err != nil {
			return nil, nil, err
		}
		cacheClient = rc
	} else {
		cacheClient = cache.NewMemoryClient(cfg.Cache.MaxEntries)
	}
	tableStore := cache.NewTableStore(cacheClient, cfg.Cache.TTL)

	// Batch history repository
	var history *storage.BatchRepository
	cleanup := func() { cacheClient.Close() }
	if cfg.Pipeline.PersistBatchHistory {
		db, err := storage.Open(cfg.Database.Driver, cfg.DatabaseDSN())
		if err != nil {
			logger.Warn().Err(err).Msg("Batch history disabled: database unavailable")
		} else {
			history = storage.NewBatchRepository(db)
			cleanup = func() {
				cacheClient.Close()
				db.Close()
			}
		}
	}

	orderEngine := engine.NewOrderEngine(logger, history, engine.Config{
		MaxQuantity:     cfg.Pipeline.MaxQuantity,
		ReviewThreshold: cfg.Pipeline.ReviewThreshold,
		PersistHistory:  cfg.Pipeline.PersistBatchHistory,
	})
	catalogResolver := engine.NewCatalogResolver(catalog.Default(), cfg.Pipeline.DefaultTailLength)

	patternsHandler := handlers.NewPatternsHandler(logger, orderEngine, catalogResolver)
	lookupHandler := handlers.NewLookupHandler(logger, orderEngine, tableStore, cfg.Server.MaxUploadBytes)
	exportHandler := handlers.NewExportHandler(logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/patterns", func(r chi.Router) {
			r.Post("/parse", patternsHandler.Parse)
		})

		r.Route("/lookup", func(r chi.Router) {
			r.Post("/tables", lookupHandler.UploadTable)
			r.Post("/match", lookupHandler.Match)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/export", exportHandler.Export)
		})

		if history != nil {
			batchesHandler := handlers.NewBatchesHandler(logger, history)
			r.Route("/batches", func(r chi.Router) {
				r.Get("/", batchesHandler.List)
				r.Get("/{batchID}", batchesHandler.Get)
			})
		}
	})

	return r, cleanup, nil
}
