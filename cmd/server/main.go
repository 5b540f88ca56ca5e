package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/cosmir/openmic-backend/internal/api/http"
	"github.com/cosmir/openmic-backend/internal/config"
	"github.com/cosmir/openmic-backend/internal/database"
	"github.com/cosmir/openmic-backend/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Open(ctx, database.Config{
		Driver:         database.Driver(cfg.DBDriver),
		DSN:            cfg.DBDSN,
		ValkeyAddr:     cfg.ValkeyAddr,
		ValkeyPassword: cfg.ValkeyPassword,
	})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	defer db.Close()

	bs, err := storage.New(ctx, storage.Config{
		Bucket:      cfg.StorageBucket,
		ProjectID:   cfg.ProjectID,
		Backend:     storage.Backend(cfg.StorageBackend),
		LocalDir:    cfg.LocalDir,
		S3Endpoint:  cfg.S3Endpoint,
		S3Region:    cfg.S3Region,
		S3AccessKey: cfg.S3AccessKey,
		S3SecretKey: cfg.S3SecretKey,
	})
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"Content-Length", "Link"},
		MaxAge:         300,
	}))

	api.Mount(r, bs, db, api.NewTaxonomyFetcher(cfg.TaxonomyURL))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (storage=%s, db=%s)", cfg.HTTPAddr, cfg.StorageBackend, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
