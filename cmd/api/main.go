package main

import (
	"database/sql"
	"log"
	"net/http"

	"animal-health-service/internal/adapters/auth/jwtauth"
	pg "animal-health-service/internal/adapters/storage/postgres"
	"animal-health-service/internal/config"
	"animal-health-service/internal/platform/logger"
	"animal-health-service/internal/router"

	"go.uber.org/zap"
)

// @title Animal Health Service
// @version 1.0
// @description API de registros de salud animal con control de acceso por dueño.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zl, err := logger.NewFromStrings(cfg.LogLevel, cfg.LogFormat, cfg.AppName)
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	verifier, err := jwtauth.NewVerifier(cfg.JWTSecret)
	if err != nil {
		zl.Fatal("jwt verifier", zap.Error(err))
	}

	var db *sql.DB
	if cfg.DatabaseDSN != "" {
		db, err = pg.Open(cfg.DatabaseDSN)
		if err != nil {
			zl.Fatal("postgres open", zap.Error(err))
		}
		defer func() { _ = db.Close() }()
		zl.Info("storage: postgres")
	} else {
		zl.Info("storage: in-memory (DB_DSN no configurado)")
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		DB:           db,
		Logger:       zl,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	zl.Info("starting server", zap.String("addr", cfg.Addr()), zap.String("env", cfg.AppEnv))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zl.Fatal("server error", zap.Error(err))
	}
}
