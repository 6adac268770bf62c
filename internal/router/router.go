package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "animal-health-service/internal/adapters/storage/memory"
	pg "animal-health-service/internal/adapters/storage/postgres"
	"animal-health-service/internal/domain/health"
	"animal-health-service/internal/middleware"
	"animal-health-service/internal/ports/auth"

	_ "animal-health-service/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: si viene, se loguea cada request.
	Logger *zap.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if opts.Logger != nil {
		r.Use(middleware.RequestLogger(opts.Logger))
	}

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	// Liveness en /healthz: /health es el recurso de dominio.
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var recordRepo health.Repository

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		recordRepo = pg.NewHealthRepo(db)
	} else {
		recordRepo = mem.NewHealthRepo()
	}

	healthSvc := health.NewService(recordRepo)
	health.RegisterRoutes(r, healthSvc)

	return r
}
