package server

import (
	"context"
	"database/sql"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/faciam-dev/gcms/internal/api/handler"
	"github.com/faciam-dev/gcms/internal/auth"
	"github.com/faciam-dev/gcms/internal/config"
	"github.com/faciam-dev/gcms/internal/logger"
	"github.com/faciam-dev/gcms/internal/server/middleware"
	"github.com/faciam-dev/gcms/pkg/pagestore"
	"github.com/faciam-dev/gcms/pkg/schema"
)

// New assembles the HTTP API: CORS, metrics, tenant extraction, auth,
// RBAC, then the page and section-type handlers.
func New(db *sql.DB, store pagestore.Store, schemas *schema.Store, cfg config.Config) huma.API {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Table-ID"},
		AllowCredentials: true,
	}))

	secret := cfg.JWTSecret
	if secret == "" {
		secret = mustJWTSecret()
	}

	api := humachi.New(r, huma.DefaultConfig("CMS API", "1.0.0"))
	jwtHandler := auth.NewJWT(secret, 15*time.Minute)
	repo := &auth.UserRepo{DB: db, TablePrefix: cfg.TablePrefix}

	// Tenant extraction applies to every endpoint, including login.
	api.UseMiddleware(middleware.ExtractTable(api))

	// Login and refresh stay public; register them before auth middleware.
	auth.Register(api, &auth.Handler{Repo: repo, JWT: jwtHandler})

	api.UseMiddleware(auth.Middleware(api, jwtHandler))

	e, err := newEnforcer()
	if err != nil {
		logger.L.Error("casbin enforcer", "err", err)
	} else {
		resolver := func(ctx context.Context, user string) ([]string, error) {
			return rolesOf(ctx, repo, user)
		}
		api.UseMiddleware(middleware.RBAC(e, resolver))
	}

	setupMetrics(api, r, store)
	initEvents(db, cfg)

	handler.RegisterSectionTypes(api, &handler.SectionTypeHandler{Schemas: schemas})
	handler.RegisterPages(api, &handler.PageHandler{Store: store, Schemas: schemas})

	return api
}
