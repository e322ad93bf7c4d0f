package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"todoapi/config"
	_ "todoapi/docs" // registers the swagger document
	"todoapi/internal/handlers/general"
	"todoapi/internal/handlers/todo"
	"todoapi/transport/http/middleware"
)

type DomainHandlers struct {
	General general.Handler
	Todo    todo.Handler
}

type Router struct {
	Config         *config.Config
	Middleware     middleware.AppMiddleware
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		chiMiddleware.RequestID,
		chiMiddleware.RealIP,
		r.Middleware.RequestLogger,
		chiMiddleware.Recoverer,
	)

	if corsCfg := r.Config.App.CORS; corsCfg.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsCfg.AllowedOrigins,
			AllowedMethods:   corsCfg.AllowedMethods,
			AllowedHeaders:   corsCfg.AllowedHeaders,
			AllowCredentials: corsCfg.AllowCredentials,
			MaxAge:           corsCfg.MaxAgeSeconds,
		}))
	}

	router.Use(
		r.Middleware.Tracing,
		r.Middleware.RateLimit(),
	)

	router.Get("/docs", http.RedirectHandler("/docs/index.html", http.StatusMovedPermanently).ServeHTTP)
	router.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	r.DomainHandlers.General.Router(router)
	r.DomainHandlers.Todo.Router(router)
}

func New(cfg *config.Config, appMiddleware middleware.AppMiddleware, domainHandlers DomainHandlers) Router {
	return Router{
		Config:         cfg,
		Middleware:     appMiddleware,
		DomainHandlers: domainHandlers,
	}
}
