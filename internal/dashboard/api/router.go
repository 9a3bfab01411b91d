package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	docs "github.com/samandr77/restaurant-erp/docs/dashboard"
	"github.com/samandr77/restaurant-erp/pkg/httpapi"
)

func NewRouter(h *Handler, mw *httpapi.Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(middleware.StripSlashes, mw.Log, mw.Recover, mw.Cors)

	mux.Get("/health", httpapi.Health)
	mux.Get("/swagger/*", httpSwagger.Handler(httpSwagger.InstanceName(docs.SwaggerInfodashboard.InstanceName())))

	mux.Route("/dashboard", func(r chi.Router) {
		r.Get("/statistics", h.Statistics)
	})

	return mux
}
