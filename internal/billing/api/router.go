package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	docs "github.com/samandr77/restaurant-erp/docs/billing"
	"github.com/samandr77/restaurant-erp/pkg/httpapi"
)

func NewRouter(h *Handler, mw *httpapi.Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(middleware.StripSlashes, mw.Log, mw.Recover, mw.Cors)

	mux.Get("/health", httpapi.Health)
	mux.Get("/swagger/*", httpSwagger.Handler(httpSwagger.InstanceName(docs.SwaggerInfobilling.InstanceName())))

	mux.Route("/bills", func(r chi.Router) {
		r.Get("/", h.Bills)
		r.Post("/", h.CreateBill)
		r.Get("/statistics", h.Statistics)
		r.Get("/{id}", h.Bill)
		r.Put("/{id}", h.UpdateBill)
		r.Delete("/{id}", h.DeleteBill)
	})

	return mux
}
