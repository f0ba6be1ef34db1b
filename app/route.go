package app

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/avelinec/tallysheet/app/route/billing"
)

func (a *App) RegisterRoutes() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)

	billing.NewHandlerGroup(a.svcBilling, a.slog).Mount(a.router)

	a.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}
