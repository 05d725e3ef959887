package handlers

import (
	"ItemKeeper/internal/middleware"
	"ItemKeeper/internal/service"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// PingFunc проверяет доступность хранилища для /healthz.
type PingFunc func(ctx context.Context) error

// NotFoundResponse — ответ для любых неизвестных метода и пути.
type NotFoundResponse struct {
	URL string `json:"url"`
}

// NewHandler разводящий для хендлеров
func NewHandler(
	itemService *service.ItemService,
	ping PingFunc,
	logger *zap.SugaredLogger,
) *Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.WithLogging(logger))
	r.Use(middleware.WithCORS())
	r.Use(middleware.WithGzip)
	// HEAD обслуживается GET-хендлером того же пути
	r.Use(chimw.GetHead)

	// неизвестный путь и известный путь с чужим методом отвечают одинаково
	notFound := notFoundHandler(logger)
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	itemHandler := NewItemHandler(itemService, logger)

	// Item routes
	r.Route("/api/items", func(r chi.Router) {
		r.Get("/", itemHandler.List)
		r.Post("/", itemHandler.Create)
		r.Get("/{itemId}", itemHandler.Get)
		r.Put("/{itemId}", itemHandler.Update)
		r.Delete("/{itemId}", itemHandler.Delete)
	})

	r.Get("/healthz", healthHandler(ping, logger))

	return &Handler{Router: r}
}

func notFoundHandler(logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, logger, http.StatusNotFound, NotFoundResponse{URL: r.URL.RequestURI() + " not found"})
	}
}

func healthHandler(ping PingFunc, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ping != nil {
			if err := ping(r.Context()); err != nil {
				logger.Warnw("Health check: store unavailable", "error", err)
				respondJSON(w, logger, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		respondJSON(w, logger, http.StatusOK, map[string]string{"status": "ok"})
	}
}
