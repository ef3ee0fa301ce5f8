package handlers

import (
	"context"
	"net/http"

	"ShoppingList/internal/apperr"
	"ShoppingList/internal/middleware"
	"ShoppingList/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Pinger: проверка доступности БД для /api/ready.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	storeService *service.StoreService,
	itemService *service.ItemService,
	db Pinger,
	logger *zap.SugaredLogger,
) *Handler {
	r := chi.NewRouter()

	middleware.SetLogger(logger)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.WithLogging)
	r.Use(middleware.CORS())
	r.Use(middleware.WithGzip)

	// Handlers
	healthHandler := NewHealthHandler(db, logger)
	storeHandler := NewStoreHandler(storeService, logger)
	itemHandler := NewItemHandler(itemService, logger)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, apperr.Body{Detail: "Not Found", Code: apperr.CodeNotFound})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"detail": "Method Not Allowed"})
	})

	r.Get("/health", healthHandler.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", healthHandler.Root)
		r.Get("/health", healthHandler.Health)
		r.Get("/ready", healthHandler.Ready)

		// Store routes
		r.Get("/stores", storeHandler.List)
		r.Post("/stores", storeHandler.Create)
		r.Patch("/stores/{id}", storeHandler.Update)
		r.Delete("/stores/{id}", storeHandler.Delete)

		// Item routes
		r.Get("/items", itemHandler.List)
		r.Post("/items", itemHandler.Create)
		r.Patch("/items/{id}", itemHandler.Update)
		r.Delete("/items/{id}", itemHandler.Delete)
	})

	return &Handler{Router: r}
}
