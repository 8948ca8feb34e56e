package server

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/lezzet-duragi/menud/pkg/api"
	"github.com/lezzet-duragi/menud/pkg/menu"
	"github.com/lezzet-duragi/menud/pkg/storage"
)

// Server wires the file store, repository and HTTP handlers together.
type Server struct {
	router  *mux.Router
	store   *storage.FileStore
	repo    *menu.Repository
	handler *api.Handler
}

// New creates a new instance of Server over the given file store.
func New(store *storage.FileStore) *Server {
	repo := menu.NewRepository(store)
	handler := api.NewHandler(repo)

	s := &Server{
		router:  mux.NewRouter(),
		store:   store,
		repo:    repo,
		handler: handler,
	}
	handler.RegisterRoutes(s.router)

	// Use the logging middleware for all routes
	s.router.Use(requestLoggerMiddleware)

	// Customize NotFoundHandler to log 404s
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("WARN: No route found for %s %s", r.Method, r.URL.Path)
		http.NotFound(w, r)
	})

	return s
}

// requestLoggerMiddleware tags each request with an id and logs the
// method, URL path, and duration.
func requestLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		start := time.Now()
		next.ServeHTTP(w, r)
		elapsed := time.Since(start)
		log.Printf("INFO: [%s] %s %s took %s", requestID, r.Method, r.URL.Path, elapsed)
	})
}

// Store exposes the underlying file store.
func (s *Server) Store() *storage.FileStore {
	return s.store
}

// Router exposes the internal mux.Router.
func (s *Server) Router() http.Handler {
	return s.router
}
