package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// MenuAPI is the handler surface the router exposes.
type MenuAPI interface {
	GetMeals(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	menuHandler MenuAPI
	router      *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(menuHandler MenuAPI, router *mux.Router) *Router {
	return &Router{
		menuHandler: menuHandler,
		router:      router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/api/meals", r.menuHandler.GetMeals).Methods("GET")

	r.router.HandleFunc("/health", r.menuHandler.Health).Methods("GET")
}
