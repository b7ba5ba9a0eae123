package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mseongj/pondok-news/handlers"
	"github.com/mseongj/pondok-news/views"
)

func SetupRoutes(h *handlers.Handler) *mux.Router {
	router := mux.NewRouter()

	// pages
	router.HandleFunc("/", h.Home).Methods(http.MethodGet)
	router.HandleFunc("/article/{id}", h.Article).Methods(http.MethodGet)
	router.HandleFunc("/old-articles", h.OldArticles).Methods(http.MethodGet)

	// load more endpoints
	router.HandleFunc("/api/articles", h.ListArticles).Methods(http.MethodGet)
	router.HandleFunc("/api/old-articles", h.ListOldArticles).Methods(http.MethodGet)

	// static assets from the embedded public directory
	static := views.Static()
	router.PathPrefix("/js/").Handler(static).Methods(http.MethodGet)
	router.PathPrefix("/css/").Handler(static).Methods(http.MethodGet)

	router.NotFoundHandler = http.HandlerFunc(h.NotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(h.NotFound)

	return router
}
