package matching

import (
	"github.com/gorilla/mux"

	"github.com/olavblj/clawdr/internal/agent"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *agent.Middleware) {
	matches := router.PathPrefix("/api/v1/matches").Subrouter()
	matches.Use(authMiddleware.Authenticate)
	matches.Use(authMiddleware.RequireClaimed)

	matches.HandleFunc("/discover", handler.Discover).Methods("GET")
	matches.HandleFunc("/batch-like", handler.BatchLike).Methods("POST")
	matches.HandleFunc("/{profileId}/like", handler.Like).Methods("POST")
	matches.HandleFunc("/{profileId}/pass", handler.Pass).Methods("POST")
	matches.HandleFunc("", handler.List).Methods("GET")
}
