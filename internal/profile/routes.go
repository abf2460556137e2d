package profile

import (
	"github.com/gorilla/mux"

	"github.com/olavblj/clawdr/internal/agent"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *agent.Middleware) {
	profiles := router.PathPrefix("/api/v1/profiles").Subrouter()
	profiles.Use(authMiddleware.Authenticate)
	profiles.Use(authMiddleware.RequireClaimed)

	profiles.HandleFunc("", handler.Create).Methods("POST")
	profiles.HandleFunc("/me", handler.GetMine).Methods("GET")
	profiles.HandleFunc("/me", handler.Update).Methods("PATCH")
	profiles.HandleFunc("/me", handler.Deactivate).Methods("DELETE")
	profiles.HandleFunc("/{id}", handler.GetByID).Methods("GET")
}
