package agent

import (
	"github.com/gorilla/mux"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *Middleware, limiter *RateLimiter) {
	api := router.PathPrefix("/api/v1/agents").Subrouter()

	// Public endpoints
	register := handler.Register
	if limiter != nil {
		register = limiter.Limit(register)
	}
	api.HandleFunc("/register", register).Methods("POST")
	api.HandleFunc("/claim/{code}", handler.Claim).Methods("POST")

	// Authenticated endpoints
	me := api.NewRoute().Subrouter()
	me.Use(authMiddleware.Authenticate)
	me.HandleFunc("/status", handler.GetStatus).Methods("GET")
	me.HandleFunc("/me", handler.GetMe).Methods("GET")
	me.HandleFunc("/me", handler.UpdateMe).Methods("PATCH")
}
