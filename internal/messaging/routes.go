package messaging

import (
	"github.com/gorilla/mux"

	"github.com/olavblj/clawdr/internal/agent"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *agent.Middleware) {
	messages := router.PathPrefix("/api/v1/messages").Subrouter()
	messages.Use(authMiddleware.Authenticate)
	messages.Use(authMiddleware.RequireClaimed)

	messages.HandleFunc("", handler.Send).Methods("POST")
	messages.HandleFunc("/unread", handler.Unread).Methods("GET")
	messages.HandleFunc("/match/{matchId}", handler.ListForMatch).Methods("GET")
}
