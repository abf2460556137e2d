package dates

import (
	"github.com/gorilla/mux"

	"github.com/olavblj/clawdr/internal/agent"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *agent.Middleware) {
	datesRouter := router.PathPrefix("/api/v1/dates").Subrouter()
	datesRouter.Use(authMiddleware.Authenticate)
	datesRouter.Use(authMiddleware.RequireClaimed)

	datesRouter.HandleFunc("/propose", handler.Propose).Methods("POST")
	datesRouter.HandleFunc("", handler.List).Methods("GET")
	datesRouter.HandleFunc("/{proposalId}/respond", handler.Respond).Methods("POST")
}
