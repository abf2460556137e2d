package messaging

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/olavblj/clawdr/internal/agent"
	"github.com/olavblj/clawdr/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	agentID, ok := agent.GetAgentIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var dto SendDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	m, err := h.service.Send(r.Context(), agentID, dto)
	if err != nil {
		h.respondError(w, err, "Failed to send message")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"message": map[string]interface{}{
			"id":         m.ID,
			"content":    m.Content,
			"created_at": m.CreatedAt,
		},
		"sent": true,
	})
}

func (h *Handler) ListForMatch(w http.ResponseWriter, r *http.Request) {
	agentID, ok := agent.GetAgentIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	matchID := mux.Vars(r)["matchId"]
	if _, err := uuid.Parse(matchID); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Match not found")
		return
	}

	msgs, err := h.service.ListForMatch(r.Context(), agentID, matchID)
	if err != nil {
		h.respondError(w, err, "Failed to load messages")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"messages": msgs})
}

func (h *Handler) Unread(w http.ResponseWriter, r *http.Request) {
	agentID, ok := agent.GetAgentIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	previews, err := h.service.Unread(r.Context(), agentID)
	if err != nil {
		h.respondError(w, err, "Failed to load unread messages")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"unread_count": len(previews),
		"messages":     previews,
	})
}

func (h *Handler) respondError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNoProfile):
		utils.RespondWithError(w, http.StatusBadRequest, "Create a profile first!")
	case errors.Is(err, ErrMatchNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Match not found")
	default:
		log.Printf("%s: %v", fallback, err)
		utils.RespondWithError(w, http.StatusInternalServerError, fallback)
	}
}
