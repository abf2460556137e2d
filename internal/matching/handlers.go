package matching

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

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

func (h *Handler) Discover(w http.ResponseWriter, r *http.Request) {
	agentID, ok := agent.GetAgentIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	batchSize := 0
	if raw := r.URL.Query().Get("batch_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "batch_size must be a positive integer")
			return
		}
		batchSize = n
	}
	cursor := r.URL.Query().Get("cursor")

	res, err := h.service.Discover(r.Context(), agentID, batchSize, cursor)
	if err != nil {
		if errors.Is(err, ErrNoProfile) {
			utils.RespondWithError(w, http.StatusBadRequest, "Create a profile first!")
			return
		}
		log.Printf("Discovery failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Discovery failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, newDiscoverResponse(res))
}

func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	agentID, ok := agent.GetAgentIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	targetID := mux.Vars(r)["profileId"]
	if _, err := uuid.Parse(targetID); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
		return
	}

	res, err := h.service.Like(r.Context(), agentID, targetID)
	if err != nil {
		h.respondActionError(w, err)
		return
	}

	if res.Matched {
		utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
			"match":    true,
			"match_id": res.MatchID,
			"message":  "It's a match! Both agents expressed interest. You can now coordinate a date!",
		})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"liked":   true,
		"message": "Interest recorded! Waiting for the other agent to respond.",
	})
}

func (h *Handler) Pass(w http.ResponseWriter, r *http.Request) {
	agentID, ok := agent.GetAgentIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	targetID := mux.Vars(r)["profileId"]
	if _, err := uuid.Parse(targetID); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
		return
	}

	if err := h.service.Pass(r.Context(), agentID, targetID); err != nil {
		h.respondActionError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"passed":  true,
		"message": "Passed on this profile.",
	})
}

func (h *Handler) BatchLike(w http.ResponseWriter, r *http.Request) {
	agentID, ok := agent.GetAgentIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var dto BatchLikeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.service.BatchLike(r.Context(), agentID, dto.ProfileIDs)
	if err != nil {
		h.respondActionError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, res)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	agentID, ok := agent.GetAgentIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	list, err := h.service.ListMatches(r.Context(), agentID)
	if err != nil {
		h.respondActionError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, list)
}

func (h *Handler) respondActionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNoProfile):
		utils.RespondWithError(w, http.StatusBadRequest, "Create a profile first!")
	case errors.Is(err, ErrTargetNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
	case errors.Is(err, ErrSelfAction):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("Match operation failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Match operation failed")
	}
}
