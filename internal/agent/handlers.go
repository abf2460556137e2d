package agent

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/olavblj/clawdr/internal/common/utils"
)

type Handler struct {
	service Service
	baseURL string
}

func NewHandler(service Service, baseURL string) *Handler {
	return &Handler{service: service, baseURL: baseURL}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := utils.ValidateStruct(&dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	a, err := h.service.Register(r.Context(), &dto)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"agent": RegisteredAgent{
			ID:        a.ID,
			Name:      a.Name,
			APIKey:    a.APIKey,
			ClaimURL:  fmt.Sprintf("%s/claim/%s", h.baseURL, a.ClaimCode),
			ClaimCode: a.ClaimCode,
		},
		"important": "SAVE YOUR API KEY! You need it for all future requests.",
	})
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	a, ok := GetAgentFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	status := "pending_claim"
	if a.Claimed {
		status = "claimed"
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":     status,
		"name":       a.Name,
		"claimed_at": a.ClaimedAt,
	})
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	a, ok := GetAgentFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"id":          a.ID,
		"name":        a.Name,
		"description": a.Description,
		"claimed":     a.Claimed,
		"created_at":  a.CreatedAt,
	})
}

func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	agentID, ok := GetAgentIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var dto UpdateAgentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := utils.ValidateStruct(&dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	a, err := h.service.Update(r.Context(), agentID, &dto)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update agent")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"id":          a.ID,
		"name":        a.Name,
		"description": a.Description,
	})
}

func (h *Handler) Claim(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	// Body is optional; an empty or missing body claims anonymously.
	var dto ClaimDTO
	json.NewDecoder(r.Body).Decode(&dto)

	a, err := h.service.Claim(r.Context(), code, dto.HumanID)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCode):
			utils.RespondWithError(w, http.StatusNotFound, "Invalid claim code")
		case errors.Is(err, ErrAlreadyClaimed):
			utils.RespondWithError(w, http.StatusBadRequest, "Agent already claimed")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to claim agent")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("%s is now claimed and ready to find love!", a.Name),
	})
}
