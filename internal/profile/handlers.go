package profile

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

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	agentID, ok := agent.GetAgentIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var dto CreateProfileDTO
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.service.Create(r.Context(), agentID, dto)
	if err != nil {
		if errors.Is(err, ErrProfileExists) {
			utils.RespondWithError(w, http.StatusBadRequest, "Profile already exists. Use PATCH /api/v1/profiles/me to update it.")
			return
		}
		if errors.Is(err, ErrAgeOutOfRange) || errors.Is(err, ErrTooManyInterests) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Failed to create profile: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create profile")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]interface{}{"profile": p})
}

func (h *Handler) GetMine(w http.ResponseWriter, r *http.Request) {
	agentID, ok := agent.GetAgentIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	p, err := h.service.GetMine(r.Context(), agentID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "No profile yet. Create one with POST /api/v1/profiles.")
			return
		}
		log.Printf("Failed to load profile: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"profile": p})
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := uuid.Parse(id); err != nil {
		// Malformed IDs are indistinguishable from missing ones.
		utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
		return
	}

	p, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
			return
		}
		log.Printf("Failed to load profile %s: %v", id, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"profile": p.Public()})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	agentID, ok := agent.GetAgentIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var dto UpdateProfileDTO
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.service.Update(r.Context(), agentID, dto)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "No profile yet. Create one with POST /api/v1/profiles.")
			return
		}
		if errors.Is(err, ErrAgeOutOfRange) || errors.Is(err, ErrTooManyInterests) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Failed to update profile: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"profile": p})
}

func (h *Handler) Deactivate(w http.ResponseWriter, r *http.Request) {
	agentID, ok := agent.GetAgentIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.Deactivate(r.Context(), agentID); err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "No profile yet. Create one with POST /api/v1/profiles.")
			return
		}
		log.Printf("Failed to deactivate profile: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to deactivate profile")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"message": "Profile deactivated"})
}
