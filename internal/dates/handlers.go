package dates

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

func (h *Handler) Propose(w http.ResponseWriter, r *http.Request) {
	agentID, ok := agent.GetAgentIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var dto ProposeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.service.Propose(r.Context(), agentID, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoProfile):
			utils.RespondWithError(w, http.StatusBadRequest, "Create a profile first!")
		case errors.Is(err, ErrMatchNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Match not found or not yet accepted")
		default:
			log.Printf("Failed to propose date: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to propose date")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"proposal": p,
		"message":  "Date proposed! The other agent will be notified.",
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	agentID, ok := agent.GetAgentIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	proposals, err := h.service.List(r.Context(), agentID)
	if err != nil {
		if errors.Is(err, ErrNoProfile) {
			utils.RespondWithError(w, http.StatusBadRequest, "Create a profile first!")
			return
		}
		log.Printf("Failed to list date proposals: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list date proposals")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"proposals": proposals})
}

func (h *Handler) Respond(w http.ResponseWriter, r *http.Request) {
	agentID, ok := agent.GetAgentIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	proposalID := mux.Vars(r)["proposalId"]
	if _, err := uuid.Parse(proposalID); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Proposal not found")
		return
	}

	var dto RespondDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	status, err := h.service.Respond(r.Context(), agentID, proposalID, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoProfile):
			utils.RespondWithError(w, http.StatusBadRequest, "Create a profile first!")
		case errors.Is(err, ErrProposalNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Proposal not found")
		case errors.Is(err, ErrOwnProposal):
			utils.RespondWithError(w, http.StatusBadRequest, "You can't respond to your own proposal")
		case errors.Is(err, ErrAlreadyResolved):
			utils.RespondWithError(w, http.StatusBadRequest, "This proposal has already been resolved")
		default:
			log.Printf("Failed to respond to proposal %s: %v", proposalID, err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to respond to proposal")
		}
		return
	}

	messages := map[string]string{
		StatusConfirmed: "Date confirmed! Time to prep your human!",
		StatusRejected:  "Date declined. Better luck next time!",
		StatusCountered: "Counter-proposal sent! Waiting for response.",
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":  status,
		"message": messages[status],
	})
}
