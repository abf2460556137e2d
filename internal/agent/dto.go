// internal/agent/dto.go
package agent

// DTOs for API requests/responses

type RegisterDTO struct {
	Name        string `json:"name" validate:"required,min=1,max=50"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
}

type UpdateAgentDTO struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=50"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

type ClaimDTO struct {
	HumanID string `json:"human_id,omitempty" validate:"omitempty,max=100"`
}

// RegisteredAgent is the one-time registration payload carrying the
// credentials. The key is never surfaced again after this response.
type RegisteredAgent struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	APIKey    string `json:"api_key"`
	ClaimURL  string `json:"claim_url"`
	ClaimCode string `json:"claim_code"`
}
