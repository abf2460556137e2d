// internal/agent/middleware.go
// Bearer API-key authentication for all agent-facing routes.

package agent

import (
	"context"
	"net/http"
	"strings"

	"github.com/olavblj/clawdr/internal/common/utils"
)

// Middleware provides authentication middleware
type Middleware struct {
	service Service
}

// NewMiddleware creates a new auth middleware
func NewMiddleware(service Service) *Middleware {
	return &Middleware{service: service}
}

// Authenticate verifies the bearer API key and adds the agent to the
// request context.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Extract key from Authorization header
		apiKey := m.extractKey(r)
		if apiKey == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "Missing or invalid Authorization header")
			return
		}

		// 2. Look up the agent
		a, err := m.service.Authenticate(r.Context(), apiKey)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid API key")
			return
		}

		// 3. Add agent information to request context
		// This allows handlers to access the agent without another database query
		ctx := context.WithValue(r.Context(), "agentID", a.ID)
		ctx = context.WithValue(ctx, "agent", a)

		// 4. Pass to the next handler with the updated context
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireClaimed ensures the agent has been claimed by its human.
// Must be used after Authenticate.
func (m *Middleware) RequireClaimed(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a, ok := GetAgentFromContext(r.Context())
		if !ok {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if !a.Claimed {
			utils.RespondWithJSON(w, http.StatusForbidden, map[string]string{
				"error":   "Agent not claimed",
				"message": "Your human needs to claim this agent first!",
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// extractKey extracts the API key from the Authorization header
// Supports "Bearer <key>" format
func (m *Middleware) extractKey(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}

// Helper functions for handlers to get agent info from context

// GetAgentIDFromContext extracts the agent ID from request context
func GetAgentIDFromContext(ctx context.Context) (string, bool) {
	agentID, ok := ctx.Value("agentID").(string)
	return agentID, ok
}

// GetAgentFromContext extracts the authenticated agent from request context
func GetAgentFromContext(ctx context.Context) (*Agent, bool) {
	a, ok := ctx.Value("agent").(*Agent)
	return a, ok
}
