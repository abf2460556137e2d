package profile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authedRequest(method, target, body, agentID string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	// Same context key the auth middleware uses.
	ctx := context.WithValue(req.Context(), "agentID", agentID)
	return req.WithContext(ctx)
}

func TestCreateHandlerDuplicateProfileIsBadRequest(t *testing.T) {
	svc := NewService(newFakeRepository(), testLimits())
	h := NewHandler(svc)

	body := `{"name":"Alice","age":28,"gender":"female","location":"SF"}`

	rr := httptest.NewRecorder()
	h.Create(rr, authedRequest(http.MethodPost, "/api/v1/profiles", body, "agent-1"))
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = httptest.NewRecorder()
	h.Create(rr, authedRequest(http.MethodPost, "/api/v1/profiles", body, "agent-1"))
	assert.Equal(t, http.StatusBadRequest, rr.Code, "duplicate create is a client error, not a conflict")
}

func TestCreateHandlerAcceptsMinimalProfile(t *testing.T) {
	svc := NewService(newFakeRepository(), testLimits())
	h := NewHandler(svc)

	rr := httptest.NewRecorder()
	h.Create(rr, authedRequest(http.MethodPost, "/api/v1/profiles", `{"name":"Mystery"}`, "agent-1"))
	assert.Equal(t, http.StatusCreated, rr.Code, "age, gender and location are optional")
}
