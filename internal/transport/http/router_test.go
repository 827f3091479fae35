package httptransport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bluecarbon/internal/core"
	"bluecarbon/internal/evidence"
	"bluecarbon/internal/jwttoken"
	"bluecarbon/internal/platform/metrics"
	"bluecarbon/internal/platform/middleware"
	"bluecarbon/pkg/domain"
	dErrors "bluecarbon/pkg/domain-errors"
)

// staticValidator authenticates every request as a fixed account, letting
// handler tests skip real token issuance.
type staticValidator struct{ account string }

func (v staticValidator) ValidateToken(string) (*middleware.JWTClaims, error) {
	if v.account == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}
	return &middleware.JWTClaims{Account: v.account}, nil
}

func newTestRouter(t *testing.T, node Node, store EvidenceStore, validator middleware.JWTValidator, issuer TokenIssuer) http.Handler {
	t.Helper()
	h := New(node, store, slog.New(slog.DiscardHandler), metrics.NewFor(prometheus.NewRegistry()), validator, issuer)
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// TestRelayWorkflow drives the full MRV lifecycle through the HTTP surface
// against a real state machine, tokens included.
func TestRelayWorkflow(t *testing.T) {
	node := core.NewNode("admin", "registry", nil)
	jwtSvc := jwttoken.NewJWTService("test-key", "bluecarbon", "bluecarbon-api")
	router := newTestRouter(t, node, evidence.NewMemory(), jwttoken.NewMiddlewareAdapter(jwtSvc), jwtSvc)

	token := func(account string) string {
		w := doJSON(t, router, http.MethodPost, "/auth/token", "", map[string]string{"account": account})
		require.Equal(t, http.StatusOK, w.Code)
		return decodeBody(t, w)["access_token"].(string)
	}
	admin, owner, verifier, buyer := token("admin"), token("carol"), token("vera"), token("buyer")

	// Admin brings the verifier on board.
	w := doJSON(t, router, http.MethodPost, "/roles/grant", admin, map[string]string{
		"role": "verifier", "account": "vera",
	})
	require.Equal(t, http.StatusNoContent, w.Code)

	// Owner uploads the measurement; the relay answers with the locator and
	// the canopy-derived claimed quantity.
	measurement := `{"canopy_area_m2":5000,"avg_biomass_density_kg_m2":15.5}`
	req := httptest.NewRequest(http.MethodPost, "/evidence", bytes.NewReader([]byte(measurement)))
	req.Header.Set("Authorization", "Bearer "+owner)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	put := decodeBody(t, rec)
	locator := put["locator"].(string)
	assert.Equal(t, float64(160), put["claimed_tonnes"])

	// Owner registers the project and submits against it.
	w = doJSON(t, router, http.MethodPost, "/projects", owner, map[string]string{
		"name":        "Mangrove Delta Restoration",
		"description": "Replanting 12ha of mangrove along the delta",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	projectID := decodeBody(t, w)["project_id"].(float64)

	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/projects/%.0f/mrv", projectID), owner, map[string]any{
		"package_locator": locator,
		"claimed_tonnes":  160,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	submissionID := decodeBody(t, w)["submission_id"].(float64)

	// Verifier approves; credits land with the owner.
	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/mrv/%.0f/approve", submissionID), verifier, map[string]string{
		"notes": "field audit matches imagery",
	})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodGet, "/credits/balance/carol", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.TonnesToUnits(160).String(), decodeBody(t, w)["balance"])

	// Owner sells 60 tonnes; buyer retires 10.
	w = doJSON(t, router, http.MethodPost, "/credits/transfer", owner, map[string]string{
		"to": "buyer", "amount": domain.TonnesToUnits(60).String(),
	})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodPost, "/credits/retire", buyer, map[string]string{
		"amount": domain.TonnesToUnits(10).String(), "reason": "2026 offset claim",
	})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodGet, "/credits/retired", "", nil)
	assert.Equal(t, domain.TonnesToUnits(10).String(), decodeBody(t, w)["total_retired"])

	// The submission reads back approved, and the published chain verifies.
	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/mrv/%.0f", submissionID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "approved", decodeBody(t, w)["status"])

	w = doJSON(t, router, http.MethodGet, "/log/verify", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	verify := decodeBody(t, w)
	assert.Equal(t, true, verify["intact"])

	w = doJSON(t, router, http.MethodGet, "/log", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["entries"])
}

func TestMutationsRequireToken(t *testing.T) {
	node := core.NewNode("admin", "registry", nil)
	router := newTestRouter(t, node, evidence.NewMemory(), staticValidator{}, nil)

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/projects"},
		{http.MethodPost, "/roles/grant"},
		{http.MethodPost, "/credits/transfer"},
		{http.MethodPost, "/system/pause"},
		{http.MethodPost, "/evidence"},
	} {
		w := doJSON(t, router, route.method, route.path, "", map[string]string{})
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestReadsAreOpen(t *testing.T) {
	node := core.NewNode("admin", "registry", nil)
	router := newTestRouter(t, node, evidence.NewMemory(), staticValidator{}, nil)

	w := doJSON(t, router, http.MethodGet, "/credits/balance/anyone", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/system/status", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	status := decodeBody(t, w)
	assert.Equal(t, false, status["paused"])

	w = doJSON(t, router, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPauseBlocksWorkflowViaHTTP(t *testing.T) {
	node := core.NewNode("admin", "registry", nil)
	jwtSvc := jwttoken.NewJWTService("test-key", "bluecarbon", "bluecarbon-api")
	router := newTestRouter(t, node, evidence.NewMemory(), jwttoken.NewMiddlewareAdapter(jwtSvc), jwtSvc)

	adminToken, err := jwtSvc.GenerateAccessToken("admin", time.Hour)
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodPost, "/system/pause", adminToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodPost, "/projects", adminToken, map[string]string{
		"name": "x", "description": "y",
	})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "system_paused", decodeBody(t, w)["error"])

	w = doJSON(t, router, http.MethodPost, "/system/unpause", adminToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodPost, "/projects", adminToken, map[string]string{
		"name": "x", "description": "y",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}
