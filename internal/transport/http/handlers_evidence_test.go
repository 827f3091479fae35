package httptransport

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bluecarbon/internal/evidence"
	"bluecarbon/internal/transport/http/mocks"
	dErrors "bluecarbon/pkg/domain-errors"
)

func postEvidence(t *testing.T, router http.Handler, token string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/evidence", bytes.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandlePutEvidence_MeasurementGetsEstimate(t *testing.T) {
	ctrl, node := newMockNode(t)
	defer ctrl.Finish()

	router := newTestRouter(t, node, evidence.NewMemory(), staticValidator{account: "carol"}, nil)
	w := postEvidence(t, router, "token", []byte(`{"canopy_area_m2":5000,"avg_biomass_density_kg_m2":15.5}`))

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body["locator"], "sha256:")
	assert.Equal(t, float64(160), body["claimed_tonnes"])
	assert.NotNil(t, body["estimate"])
}

func TestHandlePutEvidence_OpaquePayloadStillStored(t *testing.T) {
	ctrl, node := newMockNode(t)
	defer ctrl.Finish()

	store := evidence.NewMemory()
	router := newTestRouter(t, node, store, staticValidator{account: "carol"}, nil)
	w := postEvidence(t, router, "token", []byte("drone imagery manifest v2"))

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body["locator"], "sha256:")
	// No measurement, no estimate.
	assert.NotContains(t, body, "claimed_tonnes")
}

func TestHandlePutEvidence_RejectsEmptyBody(t *testing.T) {
	ctrl, node := newMockNode(t)
	defer ctrl.Finish()

	router := newTestRouter(t, node, evidence.NewMemory(), staticValidator{account: "carol"}, nil)
	w := postEvidence(t, router, "token", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGetEvidence_RoundTrip(t *testing.T) {
	ctrl, node := newMockNode(t)
	defer ctrl.Finish()

	store := evidence.NewMemory()
	router := newTestRouter(t, node, store, staticValidator{account: "carol"}, nil)

	payload := []byte(`{"canopy_area_m2":5000,"avg_biomass_density_kg_m2":15.5}`)
	w := postEvidence(t, router, "token", payload)
	require.Equal(t, http.StatusCreated, w.Code)
	locator := decodeBody(t, w)["locator"].(string)

	got := doJSON(t, router, http.MethodGet, "/evidence/"+locator, "", nil)
	require.Equal(t, http.StatusOK, got.Code)
	assert.Equal(t, payload, got.Body.Bytes())
}

func TestHandleGetEvidence_NotFound(t *testing.T) {
	ctrl, node := newMockNode(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockEvidenceStore(ctrl)
	mockStore.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(nil, dErrors.New(dErrors.CodeNotFound, "evidence package not found")).
		Times(1)

	router := newTestRouter(t, node, mockStore, staticValidator{}, nil)
	w := doJSON(t, router, http.MethodGet, "/evidence/sha256:deadbeef", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleEstimate(t *testing.T) {
	ctrl, node := newMockNode(t)
	defer ctrl.Finish()

	router := newTestRouter(t, node, evidence.NewMemory(), staticValidator{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/evidence/estimate",
		bytes.NewReader([]byte(`{"canopy_area_m2":5000,"avg_biomass_density_kg_m2":15.5}`)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(160), decodeBody(t, w)["claimed_tonnes"])

	req = httptest.NewRequest(http.MethodPost, "/evidence/estimate", bytes.NewReader([]byte(`{"canopy_area_m2":0}`)))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
