package httptransport

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bluecarbon/pkg/carbon"
	dErrors "bluecarbon/pkg/domain-errors"
)

// maxEvidenceBytes caps uploaded packages; imagery stays in object storage,
// the evidence store holds measurements and summaries.
const maxEvidenceBytes = 4 << 20

func (h *Handler) handlePutEvidence(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxEvidenceBytes+1))
	if err != nil {
		writeError(w, dErrors.Wrap(dErrors.CodeInternal, "read evidence body", err))
		return
	}
	if len(data) == 0 {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, "evidence package cannot be empty"))
		return
	}
	if len(data) > maxEvidenceBytes {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, "evidence package too large"))
		return
	}

	locator, err := h.evidence.Put(r.Context(), data)
	if err != nil {
		writeError(w, err)
		return
	}

	// A structured measurement gets its carbon estimate back with the
	// locator, so submitters can fill claimed_tonnes without a second call.
	body := map[string]any{"locator": locator}
	if est, err := carbon.FromPackage(data); err == nil {
		body["estimate"] = est
		body["claimed_tonnes"] = est.ClaimedTonnes()
	}
	writeJSON(w, http.StatusCreated, body)
}

func (h *Handler) handleGetEvidence(w http.ResponseWriter, r *http.Request) {
	data, err := h.evidence.Get(r.Context(), chi.URLParam(r, "locator"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// handleEstimate runs the canopy estimation without storing anything.
func (h *Handler) handleEstimate(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxEvidenceBytes))
	if err != nil {
		writeError(w, dErrors.Wrap(dErrors.CodeInternal, "read request body", err))
		return
	}
	est, err := carbon.FromPackage(data)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"estimate":       est,
		"claimed_tonnes": est.ClaimedTonnes(),
	})
}
