package httptransport

import (
	"net/http"
	"strconv"
	"time"

	"bluecarbon/internal/eventlog"
	"bluecarbon/pkg/domain"
	dErrors "bluecarbon/pkg/domain-errors"
)

func (h *Handler) handlePause(w http.ResponseWriter, r *http.Request) {
	caller, err := callerAccount(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.node.Pause(r.Context(), caller); err != nil {
		writeError(w, err)
		return
	}
	h.syncLogGauge()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleUnpause(w http.ResponseWriter, r *http.Request) {
	caller, err := callerAccount(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.node.Unpause(r.Context(), caller); err != nil {
		writeError(w, err)
		return
	}
	h.syncLogGauge()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"paused":     h.node.Paused(),
		"log_length": h.node.Log().Len(),
	})
}

// handleListLog pages through the chain. The full entries go out as-is so
// auditors can re-verify hashes client side.
func (h *Handler) handleListLog(w http.ResponseWriter, r *http.Request) {
	after, err := queryInt(r, "after", 0)
	if err != nil {
		writeError(w, err)
		return
	}
	limit, err := queryInt(r, "limit", 100)
	if err != nil {
		writeError(w, err)
		return
	}
	if limit > 1000 {
		limit = 1000
	}

	entries := h.node.Log().ListAfter(after, int(limit))
	if entries == nil {
		entries = []eventlog.Entry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"entries": entries,
		"length":  h.node.Log().Len(),
	})
}

func (h *Handler) handleVerifyLog(w http.ResponseWriter, r *http.Request) {
	entries := h.node.Log().ListAfter(0, 0)
	brokenAt, intact := eventlog.VerifyChain(entries)
	body := map[string]any{
		"intact": intact,
		"length": len(entries),
	}
	if !intact {
		body["broken_at"] = brokenAt
	}
	writeJSON(w, http.StatusOK, body)
}

type issueTokenRequest struct {
	Account string `json:"account"`
}

// handleIssueToken mints a development token for the claimed account. The
// relay runs inside a closed operator network; production deployments put a
// real identity provider in front and disable this route.
func (h *Handler) handleIssueToken(w http.ResponseWriter, r *http.Request) {
	var req issueTokenRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	account, err := domain.ParseAccountID(req.Account)
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := h.tokenIssuer.GenerateAccessToken(account, h.tokenTTL)
	if err != nil {
		writeError(w, dErrors.Wrap(dErrors.CodeInternal, "token generation failed", err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   int(h.tokenTTL / time.Second),
	})
}

func queryInt(r *http.Request, name string, fallback int64) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0, dErrors.Newf(dErrors.CodeInvalidInput, "%s must be a non-negative integer", name)
	}
	return n, nil
}
