package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"bluecarbon/pkg/domain"
)

type roleChangeRequest struct {
	Role    string `json:"role"`
	Account string `json:"account"`
}

func (h *Handler) handleGrantRole(w http.ResponseWriter, r *http.Request) {
	caller, err := callerAccount(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req roleChangeRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		writeError(w, err)
		return
	}
	account, err := domain.ParseAccountID(req.Account)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.node.GrantRole(r.Context(), caller, role, account); err != nil {
		writeError(w, err)
		return
	}
	h.syncLogGauge()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleRevokeRole(w http.ResponseWriter, r *http.Request) {
	caller, err := callerAccount(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req roleChangeRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		writeError(w, err)
		return
	}
	account, err := domain.ParseAccountID(req.Account)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.node.RevokeRole(r.Context(), caller, role, account); err != nil {
		writeError(w, err)
		return
	}
	h.syncLogGauge()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleHasRole(w http.ResponseWriter, r *http.Request) {
	role, err := domain.ParseRole(chi.URLParam(r, "role"))
	if err != nil {
		writeError(w, err)
		return
	}
	account, err := domain.ParseAccountID(chi.URLParam(r, "account"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"role":    string(role),
		"account": string(account),
		"member":  h.node.HasRole(role, account),
	})
}
