package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"bluecarbon/pkg/domain"
)

// Amounts cross the wire as decimal strings in smallest units; JSON numbers
// cannot carry them without precision loss.

type mintRequest struct {
	To                string `json:"to"`
	Amount            string `json:"amount"`
	ProvenanceLocator string `json:"provenance_locator"`
}

type transferRequest struct {
	To     string `json:"to"`
	Amount string `json:"amount"`
}

type retireRequest struct {
	Amount string `json:"amount"`
	Reason string `json:"reason"`
}

func (h *Handler) handleMint(w http.ResponseWriter, r *http.Request) {
	caller, err := callerAccount(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req mintRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	to, err := domain.ParseAccountID(req.To)
	if err != nil {
		writeError(w, err)
		return
	}
	amount, err := domain.ParsePositiveAmount(req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.node.Mint(r.Context(), caller, to, amount, req.ProvenanceLocator); err != nil {
		writeError(w, err)
		return
	}
	h.metrics.CreditsMinted.Inc()
	h.syncLogGauge()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleTransfer(w http.ResponseWriter, r *http.Request) {
	caller, err := callerAccount(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req transferRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	to, err := domain.ParseAccountID(req.To)
	if err != nil {
		writeError(w, err)
		return
	}
	amount, err := domain.ParsePositiveAmount(req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.node.Transfer(r.Context(), caller, to, amount); err != nil {
		writeError(w, err)
		return
	}
	h.metrics.CreditsTransferred.Inc()
	h.syncLogGauge()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleRetire(w http.ResponseWriter, r *http.Request) {
	caller, err := callerAccount(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req retireRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	amount, err := domain.ParsePositiveAmount(req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.node.Retire(r.Context(), caller, amount, req.Reason); err != nil {
		writeError(w, err)
		return
	}
	h.metrics.CreditsRetired.Inc()
	h.syncLogGauge()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	account, err := domain.ParseAccountID(chi.URLParam(r, "account"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"account": string(account),
		"balance": h.node.BalanceOf(account).String(),
	})
}

func (h *Handler) handleTotalRetired(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"total_retired": h.node.TotalRetired().String(),
	})
}

func (h *Handler) handleRetiredByAccount(w http.ResponseWriter, r *http.Request) {
	account, err := domain.ParseAccountID(chi.URLParam(r, "account"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"account": string(account),
		"retired": h.node.RetiredByAccount(account).String(),
	})
}
