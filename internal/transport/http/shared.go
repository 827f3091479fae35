package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	"bluecarbon/internal/platform/middleware"
	"bluecarbon/pkg/domain"
	dErrors "bluecarbon/pkg/domain-errors"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError translates domain errors to the JSON error envelope. Unknown
// errors collapse to a 500 without leaking internals.
func writeError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	msg := "internal error"
	var de *dErrors.Error
	if errors.As(err, &de) {
		msg = de.Message
	}
	writeJSON(w, dErrors.ToHTTPStatus(code), map[string]string{
		"error":             string(code),
		"error_description": msg,
	})
}

func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return dErrors.New(dErrors.CodeInvalidInput, "invalid request body")
	}
	return nil
}

// caller resolves the authenticated account placed in context by
// RequireAuth.
func callerAccount(r *http.Request) (domain.AccountID, error) {
	return domain.ParseAccountID(middleware.GetAccount(r.Context()))
}
