// Package httptransport is the thin HTTP relay over the registry core. It
// decodes requests, resolves the caller from the bearer token, delegates to
// the state machine, and translates domain errors to JSON envelopes; no
// business logic lives here.
package httptransport

import (
	"context"
	"log/slog"
	"math/big"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bluecarbon/internal/eventlog"
	"bluecarbon/internal/platform/metrics"
	"bluecarbon/internal/platform/middleware"
	"bluecarbon/internal/registry"
	"bluecarbon/pkg/domain"
)

//go:generate mockgen -source=router.go -destination=mocks/node-mocks.go -package=mocks Node,EvidenceStore

// Node is the registry state machine surface the relay depends on.
type Node interface {
	GrantRole(ctx context.Context, caller domain.AccountID, role domain.Role, account domain.AccountID) error
	RevokeRole(ctx context.Context, caller domain.AccountID, role domain.Role, account domain.AccountID) error
	HasRole(role domain.Role, account domain.AccountID) bool

	RegisterProject(ctx context.Context, caller domain.AccountID, name, description, boundaryLocator, metadataLocator string) (domain.ProjectID, error)
	SubmitMRV(ctx context.Context, caller domain.AccountID, projectID domain.ProjectID, packageLocator string, claimedQuantity uint64) (domain.SubmissionID, error)
	ApproveMRV(ctx context.Context, caller domain.AccountID, submissionID domain.SubmissionID, notes string) error
	RejectMRV(ctx context.Context, caller domain.AccountID, submissionID domain.SubmissionID, reason string) error
	GetProject(id domain.ProjectID) (registry.Project, error)
	GetMRVSubmission(id domain.SubmissionID) (registry.MRVSubmission, error)
	GetProjectMRVs(projectID domain.ProjectID) ([]registry.MRVSubmission, error)

	Mint(ctx context.Context, caller, to domain.AccountID, amount *big.Int, provenanceLocator string) error
	Transfer(ctx context.Context, caller, to domain.AccountID, amount *big.Int) error
	Retire(ctx context.Context, caller domain.AccountID, amount *big.Int, reason string) error
	BalanceOf(account domain.AccountID) *big.Int
	TotalRetired() *big.Int
	RetiredByAccount(account domain.AccountID) *big.Int

	Pause(ctx context.Context, caller domain.AccountID) error
	Unpause(ctx context.Context, caller domain.AccountID) error
	Paused() bool

	Log() *eventlog.Log
}

// EvidenceStore is the content-addressed blob store behind the evidence
// endpoints.
type EvidenceStore interface {
	Put(ctx context.Context, data []byte) (string, error)
	Get(ctx context.Context, locator string) ([]byte, error)
}

// TokenIssuer mints access tokens for the development token endpoint.
type TokenIssuer interface {
	GenerateAccessToken(account domain.AccountID, expiresIn time.Duration) (string, error)
}

// Handler holds the relay's dependencies.
type Handler struct {
	logger       *slog.Logger
	node         Node
	evidence     EvidenceStore
	metrics      *metrics.Metrics
	jwtValidator middleware.JWTValidator
	tokenIssuer  TokenIssuer
	tokenTTL     time.Duration
}

// New creates the relay handler.
func New(
	node Node,
	evidence EvidenceStore,
	logger *slog.Logger,
	m *metrics.Metrics,
	jwtValidator middleware.JWTValidator,
	tokenIssuer TokenIssuer,
) *Handler {
	return &Handler{
		logger:       logger,
		node:         node,
		evidence:     evidence,
		metrics:      m,
		jwtValidator: jwtValidator,
		tokenIssuer:  tokenIssuer,
		tokenTTL:     time.Hour,
	}
}

// Register wires all routes. Mutations require a bearer token; reads, the
// log feed, and health are public.
func (h *Handler) Register(r chi.Router) {
	r.Use(middleware.Recovery(h.logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(h.logger))
	r.Use(middleware.Latency(h.metrics))

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(h.jwtValidator, h.logger))

		r.Post("/roles/grant", h.handleGrantRole)
		r.Post("/roles/revoke", h.handleRevokeRole)

		r.Post("/projects", h.handleRegisterProject)
		r.Post("/projects/{projectID}/mrv", h.handleSubmitMRV)
		r.Post("/mrv/{submissionID}/approve", h.handleApproveMRV)
		r.Post("/mrv/{submissionID}/reject", h.handleRejectMRV)

		r.Post("/credits/mint", h.handleMint)
		r.Post("/credits/transfer", h.handleTransfer)
		r.Post("/credits/retire", h.handleRetire)

		r.Post("/system/pause", h.handlePause)
		r.Post("/system/unpause", h.handleUnpause)

		r.Post("/evidence", h.handlePutEvidence)
	})

	r.Get("/roles/{role}/{account}", h.handleHasRole)
	r.Get("/projects/{projectID}", h.handleGetProject)
	r.Get("/projects/{projectID}/mrv", h.handleGetProjectMRVs)
	r.Get("/mrv/{submissionID}", h.handleGetMRVSubmission)
	r.Get("/credits/balance/{account}", h.handleBalance)
	r.Get("/credits/retired", h.handleTotalRetired)
	r.Get("/credits/retired/{account}", h.handleRetiredByAccount)
	r.Get("/system/status", h.handleStatus)
	r.Get("/log", h.handleListLog)
	r.Get("/log/verify", h.handleVerifyLog)
	r.Get("/evidence/{locator}", h.handleGetEvidence)
	r.Post("/evidence/estimate", h.handleEstimate)

	r.Post("/auth/token", h.handleIssueToken)

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// syncLogGauge keeps the log-length gauge in step after mutations.
func (h *Handler) syncLogGauge() {
	if h.metrics != nil && h.metrics.LogEntries != nil {
		h.metrics.LogEntries.Set(float64(h.node.Log().Len()))
	}
}
