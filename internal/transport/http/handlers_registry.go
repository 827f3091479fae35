package httptransport

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"bluecarbon/internal/registry"
	"bluecarbon/pkg/domain"
)

type registerProjectRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	BoundaryLocator string `json:"boundary_locator"`
	MetadataLocator string `json:"metadata_locator"`
}

type submitMRVRequest struct {
	PackageLocator string `json:"package_locator"`
	ClaimedTonnes  uint64 `json:"claimed_tonnes"`
}

type processMRVRequest struct {
	Notes  string `json:"notes"`
	Reason string `json:"reason"`
}

type projectResponse struct {
	ID              domain.ProjectID `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Owner           string           `json:"owner"`
	BoundaryLocator string           `json:"boundary_locator,omitempty"`
	MetadataLocator string           `json:"metadata_locator,omitempty"`
	Active          bool             `json:"active"`
	CreatedAt       time.Time        `json:"created_at"`
}

type submissionResponse struct {
	ID             domain.SubmissionID `json:"id"`
	ProjectID      domain.ProjectID    `json:"project_id"`
	PackageLocator string              `json:"package_locator"`
	ClaimedTonnes  uint64              `json:"claimed_tonnes"`
	Status         string              `json:"status"`
	Verifier       string              `json:"verifier,omitempty"`
	SubmittedAt    time.Time           `json:"submitted_at"`
	ProcessedAt    *time.Time          `json:"processed_at,omitempty"`
	Notes          string              `json:"notes,omitempty"`
}

func toProjectResponse(p registry.Project) projectResponse {
	return projectResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Owner:           string(p.Owner),
		BoundaryLocator: p.BoundaryLocator,
		MetadataLocator: p.MetadataLocator,
		Active:          p.Active,
		CreatedAt:       p.CreatedAt,
	}
}

func toSubmissionResponse(s registry.MRVSubmission) submissionResponse {
	return submissionResponse{
		ID:             s.ID,
		ProjectID:      s.ProjectID,
		PackageLocator: s.PackageLocator,
		ClaimedTonnes:  s.ClaimedQuantity,
		Status:         string(s.Status),
		Verifier:       string(s.Verifier),
		SubmittedAt:    s.SubmittedAt,
		ProcessedAt:    s.ProcessedAt,
		Notes:          s.Notes,
	}
}

func (h *Handler) handleRegisterProject(w http.ResponseWriter, r *http.Request) {
	caller, err := callerAccount(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req registerProjectRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	id, err := h.node.RegisterProject(r.Context(), caller, req.Name, req.Description, req.BoundaryLocator, req.MetadataLocator)
	if err != nil {
		writeError(w, err)
		return
	}
	h.metrics.ProjectsRegistered.Inc()
	h.syncLogGauge()
	writeJSON(w, http.StatusCreated, map[string]any{"project_id": id})
}

func (h *Handler) handleSubmitMRV(w http.ResponseWriter, r *http.Request) {
	caller, err := callerAccount(r)
	if err != nil {
		writeError(w, err)
		return
	}
	projectID, err := domain.ParseProjectID(chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, err)
		return
	}

	var req submitMRVRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	id, err := h.node.SubmitMRV(r.Context(), caller, projectID, req.PackageLocator, req.ClaimedTonnes)
	if err != nil {
		writeError(w, err)
		return
	}
	h.metrics.MRVSubmitted.Inc()
	h.syncLogGauge()
	writeJSON(w, http.StatusCreated, map[string]any{"submission_id": id})
}

func (h *Handler) handleApproveMRV(w http.ResponseWriter, r *http.Request) {
	caller, err := callerAccount(r)
	if err != nil {
		writeError(w, err)
		return
	}
	submissionID, err := domain.ParseSubmissionID(chi.URLParam(r, "submissionID"))
	if err != nil {
		writeError(w, err)
		return
	}

	var req processMRVRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.node.ApproveMRV(r.Context(), caller, submissionID, req.Notes); err != nil {
		writeError(w, err)
		return
	}
	h.metrics.MRVProcessed.WithLabelValues("approved").Inc()
	h.metrics.CreditsMinted.Inc()
	h.syncLogGauge()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleRejectMRV(w http.ResponseWriter, r *http.Request) {
	caller, err := callerAccount(r)
	if err != nil {
		writeError(w, err)
		return
	}
	submissionID, err := domain.ParseSubmissionID(chi.URLParam(r, "submissionID"))
	if err != nil {
		writeError(w, err)
		return
	}

	var req processMRVRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.node.RejectMRV(r.Context(), caller, submissionID, req.Reason); err != nil {
		writeError(w, err)
		return
	}
	h.metrics.MRVProcessed.WithLabelValues("rejected").Inc()
	h.syncLogGauge()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleGetProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := domain.ParseProjectID(chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, err)
		return
	}
	p, err := h.node.GetProject(projectID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

func (h *Handler) handleGetMRVSubmission(w http.ResponseWriter, r *http.Request) {
	submissionID, err := domain.ParseSubmissionID(chi.URLParam(r, "submissionID"))
	if err != nil {
		writeError(w, err)
		return
	}
	s, err := h.node.GetMRVSubmission(submissionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubmissionResponse(s))
}

func (h *Handler) handleGetProjectMRVs(w http.ResponseWriter, r *http.Request) {
	projectID, err := domain.ParseProjectID(chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, err)
		return
	}
	subs, err := h.node.GetProjectMRVs(projectID)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]submissionResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, toSubmissionResponse(s))
	}
	writeJSON(w, http.StatusOK, out)
}
