package registry

import (
	"time"

	"bluecarbon/pkg/domain"
)

// SubmissionStatus is the one-way workflow state of an MRV submission.
type SubmissionStatus string

const (
	StatusSubmitted SubmissionStatus = "submitted"
	StatusApproved  SubmissionStatus = "approved"
	StatusRejected  SubmissionStatus = "rejected"
)

// Project is a registered conservation site. Projects are never deleted;
// Active gates further submissions.
type Project struct {
	ID              domain.ProjectID
	Name            string
	Description     string
	Owner           domain.AccountID
	BoundaryLocator string
	MetadataLocator string
	Active          bool
	CreatedAt       time.Time
}

// MRVSubmission is one evidence package claiming a sequestered quantity
// against a project, awaiting a verifier decision. ClaimedQuantity is in
// whole tonnes CO2e; the ledger amount is ClaimedQuantity scaled by
// domain.CreditScale.
type MRVSubmission struct {
	ID              domain.SubmissionID
	ProjectID       domain.ProjectID
	PackageLocator  string
	ClaimedQuantity uint64
	Status          SubmissionStatus
	Verifier        domain.AccountID
	SubmittedAt     time.Time
	ProcessedAt     *time.Time
	Notes           string
}
