// Package registry enforces the project and MRV submission workflow:
// registration, evidence submission by the project owner, and the terminal
// approve/reject decision that gates credit issuance. State is
// unsynchronized; the core node serializes every mutating call, and the
// approval path runs validate-then-commit so the nested mint and the
// status change land as one unit.
package registry

import (
	"math/big"
	"time"

	"bluecarbon/internal/eventlog"
	"bluecarbon/pkg/domain"
	dErrors "bluecarbon/pkg/domain-errors"
)

// RoleAuthority is the slice of the role table the registry needs.
type RoleAuthority interface {
	Has(role domain.Role, account domain.AccountID) bool
	GrantInternal(role domain.Role, account domain.AccountID)
}

// CreditMinter is the ledger surface the approval path depends on.
// CheckMint must validate everything Mint would reject, so that a Mint
// following a successful CheckMint cannot fail.
type CreditMinter interface {
	CheckMint(caller domain.AccountID, amount *big.Int) error
	Mint(caller, to domain.AccountID, amount *big.Int, provenanceLocator string) error
}

// Registry holds project and submission records plus a maintained
// per-project submission index.
type Registry struct {
	projects    map[domain.ProjectID]*Project
	submissions map[domain.SubmissionID]*MRVSubmission
	byProject   map[domain.ProjectID][]domain.SubmissionID

	nextProject    uint64
	nextSubmission uint64

	roles   RoleAuthority
	ledger  CreditMinter
	log     *eventlog.Log
	account domain.AccountID
	now     func() time.Time
}

// New builds an empty registry. account is the registry's own service
// identity, which must hold Issuer on the ledger for approvals to mint.
// clock may be nil, in which case time.Now is used.
func New(roles RoleAuthority, ledger CreditMinter, log *eventlog.Log, account domain.AccountID, clock func() time.Time) *Registry {
	if clock == nil {
		clock = time.Now
	}
	return &Registry{
		projects:    make(map[domain.ProjectID]*Project),
		submissions: make(map[domain.SubmissionID]*MRVSubmission),
		byProject:   make(map[domain.ProjectID][]domain.SubmissionID),
		roles:       roles,
		ledger:      ledger,
		log:         log,
		account:     account,
		now:         clock,
	}
}

// RegisterProject stores a new active project owned by the caller and
// grants the caller the global ProjectOwner role. Ids start at 1 and are
// never reused. Duplicate names are allowed.
func (r *Registry) RegisterProject(caller domain.AccountID, name, description, boundaryLocator, metadataLocator string) (domain.ProjectID, error) {
	if name == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "project name cannot be empty")
	}
	if description == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "project description cannot be empty")
	}

	r.nextProject++
	id := domain.ProjectID(r.nextProject)
	r.projects[id] = &Project{
		ID:              id,
		Name:            name,
		Description:     description,
		Owner:           caller,
		BoundaryLocator: boundaryLocator,
		MetadataLocator: metadataLocator,
		Active:          true,
		CreatedAt:       r.now(),
	}
	r.roles.GrantInternal(domain.RoleProjectOwner, caller)
	r.log.Append(eventlog.TypeProjectRegistered, eventlog.ProjectRegistered{
		ProjectID: id,
		Owner:     caller,
		Name:      name,
	})
	return id, nil
}

// SubmitMRV records an evidence submission against an active project. Only
// the project's current owner may submit, and the claimed quantity must be
// positive.
func (r *Registry) SubmitMRV(caller domain.AccountID, projectID domain.ProjectID, packageLocator string, claimedQuantity uint64) (domain.SubmissionID, error) {
	project, ok := r.projects[projectID]
	if !ok {
		return 0, dErrors.Newf(dErrors.CodeNotFound, "project %d does not exist", projectID)
	}
	if !project.Active {
		return 0, dErrors.Newf(dErrors.CodeProjectInactive, "project %d is inactive", projectID)
	}
	if caller != project.Owner {
		return 0, dErrors.New(dErrors.CodeUnauthorized, "caller is not the project owner")
	}
	if claimedQuantity == 0 {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "claimed quantity must be greater than zero")
	}

	r.nextSubmission++
	id := domain.SubmissionID(r.nextSubmission)
	r.submissions[id] = &MRVSubmission{
		ID:              id,
		ProjectID:       projectID,
		PackageLocator:  packageLocator,
		ClaimedQuantity: claimedQuantity,
		Status:          StatusSubmitted,
		SubmittedAt:     r.now(),
	}
	r.byProject[projectID] = append(r.byProject[projectID], id)
	r.log.Append(eventlog.TypeMRVSubmitted, eventlog.MRVSubmitted{
		SubmissionID:    id,
		ProjectID:       projectID,
		ClaimedQuantity: claimedQuantity,
		PackageLocator:  packageLocator,
	})
	return id, nil
}

// ApproveMRV marks the submission approved and mints the claimed quantity
// (scaled to smallest units) to the project owner, as one indivisible
// operation. Every precondition, including the ledger-side issuer
// capability, is checked before the first mutation; if any fails the
// submission stays Submitted and no credits move.
func (r *Registry) ApproveMRV(caller domain.AccountID, submissionID domain.SubmissionID, notes string) error {
	sub, project, err := r.processable(caller, submissionID)
	if err != nil {
		return err
	}
	amount := domain.TonnesToUnits(sub.ClaimedQuantity)
	if err := r.ledger.CheckMint(r.account, amount); err != nil {
		return err
	}

	// Commit. The mint was fully validated above and the remaining effects
	// are plain assignments and log appends, so nothing here can fail.
	if err := r.ledger.Mint(r.account, project.Owner, amount, sub.PackageLocator); err != nil {
		return err
	}
	processedAt := r.now()
	sub.Status = StatusApproved
	sub.Verifier = caller
	sub.ProcessedAt = &processedAt
	sub.Notes = notes
	r.log.Append(eventlog.TypeMRVApproved, eventlog.MRVApproved{
		SubmissionID: submissionID,
		Verifier:     caller,
		MintedAmount: amount.String(),
	})
	return nil
}

// RejectMRV marks the submission rejected with the given reason. Same
// authorization and already-processed guards as approval; no ledger
// interaction.
func (r *Registry) RejectMRV(caller domain.AccountID, submissionID domain.SubmissionID, reason string) error {
	sub, _, err := r.processable(caller, submissionID)
	if err != nil {
		return err
	}

	processedAt := r.now()
	sub.Status = StatusRejected
	sub.Verifier = caller
	sub.ProcessedAt = &processedAt
	sub.Notes = reason
	r.log.Append(eventlog.TypeMRVRejected, eventlog.MRVRejected{
		SubmissionID: submissionID,
		Verifier:     caller,
		Reason:       reason,
	})
	return nil
}

// processable runs the shared approve/reject gates: verifier role,
// submission exists and is still Submitted, project still active.
func (r *Registry) processable(caller domain.AccountID, submissionID domain.SubmissionID) (*MRVSubmission, *Project, error) {
	if !r.roles.Has(domain.RoleVerifier, caller) {
		return nil, nil, dErrors.New(dErrors.CodeUnauthorized, "caller lacks verifier role")
	}
	sub, ok := r.submissions[submissionID]
	if !ok {
		return nil, nil, dErrors.Newf(dErrors.CodeNotFound, "submission %d does not exist", submissionID)
	}
	if sub.Status != StatusSubmitted {
		return nil, nil, dErrors.Newf(dErrors.CodeAlreadyProcessed, "submission %d already %s", submissionID, sub.Status)
	}
	project := r.projects[sub.ProjectID]
	if !project.Active {
		return nil, nil, dErrors.Newf(dErrors.CodeProjectInactive, "project %d is inactive", sub.ProjectID)
	}
	return sub, project, nil
}

// GetProject returns a copy of the project record.
func (r *Registry) GetProject(id domain.ProjectID) (Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return Project{}, dErrors.Newf(dErrors.CodeNotFound, "project %d does not exist", id)
	}
	return *p, nil
}

// GetMRVSubmission returns a copy of the submission record.
func (r *Registry) GetMRVSubmission(id domain.SubmissionID) (MRVSubmission, error) {
	s, ok := r.submissions[id]
	if !ok {
		return MRVSubmission{}, dErrors.Newf(dErrors.CodeNotFound, "submission %d does not exist", id)
	}
	return *s, nil
}

// GetProjectMRVs returns the project's submissions in ascending submission
// id order, served from the maintained per-project index.
func (r *Registry) GetProjectMRVs(projectID domain.ProjectID) ([]MRVSubmission, error) {
	if _, ok := r.projects[projectID]; !ok {
		return nil, dErrors.Newf(dErrors.CodeNotFound, "project %d does not exist", projectID)
	}
	ids := r.byProject[projectID]
	out := make([]MRVSubmission, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.submissions[id])
	}
	return out, nil
}
