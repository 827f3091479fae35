// Package core composes the role authority, registry, and credit ledger
// behind a single writer. Every mutating call runs to completion under one
// exclusive lock, reproducing the globally-ordered atomic execution the
// component packages assume; pure reads run concurrently under the read
// lock against a consistent snapshot.
package core

import (
	"context"
	"math/big"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"bluecarbon/internal/eventlog"
	"bluecarbon/internal/ledger"
	"bluecarbon/internal/registry"
	"bluecarbon/internal/roles"
	"bluecarbon/pkg/domain"
	dErrors "bluecarbon/pkg/domain-errors"
)

// Node is the registry ledger state machine. All access goes through its
// methods; the embedded components are never handed out.
type Node struct {
	mu     sync.RWMutex
	paused bool

	roles    *roles.Authority
	registry *registry.Registry
	ledger   *ledger.Ledger
	log      *eventlog.Log

	tracer trace.Tracer
}

// NewNode bootstraps an empty state machine. admin receives Administrator,
// Issuer, and Verifier; registryAccount is the service identity whose
// Issuer capability lets approvals mint. clock may be nil for time.Now.
func NewNode(admin, registryAccount domain.AccountID, clock func() time.Time) *Node {
	log := eventlog.New(clock)
	auth := roles.NewAuthority(log, admin, registryAccount)
	led := ledger.New(auth, log)
	reg := registry.New(auth, led, log, registryAccount, clock)
	return &Node{
		roles:    auth,
		registry: reg,
		ledger:   led,
		log:      log,
		tracer:   otel.Tracer("bluecarbon/core"),
	}
}

// Log exposes the append-only chain for relays (durable sink, Kafka
// publisher, read-model projector) and auditors.
func (n *Node) Log() *eventlog.Log { return n.log }

func (n *Node) write(ctx context.Context, op string, fn func() error) error {
	_, span := n.tracer.Start(ctx, op)
	defer span.End()

	n.mu.Lock()
	defer n.mu.Unlock()
	err := fn()
	if err != nil {
		span.RecordError(err)
	}
	return err
}

func (n *Node) checkPaused() error {
	if n.paused {
		return dErrors.New(dErrors.CodePaused, "system is paused")
	}
	return nil
}

// Role authority operations.

// GrantRole adds account to role; Administrator only, idempotent.
func (n *Node) GrantRole(ctx context.Context, caller domain.AccountID, role domain.Role, account domain.AccountID) error {
	return n.write(ctx, "core.GrantRole", func() error {
		return n.roles.Grant(caller, role, account)
	})
}

// RevokeRole removes account from role; Administrator only, idempotent.
func (n *Node) RevokeRole(ctx context.Context, caller domain.AccountID, role domain.Role, account domain.AccountID) error {
	return n.write(ctx, "core.RevokeRole", func() error {
		return n.roles.Revoke(caller, role, account)
	})
}

// HasRole reports role membership. Never fails.
func (n *Node) HasRole(role domain.Role, account domain.AccountID) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.roles.Has(role, account)
}

// Registry operations.

// RegisterProject stores a new project owned by the caller.
func (n *Node) RegisterProject(ctx context.Context, caller domain.AccountID, name, description, boundaryLocator, metadataLocator string) (domain.ProjectID, error) {
	var id domain.ProjectID
	err := n.write(ctx, "core.RegisterProject", func() error {
		if err := n.checkPaused(); err != nil {
			return err
		}
		var err error
		id, err = n.registry.RegisterProject(caller, name, description, boundaryLocator, metadataLocator)
		return err
	})
	return id, err
}

// SubmitMRV records an evidence submission by the project owner.
func (n *Node) SubmitMRV(ctx context.Context, caller domain.AccountID, projectID domain.ProjectID, packageLocator string, claimedQuantity uint64) (domain.SubmissionID, error) {
	var id domain.SubmissionID
	err := n.write(ctx, "core.SubmitMRV", func() error {
		if err := n.checkPaused(); err != nil {
			return err
		}
		var err error
		id, err = n.registry.SubmitMRV(caller, projectID, packageLocator, claimedQuantity)
		return err
	})
	return id, err
}

// ApproveMRV approves a submission and mints to the project owner as one
// atomic unit; the nested mint runs inside the same write section.
func (n *Node) ApproveMRV(ctx context.Context, caller domain.AccountID, submissionID domain.SubmissionID, notes string) error {
	return n.write(ctx, "core.ApproveMRV", func() error {
		if err := n.checkPaused(); err != nil {
			return err
		}
		return n.registry.ApproveMRV(caller, submissionID, notes)
	})
}

// RejectMRV rejects a submission with a reason.
func (n *Node) RejectMRV(ctx context.Context, caller domain.AccountID, submissionID domain.SubmissionID, reason string) error {
	return n.write(ctx, "core.RejectMRV", func() error {
		if err := n.checkPaused(); err != nil {
			return err
		}
		return n.registry.RejectMRV(caller, submissionID, reason)
	})
}

// GetProject returns the project record.
func (n *Node) GetProject(id domain.ProjectID) (registry.Project, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.registry.GetProject(id)
}

// GetMRVSubmission returns the submission record.
func (n *Node) GetMRVSubmission(id domain.SubmissionID) (registry.MRVSubmission, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.registry.GetMRVSubmission(id)
}

// GetProjectMRVs returns the project's submissions in submission order.
func (n *Node) GetProjectMRVs(projectID domain.ProjectID) ([]registry.MRVSubmission, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.registry.GetProjectMRVs(projectID)
}

// Credit ledger operations.

// Mint credits amount to the recipient; Issuer only.
func (n *Node) Mint(ctx context.Context, caller, to domain.AccountID, amount *big.Int, provenanceLocator string) error {
	return n.write(ctx, "core.Mint", func() error {
		if err := n.checkPaused(); err != nil {
			return err
		}
		return n.ledger.Mint(caller, to, amount, provenanceLocator)
	})
}

// Transfer moves credits between accounts. Deliberately not pause-gated:
// holders keep control of already-issued credits while issuance and
// retirement are halted.
func (n *Node) Transfer(ctx context.Context, caller, to domain.AccountID, amount *big.Int) error {
	return n.write(ctx, "core.Transfer", func() error {
		return n.ledger.Transfer(caller, to, amount)
	})
}

// Retire permanently removes credits from the caller's balance.
func (n *Node) Retire(ctx context.Context, caller domain.AccountID, amount *big.Int, reason string) error {
	return n.write(ctx, "core.Retire", func() error {
		if err := n.checkPaused(); err != nil {
			return err
		}
		return n.ledger.Retire(caller, amount, reason)
	})
}

// BalanceOf returns the account's current balance.
func (n *Node) BalanceOf(account domain.AccountID) *big.Int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.ledger.BalanceOf(account)
}

// TotalRetired returns the global ever-retired counter.
func (n *Node) TotalRetired() *big.Int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.ledger.TotalRetired()
}

// RetiredByAccount returns the account's lifetime retired counter.
func (n *Node) RetiredByAccount(account domain.AccountID) *big.Int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.ledger.RetiredByAccount(account)
}

// Pause switch.

// Pause halts workflow mutations, minting, and retirement; reads and
// transfers stay available. Administrator only; pausing twice is a no-op.
func (n *Node) Pause(ctx context.Context, caller domain.AccountID) error {
	return n.write(ctx, "core.Pause", func() error {
		if !n.roles.Has(domain.RoleAdministrator, caller) {
			return dErrors.New(dErrors.CodeUnauthorized, "caller lacks administrator role")
		}
		if n.paused {
			return nil
		}
		n.paused = true
		n.log.Append(eventlog.TypeSystemPaused, eventlog.SystemPaused{By: caller})
		return nil
	})
}

// Unpause lifts the pause. Administrator only; idempotent.
func (n *Node) Unpause(ctx context.Context, caller domain.AccountID) error {
	return n.write(ctx, "core.Unpause", func() error {
		if !n.roles.Has(domain.RoleAdministrator, caller) {
			return dErrors.New(dErrors.CodeUnauthorized, "caller lacks administrator role")
		}
		if !n.paused {
			return nil
		}
		n.paused = false
		n.log.Append(eventlog.TypeSystemUnpaused, eventlog.SystemUnpaused{By: caller})
		return nil
	})
}

// Paused reports the pause switch state.
func (n *Node) Paused() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.paused
}
