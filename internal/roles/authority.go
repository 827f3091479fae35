// Package roles is the capability table consulted before every privileged
// mutation. It holds named role memberships and nothing else; callers are
// expected to serialize mutations behind the core's single writer.
package roles

import (
	"bluecarbon/internal/eventlog"
	"bluecarbon/pkg/domain"
	dErrors "bluecarbon/pkg/domain-errors"
)

// Authority maintains the (role, account) membership set.
type Authority struct {
	members map[domain.Role]map[domain.AccountID]struct{}
	log     *eventlog.Log
}

// NewAuthority bootstraps the membership set. The designated admin holds
// Administrator, Issuer, and Verifier from the start, and the registry's
// service account holds Issuer so approvals can mint.
func NewAuthority(log *eventlog.Log, admin, registryAccount domain.AccountID) *Authority {
	a := &Authority{
		members: make(map[domain.Role]map[domain.AccountID]struct{}),
		log:     log,
	}
	for _, r := range []domain.Role{domain.RoleAdministrator, domain.RoleIssuer, domain.RoleVerifier} {
		a.put(r, admin)
		a.log.Append(eventlog.TypeRoleGranted, eventlog.RoleGranted{Role: r, Account: admin, GrantedBy: admin})
	}
	a.put(domain.RoleIssuer, registryAccount)
	a.log.Append(eventlog.TypeRoleGranted, eventlog.RoleGranted{Role: domain.RoleIssuer, Account: registryAccount, GrantedBy: admin})
	return a
}

// Grant adds account to role. Caller must hold Administrator. Granting an
// already-held role succeeds as a no-op and appends nothing, so the log
// stays a record of actual state changes.
func (a *Authority) Grant(caller domain.AccountID, role domain.Role, account domain.AccountID) error {
	if !role.IsValid() {
		return dErrors.New(dErrors.CodeInvalidInput, "unknown role")
	}
	if !a.Has(domain.RoleAdministrator, caller) {
		return dErrors.New(dErrors.CodeUnauthorized, "caller lacks administrator role")
	}
	if a.Has(role, account) {
		return nil
	}
	a.put(role, account)
	a.log.Append(eventlog.TypeRoleGranted, eventlog.RoleGranted{Role: role, Account: account, GrantedBy: caller})
	return nil
}

// Revoke removes account from role with the same authorization and
// idempotency rules as Grant.
func (a *Authority) Revoke(caller domain.AccountID, role domain.Role, account domain.AccountID) error {
	if !role.IsValid() {
		return dErrors.New(dErrors.CodeInvalidInput, "unknown role")
	}
	if !a.Has(domain.RoleAdministrator, caller) {
		return dErrors.New(dErrors.CodeUnauthorized, "caller lacks administrator role")
	}
	if !a.Has(role, account) {
		return nil
	}
	delete(a.members[role], account)
	a.log.Append(eventlog.TypeRoleRevoked, eventlog.RoleRevoked{Role: role, Account: account, RevokedBy: caller})
	return nil
}

// Has reports membership. Pure read, never fails.
func (a *Authority) Has(role domain.Role, account domain.AccountID) bool {
	_, ok := a.members[role][account]
	return ok
}

// GrantInternal records a role grant performed by the system itself, such
// as the ProjectOwner grant on first registration. No administrator gate
// and no log entry of its own: the outer operation's entry (for example
// ProjectRegistered, which carries the owner) implies the grant on replay,
// keeping the one-entry-per-operation rule intact.
func (a *Authority) GrantInternal(role domain.Role, account domain.AccountID) {
	if a.Has(role, account) {
		return
	}
	a.put(role, account)
}

func (a *Authority) put(role domain.Role, account domain.AccountID) {
	if a.members[role] == nil {
		a.members[role] = make(map[domain.AccountID]struct{})
	}
	a.members[role][account] = struct{}{}
}
