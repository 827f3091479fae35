package domain

import dErrors "bluecarbon/pkg/domain-errors"

// Role is a named capability checked before every privileged mutation.
type Role string

const (
	// RoleAdministrator may grant and revoke roles and flip the pause switch.
	RoleAdministrator Role = "administrator"

	// RoleIssuer may mint credits on the ledger. The registry's service
	// account holds it so approvals can mint.
	RoleIssuer Role = "issuer"

	// RoleVerifier may approve or reject MRV submissions.
	RoleVerifier Role = "verifier"

	// RoleProjectOwner is granted globally on first project registration.
	// Ownership checks still compare the caller to the project owner field;
	// the role exists for membership inspection, matching the reference.
	RoleProjectOwner Role = "project_owner"
)

var validRoles = map[Role]bool{
	RoleAdministrator: true,
	RoleIssuer:        true,
	RoleVerifier:      true,
	RoleProjectOwner:  true,
}

// ParseRole constructs a Role from external input, enforcing the allowlist.
func ParseRole(s string) (Role, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "role cannot be empty")
	}
	r := Role(s)
	if !validRoles[r] {
		return "", dErrors.New(dErrors.CodeInvalidInput, "unknown role: "+s)
	}
	return r, nil
}

// IsValid checks if the role is one of the supported values.
func (r Role) IsValid() bool { return validRoles[r] }

func (r Role) String() string { return string(r) }
