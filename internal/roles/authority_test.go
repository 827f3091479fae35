package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bluecarbon/internal/eventlog"
	"bluecarbon/pkg/domain"
	dErrors "bluecarbon/pkg/domain-errors"
)

const (
	admin    = domain.AccountID("admin")
	registry = domain.AccountID("registry")
	alice    = domain.AccountID("alice")
	bob      = domain.AccountID("bob")
)

func newAuthority() (*Authority, *eventlog.Log) {
	log := eventlog.New(nil)
	return NewAuthority(log, admin, registry), log
}

func TestBootstrapMemberships(t *testing.T) {
	a, log := newAuthority()

	assert.True(t, a.Has(domain.RoleAdministrator, admin))
	assert.True(t, a.Has(domain.RoleIssuer, admin))
	assert.True(t, a.Has(domain.RoleVerifier, admin))
	assert.True(t, a.Has(domain.RoleIssuer, registry))
	assert.False(t, a.Has(domain.RoleProjectOwner, admin))

	// Bootstrap grants are replayable from the log.
	assert.Equal(t, int64(4), log.Len())
}

func TestGrant(t *testing.T) {
	t.Run("admin can grant", func(t *testing.T) {
		a, log := newAuthority()
		before := log.Len()
		require.NoError(t, a.Grant(admin, domain.RoleVerifier, alice))
		assert.True(t, a.Has(domain.RoleVerifier, alice))
		assert.Equal(t, before+1, log.Len())
	})

	t.Run("non-admin cannot grant", func(t *testing.T) {
		a, _ := newAuthority()
		err := a.Grant(alice, domain.RoleVerifier, bob)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
		assert.False(t, a.Has(domain.RoleVerifier, bob))
	})

	t.Run("redundant grant is a silent no-op", func(t *testing.T) {
		a, log := newAuthority()
		require.NoError(t, a.Grant(admin, domain.RoleVerifier, alice))
		before := log.Len()
		require.NoError(t, a.Grant(admin, domain.RoleVerifier, alice))
		assert.Equal(t, before, log.Len())
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		a, _ := newAuthority()
		err := a.Grant(admin, domain.Role("superuser"), alice)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func TestRevoke(t *testing.T) {
	t.Run("admin can revoke", func(t *testing.T) {
		a, _ := newAuthority()
		require.NoError(t, a.Grant(admin, domain.RoleIssuer, alice))
		require.NoError(t, a.Revoke(admin, domain.RoleIssuer, alice))
		assert.False(t, a.Has(domain.RoleIssuer, alice))
	})

	t.Run("revoking an absent role is a no-op", func(t *testing.T) {
		a, log := newAuthority()
		before := log.Len()
		require.NoError(t, a.Revoke(admin, domain.RoleIssuer, bob))
		assert.Equal(t, before, log.Len())
	})

	t.Run("non-admin cannot revoke", func(t *testing.T) {
		a, _ := newAuthority()
		err := a.Revoke(bob, domain.RoleIssuer, admin)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
		assert.True(t, a.Has(domain.RoleIssuer, admin))
	})

	t.Run("admin can revoke its own administrator role", func(t *testing.T) {
		a, _ := newAuthority()
		require.NoError(t, a.Revoke(admin, domain.RoleAdministrator, admin))
		// Once gone, further grants are locked out.
		err := a.Grant(admin, domain.RoleVerifier, alice)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}

func TestGrantInternal(t *testing.T) {
	a, log := newAuthority()
	before := log.Len()

	a.GrantInternal(domain.RoleProjectOwner, alice)
	assert.True(t, a.Has(domain.RoleProjectOwner, alice))
	// Implied by the outer operation's entry; no entry of its own.
	assert.Equal(t, before, log.Len())

	a.GrantInternal(domain.RoleProjectOwner, alice)
	assert.True(t, a.Has(domain.RoleProjectOwner, alice))
}
