package evidence

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "bluecarbon/pkg/domain-errors"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()
	fsStore, err := NewFS(t.TempDir())
	require.NoError(t, err)
	return map[string]Store{
		"memory": NewMemory(),
		"fs":     fsStore,
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	payload := []byte(`{"canopy_area_m2":5000,"avg_biomass_density_kg_m2":15.5}`)

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			locator, err := store.Put(ctx, payload)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(locator, "sha256:"))

			got, err := store.Get(ctx, locator)
			require.NoError(t, err)
			assert.Equal(t, payload, got)

			// Content addressing: same bytes, same locator.
			again, err := store.Put(ctx, payload)
			require.NoError(t, err)
			assert.Equal(t, locator, again)
		})
	}
}

func TestGetUnknownLocator(t *testing.T) {
	ctx := context.Background()
	missing := Locator([]byte("never stored"))

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(ctx, missing)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
		})
	}
}

func TestParseLocator(t *testing.T) {
	valid := Locator([]byte("x"))
	digest, err := ParseLocator(valid)
	require.NoError(t, err)
	assert.Len(t, digest, 64)

	for _, in := range []string{
		"",
		"sha256:",
		"sha256:zz",
		"md5:" + strings.Repeat("a", 64),
		strings.Repeat("a", 64),
		"sha256:" + strings.Repeat("g", 64),
	} {
		_, err := ParseLocator(in)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput), "input %q", in)
	}
}

func TestStoredPayloadIsImmutable(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	payload := []byte("original")
	locator, err := store.Put(ctx, payload)
	require.NoError(t, err)

	payload[0] = 'X'
	got, err := store.Get(ctx, locator)
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)

	got[0] = 'Y'
	again, _ := store.Get(ctx, locator)
	assert.Equal(t, []byte("original"), again)
}
