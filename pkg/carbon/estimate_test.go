package carbon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "bluecarbon/pkg/domain-errors"
)

func TestFromCanopy(t *testing.T) {
	// 5000 m2 at 15.5 kg/m2: 77500 kg biomass, 36425 kg carbon,
	// 133.68 tCO2e above ground, 160.42 with roots.
	est, err := FromCanopy(5000, 15.5)
	require.NoError(t, err)

	assert.InDelta(t, 77500, est.AboveGroundBiomassKg, 1e-9)
	assert.InDelta(t, 36425, est.CarbonKg, 1e-9)
	assert.InDelta(t, 133.68, est.CO2Tonnes, 0.01)
	assert.InDelta(t, 160.42, est.TotalCO2TonnesWithRoots, 0.01)
	assert.Equal(t, uint64(160), est.ClaimedTonnes())
}

func TestFromCanopyRejectsBadInputs(t *testing.T) {
	cases := []struct {
		name    string
		area    float64
		density float64
	}{
		{"zero area", 0, 10},
		{"negative area", -1, 10},
		{"zero density", 100, 0},
		{"negative density", 100, -0.5},
		{"NaN area", math.NaN(), 10},
		{"infinite density", 100, math.Inf(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromCanopy(tc.area, tc.density)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		})
	}
}

func TestFromPackage(t *testing.T) {
	t.Run("parses measurement JSON", func(t *testing.T) {
		est, err := FromPackage([]byte(`{"canopy_area_m2":5000,"avg_biomass_density_kg_m2":15.5}`))
		require.NoError(t, err)
		assert.InDelta(t, 160.42, est.TotalCO2TonnesWithRoots, 0.01)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		_, err := FromPackage([]byte(`{`))
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		_, err := FromPackage([]byte(`{"canopy_area_m2":5000}`))
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func TestClaimedTonnesRoundsDown(t *testing.T) {
	est := Estimate{TotalCO2TonnesWithRoots: 99.999}
	assert.Equal(t, uint64(99), est.ClaimedTonnes())

	est = Estimate{TotalCO2TonnesWithRoots: 0.4}
	assert.Zero(t, est.ClaimedTonnes())
}
