// Package carbon estimates blue-carbon sequestration from canopy imagery
// and field measurements. Estimation runs before submission, on the relay
// side; the registry core only ever sees the resulting claimed quantity.
package carbon

import (
	"encoding/json"
	"math"

	dErrors "bluecarbon/pkg/domain-errors"
)

// Mangrove factors for the simple canopy-based methodology.
const (
	// carbonContentRatio is the carbon share of above-ground biomass.
	carbonContentRatio = 0.47

	// co2ConversionFactor converts elemental carbon to CO2 equivalent
	// (molecular weight ratio 44/12).
	co2ConversionFactor = 3.67

	// belowGroundFactor adds root carbon on top of the above-ground
	// estimate.
	belowGroundFactor = 1.2
)

// Measurement is the structured part of an MRV evidence package.
type Measurement struct {
	CanopyAreaM2          float64 `json:"canopy_area_m2"`
	AvgBiomassDensityKgM2 float64 `json:"avg_biomass_density_kg_m2"`
}

// Estimate is the carbon calculation derived from one measurement.
type Estimate struct {
	CanopyAreaM2            float64 `json:"canopy_area_m2"`
	AvgDensityKgM2          float64 `json:"avg_density_kg_m2"`
	AboveGroundBiomassKg    float64 `json:"above_ground_biomass_kg"`
	CarbonKg                float64 `json:"carbon_kg"`
	CO2Tonnes               float64 `json:"co2_tonnes"`
	TotalCO2TonnesWithRoots float64 `json:"total_co2_tonnes_with_roots"`
	Methodology             string  `json:"methodology"`
}

// FromCanopy estimates sequestered CO2 from canopy cover area and average
// biomass density.
//
// Errors: CodeInvalidInput when either input is non-positive or non-finite.
func FromCanopy(canopyAreaM2, avgDensityKgM2 float64) (Estimate, error) {
	if !(canopyAreaM2 > 0) || math.IsInf(canopyAreaM2, 1) {
		return Estimate{}, dErrors.New(dErrors.CodeInvalidInput, "canopy area must be positive")
	}
	if !(avgDensityKgM2 > 0) || math.IsInf(avgDensityKgM2, 1) {
		return Estimate{}, dErrors.New(dErrors.CodeInvalidInput, "biomass density must be positive")
	}

	biomassKg := canopyAreaM2 * avgDensityKgM2
	carbonKg := biomassKg * carbonContentRatio
	co2Tonnes := carbonKg * co2ConversionFactor / 1000

	return Estimate{
		CanopyAreaM2:            canopyAreaM2,
		AvgDensityKgM2:          avgDensityKgM2,
		AboveGroundBiomassKg:    biomassKg,
		CarbonKg:                carbonKg,
		CO2Tonnes:               co2Tonnes,
		TotalCO2TonnesWithRoots: co2Tonnes * belowGroundFactor,
		Methodology:             "Simple canopy-based estimation with root factor",
	}, nil
}

// FromPackage parses the structured measurement out of an evidence payload
// and estimates from it.
func FromPackage(data []byte) (Estimate, error) {
	var m Measurement
	if err := json.Unmarshal(data, &m); err != nil {
		return Estimate{}, dErrors.Wrap(dErrors.CodeInvalidInput, "malformed measurement payload", err)
	}
	return FromCanopy(m.CanopyAreaM2, m.AvgBiomassDensityKgM2)
}

// ClaimedTonnes converts an estimate into the whole-tonne claimed quantity
// a submission carries, rounding down so claims never exceed the estimate.
func (e Estimate) ClaimedTonnes() uint64 {
	if e.TotalCO2TonnesWithRoots <= 0 {
		return 0
	}
	return uint64(math.Floor(e.TotalCO2TonnesWithRoots))
}
