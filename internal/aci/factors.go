package aci

import "math"

// Simplified ACI 318 Strength Design Constants

const (
	// Strength reduction factors (ACI 318-19 Table 21.2.1)
	PhiFlexure = 0.90 // tension-controlled flexure
	PhiShear   = 0.75 // shear and torsion

	// LeverArmRatio is the assumed internal lever arm of the simplified
	// flexure formula, jd = 0.9d
	LeverArmRatio = 0.9

	// ShearCoefficient is the 0.17 in Vc = 0.17·√f'c·b·d for normal-weight
	// concrete (ACI 318-19 Eq. 22.5.5.1, SI units, λ = 1.0)
	ShearCoefficient = 0.17
)

// ConcreteShear calculates the nominal one-way shear capacity Vc of a
// rectangular section in kN, with b and d in mm and f'c in MPa.
// ACI 318-19 Eq. 22.5.5.1 (simplified, no axial load term).
// f'c must be non-negative; callers validate before invoking.
func ConcreteShear(fc, b, d float64) float64 {
	return ShearCoefficient * math.Sqrt(fc) * b * d / 1000
}
