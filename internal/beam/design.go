package beam

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gobeam/internal/aci"
)

// Beam represents a uniformly loaded rectangular beam section to be
// designed by the simplified strength method.
type Beam struct {
	// Support condition
	Variant Variant

	// Loading
	W float64 // uniform factored load (kN/m)
	L float64 // span (m)

	// Geometry (mm)
	Width          float64 // b - beam width
	EffectiveDepth float64 // d - effective depth to centroid of tension steel

	// Materials (MPa)
	Fc float64 // f'c - concrete compressive strength
	Fy float64 // fy - steel yield strength
}

// New creates a beam for the given support condition, loading, section
// geometry and material strengths.
func New(variant Variant, w, span, width, depth, fc, fy float64) *Beam {
	return &Beam{
		Variant:        variant,
		W:              w,
		L:              span,
		Width:          width,
		EffectiveDepth: depth,
		Fc:             fc,
		Fy:             fy,
	}
}

// ShearStatus reports whether the concrete section alone carries the
// design shear.
type ShearStatus int

const (
	// ShearSafe means φVc ≥ Vu: the concrete section needs no stirrups
	// by this check.
	ShearSafe ShearStatus = iota

	// StirrupsRequired means φVc < Vu: shear reinforcement must be
	// provided.
	StirrupsRequired
)

func (s ShearStatus) String() string {
	if s == ShearSafe {
		return "SAFE"
	}
	return "STIRRUPS REQUIRED"
}

// DesignResult holds the design quantities of one calculation. Values are
// rounded to two decimals, the precision results are reported at; the
// math behind them runs in full float64 precision.
type DesignResult struct {
	Mu          float64 // factored design moment (kN·m)
	As          float64 // required tension steel area (mm²)
	Vu          float64 // factored design shear (kN)
	PhiVc       float64 // design concrete shear capacity φVc (kN)
	ShearStatus ShearStatus
}

// Envelope returns the span mechanics for this beam's support condition
// and loading.
func (b *Beam) Envelope() (Envelope, error) {
	return NewEnvelope(b.Variant, b.W, b.L)
}

// Design computes the required flexural steel and checks shear adequacy.
//
// Flexure uses the simplified lever arm jd = 0.9d:
//
//	As = Mu·10⁶ / (φ·fy·0.9d)
//
// Width and f'c take no part in the flexure formula; they are carried on
// the input for the shear check and for interface symmetry.
//
// Shear compares Vu = w·L/2 (the simplified method's end reaction for
// all support conditions) against φVc = φ·0.17·√f'c·b·d/1000.
func (b *Beam) Design() (*DesignResult, error) {
	env, err := b.Envelope()
	if err != nil {
		return nil, err
	}
	if err := b.validateSection(); err != nil {
		return nil, err
	}

	mu := env.MaxMoment()
	as := mu * 1e6 / (aci.PhiFlexure * b.Fy * b.EffectiveDepth * aci.LeverArmRatio)

	vu := env.MaxShear()
	phiVc := aci.PhiShear * aci.ConcreteShear(b.Fc, b.Width, b.EffectiveDepth)

	status := StirrupsRequired
	if phiVc >= vu {
		status = ShearSafe
	}

	return &DesignResult{
		Mu:          round2(mu),
		As:          round2(as),
		Vu:          round2(vu),
		PhiVc:       round2(phiVc),
		ShearStatus: status,
	}, nil
}

func (b *Beam) validateSection() error {
	for _, v := range []float64{b.Width, b.EffectiveDepth, b.Fc, b.Fy} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: section and material values must be finite", ErrDomain)
		}
	}
	if b.Width <= 0 || b.EffectiveDepth <= 0 {
		return fmt.Errorf("%w: invalid beam dimensions: width=%.2f, d=%.2f", ErrDomain, b.Width, b.EffectiveDepth)
	}
	if b.Fc <= 0 || b.Fy <= 0 {
		return fmt.Errorf("%w: invalid material properties: f'c=%.2f, fy=%.2f", ErrDomain, b.Fc, b.Fy)
	}
	return nil
}

// round2 rounds to the 2-decimal reporting precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
