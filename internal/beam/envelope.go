package beam

import (
	"fmt"
	"math"
)

// Envelope is the span mechanics of a uniformly loaded beam: the design
// moment and shear, and the V(x)/M(x) distributions used for plotting.
// Every consumer (section design, diagrams, reports, batch) reads from
// here, so the formulas live in exactly one place.
//
// The distribution shapes are the simplified ones of the source method,
// not exact indeterminate solutions: Fixed End and Overhang reuse the
// simply supported shear line and change only the moment denominator.
type Envelope struct {
	Variant Variant
	W       float64 // uniform load (kN/m)
	L       float64 // span (m)
}

// NewEnvelope validates the load case and returns its envelope.
func NewEnvelope(v Variant, w, span float64) (Envelope, error) {
	if math.IsNaN(span) || math.IsInf(span, 0) || span <= 0 {
		return Envelope{}, fmt.Errorf("%w: L=%v m", ErrSpan, span)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return Envelope{}, fmt.Errorf("%w: uniform load w=%v kN/m must be finite and non-negative", ErrDomain, w)
	}
	return Envelope{Variant: v, W: w, L: span}, nil
}

// MaxMoment returns the design moment Mu in kN·m.
//
// A Variant outside the supported set yields zero instead of failing;
// ParseVariant guards the string boundary, so a zero here signals a
// caller bug rather than bad user input.
func (e Envelope) MaxMoment() float64 {
	switch e.Variant {
	case SimplySupported:
		return e.W * e.L * e.L / 8
	case FixedEnd:
		return e.W * e.L * e.L / 12
	case Cantilever:
		return e.W * e.L * e.L / 2
	case Overhang:
		return e.W * e.L * e.L / 10
	}
	return 0
}

// MaxShear returns the design shear Vu in kN. The simplified method takes
// the simply supported end reaction w·L/2 for every support condition.
func (e Envelope) MaxShear() float64 {
	switch e.Variant {
	case SimplySupported, FixedEnd, Cantilever, Overhang:
		return e.W * e.L / 2
	}
	return 0
}

// ShearAt returns V(x) in kN for a station x in [0, L].
func (e Envelope) ShearAt(x float64) float64 {
	switch e.Variant {
	case SimplySupported, FixedEnd, Overhang:
		return e.W * (e.L/2 - x)
	case Cantilever:
		return e.W * (e.L - x)
	}
	return 0
}

// MomentAt returns M(x) in kN·m for a station x in [0, L].
func (e Envelope) MomentAt(x float64) float64 {
	switch e.Variant {
	case SimplySupported:
		return e.W * x * (e.L - x) / 2
	case FixedEnd:
		return e.W * x * (e.L - x) / 12
	case Cantilever:
		return e.W * (e.L - x) * (e.L - x) / 2
	case Overhang:
		return e.W * x * (e.L - x) / 10
	}
	return 0
}

// Sample evaluates the shear and moment distributions at n evenly spaced
// stations from 0 to L inclusive. n values below 2 are raised to 2 so the
// two ends are always present.
func (e Envelope) Sample(n int) (xs, shears, moments []float64) {
	if n < 2 {
		n = 2
	}
	xs = make([]float64, n)
	shears = make([]float64, n)
	moments = make([]float64, n)
	step := e.L / float64(n-1)
	for i := range xs {
		x := float64(i) * step
		xs[i] = x
		shears[i] = e.ShearAt(x)
		moments[i] = e.MomentAt(x)
	}
	return xs, shears, moments
}
