package beam

import (
	"fmt"
	"strings"
)

// Variant identifies the support condition of a uniformly loaded beam.
// The closed-form envelope formulas are keyed to this value.
type Variant int

const (
	SimplySupported Variant = iota
	FixedEnd
	Cantilever
	Overhang
)

// Variants lists the supported conditions in display order.
func Variants() []Variant {
	return []Variant{SimplySupported, FixedEnd, Cantilever, Overhang}
}

// String returns the display name. These names are the contract surface
// shared by the CLI, the HTTP API and the spreadsheet batch format.
func (v Variant) String() string {
	switch v {
	case SimplySupported:
		return "Simply Supported"
	case FixedEnd:
		return "Fixed End"
	case Cantilever:
		return "Cantilever"
	case Overhang:
		return "Overhang"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant maps a display name to its Variant. Matching ignores case
// and surrounding whitespace; anything outside the four supported names
// is rejected here, at the string boundary, so the numeric model never
// sees free-form input.
func ParseVariant(s string) (Variant, error) {
	name := strings.TrimSpace(s)
	for _, v := range Variants() {
		if strings.EqualFold(name, v.String()) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want one of: %s)", ErrUnknownVariant, s, variantNames())
}

func variantNames() string {
	names := make([]string, 0, 4)
	for _, v := range Variants() {
		names = append(names, v.String())
	}
	return strings.Join(names, ", ")
}
