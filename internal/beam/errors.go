package beam

import "errors"

// Validation sentinels. Failure sites wrap these with context via
// fmt.Errorf and %w; callers branch with errors.Is.
var (
	// ErrUnknownVariant reports a beam type outside the supported set.
	ErrUnknownVariant = errors.New("unknown beam type")

	// ErrSpan reports a non-positive span, which leaves no geometry to
	// design or plot.
	ErrSpan = errors.New("span must be positive")

	// ErrDomain reports section, material or loading values that put the
	// design formulas outside their mathematical domain: a negative f'c
	// under the square root, a zero depth or yield strength in a divisor,
	// or a non-finite input.
	ErrDomain = errors.New("input outside formula domain")
)
