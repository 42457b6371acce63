// Package config holds the error sentinels and small validation helpers
// shared by every built entity's config form (item, spf, ruleengine,
// compositefilter). Each of those packages defines its own config struct;
// this package only standardizes how "is this config well-formed" is
// reported, the way matrix/validators.go standardizes ValidateXxx helpers
// across the matrix package.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every package-specific config error.
// Callers that only care "was this config bad" can use errors.Is against
// this sentinel without knowing which package produced the error.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Invalidf wraps ErrInvalidConfig with a formatted, field-specific message.
// Complexity: O(1).
func Invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig)
}

// RequireFinite returns an error built by Invalidf if any of vs is NaN or
// ±Inf. name labels the offending field group in the error message.
func RequireFinite(name string, vs ...float64) error {
	for i, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Invalidf("%s[%d]=%v is not finite", name, i, v)
		}
	}
	return nil
}
