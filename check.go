package derivative

import (
	"fmt"
)

// A LengthMismatchError is the value an estimator panics with when its x
// and y tables have different lengths.
type LengthMismatchError struct {
	NX, NY int
}

func (e LengthMismatchError) Error() string {
	return fmt.Sprintf(
		"derivative: table has len(xs) = %d but len(ys) = %d", e.NX, e.NY,
	)
}

// checkLengths is the only validation the estimators perform. Tables with
// repeated or out-of-order x values are not checked and show up as Inf or
// NaN in the results.
func checkLengths(xs, ys []float64) {
	if len(xs) != len(ys) {
		panic(LengthMismatchError{len(xs), len(ys)})
	}
}
