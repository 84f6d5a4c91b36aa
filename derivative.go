/*Package derivative estimates first and second derivatives of discretely
sampled data.

Each estimator takes a table of x and y values sorted in increasing order in
x and returns one derivative estimate per sample. CentralDiff is the
recommended first-derivative estimator; ForwardDiff is cheaper but only
first-order accurate. SecondDX computes the second derivative of the cubic
spline through the samples.

Derivative1 and Derivative2 are the historical names of CentralDiff and
SecondDX and behave identically to them.
*/
package derivative

// ForwardDiff returns the slope of each sample's forward interval,
// (ys[i+1]-ys[i]) / (xs[i+1]-xs[i]). The last sample has no forward
// interval, so its estimate repeats the slope of the final interval.
func ForwardDiff(xs, ys []float64) []float64 {
	checkLengths(xs, ys)

	n := len(xs)
	out := make([]float64, n)
	for i := 0; i < n-1; i++ {
		out[i] = (ys[i+1] - ys[i]) / (xs[i+1] - xs[i])
	}
	out[n-1] = out[n-2]

	return out
}

// CentralDiff returns the slope of the secant through each sample's two
// neighbors, (ys[i+1]-ys[i-1]) / (xs[i+1]-xs[i-1]). The endpoints only have
// one neighbor each and fall back to the slope of their single interval.
func CentralDiff(xs, ys []float64) []float64 {
	checkLengths(xs, ys)

	n := len(xs)
	out := make([]float64, n)
	for i := 1; i < n-1; i++ {
		out[i] = (ys[i+1] - ys[i-1]) / (xs[i+1] - xs[i-1])
	}
	out[0] = (ys[1] - ys[0]) / (xs[1] - xs[0])
	out[n-1] = (ys[n-1] - ys[n-2]) / (xs[n-1] - xs[n-2])

	return out
}

// Derivative1 is CentralDiff under its historical name.
var Derivative1 = CentralDiff
