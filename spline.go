package derivative

type splineBounds struct {
	yp0, ypn       float64
	clamp0, clampN bool
}

// An Option changes the boundary conditions used by SecondDX. Without
// options SecondDX uses natural boundaries, fixing the second derivative to
// zero at both ends of the table.
type Option func(*splineBounds)

// LeftHint clamps the spline's first derivative at the first sample to yp0.
func LeftHint(yp0 float64) Option {
	return func(b *splineBounds) { b.yp0, b.clamp0 = yp0, true }
}

// RightHint clamps the spline's first derivative at the last sample to ypn.
func RightHint(ypn float64) Option {
	return func(b *splineBounds) { b.ypn, b.clampN = ypn, true }
}

// SecondDX returns the second derivative at each sample of the cubic spline
// through the table of x and y values. The spline's second derivative is
// continuous across samples, so the estimates solve a tridiagonal system,
// done here as a forward elimination over the interior samples followed by
// backward substitution.
func SecondDX(xs, ys []float64, opts ...Option) []float64 {
	checkLengths(xs, ys)

	b := new(splineBounds)
	for _, opt := range opts {
		opt(b)
	}

	n := len(xs)
	y2 := make([]float64, n)
	u := make([]float64, n)

	// Natural boundaries leave y2[0] = u[0] = 0.
	if b.clamp0 {
		y2[0] = -0.5
		u[0] = (3 / (xs[1] - xs[0])) *
			((ys[1]-ys[0])/(xs[1]-xs[0]) - b.yp0)
	}

	for i := 1; i < n-1; i++ {
		sig := (xs[i] - xs[i-1]) / (xs[i+1] - xs[i-1])
		p := sig*y2[i-1] + 2
		y2[i] = (sig - 1) / p
		u[i] = (ys[i+1]-ys[i])/(xs[i+1]-xs[i]) -
			(ys[i]-ys[i-1])/(xs[i]-xs[i-1])
		u[i] = (6*u[i]/(xs[i+1]-xs[i-1]) - sig*u[i-1]) / p
	}

	qn, un := 0.0, 0.0
	if b.clampN {
		qn = 0.5
		un = (3 / (xs[n-1] - xs[n-2])) *
			(b.ypn - (ys[n-1]-ys[n-2])/(xs[n-1]-xs[n-2]))
	}
	y2[n-1] = (un - qn*u[n-2]) / (qn*y2[n-2] + 1)

	for i := n - 2; i >= 0; i-- {
		y2[i] = y2[i]*y2[i+1] + u[i]
	}

	return y2
}

// Derivative2 is SecondDX under its historical name.
var Derivative2 = SecondDX
