package fd

// Result is the constraint on values produced by a function under
// differentiation. Centered-difference estimators only ever combine function
// values linearly, so any type closed under addition, subtraction, and
// scalar multiplication can be differentiated: plain scalars, vectors, or
// composite numeric objects such as weighted operator sums.
type Result[R any] interface {
	Add(R) R
	Sub(R) R
	Scale(float64) R
}

// Scalar is a float64 Result for plain scalar-valued functions.
type Scalar float64

// Add returns s + o.
func (s Scalar) Add(o Scalar) Scalar { return s + o }

// Sub returns s - o.
func (s Scalar) Sub(o Scalar) Scalar { return s - o }

// Scale returns f * s.
func (s Scalar) Scale(f float64) Scalar { return Scalar(f * float64(s)) }

// Vec is a []float64 Result for vector-valued functions.
// All operands must have the same length.
type Vec []float64

// Add returns the element-wise sum v + o.
func (v Vec) Add(o Vec) Vec {
	out := make(Vec, len(v))
	for i := range v {
		out[i] = v[i] + o[i]
	}
	return out
}

// Sub returns the element-wise difference v - o.
func (v Vec) Sub(o Vec) Vec {
	out := make(Vec, len(v))
	for i := range v {
		out[i] = v[i] - o[i]
	}
	return out
}

// Scale returns f * v element-wise.
func (v Vec) Scale(f float64) Vec {
	out := make(Vec, len(v))
	for i := range v {
		out[i] = f * v[i]
	}
	return out
}
