package tensor

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float64](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return Full[T, B](shape, 1, b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float64](Shape{3, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Scalar creates a zero-dimensional tensor holding a single value.
// Scalar inputs to the differentiation operators are represented this way.
func Scalar[T DType, B Backend](value T, b B) *Tensor[T, B] {
	return Full[T, B](Shape{}, value, b)
}

// ZerosLike creates a zero-filled RawTensor with the same shape, dtype, and
// device as the reference tensor.
func ZerosLike(r *RawTensor) *RawTensor {
	out, err := NewRaw(r.Shape(), r.DType(), r.Device())
	if err != nil {
		panic(err) // reference tensor shape is valid by construction
	}
	return out
}

// FullLike creates a RawTensor shaped like the reference, filled with v.
func FullLike(r *RawTensor, v float64) *RawTensor {
	out := ZerosLike(r)
	for i := 0; i < out.NumElements(); i++ {
		out.SetFloatAt(i, v)
	}
	return out
}
