package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/diffkit-ml/diffkit/internal/tensor"
)

// Add performs element-wise addition. Shapes and dtypes must match.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	checkBinary("add", a, b)
	result := cpu.newResult("add", a.Shape(), a.DType())

	switch a.DType() {
	case tensor.Float32:
		addFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		floats.AddTo(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	}

	return result
}

// Sub performs element-wise subtraction.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	checkBinary("sub", a, b)
	result := cpu.newResult("sub", a.Shape(), a.DType())

	switch a.DType() {
	case tensor.Float32:
		subFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		floats.SubTo(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	}

	return result
}

// Mul performs element-wise multiplication.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	checkBinary("mul", a, b)
	result := cpu.newResult("mul", a.Shape(), a.DType())

	switch a.DType() {
	case tensor.Float32:
		mulFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		floats.MulTo(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	}

	return result
}

// Div performs element-wise division.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	checkBinary("div", a, b)
	result := cpu.newResult("div", a.Shape(), a.DType())

	switch a.DType() {
	case tensor.Float32:
		divFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		floats.DivTo(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	}

	return result
}

// Neg negates every element.
func (cpu *CPUBackend) Neg(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.Scale(x, -1)
}

// Scale multiplies every element by a scalar.
func (cpu *CPUBackend) Scale(x *tensor.RawTensor, s float64) *tensor.RawTensor {
	result := cpu.newResult("scale", x.Shape(), x.DType())

	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		f := float32(s)
		for i, v := range src {
			dst[i] = f * v
		}
	case tensor.Float64:
		floats.ScaleTo(result.AsFloat64(), s, x.AsFloat64())
	}

	return result
}

// Sum reduces the tensor to a zero-dimensional scalar.
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newResult("sum", tensor.Shape{}, x.DType())

	switch x.DType() {
	case tensor.Float32:
		var acc float32
		for _, v := range x.AsFloat32() {
			acc += v
		}
		result.AsFloat32()[0] = acc
	case tensor.Float64:
		result.AsFloat64()[0] = floats.Sum(x.AsFloat64())
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %s", x.DType()))
	}

	return result
}

// float32 kernels

func addFloat32(dst, a, b []float32) {
	for i := range a {
		dst[i] = a[i] + b[i]
	}
}

func subFloat32(dst, a, b []float32) {
	for i := range a {
		dst[i] = a[i] - b[i]
	}
}

func mulFloat32(dst, a, b []float32) {
	for i := range a {
		dst[i] = a[i] * b[i]
	}
}

func divFloat32(dst, a, b []float32) {
	for i := range a {
		dst[i] = a[i] / b[i]
	}
}
