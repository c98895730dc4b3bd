// Package grad provides gradient and Jacobian operators built on top of the
// reverse-mode engine in internal/autodiff.
//
// Arguments are passed as Values carrying an explicit differentiability
// flag: Var marks an argument as differentiable, Const pins it. Which
// arguments receive gradients is resolved once per Compute call, either
// from the flags or from an explicit argnum override.
package grad

import (
	"github.com/diffkit-ml/diffkit/internal/tensor"
)

// Value pairs a tensor with its differentiability flag.
type Value struct {
	Tensor       *tensor.RawTensor
	RequiresGrad bool
}

// Var wraps a tensor as a differentiable argument.
func Var(t *tensor.RawTensor) Value {
	return Value{Tensor: t, RequiresGrad: true}
}

// Const wraps a tensor as a fixed argument; no gradient is computed for it.
func Const(t *tensor.RawTensor) Value {
	return Value{Tensor: t, RequiresGrad: false}
}

// trainableArgnums resolves which argument positions receive gradients.
// An explicit override wins; otherwise the RequiresGrad flags decide.
func trainableArgnums(override []int, args []Value) []int {
	if override != nil {
		return override
	}
	var nums []int
	for i, a := range args {
		if a.RequiresGrad {
			nums = append(nums, i)
		}
	}
	return nums
}
