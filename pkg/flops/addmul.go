package flops

import (
	"math"
)

// Reference operands for the add-mul kernel. Both are exactly representable
// binary fractions (3 + 2^-19 and 2^-20), so the iterated accumulators and
// the closed-form expectations round identically and the residual stays at
// zero instead of drifting with the loop count.
const (
	ReferenceAdd = 3.0000019073486328125
	ReferenceMul = 9.5367431640625e-7
)

// AddMul executes ops elementary floating-point operations as a mix of
// additions and multiplications and returns the residual against the
// analytically expected result. A residual near zero means the loop really
// performed the arithmetic it was asked to; anything large means the
// computation (or an overly clever optimisation) went wrong.
//
// The loop keeps five additive and five multiplicative accumulator chains
// live at once. The chains are independent on purpose: a single chain would
// measure FP latency, while independent chains expose instruction-level
// parallelism and measure throughput. Collapsing them changes what is being
// measured, not just the code shape.
func AddMul(add, mul float64, ops int64) float64 {
	// Seeds must differ and be nonzero, otherwise the chains are
	// algebraically identical and fair game for the compiler to merge.
	sum1, sum2, sum3, sum4, sum5 := 0.125, -0.125, 0.0625, -0.0625, 0.0
	mul1, mul2, mul3, mul4, mul5 := 1/2e1, 1/2e2, 1/2e3, 1/2e4, 1/2e5

	// 10 floating-point ops per iteration.
	loops := ops / 10

	// Each additive chain gains exactly `add` per iteration; each
	// multiplicative chain is scaled by `mul` per iteration, so its final
	// value is seed*mul^loops and the common factor can be pulled out of
	// the sum.
	expectedSum := 5.0*add*float64(loops) + (sum1 + sum2 + sum3 + sum4 + sum5)
	expectedMul := math.Pow(mul, float64(loops)) * (mul1 + mul2 + mul3 + mul4 + mul5)

	for i := int64(0); i < loops; i++ {
		mul1 *= mul
		mul2 *= mul
		mul3 *= mul
		mul4 *= mul
		mul5 *= mul
		sum1 += add
		sum2 += add
		sum3 += add
		sum4 += add
		sum5 += add
	}

	resSum := sum1 + sum2 + sum3 + sum4 + sum5 - expectedSum
	resMul := mul1 + mul2 + mul3 + mul4 + mul5 - expectedMul
	return resSum + resMul
}
