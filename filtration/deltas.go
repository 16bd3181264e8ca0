// SPDX-License-Identifier: MIT

package filtration

// delta is an offset in {-1,0,1}^n with its precomputed flat lattice offset
// and its weight (number of non-zero components, i.e. the dimension of the
// cell it reaches from a vertex).
type delta struct {
	vec    []int
	flat   int
	weight int
}

// axisSteps is the per-axis enumeration order 0, -1, +1.
var axisSteps = [3]int{0, -1, 1}

// generateDeltas returns every vector of {-1,0,1}^n whose weight is at most
// maxWeight. Axis 0 varies fastest and each axis runs through 0, -1, +1;
// this order fixes how cells owned by the same vertex are numbered.
func generateDeltas(n, maxWeight int, strides []int) []delta {
	total := 1
	for i := 0; i < n; i++ {
		total *= 3
	}
	out := make([]delta, 0, total)
	digits := make([]int, n)
	for m := 0; m < total; m++ {
		rest := m
		w := 0
		for i := 0; i < n; i++ {
			digits[i] = axisSteps[rest%3]
			rest /= 3
			if digits[i] != 0 {
				w++
			}
		}
		if w > maxWeight {
			continue
		}
		d := delta{vec: make([]int, n), weight: w}
		for i, v := range digits {
			d.vec[i] = v
			d.flat += v * strides[i]
		}
		out = append(out, d)
	}
	return out
}

// unitDeltas returns the 2n deltas that move by ±1 along exactly one axis,
// in generateDeltas order.
func unitDeltas(n int, strides []int) []delta {
	all := generateDeltas(n, 1, strides)
	out := all[:0]
	for _, d := range all {
		if d.weight == 1 {
			out = append(out, d)
		}
	}
	return out
}
