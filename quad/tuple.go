/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package quad

import (
	"github.com/fentec-project/gf2he/gf2"
	"github.com/fentec-project/gf2he/sample"
)

// TriNum returns the number of unordered index pairs (i,j), i<=j<n,
// equivalently the number of entries in the triangular coefficient table of
// a single homogeneous quadratic form in n variables over GF(2).
func TriNum(n int) int {
	return n * (n + 1) / 2
}

// TriIndex maps an unordered pair (i,j), 0<=i,j<n, to its offset in the
// triangular table TriNum(n) describes the size of, row-major over i<=j.
// Exported so callers assembling a contribution matrix for SetContributions
// (such as the AND gate's z tuple) can place entries without reimplementing
// the layout.
func TriIndex(n, i, j int) int {
	if i > j {
		i, j = j, i
	}
	return i*n - i*(i-1)/2 + (j - i)
}

// Tuple is a MultiQuadTuple: `out` homogeneous quadratic forms in the same
// `in` variables over GF(2). Each form's coefficients occupy one row of
// coef, packed into the triangular layout TriIndex describes.
type Tuple struct {
	in, out int
	coef    gf2.Matrix
}

// NewTuple returns the zero Tuple of the given input and output widths,
// i.e. the tuple whose every form is identically zero.
func NewTuple(in, out int) Tuple {
	return Tuple{in: in, out: out, coef: gf2.NewMatrix(out, TriNum(in))}
}

// NewRandomTuple returns a Tuple of the given shape with coefficients drawn
// uniformly at random from src.
func NewRandomTuple(in, out int, src sample.Source) (Tuple, error) {
	coef, err := gf2.NewRandomMatrix(out, TriNum(in), src)
	if err != nil {
		return Tuple{}, err
	}
	return Tuple{in: in, out: out, coef: coef}, nil
}

// In returns the tuple's input width.
func (t Tuple) In() int {
	return t.in
}

// Out returns the tuple's output width.
func (t Tuple) Out() int {
	return t.out
}

// Coefficient reports the coefficient of x_i*x_j (i==j for the diagonal
// term x_i) in output form k.
func (t Tuple) Coefficient(k, i, j int) bool {
	return t.coef.Get(k, TriIndex(t.in, i, j))
}

// Eval evaluates the tuple at x, returning the out-length result.
func (t Tuple) Eval(x gf2.Vector) gf2.Vector {
	if x.Len() != t.in {
		panic("quad: eval input width mismatch")
	}
	out := gf2.NewVector(t.out)
	for k := 0; k < t.out; k++ {
		var acc bool
		for i := 0; i < t.in; i++ {
			if !x.Get(i) {
				continue
			}
			for j := i; j < t.in; j++ {
				if x.Get(j) && t.coef.Get(k, TriIndex(t.in, i, j)) {
					acc = !acc
				}
			}
		}
		if acc {
			out.Set(k, true)
		}
	}
	return out
}

// RMult post-composes t with the linear map M, producing the tuple
// x -> M*t(x) where M is newOut x out: component kp of the result is the
// XOR of t's components k for which M.Get(kp,k) is set.
func (t Tuple) RMult(M gf2.Matrix) Tuple {
	if M.Cols() != t.out {
		panic("quad: rmult matrix column count must match tuple output width")
	}
	newOut := M.Rows()
	rows := make([]gf2.Vector, newOut)
	for kp := 0; kp < newOut; kp++ {
		row := gf2.NewVector(TriNum(t.in))
		for k := 0; k < t.out; k++ {
			if M.Get(kp, k) {
				row = row.Xor(t.coef.Row(k))
			}
		}
		rows[kp] = row
	}
	return Tuple{in: t.in, out: newOut, coef: gf2.FromRows(rows)}
}

// PreCompose substitutes x = M*y for t's input, producing the tuple
// y -> t(M*y). M has t.in rows and newIn columns (one column per new
// variable), so that M*y has length t.in.
//
// Note the row/column order: M is in x newIn, not newIn x in. Bridge-key
// derivation precomposes tuples with matrices like matTop (an in x newIn
// matrix used as f0 ∘ matTop) that only type-check under this convention.
// See DESIGN.md.
func (t Tuple) PreCompose(M gf2.Matrix) Tuple {
	if M.Rows() != t.in {
		panic("quad: precompose matrix row count must match tuple input width")
	}
	newIn := M.Cols()
	rows := make([]gf2.Vector, t.in)
	for i := 0; i < t.in; i++ {
		rows[i] = M.Row(i)
	}

	newCoef := gf2.NewMatrix(t.out, TriNum(newIn))
	for k := 0; k < t.out; k++ {
		dst := gf2.NewVector(TriNum(newIn))
		for i := 0; i < t.in; i++ {
			for j := i; j < t.in; j++ {
				if !t.coef.Get(k, TriIndex(t.in, i, j)) {
					continue
				}
				if i == j {
					// x_i*x_i = x_i in GF(2): the term is linear in x_i's
					// expansion, so it lands on the diagonal entries of the
					// new table.
					for a := 0; a < newIn; a++ {
						if rows[i].Get(a) {
							idx := TriIndex(newIn, a, a)
							dst.Set(idx, !dst.Get(idx))
						}
					}
				} else {
					for a := 0; a < newIn; a++ {
						if !rows[i].Get(a) {
							continue
						}
						for b := 0; b < newIn; b++ {
							if !rows[j].Get(b) {
								continue
							}
							idx := TriIndex(newIn, a, b)
							dst.Set(idx, !dst.Get(idx))
						}
					}
				}
			}
		}
		newCoef.SetRow(k, dst)
	}
	return Tuple{in: newIn, out: t.out, coef: newCoef}
}

// AugV vertically augments tuples sharing the same input width, stacking
// their output forms into one wider-output tuple.
func AugV(tuples ...Tuple) Tuple {
	if len(tuples) == 0 {
		panic("quad: AugV requires at least one tuple")
	}
	in := tuples[0].in
	mats := make([]gf2.Matrix, len(tuples))
	out := 0
	for i, t := range tuples {
		if t.in != in {
			panic("quad: AugV requires tuples with equal input width")
		}
		mats[i] = t.coef
		out += t.out
	}
	return Tuple{in: in, out: out, coef: gf2.AugV(mats...)}
}

// SetContributions overwrites every coefficient of t from contrib, a matrix
// laid out with one row per triangular index (see TriNum) and one column
// per output form — the transpose of t's own internal layout, matching how
// the AND gate's z tuple is assembled by row-block. When constant is true,
// every assigned bit is flipped before being stored.
func (t Tuple) SetContributions(contrib gf2.Matrix, constant bool) {
	if contrib.Rows() != TriNum(t.in) || contrib.Cols() != t.out {
		panic("quad: setContributions matrix shape mismatch")
	}
	for k := 0; k < t.out; k++ {
		row := gf2.NewVector(TriNum(t.in))
		for idx := 0; idx < contrib.Rows(); idx++ {
			bit := contrib.Get(idx, k)
			if constant {
				bit = !bit
			}
			if bit {
				row.Set(idx, true)
			}
		}
		t.coef.SetRow(k, row)
	}
}
