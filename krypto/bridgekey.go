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

package krypto

import (
	"github.com/fentec-project/gf2he/gf2"
	"github.com/fentec-project/gf2he/quad"
	"github.com/fentec-project/gf2he/sample"
)

// BridgeKey is a privileged derivation built from a PrivateKey: it holds
// the fixed randomness (R) and the per-call randomness (Rx, Ry) that gate
// derivation needs, plus the unary obfuscation tuples (gu1, gu2), which
// depend only on the PrivateKey and the fixed R and so are computed once.
//
// BridgeKey is not safe for concurrent use: XOR and AND both re-randomize
// Rx and Ry before deriving their evaluators.
type BridgeKey struct {
	pk  *PrivateKey
	n   int
	src sample.Source

	r gf2.Matrix

	rx, ry gf2.Matrix

	gu1, gu2 quad.Tuple
}

// NewBridgeKey derives a BridgeKey from pk, sampling the fixed matrix R and
// an initial Rx, Ry (immediately superseded by the re-randomization that
// XOR and AND each perform before use).
func NewBridgeKey(pk *PrivateKey, src sample.Source) (*BridgeKey, error) {
	n := pk.n
	r, err := gf2.NewRandomInvertibleMatrix(n, src)
	if err != nil {
		return nil, err
	}
	rx, err := gf2.NewRandomInvertibleMatrix(n, src)
	if err != nil {
		return nil, err
	}
	ry, err := gf2.NewRandomInvertibleMatrix(n, src)
	if err != nil {
		return nil, err
	}

	bk := &BridgeKey{pk: pk, n: n, src: src, r: r, rx: rx, ry: ry}
	bk.gu1, bk.gu2 = bk.unaryTuples()
	return bk, nil
}

// unaryTuples derives g_u1 and g_u2. They depend only on f, M, Cu1, Cu2,
// and the fixed R — never on Rx or Ry — so BridgeKey computes them exactly
// once, at construction.
func (bk *BridgeKey) unaryTuples() (gu1, gu2 quad.Tuple) {
	pk := bk.pk
	f0, f1 := pk.f.Get(0), pk.f.Get(1)

	// The LMM derivation uses the bottom row-block of M^-1, not the top.
	matTop := pk.mInv.SplitV2(1)
	matBot := bk.r.Mul(matTop)
	gu1 = quad.AugV(f0.PreCompose(matTop), f0.PreCompose(matBot)).RMult(pk.cu1)

	cu1InvTop := pk.cu1Inv.SplitV2(0)
	cu1InvBot := pk.cu1Inv.SplitV2(1)
	gu2 = quad.AugV(f1.PreCompose(cu1InvTop), f1.PreCompose(cu1InvBot)).RMult(pk.cu2)

	return gu1, gu2
}

// resampleRxRy draws fresh uniform invertible Rx, Ry. XOR and AND each call
// this before deriving their evaluator, so that every gate evaluation uses
// independent randomness.
func (bk *BridgeKey) resampleRxRy() error {
	rx, err := gf2.NewRandomInvertibleMatrix(bk.n, bk.src)
	if err != nil {
		return err
	}
	ry, err := gf2.NewRandomInvertibleMatrix(bk.n, bk.src)
	if err != nil {
		return err
	}
	bk.rx, bk.ry = rx, ry
	return nil
}

// binaryTuples derives g_b1 and g_b2 from the current Rx, Ry. Callers must
// resampleRxRy first if they want these tuples built from freshly
// re-randomized values.
func (bk *BridgeKey) binaryTuples() (gb1, gb2 quad.Tuple) {
	pk := bk.pk
	n := bk.n
	f0, f1 := pk.f.Get(0), pk.f.Get(1)

	m2 := pk.mInv.SplitV2(1) // N x 2N
	zero2N := gf2.NewMatrix(n, 2*n)
	matTop := gf2.AugH(m2, zero2N)
	matMid := gf2.AugH(zero2N, m2)
	matBot := gf2.AugH(bk.rx, bk.ry).Mul(gf2.AugV(matTop, matMid)) // Rx*matTop ^ Ry*matMid
	gb1 = quad.AugV(f0.PreCompose(matTop), f0.PreCompose(matMid), f0.PreCompose(matBot)).RMult(pk.cb1)

	top := pk.cb1Inv.SplitV3(0)
	mid := pk.cb1Inv.SplitV3(1)
	bot := pk.cb1Inv.SplitV3(2)
	gb2 = quad.AugV(f1.PreCompose(top), f1.PreCompose(mid), f1.PreCompose(bot)).RMult(pk.cb2)

	return gb1, gb2
}

// LMMZ returns the 2N x 4N matrix Z parameterizing homomorphic left
// multiplication by K. K need not be invertible.
func (bk *BridgeKey) LMMZ(k gf2.Matrix) gf2.Matrix {
	if k.Rows() != bk.n || k.Cols() != bk.n {
		panic("krypto: LMMZ requires an N x N matrix")
	}
	pk := bk.pk
	n := bk.n
	zero := gf2.NewMatrix(n, n)
	id := gf2.Identity(n)

	x := pk.m.Mul(gf2.AugV(gf2.AugH(k, zero), gf2.AugH(zero, bk.r))).Mul(pk.mInv)
	y := pk.m.Mul(gf2.AugV(gf2.AugH(k, id), gf2.AugH(zero, zero))).Mul(pk.cu2Inv)
	return gf2.AugH(x, y)
}

// LeftShift returns the Z matrix for the left-shift-by-one-bit LMM.
func (bk *BridgeKey) LeftShift() gf2.Matrix {
	return bk.LMMZ(gf2.LeftShiftMatrix(bk.n))
}

// RightShift returns the Z matrix for the right-shift-by-one-bit LMM.
func (bk *BridgeKey) RightShift() gf2.Matrix {
	return bk.LMMZ(gf2.RightShiftMatrix(bk.n))
}

// LeftColumn returns the Z matrix for the LMM that projects bit 0 of the
// plaintext across every output bit.
func (bk *BridgeKey) LeftColumn() gf2.Matrix {
	return bk.LMMZ(gf2.ColumnMatrix(bk.n, 0))
}

// RightColumn returns the Z matrix for the LMM that projects bit N-1 of
// the plaintext across every output bit.
func (bk *BridgeKey) RightColumn() gf2.Matrix {
	return bk.LMMZ(gf2.ColumnMatrix(bk.n, bk.n-1))
}
