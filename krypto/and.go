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
)

// AndEvaluator homomorphically evaluates bitwise AND on ciphertexts. It is
// immutable and safe to share and reuse once produced by BridgeKey.AND.
type AndEvaluator struct {
	n        int
	mb       gf2.Matrix
	my3      gf2.Matrix
	z1, z2   gf2.Matrix
	z        quad.Tuple
	gb1, gb2 quad.Tuple
}

// AND derives a fresh AndEvaluator, re-randomizing Rx, Ry first.
func (bk *BridgeKey) AND() (*AndEvaluator, error) {
	if err := bk.resampleRxRy(); err != nil {
		return nil, err
	}
	gb1, gb2 := bk.binaryTuples()

	pk := bk.pk
	n := bk.n

	x := gf2.AugH(gf2.Identity(n), gf2.NewMatrix(n, n)).Mul(pk.mInv)
	y1 := pk.cb2Inv.SplitV3(0)
	y2 := pk.cb2Inv.SplitV3(1)

	z := quad.NewTuple(7*n, n)
	z.SetContributions(andContributions(n, x, y1, y2), false)

	mb := pk.m.SplitH2(0)
	my3 := pk.m.Mul(gf2.AugV(pk.cb2Inv.SplitV3(2), gf2.NewMatrix(n, 3*n)))
	z1 := pk.m.Mul(gf2.AugV(gf2.NewMatrix(n, 2*n), bk.rx.Mul(pk.mInv.SplitV2(1))))
	z2 := pk.m.Mul(gf2.AugV(gf2.NewMatrix(n, 2*n), bk.ry.Mul(pk.mInv.SplitV2(1))))

	return &AndEvaluator{n: n, mb: mb, my3: my3, z1: z1, z2: z2, z: z, gb1: gb1, gb2: gb2}, nil
}

// andContributions builds the (7n(7n+1)/2) x n coefficient table for z. x is
// N x 2N; y1, y2 are N x 3N. The table is assembled directly by triangular
// index rather than through separate P/Q/S buffers: gating each entry on
// its level condition is an optimization, not a semantic requirement, since
// every entry below is computed unconditionally and an unsatisfied gate
// simply contributes a zero bit.
func andContributions(n int, x, y1, y2 gf2.Matrix) gf2.Matrix {
	width := 7 * n
	contrib := gf2.NewMatrix(quad.TriNum(width), n)
	set := func(i, j, k int, bit bool) {
		if bit {
			contrib.Set(quad.TriIndex(width, i, j), k, true)
		}
	}

	// P: level l ranges over the encX coordinates [0, 2n).
	for l := 0; l < 2*n; l++ {
		i := l
		for jg := 2 * n; jg < 4*n; jg++ {
			local := jg - 2*n
			for k := 0; k < n; k++ {
				set(i, jg, k, x.Get(k, local) && x.Get(k, l))
			}
		}
		for jg := 4 * n; jg < 7*n; jg++ {
			local := jg - 4*n
			for k := 0; k < n; k++ {
				set(i, jg, k, y2.Get(k, local) && x.Get(k, l))
			}
		}
	}

	// Q: level l again ranges over [0, 2n), this time indexing the encY
	// coordinates i = 2n+l.
	for l := 0; l < 2*n; l++ {
		i := 2*n + l
		for jg := 4 * n; jg < 7*n; jg++ {
			local := jg - 4*n
			for k := 0; k < n; k++ {
				set(i, jg, k, y1.Get(k, local) && x.Get(k, l))
			}
		}
	}

	// S: level l ranges over the t coordinates [0, 3n), i = 4n+l.
	for l := 0; l < 3*n; l++ {
		i := 4*n + l
		for k := 0; k < n; k++ {
			set(i, i, k, y1.Get(k, l) && y2.Get(k, l))
		}
		for off := 1; off < 3*n-l; off++ {
			jg := i + off
			for k := 0; k < n; k++ {
				bit := (y1.Get(k, l) && y2.Get(k, l+off)) != (y2.Get(k, l) && y1.Get(k, l+off))
				set(i, jg, k, bit)
			}
		}
	}

	return contrib
}

// Apply evaluates the AND gate on two ciphertexts, returning a ciphertext
// that decrypts to the bitwise AND of the two plaintexts.
func (e *AndEvaluator) Apply(encX, encY gf2.Vector) gf2.Vector {
	if encX.Len() != 2*e.n || encY.Len() != 2*e.n {
		panic("krypto: AND apply ciphertext width mismatch")
	}
	t := e.gb2.Eval(e.gb1.Eval(gf2.VCat(encX, encY)))
	coords := gf2.VCat(encX, encY, t)
	return e.mb.MulVec(e.z.Eval(coords)).Xor(e.my3.MulVec(t)).Xor(e.z1.MulVec(encX)).Xor(e.z2.MulVec(encY))
}
