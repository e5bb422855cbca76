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

// XorEvaluator homomorphically evaluates bitwise XOR on ciphertexts. It is
// immutable and safe to share and reuse once produced by BridgeKey.XOR.
type XorEvaluator struct {
	n      int
	xx, xy gf2.Matrix
	y      gf2.Matrix
	gb1    quad.Tuple
	gb2    quad.Tuple
}

// XOR derives a fresh XorEvaluator, re-randomizing Rx, Ry first.
func (bk *BridgeKey) XOR() (*XorEvaluator, error) {
	if err := bk.resampleRxRy(); err != nil {
		return nil, err
	}
	gb1, gb2 := bk.binaryTuples()

	pk := bk.pk
	n := bk.n
	id := gf2.Identity(n)
	zero := gf2.NewMatrix(n, n)

	xx := pk.m.Mul(gf2.AugV(gf2.AugH(id, zero), gf2.AugH(zero, bk.rx))).Mul(pk.mInv)
	xy := pk.m.Mul(gf2.AugV(gf2.AugH(id, zero), gf2.AugH(zero, bk.ry))).Mul(pk.mInv)
	y := pk.m.Mul(gf2.AugV(gf2.AugH(id, id, id), gf2.NewMatrix(n, 3*n))).Mul(pk.cb2Inv)

	return &XorEvaluator{n: n, xx: xx, xy: xy, y: y, gb1: gb1, gb2: gb2}, nil
}

// Apply evaluates the XOR gate on two ciphertexts, returning a ciphertext
// that decrypts to the bitwise XOR of the two plaintexts.
func (e *XorEvaluator) Apply(encX, encY gf2.Vector) gf2.Vector {
	if encX.Len() != 2*e.n || encY.Len() != 2*e.n {
		panic("krypto: XOR apply ciphertext width mismatch")
	}
	t := e.gb2.Eval(e.gb1.Eval(gf2.VCat(encX, encY)))
	return e.xx.MulVec(encX).Xor(e.xy.MulVec(encY)).Xor(e.y.MulVec(t))
}
