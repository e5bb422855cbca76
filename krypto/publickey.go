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

import "github.com/fentec-project/gf2he/gf2"

// PublicKey wraps a BridgeKey and exposes only the gate evaluators: it
// holds no direct representation of M, f, Cu, or Cb, only the BridgeKey
// that derives gate material on demand and the unary obfuscation tuples
// homomorphic LMM needs. Its LMM methods only read that BridgeKey.
// HomomorphicXOR and HomomorphicAND derive a fresh evaluator on every call,
// which mutates the underlying BridgeKey exactly as calling
// BridgeKey.XOR/AND directly would, so those two methods are not safe for
// concurrent use.
type PublicKey struct {
	n      int
	bridge *BridgeKey
}

// NewPublicKey builds a PublicKey over bk.
func NewPublicKey(bk *BridgeKey) *PublicKey {
	return &PublicKey{n: bk.n, bridge: bk}
}

// Bits returns the key's plaintext width in bits.
func (pub *PublicKey) Bits() int {
	return pub.n
}

// LMMZ returns the Z matrix parameterizing homomorphic left multiplication
// by k, for use with HomomorphicLMM.
func (pub *PublicKey) LMMZ(k gf2.Matrix) gf2.Matrix {
	return pub.bridge.LMMZ(k)
}

// LeftShift, RightShift, LeftColumn, and RightColumn return the Z matrices
// for the corresponding LMM specializations.
func (pub *PublicKey) LeftShift() gf2.Matrix  { return pub.bridge.LeftShift() }
func (pub *PublicKey) RightShift() gf2.Matrix { return pub.bridge.RightShift() }
func (pub *PublicKey) LeftColumn() gf2.Matrix { return pub.bridge.LeftColumn() }
func (pub *PublicKey) RightColumn() gf2.Matrix {
	return pub.bridge.RightColumn()
}

// HomomorphicLMM evaluates, on ciphertext encX, the LMM gate parameterized
// by z (as returned by LMMZ or one of the specializations): the first half
// of z encrypts K*x directly, the second cancels the cross terms the
// obfuscation chain introduced, via the unary tuples gu1, gu2 cached on the
// underlying BridgeKey.
func (pub *PublicKey) HomomorphicLMM(z gf2.Matrix, encX gf2.Vector) gf2.Vector {
	if z.Rows() != 2*pub.n || z.Cols() != 4*pub.n {
		panic("krypto: HomomorphicLMM requires a 2N x 4N Z matrix")
	}
	if encX.Len() != 2*pub.n {
		panic("krypto: HomomorphicLMM ciphertext width mismatch")
	}
	x := z.SplitH2(0)
	y := z.SplitH2(1)
	bk := pub.bridge
	obfuscated := bk.gu2.Eval(bk.gu1.Eval(encX))
	return x.MulVec(encX).Xor(y.MulVec(obfuscated))
}

// HomomorphicXOR evaluates the XOR gate, deriving a fresh XorEvaluator from
// the underlying BridgeKey (which re-randomizes its Rx, Ry in the
// process).
func (pub *PublicKey) HomomorphicXOR(encX, encY gf2.Vector) (gf2.Vector, error) {
	ev, err := pub.bridge.XOR()
	if err != nil {
		return gf2.Vector{}, err
	}
	return ev.Apply(encX, encY), nil
}

// HomomorphicAND evaluates the AND gate, deriving a fresh AndEvaluator from
// the underlying BridgeKey (which re-randomizes its Rx, Ry in the
// process).
func (pub *PublicKey) HomomorphicAND(encX, encY gf2.Vector) (gf2.Vector, error) {
	ev, err := pub.bridge.AND()
	if err != nil {
		return gf2.Vector{}, err
	}
	return ev.Apply(encX, encY), nil
}
