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
	"github.com/pkg/errors"

	"github.com/fentec-project/gf2he/gf2"
	"github.com/fentec-project/gf2he/quad"
	"github.com/fentec-project/gf2he/sample"
)

// PrivateKey holds the secret randomness of the scheme: a mixing matrix M,
// a chain f of two random quadratic forms, and the obfuscating matrices
// Cu1, Cu2, Cb1, Cb2 that BridgeKey derivation consumes. Its plaintext
// width n is fixed at construction. A PrivateKey is immutable after
// NewPrivateKey returns and safe for concurrent use; only Encrypt/Decrypt
// are exported, and only BridgeKey (in this package) ever reads its other
// fields.
type PrivateKey struct {
	words int // N, the plaintext width in 64-bit words
	n     int // N * gf2.WordBits, the plaintext width in bits
	src   sample.Source

	m    gf2.Matrix
	mInv gf2.Matrix

	f quad.Chain

	cu1, cu1Inv gf2.Matrix
	cu2, cu2Inv gf2.Matrix
	cb1, cb1Inv gf2.Matrix
	cb2, cb2Inv gf2.Matrix
}

// NewPrivateKey samples a fresh PrivateKey for plaintext width words (N, a
// count of 64-bit words, so words=1 gives a 64-bit plaintext): a uniformly
// random invertible mixing matrix, a chain of two independent random
// quadratic forms, and four independent random invertible obfuscation
// matrices, all sized off the resulting bit width n = words*64. Randomness
// is drawn from src.
func NewPrivateKey(words int, src sample.Source) (*PrivateKey, error) {
	if words <= 0 {
		panic("krypto: plaintext width must be positive")
	}
	n := words * gf2.WordBits

	m, err := gf2.NewRandomInvertibleMatrix(2*n, src)
	if err != nil {
		return nil, err
	}
	mInv, err := m.Inverse()
	if err != nil {
		return nil, errors.Wrap(err, "krypto: sampled mixing matrix was not invertible")
	}

	f, err := quad.NewRandomChain(n, 2, src)
	if err != nil {
		return nil, err
	}

	cu1, err := gf2.NewRandomInvertibleMatrix(2*n, src)
	if err != nil {
		return nil, err
	}
	cu1Inv, err := cu1.Inverse()
	if err != nil {
		return nil, errors.Wrap(err, "krypto: sampled Cu1 was not invertible")
	}

	cu2, err := gf2.NewRandomInvertibleMatrix(2*n, src)
	if err != nil {
		return nil, err
	}
	cu2Inv, err := cu2.Inverse()
	if err != nil {
		return nil, errors.Wrap(err, "krypto: sampled Cu2 was not invertible")
	}

	cb1, err := gf2.NewRandomInvertibleMatrix(3*n, src)
	if err != nil {
		return nil, err
	}
	cb1Inv, err := cb1.Inverse()
	if err != nil {
		return nil, errors.Wrap(err, "krypto: sampled Cb1 was not invertible")
	}

	cb2, err := gf2.NewRandomInvertibleMatrix(3*n, src)
	if err != nil {
		return nil, err
	}
	cb2Inv, err := cb2.Inverse()
	if err != nil {
		return nil, errors.Wrap(err, "krypto: sampled Cb2 was not invertible")
	}

	return &PrivateKey{
		words: words, n: n, src: src,
		m: m, mInv: mInv,
		f:      f,
		cu1:    cu1, cu1Inv: cu1Inv,
		cu2:    cu2, cu2Inv: cu2Inv,
		cb1:    cb1, cb1Inv: cb1Inv,
		cb2:    cb2, cb2Inv: cb2Inv,
	}, nil
}

// N returns the key's plaintext width in 64-bit words.
func (pk *PrivateKey) N() int {
	return pk.words
}

// Bits returns the key's plaintext width in bits (N * 64).
func (pk *PrivateKey) Bits() int {
	return pk.n
}

// Encrypt draws a fresh uniform mask r and returns
// M * concat(m ^ f(r), r), a ciphertext of length 2n.
func (pk *PrivateKey) Encrypt(m gf2.Vector) (gf2.Vector, error) {
	if m.Len() != pk.n {
		panic("krypto: encrypt plaintext width mismatch")
	}
	r, err := gf2.NewRandomVector(pk.n, pk.src)
	if err != nil {
		return gf2.Vector{}, err
	}
	inner := m.Xor(pk.f.Eval(r))
	return pk.m.MulVec(gf2.VCat(inner, r)), nil
}

// Decrypt solves M*y = x, splits y into two n-bit halves (y1, y2), and
// returns y1 ^ f(y2); by construction of Encrypt, y1 = m ^ f(r) and y2 = r,
// so this recovers m. The only possible error is a corrupt (non-invertible)
// M, which NewPrivateKey's sampler never produces.
func (pk *PrivateKey) Decrypt(x gf2.Vector) (gf2.Vector, error) {
	if x.Len() != 2*pk.n {
		panic("krypto: decrypt ciphertext width mismatch")
	}
	y, err := pk.m.Solve(x)
	if err != nil {
		return gf2.Vector{}, errors.Wrap(err, "krypto: decrypt")
	}
	halves := y.Split(pk.n, pk.n)
	y1, y2 := halves[0], halves[1]
	return y1.Xor(pk.f.Eval(y2)), nil
}
