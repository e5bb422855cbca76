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

package sample

import (
	"golang.org/x/crypto/salsa20"
)

// UniformDet is a Source that derives a reproducible bit stream from a fixed
// 32-byte key instead of reading real entropy. It exists so that properties
// like round-trip correctness can be exercised against fixed fixtures without
// a seed plumbed through crypto/rand; it must never be used to generate an
// actual PrivateKey.
type UniformDet struct {
	key     *[32]byte
	counter uint64
}

// NewUniformDet returns a UniformDet sampler keyed by key.
func NewUniformDet(key *[32]byte) *UniformDet {
	return &UniformDet{key: key}
}

// Bytes returns n bytes of the salsa20 keystream under u's key. Successive
// calls advance an internal nonce counter so repeated calls do not repeat
// the same keystream window.
func (u *UniformDet) Bytes(n int) ([]byte, error) {
	in := make([]byte, n)
	out := make([]byte, n)

	var nonce [8]byte
	for i := 0; i < 8; i++ {
		nonce[i] = byte(u.counter >> (8 * uint(i)))
	}
	u.counter++

	salsa20.XORKeyStream(out, in, nonce[:], u.key)
	return out, nil
}
