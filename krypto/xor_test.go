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

package krypto_test

import (
	"testing"

	"github.com/fentec-project/gf2he/gf2"
	"github.com/stretchr/testify/assert"
)

// The XOR gate must decrypt to the bitwise XOR of the two plaintexts.
func TestHomomorphicXORConcrete(t *testing.T) {
	pk, _, pub := newTestKeys(t, 1)
	m1 := gf2.FromUint64s([]uint64{0xFFFFFFFFFFFFFFFF})
	m2 := gf2.FromUint64s([]uint64{0x5555555555555555})

	c1, err := pk.Encrypt(m1)
	assert.NoError(t, err)
	c2, err := pk.Encrypt(m2)
	assert.NoError(t, err)

	res, err := pub.HomomorphicXOR(c1, c2)
	assert.NoError(t, err)

	got, err := pk.Decrypt(res)
	assert.NoError(t, err)

	want := gf2.FromUint64s([]uint64{0xAAAAAAAAAAAAAAAA})
	assert.True(t, got.Equal(want))
}

func TestHomomorphicXORRandom(t *testing.T) {
	pk, _, pub := newTestKeys(t, 2)
	m1 := gf2.FromUint64s([]uint64{0x1122334455667788, 0x0000000000000001})
	m2 := gf2.FromUint64s([]uint64{0x00FF00FF00FF00FF, 0xFFFFFFFFFFFFFFFF})

	for trial := 0; trial < 100; trial++ {
		c1, err := pk.Encrypt(m1)
		assert.NoError(t, err)
		c2, err := pk.Encrypt(m2)
		assert.NoError(t, err)

		res, err := pub.HomomorphicXOR(c1, c2)
		assert.NoError(t, err)

		got, err := pk.Decrypt(res)
		assert.NoError(t, err)
		assert.True(t, got.Equal(m1.Xor(m2)), "trial %d", trial)
	}
}

// BridgeKey re-randomizes Rx, Ry on every XOR call, yet every evaluator it
// produces must still correctly compute XOR.
func TestHomomorphicXORRerandomizes(t *testing.T) {
	pk, bk, _ := newTestKeys(t, 1)
	m1 := gf2.FromUint64s([]uint64{0xF0F0F0F0F0F0F0F0})
	m2 := gf2.FromUint64s([]uint64{0x00FF00FF00FF00FF})
	want := m1.Xor(m2)

	ev1, err := bk.XOR()
	assert.NoError(t, err)
	ev2, err := bk.XOR()
	assert.NoError(t, err)

	c1, err := pk.Encrypt(m1)
	assert.NoError(t, err)
	c2, err := pk.Encrypt(m2)
	assert.NoError(t, err)

	got1, err := pk.Decrypt(ev1.Apply(c1, c2))
	assert.NoError(t, err)
	assert.True(t, got1.Equal(want))

	got2, err := pk.Decrypt(ev2.Apply(c1, c2))
	assert.NoError(t, err)
	assert.True(t, got2.Equal(want))
}

func TestHomomorphicXORDimensionPanics(t *testing.T) {
	_, bk, _ := newTestKeys(t, 1)
	ev, err := bk.XOR()
	assert.NoError(t, err)
	assert.Panics(t, func() { ev.Apply(gf2.NewVector(3), gf2.NewVector(128)) })
}
