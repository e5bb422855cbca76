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

package quad_test

import (
	"testing"

	"github.com/fentec-project/gf2he/gf2"
	"github.com/fentec-project/gf2he/quad"
	"github.com/fentec-project/gf2he/sample"
	"github.com/stretchr/testify/assert"
)

func detSource() sample.Source {
	var key [32]byte
	for i := range key {
		key[i] = byte(i*13 + 1)
	}
	return sample.NewUniformDet(&key)
}

func TestTupleEvalZero(t *testing.T) {
	tup := quad.NewTuple(3, 2)
	x := gf2.NewVector(3)
	x.Set(0, true)
	x.Set(2, true)
	out := tup.Eval(x)
	assert.True(t, out.IsZero())
}

func TestTupleEvalDiagonalIsIdentity(t *testing.T) {
	// a tuple with only diagonal coefficients set computes the identity,
	// since x_i*x_i = x_i in GF(2).
	tup := quad.NewTuple(4, 4)
	coefM := gf2.NewMatrix(quad.TriNum(4), 4)
	for k := 0; k < 4; k++ {
		idx := quad.TriIndex(4, k, k)
		coefM.Set(idx, k, true)
	}
	tup.SetContributions(coefM, false)

	x := gf2.NewVector(4)
	x.Set(1, true)
	x.Set(3, true)
	assert.True(t, tup.Eval(x).Equal(x))
}

func TestTupleEvalCrossTerm(t *testing.T) {
	tup := quad.NewTuple(2, 1)
	coefM := gf2.NewMatrix(quad.TriNum(2), 1)
	coefM.Set(quad.TriIndex(2, 0, 1), 0, true)
	tup.SetContributions(coefM, false)

	cases := []struct {
		x0, x1, want bool
	}{
		{false, false, false},
		{true, false, false},
		{false, true, false},
		{true, true, true},
	}
	for _, c := range cases {
		x := gf2.NewVector(2)
		x.Set(0, c.x0)
		x.Set(1, c.x1)
		assert.Equal(t, c.want, tup.Eval(x).Get(0))
	}
}

func TestTupleRMultIdentity(t *testing.T) {
	src := detSource()
	tup, err := quad.NewRandomTuple(3, 2, src)
	assert.NoError(t, err)

	id := gf2.Identity(2)
	same := tup.RMult(id)

	x := gf2.NewVector(3)
	x.Set(0, true)
	x.Set(2, true)
	assert.True(t, tup.Eval(x).Equal(same.Eval(x)))
}

func TestTupleRMultMatchesManualLinearCombination(t *testing.T) {
	src := detSource()
	tup, err := quad.NewRandomTuple(3, 2, src)
	assert.NoError(t, err)

	// M swaps the two output coordinates.
	M := gf2.NewMatrix(2, 2)
	M.Set(0, 1, true)
	M.Set(1, 0, true)
	swapped := tup.RMult(M)

	x := gf2.NewVector(3)
	x.Set(1, true)
	x.Set(2, true)

	got := swapped.Eval(x)
	orig := tup.Eval(x)
	assert.Equal(t, orig.Get(1), got.Get(0))
	assert.Equal(t, orig.Get(0), got.Get(1))
}

func TestTuplePreComposeWithIdentity(t *testing.T) {
	src := detSource()
	tup, err := quad.NewRandomTuple(3, 2, src)
	assert.NoError(t, err)

	pc := tup.PreCompose(gf2.Identity(3))
	x := gf2.NewVector(3)
	x.Set(0, true)
	x.Set(2, true)
	assert.True(t, tup.Eval(x).Equal(pc.Eval(x)))
}

func TestTuplePreComposeMatchesSubstitution(t *testing.T) {
	// t(x0,x1) = x0*x1 (in=2,out=1). Precompose with M: y (len 3) -> x,
	// where x0 = y0, x1 = y1 XOR y2. Then pc(y) = y0*(y1 XOR y2).
	tup := quad.NewTuple(2, 1)
	coefM := gf2.NewMatrix(quad.TriNum(2), 1)
	coefM.Set(quad.TriIndex(2, 0, 1), 0, true)
	tup.SetContributions(coefM, false)

	M := gf2.NewMatrix(2, 3)
	M.Set(0, 0, true)
	M.Set(1, 1, true)
	M.Set(1, 2, true)

	pc := tup.PreCompose(M)
	assert.Equal(t, 3, pc.In())
	assert.Equal(t, 1, pc.Out())

	for y0 := 0; y0 < 2; y0++ {
		for y1 := 0; y1 < 2; y1++ {
			for y2 := 0; y2 < 2; y2++ {
				y := gf2.NewVector(3)
				y.Set(0, y0 == 1)
				y.Set(1, y1 == 1)
				y.Set(2, y2 == 1)
				want := (y0 == 1) && ((y1 == 1) != (y2 == 1))
				assert.Equal(t, want, pc.Eval(y).Get(0))
			}
		}
	}
}

func TestAugVStacksOutputs(t *testing.T) {
	src := detSource()
	a, err := quad.NewRandomTuple(3, 1, src)
	assert.NoError(t, err)
	b, err := quad.NewRandomTuple(3, 2, src)
	assert.NoError(t, err)

	combined := quad.AugV(a, b)
	assert.Equal(t, 3, combined.In())
	assert.Equal(t, 3, combined.Out())

	x := gf2.NewVector(3)
	x.Set(1, true)
	got := combined.Eval(x)
	wantA := a.Eval(x)
	wantB := b.Eval(x)
	assert.Equal(t, wantA.Get(0), got.Get(0))
	assert.Equal(t, wantB.Get(0), got.Get(1))
	assert.Equal(t, wantB.Get(1), got.Get(2))
}

func TestAugVRequiresMatchingInputWidth(t *testing.T) {
	a := quad.NewTuple(2, 1)
	b := quad.NewTuple(3, 1)
	assert.Panics(t, func() { quad.AugV(a, b) })
}

func TestSetContributionsConstantFlipsBits(t *testing.T) {
	tup := quad.NewTuple(2, 1)
	coefM := gf2.NewMatrix(quad.TriNum(2), 1)
	tup.SetContributions(coefM, true)

	// constant=true flips every (zero) entry to one, so every diagonal and
	// cross term is present: t(x) = x0 xor x1 xor (x0 and x1).
	x := gf2.NewVector(2)
	x.Set(0, true)
	assert.True(t, tup.Eval(x).Get(0))
}
