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

// Chain is an ordered composition f = f[L-1] ∘ ... ∘ f[0] of same-width
// tuples. Evaluating a Chain evaluates each layer in turn, feeding each
// layer's output to the next; individual layers are also exposed through
// Get, since bridge-key derivation precomposes single layers with its own
// linear maps rather than evaluating the whole chain.
type Chain struct {
	n      int
	layers []Tuple
}

// NewChain assembles a Chain from layers, which must all share input width
// equal to output width equal to n.
func NewChain(layers ...Tuple) Chain {
	if len(layers) == 0 {
		panic("quad: chain requires at least one layer")
	}
	n := layers[0].In()
	for _, l := range layers {
		if l.In() != n || l.Out() != n {
			panic("quad: chain layers must share input/output width")
		}
	}
	return Chain{n: n, layers: layers}
}

// NewRandomChain returns a Chain of `length` layers, each an independent
// random Tuple of width n.
func NewRandomChain(n, length int, src sample.Source) (Chain, error) {
	if length <= 0 {
		panic("quad: chain length must be positive")
	}
	layers := make([]Tuple, length)
	for i := range layers {
		l, err := NewRandomTuple(n, n, src)
		if err != nil {
			return Chain{}, err
		}
		layers[i] = l
	}
	return Chain{n: n, layers: layers}, nil
}

// N returns the chain's shared layer width.
func (c Chain) N() int {
	return c.n
}

// Len returns the number of layers in the chain.
func (c Chain) Len() int {
	return len(c.layers)
}

// Get returns layer i of the chain.
func (c Chain) Get(i int) Tuple {
	return c.layers[i]
}

// Eval evaluates the full composition f[L-1](...f[1](f[0](x))...) at x.
func (c Chain) Eval(x gf2.Vector) gf2.Vector {
	y := x
	for _, layer := range c.layers {
		y = layer.Eval(y)
	}
	return y
}
