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
	"crypto/rand"
	"io"

	"github.com/pkg/errors"
)

// Source supplies uniform random bits, packed eight to a byte. Callers never
// interpret the returned bytes as anything but an opaque bitstream; the last
// requested bit occupies the low-order bit of the final byte.
//
// The quality of the bits is entirely the responsibility of the Source
// implementation; gf2 and quad only ever ask for entropy through this
// interface and never reach for crypto/rand directly.
type Source interface {
	// Bytes returns n freshly sampled random bytes.
	Bytes(n int) ([]byte, error)
}

// Uniform is a Source that reads from a caller-supplied entropy stream.
// The zero value reads from crypto/rand.Reader.
type Uniform struct {
	reader io.Reader
}

// NewUniform returns a Uniform sampler reading from r. Passing a nil reader
// selects crypto/rand.Reader, which is the appropriate choice for anything
// other than reproducible tests.
func NewUniform(r io.Reader) *Uniform {
	if r == nil {
		r = rand.Reader
	}
	return &Uniform{reader: r}
}

// Bytes returns n bytes read from the underlying entropy stream.
func (u *Uniform) Bytes(n int) ([]byte, error) {
	r := u.reader
	if r == nil {
		r = rand.Reader
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, errors.Wrap(err, "sample: reading from entropy source")
	}
	return buf, nil
}
