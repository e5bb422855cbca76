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

package sample_test

import (
	"testing"

	"github.com/fentec-project/gf2he/sample"
	"github.com/stretchr/testify/assert"
)

func TestUniformDet(t *testing.T) {
	var key [32]byte
	for i := range key {
		key[i] = byte(i * 7)
	}

	sampler := sample.NewUniformDet(&key)
	a, err := sampler.Bytes(32)
	assert.NoError(t, err)
	b, err := sampler.Bytes(32)
	assert.NoError(t, err)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b, "successive draws should advance the nonce counter")

	repeat := sample.NewUniformDet(&key)
	c, err := repeat.Bytes(32)
	assert.NoError(t, err)
	assert.Equal(t, a, c, "same key and draw order should reproduce the same bytes")
}

func TestUniformBytes(t *testing.T) {
	u := sample.NewUniform(nil)
	b, err := u.Bytes(16)
	assert.NoError(t, err)
	assert.Len(t, b, 16)
}
