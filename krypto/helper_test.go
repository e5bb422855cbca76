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

	"github.com/fentec-project/gf2he/krypto"
	"github.com/fentec-project/gf2he/sample"
	"github.com/stretchr/testify/assert"
)

// newTestKeys builds a PrivateKey/BridgeKey/PublicKey triple of plaintext
// width words (in 64-bit words) backed by real entropy.
func newTestKeys(t *testing.T, words int) (*krypto.PrivateKey, *krypto.BridgeKey, *krypto.PublicKey) {
	t.Helper()
	src := sample.NewUniform(nil)

	pk, err := krypto.NewPrivateKey(words, src)
	assert.NoError(t, err)
	bk, err := krypto.NewBridgeKey(pk, src)
	assert.NoError(t, err)
	pub := krypto.NewPublicKey(bk)
	return pk, bk, pub
}
