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

package internal

import (
	"errors"
)

// SingularMatrix is returned by gf2's Matrix.Inverse and Matrix.Solve when
// the matrix is not invertible. The invertible-matrix sampler uses it to
// reject singular draws; keys built by krypto.NewPrivateKey hold only
// invertible matrices, so their Decrypt never returns it.
var SingularMatrix = errors.New("matrix is singular")
