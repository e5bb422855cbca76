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

// Package quad implements tuples of homogeneous degree-2 polynomials over
// GF(2), and chains of such tuples composed end to end.
//
// A Tuple of input width `in` and output width `out` is `out` independent
// quadratic forms in the same `in` variables; each form is stored as its
// triangular coefficient table (diagonal entries included, since x*x = x in
// GF(2), so a table of in*(in+1)/2 bits fully determines one form). Tuple
// supports the algebra the key layer needs to build obfuscated gate
// evaluators: evaluation, right-multiplication by a linear map (reshaping
// the output), pre-composition with a linear map (reshaping the input), and
// vertical augmentation (stacking tuples that share an input width into one
// with a wider output).
//
// Chain models an ordered composition of same-width tuples, the quadratic
// obfuscation layer sampled once per PrivateKey and consulted, layer by
// layer, throughout bridge-key derivation.
package quad
