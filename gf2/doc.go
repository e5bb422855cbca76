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

// Package gf2 implements dense linear algebra over the two-element field
// GF(2): fixed-length bit vectors and row-major bit matrices, packed into
// machine words.
//
// Vector and Matrix play the same role here that data.Vector and
// data.Matrix play for the big.Int-based schemes elsewhere in this family of
// packages: a small, self-contained algebra layer that the higher-level key
// material is built on top of. Dimensions are carried as runtime fields
// rather than compile-time constants (Go generics cannot yet parametrize a
// type by an arithmetic expression such as 2*N); constructors and operations
// panic on dimension mismatch, since such a mismatch can only be a caller
// bug, never a data-dependent runtime condition.
package gf2
