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

// Package sample includes samplers for drawing uniform random bits.
//
// Package sample provides the Source interface along with the
// implementations used to fill gf2.Vector and gf2.Matrix values with
// random data: Uniform, which reads from a caller-supplied entropy stream
// (crypto/rand by default), and UniformDet, which derives a reproducible
// bit stream from a fixed key, for use in tests.
package sample
