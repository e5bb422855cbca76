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

// Package krypto implements a symmetric, somewhat-homomorphic encryption
// scheme over GF(2): plaintexts and ciphertexts are gf2.Vectors, and three
// gates (left matrix multiplication, XOR, AND) can be evaluated directly on
// ciphertexts, without decryption, by a holder of public derived material.
//
// PrivateKey owns the scheme's secret randomness (a mixing matrix, a chain
// of random quadratic forms, and several obfuscating matrices) and exposes
// Encrypt/Decrypt. BridgeKey is a privileged derivation that reads a
// PrivateKey's internals to build the algebraic objects each gate needs;
// PublicKey wraps a BridgeKey and exposes only the gate evaluators. The
// three types live in this one package so that BridgeKey and PublicKey can
// reach PrivateKey's unexported fields directly — the package boundary
// plays the role a C++ "friend" declaration would.
//
// PrivateKey is immutable after construction and safe for concurrent use.
// BridgeKey is not: producing an XOR or AND evaluator re-randomizes two of
// its internal matrices, so a BridgeKey used from multiple goroutines needs
// external serialization, or one BridgeKey per goroutine built from the
// same PrivateKey. A PublicKey's LMM methods only read its BridgeKey, but
// its HomomorphicXOR and HomomorphicAND go through BridgeKey.XOR/AND and
// share that restriction.
package krypto
