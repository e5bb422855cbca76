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

package gf2

import (
	"github.com/fentec-project/gf2he/internal"
	"github.com/fentec-project/gf2he/sample"
)

// Matrix wraps a slice of Vector elements. It represents a row-major order
// matrix over GF(2).
//
// The j-th element of the i-th row can be obtained as m.Get(i, j).
type Matrix struct {
	rows, cols int
	row        []Vector
}

// NewMatrix returns the zero rows x cols Matrix.
func NewMatrix(rows, cols int) Matrix {
	if rows < 0 || cols < 0 {
		panic("gf2: negative matrix dimension")
	}
	r := make([]Vector, rows)
	for i := range r {
		r[i] = NewVector(cols)
	}
	return Matrix{rows: rows, cols: cols, row: r}
}

// FromRows assembles a Matrix whose rows are the given Vectors, which must
// all share the same length.
func FromRows(rows []Vector) Matrix {
	if len(rows) == 0 {
		panic("gf2: FromRows requires at least one row")
	}
	cols := rows[0].Len()
	m := NewMatrix(len(rows), cols)
	for i, r := range rows {
		if r.Len() != cols {
			panic("gf2: FromRows row length mismatch")
		}
		m.row[i] = r
	}
	return m
}

// NewRandomMatrix returns a new rows x cols Matrix with entries sampled
// uniformly at random from src.
func NewRandomMatrix(rows, cols int, src sample.Source) (Matrix, error) {
	r := make([]Vector, rows)
	for i := range r {
		v, err := NewRandomVector(cols, src)
		if err != nil {
			return Matrix{}, err
		}
		r[i] = v
	}
	return Matrix{rows: rows, cols: cols, row: r}, nil
}

// NewRandomInvertibleMatrix returns a uniformly random element of GL_n(GF(2))
// by rejection sampling: draw a random n x n matrix, test invertibility, and
// retry on failure. A uniformly random square bit matrix is invertible with
// probability bounded below by a constant (~29%) independent of n, so this
// terminates in a small expected number of iterations.
func NewRandomInvertibleMatrix(n int, src sample.Source) (Matrix, error) {
	for {
		m, err := NewRandomMatrix(n, n, src)
		if err != nil {
			return Matrix{}, err
		}
		if _, err := m.Inverse(); err == nil {
			return m, nil
		}
	}
}

// Identity returns the n x n identity matrix.
func Identity(n int) Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, true)
	}
	return m
}

// LeftShiftMatrix returns the n x n permutation matrix implementing the
// 1-bit left shift on n-bit vectors: (L*v)[i] = v[i-1], (L*v)[0] = 0.
func LeftShiftMatrix(n int) Matrix {
	m := NewMatrix(n, n)
	for i := 1; i < n; i++ {
		m.Set(i, i-1, true)
	}
	return m
}

// RightShiftMatrix returns the n x n permutation matrix implementing the
// 1-bit right shift on n-bit vectors: (R*v)[i] = v[i+1], (R*v)[n-1] = 0.
func RightShiftMatrix(n int) Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n-1; i++ {
		m.Set(i, i+1, true)
	}
	return m
}

// ColumnMatrix returns the n x n matrix whose only nonzero column is col,
// set entirely to 1. Multiplying it by x produces a vector whose every
// coordinate equals x[col].
func ColumnMatrix(n, col int) Matrix {
	if col < 0 || col >= n {
		panic("gf2: column index out of range")
	}
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, col, true)
	}
	return m
}

// Rows returns the number of rows of m.
func (m Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns of m.
func (m Matrix) Cols() int {
	return m.cols
}

// Get returns the bit at row i, column j.
func (m Matrix) Get(i, j int) bool {
	return m.row[i].Get(j)
}

// Set assigns the bit at row i, column j. It mutates m in place and, like
// Vector.Set, is meant for use while a Matrix is still being built.
func (m Matrix) Set(i, j int, bit bool) {
	m.row[i].Set(j, bit)
}

// Row returns a copy of row i as a Vector.
func (m Matrix) Row(i int) Vector {
	return m.row[i].Clone()
}

// SetRow replaces row i with v, which must have length m.Cols(). It mutates
// m in place, like Set.
func (m Matrix) SetRow(i int, v Vector) {
	if v.Len() != m.cols {
		panic("gf2: SetRow length mismatch")
	}
	m.row[i] = v
}

// Clone returns an independent copy of m.
func (m Matrix) Clone() Matrix {
	out := NewMatrix(m.rows, m.cols)
	for i := range m.row {
		out.row[i] = m.row[i].Clone()
	}
	return out
}

// Equal reports whether m and other have the same dimensions and entries.
func (m Matrix) Equal(other Matrix) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.row {
		if !m.row[i].Equal(other.row[i]) {
			return false
		}
	}
	return true
}

// MulVec returns m * v.
func (m Matrix) MulVec(v Vector) Vector {
	if m.cols != v.Len() {
		panic("gf2: matrix/vector dimension mismatch")
	}
	out := NewVector(m.rows)
	for i := 0; i < m.rows; i++ {
		if m.row[i].Dot(v) {
			out.Set(i, true)
		}
	}
	return out
}

// Mul returns m * other.
func (m Matrix) Mul(other Matrix) Matrix {
	if m.cols != other.rows {
		panic("gf2: matrix/matrix dimension mismatch")
	}
	cols := make([]Vector, other.cols)
	for j := 0; j < other.cols; j++ {
		c := NewVector(other.rows)
		for i := 0; i < other.rows; i++ {
			if other.Get(i, j) {
				c.Set(i, true)
			}
		}
		cols[j] = c
	}

	out := NewMatrix(m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < other.cols; j++ {
			if m.row[i].Dot(cols[j]) {
				out.Set(i, j, true)
			}
		}
	}
	return out
}

// gaussJordan runs in-place Gauss-Jordan elimination on the augmented rows
// (each of length n+extra, the left n columns holding the matrix
// being inverted/solved against). It returns an error if the left block is
// singular.
func gaussJordan(aug []Vector, n int) error {
	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if aug[r].Get(col) {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			return internal.SingularMatrix
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]
		for r := 0; r < n; r++ {
			if r != col && aug[r].Get(col) {
				aug[r] = aug[r].Xor(aug[col])
			}
		}
	}
	return nil
}

// Inverse returns the inverse of m, which must be square. It returns
// internal.SingularMatrix if m is not invertible.
func (m Matrix) Inverse() (Matrix, error) {
	if m.rows != m.cols {
		panic("gf2: inverse of a non-square matrix")
	}
	n := m.rows
	aug := make([]Vector, n)
	for i := 0; i < n; i++ {
		idRow := NewVector(n)
		idRow.Set(i, true)
		aug[i] = VCat(m.row[i], idRow)
	}
	if err := gaussJordan(aug, n); err != nil {
		return Matrix{}, err
	}
	inv := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		parts := aug[i].Split(n, n)
		inv.row[i] = parts[1]
	}
	return inv, nil
}

// Solve returns the unique x such that m*x = b, for square invertible m. It
// returns internal.SingularMatrix if m is not invertible.
func (m Matrix) Solve(b Vector) (Vector, error) {
	if m.rows != m.cols {
		panic("gf2: solve against a non-square matrix")
	}
	if b.Len() != m.rows {
		panic("gf2: solve dimension mismatch")
	}
	n := m.rows
	aug := make([]Vector, n)
	for i := 0; i < n; i++ {
		bit := NewVector(1)
		if b.Get(i) {
			bit.Set(0, true)
		}
		aug[i] = VCat(m.row[i], bit)
	}
	if err := gaussJordan(aug, n); err != nil {
		return Vector{}, err
	}
	x := NewVector(n)
	for i := 0; i < n; i++ {
		if aug[i].Get(n) {
			x.Set(i, true)
		}
	}
	return x, nil
}

// AugH horizontally augments mats: all must share the same row count, and
// the result's columns are their columns concatenated in order.
func AugH(mats ...Matrix) Matrix {
	if len(mats) == 0 {
		panic("gf2: AugH requires at least one matrix")
	}
	rows := mats[0].rows
	cols := 0
	for _, mm := range mats {
		if mm.rows != rows {
			panic("gf2: AugH row count mismatch")
		}
		cols += mm.cols
	}
	out := NewMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		parts := make([]Vector, len(mats))
		for k, mm := range mats {
			parts[k] = mm.row[i]
		}
		out.row[i] = VCat(parts...)
	}
	return out
}

// AugV vertically augments mats: all must share the same column count, and
// the result's rows are their rows concatenated in order.
func AugV(mats ...Matrix) Matrix {
	if len(mats) == 0 {
		panic("gf2: AugV requires at least one matrix")
	}
	cols := mats[0].cols
	rows := 0
	for _, mm := range mats {
		if mm.cols != cols {
			panic("gf2: AugV column count mismatch")
		}
		rows += mm.rows
	}
	out := NewMatrix(rows, cols)
	offset := 0
	for _, mm := range mats {
		for i := 0; i < mm.rows; i++ {
			out.row[offset+i] = mm.row[i]
		}
		offset += mm.rows
	}
	return out
}

// SplitH splits m's columns into `parts` equal blocks, left to right.
func (m Matrix) SplitH(parts int) []Matrix {
	if parts <= 0 || m.cols%parts != 0 {
		panic("gf2: matrix columns are not divisible by the requested number of parts")
	}
	chunk := m.cols / parts
	out := make([]Matrix, parts)
	for p := range out {
		out[p] = NewMatrix(m.rows, chunk)
	}
	for i := 0; i < m.rows; i++ {
		rowParts := m.row[i].SplitEqual(parts)
		for p := 0; p < parts; p++ {
			out[p].row[i] = rowParts[p]
		}
	}
	return out
}

// SplitV splits m's rows into `parts` equal blocks, top to bottom.
func (m Matrix) SplitV(parts int) []Matrix {
	if parts <= 0 || m.rows%parts != 0 {
		panic("gf2: matrix rows are not divisible by the requested number of parts")
	}
	chunk := m.rows / parts
	out := make([]Matrix, parts)
	for p := 0; p < parts; p++ {
		out[p] = NewMatrix(chunk, m.cols)
		for i := 0; i < chunk; i++ {
			out[p].row[i] = m.row[p*chunk+i]
		}
	}
	return out
}

// SplitV2 returns row-block i (0 or 1) of a 2-way vertical split of m.
func (m Matrix) SplitV2(i int) Matrix {
	return m.SplitV(2)[i]
}

// SplitV3 returns row-block i (0, 1, or 2) of a 3-way vertical split of m.
func (m Matrix) SplitV3(i int) Matrix {
	return m.SplitV(3)[i]
}

// SplitH2 returns column-block i (0 or 1) of a 2-way horizontal split of m.
func (m Matrix) SplitH2(i int) Matrix {
	return m.SplitH(2)[i]
}
