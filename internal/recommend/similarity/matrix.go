// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package similarity

// Matrix is a square, row-major matrix of float64.
type Matrix struct {
	n    int
	data []float64
}

// NewMatrix allocates an n×n zero matrix.
func NewMatrix(n int) *Matrix {
	return &Matrix{n: n, data: make([]float64, n*n)}
}

// Size returns the number of rows (and columns).
func (m *Matrix) Size() int {
	return m.n
}

// At returns element (i, j).
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.n+j]
}

// Set assigns element (i, j).
func (m *Matrix) Set(i, j int, v float64) {
	m.data[i*m.n+j] = v
}

// Row returns row i. The slice aliases the matrix and must not be modified.
func (m *Matrix) Row(i int) []float64 {
	return m.data[i*m.n : (i+1)*m.n : (i+1)*m.n]
}

// mirror copies the upper triangle into the lower one.
func (m *Matrix) mirror() {
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			m.data[j*m.n+i] = m.data[i*m.n+j]
		}
	}
}
