package r3

import "fmt"

// Matrix is a 3x3 matrix of doubles stored in row major order.
type Matrix [3][3]float64

// MatrixFromCols returns the matrix whose columns are v0, v1 and v2.
func MatrixFromCols(v0, v1, v2 Vector) Matrix {
	var m Matrix
	m.SetCol(0, v0)
	m.SetCol(1, v1)
	m.SetCol(2, v2)
	return m
}

func (m Matrix) Transpose() Matrix {
	var t Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[j][i] = m[i][j]
		}
	}
	return t
}

// Col returns the i'th column.
func (m Matrix) Col(i int) Vector {
	return Vector{m[0][i], m[1][i], m[2][i]}
}

// Row returns the i'th row.
func (m Matrix) Row(i int) Vector {
	return Vector{m[i][0], m[i][1], m[i][2]}
}

// SetCol replaces the i'th column with v.
func (m *Matrix) SetCol(i int, v Vector) {
	m[0][i] = v.X
	m[1][i] = v.Y
	m[2][i] = v.Z
}

// MulVector returns m * v.
func (m Matrix) MulVector(v Vector) Vector {
	return Vector{m.Row(0).Dot(v), m.Row(1).Dot(v), m.Row(2).Dot(v)}
}

func (m Matrix) String() string {
	return fmt.Sprintf("[%v %v %v]", m.Row(0), m.Row(1), m.Row(2))
}
