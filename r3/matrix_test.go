package r3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixCols(t *testing.T) {
	m := MatrixFromCols(Vector{1, 2, 3}, Vector{4, 5, 6}, Vector{7, 8, 9})
	assert.Equal(t, Vector{4, 5, 6}, m.Col(1))
	assert.Equal(t, Vector{1, 4, 7}, m.Row(0))
	assert.Equal(t, Vector{2, 5, 8}, m.Transpose().Col(1))

	m.SetCol(2, Vector{0, 0, 1})
	assert.Equal(t, Vector{0, 0, 1}, m.Col(2))
}

func TestMatrixMulVector(t *testing.T) {
	m := MatrixFromCols(Vector{0, 1, 0}, Vector{-1, 0, 0}, Vector{0, 0, 1})
	assert.Equal(t, Vector{0, 1, 0}, m.MulVector(Vector{1, 0, 0}))
	assert.Equal(t, Vector{1, 0, 0}, m.Transpose().MulVector(m.MulVector(Vector{1, 0, 0})))
	assert.Equal(t, Vector{-2, 1, 3}, m.MulVector(Vector{1, 2, 3}))
}
