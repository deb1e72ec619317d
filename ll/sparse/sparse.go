/*
Package sparse implements a simple type for sparse integer matrices.
It backs the predict table of the LL parser: rows are non-terminals, columns
are terminals. Every entry is either a single int32 or a pair (int32,int32);
the second value of a pair records a competing entry.

This implementation uses the COO algorithm (a.k.a. triplet-encoding), with
triplets kept sorted by (row, column).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
	"sort"
)

// IntMatrix is a type for a sparse matrix of integer values. Construct with
//
//     M := NewIntMatrix(10, 10, -1)  // last parameter is M's null-value
//
// Now
//
//     M.Set(2, 3, 4711)              // set a value
//     v := M.Value(2, 3)             // returns 4711
//     M.Add(2, 3, 123)               // add a second value
//     a, b := M.Values(2, 3)         // returns 4711, 123
//     v = M.Value(9, 9)              // returns -1, i.e. the null-value
//
// Values cannot be deleted, but may be overwritten with the null-value.
type IntMatrix struct {
	values  []triplet
	rowcnt  int
	colcnt  int
	nullval int32
}

type triplet struct {
	row, col int
	a, b     int32
}

// NewIntMatrix creates a new matrix for int, size m x n. The 3rd argument is a null-value,
// indicating empty entries (use DefaultNullValue if you haven't any specific
// requirements).
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{
		rowcnt:  m,
		colcnt:  n,
		nullval: nullValue,
	}
}

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue = -2147483648

// M returns the row count.
func (m *IntMatrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *IntMatrix) N() int {
	return m.colcnt
}

// NullValue returns this matrix' null value
func (m *IntMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of positions set.
func (m *IntMatrix) ValueCount() int {
	return len(m.values)
}

// find returns the index of the first triplet not left of (i,j).
func (m *IntMatrix) find(i, j int) int {
	return sort.Search(len(m.values), func(k int) bool {
		t := m.values[k]
		return t.row > i || t.row == i && t.col >= j
	})
}

// Value returns the primary value at position (i,j), or NullValue.
func (m *IntMatrix) Value(i, j int) int32 {
	a, _ := m.Values(i, j)
	return a
}

// Values returns the pair of values at position (i,j), or (NullValue, NullValue).
func (m *IntMatrix) Values(i, j int) (int32, int32) {
	k := m.find(i, j)
	if k < len(m.values) && m.values[k].row == i && m.values[k].col == j {
		return m.values[k].a, m.values[k].b
	}
	return m.nullval, m.nullval
}

// Set a value in the matrix at position (i,j), replacing all values present.
func (m *IntMatrix) Set(i, j int, value int32) *IntMatrix {
	return m.setOrAdd(i, j, value, false)
}

// Add a value in the matrix at position (i,j). If the position is empty, value
// becomes the primary value. If it holds one value, value becomes the secondary
// value. A full position is left untouched.
func (m *IntMatrix) Add(i, j int, value int32) *IntMatrix {
	return m.setOrAdd(i, j, value, true)
}

func (m *IntMatrix) setOrAdd(i, j int, value int32, doAdd bool) *IntMatrix {
	if i < 0 || i >= m.rowcnt || j < 0 || j >= m.colcnt {
		panic(fmt.Sprintf("sparse: index (%d,%d) out of range for %dx%d matrix", i, j,
			m.rowcnt, m.colcnt))
	}
	k := m.find(i, j)
	if k < len(m.values) && m.values[k].row == i && m.values[k].col == j {
		t := &m.values[k]
		switch {
		case !doAdd || t.a == m.nullval:
			t.a, t.b = value, m.nullval
		case t.b == m.nullval:
			t.b = value
		}
		return m
	}
	tnew := triplet{row: i, col: j, a: value, b: m.nullval}
	m.values = append(m.values, tnew) // make room
	copy(m.values[k+1:], m.values[k:])
	m.values[k] = tnew
	return m
}

// Each calls f for every position set, in row-major order.
func (m *IntMatrix) Each(f func(i, j int, a, b int32)) {
	for _, t := range m.values {
		f(t.row, t.col, t.a, t.b)
	}
}

func (m *IntMatrix) String() string {
	return fmt.Sprintf("IntMatrix(%dx%d, %d values)", m.rowcnt, m.colcnt, len(m.values))
}
