// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"strings"
)

// M4 is a column-major 4x4 matrix of float32.
type M4 [4]V4

// I makes m an identity matrix.
func (m *M4) I() { *m = M4{{1}, {0, 1}, {0, 0, 1}, {0, 0, 0, 1}} }

// Mul sets m to contain l ⋅ r.
func (m *M4) Mul(l, r *M4) {
	var p M4
	for i := range p {
		for j := range p {
			for k := range p {
				p[i][j] += l[k][j] * r[i][k]
			}
		}
	}
	*m = p
}

// Transpose sets m to contain the transpose of n.
func (m *M4) Transpose(n *M4) {
	for i := range m {
		m[i][i] = n[i][i]
		for j := i + 1; j < len(m); j++ {
			m[i][j], m[j][i] = n[j][i], n[i][j]
		}
	}
}

// Col returns the i-th column of m.
// It panics with ErrIndexOutOfRange if i is not in [0, 3].
func (m *M4) Col(i int) V4 {
	checkIndex(i)
	return m[i]
}

// Row returns the i-th row of m.
// It panics with ErrIndexOutOfRange if i is not in [0, 3].
func (m *M4) Row(i int) V4 {
	checkIndex(i)
	return V4{m[0][i], m[1][i], m[2][i], m[3][i]}
}

// Equal reports whether every element of m is
// within Epsilon of the respective element of n.
func (m *M4) Equal(n *M4) bool {
	for i := range m {
		if !m[i].Equal(&n[i]) {
			return false
		}
	}
	return true
}

// String returns the debug text of m, one row per line.
func (m M4) String() string {
	var b strings.Builder
	for i := range m {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.Row(i).String())
	}
	return b.String()
}

// Mul sets v to contain m ⋅ w,
// treating w as a column vector.
func (v *V4) Mul(m *M4, w *V4) {
	var u V4
	for i := range m {
		for j := range u {
			u[j] += m[i][j] * w[i]
		}
	}
	*v = u
}

// MulRow sets v to contain w ⋅ m,
// treating w as a row vector.
func (v *V4) MulRow(w *V4, m *M4) {
	var u V4
	for i := range u {
		u[i] = w.Dot(&m[i])
	}
	*v = u
}

// MulM4V4 returns m ⋅ v.
func MulM4V4(m M4, v V4) (u V4) {
	u.Mul(&m, &v)
	return
}

// MulV4M4 returns v ⋅ m.
func MulV4M4(v V4, m M4) (u V4) {
	u.MulRow(&v, &m)
	return
}
