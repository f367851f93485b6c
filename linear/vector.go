// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package linear implements math for 3D graphics.
package linear

import (
	"fmt"
	"io"
	"math"
)

// Epsilon is the tolerance of every near-equality check
// in the package.
const Epsilon float32 = 1e-6

func isZero(s float32) bool { return s < Epsilon && s > -Epsilon }

// V4 is a 4-component vector of float32.
// The components are in the order x, y, z, w.
type V4 [4]float32

// XAxis returns the vector (1, 0, 0, 0).
func XAxis() V4 { return V4{1, 0, 0, 0} }

// YAxis returns the vector (0, 1, 0, 0).
func YAxis() V4 { return V4{0, 1, 0, 0} }

// ZAxis returns the vector (0, 0, 1, 0).
func ZAxis() V4 { return V4{0, 0, 1, 0} }

// WAxis returns the vector (0, 0, 0, 1).
func WAxis() V4 { return V4{0, 0, 0, 1} }

// Origin returns the zero vector.
func Origin() V4 { return V4{} }

// At returns the i-th component of v.
// It panics with ErrIndexOutOfRange if i is not in [0, 3].
func (v *V4) At(i int) float32 {
	checkIndex(i)
	return v[i]
}

// SetAt sets the i-th component of v to s.
// It panics with ErrIndexOutOfRange if i is not in [0, 3].
func (v *V4) SetAt(i int, s float32) {
	checkIndex(i)
	v[i] = s
}

// X, Y, Z and W return the respective component of v.
func (v *V4) X() float32 { return v[0] }
func (v *V4) Y() float32 { return v[1] }
func (v *V4) Z() float32 { return v[2] }
func (v *V4) W() float32 { return v[3] }

// Set sets the components of v.
func (v *V4) Set(x, y, z, w float32) { *v = V4{x, y, z, w} }

// Zero sets all components of v to 0.
func (v *V4) Zero() { *v = V4{} }

// Add sets v to contain l + r.
func (v *V4) Add(l, r *V4) {
	for i := range v {
		v[i] = l[i] + r[i]
	}
}

// Sub sets v to contain l - r.
func (v *V4) Sub(l, r *V4) {
	for i := range v {
		v[i] = l[i] - r[i]
	}
}

// Scale sets v to contain s ⋅ w.
func (v *V4) Scale(s float32, w *V4) {
	for i := range v {
		v[i] = s * w[i]
	}
}

// Div sets v to contain w / s.
// It panics with ErrDivisionByZero if s is 0.
func (v *V4) Div(w *V4, s float32) {
	if s == 0 {
		panic(fmt.Errorf("linear: V4.Div by %v: %w", s, ErrDivisionByZero))
	}
	for i := range v {
		v[i] = w[i] / s
	}
}

// dot accumulates in float64 so that the squared length
// of any finite V4 is finite.
func (v *V4) dot(w *V4) (d float64) {
	for i := range v {
		d += float64(v[i]) * float64(w[i])
	}
	return
}

// Dot returns v ⋅ w.
func (v *V4) Dot(w *V4) float32 { return float32(v.dot(w)) }

// LenSq returns the squared length of v.
// It is +Inf if the result does not fit in a float32.
func (v *V4) LenSq() float32 { return float32(v.dot(v)) }

// Len returns the length of v.
func (v *V4) Len() float32 { return float32(math.Sqrt(v.dot(v))) }

// IsZero reports whether the squared length of v
// is within Epsilon of 0.
func (v *V4) IsZero() bool { return isZero(v.LenSq()) }

// IsUnit reports whether the squared length of v
// is within Epsilon of 1.
func (v *V4) IsUnit() bool { return isZero(1 - v.LenSq()) }

// Equal reports whether every component of v is
// within Epsilon of the respective component of w.
// Use == for exact comparison.
func (v *V4) Equal(w *V4) bool {
	for i := range v {
		if !isZero(v[i] - w[i]) {
			return false
		}
	}
	return true
}

// Clean sets the near-zero components of v to 0.
func (v *V4) Clean() {
	for i := range v {
		if isZero(v[i]) {
			v[i] = 0
		}
	}
}

// Norm sets v to contain w normalized.
// It panics with ErrDivisionByZero if w is a zero vector
// and with ErrNotFinite if w has a NaN or infinite component.
func (v *V4) Norm(w *V4) {
	lsq := w.dot(w)
	switch {
	case math.IsNaN(lsq) || math.IsInf(lsq, 0):
		panic(fmt.Errorf("linear: V4.Norm of %v: %w", *w, ErrNotFinite))
	case lsq < float64(Epsilon):
		panic(fmt.Errorf("linear: V4.Norm of %v: %w", *w, ErrDivisionByZero))
	}
	f := 1 / math.Sqrt(lsq)
	for i := range v {
		v[i] = float32(float64(w[i]) * f)
	}
}

// String returns the debug text of v, formatted
// as "<x, y, z, w>".
func (v V4) String() string {
	return fmt.Sprintf("<%g, %g, %g, %g>", v[0], v[1], v[2], v[3])
}

// WriteTo writes the debug text of v to w.
func (v *V4) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, v.String())
	return int64(n), err
}

// AddV4 returns v + w.
func AddV4(v, w V4) (u V4) {
	u.Add(&v, &w)
	return
}

// SubV4 returns v - w.
func SubV4(v, w V4) (u V4) {
	u.Sub(&v, &w)
	return
}

// ScaleV4 returns s ⋅ v.
func ScaleV4(s float32, v V4) (u V4) {
	u.Scale(s, &v)
	return
}

// DivV4 returns v / s.
// It panics with ErrDivisionByZero if s is 0.
func DivV4(v V4, s float32) (u V4) {
	u.Div(&v, s)
	return
}

// DotV4 returns v ⋅ w.
func DotV4(v, w V4) float32 { return v.Dot(&w) }

// LenSqV4 returns the squared length of v.
func LenSqV4(v V4) float32 { return v.LenSq() }

// LenV4 returns the length of v.
func LenV4(v V4) float32 { return v.Len() }

// NormV4 returns v normalized.
// It panics as V4.Norm does.
func NormV4(v V4) V4 {
	v.Norm(&v)
	return v
}

// CleanV4 returns v with its near-zero components set to 0.
func CleanV4(v V4) V4 {
	v.Clean()
	return v
}
