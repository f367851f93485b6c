// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package script

import (
	"github.com/gviegas/vecmath/linear"
)

type operands struct {
	v      []linear.V4
	m      []linear.M4
	scalar float32
	index  int
}

type op struct {
	// sig has one byte per operand:
	// 'v' for vector and 'm' for matrix.
	sig string
	// vec is set if fn returns a linear.V4.
	vec bool
	fn  func(a *operands) any
}

var ops = map[string]op{
	"add":    {"vv", true, func(a *operands) any { return linear.AddV4(a.v[0], a.v[1]) }},
	"sub":    {"vv", true, func(a *operands) any { return linear.SubV4(a.v[0], a.v[1]) }},
	"scale":  {"v", true, func(a *operands) any { return linear.ScaleV4(a.scalar, a.v[0]) }},
	"div":    {"v", true, func(a *operands) any { return linear.DivV4(a.v[0], a.scalar) }},
	"dot":    {"vv", false, func(a *operands) any { return linear.DotV4(a.v[0], a.v[1]) }},
	"len":    {"v", false, func(a *operands) any { return linear.LenV4(a.v[0]) }},
	"lensq":  {"v", false, func(a *operands) any { return linear.LenSqV4(a.v[0]) }},
	"norm":   {"v", true, func(a *operands) any { return linear.NormV4(a.v[0]) }},
	"clean":  {"v", true, func(a *operands) any { return linear.CleanV4(a.v[0]) }},
	"iszero": {"v", false, func(a *operands) any { return a.v[0].IsZero() }},
	"isunit": {"v", false, func(a *operands) any { return a.v[0].IsUnit() }},
	"equal":  {"vv", false, func(a *operands) any { return a.v[0].Equal(&a.v[1]) }},
	"at":     {"v", false, func(a *operands) any { return a.v[0].At(a.index) }},
	"mulrow": {"vm", true, func(a *operands) any { return linear.MulV4M4(a.v[0], a.m[0]) }},
	"mul":    {"mv", true, func(a *operands) any { return linear.MulM4V4(a.m[0], a.v[0]) }},
}

type env struct {
	vecs map[string]linear.V4
	mats map[string]linear.M4
}

func newEnv(s *Script) *env {
	e := &env{
		vecs: make(map[string]linear.V4, len(s.Vectors)),
		mats: make(map[string]linear.M4, len(s.Matrices)),
	}
	for name, c := range s.Vectors {
		e.vecs[name] = linear.V4(c)
	}
	for name, cols := range s.Matrices {
		var m linear.M4
		for i := range m {
			m[i] = linear.V4(cols[i])
		}
		e.mats[name] = m
	}
	return e
}

// eval runs a validated step. Precondition failures in
// the linear package are returned as errors.
func (e *env) eval(st *Step) (v any, err error) {
	a := operands{scalar: st.Scalar, index: st.Index}
	for _, name := range st.Args {
		if m, ok := e.mats[name]; ok {
			a.m = append(a.m, m)
		} else {
			a.v = append(a.v, e.vecs[name])
		}
	}
	defer linear.Recover(&err)
	return ops[st.Op].fn(&a), nil
}
