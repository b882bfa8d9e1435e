// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"testing"
)

func BenchmarkTRS(b *testing.B) {
	var m M4
	var q Q
	q.Euler(0.1, 0.2, -0.1)
	t := V3{4, 0.2, -3}
	s := V3{0.5, 0.5, 0.5}
	for i := 0; i < b.N; i++ {
		m.TRS(&t, &q, &s)
	}
	b.Log(m)
}

func BenchmarkM4Mul(b *testing.B) {
	var m, v, p M4
	p.Perspective(1.3, 4.0/3.0, 0.1, 100)
	v.LookAt(&V3{4, 2, 5}, &V3{}, &V3{0, 1, 0})
	for i := 0; i < b.N; i++ {
		m.Mul(&p, &v)
	}
	b.Log(m)
}

func BenchmarkPoint(b *testing.B) {
	var m M4
	m.LookAt(&V3{4, 2, 5}, &V3{}, &V3{0, 1, 0})
	w := V3{1, 2, 3}
	var v V3
	for i := 0; i < b.N; i++ {
		m.Point(&v, &w)
	}
	b.Log(v)
}
