// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package dense

import (
	"bytes"

	"github.com/consensys/go-densepoly/pkg/poly/domain"
	"golang.org/x/crypto/sha3"
)

// Poly is one node of the recursive dense encoding of a multivariate
// polynomial over some coefficient domain.  A node at level 0 or above is an
// ordered coefficient sequence, indexed from the highest degree in the
// leading variable down to the lowest; a node at level -1 is a bare ground
// element.  The level is never stored: every operation takes it as an
// explicit, authoritative argument, and a value is only meaningful together
// with its level.  Values returned from this package are treated as
// immutable; use Copy to obtain an independently mutable snapshot.
type Poly[E any] struct {
	coeffs []Poly[E]
	ground E
}

// Ground wraps a bare domain element as a level -1 polynomial.
func Ground[E any](c E) Poly[E] {
	return Poly[E]{ground: c}
}

// Seq builds a polynomial one level above its coefficients, which are given
// from the highest degree down to the lowest.
func Seq[E any](coeffs ...Poly[E]) Poly[E] {
	return Poly[E]{coeffs: coeffs}
}

// Uni builds a stripped univariate polynomial from ground coefficients given
// from the highest degree down to the lowest.
func Uni[E any](K domain.Domain[E], coeffs ...E) Poly[E] {
	cs := make([]Poly[E], len(coeffs))
	//
	for i, c := range coeffs {
		cs[i] = Ground(c)
	}
	//
	return Strip(seq(cs), 0, K)
}

// Len returns the number of stored coefficients, which for a stripped
// nonzero polynomial is its degree plus one.
func (p Poly[E]) Len() int {
	return len(p.coeffs)
}

// Coeff returns the ith stored coefficient, counting from the highest
// degree.
func (p Poly[E]) Coeff(i int) Poly[E] {
	return p.coeffs[i]
}

// Scalar returns the ground element of a level -1 polynomial.
func (p Poly[E]) Scalar() E {
	return p.ground
}

// seq wraps an existing coefficient slice without copying it.
func seq[E any](coeffs []Poly[E]) Poly[E] {
	return Poly[E]{coeffs: coeffs}
}

// Zero returns the canonical zero polynomial at the given level, which is
// lev levels of singleton wrapping around the empty sequence.  The level
// must be non-negative; the ground-level zero is the domain's own zero.
func Zero[E any](lev int) Poly[E] {
	var p Poly[E]
	//
	for i := 0; i < lev; i++ {
		p = seq([]Poly[E]{p})
	}
	//
	return p
}

// One returns the constant one polynomial at the given level.
func One[E any](lev int, K domain.Domain[E]) Poly[E] {
	return Const(K.One(), lev, K)
}

// Const returns the constant polynomial with ground value c at the given
// level.  A zero constant collapses to the canonical zero, and level -1
// yields a bare ground node.
func Const[E any](c E, lev int, K domain.Domain[E]) Poly[E] {
	if lev < 0 {
		return Ground(c)
	}
	//
	if K.IsZero(c) {
		return Zero[E](lev)
	}
	//
	p := Ground(c)
	//
	for i := 0; i <= lev; i++ {
		p = seq([]Poly[E]{p})
	}
	//
	return p
}

// Zeros returns n fresh copies of the canonical zero at the given level, or
// n ground zeros when the level is negative.
func Zeros[E any](n, lev int, K domain.Domain[E]) []Poly[E] {
	if n == 0 {
		return nil
	}
	//
	zs := make([]Poly[E], n)
	//
	for i := range zs {
		if lev < 0 {
			zs[i] = Ground(K.Zero())
		} else {
			zs[i] = Zero[E](lev)
		}
	}
	//
	return zs
}

// Consts returns n copies of the constant polynomial c at the given level.
func Consts[E any](c E, n, lev int, K domain.Domain[E]) []Poly[E] {
	if n == 0 {
		return nil
	}
	//
	cs := make([]Poly[E], n)
	//
	for i := range cs {
		cs[i] = Const(c, lev, K)
	}
	//
	return cs
}

// IsZero reports whether f is the zero polynomial at the given level.  This
// is a structural test: only the canonical zero qualifies.
func IsZero[E any](f Poly[E], lev int) bool {
	for ; lev > 0; lev-- {
		if f.Len() != 1 {
			return false
		}
		//
		f = f.Coeff(0)
	}
	//
	return f.Len() == 0
}

// IsOne reports whether f is the constant one at the given level.
func IsOne[E any](f Poly[E], lev int, K domain.Domain[E]) bool {
	one := K.One()
	return IsGround(f, &one, lev, K)
}

// IsGround reports whether f is a constant at the given level.  When c is
// non-nil, f must additionally equal that constant; when c is nil any
// single-coefficient (or zero) polynomial qualifies.
func IsGround[E any](f Poly[E], c *E, lev int, K domain.Domain[E]) bool {
	if c != nil && K.IsZero(*c) {
		return IsZero(f, lev)
	}
	//
	for ; lev > 0; lev-- {
		if f.Len() != 1 {
			return false
		}
		//
		f = f.Coeff(0)
	}
	//
	if c == nil {
		return f.Len() <= 1
	}
	//
	return f.Len() == 1 && K.Eq(f.Coeff(0).Scalar(), *c)
}

// IsNegative reports whether the ground leading coefficient of f is
// negative under the domain's sign predicate.
func IsNegative[E any](f Poly[E], lev int, K domain.Domain[E]) bool {
	return K.IsNegative(GroundLeadingCoeff(f, lev, K))
}

// IsPositive reports whether the ground leading coefficient of f is
// positive under the domain's sign predicate.
func IsPositive[E any](f Poly[E], lev int, K domain.Domain[E]) bool {
	return K.IsPositive(GroundLeadingCoeff(f, lev, K))
}

// Equal reports whether f and g are identical polynomials at the given
// level, comparing ground coefficients with the domain's equality.
func Equal[E any](f, g Poly[E], lev int, K domain.Domain[E]) bool {
	if lev < 0 {
		return K.Eq(f.ground, g.ground)
	}
	//
	if f.Len() != g.Len() {
		return false
	}
	//
	for i := range f.coeffs {
		if !Equal(f.coeffs[i], g.coeffs[i], lev-1, K) {
			return false
		}
	}
	//
	return true
}

// Copy returns a deep copy of f whose coefficient sequences are fresh at
// every level, and hence independently mutable.
func Copy[E any](f Poly[E], lev int) Poly[E] {
	if lev < 0 {
		return f
	}
	//
	cs := make([]Poly[E], f.Len())
	//
	for i := range cs {
		cs[i] = Copy(f.Coeff(i), lev-1)
	}
	//
	return seq(cs)
}

// Key returns a canonical string form of f, usable as a map key.  Two
// polynomials of the same level have equal keys exactly when they are equal.
func Key[E any](f Poly[E], lev int, K domain.Domain[E]) string {
	var buf bytes.Buffer
	//
	writeKey(&buf, f, lev, K)
	//
	return buf.String()
}

// Fingerprint returns a fixed-size digest of the canonical key of f.
func Fingerprint[E any](f Poly[E], lev int, K domain.Domain[E]) [32]byte {
	return sha3.Sum256([]byte(Key(f, lev, K)))
}

func writeKey[E any](buf *bytes.Buffer, f Poly[E], lev int, K domain.Domain[E]) {
	if lev < 0 {
		buf.WriteString(K.String(f.ground))
		return
	}
	//
	buf.WriteByte('(')
	//
	for i, c := range f.coeffs {
		if i != 0 {
			buf.WriteByte(',')
		}
		//
		writeKey(buf, c, lev-1, K)
	}
	//
	buf.WriteByte(')')
}

// String renders the nested dense form of f, e.g. "[[1, 0], [], [2, 3]]".
func String[E any](f Poly[E], lev int, K domain.Domain[E]) string {
	var buf bytes.Buffer
	//
	writeString(&buf, f, lev, K)
	//
	return buf.String()
}

func writeString[E any](buf *bytes.Buffer, f Poly[E], lev int, K domain.Domain[E]) {
	if lev < 0 {
		buf.WriteString(K.String(f.ground))
		return
	}
	//
	buf.WriteByte('[')
	//
	for i, c := range f.coeffs {
		if i != 0 {
			buf.WriteString(", ")
		}
		//
		writeString(buf, c, lev-1, K)
	}
	//
	buf.WriteByte(']')
}
