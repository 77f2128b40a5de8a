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
	"fmt"

	"github.com/consensys/go-densepoly/pkg/poly/domain"
)

// Swap exchanges variables i and j of f, where variable 0 is the leading
// variable.
func Swap[E any](f Poly[E], i, j, lev int, K domain.Domain[E]) (Poly[E], error) {
	if i < 0 || i > lev {
		return Poly[E]{}, fmt.Errorf("%w: variable %d outside [0, %d]", ErrIndexRange, i, lev)
	}
	//
	if j < 0 || j > lev {
		return Poly[E]{}, fmt.Errorf("%w: variable %d outside [0, %d]", ErrIndexRange, j, lev)
	}
	//
	if i == j {
		return f, nil
	}
	//
	terms := ToTerms(f, lev, K, false)
	//
	for k := range terms {
		m := terms[k].Monom
		m[i], m[j] = m[j], m[i]
	}
	//
	return FromTerms(terms, lev, K), nil
}

// Permute rearranges the variables of f such that variable k of the input
// becomes variable P[k] of the output.  P must be a permutation of the
// variable indices.
func Permute[E any](f Poly[E], P []int, lev int, K domain.Domain[E]) (Poly[E], error) {
	if len(P) != lev+1 {
		return Poly[E]{}, fmt.Errorf("%w: permutation has %d entries, expected %d", ErrIndexRange, len(P), lev+1)
	}
	//
	seen := make([]bool, lev+1)
	//
	for _, p := range P {
		if p < 0 || p > lev || seen[p] {
			return Poly[E]{}, fmt.Errorf("%w: %v is not a permutation of [0, %d]", ErrIndexRange, P, lev)
		}
		//
		seen[p] = true
	}
	//
	terms := ToTerms(f, lev, K, false)
	//
	for k := range terms {
		m := make([]int, lev+1)
		//
		for v, e := range terms[k].Monom {
			m[P[v]] = e
		}
		//
		terms[k].Monom = m
	}
	//
	return FromTerms(terms, lev, K), nil
}

// Nest wraps f in l additional singleton levels, turning a level lev
// polynomial into a constant-in-the-new-variables polynomial of level
// lev+l.  A ground input is promoted to the constant at level l-1.
func Nest[E any](f Poly[E], l, lev int, K domain.Domain[E]) Poly[E] {
	if lev < 0 {
		return Const(f.Scalar(), l-1, K)
	}
	//
	for i := 0; i < l; i++ {
		f = seq([]Poly[E]{f})
	}
	//
	return f
}

// Raise introduces l fresh trailing variables, lifting every ground
// coefficient of f to a constant polynomial in those variables.  The result
// lives at level lev+l.
func Raise[E any](f Poly[E], l, lev int, K domain.Domain[E]) Poly[E] {
	if l == 0 {
		return f
	}
	//
	if lev == 0 {
		if f.Len() == 0 {
			return Zero[E](l)
		}
		//
		cs := make([]Poly[E], f.Len())
		//
		for i := range cs {
			cs[i] = Const(f.Coeff(i).Scalar(), l-1, K)
		}
		//
		return seq(cs)
	}
	//
	cs := make([]Poly[E], f.Len())
	//
	for i := range cs {
		cs[i] = Raise(f.Coeff(i), l, lev-1, K)
	}
	//
	return seq(cs)
}

// Exclude removes the variables f does not actually use, returning their
// (ascending) indices together with the reduced polynomial and its level.
// Univariate and ground inputs are returned unchanged, as is any input
// using every variable.
func Exclude[E any](f Poly[E], lev int, K domain.Domain[E]) ([]int, Poly[E], int) {
	if lev == 0 || IsGround(f, nil, lev, K) {
		return nil, f, lev
	}
	//
	var (
		terms = ToTerms(f, lev, K, false)
		J     []int
	)
	//
	for j := 0; j <= lev; j++ {
		used := false
		//
		for _, t := range terms {
			if t.Monom[j] != 0 {
				used = true
				break
			}
		}
		//
		if !used {
			J = append(J, j)
		}
	}
	//
	if len(J) == 0 {
		return nil, f, lev
	}
	//
	for k := range terms {
		m := terms[k].Monom
		//
		for i := len(J) - 1; i >= 0; i-- {
			m = append(m[:J[i]], m[J[i]+1:]...)
		}
		//
		terms[k].Monom = m
	}
	//
	w := lev - len(J)
	//
	return J, FromTerms(terms, w, K), w
}

// Include reintroduces unused variables at the (ascending) indices J,
// reversing Exclude.  The result lives at level lev+len(J).
func Include[E any](f Poly[E], J []int, lev int, K domain.Domain[E]) Poly[E] {
	if len(J) == 0 {
		return f
	}
	//
	terms := ToTerms(f, lev, K, false)
	//
	for k := range terms {
		m := terms[k].Monom
		//
		for _, j := range J {
			m = append(m[:j], append([]int{0}, m[j:]...)...)
		}
		//
		terms[k].Monom = m
	}
	//
	return FromTerms(terms, lev+len(J), K)
}

// Inject flattens a polynomial whose coefficients are themselves elements
// of the polynomial ring r, producing a polynomial over the base domain
// together with its level.  By default the outer variables come first; with
// front set, the ring's generators lead instead.
func Inject[E any](f Poly[Poly[E]], lev int, r Ring[E], front bool) (Poly[E], int) {
	var (
		w     = lev + r.gens
		terms []Term[E]
	)
	//
	for _, t := range ToTerms[Poly[E]](f, lev, r, false) {
		for _, s := range ToTerms(t.Coeff, r.lev(), r.dom, false) {
			var m []int
			//
			if front {
				m = append(append(make([]int, 0, w+1), s.Monom...), t.Monom...)
			} else {
				m = append(append(make([]int, 0, w+1), t.Monom...), s.Monom...)
			}
			//
			terms = append(terms, Term[E]{Monom: m, Coeff: s.Coeff})
		}
	}
	//
	return FromTerms(terms, w, r.dom), w
}

// Eject groups the generators of the ring r back into the coefficients,
// reversing Inject.  With front set the ring's generators are taken from
// the leading variables, otherwise from the trailing ones.  The result
// level is returned alongside.
func Eject[E any](f Poly[E], lev int, r Ring[E], front bool) (Poly[Poly[E]], int) {
	type group struct {
		monom []int
		inner []Term[E]
	}
	//
	var (
		v      = lev - r.gens + 1
		index  = make(map[string]int)
		groups []group
	)
	//
	for _, t := range ToTerms(f, lev, r.dom, false) {
		var outer, inner []int
		//
		if front {
			inner, outer = t.Monom[:r.gens], t.Monom[r.gens:]
		} else {
			outer, inner = t.Monom[:v], t.Monom[v:]
		}
		//
		key := fmt.Sprint(outer)
		//
		if _, ok := index[key]; !ok {
			index[key] = len(groups)
			groups = append(groups, group{monom: outer})
		}
		//
		g := &groups[index[key]]
		g.inner = append(g.inner, Term[E]{Monom: inner, Coeff: t.Coeff})
	}
	//
	terms := make([]Term[Poly[E]], len(groups))
	//
	for i, g := range groups {
		terms[i] = Term[Poly[E]]{Monom: g.monom, Coeff: FromTerms(g.inner, r.lev(), r.dom)}
	}
	//
	return FromTerms[Poly[E]](terms, v-1, r), v - 1
}

// Slice extracts the terms of f whose degree in the leading variable lies
// in the half-open range [m, n), keeping them at their original degrees.
func Slice[E any](f Poly[E], m, n, lev int, K domain.Domain[E]) (Poly[E], error) {
	return SliceIn(f, m, n, 0, lev, K)
}

// SliceIn extracts the terms of f whose degree in variable j lies in the
// half-open range [m, n).  Terms outside the range are discarded.
func SliceIn[E any](f Poly[E], m, n, j, lev int, K domain.Domain[E]) (Poly[E], error) {
	if j < 0 || j > lev {
		return Poly[E]{}, fmt.Errorf("%w: variable %d outside [0, %d]", ErrIndexRange, j, lev)
	}
	//
	if m < 0 || n < m {
		return Poly[E]{}, fmt.Errorf("%w: degree range [%d, %d)", ErrIndexRange, m, n)
	}
	//
	if lev == 0 {
		return sliceUni(f, m, n, K), nil
	}
	//
	var kept []Term[E]
	//
	for _, t := range ToTerms(f, lev, K, false) {
		if m <= t.Monom[j] && t.Monom[j] < n {
			kept = append(kept, t)
		}
	}
	//
	return FromTerms(kept, lev, K), nil
}

// sliceUni keeps the coefficients of x^m .. x^{n-1}, padding the low end
// with zeros so surviving terms retain their degrees.
func sliceUni[E any](f Poly[E], m, n int, K domain.Domain[E]) Poly[E] {
	var (
		k  = f.Len()
		lo = 0
		hi = k
	)
	//
	if k > n {
		lo = k - n
	}
	//
	if k >= m {
		hi = k - m
	} else {
		hi = 0
	}
	//
	if hi <= lo {
		return Poly[E]{}
	}
	//
	cs := make([]Poly[E], 0, hi-lo+m)
	cs = append(cs, f.coeffs[lo:hi]...)
	cs = append(cs, Zeros(m, -1, K)...)
	//
	return Strip(seq(cs), 0, K)
}

// Reverse reverses the coefficient order of a univariate polynomial,
// mapping x^k to x^{deg-k}, and strips the result.
func Reverse[E any](f Poly[E], K domain.Domain[E]) Poly[E] {
	cs := make([]Poly[E], f.Len())
	//
	for i := range cs {
		cs[i] = f.Coeff(f.Len() - 1 - i)
	}
	//
	return Strip(seq(cs), 0, K)
}
