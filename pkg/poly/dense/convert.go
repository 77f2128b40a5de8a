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
	"math/big"
	"sort"

	"github.com/consensys/go-densepoly/pkg/poly/domain"
	"github.com/consensys/go-densepoly/pkg/poly/order"
)

// Term pairs an exponent vector with a ground coefficient.  The sparse form
// of a polynomial is a term slice whose monomials are unique and whose
// coefficients are nonzero, unless explicitly stated otherwise.
type Term[E any] struct {
	Monom []int
	Coeff E
}

// ToTerms converts f into its sparse form.  When withZero is set and f is
// the zero polynomial, a single explicit zero term is emitted instead of an
// empty slice.  Terms are listed with ascending exponent in the leading
// variable.
func ToTerms[E any](f Poly[E], lev int, K domain.Domain[E], withZero bool) []Term[E] {
	if lev == 0 {
		if f.Len() == 0 && withZero {
			return []Term[E]{{Monom: []int{0}, Coeff: K.Zero()}}
		}
		//
		var (
			n  = f.Len() - 1
			ts []Term[E]
		)
		//
		for k := 0; k <= n; k++ {
			if c := f.Coeff(n - k).Scalar(); !K.IsZero(c) {
				ts = append(ts, Term[E]{Monom: []int{k}, Coeff: c})
			}
		}
		//
		return ts
	}
	//
	if IsZero(f, lev) && withZero {
		return []Term[E]{{Monom: make([]int, lev+1), Coeff: K.Zero()}}
	}
	//
	var (
		n  = Degree(f, lev)
		ts []Term[E]
	)
	//
	for k := 0; k <= n; k++ {
		for _, t := range ToTerms(f.Coeff(n-k), lev-1, K, false) {
			monom := append([]int{k}, t.Monom...)
			ts = append(ts, Term[E]{Monom: monom, Coeff: t.Coeff})
		}
	}
	//
	return ts
}

// FromTerms reconstructs the dense form from a sparse term slice, filling
// every absent slot with zero.  Monomials must be unique; an empty slice
// yields the canonical zero.
func FromTerms[E any](terms []Term[E], lev int, K domain.Domain[E]) Poly[E] {
	if lev == 0 {
		if len(terms) == 0 {
			return Poly[E]{}
		}
		//
		n := 0
		//
		for _, t := range terms {
			if t.Monom[0] > n {
				n = t.Monom[0]
			}
		}
		//
		cs := make([]Poly[E], n+1)
		//
		for i := range cs {
			cs[i] = Ground(K.Zero())
		}
		//
		for _, t := range terms {
			cs[n-t.Monom[0]] = Ground(t.Coeff)
		}
		//
		return Strip(seq(cs), 0, K)
	}
	//
	if len(terms) == 0 {
		return Zero[E](lev)
	}
	// Group terms by their exponent in the leading variable.
	var (
		groups = make(map[int][]Term[E])
		n      = 0
	)
	//
	for _, t := range terms {
		head := t.Monom[0]
		groups[head] = append(groups[head], Term[E]{Monom: t.Monom[1:], Coeff: t.Coeff})
		//
		if head > n {
			n = head
		}
	}
	//
	cs := make([]Poly[E], n+1)
	//
	for k := n; k >= 0; k-- {
		if g, ok := groups[k]; ok {
			cs[n-k] = FromTerms(g, lev-1, K)
		} else {
			cs[n-k] = Zero[E](lev - 1)
		}
	}
	//
	return Strip(seq(cs), lev, K)
}

// ToMap converts a univariate polynomial into an exponent-keyed coefficient
// map.  When withZero is set and f is zero, a single explicit zero entry is
// emitted.
func ToMap[E any](f Poly[E], K domain.Domain[E], withZero bool) map[int]E {
	result := make(map[int]E)
	//
	if f.Len() == 0 {
		if withZero {
			result[0] = K.Zero()
		}
		//
		return result
	}
	//
	n := f.Len() - 1
	//
	for k := 0; k <= n; k++ {
		if c := f.Coeff(n - k).Scalar(); !K.IsZero(c) {
			result[k] = c
		}
	}
	//
	return result
}

// FromMap reconstructs a univariate polynomial from an exponent-keyed
// coefficient map.
func FromMap[E any](m map[int]E, K domain.Domain[E]) Poly[E] {
	terms := make([]Term[E], 0, len(m))
	//
	for k, c := range m {
		terms = append(terms, Term[E]{Monom: []int{k}, Coeff: c})
	}
	//
	return FromTerms(terms, 0, K)
}

// Convert maps the ground domain of f from src to dst, going through the
// exact-number bridge of the Domain interface.  The input is returned
// unchanged when src and dst are the same domain.
func Convert[A, B any](f Poly[A], lev int, src domain.Domain[A], dst domain.Domain[B]) (Poly[B], error) {
	if g, ok := any(f).(Poly[B]); ok && src.Name() == dst.Name() {
		return g, nil
	}
	//
	return convert(f, lev, src, dst)
}

func convert[A, B any](f Poly[A], lev int, src domain.Domain[A], dst domain.Domain[B]) (Poly[B], error) {
	if lev < 0 {
		c, err := bridge(f.ground, src, dst)
		return Ground(c), err
	}
	//
	cs := make([]Poly[B], f.Len())
	//
	for i := range cs {
		c, err := convert(f.Coeff(i), lev-1, src, dst)
		//
		if err != nil {
			return Poly[B]{}, err
		}
		//
		cs[i] = c
	}
	//
	return Strip(seq(cs), lev, dst), nil
}

func bridge[A, B any](c A, src domain.Domain[A], dst domain.Domain[B]) (B, error) {
	r, err := src.Rat(c)
	//
	if err != nil {
		var zero B
		return zero, err
	}
	//
	return dst.FromRat(r)
}

// ToRat converts f into the exact rational domain.
func ToRat[E any](f Poly[E], lev int, K domain.Domain[E]) (Poly[*big.Rat], error) {
	return Convert(f, lev, K, domain.QQ)
}

// FromRat converts an exact rational polynomial into the domain K.
func FromRat[E any](f Poly[*big.Rat], lev int, K domain.Domain[E]) (Poly[E], error) {
	return Convert(f, lev, domain.QQ, K)
}

// ListTerms lists all nonzero terms of f, by default in descending order of
// the leading variable and recursively below, or sorted descending under
// the given monomial order.  The zero polynomial yields a single explicit
// zero term.
func ListTerms[E any](f Poly[E], lev int, K domain.Domain[E], ord order.Order) []Term[E] {
	terms := recListTerms(f, lev, nil, K)
	//
	if len(terms) == 0 {
		return []Term[E]{{Monom: make([]int, lev+1), Coeff: K.Zero()}}
	}
	//
	if ord != nil {
		sort.SliceStable(terms, func(i, j int) bool {
			return ord(terms[i].Monom, terms[j].Monom) > 0
		})
	}
	//
	return terms
}

func recListTerms[E any](f Poly[E], lev int, monom []int, K domain.Domain[E]) []Term[E] {
	var (
		d     = Degree(f, lev)
		terms []Term[E]
	)
	//
	if lev == 0 {
		for i, c := range f.coeffs {
			if K.IsZero(c.Scalar()) {
				continue
			}
			//
			m := append(append([]int{}, monom...), d-i)
			terms = append(terms, Term[E]{Monom: m, Coeff: c.Scalar()})
		}
	} else {
		for i, c := range f.coeffs {
			m := append(append([]int{}, monom...), d-i)
			terms = append(terms, recListTerms(c, lev-1, m, K)...)
		}
	}
	//
	return terms
}
