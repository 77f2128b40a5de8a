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
	"github.com/consensys/go-densepoly/pkg/util"
)

// UniDeflate maps x^m to x for the largest stride m dividing every exponent
// of a univariate polynomial, returning the stride alongside the deflated
// polynomial.  Constants and zero deflate trivially with stride 1.
func UniDeflate[E any](f Poly[E], K domain.Domain[E]) (int, Poly[E]) {
	if Degree(f, 0) <= 0 {
		return 1, f
	}
	//
	g := 0
	//
	for i := 0; i < f.Len(); i++ {
		if K.IsZero(f.Coeff(f.Len() - 1 - i).Scalar()) {
			continue
		}
		//
		g = util.GCD(g, i)
		//
		if g == 1 {
			return 1, f
		}
	}
	//
	cs := make([]Poly[E], 0, f.Len()/g+1)
	//
	for i := 0; i < f.Len(); i += g {
		cs = append(cs, f.Coeff(i))
	}
	//
	return g, seq(cs)
}

// Deflate maps x_i^{B_i} to x_i for the largest per-variable strides B
// dividing every exponent of f, returning the stride vector alongside the
// deflated polynomial.
func Deflate[E any](f Poly[E], lev int, K domain.Domain[E]) ([]int, Poly[E]) {
	if IsZero(f, lev) {
		return ones(lev + 1), f
	}
	//
	var (
		B     = make([]int, lev+1)
		terms = ToTerms(f, lev, K, false)
		all1  = true
	)
	//
	strides(terms, B)
	//
	for i, b := range B {
		if b == 0 {
			B[i] = 1
		} else if b != 1 {
			all1 = false
		}
	}
	//
	if all1 {
		return B, f
	}
	//
	for k := range terms {
		for i, b := range B {
			terms[k].Monom[i] /= b
		}
	}
	//
	return B, FromTerms(terms, lev, K)
}

// UniMultiDeflate deflates several univariate polynomials by their common
// stride, so that the mapping x^m to x is simultaneously exact for all of
// them.
func UniMultiDeflate[E any](polys []Poly[E], K domain.Domain[E]) (int, []Poly[E]) {
	G := 0
	//
	for _, f := range polys {
		if Degree(f, 0) <= 0 {
			return 1, polys
		}
		//
		g := 0
		//
		for i := 0; i < f.Len(); i++ {
			if K.IsZero(f.Coeff(f.Len() - 1 - i).Scalar()) {
				continue
			}
			//
			g = util.GCD(g, i)
			//
			if g == 1 {
				return 1, polys
			}
		}
		//
		G = util.GCD(G, g)
	}
	//
	if G == 1 {
		return 1, polys
	}
	//
	result := make([]Poly[E], len(polys))
	//
	for k, f := range polys {
		cs := make([]Poly[E], 0, f.Len()/G+1)
		//
		for i := 0; i < f.Len(); i += G {
			cs = append(cs, f.Coeff(i))
		}
		//
		result[k] = seq(cs)
	}
	//
	return G, result
}

// MultiDeflate deflates several polynomials by their common per-variable
// strides.
func MultiDeflate[E any](polys []Poly[E], lev int, K domain.Domain[E]) ([]int, []Poly[E]) {
	if lev == 0 {
		m, result := UniMultiDeflate(polys, K)
		return []int{m}, result
	}
	//
	var (
		B     = make([]int, lev+1)
		terms = make([][]Term[E], len(polys))
		all1  = true
	)
	//
	for k, f := range polys {
		terms[k] = ToTerms(f, lev, K, false)
		strides(terms[k], B)
	}
	//
	for i, b := range B {
		if b == 0 {
			B[i] = 1
		} else if b != 1 {
			all1 = false
		}
	}
	//
	if all1 {
		return B, polys
	}
	//
	result := make([]Poly[E], len(polys))
	//
	for k := range polys {
		for j := range terms[k] {
			for i, b := range B {
				terms[k][j].Monom[i] /= b
			}
		}
		//
		result[k] = FromTerms(terms[k], lev, K)
	}
	//
	return B, result
}

// strides folds the exponent vectors of terms into the running per-variable
// gcd accumulator B, leaving unconstrained entries as given.
func strides[E any](terms []Term[E], B []int) {
	for _, t := range terms {
		for i, m := range t.Monom {
			B[i] = util.GCD(B[i], m)
		}
	}
}

// ones returns a slice of n ones.
func ones(n int) []int {
	B := make([]int, n)
	//
	for i := range B {
		B[i] = 1
	}
	//
	return B
}

// UniInflate maps x to x^m in a univariate polynomial.  The stride must be
// positive.
func UniInflate[E any](f Poly[E], m int, K domain.Domain[E]) (Poly[E], error) {
	if m <= 0 {
		return Poly[E]{}, fmt.Errorf("%w: inflation stride %d is not positive", ErrIndexRange, m)
	}
	//
	if m == 1 || f.Len() == 0 {
		return f, nil
	}
	//
	cs := make([]Poly[E], 0, (f.Len()-1)*m+1)
	cs = append(cs, f.Coeff(0))
	//
	for i := 1; i < f.Len(); i++ {
		cs = append(cs, Zeros[E](m-1, -1, K)...)
		cs = append(cs, f.Coeff(i))
	}
	//
	return seq(cs), nil
}

// Inflate maps x_i to x_i^{M_i}, reversing Deflate for the same stride
// vector.  Every stride must be positive and one stride per variable is
// required.
func Inflate[E any](f Poly[E], M []int, lev int, K domain.Domain[E]) (Poly[E], error) {
	if len(M) != lev+1 {
		return Poly[E]{}, fmt.Errorf("%w: %d strides for %d variables", ErrIndexRange, len(M), lev+1)
	}
	//
	all1 := true
	//
	for _, m := range M {
		if m <= 0 {
			return Poly[E]{}, fmt.Errorf("%w: inflation stride %d is not positive", ErrIndexRange, m)
		} else if m != 1 {
			all1 = false
		}
	}
	//
	if lev == 0 {
		return UniInflate(f, M[0], K)
	}
	//
	if all1 {
		return f, nil
	}
	//
	return recInflate(f, M, lev, 0, K), nil
}

func recInflate[E any](f Poly[E], M []int, v, i int, K domain.Domain[E]) Poly[E] {
	if v == 0 {
		g, _ := UniInflate(f, M[i], K)
		return g
	}
	//
	cs := make([]Poly[E], f.Len())
	//
	for k := range cs {
		cs[k] = recInflate(f.Coeff(k), M, v-1, i+1, K)
	}
	//
	if len(cs) == 0 {
		return seq(cs)
	}
	//
	result := make([]Poly[E], 0, (len(cs)-1)*M[i]+1)
	result = append(result, cs[0])
	//
	for _, c := range cs[1:] {
		result = append(result, Zeros[E](M[i]-1, v-1, K)...)
		result = append(result, c)
	}
	//
	return seq(result)
}
