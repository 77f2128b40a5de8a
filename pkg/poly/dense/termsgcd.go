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
	"github.com/consensys/go-densepoly/pkg/poly/domain"
	"github.com/consensys/go-densepoly/pkg/poly/order"
)

// UniTermsGCD factors out the largest power of x dividing a univariate
// polynomial, returning that power alongside the quotient.  Zero and
// polynomials with a nonzero constant term are returned unchanged with
// power zero.
func UniTermsGCD[E any](f Poly[E], K domain.Domain[E]) (int, Poly[E]) {
	if f.Len() == 0 || !K.IsZero(TrailingCoeff(f, 0, K).Scalar()) {
		return 0, f
	}
	//
	i := 0
	//
	for ; i < f.Len(); i++ {
		if !K.IsZero(f.Coeff(f.Len() - 1 - i).Scalar()) {
			break
		}
	}
	//
	return i, seq(f.coeffs[:f.Len()-i])
}

// TermsGCD factors out the greatest common monomial of f, returning its
// exponent vector alongside the quotient.  Zero and polynomials with a
// nonzero ground trailing coefficient are returned unchanged with the zero
// monomial.
func TermsGCD[E any](f Poly[E], lev int, K domain.Domain[E]) ([]int, Poly[E]) {
	if IsZero(f, lev) || !K.IsZero(GroundTrailingCoeff(f, lev, K)) {
		return make([]int, lev+1), f
	}
	//
	var (
		terms  = ToTerms(f, lev, K, false)
		monoms = make([][]int, len(terms))
	)
	//
	for i, t := range terms {
		monoms[i] = t.Monom
	}
	//
	G := order.Min(monoms...)
	//
	zero := true
	//
	for _, g := range G {
		if g != 0 {
			zero = false
			break
		}
	}
	//
	if zero {
		return G, f
	}
	//
	for k := range terms {
		quo, _ := order.Div(terms[k].Monom, G)
		terms[k].Monom = quo
	}
	//
	return G, FromTerms(terms, lev, K)
}
