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
)

// Combinator merges two aligned ground coefficients, optionally taking
// extra domain-valued arguments threaded through unchanged.
type Combinator[E any] func(a, b E, args ...E) E

// UniApplyPairs applies h to corresponding coefficients of two univariate
// polynomials, padding the shorter one with leading zeros so that degrees
// align, and strips the result.
func UniApplyPairs[E any](f, g Poly[E], h Combinator[E], args []E, K domain.Domain[E]) Poly[E] {
	var (
		fs = f.coeffs
		gs = g.coeffs
	)
	//
	if d := len(fs) - len(gs); d > 0 {
		gs = append(Zeros(d, -1, K), gs...)
	} else if d < 0 {
		fs = append(Zeros(-d, -1, K), fs...)
	}
	//
	cs := make([]Poly[E], len(fs))
	//
	for i := range cs {
		cs[i] = Ground(h(fs[i].Scalar(), gs[i].Scalar(), args...))
	}
	//
	return Strip(seq(cs), 0, K)
}

// ApplyPairs applies h to corresponding ground coefficients of two
// polynomials of the same level, aligning degrees at every level by padding
// with zeros, and strips the result at every level.
func ApplyPairs[E any](f, g Poly[E], h Combinator[E], args []E, lev int, K domain.Domain[E]) Poly[E] {
	if lev == 0 {
		return UniApplyPairs(f, g, h, args, K)
	}
	//
	var (
		fs = f.coeffs
		gs = g.coeffs
	)
	//
	if d := len(fs) - len(gs); d > 0 {
		gs = append(Zeros[E](d, lev-1, K), gs...)
	} else if d < 0 {
		fs = append(Zeros[E](-d, lev-1, K), fs...)
	}
	//
	cs := make([]Poly[E], len(fs))
	//
	for i := range cs {
		cs[i] = ApplyPairs(fs[i], gs[i], h, args, lev-1, K)
	}
	//
	return Strip(seq(cs), lev, K)
}
