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

// Strip removes the maximal prefix of structurally zero leading coefficients
// from f at the given level.  An already stripped input is returned
// unchanged, and a wholly zero value collapses to the canonical zero.  Only
// the top level is stripped; use Validate for a full recursive strip of
// untrusted data.
func Strip[E any](f Poly[E], lev int, K domain.Domain[E]) Poly[E] {
	if lev < 0 {
		return f
	}
	//
	if lev == 0 {
		if f.Len() == 0 || !K.IsZero(f.Coeff(0).Scalar()) {
			return f
		}
		//
		i := 0
		//
		for ; i < f.Len(); i++ {
			if !K.IsZero(f.Coeff(i).Scalar()) {
				break
			}
		}
		//
		return seq(f.coeffs[i:])
	}
	//
	if IsZero(f, lev) {
		return f
	}
	//
	i := 0
	//
	for ; i < f.Len(); i++ {
		if !IsZero(f.Coeff(i), lev-1) {
			break
		}
	}
	//
	if i == f.Len() {
		return Zero[E](lev)
	}
	//
	return seq(f.coeffs[i:])
}

// stripAll strips f recursively at every level.
func stripAll[E any](f Poly[E], lev int, K domain.Domain[E]) Poly[E] {
	if lev <= 0 {
		return Strip(f, lev, K)
	}
	//
	cs := make([]Poly[E], f.Len())
	//
	for i := range cs {
		cs[i] = stripAll(f.Coeff(i), lev-1, K)
	}
	//
	return Strip(seq(cs), lev, K)
}

// Normal maps every ground coefficient of f through the domain's canonical
// form and strips the result.
func Normal[E any](f Poly[E], lev int, K domain.Domain[E]) Poly[E] {
	if lev <= 0 {
		if lev < 0 {
			return Ground(K.Canon(f.ground))
		}
		//
		cs := make([]Poly[E], f.Len())
		//
		for i := range cs {
			cs[i] = Ground(K.Canon(f.Coeff(i).Scalar()))
		}
		//
		return Strip(seq(cs), 0, K)
	}
	//
	cs := make([]Poly[E], f.Len())
	//
	for i := range cs {
		cs[i] = Normal(f.Coeff(i), lev-1, K)
	}
	//
	return Strip(seq(cs), lev, K)
}

// Validate walks an arbitrarily nested value (sequences as []any, leaves as
// raw values), checking that every leaf belongs to the domain and that
// nesting depth is uniform across all branches.  It returns the fully
// stripped polynomial together with its inferred level.  A bare leaf
// validates to level -1.
func Validate[E any](v any, K domain.Domain[E]) (Poly[E], int, error) {
	f, levels, err := buildChecked(v, 0, K)
	//
	if err != nil {
		return Poly[E]{}, 0, err
	}
	//
	if len(levels) != 1 {
		return Poly[E]{}, 0, ErrStructure
	}
	//
	var lev int
	for l := range levels {
		lev = l
	}
	//
	if lev < 0 {
		return f, lev, nil
	}
	//
	return stripAll(f, lev, K), lev, nil
}

// buildChecked converts a nested value into a polynomial, collecting the set
// of levels at which leaves (or empty sequences) were found.  Uniform depth
// means that set is a singleton.
func buildChecked[E any](v any, depth int, K domain.Domain[E]) (Poly[E], map[int]struct{}, error) {
	vs, ok := v.([]any)
	//
	if !ok {
		c, member := K.Of(v)
		//
		if !member {
			return Poly[E]{}, nil, fmt.Errorf("%w: %v is not an element of %s", ErrDomain, v, K.Name())
		}
		//
		return Ground(c), map[int]struct{}{depth - 1: {}}, nil
	}
	//
	if len(vs) == 0 {
		return Poly[E]{}, map[int]struct{}{depth: {}}, nil
	}
	//
	var (
		levels = make(map[int]struct{})
		cs     = make([]Poly[E], len(vs))
	)
	//
	for i, c := range vs {
		sub, ls, err := buildChecked(c, depth+1, K)
		//
		if err != nil {
			return Poly[E]{}, nil, err
		}
		//
		for l := range ls {
			levels[l] = struct{}{}
		}
		//
		cs[i] = sub
	}
	//
	return seq(cs), levels, nil
}
