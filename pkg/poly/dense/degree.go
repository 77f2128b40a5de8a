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

// LeadingCoeff returns the leading coefficient of f, which is a polynomial
// one level down, or the zero of that level when f is empty.
func LeadingCoeff[E any](f Poly[E], lev int, K domain.Domain[E]) Poly[E] {
	if f.Len() == 0 {
		if lev == 0 {
			return Ground(K.Zero())
		}
		//
		return Zero[E](lev - 1)
	}
	//
	return f.Coeff(0)
}

// TrailingCoeff returns the trailing coefficient of f, which is a polynomial
// one level down, or the zero of that level when f is empty.
func TrailingCoeff[E any](f Poly[E], lev int, K domain.Domain[E]) Poly[E] {
	if f.Len() == 0 {
		if lev == 0 {
			return Ground(K.Zero())
		}
		//
		return Zero[E](lev - 1)
	}
	//
	return f.Coeff(f.Len() - 1)
}

// GroundLeadingCoeff descends every level always taking the leading
// coefficient, returning the resulting ground element.
func GroundLeadingCoeff[E any](f Poly[E], lev int, K domain.Domain[E]) E {
	for ; lev > 0; lev-- {
		f = LeadingCoeff(f, lev, K)
	}
	//
	if f.Len() == 0 {
		return K.Zero()
	}
	//
	return f.Coeff(0).Scalar()
}

// GroundTrailingCoeff descends every level always taking the trailing
// coefficient, returning the resulting ground element.
func GroundTrailingCoeff[E any](f Poly[E], lev int, K domain.Domain[E]) E {
	for ; lev > 0; lev-- {
		f = TrailingCoeff(f, lev, K)
	}
	//
	if f.Len() == 0 {
		return K.Zero()
	}
	//
	return f.Coeff(f.Len() - 1).Scalar()
}

// Degree returns the degree of f in its leading variable, where the zero
// polynomial has degree -1.
func Degree[E any](f Poly[E], lev int) int {
	if IsZero(f, lev) {
		return -1
	}
	//
	return f.Len() - 1
}

// DegreeIn returns the degree of f in variable j, where variable 0 is the
// leading variable.  The maximum is taken across every branch.
func DegreeIn[E any](f Poly[E], j, lev int) (int, error) {
	if j < 0 || j > lev {
		return 0, fmt.Errorf("%w: variable %d outside [0, %d]", ErrIndexRange, j, lev)
	}
	//
	if j == 0 {
		return Degree(f, lev), nil
	}
	//
	return recDegreeIn(f, lev, 0, j), nil
}

func recDegreeIn[E any](f Poly[E], lev, i, j int) int {
	if i == j {
		return Degree(f, lev)
	}
	//
	deg := -1
	//
	for _, c := range f.coeffs {
		if d := recDegreeIn(c, lev-1, i+1, j); d > deg {
			deg = d
		}
	}
	//
	return deg
}

// DegreeList returns the degree of f in every variable, computed as a
// running maximum across all branches.
func DegreeList[E any](f Poly[E], lev int) []int {
	degs := make([]int, lev+1)
	//
	for i := range degs {
		degs[i] = -1
	}
	//
	recDegreeList(f, lev, 0, degs)
	//
	return degs
}

func recDegreeList[E any](f Poly[E], lev, i int, degs []int) {
	if d := Degree(f, lev); d > degs[i] {
		degs[i] = d
	}
	//
	if lev > 0 {
		for _, c := range f.coeffs {
			recDegreeList(c, lev-1, i+1, degs)
		}
	}
}

// LeadingTerm returns the exponent vector and scalar coefficient of the
// leading term of f, obtained by repeatedly taking the leading coefficient.
func LeadingTerm[E any](f Poly[E], lev int, K domain.Domain[E]) ([]int, E) {
	monom := make([]int, 0, lev+1)
	//
	for ; lev > 0; lev-- {
		monom = append(monom, f.Len()-1)
		f = f.Coeff(0)
	}
	//
	if f.Len() == 0 {
		return append(monom, 0), K.Zero()
	}
	//
	return append(monom, f.Len()-1), f.Coeff(0).Scalar()
}

// Nth returns the coefficient of x^n in the leading variable of f, which is
// a polynomial one level down.  Degrees beyond the current degree yield
// zero; a negative n is an error.
func Nth[E any](f Poly[E], n, lev int, K domain.Domain[E]) (Poly[E], error) {
	if n < 0 {
		return Poly[E]{}, fmt.Errorf("%w: coefficient index %d is negative", ErrIndexRange, n)
	}
	//
	if n >= f.Len() {
		if lev == 0 {
			return Ground(K.Zero()), nil
		}
		//
		return Zero[E](lev - 1), nil
	}
	//
	return f.Coeff(f.Len() - 1 - n), nil
}

// GroundNth returns the ground coefficient of the monomial whose exponent
// vector is N, which must have one entry per variable.
func GroundNth[E any](f Poly[E], N []int, lev int, K domain.Domain[E]) (E, error) {
	for _, n := range N {
		if n < 0 {
			return K.Zero(), fmt.Errorf("%w: coefficient index %d is negative", ErrIndexRange, n)
		}
		//
		if n >= f.Len() {
			return K.Zero(), nil
		}
		//
		f = f.Coeff(f.Len() - 1 - n)
	}
	//
	return f.Scalar(), nil
}
