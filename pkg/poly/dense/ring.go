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
	"math/big"

	"github.com/consensys/go-densepoly/pkg/poly/domain"
)

// Ring is the polynomial ring K[x_0 .. x_{gens-1}] viewed as a coefficient
// domain in its own right.  Its elements are level gens-1 polynomials over
// the base domain, which enables towers of polynomial domains and hence
// Inject and Eject.
type Ring[E any] struct {
	dom  domain.Domain[E]
	gens int
}

// NewRing constructs the polynomial ring over dom with the given number of
// generators, which must be at least one.
func NewRing[E any](dom domain.Domain[E], gens int) Ring[E] {
	if gens < 1 {
		panic(fmt.Sprintf("polynomial ring requires at least one generator, got %d", gens))
	}
	//
	return Ring[E]{dom, gens}
}

// Gens returns the number of generators of this ring.
func (r Ring[E]) Gens() int {
	return r.gens
}

// Dom returns the base coefficient domain of this ring.
func (r Ring[E]) Dom() domain.Domain[E] {
	return r.dom
}

// lev returns the level at which ring elements live.
func (r Ring[E]) lev() int {
	return r.gens - 1
}

// Name implementation for the Domain interface.
func (r Ring[E]) Name() string {
	return fmt.Sprintf("%s[%d]", r.dom.Name(), r.gens)
}

// Zero implementation for the Domain interface.
func (r Ring[E]) Zero() Poly[E] {
	return Zero[E](r.lev())
}

// One implementation for the Domain interface.
func (r Ring[E]) One() Poly[E] {
	return One(r.lev(), r.dom)
}

// Eq implementation for the Domain interface.
func (r Ring[E]) Eq(x, y Poly[E]) bool {
	return Equal(x, y, r.lev(), r.dom)
}

// IsZero implementation for the Domain interface.
func (r Ring[E]) IsZero(x Poly[E]) bool {
	return IsZero(x, r.lev())
}

// IsOne implementation for the Domain interface.
func (r Ring[E]) IsOne(x Poly[E]) bool {
	return IsOne(x, r.lev(), r.dom)
}

// IsNegative implementation for the Domain interface, via the sign of the
// ground leading coefficient.
func (r Ring[E]) IsNegative(x Poly[E]) bool {
	return IsNegative(x, r.lev(), r.dom)
}

// IsPositive implementation for the Domain interface.
func (r Ring[E]) IsPositive(x Poly[E]) bool {
	return IsPositive(x, r.lev(), r.dom)
}

// Of implementation for the Domain interface.  Membership is by type; the
// value is assumed to be a well-formed element of this ring.
func (r Ring[E]) Of(v any) (Poly[E], bool) {
	x, ok := v.(Poly[E])
	return x, ok
}

// Normal implementation for the Domain interface.  Ring elements are
// stripped; raw values are normalised in the base domain and promoted to
// constants.
func (r Ring[E]) Normal(v any) (Poly[E], error) {
	if x, ok := v.(Poly[E]); ok {
		return r.Canon(x), nil
	}
	//
	c, err := r.dom.Normal(v)
	//
	if err != nil {
		return Poly[E]{}, err
	}
	//
	return Const(c, r.lev(), r.dom), nil
}

// Canon implementation for the Domain interface.
func (r Ring[E]) Canon(x Poly[E]) Poly[E] {
	return stripAll(x, r.lev(), r.dom)
}

// FromInt implementation for the Domain interface.
func (r Ring[E]) FromInt(v int64) Poly[E] {
	return Const(r.dom.FromInt(v), r.lev(), r.dom)
}

// FromRat implementation for the Domain interface.
func (r Ring[E]) FromRat(v *big.Rat) (Poly[E], error) {
	c, err := r.dom.FromRat(v)
	//
	if err != nil {
		return Poly[E]{}, err
	}
	//
	return Const(c, r.lev(), r.dom), nil
}

// Rat implementation for the Domain interface.  Only ground constants have
// an exact rational image.
func (r Ring[E]) Rat(x Poly[E]) (*big.Rat, error) {
	if !IsGround(x, nil, r.lev(), r.dom) {
		return nil, fmt.Errorf("%s element has no exact rational image", r.Name())
	}
	//
	return r.dom.Rat(GroundLeadingCoeff(x, r.lev(), r.dom))
}

// String implementation for the Domain interface.
func (r Ring[E]) String(x Poly[E]) string {
	return String(x, r.lev(), r.dom)
}
