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
package domain

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// BLS12377 is the scalar field of the BLS12-377 curve as a coefficient
// domain.  Finite fields carry no order, so the sign predicates report
// negative for no element and positive for every nonzero element.
var BLS12377 = Bls12377Field{}

// Bls12377Field implements Domain over fr.Element of BLS12-377.
type Bls12377Field struct{}

// Name implementation for the Domain interface.
func (Bls12377Field) Name() string {
	return "GF(bls12-377)"
}

// Zero implementation for the Domain interface.
func (Bls12377Field) Zero() fr.Element {
	var elem fr.Element
	//
	return elem
}

// One implementation for the Domain interface.
func (Bls12377Field) One() fr.Element {
	return fr.One()
}

// Eq implementation for the Domain interface.
func (Bls12377Field) Eq(x, y fr.Element) bool {
	return x.Equal(&y)
}

// IsZero implementation for the Domain interface.
func (Bls12377Field) IsZero(x fr.Element) bool {
	return x.IsZero()
}

// IsOne implementation for the Domain interface.
func (Bls12377Field) IsOne(x fr.Element) bool {
	return x.IsOne()
}

// IsNegative implementation for the Domain interface.
func (Bls12377Field) IsNegative(fr.Element) bool {
	return false
}

// IsPositive implementation for the Domain interface.
func (Bls12377Field) IsPositive(x fr.Element) bool {
	return !x.IsZero()
}

// Of implementation for the Domain interface.
func (Bls12377Field) Of(v any) (fr.Element, bool) {
	x, ok := v.(fr.Element)
	return x, ok
}

// Normal implementation for the Domain interface.
func (d Bls12377Field) Normal(v any) (fr.Element, error) {
	var elem fr.Element
	//
	switch w := v.(type) {
	case int:
		elem.SetInt64(int64(w))
	case int64:
		elem.SetInt64(w)
	case uint64:
		elem.SetUint64(w)
	case *big.Int:
		elem.SetBigInt(w)
	case *big.Rat:
		return d.FromRat(w)
	case fr.Element:
		elem = w
	case string:
		if _, err := elem.SetString(w); err != nil {
			return elem, fmt.Errorf("cannot normalise %q into %s", w, d.Name())
		}
	default:
		return elem, fmt.Errorf("cannot normalise %v into %s", v, d.Name())
	}
	//
	return elem, nil
}

// Canon implementation for the Domain interface.  fr.Element values are
// always reduced.
func (Bls12377Field) Canon(x fr.Element) fr.Element {
	return x
}

// FromInt implementation for the Domain interface.
func (Bls12377Field) FromInt(v int64) fr.Element {
	var elem fr.Element
	//
	elem.SetInt64(v)
	//
	return elem
}

// FromRat implementation for the Domain interface.  The denominator is
// inverted modulo the field characteristic.
func (d Bls12377Field) FromRat(v *big.Rat) (fr.Element, error) {
	var num, den fr.Element
	//
	den.SetBigInt(v.Denom())
	//
	if den.IsZero() {
		return num, fmt.Errorf("%s has no image in %s", v.RatString(), d.Name())
	}
	//
	num.SetBigInt(v.Num())
	den.Inverse(&den)
	num.Mul(&num, &den)
	//
	return num, nil
}

// Rat implementation for the Domain interface, via the canonical integer
// representative.
func (Bls12377Field) Rat(x fr.Element) (*big.Rat, error) {
	return new(big.Rat).SetInt(x.BigInt(new(big.Int))), nil
}

// String implementation for the Domain interface.
func (Bls12377Field) String(x fr.Element) string {
	return x.String()
}
