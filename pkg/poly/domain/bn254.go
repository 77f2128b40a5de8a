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

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// BN254 is the scalar field of the BN254 curve as a coefficient domain.
var BN254 = Bn254Field{}

// Bn254Field implements Domain over fr.Element of BN254.
type Bn254Field struct{}

// Name implementation for the Domain interface.
func (Bn254Field) Name() string {
	return "GF(bn254)"
}

// Zero implementation for the Domain interface.
func (Bn254Field) Zero() fr.Element {
	var elem fr.Element
	//
	return elem
}

// One implementation for the Domain interface.
func (Bn254Field) One() fr.Element {
	return fr.One()
}

// Eq implementation for the Domain interface.
func (Bn254Field) Eq(x, y fr.Element) bool {
	return x.Equal(&y)
}

// IsZero implementation for the Domain interface.
func (Bn254Field) IsZero(x fr.Element) bool {
	return x.IsZero()
}

// IsOne implementation for the Domain interface.
func (Bn254Field) IsOne(x fr.Element) bool {
	return x.IsOne()
}

// IsNegative implementation for the Domain interface.
func (Bn254Field) IsNegative(fr.Element) bool {
	return false
}

// IsPositive implementation for the Domain interface.
func (Bn254Field) IsPositive(x fr.Element) bool {
	return !x.IsZero()
}

// Of implementation for the Domain interface.
func (Bn254Field) Of(v any) (fr.Element, bool) {
	x, ok := v.(fr.Element)
	return x, ok
}

// Normal implementation for the Domain interface.
func (d Bn254Field) Normal(v any) (fr.Element, error) {
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

// Canon implementation for the Domain interface.
func (Bn254Field) Canon(x fr.Element) fr.Element {
	return x
}

// FromInt implementation for the Domain interface.
func (Bn254Field) FromInt(v int64) fr.Element {
	var elem fr.Element
	//
	elem.SetInt64(v)
	//
	return elem
}

// FromRat implementation for the Domain interface.
func (d Bn254Field) FromRat(v *big.Rat) (fr.Element, error) {
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
func (Bn254Field) Rat(x fr.Element) (*big.Rat, error) {
	return new(big.Rat).SetInt(x.BigInt(new(big.Int))), nil
}

// String implementation for the Domain interface.
func (Bn254Field) String(x fr.Element) string {
	return x.String()
}
