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

	"github.com/holiman/uint256"
)

// U256 is the ring of integers modulo 2^256 over uint256.Int, useful for
// polynomials whose coefficients are 256-bit machine words.
var U256 = Uint256Ring{}

// Uint256Ring implements Domain over 256-bit unsigned integers.
type Uint256Ring struct{}

// modulus256 = 2^256, used to reduce out-of-range big integers.
var modulus256 = new(big.Int).Lsh(big.NewInt(1), 256)

// Name implementation for the Domain interface.
func (Uint256Ring) Name() string {
	return "U256"
}

// Zero implementation for the Domain interface.
func (Uint256Ring) Zero() *uint256.Int {
	return uint256.NewInt(0)
}

// One implementation for the Domain interface.
func (Uint256Ring) One() *uint256.Int {
	return uint256.NewInt(1)
}

// Eq implementation for the Domain interface.
func (Uint256Ring) Eq(x, y *uint256.Int) bool {
	return x.Eq(y)
}

// IsZero implementation for the Domain interface.
func (Uint256Ring) IsZero(x *uint256.Int) bool {
	return x.IsZero()
}

// IsOne implementation for the Domain interface.
func (Uint256Ring) IsOne(x *uint256.Int) bool {
	return x.Eq(uint256.NewInt(1))
}

// IsNegative implementation for the Domain interface.  The ring is unsigned.
func (Uint256Ring) IsNegative(*uint256.Int) bool {
	return false
}

// IsPositive implementation for the Domain interface.
func (Uint256Ring) IsPositive(x *uint256.Int) bool {
	return !x.IsZero()
}

// Of implementation for the Domain interface.
func (Uint256Ring) Of(v any) (*uint256.Int, bool) {
	x, ok := v.(*uint256.Int)
	return x, ok
}

// Normal implementation for the Domain interface.  Values are reduced
// modulo 2^256.
func (d Uint256Ring) Normal(v any) (*uint256.Int, error) {
	switch w := v.(type) {
	case int:
		return d.FromInt(int64(w)), nil
	case int64:
		return d.FromInt(w), nil
	case uint64:
		return uint256.NewInt(w), nil
	case *big.Int:
		return d.reduce(w), nil
	case *big.Rat:
		return d.FromRat(w)
	case *uint256.Int:
		return w.Clone(), nil
	case string:
		x, ok := new(big.Int).SetString(w, 10)
		if !ok {
			return nil, fmt.Errorf("cannot normalise %q into %s", w, d.Name())
		}
		//
		return d.reduce(x), nil
	default:
		return nil, fmt.Errorf("cannot normalise %v into %s", v, d.Name())
	}
}

// Canon implementation for the Domain interface.
func (Uint256Ring) Canon(x *uint256.Int) *uint256.Int {
	return x
}

// FromInt implementation for the Domain interface.  Negative values wrap
// modulo 2^256.
func (d Uint256Ring) FromInt(v int64) *uint256.Int {
	return d.reduce(big.NewInt(v))
}

// FromRat implementation for the Domain interface.
func (d Uint256Ring) FromRat(v *big.Rat) (*uint256.Int, error) {
	if !v.IsInt() {
		return nil, fmt.Errorf("%s has no image in %s", v.RatString(), d.Name())
	}
	//
	return d.reduce(v.Num()), nil
}

// Rat implementation for the Domain interface.
func (Uint256Ring) Rat(x *uint256.Int) (*big.Rat, error) {
	return new(big.Rat).SetInt(x.ToBig()), nil
}

// String implementation for the Domain interface.
func (Uint256Ring) String(x *uint256.Int) string {
	return x.Dec()
}

func (Uint256Ring) reduce(v *big.Int) *uint256.Int {
	var elem uint256.Int
	//
	elem.SetFromBig(new(big.Int).Mod(v, modulus256))
	//
	return &elem
}
