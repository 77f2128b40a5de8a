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
	"math"
	"math/big"
)

// ZZ is the ring of exact integers over *big.Int.
var ZZ = IntegerRing{}

// IntegerRing implements Domain over arbitrary-precision integers.
type IntegerRing struct{}

// Name implementation for the Domain interface.
func (IntegerRing) Name() string {
	return "ZZ"
}

// Zero implementation for the Domain interface.
func (IntegerRing) Zero() *big.Int {
	return new(big.Int)
}

// One implementation for the Domain interface.
func (IntegerRing) One() *big.Int {
	return big.NewInt(1)
}

// Eq implementation for the Domain interface.
func (IntegerRing) Eq(x, y *big.Int) bool {
	return x.Cmp(y) == 0
}

// IsZero implementation for the Domain interface.
func (IntegerRing) IsZero(x *big.Int) bool {
	return x.Sign() == 0
}

// IsOne implementation for the Domain interface.
func (IntegerRing) IsOne(x *big.Int) bool {
	return x.IsInt64() && x.Int64() == 1
}

// IsNegative implementation for the Domain interface.
func (IntegerRing) IsNegative(x *big.Int) bool {
	return x.Sign() < 0
}

// IsPositive implementation for the Domain interface.
func (IntegerRing) IsPositive(x *big.Int) bool {
	return x.Sign() > 0
}

// Of implementation for the Domain interface.
func (IntegerRing) Of(v any) (*big.Int, bool) {
	x, ok := v.(*big.Int)
	return x, ok
}

// Normal implementation for the Domain interface.  Fractional floats are
// truncated towards zero.
func (d IntegerRing) Normal(v any) (*big.Int, error) {
	switch w := v.(type) {
	case int:
		return big.NewInt(int64(w)), nil
	case int64:
		return big.NewInt(w), nil
	case uint64:
		return new(big.Int).SetUint64(w), nil
	case float64:
		if math.IsInf(w, 0) || math.IsNaN(w) {
			return nil, fmt.Errorf("cannot normalise %v into %s", w, d.Name())
		}
		//
		return big.NewInt(int64(w)), nil
	case *big.Int:
		return new(big.Int).Set(w), nil
	case *big.Rat:
		if !w.IsInt() {
			return nil, fmt.Errorf("cannot normalise %s into %s", w.RatString(), d.Name())
		}
		//
		return new(big.Int).Set(w.Num()), nil
	case string:
		x, ok := new(big.Int).SetString(w, 10)
		if !ok {
			return nil, fmt.Errorf("cannot normalise %q into %s", w, d.Name())
		}
		//
		return x, nil
	default:
		return nil, fmt.Errorf("cannot normalise %v into %s", v, d.Name())
	}
}

// Canon implementation for the Domain interface.  Integers are always in
// canonical form.
func (IntegerRing) Canon(x *big.Int) *big.Int {
	return x
}

// FromInt implementation for the Domain interface.
func (IntegerRing) FromInt(v int64) *big.Int {
	return big.NewInt(v)
}

// FromRat implementation for the Domain interface.
func (d IntegerRing) FromRat(v *big.Rat) (*big.Int, error) {
	if !v.IsInt() {
		return nil, fmt.Errorf("%s has no image in %s", v.RatString(), d.Name())
	}
	//
	return new(big.Int).Set(v.Num()), nil
}

// Rat implementation for the Domain interface.
func (IntegerRing) Rat(x *big.Int) (*big.Rat, error) {
	return new(big.Rat).SetInt(x), nil
}

// String implementation for the Domain interface.
func (IntegerRing) String(x *big.Int) string {
	return x.String()
}
