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

// QQ is the field of exact rationals over *big.Rat.  It doubles as the
// arbitrary-precision exact-number domain used as the interchange form for
// cross-domain conversion.
var QQ = RationalField{}

// RationalField implements Domain over arbitrary-precision rationals.
type RationalField struct{}

// Name implementation for the Domain interface.
func (RationalField) Name() string {
	return "QQ"
}

// Zero implementation for the Domain interface.
func (RationalField) Zero() *big.Rat {
	return new(big.Rat)
}

// One implementation for the Domain interface.
func (RationalField) One() *big.Rat {
	return big.NewRat(1, 1)
}

// Eq implementation for the Domain interface.
func (RationalField) Eq(x, y *big.Rat) bool {
	return x.Cmp(y) == 0
}

// IsZero implementation for the Domain interface.
func (RationalField) IsZero(x *big.Rat) bool {
	return x.Sign() == 0
}

// IsOne implementation for the Domain interface.
func (RationalField) IsOne(x *big.Rat) bool {
	return x.Cmp(big.NewRat(1, 1)) == 0
}

// IsNegative implementation for the Domain interface.
func (RationalField) IsNegative(x *big.Rat) bool {
	return x.Sign() < 0
}

// IsPositive implementation for the Domain interface.
func (RationalField) IsPositive(x *big.Rat) bool {
	return x.Sign() > 0
}

// Of implementation for the Domain interface.
func (RationalField) Of(v any) (*big.Rat, bool) {
	x, ok := v.(*big.Rat)
	return x, ok
}

// Normal implementation for the Domain interface.
func (d RationalField) Normal(v any) (*big.Rat, error) {
	switch w := v.(type) {
	case int:
		return big.NewRat(int64(w), 1), nil
	case int64:
		return big.NewRat(w, 1), nil
	case uint64:
		return new(big.Rat).SetInt(new(big.Int).SetUint64(w)), nil
	case float64:
		if math.IsInf(w, 0) || math.IsNaN(w) {
			return nil, fmt.Errorf("cannot normalise %v into %s", w, d.Name())
		}
		//
		return new(big.Rat).SetFloat64(w), nil
	case *big.Int:
		return new(big.Rat).SetInt(w), nil
	case *big.Rat:
		return new(big.Rat).Set(w), nil
	case string:
		x, ok := new(big.Rat).SetString(w)
		if !ok {
			return nil, fmt.Errorf("cannot normalise %q into %s", w, d.Name())
		}
		//
		return x, nil
	default:
		return nil, fmt.Errorf("cannot normalise %v into %s", v, d.Name())
	}
}

// Canon implementation for the Domain interface.  big.Rat values are kept
// reduced by math/big itself.
func (RationalField) Canon(x *big.Rat) *big.Rat {
	return x
}

// FromInt implementation for the Domain interface.
func (RationalField) FromInt(v int64) *big.Rat {
	return big.NewRat(v, 1)
}

// FromRat implementation for the Domain interface.
func (RationalField) FromRat(v *big.Rat) (*big.Rat, error) {
	return new(big.Rat).Set(v), nil
}

// Rat implementation for the Domain interface.
func (RationalField) Rat(x *big.Rat) (*big.Rat, error) {
	return new(big.Rat).Set(x), nil
}

// String implementation for the Domain interface.
func (RationalField) String(x *big.Rat) string {
	return x.RatString()
}
