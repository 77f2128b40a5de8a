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
	"math/big"
	"testing"
)

func Test_ZZ_01(t *testing.T) {
	if !ZZ.IsZero(ZZ.Zero()) || !ZZ.IsOne(ZZ.One()) {
		t.Errorf("integer constants misbehave")
	}
}

func Test_ZZ_02(t *testing.T) {
	x, err := ZZ.Normal("12")
	//
	if err != nil || x.Int64() != 12 {
		t.Errorf("normalised %s (%v), expected 12", x, err)
	}
}

func Test_ZZ_03(t *testing.T) {
	// Fractional floats truncate towards zero.
	x, err := ZZ.Normal(-7.9)
	//
	if err != nil || x.Int64() != -7 {
		t.Errorf("normalised %s (%v), expected -7", x, err)
	}
}

func Test_ZZ_04(t *testing.T) {
	if _, err := ZZ.Normal("7/2"); err == nil {
		t.Errorf("expected normalisation failure")
	}
}

func Test_ZZ_05(t *testing.T) {
	if _, ok := ZZ.Of(int64(1)); ok {
		t.Errorf("raw int64 accepted as a domain element")
	}
	//
	if _, ok := ZZ.Of(big.NewInt(1)); !ok {
		t.Errorf("big integer rejected")
	}
}

func Test_ZZ_06(t *testing.T) {
	if !ZZ.IsNegative(ZZ.FromInt(-3)) || !ZZ.IsPositive(ZZ.FromInt(3)) {
		t.Errorf("integer signs misreported")
	}
}

func Test_QQ_01(t *testing.T) {
	x, err := QQ.Normal("7/2")
	//
	if err != nil || x.Cmp(big.NewRat(7, 2)) != 0 {
		t.Errorf("normalised %s (%v), expected 7/2", x.RatString(), err)
	}
}

func Test_QQ_02(t *testing.T) {
	// The rational bridge is lossless for integers.
	r, err := ZZ.Rat(ZZ.FromInt(-9))
	//
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	x, err := QQ.FromRat(r)
	//
	if err != nil || x.Cmp(big.NewRat(-9, 1)) != 0 {
		t.Errorf("bridged to %s (%v), expected -9", x.RatString(), err)
	}
}

func Test_QQ_03(t *testing.T) {
	if QQ.String(big.NewRat(1, 3)) != "1/3" {
		t.Errorf("unexpected rendering %s", QQ.String(big.NewRat(1, 3)))
	}
}

func Test_BLS12377_01(t *testing.T) {
	if !BLS12377.IsZero(BLS12377.Zero()) || !BLS12377.IsOne(BLS12377.One()) {
		t.Errorf("field constants misbehave")
	}
}

func Test_BLS12377_02(t *testing.T) {
	// Negative integers wrap modulo the characteristic.
	x := BLS12377.FromInt(-1)
	y := BLS12377.FromInt(1)
	//
	x.Add(&x, &y)
	//
	if !BLS12377.IsZero(x) {
		t.Errorf("-1 + 1 != 0 in %s", BLS12377.Name())
	}
}

func Test_BLS12377_03(t *testing.T) {
	// Halving round trips through the rational bridge.
	x, err := BLS12377.FromRat(big.NewRat(1, 2))
	//
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	two := BLS12377.FromInt(2)
	x.Mul(&x, &two)
	//
	if !BLS12377.IsOne(x) {
		t.Errorf("2 * (1/2) != 1 in %s", BLS12377.Name())
	}
}

func Test_BLS12377_04(t *testing.T) {
	// No field element is negative under the sign predicate.
	if BLS12377.IsNegative(BLS12377.FromInt(-5)) {
		t.Errorf("field element reported negative")
	}
}

func Test_BN254_01(t *testing.T) {
	x, err := BN254.Normal("21888242871839275222246405745257275088548364400416034343698204186575808495616")
	//
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// That decimal string is -1 mod the BN254 scalar prime.
	y := BN254.FromInt(-1)
	//
	if !BN254.Eq(x, y) {
		t.Errorf("expected the additive inverse of one")
	}
}

func Test_U256_01(t *testing.T) {
	// Arithmetic wraps modulo 2^256.
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	x, err := U256.Normal(max.String())
	//
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	y := U256.FromInt(-1)
	//
	if !U256.Eq(x, y) {
		t.Errorf("-1 does not wrap to 2^256 - 1")
	}
}

func Test_U256_02(t *testing.T) {
	if _, err := U256.FromRat(big.NewRat(1, 2)); err == nil {
		t.Errorf("expected failure for a non-integer rational")
	}
}

func Test_U256_03(t *testing.T) {
	r, err := U256.Rat(U256.FromInt(42))
	//
	if err != nil || r.Cmp(big.NewRat(42, 1)) != 0 {
		t.Errorf("rational image %v (%v), expected 42", r, err)
	}
}
