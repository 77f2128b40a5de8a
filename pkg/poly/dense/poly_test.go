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
	"math/big"
	"testing"

	"github.com/consensys/go-densepoly/pkg/poly/domain"
)

func Test_Zero_01(t *testing.T) {
	checkString(t, Zero[*big.Int](0), 0, "[]")
}

func Test_Zero_02(t *testing.T) {
	checkString(t, Zero[*big.Int](2), 2, "[[[]]]")
}

func Test_Zero_03(t *testing.T) {
	if !IsZero(Zero[*big.Int](3), 3) {
		t.Errorf("canonical zero not recognised")
	}
}

func Test_Zero_04(t *testing.T) {
	// A singleton chain ending in a nonzero ground is not zero.
	f := mk(t, 1, l(l(zz(1))))
	//
	if IsZero(f, 1) {
		t.Errorf("constant one reported zero")
	}
}

func Test_Const_01(t *testing.T) {
	checkString(t, Const(zz(5), 1, domain.ZZ), 1, "[[5]]")
}

func Test_Const_02(t *testing.T) {
	// Zero constants collapse to the canonical zero.
	checkEqual(t, Const(zz(0), 2, domain.ZZ), Zero[*big.Int](2), 2)
}

func Test_Const_03(t *testing.T) {
	if c := Const(zz(7), -1, domain.ZZ); c.Scalar().Int64() != 7 {
		t.Errorf("ground constant %s, expected 7", c.Scalar())
	}
}

func Test_One_01(t *testing.T) {
	if !IsOne(One(2, domain.ZZ), 2, domain.ZZ) {
		t.Errorf("constant one not recognised")
	}
}

func Test_Ground_01(t *testing.T) {
	f := mk(t, 1, l(l(zz(3))))
	//
	if !IsGround(f, nil, 1, domain.ZZ) {
		t.Errorf("constant not recognised as ground")
	}
}

func Test_Ground_02(t *testing.T) {
	f := mk(t, 1, l(l(zz(1)), l(zz(2))))
	//
	if IsGround(f, nil, 1, domain.ZZ) {
		t.Errorf("non-constant recognised as ground")
	}
}

func Test_Ground_03(t *testing.T) {
	// The zero polynomial is the ground constant zero.
	if !IsGround(Zero[*big.Int](2), zz(0), 2, domain.ZZ) {
		t.Errorf("zero not recognised as the zero constant")
	}
}

func Test_Ground_04(t *testing.T) {
	f := mk(t, 0, l(zz(4)))
	//
	if !IsGround(f, zz(4), 0, domain.ZZ) {
		t.Errorf("constant four not recognised")
	}
	//
	if IsGround(f, zz(5), 0, domain.ZZ) {
		t.Errorf("constant four matched five")
	}
}

func Test_Sign_01(t *testing.T) {
	f := mk(t, 0, l(zz(-1), zz(2)))
	//
	if !IsNegative(f, 0, domain.ZZ) || IsPositive(f, 0, domain.ZZ) {
		t.Errorf("sign of leading coefficient misreported")
	}
}

func Test_Equal_01(t *testing.T) {
	checkEqual(t, mk(t, 0, l(zz(1), zz(2))), mk(t, 0, l(zz(1), zz(2))), 0)
}

func Test_Equal_02(t *testing.T) {
	f := mk(t, 0, l(zz(1), zz(2)))
	g := mk(t, 0, l(zz(1), zz(3)))
	//
	if Equal(f, g, 0, domain.ZZ) {
		t.Errorf("%s == %s", String(f, 0, domain.ZZ), String(g, 0, domain.ZZ))
	}
}

func Test_Equal_03(t *testing.T) {
	f := mk(t, 1, l(l(zz(1), zz(0)), l(), l(zz(2), zz(3))))
	//
	checkEqual(t, Copy(f, 1), f, 1)
}

func Test_Key_01(t *testing.T) {
	f := mk(t, 1, l(l(zz(1), zz(0)), l(), l(zz(2), zz(3))))
	//
	if key := Key(f, 1, domain.ZZ); key != "((1,0),(),(2,3))" {
		t.Errorf("unexpected key %q", key)
	}
}

func Test_Key_02(t *testing.T) {
	f := mk(t, 0, l(zz(1), zz(2)))
	g := mk(t, 0, l(zz(1), zz(3)))
	//
	if Fingerprint(f, 0, domain.ZZ) == Fingerprint(g, 0, domain.ZZ) {
		t.Errorf("distinct polynomials share a fingerprint")
	}
}

func Test_String_01(t *testing.T) {
	f := mk(t, 1, l(l(zz(1), zz(0)), l(), l(zz(2), zz(3))))
	//
	checkString(t, f, 1, "[[1, 0], [], [2, 3]]")
}

// ===================================================================
// Test Helpers
// ===================================================================

// zz wraps an integer test coefficient.
func zz(n int64) *big.Int {
	return big.NewInt(n)
}

// qq wraps a rational test coefficient.
func qq(n, d int64) *big.Rat {
	return big.NewRat(n, d)
}

// l builds one level of a nested coefficient list.
func l(vs ...any) []any {
	return vs
}

// mk validates a nested coefficient list over the integers, failing the test
// when it is rejected or sits at an unexpected level.
func mk(t *testing.T, lev int, v any) Poly[*big.Int] {
	t.Helper()
	//
	f, flev, err := Validate(v, domain.ZZ)
	//
	if err != nil {
		t.Fatalf("invalid polynomial: %v", err)
	} else if flev != lev {
		t.Fatalf("polynomial at level %d, expected %d", flev, lev)
	}
	//
	return f
}

// checkEqual checks two integer polynomials of the same level for equality.
func checkEqual(t *testing.T, got, want Poly[*big.Int], lev int) {
	t.Helper()
	//
	if !Equal(got, want, lev, domain.ZZ) {
		t.Errorf("got %s, expected %s", String(got, lev, domain.ZZ), String(want, lev, domain.ZZ))
	}
}

// checkString checks the rendered form of an integer polynomial.
func checkString(t *testing.T, f Poly[*big.Int], lev int, want string) {
	t.Helper()
	//
	if got := String(f, lev, domain.ZZ); got != want {
		t.Errorf("got %s, expected %s", got, want)
	}
}
