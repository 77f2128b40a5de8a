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
	"errors"
	"math/big"
	"reflect"
	"testing"

	"github.com/consensys/go-densepoly/pkg/poly/domain"
)

func Test_UniDeflate_01(t *testing.T) {
	// x^6 + x^3 + 1 deflates by 3.
	f := mk(t, 0, l(zz(1), zz(0), zz(0), zz(1), zz(0), zz(0), zz(1)))
	m, g := UniDeflate(f, domain.ZZ)
	//
	if m != 3 {
		t.Fatalf("stride %d, expected 3", m)
	}
	//
	checkEqual(t, g, mk(t, 0, l(zz(1), zz(1), zz(1))), 0)
}

func Test_UniDeflate_02(t *testing.T) {
	// Coprime exponents do not deflate.
	f := mk(t, 0, l(zz(1), zz(0), zz(1), zz(0)))
	m, g := UniDeflate(f, domain.ZZ)
	//
	if m != 1 {
		t.Fatalf("stride %d, expected 1", m)
	}
	//
	checkEqual(t, g, f, 0)
}

func Test_UniDeflate_03(t *testing.T) {
	m, g := UniDeflate(Zero[*big.Int](0), domain.ZZ)
	//
	if m != 1 {
		t.Fatalf("stride %d, expected 1", m)
	}
	//
	checkEqual(t, g, Zero[*big.Int](0), 0)
}

func Test_Deflate_01(t *testing.T) {
	// x0^2*(x1^3 + 2) + 3*x1^3 + 4 deflates by (2, 3).
	f := mk(t, 1, l(l(zz(1), zz(0), zz(0), zz(2)), l(), l(zz(3), zz(0), zz(0), zz(4))))
	B, g := Deflate(f, 1, domain.ZZ)
	//
	if !reflect.DeepEqual(B, []int{2, 3}) {
		t.Fatalf("strides %v, expected [2 3]", B)
	}
	//
	checkEqual(t, g, mk(t, 1, l(l(zz(1), zz(2)), l(zz(3), zz(4)))), 1)
}

func Test_Deflate_02(t *testing.T) {
	B, g := Deflate(Zero[*big.Int](1), 1, domain.ZZ)
	//
	if !reflect.DeepEqual(B, []int{1, 1}) {
		t.Fatalf("strides %v, expected [1 1]", B)
	}
	//
	checkEqual(t, g, Zero[*big.Int](1), 1)
}

func Test_Deflate_03(t *testing.T) {
	// Inflate reverses Deflate.
	f := mk(t, 1, l(l(zz(1), zz(0), zz(0), zz(2)), l(), l(zz(3), zz(0), zz(0), zz(4))))
	B, g := Deflate(f, 1, domain.ZZ)
	h, err := Inflate(g, B, 1, domain.ZZ)
	//
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	checkEqual(t, h, f, 1)
}

func Test_MultiDeflate_01(t *testing.T) {
	polys := []Poly[*big.Int]{
		mk(t, 0, l(zz(1), zz(0), zz(2), zz(0), zz(3))),
		mk(t, 0, l(zz(4), zz(0), zz(0))),
	}
	//
	m, result := UniMultiDeflate(polys, domain.ZZ)
	//
	if m != 2 {
		t.Fatalf("stride %d, expected 2", m)
	}
	//
	checkEqual(t, result[0], mk(t, 0, l(zz(1), zz(2), zz(3))), 0)
	checkEqual(t, result[1], mk(t, 0, l(zz(4), zz(0))), 0)
}

func Test_MultiDeflate_02(t *testing.T) {
	// A constant in the set blocks deflation.
	polys := []Poly[*big.Int]{
		mk(t, 0, l(zz(1), zz(0), zz(2))),
		mk(t, 0, l(zz(7))),
	}
	//
	if m, _ := UniMultiDeflate(polys, domain.ZZ); m != 1 {
		t.Errorf("stride %d, expected 1", m)
	}
}

func Test_MultiDeflate_03(t *testing.T) {
	// x0^2*x1^2 and x1^2 share strides (2, 2).
	polys := []Poly[*big.Int]{
		FromTerms([]Term[*big.Int]{{Monom: []int{2, 2}, Coeff: zz(1)}}, 1, domain.ZZ),
		FromTerms([]Term[*big.Int]{{Monom: []int{0, 2}, Coeff: zz(1)}}, 1, domain.ZZ),
	}
	//
	B, result := MultiDeflate(polys, 1, domain.ZZ)
	//
	if !reflect.DeepEqual(B, []int{2, 2}) {
		t.Fatalf("strides %v, expected [2 2]", B)
	}
	//
	want0 := FromTerms([]Term[*big.Int]{{Monom: []int{1, 1}, Coeff: zz(1)}}, 1, domain.ZZ)
	want1 := FromTerms([]Term[*big.Int]{{Monom: []int{0, 1}, Coeff: zz(1)}}, 1, domain.ZZ)
	//
	checkEqual(t, result[0], want0, 1)
	checkEqual(t, result[1], want1, 1)
}

func Test_MultiDeflate_04(t *testing.T) {
	// Univariate polynomials dispatch through the scalar stride.
	polys := []Poly[*big.Int]{mk(t, 0, l(zz(1), zz(0), zz(1)))}
	B, result := MultiDeflate(polys, 0, domain.ZZ)
	//
	if !reflect.DeepEqual(B, []int{2}) {
		t.Fatalf("strides %v, expected [2]", B)
	}
	//
	checkEqual(t, result[0], mk(t, 0, l(zz(1), zz(1))), 0)
}

func Test_UniInflate_01(t *testing.T) {
	f := mk(t, 0, l(zz(1), zz(1), zz(1)))
	g, err := UniInflate(f, 3, domain.ZZ)
	//
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	checkEqual(t, g, mk(t, 0, l(zz(1), zz(0), zz(0), zz(1), zz(0), zz(0), zz(1))), 0)
}

func Test_UniInflate_02(t *testing.T) {
	f := mk(t, 0, l(zz(1), zz(2)))
	//
	if _, err := UniInflate(f, 0, domain.ZZ); !errors.Is(err, ErrIndexRange) {
		t.Errorf("expected range error, got %v", err)
	}
}

func Test_Inflate_01(t *testing.T) {
	f := mk(t, 1, l(l(zz(1), zz(2)), l(zz(3), zz(4))))
	g, err := Inflate(f, []int{2, 3}, 1, domain.ZZ)
	//
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	want := mk(t, 1, l(l(zz(1), zz(0), zz(0), zz(2)), l(), l(zz(3), zz(0), zz(0), zz(4))))
	checkEqual(t, g, want, 1)
}

func Test_Inflate_02(t *testing.T) {
	f := mk(t, 1, l(l(zz(1), zz(2)), l(zz(3), zz(4))))
	g, err := Inflate(f, []int{1, 1}, 1, domain.ZZ)
	//
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	checkEqual(t, g, f, 1)
}

func Test_Inflate_03(t *testing.T) {
	f := mk(t, 1, l(l(zz(1), zz(2)), l(zz(3), zz(4))))
	//
	if _, err := Inflate(f, []int{2, 0}, 1, domain.ZZ); !errors.Is(err, ErrIndexRange) {
		t.Errorf("expected range error, got %v", err)
	}
}

func Test_Inflate_04(t *testing.T) {
	f := mk(t, 1, l(l(zz(1), zz(2)), l(zz(3), zz(4))))
	//
	if _, err := Inflate(f, []int{2}, 1, domain.ZZ); !errors.Is(err, ErrIndexRange) {
		t.Errorf("expected range error, got %v", err)
	}
}
