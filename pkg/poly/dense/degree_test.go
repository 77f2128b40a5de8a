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

func Test_Degree_01(t *testing.T) {
	f := mk(t, 0, l(zz(1), zz(2), zz(3)))
	//
	if d := Degree(f, 0); d != 2 {
		t.Errorf("degree %d, expected 2", d)
	}
}

func Test_Degree_02(t *testing.T) {
	if d := Degree(Zero[*big.Int](1), 1); d != -1 {
		t.Errorf("degree of zero %d, expected -1", d)
	}
}

func Test_Degree_03(t *testing.T) {
	// x0^2*x1 + 2*x1 + 3
	f := mk(t, 1, l(l(zz(1), zz(0)), l(), l(zz(2), zz(3))))
	//
	if d := Degree(f, 1); d != 2 {
		t.Errorf("degree %d, expected 2", d)
	}
}

func Test_DegreeIn_01(t *testing.T) {
	f := mk(t, 1, l(l(zz(1), zz(0)), l(), l(zz(2), zz(3))))
	//
	if d, err := DegreeIn(f, 1, 1); err != nil || d != 1 {
		t.Errorf("degree %d (%v), expected 1", d, err)
	}
}

func Test_DegreeIn_02(t *testing.T) {
	f := mk(t, 1, l(l(zz(1), zz(0)), l(), l(zz(2), zz(3))))
	//
	if _, err := DegreeIn(f, 2, 1); !errors.Is(err, ErrIndexRange) {
		t.Errorf("expected range error, got %v", err)
	}
}

func Test_DegreeList_01(t *testing.T) {
	f := mk(t, 1, l(l(zz(1), zz(0)), l(), l(zz(2), zz(3))))
	//
	if degs := DegreeList(f, 1); !reflect.DeepEqual(degs, []int{2, 1}) {
		t.Errorf("degree list %v, expected [2 1]", degs)
	}
}

func Test_DegreeList_02(t *testing.T) {
	if degs := DegreeList(Zero[*big.Int](2), 2); !reflect.DeepEqual(degs, []int{-1, -1, -1}) {
		t.Errorf("degree list %v, expected [-1 -1 -1]", degs)
	}
}

func Test_Coeff_01(t *testing.T) {
	f := mk(t, 1, l(l(zz(1), zz(0)), l(), l(zz(2), zz(3))))
	//
	checkEqual(t, LeadingCoeff(f, 1, domain.ZZ), mk(t, 0, l(zz(1), zz(0))), 0)
	checkEqual(t, TrailingCoeff(f, 1, domain.ZZ), mk(t, 0, l(zz(2), zz(3))), 0)
}

func Test_Coeff_02(t *testing.T) {
	// Coefficients of the zero polynomial are zero one level down.
	f := Zero[*big.Int](1)
	//
	checkEqual(t, LeadingCoeff(f, 1, domain.ZZ), Zero[*big.Int](0), 0)
	checkEqual(t, TrailingCoeff(f, 1, domain.ZZ), Zero[*big.Int](0), 0)
}

func Test_Coeff_03(t *testing.T) {
	f := mk(t, 1, l(l(zz(1), zz(0)), l(), l(zz(2), zz(3))))
	//
	if c := GroundLeadingCoeff(f, 1, domain.ZZ); c.Int64() != 1 {
		t.Errorf("ground leading coefficient %s, expected 1", c)
	}
	//
	if c := GroundTrailingCoeff(f, 1, domain.ZZ); c.Int64() != 3 {
		t.Errorf("ground trailing coefficient %s, expected 3", c)
	}
}

func Test_LeadingTerm_01(t *testing.T) {
	f := mk(t, 1, l(l(zz(1), zz(0)), l(), l(zz(2), zz(3))))
	monom, coeff := LeadingTerm(f, 1, domain.ZZ)
	//
	if !reflect.DeepEqual(monom, []int{2, 1}) || coeff.Int64() != 1 {
		t.Errorf("leading term %v %s, expected [2 1] 1", monom, coeff)
	}
}

func Test_LeadingTerm_02(t *testing.T) {
	monom, coeff := LeadingTerm(Zero[*big.Int](1), 1, domain.ZZ)
	//
	if !reflect.DeepEqual(monom, []int{0, 0}) || coeff.Sign() != 0 {
		t.Errorf("leading term %v %s, expected [0 0] 0", monom, coeff)
	}
}

func Test_Nth_01(t *testing.T) {
	f := mk(t, 0, l(zz(1), zz(2), zz(3)))
	//
	c, err := Nth(f, 0, 0, domain.ZZ)
	//
	if err != nil || c.Scalar().Int64() != 3 {
		t.Errorf("coefficient %s (%v), expected 3", c.Scalar(), err)
	}
}

func Test_Nth_02(t *testing.T) {
	// Indices beyond the degree yield zero.
	f := mk(t, 0, l(zz(1), zz(2), zz(3)))
	//
	c, err := Nth(f, 7, 0, domain.ZZ)
	//
	if err != nil || c.Scalar().Sign() != 0 {
		t.Errorf("coefficient %s (%v), expected 0", c.Scalar(), err)
	}
}

func Test_Nth_03(t *testing.T) {
	f := mk(t, 0, l(zz(1), zz(2), zz(3)))
	//
	if _, err := Nth(f, -1, 0, domain.ZZ); !errors.Is(err, ErrIndexRange) {
		t.Errorf("expected range error, got %v", err)
	}
}

func Test_Nth_04(t *testing.T) {
	f := mk(t, 1, l(l(zz(1), zz(0)), l(), l(zz(2), zz(3))))
	//
	c, err := Nth(f, 2, 1, domain.ZZ)
	//
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	checkEqual(t, c, mk(t, 0, l(zz(1), zz(0))), 0)
}

func Test_GroundNth_01(t *testing.T) {
	f := mk(t, 1, l(l(zz(1), zz(0)), l(), l(zz(2), zz(3))))
	//
	c, err := GroundNth(f, []int{2, 1}, 1, domain.ZZ)
	//
	if err != nil || c.Int64() != 1 {
		t.Errorf("coefficient %s (%v), expected 1", c, err)
	}
}

func Test_GroundNth_02(t *testing.T) {
	f := mk(t, 1, l(l(zz(1), zz(0)), l(), l(zz(2), zz(3))))
	//
	c, err := GroundNth(f, []int{1, 1}, 1, domain.ZZ)
	//
	if err != nil || c.Sign() != 0 {
		t.Errorf("coefficient %s (%v), expected 0", c, err)
	}
}

func Test_GroundNth_03(t *testing.T) {
	f := mk(t, 1, l(l(zz(1), zz(0)), l(), l(zz(2), zz(3))))
	//
	if _, err := GroundNth(f, []int{0, -2}, 1, domain.ZZ); !errors.Is(err, ErrIndexRange) {
		t.Errorf("expected range error, got %v", err)
	}
}
