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
package order

import "fmt"

// Order compares two exponent vectors of equal length, returning a positive
// value when a is greater than b under the order, zero when they are equal
// and a negative value otherwise.
type Order func(a, b []int) int

// Lex is the lexicographic order on exponent vectors.
func Lex(a, b []int) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return 1
			}
			//
			return -1
		}
	}
	//
	return 0
}

// GrLex is the graded lexicographic order: total degree first, ties broken
// lexicographically.
func GrLex(a, b []int) int {
	if d := total(a) - total(b); d != 0 {
		return d
	}
	//
	return Lex(a, b)
}

// GrevLex is the graded reverse lexicographic order: total degree first,
// ties broken by the rightmost exponent in which the vectors differ, with
// the smaller exponent winning.
func GrevLex(a, b []int) int {
	if d := total(a) - total(b); d != 0 {
		return d
	}
	//
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return 1
			}
			//
			return -1
		}
	}
	//
	return 0
}

// ByName maps a textual order name onto its comparator.
func ByName(name string) (Order, error) {
	switch name {
	case "lex":
		return Lex, nil
	case "grlex":
		return GrLex, nil
	case "grevlex":
		return GrevLex, nil
	default:
		return nil, fmt.Errorf("unknown monomial order %q", name)
	}
}

// Min returns the componentwise minimum of one or more exponent vectors.
func Min(monoms ...[]int) []int {
	if len(monoms) == 0 {
		return nil
	}
	//
	min := make([]int, len(monoms[0]))
	copy(min, monoms[0])
	//
	for _, m := range monoms[1:] {
		for i, e := range m {
			if e < min[i] {
				min[i] = e
			}
		}
	}
	//
	return min
}

// Div divides monomial a by monomial b componentwise, reporting whether b
// actually divides a.
func Div(a, b []int) ([]int, bool) {
	quo := make([]int, len(a))
	//
	for i := range a {
		if a[i] < b[i] {
			return nil, false
		}
		//
		quo[i] = a[i] - b[i]
	}
	//
	return quo, true
}

func total(m []int) int {
	sum := 0
	for _, e := range m {
		sum += e
	}
	//
	return sum
}
