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
package util

// GCD returns the greatest common divisor of a and b, where GCD(0, x) = x.
// The result is never negative.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}

	if b < 0 {
		b = -b
	}
	//
	for b != 0 {
		a, b = b, a%b
	}
	//
	return a
}

// LCM returns the least common multiple of a and b, where LCM(0, x) = 0.
func LCM(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	//
	return a / GCD(a, b) * b
}
