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
	"fmt"
	"math/rand/v2"

	"github.com/consensys/go-densepoly/pkg/poly/domain"
)

// Random draws a univariate polynomial of exact degree n whose coefficients
// are domain images of integers sampled uniformly from [a, b].  The leading
// coefficient is resampled until nonzero, hence the range must contain an
// integer with a nonzero image.
func Random[E any](rng *rand.Rand, n int, a, b int64, K domain.Domain[E]) (Poly[E], error) {
	if n < 0 {
		return Poly[E]{}, fmt.Errorf("%w: degree %d is negative", ErrIndexRange, n)
	}
	//
	if a > b {
		return Poly[E]{}, fmt.Errorf("%w: coefficient range [%d, %d]", ErrIndexRange, a, b)
	}
	//
	if a == 0 && b == 0 {
		return Poly[E]{}, fmt.Errorf("%w: range [0, 0] admits no nonzero leading coefficient", ErrIndexRange)
	}
	//
	draw := func() E {
		return K.FromInt(a + rng.Int64N(b-a+1))
	}
	//
	cs := make([]Poly[E], n+1)
	//
	for i := range cs {
		cs[i] = Ground(draw())
	}
	//
	for K.IsZero(cs[0].Scalar()) {
		cs[0] = Ground(draw())
	}
	//
	return seq(cs), nil
}
