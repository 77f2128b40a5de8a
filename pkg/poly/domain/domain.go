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

import "math/big"

// Domain captures the capabilities a coefficient domain must provide to the
// dense polynomial core.  The core calls these and never inspects domain
// internals; elements are treated as immutable values.
type Domain[E any] interface {
	// Name returns a short identifier for this domain, e.g. "ZZ".  Two
	// domains with the same name are interchangeable.
	Name() string
	// Zero returns the additive identity.
	Zero() E
	// One returns the multiplicative identity.
	One() E
	// Eq reports exact equality of two elements.
	Eq(x, y E) bool
	// IsZero reports whether x is the additive identity.
	IsZero(x E) bool
	// IsOne reports whether x is the multiplicative identity.
	IsOne(x E) bool
	// IsNegative reports whether x is negative.  Domains without an order
	// (e.g. finite fields) report false for every element.
	IsNegative(x E) bool
	// IsPositive reports whether x is positive.
	IsPositive(x E) bool
	// Of reports whether v is an element of this domain, returning it typed.
	Of(v any) (E, bool)
	// Normal coerces a raw value (machine integer, float, big.Int, big.Rat,
	// decimal string or an element itself) into canonical form.
	Normal(v any) (E, error)
	// Canon returns the canonical form of an element already in the domain.
	Canon(x E) E
	// FromInt converts a machine integer.
	FromInt(v int64) E
	// FromRat converts an exact rational, failing when the value has no
	// image in this domain.
	FromRat(v *big.Rat) (E, error)
	// Rat returns the exact rational image of x, used as the interchange
	// form for cross-domain conversion.  Fails when no such image exists.
	Rat(x E) (*big.Rat, error)
	// String renders x for display and hashing keys.
	String(x E) string
}
