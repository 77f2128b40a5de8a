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

import "errors"

// ErrIndexRange flags a negative or out-of-range index, level, variable or
// stride argument.
var ErrIndexRange = errors.New("index out of range")

// ErrStructure flags jagged nesting depth encountered during validation.
var ErrStructure = errors.New("invalid data structure for a multivariate polynomial")

// ErrDomain flags a leaf value outside the declared coefficient domain.
var ErrDomain = errors.New("value outside coefficient domain")
