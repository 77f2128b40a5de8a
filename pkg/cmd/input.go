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
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/consensys/go-densepoly/pkg/poly/dense"
	"github.com/consensys/go-densepoly/pkg/poly/domain"
	log "github.com/sirupsen/logrus"
)

// jsonPoly is the on-disk JSON form of a polynomial: a coefficient domain
// name, a variable count and a sparse term list.
type jsonPoly struct {
	Domain string     `json:"domain"`
	Vars   int        `json:"vars"`
	Terms  []jsonTerm `json:"terms"`
}

// jsonTerm pairs an exponent vector with a textual coefficient.
type jsonTerm struct {
	Monom []int  `json:"monom"`
	Coeff string `json:"coeff"`
}

// readPolyFile parses a polynomial file, exiting with an error message when
// the file is missing or malformed.
func readPolyFile(filename string) jsonPoly {
	var p jsonPoly
	// Read input file
	bytes, err := os.ReadFile(filename)
	//
	if err == nil {
		err = json.Unmarshal(bytes, &p)
	}
	//
	if err == nil && p.Vars < 1 {
		err = fmt.Errorf("%s: at least one variable required, got %d", filename, p.Vars)
	}
	// Handle error
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	log.Debugf("read %d terms in %d variables over %s", len(p.Terms), p.Vars, p.Domain)
	//
	return p
}

// buildPoly converts the parsed form into a dense polynomial over K,
// normalising every textual coefficient into the domain.  The level is
// returned alongside.
func buildPoly[E any](p jsonPoly, K domain.Domain[E]) (dense.Poly[E], int, error) {
	var (
		lev   = p.Vars - 1
		terms = make([]dense.Term[E], len(p.Terms))
	)
	//
	for i, t := range p.Terms {
		if len(t.Monom) != p.Vars {
			return dense.Poly[E]{}, 0, fmt.Errorf("term %d has %d exponents, expected %d", i, len(t.Monom), p.Vars)
		}
		//
		for _, e := range t.Monom {
			if e < 0 {
				return dense.Poly[E]{}, 0, fmt.Errorf("term %d has negative exponent %d", i, e)
			}
		}
		//
		c, err := K.Normal(t.Coeff)
		//
		if err != nil {
			return dense.Poly[E]{}, 0, fmt.Errorf("term %d: %w", i, err)
		}
		//
		terms[i] = dense.Term[E]{Monom: t.Monom, Coeff: c}
	}
	//
	return dense.FromTerms(terms, lev, K), lev, nil
}

// unknownDomain reports an unsupported coefficient domain name and exits.
func unknownDomain(name string) {
	fmt.Printf("unknown coefficient domain %q (supported: ZZ, QQ, U256, bls12-377, bn254)\n", name)
	os.Exit(2)
}
