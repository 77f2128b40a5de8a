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
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-densepoly/pkg/poly/dense"
	"github.com/consensys/go-densepoly/pkg/poly/domain"
	"github.com/consensys/go-densepoly/pkg/poly/order"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var termsCmd = &cobra.Command{
	Use:   "terms [flags] poly_file",
	Short: "list the terms of a polynomial under a monomial order.",
	Long: `List every nonzero term of a polynomial, sorted descending
	under the given monomial order (lex, grlex or grevlex).`,
	Run: func(cmd *cobra.Command, args []string) {
		//
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		ord, err := order.ByName(GetString(cmd, "order"))
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		p := readPolyFile(args[0])
		//
		switch p.Domain {
		case "ZZ":
			printTerms(p, ord, domain.ZZ)
		case "QQ":
			printTerms(p, ord, domain.QQ)
		case "U256":
			printTerms(p, ord, domain.U256)
		case "bls12-377":
			printTerms(p, ord, domain.BLS12377)
		case "bn254":
			printTerms(p, ord, domain.BN254)
		default:
			unknownDomain(p.Domain)
		}
	},
}

func init() {
	rootCmd.AddCommand(termsCmd)
	termsCmd.Flags().String("order", "lex", "Monomial order to sort under")
}

func printTerms[E any](p jsonPoly, ord order.Order, K domain.Domain[E]) {
	f, lev, err := buildPoly(p, K)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	width := maxWidth()
	//
	for _, t := range dense.ListTerms(f, lev, K, ord) {
		line := fmt.Sprintf("%s %s", renderMonom(t.Monom), K.String(t.Coeff))
		//
		if len(line) > width {
			line = line[:width-3] + "..."
		}
		//
		fmt.Println(line)
	}
}

// renderMonom writes an exponent vector in the usual product notation,
// rendering the constant monomial as "1".
func renderMonom(monom []int) string {
	var parts []string
	//
	for i, e := range monom {
		switch {
		case e == 1:
			parts = append(parts, fmt.Sprintf("x%d", i))
		case e > 1:
			parts = append(parts, fmt.Sprintf("x%d^%d", i, e))
		}
	}
	//
	if len(parts) == 0 {
		return "1"
	}
	//
	return strings.Join(parts, "*")
}

// maxWidth determines how wide term lines may be, based on the enclosing
// terminal (when there is one).
func maxWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 16 {
		return w
	}
	//
	return 130
}
