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

	"github.com/consensys/go-densepoly/pkg/poly/dense"
	"github.com/consensys/go-densepoly/pkg/poly/domain"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var deflateCmd = &cobra.Command{
	Use:   "deflate [flags] poly_file",
	Short: "deflate a polynomial by its per-variable exponent strides.",
	Long: `Map x_i^b to x_i for the largest per-variable strides b dividing
	every exponent, printing the stride vector and the deflated
	polynomial.  With --terms-gcd, factor out the greatest common
	monomial first.`,
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
		gcd := GetFlag(cmd, "terms-gcd")
		p := readPolyFile(args[0])
		//
		switch p.Domain {
		case "ZZ":
			printDeflation(p, gcd, domain.ZZ)
		case "QQ":
			printDeflation(p, gcd, domain.QQ)
		case "U256":
			printDeflation(p, gcd, domain.U256)
		case "bls12-377":
			printDeflation(p, gcd, domain.BLS12377)
		case "bn254":
			printDeflation(p, gcd, domain.BN254)
		default:
			unknownDomain(p.Domain)
		}
	},
}

func init() {
	rootCmd.AddCommand(deflateCmd)
	deflateCmd.Flags().Bool("terms-gcd", false, "Factor out the greatest common monomial first")
}

func printDeflation[E any](p jsonPoly, gcd bool, K domain.Domain[E]) {
	f, lev, err := buildPoly(p, K)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	if gcd {
		G, g := dense.TermsGCD(f, lev, K)
		//
		fmt.Printf("common monomial: %v\n", G)
		//
		f = g
	}
	//
	B, g := dense.Deflate(f, lev, K)
	//
	fmt.Printf("strides: %v\n", B)
	fmt.Printf("deflated: %s\n", dense.String(g, lev, K))
}
