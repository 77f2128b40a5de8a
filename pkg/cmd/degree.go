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

var degreeCmd = &cobra.Command{
	Use:   "degree [flags] poly_file",
	Short: "print degree information for a polynomial.",
	Long: `Print the degree of a polynomial in its leading variable,
	its per-variable degree list and its leading term.  With --var,
	print the degree in that variable only.`,
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
		j := GetInt(cmd, "var")
		p := readPolyFile(args[0])
		//
		switch p.Domain {
		case "ZZ":
			printDegrees(p, j, domain.ZZ)
		case "QQ":
			printDegrees(p, j, domain.QQ)
		case "U256":
			printDegrees(p, j, domain.U256)
		case "bls12-377":
			printDegrees(p, j, domain.BLS12377)
		case "bn254":
			printDegrees(p, j, domain.BN254)
		default:
			unknownDomain(p.Domain)
		}
	},
}

func init() {
	rootCmd.AddCommand(degreeCmd)
	degreeCmd.Flags().Int("var", -1, "Print degree in the given variable only")
}

func printDegrees[E any](p jsonPoly, j int, K domain.Domain[E]) {
	f, lev, err := buildPoly(p, K)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	if j >= 0 {
		deg, err := dense.DegreeIn(f, j, lev)
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		fmt.Println(deg)
		//
		return
	}
	//
	monom, coeff := dense.LeadingTerm(f, lev, K)
	//
	fmt.Printf("degree: %d\n", dense.Degree(f, lev))
	fmt.Printf("degree list: %v\n", dense.DegreeList(f, lev))
	fmt.Printf("total degree: %d\n", totalDegree(dense.DegreeList(f, lev)))
	fmt.Printf("leading term: %v %s\n", monom, K.String(coeff))
}

// totalDegree sums a degree list, treating the zero polynomial as -1.
func totalDegree(degs []int) int {
	sum := 0
	//
	for _, d := range degs {
		if d < 0 {
			return -1
		}
		//
		sum += d
	}
	//
	return sum
}
