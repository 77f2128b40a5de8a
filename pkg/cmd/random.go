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
	"math/rand/v2"
	"os"

	"github.com/consensys/go-densepoly/pkg/poly/dense"
	"github.com/consensys/go-densepoly/pkg/poly/domain"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var randomCmd = &cobra.Command{
	Use:   "random [flags]",
	Short: "generate a random univariate polynomial.",
	Long: `Generate a random univariate polynomial of exact degree n whose
	coefficients are drawn uniformly from a given integer range.`,
	Run: func(cmd *cobra.Command, args []string) {
		//
		if len(args) != 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		var (
			name = GetString(cmd, "domain")
			n    = GetInt(cmd, "degree")
			a    = GetInt64(cmd, "min")
			b    = GetInt64(cmd, "max")
			seed = GetUint64(cmd, "seed")
			rng  = rand.New(rand.NewPCG(seed, seed))
		)
		//
		log.Debugf("sampling degree %d polynomial over %s from [%d, %d]", n, name, a, b)
		//
		switch name {
		case "ZZ":
			printRandom(rng, n, a, b, domain.ZZ)
		case "QQ":
			printRandom(rng, n, a, b, domain.QQ)
		case "U256":
			printRandom(rng, n, a, b, domain.U256)
		case "bls12-377":
			printRandom(rng, n, a, b, domain.BLS12377)
		case "bn254":
			printRandom(rng, n, a, b, domain.BN254)
		default:
			unknownDomain(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(randomCmd)
	randomCmd.Flags().String("domain", "ZZ", "Coefficient domain to sample in")
	randomCmd.Flags().Int("degree", 5, "Exact degree of the generated polynomial")
	randomCmd.Flags().Int64("min", -9, "Smallest coefficient to draw")
	randomCmd.Flags().Int64("max", 9, "Largest coefficient to draw")
	randomCmd.Flags().Uint64("seed", 0, "Seed for the random number generator")
}

func printRandom[E any](rng *rand.Rand, n int, a, b int64, K domain.Domain[E]) {
	f, err := dense.Random(rng, n, a, b, K)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	fmt.Println(dense.String(f, 0, K))
}
