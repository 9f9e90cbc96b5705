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
package dna

import (
	"fmt"

	"github.com/consensys/go-dna/pkg/dna/isa"
	"github.com/spf13/cobra"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm [flags] program.bin",
	Short: "disassemble a compiled program.",
	Long: `Print each instruction of a compiled program along with its address, up to
the first zero byte.  Source files (ending in .dna) are compiled first.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			cfg     = initCommand(cmd)
			program = readProgramOrExit(args[0], cfg.Compile.Strict)
		)
		//
		fmt.Print(isa.DisassembleString(program))
	},
}

func init() {
	rootCmd.AddCommand(disasmCmd)
}
