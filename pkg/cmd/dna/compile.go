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
	"os"

	"github.com/consensys/go-dna/pkg/dna/compiler"
	"github.com/consensys/go-dna/pkg/dna/isa"
	"github.com/consensys/go-dna/pkg/util/source"
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] input.dna [output.bin]",
	Short: "compile a nucleotide source file into byte code.",
	Long: `Compile a given source file into byte code.  Every character other than A, T, C
or G (in either case) is ignored.  If no output file is given, the output is
written alongside the input with its extension replaced.`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runCompileCmd,
}

func runCompileCmd(cmd *cobra.Command, args []string) {
	var (
		cfg    = initCommand(cmd)
		input  = args[0]
		output = cfg.OutputFilename(input)
		strict = cfg.Compile.Strict
	)
	//
	if len(args) > 1 {
		output = args[1]
	}
	//
	if cmd.Flags().Changed("strict") {
		strict = GetFlag(cmd, "strict")
	}
	// Read source file
	srcfile, err := source.ReadFile(input)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_IO)
	}
	// Compile source file, or print errors
	program, errors := compiler.Compile(srcfile, compiler.Strict(strict))
	//
	if len(errors) > 0 {
		printSyntaxErrors(errors)
		os.Exit(EXIT_SYNTAX)
	}
	// Write output (only once compilation has succeeded)
	if err := WriteFile(output, program); err != nil {
		fmt.Println(err)
		os.Exit(EXIT_IO)
	}
	//
	fmt.Printf("compiled %s -> %s (%d bytes)\n", input, output, len(program))
	//
	if GetFlag(cmd, "disasm") {
		fmt.Print(isa.DisassembleString(program))
	}
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().Bool("strict", false, "Report operands cut short by the end of input as errors")
	compileCmd.Flags().Bool("disasm", false, "Print the disassembled program")
}
