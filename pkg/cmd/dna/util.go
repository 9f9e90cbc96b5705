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
	"path/filepath"

	"github.com/consensys/go-dna/pkg/dna/compiler"
	"github.com/consensys/go-dna/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}

	return r
}

// GetString gets an expected string, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}

	return r
}

// GetUint gets an expected unsigned integer, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}

	return r
}

// GetUint8 gets an expected byte, or panic if an error arises.
func GetUint8(cmd *cobra.Command, flag string) uint8 {
	r, err := cmd.Flags().GetUint8(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}

	return r
}

// ReadProgram reads a program from a given file.  Source files (ending in
// ".dna") are compiled on the fly, whilst all other files are assumed to
// already hold byte code.  Syntax errors are returned separately from I/O
// errors.
func ReadProgram(filename string, strict bool) ([]byte, []source.SyntaxError, error) {
	if filepath.Ext(filename) != ".dna" {
		bytes, err := os.ReadFile(filename)
		//
		return bytes, nil, err
	}
	//
	log.Debug(fmt.Sprintf("compiling source file %s", filename))
	//
	srcfile, err := source.ReadFile(filename)
	if err != nil {
		return nil, nil, err
	}
	//
	program, errors := compiler.Compile(srcfile, compiler.Strict(strict))
	//
	return program, errors, nil
}

// Read a program, or exit with an appropriate code.
func readProgramOrExit(filename string, strict bool) []byte {
	program, errors, err := ReadProgram(filename, strict)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_IO)
	} else if len(errors) > 0 {
		printSyntaxErrors(errors)
		os.Exit(EXIT_SYNTAX)
	}
	//
	return program
}

// WriteFile writes data to a given file such that, should anything go wrong,
// the file is not left partially written.  This is done by writing to a
// temporary file in the same directory, and then renaming it.
func WriteFile(filename string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*")
	if err != nil {
		return err
	}
	// Clean up temporary file on failure
	defer os.Remove(tmp.Name())
	//
	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	} else if err = tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	} else if err = tmp.Close(); err != nil {
		return err
	}
	//
	return os.Rename(tmp.Name(), filename)
}

// Print syntax errors with appropriate highlighting.
func printSyntaxErrors(errors []source.SyntaxError) {
	for i, err := range errors {
		if i != 0 {
			fmt.Println()
		}
		//
		fmt.Println(err.Highlight())
	}
}
