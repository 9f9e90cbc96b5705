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
	"runtime/debug"

	"github.com/consensys/go-dna/pkg/dna/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// Exit codes used by the various commands.
const (
	EXIT_USAGE     = 2
	EXIT_IO        = 3
	EXIT_SYNTAX    = 4
	EXIT_EXECUTION = 5
	EXIT_STEPS     = 6
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dna",
	Short: "A compiler and virtual machine for nucleotide programs.",
	Long: `Compile programs written using the letters A, T, C and G into byte code, and
execute that byte code on a small stack machine.`,
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("dna ")
			if Version != "" {
				// Built via "make"
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Printf("%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
		} else {
			_ = cmd.Help()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// Configure logging and load the configuration, either from the file given
// explicitly or by searching upwards from the current directory.
func initCommand(cmd *cobra.Command) *config.Config {
	var (
		cfg      *config.Config
		err      error
		filename = GetString(cmd, "config")
	)
	// Configure log level
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	if filename != "" {
		cfg, err = config.Load(filename)
	} else {
		cfg, err = config.FindAndLoad(".")
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	} else if cfg.Path != "" {
		log.Debug(fmt.Sprintf("using configuration %s", cfg.Path))
	}
	//
	return cfg
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().String("config", "", "configuration file (default: nearest dna.toml)")
}
