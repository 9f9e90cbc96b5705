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

	"github.com/consensys/go-dna/pkg/dna/config"
	"github.com/consensys/go-dna/pkg/dna/vm/machine"
	"github.com/consensys/go-dna/pkg/dna/vm/trace"
	"github.com/consensys/go-dna/pkg/util"
	"github.com/consensys/go-dna/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var executeCmd = &cobra.Command{
	Use:   "execute [flags] program.bin",
	Short: "execute a compiled program.",
	Long: `Load a compiled program into the virtual machine and execute it until it
halts, reporting every value written.  Source files (ending in .dna) are
compiled first.`,
	Aliases: []string{"exec", "run"},
	Args:    cobra.ExactArgs(1),
	Run:     runExecuteCmd,
}

func runExecuteCmd(cmd *cobra.Command, args []string) {
	var (
		cfg      = initCommand(cmd)
		recorder *trace.Recorder
	)
	//
	applyExecuteFlags(cmd, cfg)
	//
	program := readProgramOrExit(args[0], cfg.Compile.Strict)
	// Construct machine
	vm := machine.New().
		WithInput(machine.ConstantInput(cfg.Execute.Input)).
		WithObservers(trace.NewPrinter(os.Stdout))
	//
	if cfg.Execute.Trace {
		colour := termio.UseColour(cfg.ColourMode(), os.Stdout)
		vm = vm.WithObservers(trace.NewLogger(newTraceLogger(colour), colour))
	}
	//
	if GetString(cmd, "trace-out") != "" {
		recorder = trace.NewRecorder()
		vm = vm.WithObservers(recorder)
	}
	// Load program
	if err := vm.Load(program); err != nil {
		log.Error(err)
		os.Exit(EXIT_IO)
	}
	//
	fmt.Printf("loaded %d bytes\n", len(program))
	// Execute program
	stats := util.NewPerfStats()
	nsteps, err := execute(&vm, cfg.Execute.MaxSteps)
	//
	stats.Log("execution", nsteps)
	// Write out trace (if applicable), irrespective of the outcome.
	if recorder != nil {
		writeTrace(GetString(cmd, "trace-out"), recorder.Trace())
	}
	//
	if err != nil {
		log.Error(err)
		os.Exit(EXIT_EXECUTION)
	} else if !vm.Halted() {
		log.Error(fmt.Sprintf("step limit exceeded (%d steps)", nsteps))
		os.Exit(EXIT_STEPS)
	}
}

// Command-line flags override settings from the configuration file.
func applyExecuteFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("input") {
		cfg.Execute.Input = GetUint8(cmd, "input")
	}
	//
	if cmd.Flags().Changed("max-steps") {
		cfg.Execute.MaxSteps = GetUint(cmd, "max-steps")
	}
	//
	if cmd.Flags().Changed("trace") {
		cfg.Execute.Trace = GetFlag(cmd, "trace")
	}
	//
	if cmd.Flags().Changed("colour") {
		cfg.Execute.Colour = GetString(cmd, "colour")
		//
		if err := cfg.Validate(); err != nil {
			fmt.Println(err)
			os.Exit(EXIT_USAGE)
		}
	}
}

// Run the machine either to completion or, when a limit is given, for at most
// that many steps.
func execute(vm *machine.Machine, limit uint) (uint, error) {
	if limit == 0 {
		return machine.ExecuteAll(vm, 1024)
	}
	//
	return vm.Execute(limit)
}

func newTraceLogger(colour bool) *log.Logger {
	var logger = log.New()
	//
	logger.SetOutput(os.Stdout)
	logger.SetLevel(log.DebugLevel)
	logger.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
		ForceColors:      colour,
		DisableColors:    !colour,
	})
	//
	return logger
}

func writeTrace(filename string, tr trace.Trace) {
	bytes, err := trace.Marshal(tr)
	//
	if err == nil {
		err = WriteFile(filename, bytes)
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_IO)
	}
	//
	log.Debug(fmt.Sprintf("wrote %d trace events to %s", len(tr.Events), filename))
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(executeCmd)
	executeCmd.Flags().Bool("trace", false, "Trace every step of execution")
	executeCmd.Flags().String("trace-out", "", "Write a CBOR encoded trace of execution to the given file")
	executeCmd.Flags().Uint("max-steps", 0, "Maximum number of steps to execute (0 for unbounded)")
	executeCmd.Flags().Uint8("input", machine.PLACEHOLDER_INPUT, "Value produced by the read instruction")
	executeCmd.Flags().String("colour", "auto", "Colour trace output (auto, always or never)")
}
