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
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/consensys/go-dna/pkg/dna/vm/machine"
	"github.com/consensys/go-dna/pkg/util/termio"
	log "github.com/sirupsen/logrus"
)

// FILENAME is the name of the configuration file searched for.
const FILENAME = "dna.toml"

// Config represents the contents of a dna.toml configuration file.  Any
// setting may be overridden on the command line.
type Config struct {
	Compile Compile `toml:"compile"`
	Execute Execute `toml:"execute"`
	// Path of the file from which this configuration was loaded (empty for the
	// default configuration).
	Path string `toml:"-"`
}

// Compile configures the encoder.
type Compile struct {
	// Report operands cut short by the end of the source as errors.
	Strict bool `toml:"strict"`
	// Extension used for compiled programs when no output file is given.
	Extension string `toml:"extension"`
}

// Execute configures the interpreter.
type Execute struct {
	// Value produced by the read instruction.
	Input uint8 `toml:"input"`
	// Maximum number of steps to execute (0 means unbounded).
	MaxSteps uint `toml:"max-steps"`
	// Trace every step of execution.
	Trace bool `toml:"trace"`
	// One of "auto", "always" or "never".
	Colour string `toml:"colour"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Compile: Compile{
			Strict:    false,
			Extension: ".bin",
		},
		Execute: Execute{
			Input:    machine.PLACEHOLDER_INPUT,
			MaxSteps: 0,
			Trace:    false,
			Colour:   "auto",
		},
	}
}

// Load parses a given configuration file.  Settings absent from the file take
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	//
	return Parse(path, string(data))
}

// Parse configuration from a given string, where path is used only for error
// reporting.
func Parse(path string, data string) (*Config, error) {
	var cfg = Default()
	//
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	//
	for _, key := range md.Undecoded() {
		log.Warn(fmt.Sprintf("%s: ignoring unknown setting \"%s\"", path, key.String()))
	}
	//
	cfg.Path = path
	//
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}
	//
	return cfg, nil
}

// FindAndLoad walks up from startDir to find a dna.toml file, then loads and
// returns it.  If no file is found, the default configuration is returned.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}
	//
	for {
		path := filepath.Join(dir, FILENAME)
		//
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
		//
		parent := filepath.Dir(dir)
		//
		if parent == dir {
			// Reached root
			return Default(), nil
		}
		//
		dir = parent
	}
}

// Validate checks that settings are well-formed.
func (p *Config) Validate() error {
	if _, err := termio.ParseColourMode(p.Execute.Colour); err != nil {
		return err
	} else if !strings.HasPrefix(p.Compile.Extension, ".") {
		return fmt.Errorf("extension \"%s\" must begin with \".\"", p.Compile.Extension)
	}
	//
	return nil
}

// ColourMode returns the configured colour mode.
func (p *Config) ColourMode() termio.ColourMode {
	// Already validated
	mode, _ := termio.ParseColourMode(p.Execute.Colour)
	//
	return mode
}

// OutputFilename determines the default filename for the compiled form of a
// given source file, by replacing its extension.
func (p *Config) OutputFilename(input string) string {
	var ext = filepath.Ext(input)
	//
	return strings.TrimSuffix(input, ext) + p.Compile.Extension
}
