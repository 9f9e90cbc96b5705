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
package termio

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ColourMode determines when coloured output should be used.
type ColourMode uint

const (
	// COLOUR_AUTO uses colour only when writing to a terminal.
	COLOUR_AUTO ColourMode = iota
	// COLOUR_ALWAYS uses colour unconditionally.
	COLOUR_ALWAYS
	// COLOUR_NEVER disables colour.
	COLOUR_NEVER
)

// ParseColourMode parses one of "auto", "always" or "never".  The empty string
// is treated as "auto".
func ParseColourMode(mode string) (ColourMode, error) {
	switch mode {
	case "", "auto":
		return COLOUR_AUTO, nil
	case "always":
		return COLOUR_ALWAYS, nil
	case "never":
		return COLOUR_NEVER, nil
	default:
		return COLOUR_AUTO, fmt.Errorf("unknown colour mode \"%s\"", mode)
	}
}

// IsTerminal determines whether a given file is attached to a terminal.
func IsTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}

// UseColour resolves a colour mode for output being written to a given file.
func UseColour(mode ColourMode, file *os.File) bool {
	switch mode {
	case COLOUR_ALWAYS:
		return true
	case COLOUR_NEVER:
		return false
	default:
		return IsTerminal(file)
	}
}
