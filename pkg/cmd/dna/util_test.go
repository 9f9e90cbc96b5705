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
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func Test_ReadProgram_01(t *testing.T) {
	var filename = writeTemp(t, "prog.dna", "push 0: AT A\n# 0 -> GG AA\n")
	//
	program, errors, err := ReadProgram(filename, false)
	//
	if err != nil || len(errors) != 0 {
		t.Fatalf("unexpected failure %v %v", err, errors)
	} else if !bytes.Equal(program, []byte{0x10, 0xF0}) {
		t.Errorf("unexpected program %X", program)
	}
}

func Test_ReadProgram_02(t *testing.T) {
	var filename = writeTemp(t, "prog.bin", "\x13\x30\x40\xF0")
	//
	program, _, err := ReadProgram(filename, false)
	//
	if err != nil {
		t.Fatal(err)
	} else if !bytes.Equal(program, []byte{0x13, 0x30, 0x40, 0xF0}) {
		t.Errorf("unexpected program %X", program)
	}
}

func Test_ReadProgram_03(t *testing.T) {
	var filename = writeTemp(t, "prog.dna", "AT A GG A")
	//
	_, errors, err := ReadProgram(filename, true)
	//
	if err != nil {
		t.Fatal(err)
	} else if len(errors) != 1 {
		t.Errorf("expected one syntax error, got %d", len(errors))
	}
}

func Test_ReadProgram_04(t *testing.T) {
	if _, _, err := ReadProgram(filepath.Join(t.TempDir(), "missing.dna"), false); err == nil {
		t.Errorf("missing file should be reported")
	}
}

func Test_WriteFile_01(t *testing.T) {
	var filename = filepath.Join(t.TempDir(), "out.bin")
	//
	if err := WriteFile(filename, []byte{0x10, 0xF0}); err != nil {
		t.Fatal(err)
	}
	//
	data, err := os.ReadFile(filename)
	//
	if err != nil {
		t.Fatal(err)
	} else if !bytes.Equal(data, []byte{0x10, 0xF0}) {
		t.Errorf("unexpected contents %X", data)
	}
	// No temporary files left behind
	if entries, _ := os.ReadDir(filepath.Dir(filename)); len(entries) != 1 {
		t.Errorf("expected exactly one file, found %d", len(entries))
	}
}

func Test_WriteFile_02(t *testing.T) {
	var filename = filepath.Join(t.TempDir(), "missing", "out.bin")
	//
	if err := WriteFile(filename, []byte{0x10}); err == nil {
		t.Errorf("writing into a missing directory should fail")
	}
}

func writeTemp(t *testing.T, name string, contents string) string {
	t.Helper()
	//
	var filename = filepath.Join(t.TempDir(), name)
	//
	if err := os.WriteFile(filename, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	//
	return filename
}
