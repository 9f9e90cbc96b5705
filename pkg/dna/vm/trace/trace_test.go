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
package trace

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/consensys/go-dna/pkg/dna/vm/machine"
	log "github.com/sirupsen/logrus"
)

// push 3; dup; add; write
var sixProgram = []byte{0x13, 0x30, 0x40, 0xF0}

func Test_Recorder_01(t *testing.T) {
	var (
		rec = NewRecorder()
		m   = run(t, sixProgram, rec)
		tr  = rec.Trace()
	)
	//
	if len(tr.Events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(tr.Events))
	} else if !slices.Equal(tr.Outputs, []uint8{6}) || !slices.Equal(m.Outputs(), tr.Outputs) {
		t.Errorf("unexpected outputs %v", tr.Outputs)
	}
	//
	checkEvent(t, tr.Events[0], "PC=0, Byte=13, Opcode=0001, Operand=0011, Stack=[]")
	checkEvent(t, tr.Events[2], "PC=2, Byte=40, Opcode=0100, Operand=0000, Stack=[3 3]")
	checkEvent(t, tr.Events[3], "PC=3, Byte=F0, Opcode=1111, Operand=0000, Stack=[6]")
}

func Test_Recorder_02(t *testing.T) {
	var rec = NewRecorder()
	//
	run(t, sixProgram, rec)
	//
	data, err := Marshal(rec.Trace())
	if err != nil {
		t.Fatal(err)
	}
	// Canonical encoding is deterministic
	again, err := Marshal(rec.Trace())
	if err != nil {
		t.Fatal(err)
	} else if !bytes.Equal(data, again) {
		t.Errorf("encoding is not deterministic")
	}
	//
	tr, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	//
	if len(tr.Events) != 4 || tr.Events[3].String() != rec.Trace().Events[3].String() {
		t.Errorf("decoded trace differs: %v", tr.Events)
	} else if !slices.Equal(tr.Outputs, []uint8{6}) {
		t.Errorf("decoded outputs differ: %v", tr.Outputs)
	}
}

func Test_Recorder_03(t *testing.T) {
	if _, err := Unmarshal([]byte{0xFF, 0x00}); err == nil {
		t.Errorf("garbage should not decode")
	}
}

func Test_Logger_01(t *testing.T) {
	var (
		buf    bytes.Buffer
		logger = log.New()
	)
	//
	logger.SetOutput(&buf)
	logger.SetLevel(log.DebugLevel)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true, DisableColors: true})
	//
	run(t, sixProgram, NewLogger(logger, false))
	//
	var lines = strings.Split(strings.TrimSpace(buf.String()), "\n")
	//
	if len(lines) != 5 {
		t.Fatalf("expected 5 log lines, got %d:\n%s", len(lines), buf.String())
	} else if !strings.Contains(lines[0], "msg=\"push 3\"") || !strings.Contains(lines[0], "byte=13") {
		t.Errorf("unexpected first line: %s", lines[0])
	} else if !strings.Contains(lines[4], "msg=output") || !strings.Contains(lines[4], "value=6") {
		t.Errorf("unexpected last line: %s", lines[4])
	}
}

func Test_Printer_01(t *testing.T) {
	var buf bytes.Buffer
	//
	run(t, sixProgram, NewPrinter(&buf))
	//
	if buf.String() != "output: 6\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func run(t *testing.T, program []byte, observers ...machine.Observer) *machine.Machine {
	t.Helper()
	//
	var m = machine.New().WithObservers(observers...)
	//
	if err := m.Load(program); err != nil {
		t.Fatal(err)
	} else if _, err := machine.ExecuteAll(&m, 16); err != nil {
		t.Fatal(err)
	}
	//
	return &m
}

func checkEvent(t *testing.T, event Event, expected string) {
	t.Helper()
	//
	if event.String() != expected {
		t.Errorf("expected event \"%s\", got \"%s\"", expected, event.String())
	}
}
