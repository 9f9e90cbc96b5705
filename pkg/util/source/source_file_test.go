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
package source

import "testing"

func Test_SourceFile_01(t *testing.T) {
	var (
		file = NewSourceFile("test.dna", []byte("AT\nGGAA\nCA"))
		line = file.FindFirstEnclosingLine(NewSpan(4, 6))
	)
	//
	if line.Number() != 2 || line.String() != "GGAA" || line.Start() != 3 {
		t.Errorf("unexpected line %d \"%s\" (start %d)", line.Number(), line.String(), line.Start())
	}
}

func Test_SourceFile_02(t *testing.T) {
	var (
		file = NewSourceFile("test.dna", []byte("AT\nGGAA"))
		err  = file.SyntaxError(NewSpan(3, 5), "oops")
		// Expected highlighting
		expected = "test.dna:2:1-3 oops\n\nGGAA\n^^"
	)
	//
	if actual := err.Highlight(); actual != expected {
		t.Errorf("expected %q, got %q", expected, actual)
	}
}

func Test_Span_01(t *testing.T) {
	var (
		lhs = NewSpan(2, 4)
		rhs = NewSpan(7, 9)
		j   = lhs.Join(rhs)
	)
	//
	if j.Start() != 2 || j.End() != 9 || j.Length() != 7 {
		t.Errorf("unexpected span %d..%d", j.Start(), j.End())
	}
}
