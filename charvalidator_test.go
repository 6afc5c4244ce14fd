// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package html5tok

import "testing"

type recordingErrors struct {
	errs []ParseError
}

func (r *recordingErrors) EmitError(e ParseError) { r.errs = append(r.errs, e) }

func TestCharValidatorControlCharacters(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ParseError
	}{
		{"C0 control", "\x01", ControlCharacterInInputStream},
		{"DEL", "\x7f", ControlCharacterInInputStream},
		{"C1 control", "\xc2\x80", ControlCharacterInInputStream}, // U+0080
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var v charValidator
			var e recordingErrors
			v.validateBytes(&e, []byte(tc.input))
			v.flushCharacterError(&e)
			if len(e.errs) != 1 || e.errs[0] != tc.want {
				t.Errorf("errs = %v, want [%v]", e.errs, tc.want)
			}
		})
	}
}

func TestCharValidatorAllowsOrdinaryWhitespaceAndAscii(t *testing.T) {
	var v charValidator
	var e recordingErrors
	v.validateBytes(&e, []byte("hello\tworld\n"))
	v.flushCharacterError(&e)
	if len(e.errs) != 0 {
		t.Errorf("errs = %v, want none", e.errs)
	}
}

func TestCharValidatorNoncharacter(t *testing.T) {
	var v charValidator
	var e recordingErrors
	// U+FFFE, encoded as UTF-8.
	v.validateBytes(&e, []byte{0xef, 0xbf, 0xbe})
	v.flushCharacterError(&e)
	if len(e.errs) != 1 || e.errs[0] != NoncharacterInInputStream {
		t.Errorf("errs = %v, want [NoncharacterInInputStream]", e.errs)
	}
}

func TestCharValidatorResetClearsPendingWindow(t *testing.T) {
	var v charValidator
	var e recordingErrors
	// Feed only the lead byte of a 4-byte noncharacter sequence, then reset
	// before the window ever completes: no error should surface.
	v.validateBytes(&e, []byte{0xf0})
	v.reset()
	v.validateBytes(&e, []byte("ok"))
	v.flushCharacterError(&e)
	if len(e.errs) != 0 {
		t.Errorf("errs = %v, want none after reset", e.errs)
	}
}
