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

func TestLookupNamedReferenceLongestMatch(t *testing.T) {
	// "notin;" should win over the shorter "not" (without a semicolon),
	// since lookupNamedReference tries the longest candidate first.
	h := newReadHelper(NewStringReader("notin; rest"))
	name, expansion, ok, err := lookupNamedReference(h, discardErrors{})
	if err != nil {
		t.Fatalf("lookupNamedReference: %v", err)
	}
	if !ok {
		t.Fatal("ok = false, want true")
	}
	if string(name) != "notin;" {
		t.Errorf("name = %q, want %q", name, "notin;")
	}
	if string(expansion) != string(namedReferenceTable["notin;"]) {
		t.Errorf("expansion = %q, want %q", expansion, namedReferenceTable["notin;"])
	}

	var tail []byte
	for {
		v, err := h.readByte(discardErrors{})
		if err != nil {
			t.Fatalf("readByte: %v", err)
		}
		if v.eof {
			break
		}
		tail = append(tail, v.b)
	}
	if string(tail) != " rest" {
		t.Errorf("remaining input = %q, want %q", tail, " rest")
	}
}

func TestLookupNamedReferenceBareLegacyName(t *testing.T) {
	// "amp" (no semicolon) is a legacy name valid on its own; the trailing
	// "no" must be left unconsumed for the caller to treat as plain text.
	h := newReadHelper(NewStringReader("ampno"))
	name, _, ok, err := lookupNamedReference(h, discardErrors{})
	if err != nil {
		t.Fatalf("lookupNamedReference: %v", err)
	}
	if !ok || string(name) != "amp" {
		t.Fatalf("name, ok = %q, %v, want %q, true", name, ok, "amp")
	}

	var tail []byte
	for {
		v, err := h.readByte(discardErrors{})
		if err != nil {
			t.Fatalf("readByte: %v", err)
		}
		if v.eof {
			break
		}
		tail = append(tail, v.b)
	}
	if string(tail) != "no" {
		t.Errorf("remaining input = %q, want %q", tail, "no")
	}
}

func TestLookupNamedReferenceNoMatch(t *testing.T) {
	h := newReadHelper(NewStringReader("zzzznotreal; rest"))
	_, _, ok, err := lookupNamedReference(h, discardErrors{})
	if err != nil {
		t.Fatalf("lookupNamedReference: %v", err)
	}
	if ok {
		t.Fatal("ok = true for a name absent from the table")
	}

	var tail []byte
	for {
		v, err := h.readByte(discardErrors{})
		if err != nil {
			t.Fatalf("readByte: %v", err)
		}
		if v.eof {
			break
		}
		tail = append(tail, v.b)
	}
	if string(tail) != "zzzznotreal; rest" {
		t.Errorf("input after failed lookup = %q, want fully restored %q", tail, "zzzznotreal; rest")
	}
}

func TestResolveNumericReference(t *testing.T) {
	tests := []struct {
		name     string
		code     uint32
		wantRune rune
		wantErr  ParseError
		wantFlag bool
	}{
		{"ordinary letter", 0x41, 'A', 0, false},
		{"null", 0, 0xfffd, NullCharacterReference, true},
		{"above unicode range", 0x110000, 0xfffd, CharacterReferenceOutsideUnicodeRange, true},
		{"surrogate", 0xd800, 0xfffd, SurrogateCharacterReference, true},
		{"noncharacter", 0xfffe, 0xfffe, NoncharacterCharacterReference, true},
		{"windows-1252 remap", 0x80, 0x20AC, ControlCharacterReference, true},
		{"unmapped C1 control", 0x81, 0x81, ControlCharacterReference, true},
		{"exempt whitespace", 0x09, 0x09, 0, false},
		{"C0 control", 0x01, 0x01, ControlCharacterReference, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, errName, flagged := resolveNumericReference(tc.code)
			if r != tc.wantRune || errName != tc.wantErr || flagged != tc.wantFlag {
				t.Errorf("resolveNumericReference(0x%x) = %q, %v, %v; want %q, %v, %v",
					tc.code, r, errName, flagged, tc.wantRune, tc.wantErr, tc.wantFlag)
			}
		})
	}
}
