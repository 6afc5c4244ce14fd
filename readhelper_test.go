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

type discardErrors struct{}

func (discardErrors) EmitError(ParseError) {}

func readAll(t *testing.T, h *readHelper) string {
	t.Helper()
	var out []byte
	for {
		v, err := h.readByte(discardErrors{})
		if err != nil {
			t.Fatalf("readByte: %v", err)
		}
		if v.eof {
			return string(out)
		}
		out = append(out, v.b)
	}
}

func TestReadByteNewlineNormalization(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare LF", "a\nb", "a\nb"},
		{"bare CR", "a\rb", "a\nb"},
		{"CRLF", "a\r\nb", "a\nb"},
		{"trailing CR", "a\r", "a\n"},
		{"CR CR", "a\r\rb", "a\n\nb"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newReadHelper(NewStringReader(tc.input))
			if got := readAll(t, h); got != tc.want {
				t.Errorf("readAll(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestUnreadByteRereads(t *testing.T) {
	h := newReadHelper(NewStringReader("ab"))
	v, err := h.readByte(discardErrors{})
	if err != nil || v.b != 'a' {
		t.Fatalf("first readByte = %+v, %v", v, err)
	}
	h.unreadByte(v)
	if got := readAll(t, h); got != "ab" {
		t.Errorf("readAll after unread = %q, want %q", got, "ab")
	}
}

func TestUnreadBytesRestoresOrder(t *testing.T) {
	h := newReadHelper(NewStringReader("lo world"))
	h.unreadBytes([]byte("hel"))
	if got := readAll(t, h); got != "hello world" {
		t.Errorf("readAll after unreadBytes = %q, want %q", got, "hello world")
	}
}

func TestTryReadString(t *testing.T) {
	h := newReadHelper(NewStringReader("DOCTYPE html"))
	ok, err := h.tryReadString(discardErrors{}, []byte("doctype"), false)
	if err != nil {
		t.Fatalf("tryReadString: %v", err)
	}
	if !ok {
		t.Fatal("tryReadString case-insensitive match = false, want true")
	}
	if got := readAll(t, h); got != " html" {
		t.Errorf("remaining input = %q, want %q", got, " html")
	}
}

func TestTryReadStringFailureLeavesPositionUnchanged(t *testing.T) {
	h := newReadHelper(NewStringReader("DOCTYPE html"))
	ok, err := h.tryReadString(discardErrors{}, []byte("PUBLIC"), true)
	if err != nil {
		t.Fatalf("tryReadString: %v", err)
	}
	if ok {
		t.Fatal("tryReadString matched unexpectedly")
	}
	if got := readAll(t, h); got != "DOCTYPE html" {
		t.Errorf("input after failed match = %q, want unchanged %q", got, "DOCTYPE html")
	}
}

func TestTryReadStringAfterReconsumeDrainsStack(t *testing.T) {
	h := newReadHelper(NewStringReader("SYSTEM rest"))
	v, err := h.readByte(discardErrors{})
	if err != nil {
		t.Fatalf("readByte: %v", err)
	}
	h.unreadByte(v) // puts 'S' back onto the reconsume stack

	ok, err := h.tryReadString(discardErrors{}, []byte("SYSTEM"), false)
	if err != nil {
		t.Fatalf("tryReadString: %v", err)
	}
	if !ok {
		t.Fatal("tryReadString across reconsume stack + reader = false, want true")
	}
	if got := readAll(t, h); got != " rest" {
		t.Errorf("remaining input = %q, want %q", got, " rest")
	}
}

func TestReadUntilBatchesRunAndLeavesStopByteUnconsumed(t *testing.T) {
	h := newReadHelper(NewStringReader("hello<world"))
	set := NewByteSet('<')
	run, ok, err := h.readUntil(discardErrors{}, set)
	if err != nil {
		t.Fatalf("readUntil: %v", err)
	}
	if !ok || string(run) != "hello" {
		t.Fatalf("readUntil = %q, %v, want %q, true", run, ok, "hello")
	}
	if got := readAll(t, h); got != "<world" {
		t.Errorf("remaining input = %q, want %q", got, "<world")
	}
}

func TestReadUntilNextByteAlreadyInSet(t *testing.T) {
	h := newReadHelper(NewStringReader("<world"))
	run, ok, err := h.readUntil(discardErrors{}, NewByteSet('<'))
	if err != nil {
		t.Fatalf("readUntil: %v", err)
	}
	if ok {
		t.Fatalf("readUntil = %q, true, want ok=false with stop byte unconsumed", run)
	}
	if got := readAll(t, h); got != "<world" {
		t.Errorf("remaining input = %q, want %q", got, "<world")
	}
}

func TestReadUntilEmptyNeedleIsAnError(t *testing.T) {
	h := newReadHelper(NewStringReader("anything"))
	_, _, err := h.readUntil(discardErrors{}, ByteSet{})
	if err != errEmptyNeedle {
		t.Errorf("readUntil with empty set = %v, want errEmptyNeedle", err)
	}
}
