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

import (
	"strings"
	"testing"
)

// readerFactories lets every test below run identically against both
// Reader implementations, the same way the teacher's table-driven tests
// parameterize over input shape rather than duplicating cases per type.
var readerFactories = map[string]func(string) Reader{
	"SliceReader": func(s string) Reader { return NewStringReader(s) },
	"StreamReader": func(s string) Reader {
		return NewStreamReaderSize(strings.NewReader(s), 4) // tiny buffer forces refills
	},
}

func TestReaderReadByte(t *testing.T) {
	for name, factory := range readerFactories {
		t.Run(name, func(t *testing.T) {
			r := factory("hi")
			var got []byte
			for {
				b, ok, err := r.ReadByte()
				if err != nil {
					t.Fatalf("ReadByte: %v", err)
				}
				if !ok {
					break
				}
				got = append(got, b)
			}
			if string(got) != "hi" {
				t.Errorf("got %q, want %q", got, "hi")
			}
		})
	}
}

func TestReaderTryReadString(t *testing.T) {
	for name, factory := range readerFactories {
		t.Run(name, func(t *testing.T) {
			r := factory("DOCTYPE html")
			ok, err := r.TryReadString([]byte("doctype"), false)
			if err != nil {
				t.Fatalf("TryReadString: %v", err)
			}
			if !ok {
				t.Fatal("case-insensitive TryReadString = false, want true")
			}

			ok, err = r.TryReadString([]byte("HTML"), true)
			if err != nil {
				t.Fatalf("TryReadString: %v", err)
			}
			if ok {
				t.Fatal("case-sensitive TryReadString against \" html\" matched, want false")
			}

			var rest []byte
			for {
				b, ok, err := r.ReadByte()
				if err != nil {
					t.Fatalf("ReadByte: %v", err)
				}
				if !ok {
					break
				}
				rest = append(rest, b)
			}
			if string(rest) != " html" {
				t.Errorf("remaining input = %q, want %q", rest, " html")
			}
		})
	}
}

func TestReaderReadUntil(t *testing.T) {
	for name, factory := range readerFactories {
		t.Run(name, func(t *testing.T) {
			r := factory("abc<def")
			set := NewByteSet('<')

			data, ok, err := r.ReadUntil(set)
			if err != nil {
				t.Fatalf("ReadUntil: %v", err)
			}
			if !ok || string(data) != "abc" {
				t.Fatalf("ReadUntil = %q, %v, want %q, true", data, ok, "abc")
			}

			data, ok, err = r.ReadUntil(set)
			if err != nil {
				t.Fatalf("ReadUntil: %v", err)
			}
			if !ok || string(data) != "<" {
				t.Fatalf("ReadUntil at boundary = %q, %v, want %q, true", data, ok, "<")
			}

			var rest []byte
			for {
				b, ok, err := r.ReadByte()
				if err != nil {
					t.Fatalf("ReadByte: %v", err)
				}
				if !ok {
					break
				}
				rest = append(rest, b)
			}
			if string(rest) != "def" {
				t.Errorf("remaining input = %q, want %q", rest, "def")
			}
		})
	}
}

func TestByteSet(t *testing.T) {
	var s ByteSet
	if s.Contains('x') {
		t.Fatal("zero-value ByteSet contains 'x'")
	}
	s.Add('x').Add('y')
	if !s.Contains('x') || !s.Contains('y') {
		t.Errorf("ByteSet after Add = %+v, want both 'x' and 'y' present", s)
	}
	if s.Contains('z') {
		t.Error("ByteSet unexpectedly contains 'z'")
	}

	s2 := NewByteSet('p', 'q')
	if !s2.Contains('p') || !s2.Contains('q') || s2.Contains('r') {
		t.Errorf("NewByteSet('p','q') = %+v, unexpected membership", s2)
	}
}
