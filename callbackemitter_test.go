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
	"errors"
	"io"
	"testing"
)

// callbackKV mirrors enough of a CallbackEvent to compare by value, since
// CallbackEvent's []byte fields are only valid for the callback's duration.
type callbackKV struct {
	kind Kind
	name string
	val  string
}

type Kind = CallbackEventKind

func recordEvent(ev CallbackEvent) callbackKV {
	return callbackKV{kind: ev.Kind, name: string(ev.Name), val: string(ev.Value)}
}

func collectCallbackEvents(t *testing.T, tok *Tokenizer[callbackKV]) []callbackKV {
	t.Helper()
	var got []callbackKV
	for {
		ev, err := tok.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return got
			}
			t.Fatalf("Next: %v", err)
		}
		got = append(got, ev)
	}
}

func TestCallbackEmitterBasicTag(t *testing.T) {
	const input = `<a href="x">hi</a>`
	e := NewCallbackEmitter(false, recordEvent)
	tok := NewTokenizer[callbackKV](NewStringReader(input), e)
	got := collectCallbackEvents(t, tok)

	want := []callbackKV{
		{EventAttributeName, "href", "x"},
		{EventCloseStartTag, "a", ""},
		{EventString, "", "hi"},
		{EventEndTag, "a", ""},
		{EventEOF, "", ""},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCallbackEmitterEndTagWithAttributesErrors(t *testing.T) {
	const input = `<p></p class="x">`
	var errs []ParseError
	e := NewCallbackEmitter(false, func(ev CallbackEvent) struct{} {
		if ev.Kind == EventError {
			errs = append(errs, ev.Err)
		}
		return struct{}{}
	})
	tok := NewTokenizer[struct{}](NewStringReader(input), e)
	for {
		_, err := tok.Next()
		if err != nil {
			break
		}
	}
	found := false
	for _, e := range errs {
		if e == EndTagWithAttributes {
			found = true
		}
	}
	if !found {
		t.Errorf("errs = %v, want EndTagWithAttributes", errs)
	}
}
