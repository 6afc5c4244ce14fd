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

func TestDefaultEmitterDuplicateAttributeKeepsFirst(t *testing.T) {
	const input = `<a href="1" href="2">`
	tok := NewTokenizer[Token](NewStringReader(input), NewDefaultEmitter(false))
	tokens := collectTokens(t, tok)

	var st StartTag
	var found bool
	var sawDup bool
	for _, tkn := range tokens {
		switch v := tkn.(type) {
		case StartTag:
			st, found = v, true
		case ParseErrorToken:
			if v.Err == DuplicateAttribute {
				sawDup = true
			}
		}
	}
	if !found {
		t.Fatal("no StartTag emitted")
	}
	if !sawDup {
		t.Error("expected a DuplicateAttribute error")
	}
	if len(st.Attributes) != 1 || string(st.Attributes[0].Value) != "1" {
		t.Errorf("Attributes = %+v, want a single href=1", st.Attributes)
	}
}

func TestDefaultEmitterNaiveSwitchEntersRawText(t *testing.T) {
	const input = `<script>if (1<2) {}</script>`
	tok := NewTokenizer[Token](NewStringReader(input), NewDefaultEmitter(true))
	tokens := collectTokens(t, tok)

	var text string
	for _, tkn := range tokens {
		if v, ok := tkn.(Text); ok {
			text += string(v.Data)
		}
	}
	if text != "if (1<2) {}" {
		t.Errorf("text = %q, want %q", text, "if (1<2) {}")
	}
}

func TestDefaultEmitterNoNaiveSwitchTreatsScriptAsData(t *testing.T) {
	const input = `<script>if (a<b) {}</script>`
	tok := NewTokenizer[Token](NewStringReader(input), NewDefaultEmitter(false))
	tokens := collectTokens(t, tok)

	var text string
	for _, tkn := range tokens {
		if v, ok := tkn.(Text); ok {
			text += string(v.Data)
		}
	}
	// Without the naive switch the tokenizer stays in Data after <script>,
	// so "<b)" is parsed as a start tag rather than literal text: the
	// accumulated text never equals the full script body verbatim.
	if text == "if (a<b) {}" {
		t.Errorf("text = %q, want script body NOT preserved verbatim without naive switch", text)
	}
}

func TestDefaultEmitterAppropriateEndTagToken(t *testing.T) {
	const input = `<title>&lt;/title&gt;</title>`
	tok := NewTokenizer[Token](NewStringReader(input), NewDefaultEmitter(true))
	tokens := collectTokens(t, tok)

	var text string
	var endTags int
	for _, tkn := range tokens {
		switch v := tkn.(type) {
		case Text:
			text += string(v.Data)
		case EndTag:
			endTags++
		}
	}
	if endTags != 1 {
		t.Errorf("endTags = %d, want 1", endTags)
	}
	if text != "</title>" {
		t.Errorf("text = %q, want %q", text, "</title>")
	}
}

func TestDefaultEmitterSelfClosingStartTag(t *testing.T) {
	const input = `<br/>`
	tok := NewTokenizer[Token](NewStringReader(input), NewDefaultEmitter(false))
	tokens := collectTokens(t, tok)

	var st StartTag
	var found bool
	for _, tkn := range tokens {
		if v, ok := tkn.(StartTag); ok {
			st, found = v, true
		}
	}
	if !found {
		t.Fatal("no StartTag emitted")
	}
	if !st.SelfClosing {
		t.Error("SelfClosing = false, want true")
	}
}
