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

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func collectTokens(t *testing.T, tok *Tokenizer[Token]) []Token {
	t.Helper()
	var got []Token
	for {
		tk, err := tok.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return got
			}
			t.Fatalf("Next: %v", err)
		}
		got = append(got, tk)
	}
}

var tokenCmpOpts = cmp.Options{
	cmpopts.IgnoreFields(Span{}, "Start", "End"),
	cmp.Transformer("byteToString", func(in []byte) string { return string(in) }),
}

func TestTokenizeBasicDocument(t *testing.T) {
	const input = `<!DOCTYPE html><html lang="en"><body>Hi <b>there</b>!</body></html>`

	tok := NewTokenizer[Token](NewStringReader(input), NewDefaultEmitter(true))
	got := collectTokens(t, tok)

	want := []Token{
		Doctype{Name: []byte("html")},
		StartTag{Name: []byte("html"), Attributes: []Attribute{{Name: []byte("lang"), Value: []byte("en")}}},
		StartTag{Name: []byte("body")},
		Text{Data: []byte("Hi ")},
		StartTag{Name: []byte("b")},
		Text{Data: []byte("there")},
		EndTag{Name: []byte("b")},
		Text{Data: []byte("!")},
		EndTag{Name: []byte("body")},
		EndTag{Name: []byte("html")},
	}

	if diff := cmp.Diff(want, got, tokenCmpOpts); diff != "" {
		t.Error("token diff (-want +got)\n", diff)
	}
}

func TestTokenizeCommentsAndBogusComments(t *testing.T) {
	const input = `<!-- hello --><!wat><? also bogus>`

	tok := NewTokenizer[Token](NewStringReader(input), NewDefaultEmitter(false))
	got := collectTokens(t, tok)

	want := []Token{
		Comment{Data: []byte(" hello ")},
		ParseErrorToken{Err: IncorrectlyOpenedComment},
		Comment{Data: []byte("wat")},
		ParseErrorToken{Err: UnexpectedQuestionMarkInsteadOfTagName},
		Comment{Data: []byte("? also bogus")},
	}
	if diff := cmp.Diff(want, got, tokenCmpOpts); diff != "" {
		t.Error("token diff (-want +got)\n", diff)
	}
}

func TestTokenizeNamedAndNumericCharacterReferences(t *testing.T) {
	// "&ampno" exercises the legacy bare-name path: "amp" matches without a
	// trailing ';', so it still expands outside of an attribute value, with
	// "no" left over as ordinary text and a missing-semicolon parse error.
	const input = `<p>A&amp;B &#169; &#x2014; &unknown; &ampno</p>`

	tok := NewTokenizer[Token](NewStringReader(input), NewDefaultEmitter(false))
	got := collectTokens(t, tok)

	var texts []string
	var errs []ParseError
	for _, tk := range got {
		switch v := tk.(type) {
		case Text:
			texts = append(texts, string(v.Data))
		case ParseErrorToken:
			errs = append(errs, v.Err)
		}
	}

	wantText := "A&B © — &unknown; &no"
	if gotText := joinStrings(texts); gotText != wantText {
		t.Errorf("text = %q, want %q", gotText, wantText)
	}
	// The whole run between <p> and </p> is one contiguous character-data
	// production; named/numeric reference expansion must not fragment it
	// into multiple adjacent Text tokens.
	if len(texts) != 1 {
		t.Errorf("got %d Text tokens %q, want exactly 1 (coalesced)", len(texts), texts)
	}

	var foundUnknown, foundMissingSemicolon bool
	for _, e := range errs {
		switch e {
		case UnknownNamedCharacterReference:
			foundUnknown = true
		case MissingSemicolonAfterCharacterReference:
			foundMissingSemicolon = true
		}
	}
	if !foundUnknown {
		t.Errorf("expected an UnknownNamedCharacterReference error, got %v", errs)
	}
	if !foundMissingSemicolon {
		t.Errorf("expected a MissingSemicolonAfterCharacterReference error, got %v", errs)
	}
}

func joinStrings(ss []string) string {
	out := ""
	for _, s := range ss {
		out += s
	}
	return out
}

func TestTokenizeDuplicateAttribute(t *testing.T) {
	const input = `<a href="1" href="2">`

	tok := NewTokenizer[Token](NewStringReader(input), NewDefaultEmitter(false))
	got := collectTokens(t, tok)

	var start StartTag
	var sawDuplicate bool
	for _, tk := range got {
		switch v := tk.(type) {
		case StartTag:
			start = v
		case ParseErrorToken:
			if v.Err == DuplicateAttribute {
				sawDuplicate = true
			}
		}
	}
	if !sawDuplicate {
		t.Error("expected DuplicateAttribute parse error")
	}
	if len(start.Attributes) != 1 || string(start.Attributes[0].Value) != "1" {
		t.Errorf("Attributes = %+v, want a single href=1", start.Attributes)
	}
}

func TestTokenizeRcDataAndRawText(t *testing.T) {
	const input = `<title>&lt;b&gt;</title><script>if (1<2) {}</script>`

	tok := NewTokenizer[Token](NewStringReader(input), NewDefaultEmitter(true))
	got := collectTokens(t, tok)

	var titleText, scriptText string
	for i, tk := range got {
		if st, ok := tk.(StartTag); ok && string(st.Name) == "title" {
			if txt, ok := got[i+1].(Text); ok {
				titleText = string(txt.Data)
			}
		}
		if st, ok := tk.(StartTag); ok && string(st.Name) == "script" {
			if txt, ok := got[i+1].(Text); ok {
				scriptText = string(txt.Data)
			}
		}
	}
	if titleText != "<b>" {
		t.Errorf("title text = %q, want %q (entities decoded in RCDATA)", titleText, "<b>")
	}
	if scriptText != "if (1<2) {}" {
		t.Errorf("script text = %q, want verbatim passthrough", scriptText)
	}
}

func TestTokenizeEofInTag(t *testing.T) {
	const input = `<a href="unterminated`

	tok := NewTokenizer[Token](NewStringReader(input), NewDefaultEmitter(false))
	got := collectTokens(t, tok)

	var sawErr bool
	for _, tk := range got {
		if e, ok := tk.(ParseErrorToken); ok && e.Err == EofInTag {
			sawErr = true
		}
	}
	if !sawErr {
		t.Errorf("expected EofInTag, got %+v", got)
	}
}

func TestSetStateCdataSection(t *testing.T) {
	// SetState forces the machine directly into the CDATA section state, as
	// a foreign-content tree builder would right after seeing the "[CDATA["
	// markup declaration itself; the raw content here excludes that
	// delimiter and the closing "]]>".
	const input = `<foo> & <bar>]]>`

	e := NewDefaultEmitter(false)
	tok := NewTokenizer[Token](NewStringReader(input), e)
	tok.SetState(CdataSection)
	got := collectTokens(t, tok)

	want := []Token{Text{Data: []byte("<foo> & <bar>")}}
	if diff := cmp.Diff(want, got, tokenCmpOpts); diff != "" {
		t.Error("token diff (-want +got)\n", diff)
	}
}
