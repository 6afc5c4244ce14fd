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

// Token is any value produced by DefaultEmitter: StartTag, EndTag, Text,
// Comment, Doctype or ParseErrorToken.
type Token interface {
	token()
}

// Attribute is one name/value pair on a StartTag. Attribute order is
// preserved as written; duplicates are dropped before a StartTag is
// emitted (first instance wins, see DuplicateAttribute).
type Attribute struct {
	Name  []byte
	Value []byte
}

// StartTag is a HTML start tag, such as `<p>` or `<a href="...">`.
type StartTag struct {
	Name        []byte
	SelfClosing bool
	Attributes  []Attribute
	Span        Span
}

func (StartTag) token() {}

// EndTag is a HTML end tag, such as `</p>`.
type EndTag struct {
	Name []byte
	Span Span
}

func (EndTag) token() {}

// Text is a maximal run of character data coalesced between any two
// non-character tokens. It is spec.md's "String" token, renamed to avoid
// colliding with the predeclared string type.
type Text struct {
	Data []byte
	Span Span
}

func (Text) token() {}

// Comment is a HTML comment, `<!-- ... -->`. Data excludes the delimiters.
type Comment struct {
	Data []byte
	Span Span
}

func (Comment) token() {}

// Doctype is a `<!DOCTYPE ...>` declaration. PublicIdentifier and
// SystemIdentifier are nil when absent from the source, and non-nil but
// possibly empty when declared with an empty quoted value.
type Doctype struct {
	Name             []byte
	PublicIdentifier []byte
	SystemIdentifier []byte
	ForceQuirks      bool
	Span             Span
}

func (Doctype) token() {}

// ParseErrorToken is a non-fatal WHATWG parse error observed at Span, a
// zero-width range at the offending byte.
type ParseErrorToken struct {
	Err  ParseError
	Span Span
}

func (ParseErrorToken) token() {}
