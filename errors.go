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

// ParseError is one of the WHATWG HTML parse errors. Parse errors are
// diagnostics, never fatal: the tokenizer always recovers and keeps
// producing tokens.
type ParseError uint8

// The WHATWG tokenizer parse errors, in the living standard's alphabetical
// order except for DuplicateAttribute and ControlCharacterInInputStream,
// which come last.
const (
	AbruptClosingOfEmptyComment ParseError = iota
	AbruptDoctypePublicIdentifier
	AbruptDoctypeSystemIdentifier
	AbsenceOfDigitsInNumericCharacterReference
	CdataInHTMLContent
	CharacterReferenceOutsideUnicodeRange
	ControlCharacterReference
	EndTagWithAttributes
	EndTagWithTrailingSolidus
	EofBeforeTagName
	EofInCdata
	EofInComment
	EofInDoctype
	EofInScriptHTMLCommentLikeText
	EofInTag
	IncorrectlyClosedComment
	IncorrectlyOpenedComment
	InvalidCharacterSequenceAfterDoctypeName
	InvalidFirstCharacterOfTagName
	MissingAttributeValue
	MissingDoctypeName
	MissingDoctypePublicIdentifier
	MissingDoctypeSystemIdentifier
	MissingEndTagName
	MissingQuoteBeforeDoctypePublicIdentifier
	MissingQuoteBeforeDoctypeSystemIdentifier
	MissingSemicolonAfterCharacterReference
	MissingWhitespaceAfterDoctypePublicKeyword
	MissingWhitespaceAfterDoctypeSystemKeyword
	MissingWhitespaceBeforeDoctypeName
	MissingWhitespaceBetweenAttributes
	MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers
	NestedComment
	NoncharacterCharacterReference
	NoncharacterInInputStream
	NullCharacterReference
	SurrogateCharacterReference
	SurrogateInInputStream
	UnexpectedCharacterAfterDoctypeSystemIdentifier
	UnexpectedCharacterInAttributeName
	UnexpectedCharacterInUnquotedAttributeValue
	UnexpectedEqualsSignBeforeAttributeName
	UnexpectedNullCharacter
	UnexpectedQuestionMarkInsteadOfTagName
	UnexpectedSolidusInTag
	UnknownNamedCharacterReference
	DuplicateAttribute
	ControlCharacterInInputStream
)

var parseErrorNames = [...]string{
	"abrupt-closing-of-empty-comment",
	"abrupt-doctype-public-identifier",
	"abrupt-doctype-system-identifier",
	"absence-of-digits-in-numeric-character-reference",
	"cdata-in-html-content",
	"character-reference-outside-unicode-range",
	"control-character-reference",
	"end-tag-with-attributes",
	"end-tag-with-trailing-solidus",
	"eof-before-tag-name",
	"eof-in-cdata",
	"eof-in-comment",
	"eof-in-doctype",
	"eof-in-script-html-comment-like-text",
	"eof-in-tag",
	"incorrectly-closed-comment",
	"incorrectly-opened-comment",
	"invalid-character-sequence-after-doctype-name",
	"invalid-first-character-of-tag-name",
	"missing-attribute-value",
	"missing-doctype-name",
	"missing-doctype-public-identifier",
	"missing-doctype-system-identifier",
	"missing-end-tag-name",
	"missing-quote-before-doctype-public-identifier",
	"missing-quote-before-doctype-system-identifier",
	"missing-semicolon-after-character-reference",
	"missing-whitespace-after-doctype-public-keyword",
	"missing-whitespace-after-doctype-system-keyword",
	"missing-whitespace-before-doctype-name",
	"missing-whitespace-between-attributes",
	"missing-whitespace-between-doctype-public-and-system-identifiers",
	"nested-comment",
	"noncharacter-character-reference",
	"noncharacter-in-input-stream",
	"null-character-reference",
	"surrogate-character-reference",
	"surrogate-in-input-stream",
	"unexpected-character-after-doctype-system-identifier",
	"unexpected-character-in-attribute-name",
	"unexpected-character-in-unquoted-attribute-value",
	"unexpected-equals-sign-before-attribute-name",
	"unexpected-null-character",
	"unexpected-question-mark-instead-of-tag-name",
	"unexpected-solidus-in-tag",
	"unknown-named-character-reference",
	"duplicate-attribute",
	"control-character-in-input-stream",
}

// Error implements the error interface, returning the kebab-case error code
// as written in the WHATWG specification.
func (e ParseError) Error() string {
	if int(e) < len(parseErrorNames) {
		return parseErrorNames[e]
	}
	return "unknown-parse-error"
}

// String is an alias for Error, for %v/%s formatting and table-test output.
func (e ParseError) String() string {
	return e.Error()
}

// ParseErrorFromString parses a kebab-case WHATWG error code back into a
// ParseError, the inverse of ParseError.Error.
func ParseErrorFromString(s string) (ParseError, bool) {
	for i, name := range parseErrorNames {
		if name == s {
			return ParseError(i), true
		}
	}
	return 0, false
}

// readError is the sentinel string-error type for reader-contract
// violations that are not WHATWG parse errors; errEmptyNeedle is its only
// value.
type readError string

// Error implements the error interface.
func (err readError) Error() string {
	return string(err)
}

const (
	// errEmptyNeedle is returned by readUntil when given an empty needle set.
	errEmptyNeedle readError = "html5tok: empty needle set"
)
