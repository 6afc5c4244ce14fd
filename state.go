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

// State is one of the externally settable tokenizer states. All other FSM
// states are internal-only and reachable only by tokenizing input that
// drives the machine into them.
type State int

const (
	// Data is the default state.
	Data State = iota
	// PlainText corresponds to the PLAINTEXT element content model.
	PlainText
	// RcData corresponds to RCDATA elements such as <title>/<textarea>.
	RcData
	// RawText corresponds to RAWTEXT elements such as <style>/<xmp>.
	RawText
	// ScriptData corresponds to <script> element content.
	ScriptData
	// CdataSection is used when tokenizing inside foreign-content CDATA.
	CdataSection
)

// machineState enumerates every state of the tokenizer's FSM, internal
// states included. It is a strict superset of State.
type machineState int

const (
	stData machineState = iota
	stRcData
	stRawText
	stScriptData
	stPlainText

	stTagOpen
	stEndTagOpen
	stTagName

	stRcDataLessThanSign
	stRcDataEndTagOpen
	stRcDataEndTagName

	stRawTextLessThanSign
	stRawTextEndTagOpen
	stRawTextEndTagName

	stScriptDataLessThanSign
	stScriptDataEndTagOpen
	stScriptDataEndTagName

	stScriptDataEscapeStart
	stScriptDataEscapeStartDash

	stScriptDataEscaped
	stScriptDataEscapedDash
	stScriptDataEscapedDashDash
	stScriptDataEscapedLessThanSign
	stScriptDataEscapedEndTagOpen
	stScriptDataEscapedEndTagName

	stScriptDataDoubleEscapeStart
	stScriptDataDoubleEscaped
	stScriptDataDoubleEscapedDash
	stScriptDataDoubleEscapedDashDash
	stScriptDataDoubleEscapedLessThanSign
	stScriptDataDoubleEscapeEnd

	stBeforeAttributeName
	stAttributeName
	stAfterAttributeName
	stBeforeAttributeValue
	stAttributeValueDoubleQuoted
	stAttributeValueSingleQuoted
	stAttributeValueUnquoted
	stAfterAttributeValueQuoted
	stSelfClosingStartTag

	stBogusComment
	stMarkupDeclarationOpen

	stCommentStart
	stCommentStartDash
	stComment
	stCommentLessThanSign
	stCommentLessThanSignBang
	stCommentLessThanSignBangDash
	stCommentLessThanSignBangDashDash
	stCommentEndDash
	stCommentEnd
	stCommentEndBang

	stDoctype
	stBeforeDoctypeName
	stDoctypeName
	stAfterDoctypeName
	stAfterDoctypePublicKeyword
	stBeforeDoctypePublicIdentifier
	stDoctypePublicIdentifierDoubleQuoted
	stDoctypePublicIdentifierSingleQuoted
	stAfterDoctypePublicIdentifier
	stBetweenDoctypePublicAndSystemIdentifiers
	stAfterDoctypeSystemKeyword
	stBeforeDoctypeSystemIdentifier
	stDoctypeSystemIdentifierDoubleQuoted
	stDoctypeSystemIdentifierSingleQuoted
	stAfterDoctypeSystemIdentifier
	stBogusDoctype

	stCdataSection
	stCdataSectionBracket
	stCdataSectionEnd

	stCharacterReference
	stNamedCharacterReference
	stAmbiguousAmpersand
	stNumericCharacterReference
	stHexadecimalCharacterReferenceStart
	stDecimalCharacterReferenceStart
	stHexadecimalCharacterReference
	stDecimalCharacterReference
	stNumericCharacterReferenceEnd
)

// toMachineState maps an externally settable State to its internal state.
func (s State) toMachineState() machineState {
	switch s {
	case Data:
		return stData
	case PlainText:
		return stPlainText
	case RcData:
		return stRcData
	case RawText:
		return stRawText
	case ScriptData:
		return stScriptData
	case CdataSection:
		return stCdataSection
	default:
		return stData
	}
}
