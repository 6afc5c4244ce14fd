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

// machine is the tokenization FSM: it owns the current state, the small
// scratch buffers the spec's states share (temporary_buffer and the
// numeric character reference accumulator), and drives a readHelper/
// Emitter pair one step at a time.
type machine[T any] struct {
	state       machineState
	returnState machineState

	h *readHelper
	e Emitter[T]

	tempBuf     []byte
	charRefCode uint32

	eofEmitted bool
}

func newMachine[T any](h *readHelper, e Emitter[T], start machineState) *machine[T] {
	return &machine[T]{h: h, e: e, state: start}
}

func (m *machine[T]) emitError(err ParseError) {
	if m.e.ShouldEmitErrors() {
		m.e.EmitError(err)
	}
}

func (m *machine[T]) read() (inputByte, error) {
	v, err := m.h.readByte(m.e)
	if err == nil && !v.eof {
		m.e.MoveSpanPosition(1)
	}
	return v, err
}

func (m *machine[T]) reconsume(v inputByte) {
	m.h.unreadByte(v)
	if !v.eof {
		m.e.MoveSpanPosition(-1)
	}
}

// appendText forwards a single byte of character data straight to the
// emitter. The emitter (not the machine) is responsible for buffering a
// run of character data and coalescing it into one token/event; the
// machine never holds text of its own, so every emission path — including
// character-reference expansion — funnels through the same EmitString
// call and is coalesced identically.
func (m *machine[T]) appendText(b byte) {
	m.e.EmitString([]byte{b})
}

func isASCIIAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isASCIIUpperAlpha(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func isHexDigit(b byte) bool {
	return isASCIIDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isWhitespace(b byte) bool {
	switch b {
	case '\t', '\n', '\f', ' ':
		return true
	}
	return false
}

func toLowerByte(b byte) byte {
	if isASCIIUpperAlpha(b) {
		return b + ('a' - 'A')
	}
	return b
}

func hexVal(b byte) uint32 {
	switch {
	case b >= '0' && b <= '9':
		return uint32(b - '0')
	case b >= 'a' && b <= 'f':
		return uint32(b-'a') + 10
	default:
		return uint32(b-'A') + 10
	}
}

// step executes exactly one FSM transition, reading as much input as that
// transition requires.
func (m *machine[T]) step() error {
	switch m.state {

	case stData:
		return m.stepDataFamily(false, true)
	case stRcData:
		return m.stepDataFamily(true, true)
	case stRawText:
		return m.stepDataFamily(false, false)
	case stScriptData:
		return m.stepScriptData()
	case stPlainText:
		return m.stepPlainText()

	case stTagOpen:
		return m.stepTagOpen()
	case stEndTagOpen:
		return m.stepEndTagOpen()
	case stTagName:
		return m.stepTagName()

	case stRcDataLessThanSign:
		return m.stepTextLessThanSign(stRcData, stRcDataEndTagOpen)
	case stRcDataEndTagOpen:
		return m.stepTextEndTagOpen(stRcData, stRcDataEndTagName)
	case stRcDataEndTagName:
		return m.stepTextEndTagName(stRcData)

	case stRawTextLessThanSign:
		return m.stepTextLessThanSign(stRawText, stRawTextEndTagOpen)
	case stRawTextEndTagOpen:
		return m.stepTextEndTagOpen(stRawText, stRawTextEndTagName)
	case stRawTextEndTagName:
		return m.stepTextEndTagName(stRawText)

	case stScriptDataLessThanSign:
		return m.stepScriptDataLessThanSign()
	case stScriptDataEndTagOpen:
		return m.stepTextEndTagOpen(stScriptData, stScriptDataEndTagName)
	case stScriptDataEndTagName:
		return m.stepTextEndTagName(stScriptData)

	case stScriptDataEscapeStart:
		return m.stepScriptDataEscapeStart()
	case stScriptDataEscapeStartDash:
		return m.stepScriptDataEscapeStartDash()

	case stScriptDataEscaped:
		return m.stepScriptDataEscaped()
	case stScriptDataEscapedDash:
		return m.stepScriptDataEscapedDash()
	case stScriptDataEscapedDashDash:
		return m.stepScriptDataEscapedDashDash()
	case stScriptDataEscapedLessThanSign:
		return m.stepScriptDataEscapedLessThanSign()
	case stScriptDataEscapedEndTagOpen:
		return m.stepTextEndTagOpen(stScriptDataEscaped, stScriptDataEscapedEndTagName)
	case stScriptDataEscapedEndTagName:
		return m.stepTextEndTagName(stScriptDataEscaped)

	case stScriptDataDoubleEscapeStart:
		return m.stepScriptDataDoubleEscapeStart()
	case stScriptDataDoubleEscaped:
		return m.stepScriptDataDoubleEscaped()
	case stScriptDataDoubleEscapedDash:
		return m.stepScriptDataDoubleEscapedDash()
	case stScriptDataDoubleEscapedDashDash:
		return m.stepScriptDataDoubleEscapedDashDash()
	case stScriptDataDoubleEscapedLessThanSign:
		return m.stepScriptDataDoubleEscapedLessThanSign()
	case stScriptDataDoubleEscapeEnd:
		return m.stepScriptDataDoubleEscapeEnd()

	case stBeforeAttributeName:
		return m.stepBeforeAttributeName()
	case stAttributeName:
		return m.stepAttributeName()
	case stAfterAttributeName:
		return m.stepAfterAttributeName()
	case stBeforeAttributeValue:
		return m.stepBeforeAttributeValue()
	case stAttributeValueDoubleQuoted:
		return m.stepAttributeValueQuoted('"')
	case stAttributeValueSingleQuoted:
		return m.stepAttributeValueQuoted('\'')
	case stAttributeValueUnquoted:
		return m.stepAttributeValueUnquoted()
	case stAfterAttributeValueQuoted:
		return m.stepAfterAttributeValueQuoted()
	case stSelfClosingStartTag:
		return m.stepSelfClosingStartTag()

	case stBogusComment:
		return m.stepBogusComment()
	case stMarkupDeclarationOpen:
		return m.stepMarkupDeclarationOpen()

	case stCommentStart:
		return m.stepCommentStart()
	case stCommentStartDash:
		return m.stepCommentStartDash()
	case stComment:
		return m.stepComment()
	case stCommentLessThanSign:
		return m.stepCommentLessThanSign()
	case stCommentLessThanSignBang:
		return m.stepCommentLessThanSignBang()
	case stCommentLessThanSignBangDash:
		return m.stepCommentLessThanSignBangDash()
	case stCommentLessThanSignBangDashDash:
		return m.stepCommentLessThanSignBangDashDash()
	case stCommentEndDash:
		return m.stepCommentEndDash()
	case stCommentEnd:
		return m.stepCommentEnd()
	case stCommentEndBang:
		return m.stepCommentEndBang()

	case stDoctype:
		return m.stepDoctype()
	case stBeforeDoctypeName:
		return m.stepBeforeDoctypeName()
	case stDoctypeName:
		return m.stepDoctypeName()
	case stAfterDoctypeName:
		return m.stepAfterDoctypeName()
	case stAfterDoctypePublicKeyword:
		return m.stepAfterDoctypePublicKeyword()
	case stBeforeDoctypePublicIdentifier:
		return m.stepBeforeDoctypeIdentifier(true)
	case stDoctypePublicIdentifierDoubleQuoted:
		return m.stepDoctypeIdentifierQuoted(true, '"')
	case stDoctypePublicIdentifierSingleQuoted:
		return m.stepDoctypeIdentifierQuoted(true, '\'')
	case stAfterDoctypePublicIdentifier:
		return m.stepAfterDoctypeIdentifier(true)
	case stBetweenDoctypePublicAndSystemIdentifiers:
		return m.stepBetweenDoctypePublicAndSystemIdentifiers()
	case stAfterDoctypeSystemKeyword:
		return m.stepAfterDoctypeSystemKeyword()
	case stBeforeDoctypeSystemIdentifier:
		return m.stepBeforeDoctypeIdentifier(false)
	case stDoctypeSystemIdentifierDoubleQuoted:
		return m.stepDoctypeIdentifierQuoted(false, '"')
	case stDoctypeSystemIdentifierSingleQuoted:
		return m.stepDoctypeIdentifierQuoted(false, '\'')
	case stAfterDoctypeSystemIdentifier:
		return m.stepAfterDoctypeIdentifier(false)
	case stBogusDoctype:
		return m.stepBogusDoctype()

	case stCdataSection:
		return m.stepCdataSection()
	case stCdataSectionBracket:
		return m.stepCdataSectionBracket()
	case stCdataSectionEnd:
		return m.stepCdataSectionEnd()

	case stCharacterReference:
		return m.stepCharacterReference()
	case stNamedCharacterReference:
		return m.stepNamedCharacterReference()
	case stAmbiguousAmpersand:
		return m.stepAmbiguousAmpersand()
	case stNumericCharacterReference:
		return m.stepNumericCharacterReference()
	case stHexadecimalCharacterReferenceStart:
		return m.stepHexadecimalCharacterReferenceStart()
	case stDecimalCharacterReferenceStart:
		return m.stepDecimalCharacterReferenceStart()
	case stHexadecimalCharacterReference:
		return m.stepHexadecimalCharacterReference()
	case stDecimalCharacterReference:
		return m.stepDecimalCharacterReference()
	case stNumericCharacterReferenceEnd:
		return m.stepNumericCharacterReferenceEnd()

	default:
		panic("html5tok: unhandled machine state")
	}
}

// isConsumedAsPartOfAttribute reports whether the character reference state
// was entered from an attribute value, per the standard's flush rule.
func (m *machine[T]) isConsumedAsPartOfAttribute() bool {
	switch m.returnState {
	case stAttributeValueDoubleQuoted, stAttributeValueSingleQuoted, stAttributeValueUnquoted:
		return true
	}
	return false
}

// flushTempBufAsText emits tempBuf either as
// attribute-value text (if the reference was consumed inside an attribute)
// or as character data.
func (m *machine[T]) flushTempBufAsText() {
	if m.isConsumedAsPartOfAttribute() {
		m.e.PushAttributeValue(m.tempBuf)
	} else {
		m.e.EmitString(m.tempBuf)
	}
}

// --- Data / RCDATA / RAWTEXT -------------------------------------------

// stepDataFamily handles Data and RCDATA (withAmp) or RAWTEXT
// (!withAmp), which share every transition except character-reference
// handling.
// dataStopBytes and rawTextStopBytes bound the runs stepDataFamily batches
// through readUntil before falling back to single-byte handling for
// whatever boundary byte (or EOF) stopped the run. Most of a typical
// document's text content is none of these bytes, so a single ReadUntil
// scan replaces what would otherwise be one state-machine step per byte.
var (
	dataStopBytes    = NewByteSet('&', '<', 0)
	rawTextStopBytes = NewByteSet('<', 0)
)

func (m *machine[T]) stepDataFamily(isRcData, withAmp bool) error {
	stopSet := rawTextStopBytes
	if withAmp {
		stopSet = dataStopBytes
	}
	if run, ok, err := m.h.readUntil(m.e, stopSet); err != nil {
		return err
	} else if ok {
		m.e.MoveSpanPosition(len(run))
		m.e.EmitString(run)
	}

	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.e.EmitEOF()
		m.eofEmitted = true
		return nil
	case withAmp && v.b == '&':
		m.returnState = m.state
		m.state = stCharacterReference
		return nil
	case v.b == '<':
		if isRcData {
			m.state = stRcDataLessThanSign
		} else if m.state == stRawText {
			m.state = stRawTextLessThanSign
		} else {
			m.state = stTagOpen
		}
		return nil
	case v.b == 0:
		m.emitError(UnexpectedNullCharacter)
		m.appendText(0xef)
		m.appendText(0xbf)
		m.appendText(0xbd) // U+FFFD encoded as UTF-8
		return nil
	default:
		m.appendText(v.b)
		return nil
	}
}

func (m *machine[T]) stepPlainText() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	if v.eof {
		m.e.EmitEOF()
		m.eofEmitted = true
		return nil
	}
	if v.b == 0 {
		m.emitError(UnexpectedNullCharacter)
		m.appendText(0xef)
		m.appendText(0xbf)
		m.appendText(0xbd)
		return nil
	}
	m.appendText(v.b)
	return nil
}

// --- <  in text content -------------------------------------------------

func (m *machine[T]) stepTagOpen() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.appendText('<')
		m.emitError(EofBeforeTagName)
		m.e.EmitEOF()
		m.eofEmitted = true
	case v.b == '!':
		m.state = stMarkupDeclarationOpen
	case v.b == '/':
		m.state = stEndTagOpen
	case isASCIIAlpha(v.b):
		m.reconsume(v)
		m.e.InitStartTag()
		m.state = stTagName
	case v.b == '?':
		m.emitError(UnexpectedQuestionMarkInsteadOfTagName)
		m.e.InitComment()
		m.reconsume(v)
		m.state = stBogusComment
	default:
		m.emitError(InvalidFirstCharacterOfTagName)
		m.appendText('<')
		m.reconsume(v)
		m.state = stData
	}
	return nil
}

func (m *machine[T]) stepEndTagOpen() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.appendText('<')
		m.appendText('/')
		m.emitError(EofBeforeTagName)
		m.e.EmitEOF()
		m.eofEmitted = true
	case isASCIIAlpha(v.b):
		m.reconsume(v)
		m.e.InitEndTag()
		m.state = stTagName
	case v.b == '>':
		m.emitError(MissingEndTagName)
		m.state = stData
	default:
		m.emitError(InvalidFirstCharacterOfTagName)
		m.e.InitComment()
		m.reconsume(v)
		m.state = stBogusComment
	}
	return nil
}

func (m *machine[T]) stepTagName() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.emitError(EofInTag)
		m.e.EmitEOF()
		m.eofEmitted = true
	case isWhitespace(v.b):
		m.state = stBeforeAttributeName
	case v.b == '/':
		m.state = stSelfClosingStartTag
	case v.b == '>':
		m.emitCurrentTagAndMaybeSwitch()
	case v.b == 0:
		m.emitError(UnexpectedNullCharacter)
		m.e.PushTagName([]byte{0xef, 0xbf, 0xbd})
	case isASCIIUpperAlpha(v.b):
		m.e.PushTagName([]byte{toLowerByte(v.b)})
	default:
		m.e.PushTagName([]byte{v.b})
	}
	return nil
}

func (m *machine[T]) emitCurrentTagAndMaybeSwitch() {
	if override, ok := m.e.EmitCurrentTag(); ok {
		m.state = override.toMachineState()
	} else {
		m.state = stData
	}
}

// --- RCDATA/RAWTEXT/ScriptData </tag lookahead --------------------------

func (m *machine[T]) stepTextLessThanSign(textState, endTagOpenState machineState) error {
	v, err := m.read()
	if err != nil {
		return err
	}
	if v.b == '/' && !v.eof {
		m.tempBuf = m.tempBuf[:0]
		m.state = endTagOpenState
		return nil
	}
	m.appendText('<')
	m.reconsume(v)
	m.state = textState
	return nil
}

func (m *machine[T]) stepTextEndTagOpen(textState, endTagNameState machineState) error {
	v, err := m.read()
	if err != nil {
		return err
	}
	if !v.eof && isASCIIAlpha(v.b) {
		m.reconsume(v)
		m.e.InitEndTag()
		m.state = endTagNameState
		return nil
	}
	m.appendText('<')
	m.appendText('/')
	m.reconsume(v)
	m.state = textState
	return nil
}

func (m *machine[T]) stepTextEndTagName(textState machineState) error {
	v, err := m.read()
	if err != nil {
		return err
	}
	if !v.eof {
		switch {
		case isWhitespace(v.b) && m.e.CurrentIsAppropriateEndTagToken():
			m.state = stBeforeAttributeName
			return nil
		case v.b == '/' && m.e.CurrentIsAppropriateEndTagToken():
			m.state = stSelfClosingStartTag
			return nil
		case v.b == '>' && m.e.CurrentIsAppropriateEndTagToken():
			m.emitCurrentTagAndMaybeSwitch()
			return nil
		case isASCIIUpperAlpha(v.b):
			m.e.PushTagName([]byte{toLowerByte(v.b)})
			m.tempBuf = append(m.tempBuf, v.b)
			return nil
		case isASCIIAlpha(v.b):
			m.e.PushTagName([]byte{v.b})
			m.tempBuf = append(m.tempBuf, v.b)
			return nil
		}
	}
	m.appendText('<')
	m.appendText('/')
	for _, b := range m.tempBuf {
		m.appendText(b)
	}
	m.reconsume(v)
	m.state = textState
	return nil
}

// --- ScriptData and its escaped variants --------------------------------

func (m *machine[T]) stepScriptData() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.e.EmitEOF()
		m.eofEmitted = true
	case v.b == '<':
		m.state = stScriptDataLessThanSign
	case v.b == 0:
		m.emitError(UnexpectedNullCharacter)
		m.appendText(0xef)
		m.appendText(0xbf)
		m.appendText(0xbd)
	default:
		m.appendText(v.b)
	}
	return nil
}

func (m *machine[T]) stepScriptDataLessThanSign() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.b == '/' && !v.eof:
		m.tempBuf = m.tempBuf[:0]
		m.state = stScriptDataEndTagOpen
	case v.b == '!' && !v.eof:
		m.appendText('<')
		m.appendText('!')
		m.state = stScriptDataEscapeStart
	default:
		m.appendText('<')
		m.reconsume(v)
		m.state = stScriptData
	}
	return nil
}

func (m *machine[T]) stepScriptDataEscapeStart() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	if !v.eof && v.b == '-' {
		m.appendText('-')
		m.state = stScriptDataEscapeStartDash
		return nil
	}
	m.reconsume(v)
	m.state = stScriptData
	return nil
}

func (m *machine[T]) stepScriptDataEscapeStartDash() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	if !v.eof && v.b == '-' {
		m.appendText('-')
		m.state = stScriptDataEscapedDashDash
		return nil
	}
	m.reconsume(v)
	m.state = stScriptData
	return nil
}

func (m *machine[T]) stepScriptDataEscaped() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.emitError(EofInScriptHTMLCommentLikeText)
		m.e.EmitEOF()
		m.eofEmitted = true
	case v.b == '-':
		m.appendText('-')
		m.state = stScriptDataEscapedDash
	case v.b == '<':
		m.state = stScriptDataEscapedLessThanSign
	case v.b == 0:
		m.emitError(UnexpectedNullCharacter)
		m.appendText(0xef)
		m.appendText(0xbf)
		m.appendText(0xbd)
	default:
		m.appendText(v.b)
	}
	return nil
}

func (m *machine[T]) stepScriptDataEscapedDash() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.emitError(EofInScriptHTMLCommentLikeText)
		m.e.EmitEOF()
		m.eofEmitted = true
	case v.b == '-':
		m.appendText('-')
		m.state = stScriptDataEscapedDashDash
	case v.b == '<':
		m.state = stScriptDataEscapedLessThanSign
	case v.b == 0:
		m.emitError(UnexpectedNullCharacter)
		m.appendText(0xef)
		m.appendText(0xbf)
		m.appendText(0xbd)
		m.state = stScriptDataEscaped
	default:
		m.appendText(v.b)
		m.state = stScriptDataEscaped
	}
	return nil
}

func (m *machine[T]) stepScriptDataEscapedDashDash() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.emitError(EofInScriptHTMLCommentLikeText)
		m.e.EmitEOF()
		m.eofEmitted = true
	case v.b == '-':
		m.appendText('-')
	case v.b == '<':
		m.state = stScriptDataEscapedLessThanSign
	case v.b == '>':
		m.appendText('>')
		m.state = stScriptData
	case v.b == 0:
		m.emitError(UnexpectedNullCharacter)
		m.appendText(0xef)
		m.appendText(0xbf)
		m.appendText(0xbd)
		m.state = stScriptDataEscaped
	default:
		m.appendText(v.b)
		m.state = stScriptDataEscaped
	}
	return nil
}

func (m *machine[T]) stepScriptDataEscapedLessThanSign() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case !v.eof && v.b == '/':
		m.tempBuf = m.tempBuf[:0]
		m.state = stScriptDataEscapedEndTagOpen
	case !v.eof && isASCIIAlpha(v.b):
		m.appendText('<')
		m.tempBuf = m.tempBuf[:0]
		m.reconsume(v)
		m.state = stScriptDataDoubleEscapeStart
	default:
		m.appendText('<')
		m.reconsume(v)
		m.state = stScriptDataEscaped
	}
	return nil
}

func (m *machine[T]) stepScriptDataDoubleEscapeStart() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	if !v.eof && (isWhitespace(v.b) || v.b == '/' || v.b == '>') {
		m.appendText(v.b)
		if string(m.tempBuf) == "script" {
			m.state = stScriptDataDoubleEscaped
		} else {
			m.state = stScriptDataEscaped
		}
		return nil
	}
	if !v.eof && isASCIIUpperAlpha(v.b) {
		m.tempBuf = append(m.tempBuf, toLowerByte(v.b))
		m.appendText(v.b)
		return nil
	}
	if !v.eof && isASCIIAlpha(v.b) {
		m.tempBuf = append(m.tempBuf, v.b)
		m.appendText(v.b)
		return nil
	}
	m.reconsume(v)
	m.state = stScriptDataEscaped
	return nil
}

func (m *machine[T]) stepScriptDataDoubleEscaped() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.emitError(EofInScriptHTMLCommentLikeText)
		m.e.EmitEOF()
		m.eofEmitted = true
	case v.b == '-':
		m.appendText('-')
		m.state = stScriptDataDoubleEscapedDash
	case v.b == '<':
		m.appendText('<')
		m.state = stScriptDataDoubleEscapedLessThanSign
	case v.b == 0:
		m.emitError(UnexpectedNullCharacter)
		m.appendText(0xef)
		m.appendText(0xbf)
		m.appendText(0xbd)
	default:
		m.appendText(v.b)
	}
	return nil
}

func (m *machine[T]) stepScriptDataDoubleEscapedDash() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.emitError(EofInScriptHTMLCommentLikeText)
		m.e.EmitEOF()
		m.eofEmitted = true
	case v.b == '-':
		m.appendText('-')
		m.state = stScriptDataDoubleEscapedDashDash
	case v.b == '<':
		m.appendText('<')
		m.state = stScriptDataDoubleEscapedLessThanSign
	case v.b == 0:
		m.emitError(UnexpectedNullCharacter)
		m.appendText(0xef)
		m.appendText(0xbf)
		m.appendText(0xbd)
		m.state = stScriptDataDoubleEscaped
	default:
		m.appendText(v.b)
		m.state = stScriptDataDoubleEscaped
	}
	return nil
}

func (m *machine[T]) stepScriptDataDoubleEscapedDashDash() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.emitError(EofInScriptHTMLCommentLikeText)
		m.e.EmitEOF()
		m.eofEmitted = true
	case v.b == '-':
		m.appendText('-')
	case v.b == '<':
		m.appendText('<')
		m.state = stScriptDataDoubleEscapedLessThanSign
	case v.b == '>':
		m.appendText('>')
		m.state = stScriptData
	case v.b == 0:
		m.emitError(UnexpectedNullCharacter)
		m.appendText(0xef)
		m.appendText(0xbf)
		m.appendText(0xbd)
		m.state = stScriptDataDoubleEscaped
	default:
		m.appendText(v.b)
		m.state = stScriptDataDoubleEscaped
	}
	return nil
}

func (m *machine[T]) stepScriptDataDoubleEscapedLessThanSign() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	if !v.eof && v.b == '/' {
		m.tempBuf = m.tempBuf[:0]
		m.appendText('/')
		m.state = stScriptDataDoubleEscapeEnd
		return nil
	}
	m.reconsume(v)
	m.state = stScriptDataDoubleEscaped
	return nil
}

func (m *machine[T]) stepScriptDataDoubleEscapeEnd() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	if !v.eof && (isWhitespace(v.b) || v.b == '/' || v.b == '>') {
		m.appendText(v.b)
		if string(m.tempBuf) == "script" {
			m.state = stScriptDataEscaped
		} else {
			m.state = stScriptDataDoubleEscaped
		}
		return nil
	}
	if !v.eof && isASCIIUpperAlpha(v.b) {
		m.tempBuf = append(m.tempBuf, toLowerByte(v.b))
		m.appendText(v.b)
		return nil
	}
	if !v.eof && isASCIIAlpha(v.b) {
		m.tempBuf = append(m.tempBuf, v.b)
		m.appendText(v.b)
		return nil
	}
	m.reconsume(v)
	m.state = stScriptDataDoubleEscaped
	return nil
}

// --- Attributes -----------------------------------------------------------

func (m *machine[T]) stepBeforeAttributeName() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof || v.b == '/' || v.b == '>':
		m.reconsume(v)
		m.e.InitAttribute()
		m.state = stAfterAttributeName
	case isWhitespace(v.b):
		// stay
	case v.b == '=':
		m.emitError(UnexpectedEqualsSignBeforeAttributeName)
		m.e.InitAttribute()
		m.e.PushAttributeName([]byte{v.b})
		m.state = stAttributeName
	default:
		m.e.InitAttribute()
		m.reconsume(v)
		m.state = stAttributeName
	}
	return nil
}

func (m *machine[T]) stepAttributeName() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof || v.b == '/' || v.b == '>' || isWhitespace(v.b):
		m.reconsume(v)
		m.state = stAfterAttributeName
	case v.b == '=':
		m.state = stBeforeAttributeValue
	case isASCIIUpperAlpha(v.b):
		m.e.PushAttributeName([]byte{toLowerByte(v.b)})
	case v.b == 0:
		m.emitError(UnexpectedNullCharacter)
		m.e.PushAttributeName([]byte{0xef, 0xbf, 0xbd})
	case v.b == '"' || v.b == '\'' || v.b == '<':
		m.emitError(UnexpectedCharacterInAttributeName)
		m.e.PushAttributeName([]byte{v.b})
	default:
		m.e.PushAttributeName([]byte{v.b})
	}
	return nil
}

func (m *machine[T]) stepAfterAttributeName() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.emitError(EofInTag)
		m.e.EmitEOF()
		m.eofEmitted = true
	case isWhitespace(v.b):
	case v.b == '/':
		m.state = stSelfClosingStartTag
	case v.b == '=':
		m.state = stBeforeAttributeValue
	case v.b == '>':
		m.emitCurrentTagAndMaybeSwitch()
	default:
		m.e.InitAttribute()
		m.reconsume(v)
		m.state = stAttributeName
	}
	return nil
}

func (m *machine[T]) stepBeforeAttributeValue() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case isWhitespace(v.b) && !v.eof:
	case v.b == '"' && !v.eof:
		m.state = stAttributeValueDoubleQuoted
	case v.b == '\'' && !v.eof:
		m.state = stAttributeValueSingleQuoted
	case v.b == '>' && !v.eof:
		m.emitError(MissingAttributeValue)
		m.emitCurrentTagAndMaybeSwitch()
	default:
		m.reconsume(v)
		m.state = stAttributeValueUnquoted
	}
	return nil
}

func (m *machine[T]) stepAttributeValueQuoted(quote byte) error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.emitError(EofInTag)
		m.e.EmitEOF()
		m.eofEmitted = true
	case v.b == quote:
		m.state = stAfterAttributeValueQuoted
	case v.b == '&':
		if quote == '"' {
			m.returnState = stAttributeValueDoubleQuoted
		} else {
			m.returnState = stAttributeValueSingleQuoted
		}
		m.state = stCharacterReference
	case v.b == 0:
		m.emitError(UnexpectedNullCharacter)
		m.e.PushAttributeValue([]byte{0xef, 0xbf, 0xbd})
	default:
		m.e.PushAttributeValue([]byte{v.b})
	}
	return nil
}

func (m *machine[T]) stepAttributeValueUnquoted() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.emitError(EofInTag)
		m.e.EmitEOF()
		m.eofEmitted = true
	case isWhitespace(v.b):
		m.state = stBeforeAttributeName
	case v.b == '&':
		m.returnState = stAttributeValueUnquoted
		m.state = stCharacterReference
	case v.b == '>':
		m.emitCurrentTagAndMaybeSwitch()
	case v.b == 0:
		m.emitError(UnexpectedNullCharacter)
		m.e.PushAttributeValue([]byte{0xef, 0xbf, 0xbd})
	case v.b == '"' || v.b == '\'' || v.b == '<' || v.b == '=' || v.b == '`':
		m.emitError(UnexpectedCharacterInUnquotedAttributeValue)
		m.e.PushAttributeValue([]byte{v.b})
	default:
		m.e.PushAttributeValue([]byte{v.b})
	}
	return nil
}

func (m *machine[T]) stepAfterAttributeValueQuoted() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.emitError(EofInTag)
		m.e.EmitEOF()
		m.eofEmitted = true
	case isWhitespace(v.b):
		m.state = stBeforeAttributeName
	case v.b == '/':
		m.state = stSelfClosingStartTag
	case v.b == '>':
		m.emitCurrentTagAndMaybeSwitch()
	default:
		m.emitError(MissingWhitespaceBetweenAttributes)
		m.reconsume(v)
		m.state = stBeforeAttributeName
	}
	return nil
}

func (m *machine[T]) stepSelfClosingStartTag() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.emitError(EofInTag)
		m.e.EmitEOF()
		m.eofEmitted = true
	case v.b == '>':
		m.e.SetSelfClosing()
		m.emitCurrentTagAndMaybeSwitch()
	default:
		m.emitError(UnexpectedSolidusInTag)
		m.reconsume(v)
		m.state = stBeforeAttributeName
	}
	return nil
}

// --- Comments and bogus comments ------------------------------------------

func (m *machine[T]) stepBogusComment() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.e.EmitCurrentComment()
		m.e.EmitEOF()
		m.eofEmitted = true
	case v.b == '>':
		m.e.EmitCurrentComment()
		m.state = stData
	case v.b == 0:
		m.emitError(UnexpectedNullCharacter)
		m.e.PushComment([]byte{0xef, 0xbf, 0xbd})
	default:
		m.e.PushComment([]byte{v.b})
	}
	return nil
}

func (m *machine[T]) stepMarkupDeclarationOpen() error {
	if ok, err := m.h.tryReadString(m.e, []byte("--"), true); err != nil {
		return err
	} else if ok {
		m.e.InitComment()
		m.state = stCommentStart
		return nil
	}
	if ok, err := m.h.tryReadString(m.e, []byte("DOCTYPE"), false); err != nil {
		return err
	} else if ok {
		m.state = stDoctype
		return nil
	}
	if ok, err := m.h.tryReadString(m.e, []byte("[CDATA["), true); err != nil {
		return err
	} else if ok {
		if m.e.AdjustedCurrentNodePresentButNotInHTMLNamespace() {
			m.state = stCdataSection
		} else {
			m.emitError(CdataInHTMLContent)
			m.e.InitComment()
			m.e.PushComment([]byte("[CDATA["))
			m.state = stBogusComment
		}
		return nil
	}
	m.emitError(IncorrectlyOpenedComment)
	m.e.InitComment()
	m.state = stBogusComment
	return nil
}

func (m *machine[T]) stepCommentStart() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case !v.eof && v.b == '-':
		m.state = stCommentStartDash
	case !v.eof && v.b == '>':
		m.emitError(AbruptClosingOfEmptyComment)
		m.e.EmitCurrentComment()
		m.state = stData
	default:
		m.reconsume(v)
		m.state = stComment
	}
	return nil
}

func (m *machine[T]) stepCommentStartDash() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.emitError(EofInComment)
		m.e.EmitCurrentComment()
		m.e.EmitEOF()
		m.eofEmitted = true
	case v.b == '-':
		m.state = stCommentEnd
	case v.b == '>':
		m.emitError(AbruptClosingOfEmptyComment)
		m.e.EmitCurrentComment()
		m.state = stData
	default:
		m.e.PushComment([]byte{'-'})
		m.reconsume(v)
		m.state = stComment
	}
	return nil
}

func (m *machine[T]) stepComment() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.emitError(EofInComment)
		m.e.EmitCurrentComment()
		m.e.EmitEOF()
		m.eofEmitted = true
	case v.b == '<':
		m.e.PushComment([]byte{'<'})
		m.state = stCommentLessThanSign
	case v.b == '-':
		m.state = stCommentEndDash
	case v.b == 0:
		m.emitError(UnexpectedNullCharacter)
		m.e.PushComment([]byte{0xef, 0xbf, 0xbd})
	default:
		m.e.PushComment([]byte{v.b})
	}
	return nil
}

func (m *machine[T]) stepCommentLessThanSign() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case !v.eof && v.b == '!':
		m.e.PushComment([]byte{'!'})
		m.state = stCommentLessThanSignBang
	case !v.eof && v.b == '<':
		m.e.PushComment([]byte{'<'})
	default:
		m.reconsume(v)
		m.state = stComment
	}
	return nil
}

func (m *machine[T]) stepCommentLessThanSignBang() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	if !v.eof && v.b == '-' {
		m.state = stCommentLessThanSignBangDash
		return nil
	}
	m.reconsume(v)
	m.state = stComment
	return nil
}

func (m *machine[T]) stepCommentLessThanSignBangDash() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	if !v.eof && v.b == '-' {
		m.state = stCommentLessThanSignBangDashDash
		return nil
	}
	m.reconsume(v)
	m.state = stCommentEndDash
	return nil
}

func (m *machine[T]) stepCommentLessThanSignBangDashDash() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	m.reconsume(v)
	if !v.eof && v.b == '>' {
		m.state = stCommentEnd
	} else {
		m.emitError(NestedComment)
		m.state = stCommentEnd
	}
	return nil
}

func (m *machine[T]) stepCommentEndDash() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.emitError(EofInComment)
		m.e.EmitCurrentComment()
		m.e.EmitEOF()
		m.eofEmitted = true
	case v.b == '-':
		m.state = stCommentEnd
	default:
		m.e.PushComment([]byte{'-'})
		m.reconsume(v)
		m.state = stComment
	}
	return nil
}

func (m *machine[T]) stepCommentEnd() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.emitError(EofInComment)
		m.e.EmitCurrentComment()
		m.e.EmitEOF()
		m.eofEmitted = true
	case v.b == '>':
		m.e.EmitCurrentComment()
		m.state = stData
	case v.b == '!':
		m.state = stCommentEndBang
	case v.b == '-':
		m.e.PushComment([]byte{'-'})
	default:
		m.e.PushComment([]byte{'-', '-'})
		m.reconsume(v)
		m.state = stComment
	}
	return nil
}

func (m *machine[T]) stepCommentEndBang() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.emitError(EofInComment)
		m.e.EmitCurrentComment()
		m.e.EmitEOF()
		m.eofEmitted = true
	case v.b == '-':
		m.e.PushComment([]byte{'-', '-', '!'})
		m.state = stCommentEndDash
	case v.b == '>':
		m.emitError(IncorrectlyClosedComment)
		m.e.EmitCurrentComment()
		m.state = stData
	default:
		m.e.PushComment([]byte{'-', '-', '!'})
		m.reconsume(v)
		m.state = stComment
	}
	return nil
}

// --- Doctype ---------------------------------------------------------------

func (m *machine[T]) stepDoctype() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.e.InitDoctype()
		m.e.SetForceQuirks()
		m.emitError(EofInDoctype)
		m.e.EmitCurrentDoctype()
		m.e.EmitEOF()
		m.eofEmitted = true
	case isWhitespace(v.b):
		m.state = stBeforeDoctypeName
	case v.b == '>':
		m.reconsume(v)
		m.state = stBeforeDoctypeName
	default:
		m.emitError(MissingWhitespaceBeforeDoctypeName)
		m.reconsume(v)
		m.state = stBeforeDoctypeName
	}
	return nil
}

func (m *machine[T]) stepBeforeDoctypeName() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.e.InitDoctype()
		m.e.SetForceQuirks()
		m.emitError(EofInDoctype)
		m.e.EmitCurrentDoctype()
		m.e.EmitEOF()
		m.eofEmitted = true
	case isWhitespace(v.b):
	case isASCIIUpperAlpha(v.b):
		m.e.InitDoctype()
		m.e.PushDoctypeName([]byte{toLowerByte(v.b)})
		m.state = stDoctypeName
	case v.b == 0:
		m.e.InitDoctype()
		m.emitError(UnexpectedNullCharacter)
		m.e.PushDoctypeName([]byte{0xef, 0xbf, 0xbd})
		m.state = stDoctypeName
	case v.b == '>':
		m.e.InitDoctype()
		m.emitError(MissingDoctypeName)
		m.e.SetForceQuirks()
		m.e.EmitCurrentDoctype()
		m.state = stData
	default:
		m.e.InitDoctype()
		m.e.PushDoctypeName([]byte{v.b})
		m.state = stDoctypeName
	}
	return nil
}

func (m *machine[T]) stepDoctypeName() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.e.SetForceQuirks()
		m.emitError(EofInDoctype)
		m.e.EmitCurrentDoctype()
		m.e.EmitEOF()
		m.eofEmitted = true
	case isWhitespace(v.b):
		m.state = stAfterDoctypeName
	case v.b == '>':
		m.e.EmitCurrentDoctype()
		m.state = stData
	case isASCIIUpperAlpha(v.b):
		m.e.PushDoctypeName([]byte{toLowerByte(v.b)})
	case v.b == 0:
		m.emitError(UnexpectedNullCharacter)
		m.e.PushDoctypeName([]byte{0xef, 0xbf, 0xbd})
	default:
		m.e.PushDoctypeName([]byte{v.b})
	}
	return nil
}

func (m *machine[T]) stepAfterDoctypeName() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.e.SetForceQuirks()
		m.emitError(EofInDoctype)
		m.e.EmitCurrentDoctype()
		m.e.EmitEOF()
		m.eofEmitted = true
	case isWhitespace(v.b):
	case v.b == '>':
		m.e.EmitCurrentDoctype()
		m.state = stData
	default:
		m.reconsume(v)
		if ok, err := m.h.tryReadString(m.e, []byte("PUBLIC"), false); err != nil {
			return err
		} else if ok {
			m.state = stAfterDoctypePublicKeyword
			return nil
		}
		if ok, err := m.h.tryReadString(m.e, []byte("SYSTEM"), false); err != nil {
			return err
		} else if ok {
			m.state = stAfterDoctypeSystemKeyword
			return nil
		}
		m.emitError(InvalidCharacterSequenceAfterDoctypeName)
		m.e.SetForceQuirks()
		m.state = stBogusDoctype
	}
	return nil
}

func (m *machine[T]) stepAfterDoctypePublicKeyword() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.e.SetForceQuirks()
		m.emitError(EofInDoctype)
		m.e.EmitCurrentDoctype()
		m.e.EmitEOF()
		m.eofEmitted = true
	case isWhitespace(v.b):
		m.state = stBeforeDoctypePublicIdentifier
	case v.b == '"':
		m.emitError(MissingWhitespaceAfterDoctypePublicKeyword)
		m.e.SetDoctypePublicIdentifier(nil)
		m.state = stDoctypePublicIdentifierDoubleQuoted
	case v.b == '\'':
		m.emitError(MissingWhitespaceAfterDoctypePublicKeyword)
		m.e.SetDoctypePublicIdentifier(nil)
		m.state = stDoctypePublicIdentifierSingleQuoted
	case v.b == '>':
		m.emitError(MissingDoctypePublicIdentifier)
		m.e.SetForceQuirks()
		m.e.EmitCurrentDoctype()
		m.state = stData
	default:
		m.emitError(MissingQuoteBeforeDoctypePublicIdentifier)
		m.e.SetForceQuirks()
		m.reconsume(v)
		m.state = stBogusDoctype
	}
	return nil
}

func (m *machine[T]) stepAfterDoctypeSystemKeyword() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.e.SetForceQuirks()
		m.emitError(EofInDoctype)
		m.e.EmitCurrentDoctype()
		m.e.EmitEOF()
		m.eofEmitted = true
	case isWhitespace(v.b):
		m.state = stBeforeDoctypeSystemIdentifier
	case v.b == '"':
		m.emitError(MissingWhitespaceAfterDoctypeSystemKeyword)
		m.e.SetDoctypeSystemIdentifier(nil)
		m.state = stDoctypeSystemIdentifierDoubleQuoted
	case v.b == '\'':
		m.emitError(MissingWhitespaceAfterDoctypeSystemKeyword)
		m.e.SetDoctypeSystemIdentifier(nil)
		m.state = stDoctypeSystemIdentifierSingleQuoted
	case v.b == '>':
		m.emitError(MissingDoctypeSystemIdentifier)
		m.e.SetForceQuirks()
		m.e.EmitCurrentDoctype()
		m.state = stData
	default:
		m.emitError(MissingQuoteBeforeDoctypeSystemIdentifier)
		m.e.SetForceQuirks()
		m.reconsume(v)
		m.state = stBogusDoctype
	}
	return nil
}

func (m *machine[T]) stepBeforeDoctypeIdentifier(public bool) error {
	v, err := m.read()
	if err != nil {
		return err
	}
	missingErr, quoteErr := MissingDoctypePublicIdentifier, MissingQuoteBeforeDoctypePublicIdentifier
	dq, sq := stDoctypePublicIdentifierDoubleQuoted, stDoctypePublicIdentifierSingleQuoted
	if !public {
		missingErr, quoteErr = MissingDoctypeSystemIdentifier, MissingQuoteBeforeDoctypeSystemIdentifier
		dq, sq = stDoctypeSystemIdentifierDoubleQuoted, stDoctypeSystemIdentifierSingleQuoted
	}
	switch {
	case v.eof:
		m.e.SetForceQuirks()
		m.emitError(EofInDoctype)
		m.e.EmitCurrentDoctype()
		m.e.EmitEOF()
		m.eofEmitted = true
	case isWhitespace(v.b):
	case v.b == '"':
		if public {
			m.e.SetDoctypePublicIdentifier(nil)
		} else {
			m.e.SetDoctypeSystemIdentifier(nil)
		}
		m.state = dq
	case v.b == '\'':
		if public {
			m.e.SetDoctypePublicIdentifier(nil)
		} else {
			m.e.SetDoctypeSystemIdentifier(nil)
		}
		m.state = sq
	case v.b == '>':
		m.emitError(missingErr)
		m.e.SetForceQuirks()
		m.e.EmitCurrentDoctype()
		m.state = stData
	default:
		m.emitError(quoteErr)
		m.e.SetForceQuirks()
		m.reconsume(v)
		m.state = stBogusDoctype
	}
	return nil
}

func (m *machine[T]) stepDoctypeIdentifierQuoted(public bool, quote byte) error {
	v, err := m.read()
	if err != nil {
		return err
	}
	after := stAfterDoctypeSystemIdentifier
	if public {
		after = stAfterDoctypePublicIdentifier
	}
	switch {
	case v.eof:
		m.e.SetForceQuirks()
		m.emitError(EofInDoctype)
		m.e.EmitCurrentDoctype()
		m.e.EmitEOF()
		m.eofEmitted = true
	case v.b == quote:
		m.state = after
	case v.b == 0:
		m.emitError(UnexpectedNullCharacter)
		if public {
			m.e.PushDoctypePublicIdentifier([]byte{0xef, 0xbf, 0xbd})
		} else {
			m.e.PushDoctypeSystemIdentifier([]byte{0xef, 0xbf, 0xbd})
		}
	case v.b == '>':
		errName := AbruptDoctypeSystemIdentifier
		if public {
			errName = AbruptDoctypePublicIdentifier
		}
		m.emitError(errName)
		m.e.SetForceQuirks()
		m.e.EmitCurrentDoctype()
		m.state = stData
	default:
		if public {
			m.e.PushDoctypePublicIdentifier([]byte{v.b})
		} else {
			m.e.PushDoctypeSystemIdentifier([]byte{v.b})
		}
	}
	return nil
}

func (m *machine[T]) stepAfterDoctypeIdentifier(public bool) error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.e.SetForceQuirks()
		m.emitError(EofInDoctype)
		m.e.EmitCurrentDoctype()
		m.e.EmitEOF()
		m.eofEmitted = true
	case isWhitespace(v.b):
		if public {
			m.state = stBetweenDoctypePublicAndSystemIdentifiers
		}
	case v.b == '>':
		m.e.EmitCurrentDoctype()
		m.state = stData
	default:
		if public {
			m.emitError(MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers)
			m.reconsume(v)
			m.state = stBeforeDoctypeSystemIdentifier
			return nil
		}
		m.emitError(UnexpectedCharacterAfterDoctypeSystemIdentifier)
		m.e.SetForceQuirks()
		m.reconsume(v)
		m.state = stBogusDoctype
	}
	return nil
}

func (m *machine[T]) stepBetweenDoctypePublicAndSystemIdentifiers() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.e.SetForceQuirks()
		m.emitError(EofInDoctype)
		m.e.EmitCurrentDoctype()
		m.e.EmitEOF()
		m.eofEmitted = true
	case isWhitespace(v.b):
	case v.b == '>':
		m.e.EmitCurrentDoctype()
		m.state = stData
	case v.b == '"':
		m.e.SetDoctypeSystemIdentifier(nil)
		m.state = stDoctypeSystemIdentifierDoubleQuoted
	case v.b == '\'':
		m.e.SetDoctypeSystemIdentifier(nil)
		m.state = stDoctypeSystemIdentifierSingleQuoted
	default:
		m.emitError(MissingQuoteBeforeDoctypeSystemIdentifier)
		m.e.SetForceQuirks()
		m.reconsume(v)
		m.state = stBogusDoctype
	}
	return nil
}

func (m *machine[T]) stepBogusDoctype() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.e.EmitCurrentDoctype()
		m.e.EmitEOF()
		m.eofEmitted = true
	case v.b == '>':
		m.e.EmitCurrentDoctype()
		m.state = stData
	case v.b == 0:
		m.emitError(UnexpectedNullCharacter)
	default:
	}
	return nil
}

// --- CDATA -------------------------------------------------------------

func (m *machine[T]) stepCdataSection() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case v.eof:
		m.emitError(EofInCdata)
		m.e.EmitEOF()
		m.eofEmitted = true
	case v.b == ']':
		m.state = stCdataSectionBracket
	default:
		m.appendText(v.b)
	}
	return nil
}

func (m *machine[T]) stepCdataSectionBracket() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	if !v.eof && v.b == ']' {
		m.state = stCdataSectionEnd
		return nil
	}
	m.appendText(']')
	m.reconsume(v)
	m.state = stCdataSection
	return nil
}

func (m *machine[T]) stepCdataSectionEnd() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case !v.eof && v.b == ']':
		m.appendText(']')
	case !v.eof && v.b == '>':
		m.state = stData
	default:
		m.appendText(']')
		m.appendText(']')
		m.reconsume(v)
		m.state = stCdataSection
	}
	return nil
}

// --- Character references ------------------------------------------------

func (m *machine[T]) stepCharacterReference() error {
	m.tempBuf = append(m.tempBuf[:0], '&')
	v, err := m.read()
	if err != nil {
		return err
	}
	if !v.eof && v.b == '#' {
		m.tempBuf = append(m.tempBuf, '#')
		m.state = stNumericCharacterReference
		return nil
	}
	m.reconsume(v)
	m.state = stNamedCharacterReference
	return nil
}

func (m *machine[T]) stepNamedCharacterReference() error {
	name, expansion, ok, err := lookupNamedReference(m.h, m.e)
	if err != nil {
		return err
	}
	if ok {
		m.tempBuf = append(m.tempBuf, name...)
		endsWithSemicolon := name[len(name)-1] == ';'
		if m.isConsumedAsPartOfAttribute() && !endsWithSemicolon {
			next, rerr := m.read()
			if rerr != nil {
				return rerr
			}
			if !next.eof {
				if next.b == '=' || isASCIIAlpha(next.b) || isASCIIDigit(next.b) {
					m.reconsume(next)
					m.flushTempBufAsText()
					m.state = m.returnState
					return nil
				}
				m.reconsume(next)
			}
		}
		if !endsWithSemicolon {
			m.emitError(MissingSemicolonAfterCharacterReference)
		}
		m.tempBuf = m.tempBuf[:0]
		m.tempBuf = append(m.tempBuf, expansion...)
		m.flushTempBufAsText()
		m.state = m.returnState
		return nil
	}
	m.flushTempBufAsText()
	m.state = stAmbiguousAmpersand
	return nil
}

func (m *machine[T]) stepAmbiguousAmpersand() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case !v.eof && (isASCIIAlpha(v.b) || isASCIIDigit(v.b)):
		if m.isConsumedAsPartOfAttribute() {
			m.e.PushAttributeValue([]byte{v.b})
		} else {
			m.appendText(v.b)
		}
	case !v.eof && v.b == ';':
		m.emitError(UnknownNamedCharacterReference)
		m.reconsume(v)
		m.state = m.returnState
	default:
		m.reconsume(v)
		m.state = m.returnState
	}
	return nil
}

func (m *machine[T]) stepNumericCharacterReference() error {
	m.charRefCode = 0
	v, err := m.read()
	if err != nil {
		return err
	}
	if !v.eof && (v.b == 'x' || v.b == 'X') {
		m.tempBuf = append(m.tempBuf, v.b)
		m.state = stHexadecimalCharacterReferenceStart
		return nil
	}
	m.reconsume(v)
	m.state = stDecimalCharacterReferenceStart
	return nil
}

func (m *machine[T]) stepHexadecimalCharacterReferenceStart() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	if !v.eof && isHexDigit(v.b) {
		m.reconsume(v)
		m.state = stHexadecimalCharacterReference
		return nil
	}
	m.emitError(AbsenceOfDigitsInNumericCharacterReference)
	m.flushTempBufAsText()
	m.state = m.returnState
	return nil
}

func (m *machine[T]) stepDecimalCharacterReferenceStart() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	if !v.eof && isASCIIDigit(v.b) {
		m.reconsume(v)
		m.state = stDecimalCharacterReference
		return nil
	}
	m.emitError(AbsenceOfDigitsInNumericCharacterReference)
	m.flushTempBufAsText()
	m.state = m.returnState
	return nil
}

func (m *machine[T]) stepHexadecimalCharacterReference() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case !v.eof && isHexDigit(v.b):
		m.charRefCode = m.charRefCode*16 + hexVal(v.b)
	case !v.eof && v.b == ';':
		m.state = stNumericCharacterReferenceEnd
	default:
		m.reconsume(v)
		m.state = stNumericCharacterReferenceEnd
	}
	return nil
}

func (m *machine[T]) stepDecimalCharacterReference() error {
	v, err := m.read()
	if err != nil {
		return err
	}
	switch {
	case !v.eof && isASCIIDigit(v.b):
		m.charRefCode = m.charRefCode*10 + uint32(v.b-'0')
	case !v.eof && v.b == ';':
		m.state = stNumericCharacterReferenceEnd
	default:
		m.reconsume(v)
		m.state = stNumericCharacterReferenceEnd
	}
	return nil
}

func (m *machine[T]) stepNumericCharacterReferenceEnd() error {
	r, errName, hadErr := resolveNumericReference(m.charRefCode)
	if hadErr {
		m.emitError(errName)
	}
	m.tempBuf = m.tempBuf[:0]
	var buf [4]byte
	n := encodeUTF8(buf[:], r)
	m.tempBuf = append(m.tempBuf, buf[:n]...)
	m.flushTempBufAsText()
	m.state = m.returnState
	return nil
}

// encodeUTF8 writes r's UTF-8 encoding into buf (len(buf) >= 4) and returns
// the number of bytes written. Surrogates and values above U+10FFFF are
// never passed in: resolveNumericReference already substitutes U+FFFD for
// those, so this never needs to special-case them.
func encodeUTF8(buf []byte, r rune) int {
	switch {
	case r < 0x80:
		buf[0] = byte(r)
		return 1
	case r < 0x800:
		buf[0] = byte(0xC0 | (r >> 6))
		buf[1] = byte(0x80 | (r & 0x3F))
		return 2
	case r < 0x10000:
		buf[0] = byte(0xE0 | (r >> 12))
		buf[1] = byte(0x80 | ((r >> 6) & 0x3F))
		buf[2] = byte(0x80 | (r & 0x3F))
		return 3
	default:
		buf[0] = byte(0xF0 | (r >> 18))
		buf[1] = byte(0x80 | ((r >> 12) & 0x3F))
		buf[2] = byte(0x80 | ((r >> 6) & 0x3F))
		buf[3] = byte(0x80 | (r & 0x3F))
		return 4
	}
}
