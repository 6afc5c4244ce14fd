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

// naiveNextStateTable maps lowercased start-tag names to the state the
// tokenizer should naively switch into once that tag is emitted, absent a
// real tree builder to make the call. Only the names listed here switch
// state; the key for frames content is "noframe", so a <noframes> start
// tag leaves the tokenizer in Data.
var naiveNextStateTable = map[string]State{
	"title":     RcData,
	"textarea":  RcData,
	"style":     RawText,
	"xmp":       RawText,
	"iframe":    RawText,
	"noembed":   RawText,
	"noframe":   RawText,
	"noscript":  RawText,
	"script":    ScriptData,
	"plaintext": PlainText,
}

func naiveNextState(name []byte) (State, bool) {
	s, ok := naiveNextStateTable[string(name)]
	return s, ok
}

type buildingAttribute struct {
	name, value []byte
}

// DefaultEmitter is the canonical structural Emitter: every call builds up
// a Token owned entirely by the emitter, to be handed to the caller whole.
// It tracks enough state across calls (the last start tag name, a
// duplicate-attribute set per tag, byte-span bookkeeping) to implement the
// spec's emission-time invariants without support from the state machine.
type DefaultEmitter struct {
	naiveSwitch bool
	emitErrors  bool

	lastStartTag []byte

	pos       int
	spanStart int

	queue []Token

	textBuf   []byte
	textStart int

	startTag *StartTag
	endTag   *EndTag
	doctype  *Doctype

	endTagHadAttributes bool

	attrNames map[string]bool
	attrBuf   attributeBuffer
	curAttr   buildingAttribute
	haveAttr  bool

	commentBuf []byte
}

// NewDefaultEmitter constructs a DefaultEmitter. When naiveSwitch is true,
// EmitCurrentTag consults naiveNextStateTable for every start tag, the
// heuristic a caller with no tree builder of its own should use; a caller
// that does have a tree builder should pass false and drive SetState itself
// from EmitCurrentTag's return value.
func NewDefaultEmitter(naiveSwitch bool) *DefaultEmitter {
	return &DefaultEmitter{naiveSwitch: naiveSwitch, emitErrors: true}
}

// SetEmitErrors controls ShouldEmitErrors; disabling it skips parse-error
// bookkeeping entirely.
func (d *DefaultEmitter) SetEmitErrors(v bool) { d.emitErrors = v }

func (d *DefaultEmitter) ShouldEmitErrors() bool { return d.emitErrors }

func (d *DefaultEmitter) MoveSpanPosition(delta int) { d.pos += delta }

func (d *DefaultEmitter) push(t Token) { d.queue = append(d.queue, t) }

// PopToken returns and removes the oldest queued token.
func (d *DefaultEmitter) PopToken() (Token, bool) {
	if len(d.queue) == 0 {
		return nil, false
	}
	t := d.queue[0]
	d.queue = d.queue[1:]
	return t, true
}

func (d *DefaultEmitter) InitStartTag() {
	d.spanStart = d.pos - 1
	d.startTag = &StartTag{}
	d.endTag = nil
	d.doctype = nil
	d.attrNames = nil
}

func (d *DefaultEmitter) InitEndTag() {
	d.spanStart = d.pos - 2
	d.endTag = &EndTag{}
	d.startTag = nil
	d.doctype = nil
	d.attrNames = nil
	d.endTagHadAttributes = false
}

func (d *DefaultEmitter) InitComment() {
	d.spanStart = d.pos
	d.commentBuf = d.commentBuf[:0]
}

func (d *DefaultEmitter) InitDoctype() {
	d.spanStart = d.pos
	d.doctype = &Doctype{}
}

func (d *DefaultEmitter) InitAttribute() {
	d.flushAttr()
	d.curAttr = buildingAttribute{}
	d.haveAttr = true
}

func (d *DefaultEmitter) SetLastStartTag(name []byte) {
	d.lastStartTag = append(d.lastStartTag[:0], name...)
}

func (d *DefaultEmitter) flushAttr() {
	if !d.haveAttr {
		return
	}
	d.haveAttr = false
	if d.endTag != nil {
		if len(d.curAttr.name) > 0 {
			d.endTagHadAttributes = true
		}
		return
	}
	if d.startTag == nil {
		return
	}
	name := string(d.curAttr.name)
	if d.attrNames == nil {
		d.attrNames = make(map[string]bool)
	}
	if d.attrNames[name] {
		d.EmitError(DuplicateAttribute)
		return
	}
	d.attrNames[name] = true
	d.attrBuf.add(Attribute{Name: d.curAttr.name, Value: d.curAttr.value})
}

func (d *DefaultEmitter) PushTagName(s []byte) {
	if d.startTag != nil {
		d.startTag.Name = append(d.startTag.Name, s...)
	} else if d.endTag != nil {
		d.endTag.Name = append(d.endTag.Name, s...)
	}
}

func (d *DefaultEmitter) PushAttributeName(s []byte) {
	d.curAttr.name = append(d.curAttr.name, s...)
}

func (d *DefaultEmitter) PushAttributeValue(s []byte) {
	d.curAttr.value = append(d.curAttr.value, s...)
}

func (d *DefaultEmitter) PushComment(s []byte) {
	d.commentBuf = append(d.commentBuf, s...)
}

func (d *DefaultEmitter) PushDoctypeName(s []byte) {
	d.doctype.Name = append(d.doctype.Name, s...)
}

func (d *DefaultEmitter) PushDoctypePublicIdentifier(s []byte) {
	d.doctype.PublicIdentifier = append(d.doctype.PublicIdentifier, s...)
}

func (d *DefaultEmitter) PushDoctypeSystemIdentifier(s []byte) {
	d.doctype.SystemIdentifier = append(d.doctype.SystemIdentifier, s...)
}

func (d *DefaultEmitter) SetDoctypePublicIdentifier(s []byte) {
	d.doctype.PublicIdentifier = append([]byte{}, s...)
}

func (d *DefaultEmitter) SetDoctypeSystemIdentifier(s []byte) {
	d.doctype.SystemIdentifier = append([]byte{}, s...)
}

func (d *DefaultEmitter) SetSelfClosing() {
	if d.startTag != nil {
		d.startTag.SelfClosing = true
	}
}

func (d *DefaultEmitter) SetForceQuirks() {
	if d.doctype != nil {
		d.doctype.ForceQuirks = true
	}
}

// EmitString buffers s into the run of character data under construction;
// it is not pushed as a Text token until the next flushText, so that a run
// of text interrupted by character-reference expansion still yields a
// single coalesced token instead of one Text per EmitString call.
func (d *DefaultEmitter) EmitString(s []byte) {
	if len(s) == 0 {
		return
	}
	if len(d.textBuf) == 0 {
		d.textStart = d.pos - len(s)
	}
	d.textBuf = append(d.textBuf, s...)
}

// flushText pushes any buffered character data as a single Text token.
// Called at the start of every non-character emission, matching the
// original's flush_current_characters/emit_token pairing: no two adjacent
// Text tokens are ever produced for one continuous run.
func (d *DefaultEmitter) flushText() {
	if len(d.textBuf) == 0 {
		return
	}
	cp := append([]byte(nil), d.textBuf...)
	d.push(Text{Data: cp, Span: Span{Start: d.textStart, End: d.pos}})
	d.textBuf = d.textBuf[:0]
}

// EmitCurrentTag finalizes the tag under construction, applying the
// duplicate-attribute check on flush and the appropriate-end-tag-token
// bookkeeping (remembering the last start tag name), and reports a naive
// content-model override for start tags when naiveSwitch is enabled.
func (d *DefaultEmitter) EmitCurrentTag() (State, bool) {
	d.flushAttr()
	d.flushText()
	span := Span{Start: d.spanStart, End: d.pos}

	if d.startTag != nil {
		st := *d.startTag
		st.Span = span
		st.Attributes = d.attrBuf.get()
		d.push(st)
		d.SetLastStartTag(st.Name)
		d.startTag = nil
		if d.naiveSwitch {
			if override, ok := naiveNextState(st.Name); ok {
				return override, true
			}
		}
		return Data, false
	}

	if d.endTag != nil {
		et := *d.endTag
		et.Span = span
		if d.endTagHadAttributes {
			d.EmitError(EndTagWithAttributes)
		}
		d.push(et)
		d.endTag = nil
	}
	return Data, false
}

func (d *DefaultEmitter) EmitCurrentComment() {
	d.flushText()
	d.push(Comment{Data: append([]byte(nil), d.commentBuf...), Span: Span{Start: d.spanStart, End: d.pos}})
}

func (d *DefaultEmitter) EmitCurrentDoctype() {
	d.flushText()
	dt := *d.doctype
	dt.Span = Span{Start: d.spanStart, End: d.pos}
	d.push(dt)
	d.doctype = nil
}

func (d *DefaultEmitter) EmitEOF() {
	// EOF carries no token of its own, but any buffered character data
	// still needs to reach the queue before Tokenizer.Next reports io.EOF.
	d.flushText()
}

func (d *DefaultEmitter) EmitError(err ParseError) {
	if !d.emitErrors {
		return
	}
	d.push(ParseErrorToken{Err: err, Span: Span{Start: d.pos, End: d.pos}})
}

// CurrentIsAppropriateEndTagToken reports whether the end tag under
// construction matches the most recently emitted start tag's name.
func (d *DefaultEmitter) CurrentIsAppropriateEndTagToken() bool {
	if d.endTag == nil || len(d.lastStartTag) == 0 {
		return false
	}
	return string(d.endTag.Name) == string(d.lastStartTag)
}

// AdjustedCurrentNodePresentButNotInHTMLNamespace always reports false:
// DefaultEmitter has no tree builder behind it, so CDATA sections outside
// of an explicit SetState(CdataSection) call are always bogus comments.
func (d *DefaultEmitter) AdjustedCurrentNodePresentButNotInHTMLNamespace() bool {
	return false
}
