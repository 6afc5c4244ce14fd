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

// CallbackEventKind identifies which field of CallbackEvent is populated.
type CallbackEventKind int

const (
	// EventAttributeName fires once per attribute, carrying both its name
	// and already-complete value together (CallbackEmitter never streams a
	// partial attribute value out on its own).
	EventAttributeName CallbackEventKind = iota
	EventCloseStartTag
	EventEndTag
	EventString
	EventComment
	EventDoctype
	EventError
	EventEOF
)

// CallbackEvent is a borrowed-slice view into CallbackEmitter's internal
// buffers: every []byte field is valid only for the duration of the
// callback invocation that receives it. This avoids allocating a Token for
// every emission, at the cost of the caller having to copy anything it
// needs to keep.
type CallbackEvent struct {
	Kind CallbackEventKind

	Name  []byte // CloseStartTag, EndTag, AttributeName, Doctype (Name)
	Value []byte // AttributeName (value), String (text), Comment (data)

	SelfClosing         bool // CloseStartTag
	EndTagHadAttributes bool // EndTag

	DoctypePublicIdentifier []byte
	DoctypeSystemIdentifier []byte
	DoctypeForceQuirks      bool

	Err  ParseError
	Span Span
}

// CallbackEmitter is the borrowed-slice Emitter: every construction/
// accumulation call writes into a small set of reused buffers, and each
// emission calls fn once with a CallbackEvent describing what just
// finished, exactly mirroring the teacher's buffer-reuse idiom instead of
// allocating a Token per event.
//
// T is whatever fn chooses to fold events into; every value fn returns,
// zero values included, is queued, and PopToken returns them oldest first,
// the same way DefaultEmitter drains its token queue.
type CallbackEmitter[T any] struct {
	fn func(CallbackEvent) T

	naiveSwitch bool
	emitErrors  bool

	lastStartTag []byte

	pos       int
	spanStart int

	textBuf []byte

	nameBuf  []byte
	valueBuf []byte
	attrName []byte
	attrVal  []byte

	doctypePublic []byte
	doctypeSystem []byte
	forceQuirks   bool

	isEndTag    bool
	selfClosing bool
	// tagHadAttributes is reset at the start of every tag and would, in
	// principle, record whether any attribute was seen; no code path here
	// ever sets it true, mirroring callback_emitter.rs's own dead field.
	tagHadAttributes    bool
	endTagHadAttributes bool

	haveAttr bool

	pending []T
}

// NewCallbackEmitter constructs a CallbackEmitter that calls fn once per
// emitted event. naiveSwitch behaves as in NewDefaultEmitter.
func NewCallbackEmitter[T any](naiveSwitch bool, fn func(CallbackEvent) T) *CallbackEmitter[T] {
	return &CallbackEmitter[T]{fn: fn, naiveSwitch: naiveSwitch, emitErrors: true}
}

func (c *CallbackEmitter[T]) SetEmitErrors(v bool)       { c.emitErrors = v }
func (c *CallbackEmitter[T]) ShouldEmitErrors() bool     { return c.emitErrors }
func (c *CallbackEmitter[T]) MoveSpanPosition(delta int) { c.pos += delta }

func (c *CallbackEmitter[T]) emit(ev CallbackEvent) {
	ev.Span.Start, ev.Span.End = c.spanStart, c.pos
	c.pending = append(c.pending, c.fn(ev))
}

// PopToken dequeues the oldest pending value fn returned.
func (c *CallbackEmitter[T]) PopToken() (T, bool) {
	if len(c.pending) == 0 {
		var zero T
		return zero, false
	}
	v := c.pending[0]
	c.pending = c.pending[1:]
	return v, true
}

func (c *CallbackEmitter[T]) InitStartTag() {
	c.spanStart = c.pos - 1
	c.nameBuf = c.nameBuf[:0]
	c.isEndTag = false
	c.tagHadAttributes = false
}

func (c *CallbackEmitter[T]) InitEndTag() {
	c.spanStart = c.pos - 2
	c.nameBuf = c.nameBuf[:0]
	c.isEndTag = true
	c.tagHadAttributes = false
	c.endTagHadAttributes = false
}

func (c *CallbackEmitter[T]) InitComment() {
	c.spanStart = c.pos
	c.valueBuf = c.valueBuf[:0]
}

func (c *CallbackEmitter[T]) InitDoctype() {
	c.spanStart = c.pos
	c.nameBuf = c.nameBuf[:0]
	c.doctypePublic = nil
	c.doctypeSystem = nil
	c.forceQuirks = false
}

func (c *CallbackEmitter[T]) InitAttribute() {
	c.flushAttr()
	c.attrName = c.attrName[:0]
	c.attrVal = c.attrVal[:0]
	c.haveAttr = true
}

func (c *CallbackEmitter[T]) SetLastStartTag(name []byte) {
	c.lastStartTag = append(c.lastStartTag[:0], name...)
}

func (c *CallbackEmitter[T]) flushAttr() {
	if !c.haveAttr {
		return
	}
	c.haveAttr = false
	if c.isEndTag {
		if len(c.attrName) > 0 {
			c.endTagHadAttributes = true
		}
		return
	}
	c.emit(CallbackEvent{Kind: EventAttributeName, Name: c.attrName, Value: c.attrVal})
}

func (c *CallbackEmitter[T]) PushTagName(s []byte)        { c.nameBuf = append(c.nameBuf, s...) }
func (c *CallbackEmitter[T]) PushAttributeName(s []byte)  { c.attrName = append(c.attrName, s...) }
func (c *CallbackEmitter[T]) PushAttributeValue(s []byte) { c.attrVal = append(c.attrVal, s...) }
func (c *CallbackEmitter[T]) PushComment(s []byte)        { c.valueBuf = append(c.valueBuf, s...) }
func (c *CallbackEmitter[T]) PushDoctypeName(s []byte)    { c.nameBuf = append(c.nameBuf, s...) }

func (c *CallbackEmitter[T]) PushDoctypePublicIdentifier(s []byte) {
	c.doctypePublic = append(c.doctypePublic, s...)
}

func (c *CallbackEmitter[T]) PushDoctypeSystemIdentifier(s []byte) {
	c.doctypeSystem = append(c.doctypeSystem, s...)
}

func (c *CallbackEmitter[T]) SetDoctypePublicIdentifier(s []byte) {
	c.doctypePublic = append(c.doctypePublic[:0], s...)
}

func (c *CallbackEmitter[T]) SetDoctypeSystemIdentifier(s []byte) {
	c.doctypeSystem = append(c.doctypeSystem[:0], s...)
}

func (c *CallbackEmitter[T]) SetSelfClosing() {
	// Recorded at emission time via EventCloseStartTag's SelfClosing field;
	// stash it on the emitter until then.
	c.selfClosing = true
}

func (c *CallbackEmitter[T]) SetForceQuirks() { c.forceQuirks = true }

// EmitString buffers s into the run of character data under construction;
// it is not emitted as an EventString until the next flushText, so that a
// run of text interrupted by character-reference expansion still yields a
// single coalesced event instead of one EventString per EmitString call.
func (c *CallbackEmitter[T]) EmitString(s []byte) {
	if len(s) == 0 {
		return
	}
	c.textBuf = append(c.textBuf, s...)
}

// flushText emits any buffered character data as a single EventString.
// Called at the start of every non-character emission, matching the
// original's flush_current_characters/emit_token pairing: no two adjacent
// EventString events are ever produced for one continuous run.
func (c *CallbackEmitter[T]) flushText() {
	if len(c.textBuf) == 0 {
		return
	}
	c.emit(CallbackEvent{Kind: EventString, Value: c.textBuf})
	c.textBuf = c.textBuf[:0]
}

func (c *CallbackEmitter[T]) EmitCurrentTag() (State, bool) {
	c.flushAttr()
	c.flushText()
	if c.isEndTag {
		if c.endTagHadAttributes {
			c.EmitError(EndTagWithAttributes)
		}
		c.emit(CallbackEvent{Kind: EventEndTag, Name: c.nameBuf, EndTagHadAttributes: c.endTagHadAttributes})
		return Data, false
	}

	c.emit(CallbackEvent{Kind: EventCloseStartTag, Name: c.nameBuf, SelfClosing: c.selfClosing})
	c.SetLastStartTag(c.nameBuf)
	name := append([]byte(nil), c.nameBuf...)
	c.selfClosing = false
	if c.naiveSwitch {
		if override, ok := naiveNextState(name); ok {
			return override, true
		}
	}
	return Data, false
}

func (c *CallbackEmitter[T]) EmitCurrentComment() {
	c.flushText()
	c.emit(CallbackEvent{Kind: EventComment, Value: c.valueBuf})
}

func (c *CallbackEmitter[T]) EmitCurrentDoctype() {
	c.flushText()
	c.emit(CallbackEvent{
		Kind:                    EventDoctype,
		Name:                    c.nameBuf,
		DoctypePublicIdentifier: c.doctypePublic,
		DoctypeSystemIdentifier: c.doctypeSystem,
		DoctypeForceQuirks:      c.forceQuirks,
	})
}

func (c *CallbackEmitter[T]) EmitEOF() {
	c.flushText()
	c.emit(CallbackEvent{Kind: EventEOF})
}

func (c *CallbackEmitter[T]) EmitError(err ParseError) {
	if !c.emitErrors {
		return
	}
	c.emit(CallbackEvent{Kind: EventError, Err: err})
}

func (c *CallbackEmitter[T]) CurrentIsAppropriateEndTagToken() bool {
	if !c.isEndTag || len(c.lastStartTag) == 0 {
		return false
	}
	return string(c.nameBuf) == string(c.lastStartTag)
}

func (c *CallbackEmitter[T]) AdjustedCurrentNodePresentButNotInHTMLNamespace() bool {
	return false
}
