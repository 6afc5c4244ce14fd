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

// Emitter receives fine-grained construction/accumulation/emission calls
// from the state machine and produces the observable token stream. T is
// the concrete token type the emitter yields through PopToken; DefaultEmitter
// yields Token, CallbackEmitter[T] yields whatever its callback returns.
//
// Method groups mirror spec.md 4.3: construction, accumulation, emission.
type Emitter[T any] interface {
	// Construction.
	InitStartTag()
	InitEndTag()
	InitComment()
	InitDoctype()
	InitAttribute()
	SetLastStartTag(name []byte)

	// Accumulation.
	PushTagName(s []byte)
	PushAttributeName(s []byte)
	PushAttributeValue(s []byte)
	PushComment(s []byte)
	PushDoctypeName(s []byte)
	PushDoctypePublicIdentifier(s []byte)
	PushDoctypeSystemIdentifier(s []byte)
	SetDoctypePublicIdentifier(s []byte)
	SetDoctypeSystemIdentifier(s []byte)
	SetSelfClosing()
	SetForceQuirks()
	EmitString(s []byte)

	// Emission / control.
	//
	// EmitCurrentTag may return a state override (ok == true) that the
	// state machine must enter next. This is the hook by which a tree
	// builder, or the bundled naiveNextState heuristic, switches the
	// tokenizer into RCDATA/RAWTEXT/ScriptData/PlainText.
	EmitCurrentTag() (override State, ok bool)
	EmitCurrentComment()
	EmitCurrentDoctype()
	EmitEOF()
	EmitError(err ParseError)
	PopToken() (T, bool)

	// CurrentIsAppropriateEndTagToken reports whether the end tag
	// currently under construction is "appropriate": non-empty and
	// byte-equal (after lowercasing) to the most recently emitted start
	// tag name.
	CurrentIsAppropriateEndTagToken() bool

	// AdjustedCurrentNodePresentButNotInHTMLNamespace gates CDATA section
	// handling inside MarkupDeclarationOpen. The tokenizer has no tree
	// builder of its own, so the default answer is always false; a host
	// that embeds a tree builder overrides this to enable foreign-content
	// CDATA sections (spec.md 9, Open Question b).
	AdjustedCurrentNodePresentButNotInHTMLNamespace() bool

	// ShouldEmitErrors lets an emitter turn every EmitError call into a
	// no-op cheaply, e.g. to skip parse-error bookkeeping entirely when
	// the caller has no use for it.
	ShouldEmitErrors() bool

	// MoveSpanPosition advances (delta > 0) or rewinds (delta < 0) the
	// emitter's span position counter. The state machine calls it as it
	// consumes and reconsumes input; span tracking has no off switch.
	MoveSpanPosition(delta int)
}
