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

import "io"

// Tokenizer drives a readHelper/Emitter pair through the state machine,
// handing back one token per Next call. T is the emitter's token type:
// Token for DefaultEmitter, whatever fn returns for CallbackEmitter[T].
type Tokenizer[T any] struct {
	h *readHelper
	e Emitter[T]
	m *machine[T]

	done bool
}

// NewTokenizer builds a Tokenizer reading from r and driving e, starting in
// the Data state.
func NewTokenizer[T any](r Reader, e Emitter[T]) *Tokenizer[T] {
	h := newReadHelper(r)
	return &Tokenizer[T]{
		h: h,
		e: e,
		m: newMachine(h, e, stData),
	}
}

// SetState forces the tokenizer into state, overriding whatever the last
// emitted tag's content model would otherwise have selected. A tree
// builder calls this right after EmitCurrentTag (or CallbackEvent's
// CloseStartTag) returns, instead of relying on the naive heuristic.
func (t *Tokenizer[T]) SetState(state State) {
	t.m.state = state.toMachineState()
}

// SetLastStartTag seeds the "appropriate end tag token" check without
// having tokenized a start tag first, for resuming mid-document (e.g. a
// tree builder reparsing a fragment with a known context element).
func (t *Tokenizer[T]) SetLastStartTag(name []byte) {
	t.e.SetLastStartTag(name)
}

// Next advances the tokenizer until it can return one token, or returns
// io.EOF once the input is exhausted and every queued token has been
// drained.
func (t *Tokenizer[T]) Next() (T, error) {
	for {
		if tok, ok := t.e.PopToken(); ok {
			return tok, nil
		}
		if t.done {
			var zero T
			return zero, io.EOF
		}
		if t.m.eofEmitted {
			t.done = true
			continue
		}
		if err := t.m.step(); err != nil {
			var zero T
			return zero, err
		}
	}
}

// InfallibleTokenizer wraps a Tokenizer whose Reader is statically known
// never to fail (e.g. backed by a SliceReader), discarding the error
// return entirely. It exists for callers who would otherwise have to
// handle an error branch that can only ever be nil.
type InfallibleTokenizer[T any] struct {
	t *Tokenizer[T]
}

// NewInfallibleTokenizer wraps t.
func NewInfallibleTokenizer[T any](t *Tokenizer[T]) *InfallibleTokenizer[T] {
	return &InfallibleTokenizer[T]{t: t}
}

// Next returns the next token, or ok == false at end of input. It panics if
// the wrapped Tokenizer ever does return an error, since that would mean
// the no-error assumption was violated.
func (it *InfallibleTokenizer[T]) Next() (T, bool) {
	tok, err := it.t.Next()
	if err == io.EOF {
		var zero T
		return zero, false
	}
	if err != nil {
		panic("html5tok: InfallibleTokenizer's Reader returned an error: " + err.Error())
	}
	return tok, true
}
