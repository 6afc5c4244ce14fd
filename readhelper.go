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

// inputByte is one preprocessed input-stream byte, or the EOF marker. It is
// the unit the reconsume stack and the state machine operate on.
type inputByte struct {
	b   byte
	eof bool
}

// stack2 is a two-slot LIFO buffer of inputByte, sized for the deepest
// "reconsume" nesting HTML tokenization ever requires. Modeling reconsume
// this way (rather than via recursive call/return) keeps every state
// transition a flat, allocation-free operation.
type stack2 struct {
	a, b inputByte
	n    int
}

func (s *stack2) push(v inputByte) {
	switch s.n {
	case 0:
		s.a = v
	case 1:
		s.b = v
	default:
		panic("html5tok: reconsume stack full")
	}
	s.n++
}

func (s *stack2) pop() (inputByte, bool) {
	switch s.n {
	case 0:
		return inputByte{}, false
	case 2:
		s.n = 1
		return s.b, true
	default:
		s.n = 0
		return s.a, true
	}
}

// readHelper wraps a Reader with newline normalization (CR and CRLF -> LF),
// the reconsume stack, and byte-level input validation.
type readHelper struct {
	r         Reader
	stack     stack2
	validator charValidator
	run       []byte // reusable buffer for readUntil

	// pending holds bytes returned by a bulk unreadBytes call (used by
	// named-character-reference backtracking, which may need to push back
	// more than the two-slot stack can hold). It is drained, in order,
	// before the stack or the underlying reader is consulted.
	pending    []byte
	pendingPos int
}

func newReadHelper(r Reader) *readHelper {
	return &readHelper{r: r}
}

// unreadByte pushes v back for the next readByte call to return again,
// without re-running validation or re-advancing the span position.
func (h *readHelper) unreadByte(v inputByte) {
	h.stack.push(v)
}

// unreadBytes pushes back a run of already-validated, already-normalized
// bytes, such as the unmatched tail of a named character reference
// candidate. Order is preserved: the first byte of bs is the next one
// readByte will return.
func (h *readHelper) unreadBytes(bs []byte) {
	if len(bs) == 0 {
		return
	}
	if h.pendingPos > 0 {
		h.pending = append(h.pending[:0], h.pending[h.pendingPos:]...)
		h.pendingPos = 0
	}
	h.pending = append(bs, h.pending...)
}

// readByte returns the next preprocessed byte (or EOF), applying newline
// normalization and, for freshly-read bytes (not reconsumed ones),
// validation.
func (h *readHelper) readByte(e errorEmitter) (inputByte, error) {
	if h.pendingPos < len(h.pending) {
		b := h.pending[h.pendingPos]
		h.pendingPos++
		if h.pendingPos == len(h.pending) {
			h.pending, h.pendingPos = h.pending[:0], 0
		}
		return inputByte{b: b}, nil
	}

	v, reconsumed := h.stack.pop()
	if !reconsumed {
		b, ok, err := h.r.ReadByte()
		if err != nil {
			return inputByte{}, err
		}
		if !ok {
			return inputByte{eof: true}, nil
		}
		v = inputByte{b: b}
	}

	if !v.eof && v.b == '\r' {
		v.b = '\n'
		nb, ok, err := h.r.ReadByte()
		if err != nil {
			return inputByte{}, err
		}
		if ok && nb != '\n' {
			h.stack.push(inputByte{b: nb})
		}
	}

	if !reconsumed {
		h.validator.validateByte(e, v.b)
	}
	return v, nil
}

// tryReadString consumes len(s) bytes if they equal s (optionally ignoring
// ASCII case), first satisfying the match against any pending reconsumed
// bytes.
func (h *readHelper) tryReadString(e errorEmitter, s []byte, caseSensitive bool) (bool, error) {
	if h.stack.n == 0 {
		return h.r.TryReadString(s, caseSensitive)
	}

	// Slow path: drain the reconsume stack byte by byte, comparing as we
	// go, then fall through to the reader for whatever remains.
	savedA, savedB, savedN := h.stack.a, h.stack.b, h.stack.n
	rest := s
	for h.stack.n > 0 && len(rest) > 0 {
		v, _ := h.stack.pop()
		if v.eof {
			h.stack.a, h.stack.b, h.stack.n = savedA, savedB, savedN
			return false, nil
		}
		x, y := v.b, rest[0]
		if !caseSensitive {
			x = lowerASCII(x)
			y = lowerASCII(y)
		}
		if x != y {
			h.stack.a, h.stack.b, h.stack.n = savedA, savedB, savedN
			return false, nil
		}
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return true, nil
	}
	ok, err := h.r.TryReadString(rest, caseSensitive)
	if err != nil {
		return false, err
	}
	if !ok {
		h.stack.a, h.stack.b, h.stack.n = savedA, savedB, savedN
		return false, nil
	}
	return true, nil
}

func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// readUntil returns a borrowed, possibly-empty-turned-false run of bytes
// strictly preceding the next byte in set, leaving that byte (or EOF)
// unconsumed for the next readByte call. It is built directly out of
// readByte, rather than delegating to the underlying Reader's own
// ReadUntil, so newline normalization and byte validation apply uniformly
// to every byte regardless of how it is eventually consumed by the state
// machine; ok is false when the very next byte is already in set, so the
// caller falls back to its normal single-byte handling for that boundary.
func (h *readHelper) readUntil(e errorEmitter, set ByteSet) ([]byte, bool, error) {
	if set == (ByteSet{}) {
		return nil, false, errEmptyNeedle
	}
	h.run = h.run[:0]
	for {
		v, err := h.readByte(e)
		if err != nil {
			return nil, false, err
		}
		if v.eof || set.Contains(v.b) {
			if !v.eof {
				h.unreadByte(v)
			}
			if len(h.run) == 0 {
				return nil, false, nil
			}
			return h.run, true, nil
		}
		h.run = append(h.run, v.b)
	}
}
