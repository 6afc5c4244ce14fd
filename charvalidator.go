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

// errorEmitter is the narrow slice of Emitter that the byte-level validator
// and read helper need: just the ability to surface a parse error.
type errorEmitter interface {
	EmitError(ParseError)
}

// charValidator tracks the last up-to-4 bytes of the UTF-8 code point
// currently being assembled and flags surrogate/noncharacter/control
// sequences as they complete, without ever decoding to a rune. This mirrors
// the input-stream validation step of the preprocessor (spec.md 4.2):
// validation happens on raw bytes, one UTF-8 lead/continuation byte at a
// time.
type charValidator struct {
	last4Bytes     uint32
	characterError *ParseError
}

func (v *charValidator) reset() {
	v.last4Bytes = 0
}

func (v *charValidator) validateBytes(e errorEmitter, bs []byte) {
	for _, b := range bs {
		v.validateByte(e, b)
	}
}

func (v *charValidator) validateByte(e errorEmitter, b byte) {
	switch {
	case b < 128:
		v.last4Bytes = 0
		v.flushCharacterError(e)
		v.validateLast4Bytes(e, uint32(b))
	case b >= 192:
		v.last4Bytes = uint32(b)
	default:
		v.last4Bytes = (v.last4Bytes << 8) | uint32(b)
		v.validateLast4Bytes(e, v.last4Bytes)
	}
}

// flushCharacterError emits any deferred character error. Deferring an
// error until the next complete code point gives the emitter a coherent
// position to attach it to.
func (v *charValidator) flushCharacterError(e errorEmitter) {
	if v.characterError != nil {
		e.EmitError(*v.characterError)
		v.characterError = nil
	}
}

// setCharacterError defers err until the current multi-byte sequence
// finishes, unless we're already at a code point boundary in which case it
// fires immediately. Available for callers that need the deferred-until-
// next-codepoint behavior; validateByte itself resolves errors immediately
// once a full 4-byte window is known, the same as the upstream validator.
func (v *charValidator) setCharacterError(e errorEmitter, err ParseError) {
	v.flushCharacterError(e)
	if v.last4Bytes == 0 {
		e.EmitError(err)
	} else {
		v.characterError = &err
	}
}

// nonCharacterWindows is the set of last-4-bytes values (as the big-endian
// UTF-8 encoding of a Unicode noncharacter) that validateLast4Bytes flags.
var nonCharacterWindows = map[uint32]bool{
	0xefb790: true, 0xefb791: true, 0xefb792: true, 0xefb793: true,
	0xefb794: true, 0xefb795: true, 0xefb796: true, 0xefb797: true,
	0xefb798: true, 0xefb799: true, 0xefb79a: true, 0xefb79b: true,
	0xefb79c: true, 0xefb79d: true, 0xefb79e: true, 0xefb79f: true,
	0xefb7a0: true, 0xefb7a1: true, 0xefb7a2: true, 0xefb7a3: true,
	0xefb7a4: true, 0xefb7a5: true, 0xefb7a6: true, 0xefb7a7: true,
	0xefb7a8: true, 0xefb7a9: true, 0xefb7aa: true, 0xefb7ab: true,
	0xefb7ac: true, 0xefb7ad: true, 0xefb7ae: true, 0xefb7af: true,
	0xefbfbe: true, 0xefbfbf: true,
	0xf09fbfbe: true, 0xf09fbfbf: true, 0xf0afbfbe: true, 0xf0afbfbf: true,
	0xf0bfbfbe: true, 0xf0bfbfbf: true, 0xf18fbfbe: true, 0xf18fbfbf: true,
	0xf19fbfbe: true, 0xf19fbfbf: true, 0xf1afbfbe: true, 0xf1afbfbf: true,
	0xf1bfbfbe: true, 0xf1bfbfbf: true, 0xf28fbfbe: true, 0xf28fbfbf: true,
	0xf29fbfbe: true, 0xf29fbfbf: true, 0xf2afbfbe: true, 0xf2afbfbf: true,
	0xf2bfbfbe: true, 0xf2bfbfbf: true, 0xf38fbfbe: true, 0xf38fbfbf: true,
	0xf39fbfbe: true, 0xf39fbfbf: true, 0xf3afbfbe: true, 0xf3afbfbf: true,
	0xf3bfbfbe: true, 0xf3bfbfbf: true, 0xf48fbfbe: true, 0xf48fbfbf: true,
}

// controlWindows is the set of last-4-bytes values that are either a bare
// C0 control (excluding TAB/LF/FF/SPACE/NUL) or the UTF-8 encoding of a
// C1 control (U+0080..U+009F). CR (0xd) is listed, but readHelper turns CR
// into LF before validating, so the tokenizer never flags it.
var controlWindows = map[uint32]bool{
	0x1: true, 0x2: true, 0x3: true, 0x4: true, 0x5: true, 0x6: true,
	0x7: true, 0x8: true, 0xb: true, 0xd: true, 0xe: true, 0xf: true,
	0x10: true, 0x11: true, 0x12: true, 0x13: true, 0x14: true, 0x15: true,
	0x16: true, 0x17: true, 0x18: true, 0x19: true, 0x1a: true, 0x1b: true,
	0x1c: true, 0x1d: true, 0x1e: true, 0x1f: true, 0x7f: true,
	0xc280: true, 0xc281: true, 0xc282: true, 0xc283: true, 0xc284: true,
	0xc285: true, 0xc286: true, 0xc287: true, 0xc288: true, 0xc289: true,
	0xc28a: true, 0xc28b: true, 0xc28c: true, 0xc28d: true, 0xc28e: true,
	0xc28f: true, 0xc290: true, 0xc291: true, 0xc292: true, 0xc293: true,
	0xc294: true, 0xc295: true, 0xc296: true, 0xc297: true, 0xc298: true,
	0xc299: true, 0xc29a: true, 0xc29b: true, 0xc29c: true, 0xc29d: true,
	0xc29e: true, 0xc29f: true,
}

func (v *charValidator) validateLast4Bytes(e errorEmitter, last4Bytes uint32) {
	switch {
	case last4Bytes >= 0xeda080 && last4Bytes <= 0xedbfbf: // U+D800..U+DFFF
		e.EmitError(SurrogateInInputStream)
		v.flushCharacterError(e)
	case nonCharacterWindows[last4Bytes]:
		e.EmitError(NoncharacterInInputStream)
		v.flushCharacterError(e)
	case controlWindows[last4Bytes]:
		e.EmitError(ControlCharacterInInputStream)
		v.flushCharacterError(e)
	}
}
