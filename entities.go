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

import (
	"github.com/Goodwine/triemap"
)

// maxNamedReferenceRun bounds how many bytes a candidate named-reference
// name can occupy. The longest WHATWG name, "CounterClockwiseContourIntegral;",
// is 32 bytes; 40 leaves headroom without inviting runaway reads on hostile
// input.
const maxNamedReferenceRun = 40

// namedReferences interns every known entity name (both with and without
// its trailing ';', where the WHATWG list permits the latter) to its
// expansion, as a byte string. It reuses triemap.RuneSliceMap exactly the
// way the teacher's decoder.go uses it for identifier interning: an
// exact-match cache keyed by []rune, not a prefix-walking trie API (the
// module exposes none). Longest-prefix matching is therefore implemented
// in lookupNamedReference as a shrinking-prefix scan of exact Gets, trying
// the longest candidate first.
var namedReferences triemap.RuneSliceMap

func init() {
	for name, expansion := range namedReferenceTable {
		namedReferences.Put([]rune(name), expansion)
	}
}

func isNamedReferenceChar(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// lookupNamedReference reads a candidate entity name from h (the '&' itself
// must already have been consumed by the caller) and returns the longest
// matching name and its expansion. On success the reader is left positioned
// just past the matched name, with any extra bytes read on speculation
// pushed back via unreadBytes. On failure every byte this call read is
// pushed back, leaving the reader exactly as it found it.
func lookupNamedReference(h *readHelper, e errorEmitter) (name []byte, expansion []byte, ok bool, err error) {
	var buf [maxNamedReferenceRun]byte
	n := 0

	for n < len(buf) {
		v, rerr := h.readByte(e)
		if rerr != nil {
			return nil, nil, false, rerr
		}
		if v.eof {
			break
		}
		if !isNamedReferenceChar(v.b) && v.b != ';' {
			h.unreadByte(v)
			break
		}
		buf[n] = v.b
		n++
		if v.b == ';' {
			break
		}
	}

	if n == 0 {
		return nil, nil, false, nil
	}

	for length := n; length >= 1; length-- {
		if value, found := namedReferences.Get(runesOf(buf[:length])); found {
			if length < n {
				h.unreadBytes(append([]byte(nil), buf[length:n]...))
			}
			return append([]byte(nil), buf[:length]...), value.([]byte), true, nil
		}
	}

	h.unreadBytes(append([]byte(nil), buf[:n]...))
	return nil, nil, false, nil
}

func runesOf(bs []byte) []rune {
	rs := make([]rune, len(bs))
	for i, b := range bs {
		rs[i] = rune(b)
	}
	return rs
}

// windows1252ControlRemap maps the C1-control code points the WHATWG
// standard special-cases in numeric character references to their intended
// Windows-1252 characters.
var windows1252ControlRemap = map[rune]rune{
	0x80: 0x20AC, // EURO SIGN
	0x82: 0x201A, // SINGLE LOW-9 QUOTATION MARK
	0x83: 0x0192, // LATIN SMALL LETTER F WITH HOOK
	0x84: 0x201E, // DOUBLE LOW-9 QUOTATION MARK
	0x85: 0x2026, // HORIZONTAL ELLIPSIS
	0x86: 0x2020, // DAGGER
	0x87: 0x2021, // DOUBLE DAGGER
	0x88: 0x02C6, // MODIFIER LETTER CIRCUMFLEX ACCENT
	0x89: 0x2030, // PER MILLE SIGN
	0x8A: 0x0160, // LATIN CAPITAL LETTER S WITH CARON
	0x8B: 0x2039, // SINGLE LEFT-POINTING ANGLE QUOTATION MARK
	0x8C: 0x0152, // LATIN CAPITAL LIGATURE OE
	0x8E: 0x017D, // LATIN CAPITAL LETTER Z WITH CARON
	0x91: 0x2018, // LEFT SINGLE QUOTATION MARK
	0x92: 0x2019, // RIGHT SINGLE QUOTATION MARK
	0x93: 0x201C, // LEFT DOUBLE QUOTATION MARK
	0x94: 0x201D, // RIGHT DOUBLE QUOTATION MARK
	0x95: 0x2022, // BULLET
	0x96: 0x2013, // EN DASH
	0x97: 0x2014, // EM DASH
	0x98: 0x02DC, // SMALL TILDE
	0x99: 0x2122, // TRADE MARK SIGN
	0x9A: 0x0161, // LATIN SMALL LETTER S WITH CARON
	0x9B: 0x203A, // SINGLE RIGHT-POINTING ANGLE QUOTATION MARK
	0x9C: 0x0153, // LATIN SMALL LIGATURE OE
	0x9E: 0x017E, // LATIN SMALL LETTER Z WITH CARON
	0x9F: 0x0178, // LATIN CAPITAL LETTER Y WITH DIAERESIS
}

func isSurrogate(r rune) bool {
	return r >= 0xd800 && r <= 0xdfff
}

func isNoncharacter(r rune) bool {
	if r >= 0xfdd0 && r <= 0xfdef {
		return true
	}
	switch r & 0xffff {
	case 0xfffe, 0xffff:
		return true
	}
	return false
}

// resolveNumericReference finalizes a numeric character reference's
// accumulated code point, applying the replacement-character substitution,
// range checks and Windows-1252 control remap the standard mandates, and
// reports which (if any) parse error accompanies the result.
func resolveNumericReference(code uint32) (rune, ParseError, bool) {
	switch {
	case code == 0:
		return 0xfffd, NullCharacterReference, true
	case code > 0x10ffff:
		return 0xfffd, CharacterReferenceOutsideUnicodeRange, true
	case isSurrogate(rune(code)):
		return 0xfffd, SurrogateCharacterReference, true
	case isNoncharacter(rune(code)):
		return rune(code), NoncharacterCharacterReference, true
	}

	isControl := code <= 0x1f || (code >= 0x7f && code <= 0x9f)
	isExemptWhitespace := code == 0x09 || code == 0x0a || code == 0x0c
	if isControl && !isExemptWhitespace {
		if remapped, ok := windows1252ControlRemap[rune(code)]; ok {
			return remapped, ControlCharacterReference, true
		}
		return rune(code), ControlCharacterReference, true
	}

	return rune(code), 0, false
}
