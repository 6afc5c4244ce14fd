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
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

// benchDoc is a synthetic document standing in for the fixture file the
// upstream decoder benchmark used to read from testdata/; no equivalent
// HTML corpus shipped with the retrieved sources, so this is generated
// in-process instead of depending on an external file.
var benchDoc = strings.Repeat(
	`<div class="row" data-id="42"><span>Item &amp; co.</span><!-- sep --></div>`,
	200,
)

func BenchmarkTokenize(b *testing.B) {
	buf := []byte(benchDoc)
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tok := NewTokenizer[Token](NewSliceReader(buf), NewDefaultEmitter(true))
		for {
			_, err := tok.Next()
			if err != nil {
				if errors.Is(err, io.EOF) {
					break
				}
				b.Fatalf("Next: %v", err)
			}
		}
	}
}

func BenchmarkTokenize_naiveByteScan(b *testing.B) {
	buf := []byte(benchDoc)
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		naiveScanTags(buf)
	}
}

// naiveScanTags is the crudest possible baseline a tree builder could have
// reached for before adopting a real tokenizer: it finds '<'...'>' runs
// without any awareness of quoted attribute values, comments, or character
// references. It exists purely to give the benchmark above something to be
// measured against, the way the teacher's decoder benchmark compared
// against the standard library's XML decoder.
func naiveScanTags(buf []byte) int {
	count := 0
	for {
		i := bytes.IndexByte(buf, '<')
		if i < 0 {
			break
		}
		buf = buf[i+1:]
		j := bytes.IndexByte(buf, '>')
		if j < 0 {
			break
		}
		buf = buf[j+1:]
		count++
	}
	return count
}
