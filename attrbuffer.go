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

// attributeBuffer is a growable buffer of Attribute values, a helper
// buffer inspired on bytes.Buffer: a single long-lived backing array
// collects the attributes of every tag DefaultEmitter builds, and get
// copies the finished list into a new slice sized for that tag.
type attributeBuffer struct {
	buf []Attribute
	pos int
}

func (buf *attributeBuffer) growBy(n int) {
	buf.buf = append(buf.buf, make([]Attribute, n)...)
}

func (buf *attributeBuffer) reset() {
	buf.pos = 0
}

func (buf *attributeBuffer) add(attr Attribute) {
	if buf.pos == len(buf.buf) {
		buf.growBy(len(buf.buf)*2/3 + 1)
	}
	buf.buf[buf.pos] = attr
	buf.pos++
}

func (buf *attributeBuffer) get() []Attribute {
	if buf.pos == 0 {
		return nil
	}
	attrs := append([]Attribute(nil), buf.buf[:buf.pos]...)
	buf.reset()
	return attrs
}
