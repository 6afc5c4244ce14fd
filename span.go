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

// Span is a half-open byte range [Start, End) over the original input.
// Structural tokens cover from their opening '<' to the byte after their
// closing '>'. Error tokens carry a zero-width span at the offending byte.
type Span struct {
	Start int
	End   int
}
