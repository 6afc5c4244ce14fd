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

// Package html5tok implements the tokenization stage of the WHATWG HTML
// parsing algorithm: it turns a byte stream into a sequence of start tags,
// end tags, character runs, comments, doctypes and parse errors.
//
// It does not build a DOM and knows nothing about tree construction; it
// exposes a state-override hook on tag emission so that a tree builder (or
// the bundled naive heuristic) can switch the tokenizer into RCDATA, RAWTEXT,
// script-data or PLAINTEXT sublanguages.
//
// Two emitters are provided. DefaultEmitter accumulates tokens into owned
// Go values and is the easiest to use. CallbackEmitter instead invokes a
// user-supplied callback with events that borrow the emitter's internal
// buffers, avoiding most allocations at the cost of a slightly lower-level
// API.
package html5tok
