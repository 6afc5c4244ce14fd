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

package html5tok_test

import (
	"errors"
	"fmt"
	"io"

	html5tok "github.com/Goodwine/html5tok"
)

// Example_manualTokenization walks a small document one token at a time,
// the way a hand-rolled tree builder would before it has any use for a
// full DOM.
func Example_manualTokenization() {
	const doc = `<ul class="menu"><li>Home</li><li>About</li></ul>`

	tok := html5tok.NewTokenizer[html5tok.Token](html5tok.NewStringReader(doc), html5tok.NewDefaultEmitter(true))

	var items []string
	var current string
	for {
		t, err := tok.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			panic(err)
		}
		switch v := t.(type) {
		case html5tok.StartTag:
			if string(v.Name) == "li" {
				current = ""
			}
		case html5tok.Text:
			current += string(v.Data)
		case html5tok.EndTag:
			if string(v.Name) == "li" {
				items = append(items, current)
			}
		}
	}

	for _, item := range items {
		fmt.Println(item)
	}
	// Output:
	// Home
	// About
}
