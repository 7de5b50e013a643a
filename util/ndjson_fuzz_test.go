// Copyright 2019 - 2025 The Samply Community
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package util

import (
	"bytes"
	"testing"
)

func FuzzScanLines(f *testing.F) {
	f.Add([]byte("A simple\ntest case\n"))
	f.Add([]byte("Multiple\n\n\nNewlines"))
	f.Add([]byte(""))

	f.Fuzz(func(t *testing.T, data []byte) {
		var total int64
		err := ScanLines(bytes.NewReader(data), func(l Line) error {
			if l.End > int64(len(data)) {
				t.Fatalf("line end %d is out of bounds for data length %d", l.End, len(data))
			}
			if l.Start > l.End {
				t.Fatalf("line start %d is after line end %d", l.Start, l.End)
			}
			if bytes.Contains(data[l.Start:l.End], []byte{'\n'}) {
				t.Errorf("line %d contains a newline", l.Number)
			}
			total += l.End - l.Start
			return nil
		})
		if err != nil {
			t.Fatal(err)
		}
		if want := int64(len(data) - bytes.Count(data, []byte{'\n'})); total != want {
			t.Errorf("lines cover %d bytes, want %d", total, want)
		}
	})
}
