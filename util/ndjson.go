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
	"errors"
	"io"
)

// Size of the buffer used for scanning lines.
const lineScanBufferSizeBytes = 4096

// Line describes a line within an NDJSON file by its starting and end position
// in bytes, counted from the file's beginning. The end is exclusive and never
// includes the newline. Number starts at one.
type Line struct {
	Number     int
	Start, End int64
}

// Empty reports whether the line has no content.
func (l Line) Empty() bool {
	return l.Start == l.End
}

// Section returns a reader over the content of the line in r.
func (l Line) Section(r io.ReaderAt) *io.SectionReader {
	return io.NewSectionReader(r, l.Start, l.End-l.Start)
}

// ScanLines reads r in a streamed fashion and calls fn for every line
// delimited by a newline. A last line without closing newline is reported as
// well. Scanning stops at the first error returned by fn.
func ScanLines(r io.Reader, fn func(Line) error) error {
	var lineStart, read int64
	number := 0
	buf := make([]byte, lineScanBufferSizeBytes)
	for {
		n, err := r.Read(buf)
		for idx, b := range buf[:n] {
			if b == '\n' {
				number++
				end := read + int64(idx)
				if err := fn(Line{Number: number, Start: lineStart, End: end}); err != nil {
					return err
				}
				lineStart = end + 1
			}
		}
		read += int64(n)

		if errors.Is(err, io.EOF) {
			if read > lineStart {
				return fn(Line{Number: number + 1, Start: lineStart, End: read})
			}
			return nil
		}
		if err != nil {
			return err
		}
	}
}
