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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, s string) []Line {
	var lines []Line
	require.NoError(t, ScanLines(strings.NewReader(s), func(l Line) error {
		lines = append(lines, l)
		return nil
	}))
	return lines
}

func TestScanLines(t *testing.T) {
	lines := scanAll(t, "A simple\ntest case\n")

	assert.Equal(t, []Line{{Number: 1, Start: 0, End: 8}, {Number: 2, Start: 9, End: 18}}, lines)
}

func TestScanLinesWithoutClosingNewline(t *testing.T) {
	lines := scanAll(t, "No closing\nnewline")

	assert.Equal(t, []Line{{Number: 1, Start: 0, End: 10}, {Number: 2, Start: 11, End: 18}}, lines)
}

func TestScanLinesSingleLine(t *testing.T) {
	assert.Equal(t, []Line{{Number: 1, Start: 0, End: 17}}, scanAll(t, "Closing delimiter\n"))
	assert.Equal(t, []Line{{Number: 1, Start: 0, End: 20}}, scanAll(t, "No closing delimiter"))
}

func TestScanLinesEmpty(t *testing.T) {
	assert.Empty(t, scanAll(t, ""))
}

func TestScanLinesMultipleConsecutiveNewlines(t *testing.T) {
	lines := scanAll(t, "Multiple\n\n\nNewlines")

	require.Len(t, lines, 4)
	assert.False(t, lines[0].Empty())
	assert.True(t, lines[1].Empty())
	assert.True(t, lines[2].Empty())
	assert.Equal(t, Line{Number: 4, Start: 11, End: 19}, lines[3])
}

func TestScanLinesLongerThanBuffer(t *testing.T) {
	long := strings.Repeat("x", lineScanBufferSizeBytes+10)
	lines := scanAll(t, long+"\n"+long)

	require.Len(t, lines, 2)
	assert.Equal(t, int64(len(long)), lines[0].End)
	assert.Equal(t, int64(2*len(long)+1), lines[1].End)
}

func TestScanLinesStopsOnError(t *testing.T) {
	stop := errors.New("stop")
	count := 0
	err := ScanLines(strings.NewReader("a\nb\nc\n"), func(Line) error {
		count++
		return stop
	})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, count)
}

func TestLineSection(t *testing.T) {
	data := strings.NewReader("{\"a\":1}\n{\"b\":2}\n")
	lines := scanAll(t, "{\"a\":1}\n{\"b\":2}\n")

	buf := make([]byte, 7)
	_, err := lines[1].Section(data).Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "{\"b\":2}", string(buf))
}
