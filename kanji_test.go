/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrcodegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSJISPointerIndex(t *testing.T) {
	// The ISO/IEC 18004 Annex H worked example: Shift-JIS pair 0x93 0x5F
	// maps to pointer index 0x0D9F (3487 decimal).
	idx, ok := sjisPointerIndex(0x93, 0x5F)
	assert.True(t, ok)
	assert.Equal(t, uint16(3487), idx)

	idx, ok = sjisPointerIndex(0x8A, 0xBF)
	assert.True(t, ok)
	assert.Equal(t, uint16(1854), idx)
}

func TestSJISPointerIndexRejectsOutOfRange(t *testing.T) {
	_, ok := sjisPointerIndex(0x00, 0x5F)
	assert.False(t, ok)

	_, ok = sjisPointerIndex(0x93, 0x00)
	assert.False(t, ok)

	_, ok = sjisPointerIndex(0xa0, 0x5F) // Reserved katakana range.
	assert.False(t, ok)
}

func TestKanjiIndexPopulated(t *testing.T) {
	assert.NotEmpty(t, kanjiIndex)
	idx, ok := kanjiIndex[uint16(0x93)<<8|uint16(0x5F)]
	assert.True(t, ok)
	assert.Equal(t, uint16(3487), idx)
}

func TestMakeKanjiRejectsNonKanji(t *testing.T) {
	// ASCII text encodes to single-byte Shift-JIS, which cannot form a
	// complete two-byte kanji pair.
	assert.Panics(t, func() { MakeKanji("A") })
}

func TestMakeKanjiProducesThirteenBitsPerChar(t *testing.T) {
	// "亜" is the first character of JIS X 0208 level 1, Shift-JIS 0x889F.
	seg := MakeKanji("亜")
	assert.Equal(t, Kanji, seg.Mode)
	assert.Equal(t, 1, seg.NumChars)
	assert.Equal(t, 13, len(seg.Data))
}
