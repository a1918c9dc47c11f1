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
	"fmt"

	"golang.org/x/text/encoding/japanese"
)

// shiftJISEncoder converts Unicode text to Shift-JIS bytes for kanji-mode
// segments. Shared across calls; the x/text encoders are safe for
// concurrent use once constructed.
var shiftJISEncoder = japanese.ShiftJIS.NewEncoder()

// kanjiIndex maps a Shift-JIS code point pair, packed as (hi<<8 | lo), to
// its 13-bit pointer index into the JIS X 0208 table used by kanji mode.
// Built once at package initialization from every two-byte code in the
// Shift-JIS lead/trail byte ranges (x/text/encoding is not consulted here):
// each code is assigned the index formula from ISO/IEC 18004 Annex H (the
// same formula every kanji-capable QR encoder uses), rather than shipping a
// 64KB literal table.
var kanjiIndex = buildKanjiIndex()

func buildKanjiIndex() map[uint16]uint16 {
	m := make(map[uint16]uint16, 1<<13)
	for hi := 0x81; hi <= 0xfc; hi++ {
		if hi >= 0xa0 && hi <= 0xdf {
			continue // Reserved for half-width katakana, not double-byte kanji.
		}
		for lo := 0x40; lo <= 0xfc; lo++ {
			if lo == 0x7f {
				continue
			}
			idx, ok := sjisPointerIndex(byte(hi), byte(lo))
			if !ok {
				continue
			}
			m[uint16(hi)<<8|uint16(lo)] = idx
		}
	}
	return m
}

// sjisPointerIndex applies the Annex H subtraction/packing rule that maps a
// two-byte Shift-JIS code to its 13-bit pointer index.
func sjisPointerIndex(hi, lo byte) (uint16, bool) {
	h := uint16(hi)
	l := uint16(lo)
	switch {
	case h >= 0x81 && h <= 0x9f:
		h -= 0x81
	case h >= 0xe0 && h <= 0xfc:
		h -= 0xc1
	default:
		return 0, false
	}

	switch {
	case l >= 0x40 && l <= 0x7e:
		l -= 0x40
	case l >= 0x80 && l <= 0xfc:
		l -= 0x41
	default:
		return 0, false
	}

	idx := h*0xc0 + l
	if idx >= 1<<13 {
		return 0, false
	}
	return idx, true
}

// MakeKanji creates a kanji-mode segment from text. Every rune must encode
// to a two-byte Shift-JIS pair that maps to a valid JIS X 0208 pointer
// index; MakeKanji panics on the first character that does not.
func MakeKanji(text string) *QRSegment {
	sjis, err := shiftJISEncoder.String(text)
	if err != nil {
		panic(fmt.Sprintf("non-kanji character in %q: %v", text, err))
	}
	if len(sjis)%2 != 0 {
		panic(fmt.Sprintf("non-kanji character in %q: odd-length Shift-JIS encoding", text))
	}

	numChars := len(sjis) / 2
	bb := make(bitBuffer, 0, numChars*13)
	for i := 0; i < len(sjis); i += 2 {
		idx, ok := kanjiIndex[uint16(sjis[i])<<8|uint16(sjis[i+1])]
		if !ok {
			panic(fmt.Sprintf("non-kanji character in %q at byte offset %d", text, i))
		}
		bb.appendBits(int(idx), 13)
	}

	return &QRSegment{
		Mode:     Kanji,
		NumChars: numChars,
		Data:     bb,
	}
}
