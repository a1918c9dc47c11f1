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
	"math"
	"regexp"
	"strconv"
)

// QRSegment is one chunk of a QR code's payload: a mode, the unencoded
// character count, and the already mode-encoded data bits. A symbol's full
// payload is the concatenation of one or more segments, each potentially in
// a different mode.
type QRSegment struct {
	Mode
	NumChars int
	Data     []byte
}

// alphanumericCharset is ISO/IEC 18004 Table 5, in encoding order: the
// value of a character is its index here.
const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// alphanumericValue maps an ASCII byte to its index in alphanumericCharset,
// or -1 if the byte cannot appear in an alphanumeric segment. Built once so
// both MakeAlphanumeric and the segmentation planner can look up a
// character's value in constant time instead of scanning the charset.
var alphanumericValue [128]int8

func init() {
	for i := range alphanumericValue {
		alphanumericValue[i] = -1
	}
	for i := 0; i < len(alphanumericCharset); i++ {
		alphanumericValue[alphanumericCharset[i]] = int8(i)
	}
}

var (
	alphanumericRegexp = regexp.MustCompile(`^[A-Z0-9 $%*+./:-]*$`)
	numericRegexp      = regexp.MustCompile(`^[0-9]*$`)
)

// MakeNumeric packs a string of decimal digits into a Numeric-mode
// segment, 3 digits to 10 bits (with a short final group of 1 or 2 digits
// costing 4 or 7 bits), per ISO/IEC 18004 §7.4.3.
func MakeNumeric(digits string) *QRSegment {
	if !numericRegexp.MatchString(digits) {
		panic("string contains non-numeric characters")
	}

	bb := make(bitBuffer, 0, digitGroupBits(len(digits)))
	for i := 0; i < len(digits); {
		n := min(len(digits)-i, 3)
		group, _ := strconv.Atoi(digits[i : i+n]) // Safe: numericRegexp already confirmed digits-only.
		bb.appendBits(group, int8(n*3+1))
		i += n
	}

	return &QRSegment{Mode: Numeric, NumChars: len(digits), Data: bb}
}

func digitGroupBits(numDigits int) int {
	return numDigits*3 + (numDigits+2)/3
}

// MakeAlphanumeric packs text drawn from alphanumericCharset into an
// Alphanumeric-mode segment, 2 characters to 11 bits (a trailing single
// character costs 6 bits), per ISO/IEC 18004 §7.4.4.
func MakeAlphanumeric(text string) *QRSegment {
	if !alphanumericRegexp.MatchString(text) {
		panic("string contains non-alphanumeric characters")
	}

	bb := make(bitBuffer, 0, len(text)*5+(len(text)+1)/2)
	i := 0
	for ; i+1 < len(text); i += 2 {
		pair := int(alphanumericValue[text[i]])*45 + int(alphanumericValue[text[i+1]])
		bb.appendBits(pair, 11)
	}
	if i < len(text) {
		bb.appendBits(int(alphanumericValue[text[i]]), 6)
	}

	return &QRSegment{Mode: Alphanumeric, NumChars: len(text), Data: bb}
}

// MakeBytes wraps a raw byte slice as a Byte-mode segment: one codeword in,
// one codeword of payload out, per ISO/IEC 18004 §7.4.5.
func MakeBytes(data []byte) *QRSegment {
	bb := make(bitBuffer, 0, len(data)*8)
	bb.appendBytes(data)

	return &QRSegment{Mode: Byte, NumChars: len(data), Data: bb}
}

// MakeECI builds an Extended Channel Interpretation designator segment.
// assignValue is packed into 8, 16, or 24 bits depending on its magnitude,
// per ISO/IEC 18004 §7.4.2; values of 1,000,000 or more have no valid
// encoding and are rejected.
func MakeECI(assignValue int) (*QRSegment, error) {
	bb := make(bitBuffer, 0, 24)
	switch {
	case assignValue < 1<<7:
		bb.appendBits(assignValue, 8)
	case assignValue < 1<<14:
		bb.appendBits(2, 2)
		bb.appendBits(assignValue, 14)
	case assignValue < 1_000_000:
		bb.appendBits(6, 3)
		bb.appendBits(assignValue, 21)
	default:
		return nil, fmt.Errorf("qrcodegen: ECI assignment value %d out of range", assignValue)
	}

	return &QRSegment{Mode: ECI, NumChars: 0, Data: bb}, nil
}

// MakeSegments chooses the single cheapest fixed mode (numeric,
// alphanumeric, or byte, in that preference order) that can represent text
// without mixing modes. Callers wanting per-character-run optimal mode
// switching should use MakeSegmentsOptimally instead.
func MakeSegments(text string) []*QRSegment {
	switch {
	case len(text) == 0:
		return []*QRSegment{}
	case numericRegexp.MatchString(text):
		return []*QRSegment{MakeNumeric(text)}
	case alphanumericRegexp.MatchString(text):
		return []*QRSegment{MakeAlphanumeric(text)}
	default:
		return []*QRSegment{MakeBytes([]byte(text))}
	}
}

// getTotalBits sums the bit cost (mode indicator + character count field +
// payload) of segs at the given version, or -1 if any segment's character
// count overflows its field width, or if the total would overflow an
// int32.
func getTotalBits(segs []*QRSegment, version Version) int {
	result := int64(0)
	for _, seg := range segs {
		ccBits := seg.Mode.numCharCountBits(version)
		if seg.NumChars >= 1<<ccBits {
			return -1
		}

		result += int64(4 + int(ccBits) + len(seg.Data))
		if result > math.MaxInt32 {
			return -1
		}
	}

	return int(result)
}
