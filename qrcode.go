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
 *
 * Modeled after https://github.com/nayuki/QR-Code-generator.
 * See https://www.thonky.com/qr-code-tutorial/introduction and
 * https://en.wikipedia.org/wiki/QR_code for an explanation of how QR codes
 * are formatted.
 */

package qrcodegen

import (
	"fmt"
	"strings"
)

// QRCode represents a finished QR code symbol: a two-dimensional
// monochrome module matrix, its version, and the error correction level
// and mask pattern actually used to build it.
type QRCode struct {
	version              Version
	size                 int
	errorCorrectionLevel ECL
	mask                 Mask
	modules              [][]bool // modules[y][x]; true = dark.
	isFunction           [][]bool // Construction-time scratch buffer; nil once built.
}

// Penalty scores used when scoring a candidate mask. Lower total penalty
// is preferred, since it correlates with lower scanner error rates.
const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// ECL is the error correction level of a QR code symbol: how much of the
// payload can be reconstructed if part of the symbol is damaged or
// obscured.
type ECL int8

// Error correction levels, in increasing order of redundancy.
const (
	Low      ECL = iota // Recovers approximately 7% of data.
	Medium              // Recovers approximately 15% of data.
	Quartile            // Recovers approximately 25% of data.
	High                // Recovers approximately 30% of data.
)

// eclFormatBits is the 2-bit format-information prefix for each ECL,
// ISO/IEC 18004 Table 23. The encoding order (Low, Medium, Quartile, High)
// does not match the bit patterns' numeric order, so this is a lookup
// table rather than an arithmetic mapping.
var eclFormatBits = [4]int{Low: 1, Medium: 0, Quartile: 3, High: 2}

// EncodeText encodes text as a QR code symbol at the given error
// correction level, using the simple single-segment mode classifier.
func EncodeText(text string, ecl ECL) (*QRCode, error) {
	return EncodeSegments(MakeSegments(text), ecl)
}

// EncodeBinary encodes an arbitrary byte slice as a single Byte-mode
// segment QR code symbol at the given error correction level.
func EncodeBinary(data []byte, ecl ECL) (*QRCode, error) {
	return EncodeSegments([]*QRSegment{MakeBytes(data)}, ecl)
}

// EncodeSegments builds a QR code symbol from one or more segments, with
// automatic version selection across the full [1, 40] range, automatic
// mask selection, and ECL boosting enabled. Options (WithMinVersion,
// WithMaxVersion, WithMask, WithAutoMask, WithBoostECL) override any of
// these defaults.
func EncodeSegments(segs []*QRSegment, ecl ECL, options ...func(*segmentEncoder)) (*QRCode, error) {
	s := segmentEncoder{
		boostECL:   true,
		mask:       -1,
		minVersion: MinVersion,
		maxVersion: MaxVersion,
	}
	for _, o := range options {
		o(&s)
	}

	if s.minVersion < MinVersion || MaxVersion < s.maxVersion || s.maxVersion < s.minVersion {
		return nil, fmt.Errorf("qrcodegen: invalid version range [%d, %d]", s.minVersion, s.maxVersion)
	}
	checkMask(s.mask)

	// Find the smallest version in range that holds the segments.
	version := s.minVersion
	var usedBits int
	for {
		capacityBits := dataCodewords(version, ecl) * 8
		usedBits = getTotalBits(segs, version)
		if usedBits >= 0 && usedBits <= capacityBits {
			break
		}
		if version >= s.maxVersion {
			return nil, &DataTooLongError{UsedBits: usedBits, CapacityBits: capacityBits}
		}
		version++
	}

	// Boost the ECC level if the data still fits a stricter level at this
	// version. Boosting happens strictly after version selection and never
	// changes the chosen version.
	if s.boostECL {
		for newEcl := Medium; newEcl <= High; newEcl++ {
			if usedBits <= dataCodewords(version, newEcl)*8 {
				ecl = newEcl
			}
		}
	}

	// Concatenate segments: mode indicator, character count, payload.
	bb := make(bitBuffer, 0, usedBits)
	for _, seg := range segs {
		bb.appendBits(int(seg.modeBits), 4)
		bb.appendBits(seg.NumChars, seg.Mode.numCharCountBits(version))
		bb = append(bb, seg.Data...)
	}
	if bb.bitLength() != usedBits {
		panic("incorrect data size calculation")
	}

	capacityBits := dataCodewords(version, ecl) * 8
	if bb.bitLength() > capacityBits {
		panic("incorrect data size calculation")
	}

	// Terminator, up to 4 zero bits.
	bb.appendBits(0, int8(min(4, capacityBits-bb.bitLength())))
	// Pad to a byte boundary.
	bb.appendBits(0, int8((8-bb.bitLength()%8)%8))
	if bb.bitLength()%8 != 0 {
		panic("incorrect data size calculation")
	}

	// Pad with alternating bytes until the version's capacity is reached.
	for padByte := 0xEC; bb.bitLength() < capacityBits; padByte ^= 0xEC ^ 0x11 {
		bb.appendBits(padByte, 8)
	}

	dataCodewordBytes := bb.bytes()

	qr := newBlankSymbol(version, ecl)
	qr.drawFunctionPatterns()
	allCodewords := addECCAndInterleave(dataCodewordBytes, version, ecl)
	qr.drawCodewords(allCodewords)
	qr.mask = qr.handleConstructorMasking(s.mask)
	qr.isFunction = nil

	return qr, nil
}

// EncodeSegmentsAdvanced is the fully-parameterized entry point: segments,
// ECC preference, version range, a fixed mask (or -1 for automatic
// selection), and whether to boost the ECC level when the chosen version
// has room to spare.
func EncodeSegmentsAdvanced(segs []*QRSegment, ecl ECL, minVersion, maxVersion Version, mask Mask, boostECL bool) (*QRCode, error) {
	return EncodeSegments(segs, ecl,
		WithMinVersion(minVersion),
		WithMaxVersion(maxVersion),
		WithMask(mask),
		WithBoostECL(boostECL),
	)
}

func newBlankSymbol(version Version, ecl ECL) *QRCode {
	size := version.Size()
	qr := &QRCode{
		version:              version,
		size:                 size,
		errorCorrectionLevel: ecl,
		modules:              make([][]bool, size),
		isFunction:           make([][]bool, size),
	}
	for i := 0; i < size; i++ {
		qr.modules[i] = make([]bool, size)
		qr.isFunction[i] = make([]bool, size)
	}
	return qr
}

// Version returns this symbol's QR version, in [1, 40].
func (q *QRCode) Version() Version { return q.version }

// Size returns the side length of this symbol, in modules.
func (q *QRCode) Size() int { return q.size }

// ECL returns the error correction level actually used to build this
// symbol (which may be stricter than requested, if boosting was enabled).
func (q *QRCode) ECL() ECL { return q.errorCorrectionLevel }

// Mask returns the mask pattern, in [0, 7], actually used to build this
// symbol.
func (q *QRCode) Mask() Mask { return q.mask }

// GetModule reports whether the module at (x, y) is dark. Out-of-bounds
// coordinates are reported as light (false) rather than panicking.
func (q *QRCode) GetModule(x, y int) bool {
	if x < 0 || x >= q.size || y < 0 || y >= q.size {
		return false
	}
	return q.modules[y][x]
}

// String renders the module grid as a glyph grid, mainly useful for test
// failure output and interactive debugging.
func (q *QRCode) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "QRCode version=%d size=%d ecl=%d mask=%d\n", q.version, q.size, q.errorCorrectionLevel, q.mask)
	for y := 0; y < q.size; y++ {
		for x := 0; x < q.size; x++ {
			if q.modules[y][x] {
				sb.WriteString("##")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// setFunctionModule sets the module at (x, y) and marks it as a function
// module (exempt from masking).
func (q *QRCode) setFunctionModule(x, y int, isDark bool) {
	q.modules[y][x] = isDark
	q.isFunction[y][x] = true
}

// drawFunctionPatterns draws every function module: timing patterns, the
// three finder patterns, alignment patterns, and placeholder format/version
// information (format bits are redrawn for real once a mask is chosen).
func (q *QRCode) drawFunctionPatterns() {
	for i := 0; i < q.size; i++ {
		q.setFunctionModule(6, i, i%2 == 0)
		q.setFunctionModule(i, 6, i%2 == 0)
	}

	q.drawFinderPattern(3, 3)
	q.drawFinderPattern(q.size-4, 3)
	q.drawFinderPattern(3, q.size-4)

	alignPatPos := alignmentPatternPositions[q.version]
	numAlign := len(alignPatPos)
	for i := 0; i < numAlign; i++ {
		for j := 0; j < numAlign; j++ {
			// Skip the three positions that collide with a finder pattern.
			if i == 0 && j == 0 || i == 0 && j == numAlign-1 || i == numAlign-1 && j == 0 {
				continue
			}
			q.drawAlignmentPattern(int(alignPatPos[i]), int(alignPatPos[j]))
		}
	}

	q.drawFormatBits(0)
	q.drawVersion()
}

// drawFinderPattern draws a 9x9 finder pattern, including its separator,
// centered at (x, y). Modules that fall outside the grid are skipped.
func (q *QRCode) drawFinderPattern(x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			dist := max(abs(dx), abs(dy))
			xx, yy := x+dx, y+dy
			if 0 <= xx && xx < q.size && 0 <= yy && yy < q.size {
				q.setFunctionModule(xx, yy, dist != 2 && dist != 4)
			}
		}
	}
}

// drawAlignmentPattern draws a 5x5 alignment pattern centered at (x, y).
func (q *QRCode) drawAlignmentPattern(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			q.setFunctionModule(x+dx, y+dy, max(abs(dx), abs(dy)) != 1)
		}
	}
}

// drawFormatBits draws the two copies of the 15-bit format information
// word (ECL and mask, BCH-protected, then XORed with a fixed mask) around
// the finder patterns.
func (q *QRCode) drawFormatBits(mask Mask) {
	data := eclFormatBits[q.errorCorrectionLevel]<<3 | int(mask)
	rem := data
	for i := 0; i < 10; i++ {
		rem = rem<<1 ^ rem>>9*0x537
	}
	bits := data<<10 | rem ^ 0x5412
	if bits>>15 != 0 {
		panic("incorrect format bits calculation")
	}

	// Copy 1, around the top-left finder.
	for i := 0; i <= 5; i++ {
		q.setFunctionModule(8, i, getBitAsBool(bits, i))
	}
	q.setFunctionModule(8, 7, getBitAsBool(bits, 6))
	q.setFunctionModule(8, 8, getBitAsBool(bits, 7))
	q.setFunctionModule(7, 8, getBitAsBool(bits, 8))
	for i := 9; i < 15; i++ {
		q.setFunctionModule(14-i, 8, getBitAsBool(bits, i))
	}

	// Copy 2, along the bottom-right of the other two finders.
	for i := 0; i < 8; i++ {
		q.setFunctionModule(q.size-1-i, 8, getBitAsBool(bits, i))
	}
	for i := 8; i < 15; i++ {
		q.setFunctionModule(8, q.size-15+i, getBitAsBool(bits, i))
	}
	q.setFunctionModule(8, q.size-8, true) // Always dark.
}

// drawVersion draws the two copies of the 18-bit version information word
// (BCH-protected), for versions 7 and up. No-op below version 7.
func (q *QRCode) drawVersion() {
	if q.version < 7 {
		return
	}

	rem := int(q.version)
	for i := 0; i < 12; i++ {
		rem = rem<<1 ^ rem>>11*0x1F25
	}
	bits := int(q.version)<<12 | rem
	if bits>>18 != 0 {
		panic("incorrect version calculation")
	}

	for i := 0; i < 18; i++ {
		bit := getBitAsBool(bits, i)
		a := q.size - 11 + i%3
		b := i / 3
		q.setFunctionModule(a, b, bit)
		q.setFunctionModule(b, a, bit)
	}
}

// drawCodewords lays the final codeword stream (data + error correction,
// already interleaved) along the zig-zag data path, skipping function
// modules. Must run after drawFunctionPatterns.
func (q *QRCode) drawCodewords(data []byte) {
	if len(data) != rawModules(q.version)/8 {
		panic("incorrect data length")
	}

	i := 0 // Bit index into data.
	for right := q.size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		for vert := 0; vert < q.size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				upward := (right+1)&2 == 0

				var y int
				if upward {
					y = q.size - 1 - vert
				} else {
					y = vert
				}

				if !q.isFunction[y][x] && i < len(data)*8 {
					q.modules[y][x] = getBitAsBool(int(data[i>>3]), 7-(i&7))
					i++
				}
				// Any of the 0-7 remainder bits stay light/false, as assigned
				// during construction.
			}
		}
	}

	if i != len(data)*8 {
		panic("incorrect length")
	}
}

// applyMask XORs every non-function module with the given mask pattern.
// Applying the same mask twice is the identity.
func (q *QRCode) applyMask(mask Mask) {
	for y := 0; y < q.size; y++ {
		for x := 0; x < q.size; x++ {
			if q.isFunction[y][x] {
				continue
			}

			var invert bool
			switch mask {
			case 0:
				invert = (x+y)%2 == 0
			case 1:
				invert = y%2 == 0
			case 2:
				invert = x%3 == 0
			case 3:
				invert = (x+y)%3 == 0
			case 4:
				invert = (x/3+y/2)%2 == 0
			case 5:
				invert = x*y%2+x*y%3 == 0
			case 6:
				invert = (x*y%2+x*y%3)%2 == 0
			case 7:
				invert = ((x+y)%2+x*y%3)%2 == 0
			default:
				panic("illegal mask value")
			}

			if invert {
				q.modules[y][x] = !q.modules[y][x]
			}
		}
	}
}

// handleConstructorMasking applies mask (or, if mask is -1, the mask with
// the lowest penalty score of the eight candidates), draws its format
// bits, and returns the mask that was ultimately chosen.
func (q *QRCode) handleConstructorMasking(mask Mask) Mask {
	if mask == -1 {
		minPenalty := 1 << 30
		for i := Mask(0); i < 8; i++ {
			q.applyMask(i)
			q.drawFormatBits(i)
			penalty := q.getPenaltyScore()
			if penalty < minPenalty {
				mask = i
				minPenalty = penalty
			}
			q.applyMask(i) // Undo: XOR is its own inverse.
		}
	}

	checkMask(mask)
	q.applyMask(mask)
	q.drawFormatBits(mask)
	return mask
}

// getPenaltyScore computes the total penalty score (N1+N2+N3+N4) of the
// symbol's current module grid. Lower is better; used to pick the mask
// with the best expected scan reliability.
func (q *QRCode) getPenaltyScore() int {
	result := 0

	// N1 runs, and N3 finder-like patterns, by row.
	for y := 0; y < q.size; y++ {
		runColor := false
		runX := 0
		var runHistory [7]int
		for x := 0; x < q.size; x++ {
			if q.modules[y][x] == runColor {
				runX++
				if runX == 5 {
					result += penaltyN1
				} else if runX > 5 {
					result++
				}
			} else {
				q.finderPenaltyAddHistory(runX, &runHistory)
				if !runColor {
					result += q.finderPenaltyCountPatterns(&runHistory) * penaltyN3
				}
				runColor = q.modules[y][x]
				runX = 1
			}
		}
		result += q.finderPenaltyTerminateAndCount(runColor, runX, &runHistory) * penaltyN3
	}

	// N1 runs, and N3 finder-like patterns, by column.
	for x := 0; x < q.size; x++ {
		runColor := false
		runY := 0
		var runHistory [7]int
		for y := 0; y < q.size; y++ {
			if q.modules[y][x] == runColor {
				runY++
				if runY == 5 {
					result += penaltyN1
				} else if runY > 5 {
					result++
				}
			} else {
				q.finderPenaltyAddHistory(runY, &runHistory)
				if !runColor {
					result += q.finderPenaltyCountPatterns(&runHistory) * penaltyN3
				}
				runColor = q.modules[y][x]
				runY = 1
			}
		}
		result += q.finderPenaltyTerminateAndCount(runColor, runY, &runHistory) * penaltyN3
	}

	// N2: 2x2 blocks of one color.
	for y := 0; y < q.size-1; y++ {
		for x := 0; x < q.size-1; x++ {
			color := q.modules[y][x]
			if color == q.modules[y][x+1] && color == q.modules[y+1][x] && color == q.modules[y+1][x+1] {
				result += penaltyN2
			}
		}
	}

	// N4: balance of dark vs. light modules.
	dark := 0
	for _, row := range q.modules {
		for _, c := range row {
			if c {
				dark++
			}
		}
	}
	total := q.size * q.size
	k := (abs(dark*20-total*10)+total-1)/total - 1
	result += k * penaltyN4

	return result
}

// finderPenaltyAddHistory pushes currentRunLength to the front of the
// 7-entry run history, dropping the oldest entry. The first recorded run
// in a row/column has the off-grid white border folded in.
func (q *QRCode) finderPenaltyAddHistory(currentRunLength int, runHistory *[7]int) {
	if runHistory[0] == 0 {
		currentRunLength += q.size
	}

	copy(runHistory[1:], runHistory[:6])
	runHistory[0] = currentRunLength
}

// finderPenaltyCountPatterns counts how many of the two finder-like
// 1:1:3:1:1 patterns (counting both the forward and backward reading of
// the history) are present, given the current run history.
func (q *QRCode) finderPenaltyCountPatterns(runHistory *[7]int) int {
	n := runHistory[1]
	if n > q.size*3 {
		panic("bad run history")
	}
	core := n > 0 && runHistory[2] == n && runHistory[3] == n*3 && runHistory[4] == n && runHistory[5] == n
	return bToI(core && runHistory[0] >= n*4 && runHistory[6] >= n) + bToI(core && runHistory[6] >= n*4 && runHistory[0] >= n)
}

// finderPenaltyTerminateAndCount folds in the final run of a row/column
// (padded with the off-grid white border) and scores it.
func (q *QRCode) finderPenaltyTerminateAndCount(runColor bool, runLength int, runHistory *[7]int) int {
	if runColor { // Terminate a dark run first.
		q.finderPenaltyAddHistory(runLength, runHistory)
		runLength = 0
	}
	runLength += q.size
	q.finderPenaltyAddHistory(runLength, runHistory)
	return q.finderPenaltyCountPatterns(runHistory)
}
