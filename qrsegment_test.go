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

func TestMakeNumeric(t *testing.T) {
	seg := MakeNumeric("314")
	assert.Equal(t, Numeric, seg.Mode)
	assert.Equal(t, 3, seg.NumChars)
	assert.Equal(t, []byte{0, 1, 0, 0, 1, 1, 1, 0, 1, 0}, []byte(seg.Data))
}

func TestMakeNumericRejectsNonDigits(t *testing.T) {
	assert.Panics(t, func() { MakeNumeric("12a") })
}

func TestMakeAlphanumeric(t *testing.T) {
	seg := MakeAlphanumeric("AC-42")
	assert.Equal(t, Alphanumeric, seg.Mode)
	assert.Equal(t, 5, seg.NumChars)
}

func TestMakeAlphanumericRejectsLowercase(t *testing.T) {
	assert.Panics(t, func() { MakeAlphanumeric("abc") })
}

func TestMakeBytes(t *testing.T) {
	seg := MakeBytes([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	assert.Equal(t, Byte, seg.Mode)
	assert.Equal(t, 4, seg.NumChars)
	assert.Equal(t, 32, len(seg.Data))
}

func TestMakeECI(t *testing.T) {
	seg, err := MakeECI(3)
	assert.NoError(t, err)
	assert.Equal(t, ECI, seg.Mode)
	assert.Equal(t, 0, seg.NumChars)

	seg, err = MakeECI(1000)
	assert.NoError(t, err)
	assert.NotNil(t, seg)

	_, err = MakeECI(1_000_000)
	assert.Error(t, err)
}

func TestGetTotalBits(t *testing.T) {
	segs := []*QRSegment{MakeNumeric("314")}
	// 4 (mode) + 10 (char count bits, version 1) + 10 (data bits) = 24
	assert.Equal(t, 24, getTotalBits(segs, 1))
}

func TestGetTotalBitsOverflowsCharCountField(t *testing.T) {
	seg := MakeNumeric("1")
	seg.NumChars = 1 << 20 // Forge a NumChars wider than any char-count field.
	assert.Equal(t, -1, getTotalBits([]*QRSegment{seg}, 1))
}

func TestMakeSegmentsChoosesNumeric(t *testing.T) {
	segs := MakeSegments("12345")
	assert.Len(t, segs, 1)
	assert.Equal(t, Numeric, segs[0].Mode)
}

func TestMakeSegmentsChoosesAlphanumeric(t *testing.T) {
	segs := MakeSegments("HELLO WORLD")
	assert.Len(t, segs, 1)
	assert.Equal(t, Alphanumeric, segs[0].Mode)
}

func TestMakeSegmentsChoosesByte(t *testing.T) {
	segs := MakeSegments("Hello, world!")
	assert.Len(t, segs, 1)
	assert.Equal(t, Byte, segs[0].Mode)
}

func TestMakeSegmentsEmpty(t *testing.T) {
	assert.Empty(t, MakeSegments(""))
}
