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

func TestNumRawDataModules(t *testing.T) {
	tests := []struct {
		version Version
		want    int
	}{
		{1, 208},
		{2, 359},
		{3, 567},
		{6, 1383},
		{7, 1568},
		{40, 29648},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, rawModules(tc.version), "version %d", tc.version)
	}
}

func TestNumDataCodewords(t *testing.T) {
	tests := []struct {
		version Version
		ecl     ECL
		want    int
	}{
		{1, Low, 19},
		{1, Medium, 16},
		{1, Quartile, 13},
		{1, High, 9},
		{2, Low, 34},
		{6, Medium, 108},
		{40, Low, 2956},
		{40, High, 1276},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, dataCodewords(tc.version, tc.ecl), "version %d ecl %d", tc.version, tc.ecl)
	}
}

func TestGetAlignmentPatternPositions(t *testing.T) {
	tests := []struct {
		version Version
		want    []byte
	}{
		{1, []byte{}},
		{2, []byte{6, 18}},
		{7, []byte{6, 22, 38}},
		{32, []byte{6, 34, 60, 86, 112, 138}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, getAlignmentPatternPositions(tc.version), "version %d", tc.version)
	}
}

func TestAbsMinMax(t *testing.T) {
	assert.Equal(t, 5, abs(-5))
	assert.Equal(t, 5, abs(5))
	assert.Equal(t, 0, abs(0))
	assert.Equal(t, 3, min(3, 7))
	assert.Equal(t, 3, min(7, 3))
	assert.Equal(t, 7, max(3, 7))
	assert.Equal(t, 7, max(7, 3))
}

func TestBToIAndBitHelpers(t *testing.T) {
	assert.Equal(t, 1, bToI(true))
	assert.Equal(t, 0, bToI(false))
	assert.Equal(t, 1, getBit(0b101, 0))
	assert.Equal(t, 0, getBit(0b101, 1))
	assert.True(t, getBitAsBool(0b101, 2))
	assert.False(t, getBitAsBool(0b101, 1))
}
