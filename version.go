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
 */

package qrcodegen

import "fmt"

// Version identifies the size of a QR code symbol, in the range [1, 40].
// A QR code with version v has 4v+17 modules on a side.
type Version int

// The minimum and maximum versions (QR code sizes) for a QR code symbol.
// MinVersion is 21 modules square, and MaxVersion is 177 modules square.
const (
	MinVersion = Version(1)
	MaxVersion = Version(40)
)

// Size returns the side length, in modules, of a QR code symbol of this version.
func (v Version) Size() int {
	return int(v)*4 + 17
}

// checkVersion panics if v is outside [MinVersion, MaxVersion].
func checkVersion(v Version) {
	if v < MinVersion || v > MaxVersion {
		panic(fmt.Sprintf("version %d out of range [%d, %d]", v, MinVersion, MaxVersion))
	}
}

// bucket returns the character-count-bits bucket index for this version:
// 0 for versions 1-9, 1 for versions 10-26, 2 for versions 27-40.
func (v Version) bucket() int {
	switch {
	case v <= 9:
		return 0
	case v <= 26:
		return 1
	default:
		return 2
	}
}

// Mask identifies one of the eight data-masking patterns, or -1 for automatic selection.
type Mask int8

// checkMask panics if m is outside [-1, 7].
func checkMask(m Mask) {
	if m < -1 || m > 7 {
		panic(fmt.Sprintf("mask %d out of range [-1, 7]", m))
	}
}
