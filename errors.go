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

import "fmt"

// DataTooLongError is returned when the requested segments do not fit in
// any version within the requested [minVersion, maxVersion] range at the
// requested error correction level. UsedBits/CapacityBits report the sizes
// at the version the search gave up on (usually maxVersion), when they
// could be computed; UsedBits is -1 when the segment list itself overflows
// a character-count field and the bit count could not be computed at all.
type DataTooLongError struct {
	UsedBits     int
	CapacityBits int
}

func (e *DataTooLongError) Error() string {
	if e.UsedBits < 0 {
		return "qrcodegen: data too long: segment character count exceeds the field width for every candidate version"
	}
	return fmt.Sprintf("qrcodegen: data too long: used %d bits, capacity %d bits", e.UsedBits, e.CapacityBits)
}
