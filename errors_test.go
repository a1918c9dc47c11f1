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

func TestDataTooLongErrorMessage(t *testing.T) {
	err := &DataTooLongError{UsedBits: 100, CapacityBits: 80}
	assert.Equal(t, "qrcodegen: data too long: used 100 bits, capacity 80 bits", err.Error())
}

func TestDataTooLongErrorNegativeUsedBits(t *testing.T) {
	err := &DataTooLongError{UsedBits: -1, CapacityBits: 80}
	assert.Contains(t, err.Error(), "exceeds the field width")
}
