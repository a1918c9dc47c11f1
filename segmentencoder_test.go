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

func TestWithMinAndMaxVersion(t *testing.T) {
	s := segmentEncoder{}
	WithMinVersion(5)(&s)
	WithMaxVersion(12)(&s)
	assert.Equal(t, Version(5), s.minVersion)
	assert.Equal(t, Version(12), s.maxVersion)
}

func TestWithMaskOptions(t *testing.T) {
	s := segmentEncoder{}
	WithMask(3)(&s)
	assert.Equal(t, Mask(3), s.mask)

	WithAutoMask()(&s)
	assert.Equal(t, Mask(-1), s.mask)
}

func TestWithBoostECL(t *testing.T) {
	s := segmentEncoder{}
	WithBoostECL(true)(&s)
	assert.True(t, s.boostECL)
	WithBoostECL(false)(&s)
	assert.False(t, s.boostECL)
}
