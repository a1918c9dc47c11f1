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

package exporters

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// WritePNG writes a QR code to w as a 1-bit-per-module PNG, each module
// drawn as a scale x scale block of pixels with border modules of white
// quiet zone padding on every side. scale must be positive and border
// non-negative.
func WritePNG(w io.Writer, q symbol, scale, border int) error {
	if scale < 1 {
		return fmt.Errorf("exporters: scale must be positive, got %d", scale)
	}
	if border < 0 {
		return fmt.Errorf("exporters: border must be non-negative, got %d", border)
	}

	size := q.Size()
	dim := (size + border*2) * scale

	img := image.NewPaletted(image.Rect(0, 0, dim, dim), color.Palette{color.White, color.Black})
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !q.GetModule(x, y) {
				continue
			}
			startX := (x + border) * scale
			startY := (y + border) * scale
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetColorIndex(startX+dx, startY+dy, 1)
				}
			}
		}
	}

	return png.Encode(w, img)
}
