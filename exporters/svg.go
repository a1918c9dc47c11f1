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

// Package exporters renders a finished qrcodegen.QRCode to an external
// format. Neither exporter mutates the symbol; both consume it solely
// through its public Size/GetModule accessors, so they can be swapped out
// or reimplemented freely without touching the encoder.
package exporters

import (
	"fmt"
	"strings"
)

// symbol is the minimal read-only view an exporter needs.
type symbol interface {
	Size() int
	GetModule(x, y int) bool
}

// ToSVGString renders a QR code as an SVG document: a white background
// rectangle and a single dark-module path, with border quiet-zone modules
// of padding on every side. border must be non-negative.
func ToSVGString(q symbol, border int) (string, error) {
	if border < 0 {
		return "", fmt.Errorf("exporters: border must be non-negative, got %d", border)
	}

	size := q.Size()
	dim := size + border*2

	var sb strings.Builder
	fmt.Fprintf(&sb, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %d %d\" stroke=\"none\">\n", dim, dim)
	sb.WriteString("\t<rect width=\"100%\" height=\"100%\" fill=\"#FFFFFF\"/>\n")
	sb.WriteString("\t<path d=\"")
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if q.GetModule(x, y) {
				fmt.Fprintf(&sb, "M%d,%dh1v1h-1z", x+border, y+border)
			}
		}
	}
	sb.WriteString("\" fill=\"#000000\"/>\n")
	sb.WriteString("</svg>\n")

	return sb.String(), nil
}
