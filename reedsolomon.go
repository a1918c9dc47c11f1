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

// Reed-Solomon error correction over GF(2^8), reduction polynomial 0x11D,
// generator element 0x02. Used by the block interleaver to compute the
// per-block error-correction codewords.

// computeDivisor creates the Reed-Solomon generator polynomial of the
// given degree: the product (x - r^0)(x - r^1)...(x - r^(degree-1)).
//
// Coefficients are stored highest-degree-first, excluding the leading
// term, which is always 1. For example the polynomial
// x^3 + 255x^2 + 8x + 93 is stored as []byte{255, 8, 93}.
func computeDivisor(degree int) []byte {
	if degree < 1 || degree > 255 {
		panic("degree out of range")
	}

	result := make([]byte, degree)
	result[degree-1] = 1 // Start off with the monomial x^0.

	root := byte(1)
	for i := 0; i < degree; i++ {
		// Multiply the current product by (x - r^i).
		for j := 0; j < len(result); j++ {
			result[j] = gfMul(result[j], root)
			if j+1 < len(result) {
				result[j] ^= result[j+1]
			}
		}
		root = gfMul(root, 0x02)
	}

	return result
}

// gfMul returns the product of x and y in GF(2^8) with reduction
// polynomial 0x11D, computed by carry-less ("Russian peasant")
// multiplication.
func gfMul(x, y byte) byte {
	z := 0
	for i := 7; i >= 0; i-- {
		z = z<<1 ^ z>>7*0x11D
		z ^= int(y>>uint(i)&1) * int(x)
	}

	return byte(z)
}

// computeRemainder returns the Reed-Solomon error-correction codewords for
// data under the given divisor polynomial, via streaming synthetic
// division. The result has length len(divisor).
func computeRemainder(data, divisor []byte) []byte {
	result := make([]byte, len(divisor))
	for _, b := range data {
		factor := b ^ result[0]
		copy(result[0:], result[1:])
		result[len(result)-1] = 0
		for i := 0; i < len(result); i++ {
			result[i] ^= gfMul(divisor[i], factor)
		}
	}

	return result
}
