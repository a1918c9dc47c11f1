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

// addECCAndInterleave splits data into the blocks prescribed by
// (version, ecl), appends each block's Reed-Solomon error-correction
// codewords, and interleaves the blocks column-major into the final
// codeword stream laid out on the matrix. The result length always equals
// rawModules(version)/8.
func addECCAndInterleave(data []byte, version Version, ecl ECL) []byte {
	if len(data) != dataCodewords(version, ecl) {
		panic("data is not correct length")
	}

	numBlocks := numErrorCorrectionBlocks[ecl][version]
	blockECCLen := eccCodeWordsPerBlock[ecl][version]
	rawCodewords := rawModules(version) / 8
	shortBlockLen := rawCodewords / numBlocks
	numShortBlocks := numBlocks - rawCodewords%numBlocks

	// Split data into blocks and append the EC codewords for each block.
	blocks := make([][]byte, numBlocks)
	divisor := reedSolomonDivisors[blockECCLen]
	for i, k := 0, 0; i < numBlocks; i++ {
		dataLen := shortBlockLen - blockECCLen
		if i >= numShortBlocks {
			dataLen++
		}
		dat := data[k : k+dataLen]
		k += dataLen

		block := make([]byte, shortBlockLen+1)
		copy(block, dat)
		ecc := computeRemainder(dat, divisor)
		copy(block[len(block)-len(ecc):], ecc)
		blocks[i] = block
	}

	// Interleave (not concatenate) the bytes of every block into a single
	// sequence, column by column.
	result := make([]byte, rawCodewords)
	k := 0
	for i := 0; i < len(blocks[0]); i++ {
		for j := 0; j < len(blocks); j++ {
			// Short blocks have no data at column index shortBlockLen-blockECCLen;
			// skip it instead of reading their (nonexistent) padding byte.
			if i != shortBlockLen-blockECCLen || j >= numShortBlocks {
				result[k] = blocks[j][i]
				k++
			}
		}
	}

	return result
}
