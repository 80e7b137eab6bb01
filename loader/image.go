/*
 * synacor-challenge - binary image loader
 *
 * Copyright 2026, synacor-challenge authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package loader

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// LoadImage reads a little-endian binary program image, one uint16 word at
// a time, matching the Synacor Challenge's on-disk format (spec.md §6).
// Grounded on other_examples/f3a78094_derat-synacor-challenge's newVM,
// which reads the same format with a binary.Read loop.
func LoadImage(path string) ([]uint16, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	var words []uint16
	for {
		var w uint16
		if err := binary.Read(f, binary.LittleEndian, &w); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("loader: %w", err)
		}
		words = append(words, w)
	}
	return words, nil
}

// SaveImage writes words back out in the same little-endian format,
// completing the assemble/disassemble round trip spec.md §8 tests.
func SaveImage(path string, words []uint16) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("loader: %w", err)
	}
	defer f.Close()
	for _, w := range words {
		if err := binary.Write(f, binary.LittleEndian, w); err != nil {
			return fmt.Errorf("loader: %w", err)
		}
	}
	return nil
}
