/*
 * synacor-challenge - assembler
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
	"fmt"
	"strconv"
	"strings"
)

// Assemble parses disassembly text in the form Disassemble produces
// ("addr: mnemonic operands...", or "addr: data value" for words that
// didn't decode as an instruction) back into a memory image. Blank lines
// are skipped.
func Assemble(lines []string) ([]uint16, error) {
	var words []uint16
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		_, rest, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("assemble: line %d: missing address prefix: %q", i+1, line)
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			return nil, fmt.Errorf("assemble: line %d: empty instruction", i+1)
		}

		if fields[0] == "data" {
			if len(fields) != 2 {
				return nil, fmt.Errorf("assemble: line %d: data wants 1 value, got %d", i+1, len(fields)-1)
			}
			v, err := strconv.ParseUint(fields[1], 10, 16)
			if err != nil {
				return nil, fmt.Errorf("assemble: line %d: %w", i+1, err)
			}
			words = append(words, uint16(v))
			continue
		}

		op, ok := mnemonicToOp[fields[0]]
		if !ok {
			return nil, fmt.Errorf("assemble: line %d: unknown mnemonic %q", i+1, fields[0])
		}
		want := operandCount[op]
		if len(fields)-1 != want {
			return nil, fmt.Errorf("assemble: line %d: %s wants %d operands, got %d", i+1, fields[0], want, len(fields)-1)
		}
		words = append(words, op)
		for _, f := range fields[1:] {
			v, err := parseOperand(f)
			if err != nil {
				return nil, fmt.Errorf("assemble: line %d: %w", i+1, err)
			}
			words = append(words, v)
		}
	}
	return words, nil
}

func parseOperand(f string) (uint16, error) {
	if strings.HasPrefix(f, "r") && len(f) > 1 {
		n, err := strconv.Atoi(f[1:])
		if err != nil || n < 0 || n > 7 {
			return 0, fmt.Errorf("invalid register operand %q", f)
		}
		return uint16(32768 + n), nil
	}
	v, err := strconv.ParseUint(f, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid operand %q", f)
	}
	return uint16(v), nil
}
