/*
 * synacor-challenge - disassembler
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

// Disassemble renders each instruction in words, starting at address 0, as
// one line of text: address, mnemonic, and decoded operands, written
// "r0".."r7" for register operands and the bare decimal value for literals.
// Words that don't decode to a known instruction (unknown opcode, or a
// truncated operand list at the end of the image) are rendered as raw
// "data" words so the image round-trips through Assemble unchanged.
func Disassemble(words []uint16) []string {
	var lines []string
	pc := 0
	for pc < len(words) {
		op := words[pc]
		n, ok := instructionLen(op, pc, len(words))
		if !ok {
			lines = append(lines, fmt.Sprintf("%05d: data %d", pc, op))
			pc++
			continue
		}
		operands := words[pc+1 : pc+1+n]
		lines = append(lines, fmt.Sprintf("%05d: %s", pc, formatInstruction(mnemonics[op], operands)))
		pc += 1 + n
	}
	return lines
}

// DisassembleAt is Disassemble with every printed address shifted by base,
// for disassembling a slice taken from the middle of a larger memory image
// (the debugger's disasm command).
func DisassembleAt(words []uint16, base int) []string {
	lines := Disassemble(words)
	out := make([]string, len(lines))
	for i, l := range lines {
		addrPart, rest, _ := strings.Cut(l, ":")
		n, err := strconv.Atoi(strings.TrimSpace(addrPart))
		if err != nil {
			out[i] = l
			continue
		}
		out[i] = fmt.Sprintf("%05d:%s", base+n, rest)
	}
	return out
}

func instructionLen(op uint16, pc, total int) (int, bool) {
	if int(op) >= len(mnemonics) {
		return 0, false
	}
	n := operandCount[op]
	if pc+n >= total {
		return 0, false
	}
	return n, true
}

func formatInstruction(mnemonic string, operands []uint16) string {
	s := mnemonic
	for _, o := range operands {
		s += " " + formatOperand(o)
	}
	return s
}

func formatOperand(v uint16) string {
	if v >= 32768 && v < 32776 {
		return fmt.Sprintf("r%d", v-32768)
	}
	return fmt.Sprintf("%d", v)
}
