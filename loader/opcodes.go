/*
 * synacor-challenge - opcode name and arity tables
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

// Package loader reads Synacor Challenge binary program images and
// provides a round-trip text assembler/disassembler for them, grounded on
// the teacher's emu/opcodemap (flat opcode-name table), emu/assemble
// (mnemonic table and operand-count-driven length), and emu/disassemble
// (mnemonic plus decoded operand rendering) packages, collapsed from
// System/370's half-dozen instruction formats down to this VM's uniform
// opcode-plus-N-operands shape.
package loader

var mnemonics = [22]string{
	"halt", "set", "push", "pop", "eq", "gt", "jmp", "jt", "jf",
	"add", "mul", "mod", "and", "or", "not", "rmem", "wmem",
	"call", "ret", "out", "in", "noop",
}

var operandCount = [22]int{
	0, 2, 1, 1, 3, 3, 1, 2, 2,
	3, 3, 3, 3, 3, 2, 2, 2,
	1, 0, 1, 1, 0,
}

var mnemonicToOp = func() map[string]uint16 {
	m := make(map[string]uint16, len(mnemonics))
	for i, name := range mnemonics {
		m[name] = uint16(i)
	}
	return m
}()
