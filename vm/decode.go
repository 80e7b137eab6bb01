/*
 * synacor-challenge - operand decode and write-target validation
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

package vm

import "fmt"

// decode interprets v as a source operand: literals (0..32767) decode to
// themselves, register references (32768..32775) decode to the register's
// current value, and anything else is invalid (spec §4.1).
func (vm *VM) decode(v Word) (Word, error) {
	if v <= literalMax {
		return v, nil
	}
	if v < regLimit {
		return vm.Registers[v-regBase], nil
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidOperand, v)
}

// write interprets dest as a write target: it must be a register reference.
// wmem is the sole instruction that bypasses write and addresses memory
// directly via its decoded address (spec §4.1). The value is stored
// unmasked: arithmetic results and not already mask themselves to 15 bits
// before calling write, while set, pop, and rmem must pass through
// whatever value was decoded even if it exceeds 0x7FFF (spec §4.2's rmem
// note; see DESIGN.md's Open Question decisions).
func (vm *VM) write(dest, value Word) error {
	if !isRegisterRef(dest) {
		return fmt.Errorf("%w: %d", ErrInvalidWriteTarget, dest)
	}
	vm.Registers[dest-regBase] = value
	return nil
}

func isRegisterRef(v Word) bool {
	return v >= regBase && v < regLimit
}

// traceArg records one instruction operand for the per-instruction trace
// line, mirroring the original's debugparams: the raw operand word is
// shown as-is, with a "->value" arrow appended when the operand is a
// register reference (spec §9's tightened gate on the actual register
// range, 32768..32775, rather than a bare high-bit test). A no-op unless
// DebugMode is on, since it's called from the hot instruction path.
func (vm *VM) traceArg(name string, raw Word) {
	if !vm.DebugMode {
		return
	}
	if isRegisterRef(raw) {
		vm.traceArgs = append(vm.traceArgs, fmt.Sprintf("%s=%d->%d", name, raw, vm.Registers[raw-regBase]))
	} else {
		vm.traceArgs = append(vm.traceArgs, fmt.Sprintf("%s=%d", name, raw))
	}
}
