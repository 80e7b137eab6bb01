/*
 * synacor-challenge - input buffering and debugger escape routing
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

// nextInputByte pops the next byte the in instruction should consume. When
// the input buffer is empty it refills one line at a time: canned lines are
// consumed first and echoed to Out, then interactive lines are read through
// In. A line beginning with Escape is handed to OnEscape (the debugger's
// command processor) instead of entering the buffer, and the buffer is left
// empty so the refill loop tries again (spec §4.3).
func (vm *VM) nextInputByte() (byte, error) {
	for len(vm.inputBuf) == 0 {
		var line string
		if len(vm.Canned) > 0 {
			line = vm.Canned[0]
			vm.Canned = vm.Canned[1:]
			fmt.Fprintln(vm.Out, line)
		} else {
			if vm.In == nil {
				return 0, ErrInputExhausted
			}
			l, err := vm.In()
			if err != nil {
				return 0, err
			}
			line = l
		}

		if len(line) > 0 && line[0] == Escape {
			vm.History = append(vm.History, line)
			if vm.OnEscape != nil {
				vm.OnEscape(vm, line[1:])
			}
			continue
		}

		vm.inputBuf = append(vm.inputBuf, []byte(line)...)
		vm.inputBuf = append(vm.inputBuf, '\n')
	}

	b := vm.inputBuf[0]
	vm.inputBuf = vm.inputBuf[1:]
	if b == '\n' {
		vm.History = append(vm.History, string(vm.curLine))
		vm.curLine = nil
	} else {
		vm.curLine = append(vm.curLine, b)
	}
	return b, nil
}
