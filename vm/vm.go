/*
 * synacor-challenge - VM core state and construction
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

// Package vm implements the Synacor Challenge virtual machine: a 15-bit
// word memory, an 8-register file aliased onto the top of the address
// space, a stack, and a dispatch-table instruction executor.
package vm

import (
	"errors"
	"io"
)

// Word is the machine's native 16-bit unit. Only [0, 32775] is ever
// meaningful on an operand; memory cells may legally hold any 16-bit value.
type Word = uint16

const (
	// MemSize is the number of addressable words.
	MemSize = 32768
	// NumRegs is the number of registers aliased onto the top of the
	// address space.
	NumRegs = 8

	regBase    Word = 32768 // first word value that denotes a register
	regLimit   Word = 32776 // one past the last register-denoting value
	literalMax Word = 32767 // largest value usable as a literal
	wordMask   Word = 0x7fff
)

// Escape is the leading byte of an input line that routes the line to the
// debugger's command processor instead of the VM's input buffer.
const Escape = '.'

var (
	ErrInvalidOperand     = errors.New("invalid operand")
	ErrInvalidWriteTarget = errors.New("invalid write target")
	ErrDivByZero          = errors.New("division by zero")
	ErrStackUnderflow     = errors.New("stack underflow")
	ErrUnknownOpcode      = errors.New("unknown opcode")
	ErrSnapshot           = errors.New("malformed snapshot")
	ErrInputExhausted     = errors.New("no interactive input source")
)

// VM holds all mutable machine state: memory, registers, stack, program
// counter, halted flag, execution statistics, and breakpoints (spec §3),
// plus the I/O plumbing and debugger interposition hooks needed to run it.
type VM struct {
	Memory    [MemSize]Word
	Registers [NumRegs]Word
	Stack     []Word
	PC        uint16
	Halted    bool

	Stats       map[string]int
	Breakpoints map[uint16]struct{}

	// Out receives bytes emitted by the out instruction.
	Out io.Writer
	// In blocks for one line of interactive input. Nil means interactive
	// input is unavailable: canned input can still satisfy in, and once it
	// runs out in fails with ErrInputExhausted.
	In func() (string, error)

	// Canned is the queue of pre-recorded input lines consumed before
	// interactive input (spec §4.3).
	Canned []string
	// History records completed input lines, including escaped debugger
	// command lines, in consumption order (spec §4.3).
	History []string

	// DebugMode enables per-instruction trace logging.
	DebugMode bool

	// OnEscape is invoked with the remainder of an input line that began
	// with Escape. The debugger wires this to its command processor.
	OnEscape func(vm *VM, line string)
	// EnterDebugger is invoked, blocking, whenever the fetch loop pauses
	// at a breakpoint or a step boundary (spec §4.4). The debugger wires
	// this to its REPL prompt.
	EnterDebugger func(vm *VM)

	paused   bool // pause-after-each-instruction mode (step on/off)
	steps    *int // remaining instructions before the next pause, if set
	inputBuf []byte
	curLine  []byte

	traceArgs []string // operand=value[->deref] pairs for the instruction in flight
}

// New returns a zero-initialized VM with step mode on, matching the
// debugger's documented default (spec §4.5, "step ... default ON").
func New() *VM {
	return &VM{
		Stats:       make(map[string]int, opCount),
		Breakpoints: make(map[uint16]struct{}),
		Out:         io.Discard,
		paused:      true,
	}
}

// LoadProgram copies words into memory starting at address 0. Any cells
// beyond len(words) are left at their current value (zero, for a freshly
// constructed VM), matching the image loader's contract (spec §6).
func (vm *VM) LoadProgram(words []Word) {
	n := copy(vm.Memory[:], words)
	_ = n
}

// Register returns the current value of register n.
func (vm *VM) Register(n int) Word {
	return vm.Registers[n]
}

// SetRegister sets register n to v, masked to 15 bits. Instruction writes
// go through write instead, which stores its value unmasked.
func (vm *VM) SetRegister(n int, v Word) {
	vm.Registers[n] = v & wordMask
}

// SetBreakpoint installs a breakpoint at addr.
func (vm *VM) SetBreakpoint(addr uint16) {
	vm.Breakpoints[addr] = struct{}{}
}

// ClearBreakpoint removes a breakpoint at addr, if any.
func (vm *VM) ClearBreakpoint(addr uint16) {
	delete(vm.Breakpoints, addr)
}

// SetStepping toggles pause-after-each-instruction mode.
func (vm *VM) SetStepping(on bool) {
	vm.paused = on
}

// IsStepping reports whether pause-after-each-instruction mode is on.
func (vm *VM) IsStepping() bool {
	return vm.paused
}

// RunSteps arranges for the next n instructions to execute before the
// fetch loop pauses again, and leaves step mode off in the meantime.
func (vm *VM) RunSteps(n int) {
	vm.paused = false
	vm.steps = &n
}

// Continue clears any pending step countdown and step mode, running until
// the next breakpoint or until in blocks for input.
func (vm *VM) Continue() {
	vm.paused = false
	vm.steps = nil
}
