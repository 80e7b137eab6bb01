/*
 * synacor-challenge - dispatch table and fetch/execute loop
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

import (
	"fmt"
	"strings"

	"github.com/jhogstrom/synacor-challenge/internal/vmlog"
)

const (
	opHalt = iota
	opSet
	opPush
	opPop
	opEq
	opGt
	opJmp
	opJt
	opJf
	opAdd
	opMul
	opMod
	opAnd
	opOr
	opNot
	opRmem
	opWmem
	opCall
	opRet
	opOut
	opIn
	opNoop
	opCount
)

var opNames = [opCount]string{
	"halt", "set", "push", "pop", "eq", "gt", "jmp", "jt", "jf",
	"add", "mul", "mod", "and", "or", "not", "rmem", "wmem",
	"call", "ret", "out", "in", "noop",
}

func opName(op Word) string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("unknown(%d)", op)
}

// dispatch is the fixed-size table of opcode handlers, indexed by opcode,
// in the shape of the teacher's cpuState.table array of bound instruction
// handlers (emu/cpu/cpudefs.go, emu/cpu/cpu.go's createTable).
var dispatch = [opCount]func(*VM) error{
	opHalt: (*VM).opHalt,
	opSet:  (*VM).opSet,
	opPush: (*VM).opPush,
	opPop:  (*VM).opPop,
	opEq:   (*VM).opEq,
	opGt:   (*VM).opGt,
	opJmp:  (*VM).opJmp,
	opJt:   (*VM).opJt,
	opJf:   (*VM).opJf,
	opAdd:  (*VM).opAdd,
	opMul:  (*VM).opMul,
	opMod:  (*VM).opMod,
	opAnd:  (*VM).opAnd,
	opOr:   (*VM).opOr,
	opNot:  (*VM).opNot,
	opRmem: (*VM).opRmem,
	opWmem: (*VM).opWmem,
	opCall: (*VM).opCall,
	opRet:  (*VM).opRet,
	opOut:  (*VM).opOut,
	opIn:   (*VM).opIn,
	opNoop: (*VM).opNoop,
}

func (vm *VM) fetchRaw() Word {
	if int(vm.PC) >= MemSize {
		vm.Halted = true
		return 0
	}
	w := vm.Memory[vm.PC]
	vm.PC++
	return w
}

// fetchOperandTraced fetches and decodes the next operand, recording the
// raw, pre-decode word under name for the per-instruction trace line,
// mirroring the original's getnext()-then-debugparams(name=raw) sequence.
func (vm *VM) fetchOperandTraced(name string) (Word, error) {
	raw := vm.fetchRaw()
	vm.traceArg(name, raw)
	return vm.decode(raw)
}

func (vm *VM) opHalt() error {
	vm.Halted = true
	return nil
}

func (vm *VM) opSet() error {
	a := vm.fetchRaw()
	vm.traceArg("a", a)
	b, err := vm.fetchOperandTraced("b")
	if err != nil {
		return err
	}
	return vm.write(a, b)
}

func (vm *VM) opPush() error {
	a, err := vm.fetchOperandTraced("a")
	if err != nil {
		return err
	}
	vm.Stack = append(vm.Stack, a)
	return nil
}

func (vm *VM) opPop() error {
	a := vm.fetchRaw()
	vm.traceArg("a", a)
	if len(vm.Stack) == 0 {
		return ErrStackUnderflow
	}
	v := vm.Stack[len(vm.Stack)-1]
	vm.Stack = vm.Stack[:len(vm.Stack)-1]
	return vm.write(a, v)
}

func (vm *VM) opEq() error {
	a := vm.fetchRaw()
	vm.traceArg("a", a)
	b, err := vm.fetchOperandTraced("b")
	if err != nil {
		return err
	}
	c, err := vm.fetchOperandTraced("c")
	if err != nil {
		return err
	}
	var r Word
	if b == c {
		r = 1
	}
	return vm.write(a, r)
}

func (vm *VM) opGt() error {
	a := vm.fetchRaw()
	vm.traceArg("a", a)
	b, err := vm.fetchOperandTraced("b")
	if err != nil {
		return err
	}
	c, err := vm.fetchOperandTraced("c")
	if err != nil {
		return err
	}
	var r Word
	if b > c {
		r = 1
	}
	return vm.write(a, r)
}

func (vm *VM) opJmp() error {
	a, err := vm.fetchOperandTraced("a")
	if err != nil {
		return err
	}
	vm.PC = a
	return nil
}

func (vm *VM) opJt() error {
	a, err := vm.fetchOperandTraced("a")
	if err != nil {
		return err
	}
	b, err := vm.fetchOperandTraced("b")
	if err != nil {
		return err
	}
	if a != 0 {
		vm.PC = b
	}
	return nil
}

func (vm *VM) opJf() error {
	a, err := vm.fetchOperandTraced("a")
	if err != nil {
		return err
	}
	b, err := vm.fetchOperandTraced("b")
	if err != nil {
		return err
	}
	if a == 0 {
		vm.PC = b
	}
	return nil
}

func (vm *VM) opAdd() error {
	a := vm.fetchRaw()
	vm.traceArg("a", a)
	b, err := vm.fetchOperandTraced("b")
	if err != nil {
		return err
	}
	c, err := vm.fetchOperandTraced("c")
	if err != nil {
		return err
	}
	return vm.write(a, Word((uint32(b)+uint32(c))%32768))
}

func (vm *VM) opMul() error {
	a := vm.fetchRaw()
	vm.traceArg("a", a)
	b, err := vm.fetchOperandTraced("b")
	if err != nil {
		return err
	}
	c, err := vm.fetchOperandTraced("c")
	if err != nil {
		return err
	}
	return vm.write(a, Word((uint32(b)*uint32(c))%32768))
}

func (vm *VM) opMod() error {
	a := vm.fetchRaw()
	vm.traceArg("a", a)
	b, err := vm.fetchOperandTraced("b")
	if err != nil {
		return err
	}
	c, err := vm.fetchOperandTraced("c")
	if err != nil {
		return err
	}
	if c == 0 {
		return ErrDivByZero
	}
	return vm.write(a, b%c)
}

func (vm *VM) opAnd() error {
	a := vm.fetchRaw()
	vm.traceArg("a", a)
	b, err := vm.fetchOperandTraced("b")
	if err != nil {
		return err
	}
	c, err := vm.fetchOperandTraced("c")
	if err != nil {
		return err
	}
	return vm.write(a, b&c)
}

func (vm *VM) opOr() error {
	a := vm.fetchRaw()
	vm.traceArg("a", a)
	b, err := vm.fetchOperandTraced("b")
	if err != nil {
		return err
	}
	c, err := vm.fetchOperandTraced("c")
	if err != nil {
		return err
	}
	return vm.write(a, b|c)
}

func (vm *VM) opNot() error {
	a := vm.fetchRaw()
	vm.traceArg("a", a)
	b, err := vm.fetchOperandTraced("b")
	if err != nil {
		return err
	}
	return vm.write(a, (^b)&wordMask)
}

// opRmem implements the canonical, single-decode form: read(decode(b)) from
// memory, write it directly into <a>. No second decode pass over the value
// read from memory (see DESIGN.md, Open Question decisions).
func (vm *VM) opRmem() error {
	a := vm.fetchRaw()
	vm.traceArg("a", a)
	b, err := vm.fetchOperandTraced("b")
	if err != nil {
		return err
	}
	return vm.write(a, vm.Memory[b])
}

// opWmem is the sole instruction that writes memory directly rather than
// through write: both operands are decoded source values (spec §4.1).
func (vm *VM) opWmem() error {
	a, err := vm.fetchOperandTraced("a")
	if err != nil {
		return err
	}
	b, err := vm.fetchOperandTraced("b")
	if err != nil {
		return err
	}
	vm.Memory[a] = b
	return nil
}

func (vm *VM) opCall() error {
	a, err := vm.fetchOperandTraced("a")
	if err != nil {
		return err
	}
	vm.Stack = append(vm.Stack, vm.PC)
	vm.PC = a
	return nil
}

func (vm *VM) opRet() error {
	if len(vm.Stack) == 0 {
		vm.Halted = true
		return nil
	}
	vm.PC = vm.Stack[len(vm.Stack)-1]
	vm.Stack = vm.Stack[:len(vm.Stack)-1]
	return nil
}

func (vm *VM) opOut() error {
	a, err := vm.fetchOperandTraced("a")
	if err != nil {
		return err
	}
	_, err = vm.Out.Write([]byte{byte(a & 0xff)})
	return err
}

func (vm *VM) opIn() error {
	a := vm.fetchRaw()
	vm.traceArg("a", a)
	b, err := vm.nextInputByte()
	if err != nil {
		return err
	}
	return vm.write(a, Word(b))
}

func (vm *VM) opNoop() error {
	return nil
}

// Step fetches, decodes, and executes exactly one instruction, updating
// execution statistics before dispatch (spec §4.4). When DebugMode is on,
// it logs a trace line of the form "[00042] add (a=32768->0, b=1, c=2)":
// operands as fetched, with a "->value" arrow on any operand that was a
// register reference (spec.md §9's tightened, SPEC_FULL §11 supplement).
func (vm *VM) Step() error {
	instrPC := vm.PC
	op := vm.fetchRaw()
	if int(op) >= opCount {
		vm.Halted = true
		return fmt.Errorf("%w: %d at %d", ErrUnknownOpcode, op, instrPC)
	}
	name := opNames[op]
	vm.Stats[name]++
	if vm.DebugMode {
		vm.traceArgs = vm.traceArgs[:0]
	}
	err := dispatch[op](vm)
	if vm.DebugMode {
		vmlog.Tracef("[%05d] %s (%s)", instrPC, name, strings.Join(vm.traceArgs, ", "))
	}
	if err != nil {
		vm.Halted = true
		return err
	}
	return nil
}

// Run executes instructions until halted, until PC leaves the addressable
// range, or until Step returns an error. Before each instruction it checks
// for a breakpoint, an active step countdown reaching zero, or persistent
// step mode, and if any applies, blocks on EnterDebugger (spec §4.4).
func (vm *VM) Run() error {
	for !vm.Halted && int(vm.PC) < MemSize {
		_, atBreakpoint := vm.Breakpoints[vm.PC]
		if atBreakpoint || vm.paused || (vm.steps != nil && *vm.steps == 0) {
			if vm.EnterDebugger != nil {
				vm.EnterDebugger(vm)
			}
			if vm.Halted {
				break
			}
		}
		if err := vm.Step(); err != nil {
			return err
		}
		if vm.steps != nil {
			*vm.steps--
			if *vm.steps < 0 {
				vm.steps = nil
			}
		}
	}
	return nil
}
