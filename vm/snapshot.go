/*
 * synacor-challenge - snapshot save/load
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
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Snapshot is the exact on-disk shape spec.md §4.6 mandates: pc, regs keyed
// by register index as a decimal string, stack bottom-to-top in push order,
// and memory as 32768 little-endian byte pairs. This shape is mandatory for
// compatibility with existing saved games.
type Snapshot struct {
	PC     uint16            `json:"pc"`
	Regs   map[string]uint16 `json:"regs"`
	Stack  []uint16          `json:"stack"`
	Memory [][2]uint8        `json:"memory"`
}

// Snapshot captures the VM's current state.
func (vm *VM) Snapshot() Snapshot {
	regs := make(map[string]uint16, NumRegs)
	for i, v := range vm.Registers {
		regs[strconv.Itoa(i)] = v
	}
	mem := make([][2]uint8, MemSize)
	for i, w := range vm.Memory {
		mem[i] = [2]uint8{uint8(w & 0xff), uint8(w >> 8)}
	}
	stack := make([]uint16, len(vm.Stack))
	copy(stack, vm.Stack)
	return Snapshot{PC: vm.PC, Regs: regs, Stack: stack, Memory: mem}
}

// Restore installs a snapshot's state into vm, replacing its current
// memory, registers, stack, and PC.
func (vm *VM) Restore(s Snapshot) error {
	if len(s.Memory) != MemSize {
		return fmt.Errorf("%w: memory has %d words, want %d", ErrSnapshot, len(s.Memory), MemSize)
	}
	var regs [NumRegs]Word
	for k, v := range s.Regs {
		n, err := strconv.Atoi(k)
		if err != nil || n < 0 || n >= NumRegs {
			return fmt.Errorf("%w: invalid register key %q", ErrSnapshot, k)
		}
		regs[n] = v
	}
	for i, pair := range s.Memory {
		vm.Memory[i] = Word(pair[0]) | Word(pair[1])<<8
	}
	vm.Registers = regs
	vm.Stack = append([]uint16(nil), s.Stack...)
	vm.PC = s.PC
	return nil
}

// WriteSnapshot marshals s to path as indented JSON.
func WriteSnapshot(path string, s Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	return nil
}

// ReadSnapshot unmarshals a Snapshot from path.
func ReadSnapshot(path string) (Snapshot, error) {
	var s Snapshot
	f, err := os.Open(path)
	if err != nil {
		return s, fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(&s); err != nil {
		return s, fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	return s, nil
}

// Save writes the VM's current state to path.
func (vm *VM) Save(path string) error {
	return WriteSnapshot(path, vm.Snapshot())
}

// Load reads a snapshot from path and restores it into vm.
func (vm *VM) Load(path string) error {
	s, err := ReadSnapshot(path)
	if err != nil {
		return err
	}
	return vm.Restore(s)
}
