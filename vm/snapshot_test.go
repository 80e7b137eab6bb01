/*
 * synacor-challenge - snapshot tests
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
	"path/filepath"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	v, _ := newTestVM(asm(1, 32768, 42, 2, 32769, 0))
	if err := v.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	v.Registers[3] = 9001 & 0x7fff

	dir := t.TempDir()
	path := filepath.Join(dir, "snap.json")
	if err := v.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	restored := New()
	if err := restored.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if restored.PC != v.PC {
		t.Errorf("PC = %d, want %d", restored.PC, v.PC)
	}
	if restored.Registers != v.Registers {
		t.Errorf("registers = %v, want %v", restored.Registers, v.Registers)
	}
	if len(restored.Stack) != len(v.Stack) {
		t.Fatalf("stack length = %d, want %d", len(restored.Stack), len(v.Stack))
	}
	for i := range v.Stack {
		if restored.Stack[i] != v.Stack[i] {
			t.Errorf("stack[%d] = %d, want %d", i, restored.Stack[i], v.Stack[i])
		}
	}
	if restored.Memory != v.Memory {
		t.Error("memory mismatch after round trip")
	}
}

func TestSnapshotWireShape(t *testing.T) {
	v := New()
	v.Registers[0] = 7
	v.Stack = []Word{1, 2, 3}
	v.PC = 99
	v.Memory[0] = 0x4241 // low byte 0x41, high byte 0x42

	snap := v.Snapshot()
	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	for _, field := range []string{"pc", "regs", "stack", "memory"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("missing field %q in snapshot JSON", field)
		}
	}

	var regs map[string]uint16
	if err := json.Unmarshal(raw["regs"], &regs); err != nil {
		t.Fatalf("Unmarshal regs: %v", err)
	}
	if regs["0"] != 7 {
		t.Errorf("regs[\"0\"] = %d, want 7", regs["0"])
	}

	var mem [][2]uint8
	if err := json.Unmarshal(raw["memory"], &mem); err != nil {
		t.Fatalf("Unmarshal memory: %v", err)
	}
	if len(mem) != MemSize {
		t.Fatalf("len(memory) = %d, want %d", len(mem), MemSize)
	}
	if mem[0][0] != 0x41 || mem[0][1] != 0x42 {
		t.Errorf("memory[0] = %v, want [0x41 0x42]", mem[0])
	}
}
