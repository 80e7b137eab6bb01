/*
 * synacor-challenge - loader tests
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
	"path/filepath"
	"reflect"
	"testing"
)

func TestImageRoundTrip(t *testing.T) {
	words := []uint16{9, 32768, 1, 2, 19, 32768, 0}
	dir := t.TempDir()
	path := filepath.Join(dir, "image.bin")

	if err := SaveImage(path, words); err != nil {
		t.Fatalf("SaveImage: %v", err)
	}
	got, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if !reflect.DeepEqual(got, words) {
		t.Fatalf("LoadImage = %v, want %v", got, words)
	}
}

func TestAssembleDisassembleRoundTrip(t *testing.T) {
	image := []uint16{
		9, 32768, 32767, 2, // add r0 32767 2
		19, 32768, // out r0
		0, // halt
	}
	text := Disassemble(image)
	back, err := Assemble(text)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if !reflect.DeepEqual(back, image) {
		t.Fatalf("round trip = %v, want %v", back, image)
	}
}

func TestDisassembleFormatsRegistersAndLiterals(t *testing.T) {
	lines := Disassemble([]uint16{1, 32768, 42})
	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(lines))
	}
	want := "00000: set r0 42"
	if lines[0] != want {
		t.Fatalf("line = %q, want %q", lines[0], want)
	}
}

func TestDisassembleTruncatedInstructionFallsBackToData(t *testing.T) {
	// set (opcode 1) needs 2 operands but only 1 word follows: must not panic.
	lines := Disassemble([]uint16{1, 32768})
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2, got %v", len(lines), lines)
	}
	if lines[0] != "00000: data 1" {
		t.Fatalf("lines[0] = %q", lines[0])
	}
}

func TestAssembleRejectsUnknownMnemonic(t *testing.T) {
	if _, err := Assemble([]string{"00000: frobnicate r0"}); err == nil {
		t.Fatal("expected error for unknown mnemonic")
	}
}

func TestAssembleRejectsWrongOperandCount(t *testing.T) {
	if _, err := Assemble([]string{"00000: set r0"}); err == nil {
		t.Fatal("expected error for wrong operand count")
	}
}
