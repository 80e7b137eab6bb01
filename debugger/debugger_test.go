/*
 * synacor-challenge - debugger tests
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

package debugger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jhogstrom/synacor-challenge/vm"
)

func newTestDebugger() (*Debugger, *bytes.Buffer, *vm.VM) {
	v := vm.New()
	var out bytes.Buffer
	return New(v, &out), &out, v
}

func TestRegsPrintsCurrentState(t *testing.T) {
	d, out, v := newTestDebugger()
	v.SetRegister(0, 42)
	resume, err := d.Process("regs")
	if err != nil || resume {
		t.Fatalf("Process(regs) = %v, %v, want false, nil", resume, err)
	}
	if !strings.Contains(out.String(), "42") {
		t.Fatalf("output %q does not mention register value", out.String())
	}
}

func TestSetRegMutatesRegister(t *testing.T) {
	d, _, v := newTestDebugger()
	if _, err := d.Process("setreg 3 77"); err != nil {
		t.Fatal(err)
	}
	if got := v.Register(3); got != 77 {
		t.Fatalf("register 3 = %d, want 77", got)
	}
}

func TestSetRegRejectsBadArgs(t *testing.T) {
	d, _, _ := newTestDebugger()
	if _, err := d.Process("setreg 9 1"); err == nil {
		t.Fatal("expected error for out-of-range register")
	}
}

func TestPrefixMatchingResolvesUnambiguousAbbreviation(t *testing.T) {
	d, _, v := newTestDebugger()
	if _, err := d.Process("cont"); err != nil {
		t.Fatal(err)
	}
	if v.IsStepping() {
		t.Fatal("continue should clear step mode")
	}
}

func TestAmbiguousPrefixIsReported(t *testing.T) {
	d, out, _ := newTestDebugger()
	// "st" is a short enough abbreviation to match both "step" and "strings".
	if _, err := d.Process("st"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "ambiguous") {
		t.Fatalf("output %q, want ambiguous-command message", out.String())
	}
}

func TestUnknownCommandPrintsHelp(t *testing.T) {
	d, out, _ := newTestDebugger()
	if _, err := d.Process("bogus"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "commands:") {
		t.Fatalf("output %q, want help listing", out.String())
	}
}

func TestRunSignalsResumeAndClearsStepMode(t *testing.T) {
	d, _, v := newTestDebugger()
	resume, err := d.Process("run 5")
	if err != nil || !resume {
		t.Fatalf("Process(run 5) = %v, %v, want true, nil", resume, err)
	}
	if v.IsStepping() {
		t.Fatal("run should clear persistent step mode")
	}
}

func TestQuitHaltsVM(t *testing.T) {
	d, _, v := newTestDebugger()
	resume, err := d.Process("quit")
	if err != nil || !resume {
		t.Fatalf("Process(quit) = %v, %v, want true, nil", resume, err)
	}
	if !v.Halted {
		t.Fatal("quit should halt the VM")
	}
}

func TestSaveAppliesPCMinusTwoConvention(t *testing.T) {
	d, _, v := newTestDebugger()
	v.PC = 10
	path := filepath.Join(t.TempDir(), "snap.json")
	if _, err := d.Process("save " + path); err != nil {
		t.Fatal(err)
	}
	snap, err := vm.ReadSnapshot(path)
	if err != nil {
		t.Fatal(err)
	}
	if snap.PC != 8 {
		t.Fatalf("saved pc = %d, want 8", snap.PC)
	}
}

func TestLoadcmdQueuesCannedInput(t *testing.T) {
	d, _, v := newTestDebugger()
	path := filepath.Join(t.TempDir(), "cmds.txt")
	if err := os.WriteFile(path, []byte("look\ntake key\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Process("loadcmd " + path); err != nil {
		t.Fatal(err)
	}
	want := []string{"look", "take key"}
	if len(v.Canned) != len(want) || v.Canned[0] != want[0] || v.Canned[1] != want[1] {
		t.Fatalf("Canned = %v, want %v", v.Canned, want)
	}
}

func TestSolveCoinsPrintsKnownAnswer(t *testing.T) {
	d, out, _ := newTestDebugger()
	if _, err := d.Process("solve_coins 2 3 5 7 9"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "9 2 5 7 3") {
		t.Fatalf("output %q, want the known coin ordering", out.String())
	}
}

func TestStringsScansOutInstructions(t *testing.T) {
	d, out, v := newTestDebugger()
	// out 72 ('H'); out 73 ('I'); halt
	v.LoadProgram([]vm.Word{19, 72, 19, 73, 0})
	if _, err := d.Process("strings"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "HI") {
		t.Fatalf("output %q, want HI", out.String())
	}
}

func TestEmptyLineIsANoop(t *testing.T) {
	d, out, _ := newTestDebugger()
	resume, err := d.Process("   ")
	if err != nil || resume {
		t.Fatalf("Process(blank) = %v, %v, want false, nil", resume, err)
	}
	if out.Len() != 0 {
		t.Fatalf("output %q, want empty", out.String())
	}
}

func TestBreakSetsAndClearRemovesBreakpoint(t *testing.T) {
	d, _, v := newTestDebugger()
	if _, err := d.Process("break 42"); err != nil {
		t.Fatal(err)
	}
	if _, ok := v.Breakpoints[42]; !ok {
		t.Fatal("expected breakpoint at 42 after break command")
	}
	if _, err := d.Process("clear 42"); err != nil {
		t.Fatal(err)
	}
	if _, ok := v.Breakpoints[42]; ok {
		t.Fatal("expected breakpoint at 42 removed after clear command")
	}
}

func TestBreakRejectsBadAddress(t *testing.T) {
	d, _, _ := newTestDebugger()
	if _, err := d.Process("break nope"); err == nil {
		t.Fatal("expected error for non-numeric address")
	}
}

func TestDebugModeOnMakesStepTraceVisible(t *testing.T) {
	d, _, v := newTestDebugger()
	if _, err := d.Process("debugmode on"); err != nil {
		t.Fatal(err)
	}
	if !v.DebugMode {
		t.Fatal("expected debugmode on to set vm.DebugMode")
	}
}

func TestAttachWiresEscapeHandling(t *testing.T) {
	v := vm.New()
	var out bytes.Buffer
	d := New(v, &out)
	d.Attach()

	if v.OnEscape == nil || v.EnterDebugger == nil {
		t.Fatal("Attach did not install both hooks")
	}
	v.OnEscape(v, "regs")
	if !strings.Contains(out.String(), "pc=") {
		t.Fatalf("output %q, want regs output from escaped command", out.String())
	}
}
