/*
 * synacor-challenge - debugger command table
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
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/jhogstrom/synacor-challenge/loader"
	"github.com/jhogstrom/synacor-challenge/solver"
	"github.com/jhogstrom/synacor-challenge/vm"
)

// cmdSpec is the teacher's command/parser.cmd shape, trimmed to this VM's
// single-target debugger: no device-option scanning is needed since there
// is exactly one VM to operate on.
type cmdSpec struct {
	name string
	min  int
	help string
	fn   func(d *Debugger, args []string) (bool, error)
}

var commandTable = []cmdSpec{
	{"regs", 2, "print the register file", cmdRegs},
	{"setreg", 3, "setreg <n> <v>: set register n to value v", cmdSetReg},
	{"step", 2, "step [on|off]: toggle single-step pausing", cmdStep},
	{"run", 2, "run [n]: execute n instructions (default 1), then pause", cmdRun},
	{"continue", 2, "continue: run until halt or breakpoint", cmdContinue},
	{"save", 2, "save <path>: write a snapshot to path", cmdSave},
	{"loadcmd", 4, "loadcmd <path>: queue newline-separated canned input", cmdLoadcmd},
	{"strings", 2, "strings: print literal bytes passed to every out instruction", cmdStrings},
	{"solve_coins", 4, "solve_coins <v1..v5>: brute-force the coin equation", cmdSolveCoins},
	{"printcommands", 5, "printcommands: print the input-line history", cmdPrintCommands},
	{"debugmode", 2, "debugmode [on|off]: toggle per-instruction tracing", cmdDebugMode},
	{"disasm", 3, "disasm [addr] [count]: disassemble memory starting at addr", cmdDisasm},
	{"break", 2, "break <addr>: set a breakpoint on the program counter", cmdBreak},
	{"clear", 2, "clear <addr>: remove a breakpoint", cmdClear},
	{"help", 1, "help: list commands", nil}, // fn installed in init
	{"quit", 1, "quit: halt the VM and exit the debugger", cmdQuit},
}

// init installs cmdHelp: it lists commandTable, so naming it inside the
// table's own initializer would be an initialization cycle.
func init() {
	for i := range commandTable {
		if commandTable[i].name == "help" {
			commandTable[i].fn = cmdHelp
		}
	}
}

func matchCommands(given string) []cmdSpec {
	if given == "" {
		return nil
	}
	var out []cmdSpec
	for _, c := range commandTable {
		if matchCommand(c, given) {
			out = append(out, c)
		}
	}
	return out
}

// matchCommand implements the teacher's prefix-matching rule from
// command/parser/parser.go's matchCommand: given must be a prefix of the
// full command name, and at least as long as the command's declared
// minimum unambiguous abbreviation.
func matchCommand(c cmdSpec, given string) bool {
	if len(given) > len(c.name) || len(given) < c.min {
		return false
	}
	return c.name[:len(given)] == given
}

func completions(partial string) []string {
	var out []string
	for _, c := range commandTable {
		if strings.HasPrefix(c.name, partial) {
			out = append(out, c.name)
		}
	}
	return out
}

func (d *Debugger) printHelp() {
	fmt.Fprintln(d.out, "commands:")
	for _, c := range commandTable {
		fmt.Fprintf(d.out, "  %-14s %s\n", c.name, c.help)
	}
}

func cmdHelp(d *Debugger, _ []string) (bool, error) {
	d.printHelp()
	return false, nil
}

func cmdRegs(d *Debugger, _ []string) (bool, error) {
	slog.Info("Command regs")
	fmt.Fprintf(d.out, "pc=%05d regs=%v\n", d.vm.PC, d.vm.Registers)
	return false, nil
}

func cmdSetReg(d *Debugger, args []string) (bool, error) {
	if len(args) != 2 {
		return false, fmt.Errorf("%w: setreg <n> <v>", ErrUsage)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 || n >= vm.NumRegs {
		return false, fmt.Errorf("%w: invalid register %q", ErrUsage, args[0])
	}
	v, err := strconv.Atoi(args[1])
	if err != nil {
		return false, fmt.Errorf("%w: invalid value %q", ErrUsage, args[1])
	}
	slog.Info("Command setreg", "reg", n, "value", v)
	d.vm.SetRegister(n, vm.Word(v))
	fmt.Fprintf(d.out, "r%d = %d\n", n, d.vm.Register(n))
	return false, nil
}

// cmdStep mirrors the original debugger's step command: with no argument
// it turns stepping on; with an argument, "on"/"true"/"yes" (case
// insensitive) turns it on and anything else turns it off.
func cmdStep(d *Debugger, args []string) (bool, error) {
	on := true
	if len(args) > 0 {
		on = isTruthy(args[0])
	}
	slog.Info("Command step", "on", on)
	d.vm.SetStepping(on)
	fmt.Fprintf(d.out, "step mode: %v\n", on)
	return false, nil
}

func isTruthy(s string) bool {
	switch strings.ToUpper(s) {
	case "ON", "TRUE", "YES":
		return true
	}
	return false
}

func cmdRun(d *Debugger, args []string) (bool, error) {
	n := 1
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return false, fmt.Errorf("%w: run [n]", ErrUsage)
		}
		n = v
	}
	slog.Info("Command run", "steps", n)
	d.vm.RunSteps(n)
	return true, nil
}

func cmdContinue(d *Debugger, _ []string) (bool, error) {
	slog.Info("Command continue")
	d.vm.Continue()
	return true, nil
}

// cmdSave applies the PC-2 convention locally, leaving vm.Snapshot's
// contract as "exactly the current state" (spec.md §4.5, §4.6).
func cmdSave(d *Debugger, args []string) (bool, error) {
	if len(args) != 1 {
		return false, fmt.Errorf("%w: save <path>", ErrUsage)
	}
	snap := d.vm.Snapshot()
	snap.PC -= 2
	slog.Info("Command save", "path", args[0])
	if err := vm.WriteSnapshot(args[0], snap); err != nil {
		return false, err
	}
	fmt.Fprintf(d.out, "saved to %s\n", args[0])
	return false, nil
}

// cmdLoadcmd reads newline-separated canned input lines from path and
// appends them to the VM's canned-input queue (spec.md §4.3).
func cmdLoadcmd(d *Debugger, args []string) (bool, error) {
	if len(args) != 1 {
		return false, fmt.Errorf("%w: loadcmd <path>", ErrUsage)
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return false, err
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		lines = nil
	}
	d.vm.Canned = append(d.vm.Canned, lines...)
	slog.Info("Command loadcmd", "path", args[0], "lines", len(lines))
	fmt.Fprintf(d.out, "queued %d lines from %s\n", len(lines), args[0])
	return false, nil
}

// cmdStrings scans memory for every out instruction and prints the literal
// character it would emit, the same heuristic as the original debugger's
// "strings" command for recovering embedded text without running the VM.
func cmdStrings(d *Debugger, _ []string) (bool, error) {
	slog.Info("Command strings")
	var sb strings.Builder
	for i := 0; i+1 < vm.MemSize; i++ {
		if d.vm.Memory[i] == 19 {
			sb.WriteByte(byte(d.vm.Memory[i+1] & 0xff))
		}
	}
	fmt.Fprintln(d.out, sb.String())
	return false, nil
}

func cmdSolveCoins(d *Debugger, args []string) (bool, error) {
	if len(args) != 5 {
		return false, fmt.Errorf("%w: solve_coins needs five coin values", ErrUsage)
	}
	coins := make([]int, 5)
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return false, fmt.Errorf("%w: invalid coin %q", ErrUsage, a)
		}
		coins[i] = n
	}
	slog.Info("Command solve_coins", "coins", coins)
	solutions := solver.Solve(coins)
	if len(solutions) == 0 {
		fmt.Fprintln(d.out, "no ordering satisfies the equation")
		return false, nil
	}
	for _, s := range solutions {
		fmt.Fprintf(d.out, "order: %d %d %d %d %d\n", s[0], s[1], s[2], s[3], s[4])
	}
	return false, nil
}

func cmdPrintCommands(d *Debugger, _ []string) (bool, error) {
	slog.Info("Command printcommands")
	fmt.Fprintln(d.out, "commands so far:")
	for _, c := range d.vm.History {
		fmt.Fprintf(d.out, "\t%s\n", c)
	}
	return false, nil
}

func cmdDebugMode(d *Debugger, args []string) (bool, error) {
	on := true
	if len(args) > 0 {
		on = isTruthy(args[0])
	}
	slog.Info("Command debugmode", "on", on)
	d.vm.DebugMode = on
	fmt.Fprintf(d.out, "debug mode: %v\n", on)
	return false, nil
}

func cmdDisasm(d *Debugger, args []string) (bool, error) {
	addr, count := int(d.vm.PC), 10
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return false, fmt.Errorf("%w: disasm [addr] [count]", ErrUsage)
		}
		addr = n
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return false, fmt.Errorf("%w: disasm [addr] [count]", ErrUsage)
		}
		count = n
	}
	if addr < 0 || addr >= vm.MemSize {
		return false, fmt.Errorf("%w: address out of range", ErrUsage)
	}
	end := addr + count*4
	if end > vm.MemSize {
		end = vm.MemSize
	}
	words := make([]uint16, end-addr)
	for i := range words {
		words[i] = uint16(d.vm.Memory[addr+i])
	}
	lines := loader.DisassembleAt(words, addr)
	if count < len(lines) {
		lines = lines[:count]
	}
	for _, l := range lines {
		fmt.Fprintln(d.out, l)
	}
	return false, nil
}

// cmdBreak and cmdClear expose vm.SetBreakpoint/vm.ClearBreakpoint at the
// prompt (spec.md §2: the debugger "can set/clear breakpoints on the
// program counter"), in addition to the initial set installed from the
// --breakpoint CLI flag.
func cmdBreak(d *Debugger, args []string) (bool, error) {
	if len(args) != 1 {
		return false, fmt.Errorf("%w: break <addr>", ErrUsage)
	}
	addr, err := strconv.ParseUint(args[0], 10, 16)
	if err != nil {
		return false, fmt.Errorf("%w: invalid address %q", ErrUsage, args[0])
	}
	slog.Info("Command break", "addr", addr)
	d.vm.SetBreakpoint(uint16(addr))
	fmt.Fprintf(d.out, "breakpoint set at %05d\n", addr)
	return false, nil
}

func cmdClear(d *Debugger, args []string) (bool, error) {
	if len(args) != 1 {
		return false, fmt.Errorf("%w: clear <addr>", ErrUsage)
	}
	addr, err := strconv.ParseUint(args[0], 10, 16)
	if err != nil {
		return false, fmt.Errorf("%w: invalid address %q", ErrUsage, args[0])
	}
	slog.Info("Command clear", "addr", addr)
	d.vm.ClearBreakpoint(uint16(addr))
	fmt.Fprintf(d.out, "breakpoint cleared at %05d\n", addr)
	return false, nil
}

// cmdQuit halts the VM in place; Run's fetch/execute loop exits cleanly on
// its next condition check (spec.md §4.4, §9: a debugger quit is treated
// like reaching halt).
func cmdQuit(d *Debugger, _ []string) (bool, error) {
	slog.Info("Command quit")
	fmt.Fprintln(d.out, "goodbye")
	d.vm.Halted = true
	return true, nil
}
