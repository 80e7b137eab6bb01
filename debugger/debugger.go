/*
 * synacor-challenge - debugger command dispatcher
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

// Package debugger implements the command interpreter that shares the VM
// executor's state: pause/step/continue control, register inspection and
// mutation, breakpoints, snapshotting, and the handful of session
// conveniences (string scanning, the coin solver, command history replay).
// Grounded on the teacher's command/parser package (prefix-matched command
// table) and command/reader (liner-based console).
package debugger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jhogstrom/synacor-challenge/vm"
)

// ErrUsage marks a malformed debugger command (spec.md's DebuggerUsageError):
// recovered locally by printing the help listing, never fatal to the VM.
var ErrUsage = errors.New("usage error")

// Debugger holds no state of its own beyond where to write its output; it
// is a set of functions over a *vm.VM's state (spec.md §9: "The debugger
// holds no state of its own; it is a set of functions over VM state").
type Debugger struct {
	vm  *vm.VM
	out io.Writer
}

// New returns a Debugger over v, writing command output to out. A nil out
// defaults to os.Stdout.
func New(v *vm.VM, out io.Writer) *Debugger {
	if out == nil {
		out = os.Stdout
	}
	return &Debugger{vm: v, out: out}
}

// Attach wires the Debugger into v's interposition hooks: breakpoints and
// step boundaries block on the REPL, and input lines beginning with
// vm.Escape are dispatched as a single command (spec.md §4.3, §4.4).
func (d *Debugger) Attach() {
	d.vm.EnterDebugger = func(*vm.VM) { d.Repl() }
	d.vm.OnEscape = func(_ *vm.VM, line string) { d.handleEscape(line) }
}

func (d *Debugger) handleEscape(line string) {
	if _, err := d.Process(line); err != nil {
		fmt.Fprintln(d.out, err)
	}
}

// Process dispatches a single command line and reports whether execution
// should resume (true for run/continue/quit). Unknown commands print the
// help listing and do not resume (spec.md §4.5: "Unknown commands print a
// help listing").
func (d *Debugger) Process(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	name := strings.ToLower(fields[0])
	args := fields[1:]

	matches := matchCommands(name)
	switch len(matches) {
	case 0:
		d.printHelp()
		return false, nil
	case 1:
		resume, err := matches[0].fn(d, args)
		if errors.Is(err, ErrUsage) {
			d.printHelp()
		}
		return resume, err
	default:
		fmt.Fprintf(d.out, "ambiguous command %q\n", name)
		return false, nil
	}
}
