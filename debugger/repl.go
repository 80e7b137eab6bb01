/*
 * synacor-challenge - interactive console
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
	"io"

	"github.com/peterh/liner"
)

// Repl runs the blocking interactive console entered whenever the VM hits a
// breakpoint, a step boundary, or persistent step mode (spec.md §4.4, §4.5).
// Grounded on the teacher's command/reader console reader: liner history,
// Ctrl-C abort, and tab completion over the command table.
func (d *Debugger) Repl() {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(func(partial string) []string {
		return completions(partial)
	})

	for {
		text, err := line.Prompt(fmt.Sprintf("[%05d]> ", d.vm.PC))
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				d.vm.Halted = true
				return
			}
			fmt.Fprintln(d.out, err)
			return
		}
		line.AppendHistory(text)

		resume, err := d.Process(text)
		if err != nil {
			fmt.Fprintln(d.out, err)
			continue
		}
		if resume || d.vm.Halted {
			return
		}
	}
}
