/*
 * synacor-challenge - trace helper
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

package vmlog

import (
	"fmt"
	"log/slog"
	"os"
)

// Tracef logs a formatted message at debug level and unconditionally
// mirrors it to stderr, mirroring the teacher's util/debug.Debugf but
// collapsed to the single debugmode gate this VM has (no channel/device
// mask concept here). Like the original's debug(force=True) calls, the
// caller is expected to have already checked its own debugmode flag
// before calling Tracef, so there is no separate gate here: relying on
// the Handler's own Debug flag would miss debugmode being toggled at
// runtime from the debugger prompt, since that flag is fixed at startup.
func Tracef(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	slog.Debug(msg)
	fmt.Fprintln(os.Stderr, msg)
}
