/*
 * synacor-challenge - Main process.
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

package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	getopt "github.com/pborman/getopt/v2"

	"github.com/jhogstrom/synacor-challenge/debugger"
	"github.com/jhogstrom/synacor-challenge/internal/vmlog"
	"github.com/jhogstrom/synacor-challenge/loader"
	"github.com/jhogstrom/synacor-challenge/vm"
)

var Logger *slog.Logger

func main() {
	optImage := getopt.StringLong("image", 'i', "challenge.bin", "Program image to load")
	optSnapshot := getopt.StringLong("snapshot", 's', "", "Snapshot to restore before running")
	optBreakpoints := getopt.StringLong("breakpoint", 'b', "", "Comma-separated list of breakpoint addresses")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optDebug := getopt.BoolLong("debug", 'd', "Enable per-instruction trace logging")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var file *os.File
	if *optLogFile != "" {
		var err error
		file, err = os.Create(*optLogFile)
		if err != nil {
			Logger = slog.New(vmlog.NewHandler(nil, nil, *optDebug))
			slog.SetDefault(Logger)
			Logger.Error("could not create log file", "path", *optLogFile, "err", err)
			os.Exit(1)
		}
	}

	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	Logger = slog.New(vmlog.NewHandler(file, &slog.HandlerOptions{Level: programLevel}, *optDebug))
	slog.SetDefault(Logger)

	Logger.Info("synacor-challenge started")

	words, err := loader.LoadImage(*optImage)
	if err != nil {
		Logger.Error("could not load image", "path", *optImage, "err", err)
		os.Exit(1)
	}

	machine := vm.New()
	machine.LoadProgram(words)
	machine.DebugMode = *optDebug

	if *optSnapshot != "" {
		if err := machine.Load(*optSnapshot); err != nil {
			Logger.Error("could not restore snapshot", "path", *optSnapshot, "err", err)
			os.Exit(1)
		}
		Logger.Info("restored snapshot", "path", *optSnapshot)
	}

	for _, addr := range splitBreakpoints(*optBreakpoints) {
		machine.SetBreakpoint(addr)
		Logger.Info("breakpoint set", "addr", addr)
	}

	machine.Out = os.Stdout
	machine.In = readStdinLine

	dbg := debugger.New(machine, os.Stdout)
	dbg.Attach()

	if err := machine.Run(); err != nil {
		Logger.Error("execution stopped", "err", err)
		os.Exit(1)
	}

	Logger.Info("halted", "pc", machine.PC)
}

func splitBreakpoints(csv string) []uint16 {
	if csv == "" {
		return nil
	}
	var out []uint16
	for _, f := range strings.Split(csv, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.ParseUint(f, 10, 16)
		if err != nil {
			Logger.Error("invalid breakpoint address", "value", f, "err", err)
			continue
		}
		out = append(out, uint16(n))
	}
	return out
}
