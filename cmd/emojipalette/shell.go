// emojipalette - A Unicode emoji catalog and random picker.
// Copyright (C) 2026 The emojipalette Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"go.mau.fi/util/shlex"
)

// RunShell reads commands from in line by line and runs them until the input ends or the program is interrupted.
// Command errors are printed and don't stop the shell.
//
// If in is an io.Closer, it's closed when the shell exits so the reader goroutine doesn't stay blocked in a read.
// Readers that can't be closed keep that goroutine alive until their next line or EOF.
func (app *App) RunShell(ctx context.Context, in io.Reader, out io.Writer) error {
	log := zerolog.Ctx(ctx)
	if closer, ok := in.(io.Closer); ok {
		defer func() {
			_ = closer.Close()
		}()
	}
	app.inShell = true
	defer func() {
		app.inShell = false
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(c)
	input := make(chan string)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(input)
		scan := bufio.NewScanner(in)
		for scan.Scan() {
			line := strings.TrimSpace(scan.Text())
			if len(line) > 0 {
				select {
				case input <- line:
				case <-done:
					return
				}
			}
		}
		if err := scan.Err(); err != nil {
			log.Err(err).Msg("Failed to read input")
		}
	}()
	for {
		select {
		case <-c:
			log.Debug().Msg("Interrupt received, exiting shell")
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-input:
			if !ok {
				log.Debug().Msg("Input closed, exiting shell")
				return nil
			}
			args, err := shlex.Split(line)
			if err == nil && len(args) > 0 && (args[0] == "exit" || args[0] == "quit") {
				return nil
			} else if err == nil {
				err = app.Handle(ctx, out, args)
			}
			if err != nil {
				_, _ = fmt.Fprintln(out, "Error:", err)
			}
		}
	}
}
