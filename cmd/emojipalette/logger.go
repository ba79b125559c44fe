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
	"io"
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"go.mau.fi/util/exzerolog"
)

// newLogger creates the logger for the program. Logs always go to stderr so they don't mix with command output.
func newLogger(cfg LoggingConfig) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.MinLevel)
	if err != nil {
		return zerolog.Nop(), err
	}
	var output io.Writer = os.Stderr
	if cfg.Pretty {
		output = zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = colorable.NewColorableStderr()
			w.NoColor = !isatty.IsTerminal(os.Stderr.Fd())
			w.TimeFormat = time.Stamp
		})
	}
	log := zerolog.New(output).Level(level).With().Timestamp().Logger()
	exzerolog.SetupDefaults(&log)
	return log, nil
}
