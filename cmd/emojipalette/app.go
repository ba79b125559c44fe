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
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"go.mau.fi/util/progver"

	"go.mau.fi/emojipalette/pkg/emojitest"
	"go.mau.fi/emojipalette/pkg/palette"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("invalid usage")
	ErrNotFound       = errors.New("emoji not found")
)

type App struct {
	Config  *Config
	Log     zerolog.Logger
	Version progver.ProgramVersion
	Stdin   io.Reader

	Palette *palette.Palette
	// Groups is the raw parse tree of the source. It's only loaded when needed if the bundled data is used.
	Groups []emojitest.Group

	commands     map[string]*CommandHandler
	commandOrder []*CommandHandler
	inShell      bool
}

func NewApp(cfg *Config, log zerolog.Logger, version progver.ProgramVersion) *App {
	app := &App{
		Config:   cfg,
		Log:      log,
		Version:  version,
		Stdin:    os.Stdin,
		commands: make(map[string]*CommandHandler),
	}
	app.RegisterCommands(cmdRandom, cmdList, cmdGroups, cmdLookup, cmdCategories, cmdShell, cmdVersion, cmdHelp)
	return app
}

func (app *App) RegisterCommands(handlers ...*CommandHandler) {
	for _, handler := range handlers {
		app.commands[handler.Name] = handler
		for _, alias := range handler.Aliases {
			app.commands[alias] = handler
		}
		app.commandOrder = append(app.commandOrder, handler)
	}
}

// Init loads the palette from the configured source.
func (app *App) Init(ctx context.Context) error {
	if app.Config.Source == "" {
		app.Log.Debug().Str("unicode_version", palette.BundledVersion).Msg("Using bundled emoji data")
		app.Palette = palette.Default()
		return nil
	}
	groups, err := palette.ReadFile(ctx, app.Config.Source)
	if err != nil {
		return err
	}
	app.Groups = groups
	app.Palette = palette.New(groups, palette.WithLogger(app.Log.With().Str("component", "palette").Logger()))
	return nil
}

func (app *App) groups(ctx context.Context) ([]emojitest.Group, error) {
	if app.Groups == nil {
		groups, err := palette.ReadBundled(ctx)
		if err != nil {
			return nil, err
		}
		app.Groups = groups
	}
	return app.Groups, nil
}

// Handle runs a single command line, where args[0] is the command name.
func (app *App) Handle(ctx context.Context, out io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", ErrUsage)
	}
	handler, ok := app.commands[strings.ToLower(args[0])]
	if !ok {
		return fmt.Errorf("%w %q (try help)", ErrUnknownCommand, args[0])
	}
	log := zerolog.Ctx(ctx).With().Str("command", handler.Name).Logger()
	ce := &CommandEvent{
		Ctx:     log.WithContext(ctx),
		App:     app,
		Handler: handler,
		Args:    args[1:],
		Out:     out,
	}
	log.Debug().Strs("args", ce.Args).Msg("Running command")
	return handler.Func(ce)
}
