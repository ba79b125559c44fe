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
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.mau.fi/util/emojirunes"
	"golang.org/x/exp/slices"

	"go.mau.fi/emojipalette/pkg/emojitest"
	"go.mau.fi/emojipalette/pkg/palette"
)

type HelpMeta struct {
	Args        string
	Description string
}

type CommandHandler struct {
	Func    func(ce *CommandEvent) error
	Name    string
	Aliases []string
	Help    HelpMeta
}

type CommandEvent struct {
	Ctx     context.Context
	App     *App
	Handler *CommandHandler
	Args    []string
	Out     io.Writer
}

func (ce *CommandEvent) Reply(msg string, args ...any) {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	_, _ = fmt.Fprintln(ce.Out, msg)
}

func (ce *CommandEvent) usageError() error {
	return fmt.Errorf("%w: usage: %s %s", ErrUsage, ce.Handler.Name, ce.Handler.Help.Args)
}

func parseCategoryArgs(names []string) ([]palette.Category, error) {
	if len(names) == 0 {
		return nil, nil
	}
	return palette.ParseCategories(names)
}

var cmdRandom = &CommandHandler{
	Func:    fnRandom,
	Name:    "random",
	Aliases: []string{"r"},
	Help: HelpMeta{
		Args:        "[-n <count>] [category...]",
		Description: "Pick random emojis from the given categories, or from the configured default categories.",
	},
}

func fnRandom(ce *CommandEvent) error {
	count := ce.App.Config.Count
	var names []string
	for i := 0; i < len(ce.Args); i++ {
		if ce.Args[i] != "-n" {
			names = append(names, ce.Args[i])
			continue
		} else if i+1 >= len(ce.Args) {
			return ce.usageError()
		}
		i++
		n, err := strconv.Atoi(ce.Args[i])
		if err != nil || n < 1 {
			return fmt.Errorf("%w: count must be a positive integer, got %q", ErrUsage, ce.Args[i])
		}
		count = n
	}
	categories := ce.App.Config.DefaultCategories
	if len(names) > 0 {
		var err error
		categories, err = parseCategoryArgs(names)
		if err != nil {
			return err
		}
	}
	var tbl table
	for range count {
		emoji, err := ce.App.Palette.RandomEmoji(categories...)
		if err != nil {
			return err
		}
		tbl.add(emoji.Character, emoji.ID)
	}
	return tbl.write(ce.Out)
}

var cmdList = &CommandHandler{
	Func:    fnList,
	Name:    "list",
	Aliases: []string{"ls"},
	Help: HelpMeta{
		Args:        "[category...]",
		Description: "List the emoji sets of the palette, optionally only the ones in the given categories.",
	},
}

func fnList(ce *CommandEvent) error {
	categories, err := parseCategoryArgs(ce.Args)
	if err != nil {
		return err
	}
	for _, set := range ce.App.Palette.EmojiSets() {
		if len(categories) > 0 && !slices.Contains(categories, set.Category) {
			continue
		}
		ce.Reply("%s %s (%d)", set.Category.Icon(), set.Category.GroupName(), len(set.Emojis))
		tbl := table{indent: "  "}
		for _, emoji := range set.Emojis {
			tbl.add(emoji.Character, emoji.ID)
		}
		if err = tbl.write(ce.Out); err != nil {
			return err
		}
	}
	return nil
}

var cmdGroups = &CommandHandler{
	Func: fnGroups,
	Name: "groups",
	Help: HelpMeta{
		Description: "Show the groups and subgroups of the emoji source, including groups that have no category.",
	},
}

func fnGroups(ce *CommandEvent) error {
	if len(ce.Args) > 0 {
		return ce.usageError()
	}
	groups, err := ce.App.groups(ce.Ctx)
	if err != nil {
		return err
	}
	for i := range groups {
		group := &groups[i]
		label := "no category"
		if cat, ok := palette.CategoryFor(group.Name); ok {
			label = cat.String()
		}
		ce.Reply("%s [%s] (%d)", group.Name, label, len(group.Emojis()))
		var tbl table
		tbl.indent = "  "
		for _, subgroup := range group.Subgroups {
			tbl.add(subgroup.Name, strconv.Itoa(len(subgroup.Emojis)))
		}
		if err = tbl.write(ce.Out); err != nil {
			return err
		}
	}
	return nil
}

var cmdLookup = &CommandHandler{
	Func:    fnLookup,
	Name:    "lookup",
	Aliases: []string{"get"},
	Help: HelpMeta{
		Args:        "<id|emoji>...",
		Description: "Find emojis by ID (e.g. grinning-face) or by the emoji itself.",
	},
}

func (app *App) lookup(query string) (emojitest.Emoji, palette.Category, bool) {
	byID, byChar := app.Palette.Lookup, app.Palette.LookupCharacter
	if emojirunes.IsOnlyEmojis(query) {
		byID, byChar = byChar, byID
	}
	emoji, cat, ok := byID(query)
	if !ok {
		emoji, cat, ok = byChar(query)
	}
	return emoji, cat, ok
}

func fnLookup(ce *CommandEvent) error {
	if len(ce.Args) == 0 {
		return ce.usageError()
	}
	var tbl table
	var missing []string
	for _, query := range ce.Args {
		emoji, cat, ok := ce.App.lookup(query)
		if !ok {
			missing = append(missing, query)
			continue
		}
		tbl.add(emoji.Character, emoji.ID, cat.String())
	}
	if err := tbl.write(ce.Out); err != nil {
		return err
	} else if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, strings.Join(missing, ", "))
	}
	return nil
}

var cmdCategories = &CommandHandler{
	Func:    fnCategories,
	Name:    "categories",
	Aliases: []string{"cats"},
	Help: HelpMeta{
		Description: "List the categories in the palette and how many emojis each has.",
	},
}

func fnCategories(ce *CommandEvent) error {
	if len(ce.Args) > 0 {
		return ce.usageError()
	}
	var tbl table
	for _, cat := range ce.App.Palette.Categories() {
		tbl.add(cat.Icon(), cat.String(), cat.GroupName(), strconv.Itoa(len(ce.App.Palette.Emojis(cat))))
	}
	return tbl.write(ce.Out)
}

var cmdShell = &CommandHandler{
	Func: fnShell,
	Name: "shell",
	Help: HelpMeta{
		Description: "Read commands from stdin, one per line, until EOF or interrupt.",
	},
}

func fnShell(ce *CommandEvent) error {
	if ce.App.inShell {
		return fmt.Errorf("%w: already in a shell", ErrUsage)
	} else if len(ce.Args) > 0 {
		return ce.usageError()
	}
	return ce.App.RunShell(ce.Ctx, ce.App.Stdin, ce.Out)
}

var cmdVersion = &CommandHandler{
	Func: fnVersion,
	Name: "version",
	Help: HelpMeta{
		Description: "Show the program version and the Unicode version of the bundled emoji data.",
	},
}

func fnVersion(ce *CommandEvent) error {
	ce.Reply(ce.App.Version.VersionDescription)
	ce.Reply("Bundled emoji data: Unicode %s", palette.BundledVersion)
	return nil
}

var cmdHelp = &CommandHandler{
	Func:    fnHelp,
	Name:    "help",
	Aliases: []string{"h"},
	Help: HelpMeta{
		Description: "Show this help message.",
	},
}

func fnHelp(ce *CommandEvent) error {
	var tbl table
	for _, handler := range ce.App.commandOrder {
		if handler == cmdShell && ce.App.inShell {
			continue
		}
		usage := handler.Name
		if handler.Help.Args != "" {
			usage += " " + handler.Help.Args
		}
		tbl.add(usage, handler.Help.Description)
	}
	return tbl.write(ce.Out)
}
