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
	"os"
	"strconv"

	"go.mau.fi/util/progver"
	flag "maunium.net/go/mauflag"
)

// Information to find out exactly which commit the program was built from.
// These are filled at build time with the -X linker flag.
var (
	Tag       = "unknown"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var version = progver.ProgramVersion{
	Name:        "emojipalette",
	URL:         "https://go.mau.fi/emojipalette",
	BaseVersion: "0.1.0",
}

var configPath = flag.MakeFull("c", "config", "The path to your config file.", "config.yaml").String()
var dontSaveConfig = flag.Make().LongKey("no-update").Usage("Don't save the updated config to disk.").Default("false").Bool()
var generateConfig = flag.MakeFull("g", "generate-example-config", "Write the example config to the config path and quit.", "false").Bool()
var sourcePath = flag.MakeFull("s", "source", "Read emojis from this emoji-test.txt instead of the configured source.", "").String()
var countFlag = flag.MakeFull("n", "count", "How many emojis the random command should print.", "").String()
var wantVersion = flag.MakeFull("v", "version", "View the program version and quit.", "false").Bool()
var wantHelp, _ = flag.MakeHelpFlag()

func exitCode(err error) int {
	if errors.Is(err, ErrUsage) || errors.Is(err, ErrUnknownCommand) {
		return 2
	}
	return 1
}

func fatal(code int, msg string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, msg+"\n", args...)
	os.Exit(code)
}

func main() {
	flag.SetHelpTitles(
		"emojipalette - A Unicode emoji catalog and random picker.",
		"emojipalette [-hgv] [-c <path>] [-s <path>] [-n <count>] [command] [args...]",
	)
	err := flag.Parse()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		flag.PrintHelp()
		os.Exit(2)
	} else if *wantHelp {
		flag.PrintHelp()
		os.Exit(0)
	}
	version = version.Init(Tag, Commit, BuildTime)
	if *wantVersion {
		fmt.Println(version.VersionDescription)
		return
	} else if *generateConfig {
		if _, err = os.Stat(*configPath); err == nil {
			fatal(1, "Refusing to overwrite existing config at %s", *configPath)
		}
		err = os.WriteFile(*configPath, []byte(ExampleConfig), 0600)
		if err != nil {
			fatal(1, "Failed to write example config: %v", err)
		}
		fmt.Println("Wrote example config to", *configPath)
		return
	}

	cfg, err := loadConfig(*configPath, !*dontSaveConfig)
	if err != nil {
		fatal(1, "Failed to load config: %v", err)
	}
	if *sourcePath != "" {
		cfg.Source = *sourcePath
	}
	if *countFlag != "" {
		cfg.Count, err = strconv.Atoi(*countFlag)
		if err != nil || cfg.Count < 1 {
			fatal(2, "Invalid count %q: must be a positive integer", *countFlag)
		}
	}
	log, err := newLogger(cfg.Logging)
	if err != nil {
		fatal(1, "Failed to initialize logger: %v", err)
	}
	ctx := log.WithContext(context.Background())

	app := NewApp(cfg, log, version)
	err = app.Init(ctx)
	if err != nil {
		log.Err(err).Str("source", cfg.Source).Msg("Failed to load emoji source")
		fatal(1, "Failed to load emojis: %v", err)
	}
	args := flag.Args()
	if len(args) == 0 {
		args = []string{cmdRandom.Name}
	}
	err = app.Handle(ctx, os.Stdout, args)
	if err != nil {
		fatal(exitCode(err), "Error: %v", err)
	}
}
