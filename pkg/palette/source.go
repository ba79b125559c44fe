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

package palette

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"io"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
	"go.mau.fi/util/exerrors"

	"go.mau.fi/emojipalette/pkg/emojitest"
)

// BundledVersion is the Unicode emoji version of the bundled emoji-test.txt.
const BundledVersion = "15.1"

const bundledPath = "data/" + BundledVersion + "-emoji-test.txt"

//go:embed data/*-emoji-test.txt
var bundledData embed.FS

var defaultPalette = sync.OnceValue(func() *Palette {
	return exerrors.Must(Bundled(context.Background()))
})

// Default returns the process-wide palette built from the bundled data.
// It is built on first use and shared afterwards. Default panics if the bundled data can't be loaded.
func Default() *Palette {
	return defaultPalette()
}

// Bundled builds a new palette from the bundled emoji-test.txt.
func Bundled(ctx context.Context, opts ...Option) (*Palette, error) {
	groups, err := ReadBundled(ctx)
	if err != nil {
		return nil, err
	}
	return New(groups, withContextLogger(ctx, opts)...), nil
}

// ReadBundled parses the bundled emoji-test.txt without building a palette.
func ReadBundled(ctx context.Context) ([]emojitest.Group, error) {
	file, err := bundledData.Open(bundledPath)
	if err != nil {
		return nil, exerrors.NewDualError(ErrSourceLoad, err)
	}
	defer file.Close()
	return read(ctx, file)
}

// Load parses emoji-test.txt data from r and builds a palette from it. The data must be valid UTF-8.
// Unless overridden with WithLogger, the palette logs to the logger in ctx.
func Load(ctx context.Context, r io.Reader, opts ...Option) (*Palette, error) {
	groups, err := read(ctx, r)
	if err != nil {
		return nil, err
	}
	return New(groups, withContextLogger(ctx, opts)...), nil
}

// LoadFile reads an emoji-test.txt file from disk and builds a palette from it.
// The file must be plain UTF-8 text.
func LoadFile(ctx context.Context, path string, opts ...Option) (*Palette, error) {
	groups, err := ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return New(groups, withContextLogger(ctx, opts)...), nil
}

// ReadFile parses an emoji-test.txt file from disk without building a palette.
func ReadFile(ctx context.Context, path string) ([]emojitest.Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, exerrors.NewDualError(ErrSourceLoad, err)
	}
	if mime := mimetype.Detect(data); !isText(mime) {
		return nil, exerrors.NewDualError(ErrSourceLoad, fmt.Errorf("%w (detected %s)", ErrNotText, mime.String()))
	}
	zerolog.Ctx(ctx).Debug().Str("path", path).Int("size", len(data)).Msg("Loading emoji source file")
	return parse(ctx, data)
}

func read(ctx context.Context, r io.Reader) ([]emojitest.Group, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, exerrors.NewDualError(ErrSourceLoad, err)
	}
	return parse(ctx, data)
}

func parse(ctx context.Context, data []byte) ([]emojitest.Group, error) {
	if !utf8.Valid(data) {
		return nil, exerrors.NewDualError(ErrSourceLoad, ErrInvalidUTF8)
	}
	groups, err := emojitest.ParseReader(ctx, bytes.NewReader(data))
	if err != nil {
		return nil, exerrors.NewDualError(ErrSourceLoad, err)
	}
	return groups, nil
}

func withContextLogger(ctx context.Context, opts []Option) []Option {
	return append([]Option{WithLogger(*zerolog.Ctx(ctx))}, opts...)
}

// isText reports whether mime is text/plain or one of its subtypes (e.g. text/csv).
func isText(mime *mimetype.MIME) bool {
	for ; mime != nil; mime = mime.Parent() {
		if mime.Is("text/plain") {
			return true
		}
	}
	return false
}
