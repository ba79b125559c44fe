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
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoMatch         = errors.New("no emoji matches the requested categories")
	ErrUnknownCategory = errors.New("unknown category")
	ErrSourceLoad      = errors.New("failed to load emoji source")
	ErrNotText         = errors.New("emoji source is not a plain text file")
	ErrInvalidUTF8     = errors.New("emoji source is not valid UTF-8")
)

// NoMatchError is returned by RandomEmoji when the requested categories don't select any emoji.
type NoMatchError struct {
	Categories []Category
}

func (nme *NoMatchError) Error() string {
	names := make([]string, len(nme.Categories))
	for i, cat := range nme.Categories {
		names[i] = cat.String()
	}
	return fmt.Sprintf("%s: [%s]", ErrNoMatch.Error(), strings.Join(names, ", "))
}

func (nme *NoMatchError) Is(other error) bool {
	return other == ErrNoMatch
}
