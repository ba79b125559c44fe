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
	"strings"

	"github.com/rivo/uniseg"
)

// table prints rows with each column padded to the widest cell in it.
// Widths are measured in terminal cells, so emojis and other wide characters line up.
type table struct {
	indent string
	rows   [][]string
}

func (t *table) add(cols ...string) {
	t.rows = append(t.rows, cols)
}

func (t *table) write(w io.Writer) error {
	var widths []int
	for _, row := range t.rows {
		for i, col := range row {
			width := uniseg.StringWidth(col)
			if i >= len(widths) {
				widths = append(widths, width)
			} else if width > widths[i] {
				widths[i] = width
			}
		}
	}
	var buf strings.Builder
	for _, row := range t.rows {
		buf.WriteString(t.indent)
		for i, col := range row {
			buf.WriteString(col)
			if i < len(row)-1 {
				buf.WriteString(strings.Repeat(" ", widths[i]-uniseg.StringWidth(col)+2))
			}
		}
		buf.WriteByte('\n')
	}
	_, err := io.WriteString(w, buf.String())
	return err
}
