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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Alignment(t *testing.T) {
	var tbl table
	tbl.add("a", "x", "end")
	tbl.add("bbb", "yy", "end")
	var buf strings.Builder
	require.NoError(t, tbl.write(&buf))
	assert.Equal(t, "a    x   end\nbbb  yy  end\n", buf.String())
}

func TestTable_WideCharacters(t *testing.T) {
	tbl := table{indent: "  "}
	tbl.add("\U0001F600", "grinning-face")
	tbl.add("a", "letter")
	var buf strings.Builder
	require.NoError(t, tbl.write(&buf))
	assert.Equal(t, "  \U0001F600  grinning-face\n  a   letter\n", buf.String())
}

func TestTable_Empty(t *testing.T) {
	var tbl table
	var buf strings.Builder
	require.NoError(t, tbl.write(&buf))
	assert.Empty(t, buf.String())
}
