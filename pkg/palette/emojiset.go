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
	"go.mau.fi/emojipalette/pkg/emojitest"
)

// EmojiSet is all emojis of one contiguous run of groups that map to the same category.
type EmojiSet struct {
	Category Category          `json:"category"`
	Emojis   []emojitest.Emoji `json:"emojis"`
}

// Build folds parsed groups into emoji sets.
//
// Groups without a category are dropped. A group is merged into the previous set only if that set
// has the same category, so two same-category groups separated by another category produce two sets.
func Build(groups []emojitest.Group) []EmojiSet {
	sets := make([]EmojiSet, 0, len(AllCategories))
	for i := range groups {
		cat, ok := CategoryFor(groups[i].Name)
		if !ok {
			continue
		}
		emojis := groups[i].Emojis()
		if len(sets) > 0 && sets[len(sets)-1].Category == cat {
			sets[len(sets)-1].Emojis = append(sets[len(sets)-1].Emojis, emojis...)
		} else {
			sets = append(sets, EmojiSet{Category: cat, Emojis: emojis})
		}
	}
	return sets
}
