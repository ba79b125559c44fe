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

package palette_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mau.fi/emojipalette/pkg/emojitest"
	"go.mau.fi/emojipalette/pkg/palette"
)

// adjacency-emoji-test.txt contains, in order: two adjacent Smileys groups, an Animals group,
// an unknown group, another Animals group, a third Smileys group and an empty Flags group.
func loadAdjacency(t *testing.T, opts ...palette.Option) *palette.Palette {
	t.Helper()
	p, err := palette.LoadFile(context.Background(), "testdata/adjacency-emoji-test.txt", opts...)
	require.NoError(t, err)
	return p
}

func TestPalette_EmojiSets(t *testing.T) {
	sets := loadAdjacency(t).EmojiSets()
	require.Len(t, sets, 4)
	assert.Equal(t, palette.CategorySmileys, sets[0].Category)
	assert.Equal(t, []string{"grinning-face", "smiling-face"}, ids(sets[0].Emojis))
	assert.Equal(t, palette.CategoryAnimalsAndNature, sets[1].Category)
	assert.Equal(t, []string{"dog-face", "penguin"}, ids(sets[1].Emojis))
	assert.Equal(t, palette.CategorySmileys, sets[2].Category)
	assert.Equal(t, []string{"hugging-face"}, ids(sets[2].Emojis))
	assert.Equal(t, palette.CategoryFlags, sets[3].Category)
	assert.Empty(t, sets[3].Emojis)
}

func TestPalette_EmojiSetsIsCopy(t *testing.T) {
	p := loadAdjacency(t)
	sets := p.EmojiSets()
	sets[0] = palette.EmojiSet{Category: palette.CategoryObjects}
	assert.Equal(t, palette.CategorySmileys, p.EmojiSets()[0].Category)
}

func TestPalette_Enumeration(t *testing.T) {
	p := loadAdjacency(t)
	assert.Equal(t, 5, p.Len())
	assert.Equal(t, []palette.Category{palette.CategorySmileys, palette.CategoryAnimalsAndNature, palette.CategoryFlags}, p.Categories())
	assert.Equal(t, []string{"grinning-face", "smiling-face", "dog-face", "penguin", "hugging-face"}, ids(p.Emojis()))
	assert.Equal(t, []string{"grinning-face", "smiling-face", "hugging-face"}, ids(p.Emojis(palette.CategorySmileys)))
	assert.Empty(t, p.Emojis(palette.CategoryObjects))
}

func TestPalette_Lookup(t *testing.T) {
	p := loadAdjacency(t)
	emoji, cat, ok := p.Lookup("penguin")
	assert.True(t, ok)
	assert.Equal(t, palette.CategoryAnimalsAndNature, cat)
	assert.Equal(t, "\U0001F427", emoji.Character)

	_, _, ok = p.Lookup("robot")
	assert.False(t, ok, "emojis in unknown groups must not be in the palette")
	_, _, ok = p.Lookup("waving-hand-light-skin-tone")
	assert.False(t, ok)
}

func TestPalette_LookupCharacter(t *testing.T) {
	p := loadAdjacency(t)
	for _, input := range []string{"\u263a", "\u263a\ufe0f"} {
		emoji, cat, ok := p.LookupCharacter(input)
		require.True(t, ok, "%q", input)
		assert.Equal(t, "smiling-face", emoji.ID)
		assert.Equal(t, "\u263a\ufe0f", emoji.Character)
		assert.Equal(t, palette.CategorySmileys, cat)
	}
	_, _, ok := p.LookupCharacter("\U0001F916")
	assert.False(t, ok)
}

func TestPalette_RandomEmoji_Containment(t *testing.T) {
	p := loadAdjacency(t)
	for i := 0; i < 200; i++ {
		emoji, err := p.RandomEmoji(palette.CategorySmileys)
		require.NoError(t, err)
		assert.Contains(t, []string{"grinning-face", "smiling-face", "hugging-face"}, emoji.ID)

		emoji, err = p.RandomEmoji(palette.CategoryAnimalsAndNature, palette.CategoryObjects)
		require.NoError(t, err)
		assert.Contains(t, []string{"dog-face", "penguin"}, emoji.ID)
	}
}

func TestPalette_RandomEmoji_AllCategories(t *testing.T) {
	p := palette.New([]emojitest.Group{
		makeGroup("Objects", "a", "b"),
		makeGroup("Flags", "c"),
	})
	all := ids(p.Emojis())
	for i := 0; i < 100; i++ {
		implicit, err := p.RandomEmoji()
		require.NoError(t, err)
		assert.Contains(t, all, implicit.ID)
		explicit, err := p.RandomEmoji(palette.AllCategories...)
		require.NoError(t, err)
		assert.Contains(t, all, explicit.ID)
	}
}

func TestPalette_RandomEmoji_NoMatch(t *testing.T) {
	p := loadAdjacency(t)
	_, err := p.RandomEmoji(palette.CategoryObjects)
	assert.ErrorIs(t, err, palette.ErrNoMatch)
	var nme *palette.NoMatchError
	require.True(t, errors.As(err, &nme))
	assert.Equal(t, []palette.Category{palette.CategoryObjects}, nme.Categories)
	assert.Contains(t, err.Error(), "objects")

	// The Flags set exists but has no emojis
	_, err = p.RandomEmoji(palette.CategoryFlags)
	assert.ErrorIs(t, err, palette.ErrNoMatch)

	_, err = palette.New(nil).RandomEmoji()
	assert.ErrorIs(t, err, palette.ErrNoMatch)
}

func TestPalette_RandomEmoji_EmptyFilter(t *testing.T) {
	p := palette.New([]emojitest.Group{makeGroup("Objects", "a")})
	_, err := p.RandomEmoji([]palette.Category{}...)
	assert.ErrorIs(t, err, palette.ErrNoMatch)
	var nme *palette.NoMatchError
	require.True(t, errors.As(err, &nme))
	assert.Empty(t, nme.Categories)

	emoji, err := p.RandomEmoji([]palette.Category(nil)...)
	require.NoError(t, err)
	assert.Equal(t, "a", emoji.ID)
}

func TestPalette_RandomEmoji_ErrorDoesNotAliasAllCategories(t *testing.T) {
	_, err := palette.New(nil).RandomEmoji()
	var nme *palette.NoMatchError
	require.True(t, errors.As(err, &nme))
	require.Equal(t, palette.AllCategories, nme.Categories)
	nme.Categories[0] = palette.CategoryFlags
	assert.Equal(t, palette.CategorySmileys, palette.AllCategories[0])
}

func TestPalette_MustRandomEmoji(t *testing.T) {
	p := loadAdjacency(t)
	assert.NotPanics(t, func() {
		assert.Equal(t, "hugging-face", palette.New([]emojitest.Group{makeGroup("Flags", "hugging-face")}).MustRandomEmoji().ID)
	})
	assert.Panics(t, func() {
		p.MustRandomEmoji(palette.CategoryObjects)
	})
}

func TestPalette_RandomEmoji_SetsAreEquallyLikely(t *testing.T) {
	p := loadAdjacency(t, palette.WithRand(rand.New(rand.NewPCG(1, 2))))
	counts := make(map[string]int)
	const draws = 4000
	for i := 0; i < draws; i++ {
		emoji, err := p.RandomEmoji(palette.CategorySmileys)
		require.NoError(t, err)
		counts[emoji.ID]++
	}
	// hugging-face is alone in the second Smileys set, so it's picked about half of the time
	assert.InDelta(t, draws/2, counts["hugging-face"], draws/10)
	assert.InDelta(t, draws/4, counts["grinning-face"], draws/10)
	assert.InDelta(t, draws/4, counts["smiling-face"], draws/10)
}

func TestPalette_WithRand_Deterministic(t *testing.T) {
	a := loadAdjacency(t, palette.WithRand(rand.New(rand.NewPCG(42, 1337))))
	b := loadAdjacency(t, palette.WithRand(rand.New(rand.NewPCG(42, 1337))))
	for i := 0; i < 50; i++ {
		emojiA, errA := a.RandomEmoji(palette.CategorySmileys, palette.CategoryAnimalsAndNature)
		emojiB, errB := b.RandomEmoji(palette.CategorySmileys, palette.CategoryAnimalsAndNature)
		require.NoError(t, errA)
		require.NoError(t, errB)
		assert.Equal(t, emojiA, emojiB)
	}
}

func TestPalette_WithRand_Concurrent(t *testing.T) {
	p := loadAdjacency(t, palette.WithRand(rand.New(rand.NewPCG(7, 7))))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, err := p.RandomEmoji(palette.CategoryAnimalsAndNature)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
}
