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

// Package palette groups parsed emoji-test.txt data into categories and picks random emojis from them.
package palette

import (
	"math/rand/v2"

	"github.com/rs/zerolog"
	sync "github.com/sasha-s/go-deadlock"
	"go.mau.fi/util/exzerolog"
	"go.mau.fi/util/variationselector"
	"golang.org/x/exp/slices"

	"go.mau.fi/emojipalette/pkg/emojitest"
)

type location struct {
	set   int
	index int
}

// Palette is an immutable catalog of emoji sets. It is safe for concurrent use.
type Palette struct {
	log  zerolog.Logger
	sets []EmojiSet

	byID        map[string]location
	byCharacter map[string]location

	// rng is nil unless WithRand was used, in which case rngLock guards it.
	rng     *rand.Rand
	rngLock sync.Mutex
}

type Option func(*Palette)

// WithRand makes the palette draw random numbers from r instead of the global source.
func WithRand(r *rand.Rand) Option {
	return func(p *Palette) {
		p.rng = r
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(p *Palette) {
		p.log = log
	}
}

// New builds a palette from parsed groups.
func New(groups []emojitest.Group, opts ...Option) *Palette {
	p := &Palette{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	p.sets = Build(groups)
	p.byID = make(map[string]location)
	p.byCharacter = make(map[string]location)
	for setIdx, set := range p.sets {
		for emojiIdx, emoji := range set.Emojis {
			loc := location{set: setIdx, index: emojiIdx}
			if _, exists := p.byID[emoji.ID]; !exists {
				p.byID[emoji.ID] = loc
			}
			key := variationselector.Remove(emoji.Character)
			if _, exists := p.byCharacter[key]; !exists {
				p.byCharacter[key] = loc
			}
		}
	}
	p.log.Debug().
		Int("group_count", len(groups)).
		Int("set_count", len(p.sets)).
		Int("emoji_count", p.Len()).
		Array("categories", exzerolog.ArrayOfStringers(p.Categories())).
		Msg("Built emoji palette")
	return p
}

// EmojiSets returns all emoji sets in catalog order. The sets must not be modified.
func (p *Palette) EmojiSets() []EmojiSet {
	return slices.Clone(p.sets)
}

// Categories returns the distinct categories present in the palette in catalog order.
func (p *Palette) Categories() []Category {
	cats := make([]Category, 0, len(AllCategories))
	for _, set := range p.sets {
		if !slices.Contains(cats, set.Category) {
			cats = append(cats, set.Category)
		}
	}
	return cats
}

// Len returns the total number of emojis in the palette.
func (p *Palette) Len() int {
	var count int
	for _, set := range p.sets {
		count += len(set.Emojis)
	}
	return count
}

// Emojis returns the emojis of the given categories in catalog order, or all emojis if no categories are given.
func (p *Palette) Emojis(categories ...Category) []emojitest.Emoji {
	if len(categories) == 0 {
		categories = AllCategories
	}
	var out []emojitest.Emoji
	for _, set := range p.sets {
		if slices.Contains(categories, set.Category) {
			out = append(out, set.Emojis...)
		}
	}
	return out
}

// Lookup finds an emoji by ID. IDs aren't guaranteed to be unique across categories, the first match is returned.
func (p *Palette) Lookup(id string) (emojitest.Emoji, Category, bool) {
	return p.resolve(p.byID, id)
}

// LookupCharacter finds an emoji by its character. Variation selectors are ignored,
// so both the fully-qualified and unqualified forms of an emoji will be found.
func (p *Palette) LookupCharacter(char string) (emojitest.Emoji, Category, bool) {
	return p.resolve(p.byCharacter, variationselector.Remove(char))
}

func (p *Palette) resolve(index map[string]location, key string) (emojitest.Emoji, Category, bool) {
	loc, ok := index[key]
	if !ok {
		return emojitest.Emoji{}, 0, false
	}
	set := p.sets[loc.set]
	return set.Emojis[loc.index], set.Category, true
}

// RandomEmoji picks a random emoji from the given categories, or from all categories if none are given.
//
// One of the matching emoji sets is chosen uniformly first, then an emoji is chosen uniformly from that set,
// so emojis in small sets are more likely to be picked than emojis in large sets.
// If no set matches or the chosen set is empty, a *NoMatchError (which matches ErrNoMatch) is returned.
// Only a nil filter means all categories: an empty non-nil slice matches nothing.
func (p *Palette) RandomEmoji(categories ...Category) (emojitest.Emoji, error) {
	if categories == nil {
		categories = AllCategories
	}
	matches := make([]int, 0, len(p.sets))
	for i, set := range p.sets {
		if slices.Contains(categories, set.Category) {
			matches = append(matches, i)
		}
	}
	if len(matches) == 0 {
		return emojitest.Emoji{}, &NoMatchError{Categories: slices.Clone(categories)}
	}
	set := p.sets[matches[p.intN(len(matches))]]
	if len(set.Emojis) == 0 {
		return emojitest.Emoji{}, &NoMatchError{Categories: slices.Clone(categories)}
	}
	return set.Emojis[p.intN(len(set.Emojis))], nil
}

// MustRandomEmoji is like RandomEmoji, but panics if no emoji matches.
func (p *Palette) MustRandomEmoji(categories ...Category) emojitest.Emoji {
	emoji, err := p.RandomEmoji(categories...)
	if err != nil {
		panic(err)
	}
	return emoji
}

func (p *Palette) intN(n int) int {
	if p.rng == nil {
		return rand.IntN(n)
	}
	p.rngLock.Lock()
	defer p.rngLock.Unlock()
	return p.rng.IntN(n)
}
