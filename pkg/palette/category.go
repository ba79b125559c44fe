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
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Category int

const (
	CategorySmileys Category = iota + 1
	CategoryPeople
	CategoryAnimalsAndNature
	CategoryFoodAndDrink
	CategoryTravelAndPlaces
	CategoryActivities
	CategoryObjects
	CategorySymbols
	CategoryFlags
)

// AllCategories lists every category in the order the groups appear in emoji-test.txt.
var AllCategories = []Category{
	CategorySmileys,
	CategoryPeople,
	CategoryAnimalsAndNature,
	CategoryFoodAndDrink,
	CategoryTravelAndPlaces,
	CategoryActivities,
	CategoryObjects,
	CategorySymbols,
	CategoryFlags,
}

var categoryNames = map[Category]string{
	CategorySmileys:          "smileys",
	CategoryPeople:           "people",
	CategoryAnimalsAndNature: "animals-nature",
	CategoryFoodAndDrink:     "food-drink",
	CategoryTravelAndPlaces:  "travel-places",
	CategoryActivities:       "activities",
	CategoryObjects:          "objects",
	CategorySymbols:          "symbols",
	CategoryFlags:            "flags",
}

// String returns the short name of the category, e.g. "animals-nature".
func (c Category) String() string {
	name, ok := categoryNames[c]
	if !ok {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return name
}

// GroupName returns the emoji-test.txt group name that maps to the category.
func (c Category) GroupName() string {
	switch c {
	case CategorySmileys:
		return "Smileys & Emotion"
	case CategoryPeople:
		return "People & Body"
	case CategoryAnimalsAndNature:
		return "Animals & Nature"
	case CategoryFoodAndDrink:
		return "Food & Drink"
	case CategoryTravelAndPlaces:
		return "Travel & Places"
	case CategoryActivities:
		return "Activities"
	case CategoryObjects:
		return "Objects"
	case CategorySymbols:
		return "Symbols"
	case CategoryFlags:
		return "Flags"
	default:
		return ""
	}
}

// Icon returns the emoji used to label the category in a palette.
func (c Category) Icon() string {
	switch c {
	case CategorySmileys:
		return "😀"
	case CategoryPeople:
		return "👋"
	case CategoryAnimalsAndNature:
		return "🐻"
	case CategoryFoodAndDrink:
		return "🍔"
	case CategoryTravelAndPlaces:
		return "🚗"
	case CategoryActivities:
		return "⚽"
	case CategoryObjects:
		return "💡"
	case CategorySymbols:
		return "🔣"
	case CategoryFlags:
		return "🏳️"
	default:
		return ""
	}
}

// CategoryFor maps an emoji-test.txt group name to a category.
// Groups without a category, like "Component", return false.
func CategoryFor(groupName string) (Category, bool) {
	switch groupName {
	case "Smileys & Emotion":
		return CategorySmileys, true
	case "People & Body":
		return CategoryPeople, true
	case "Animals & Nature":
		return CategoryAnimalsAndNature, true
	case "Food & Drink":
		return CategoryFoodAndDrink, true
	case "Travel & Places":
		return CategoryTravelAndPlaces, true
	case "Activities":
		return CategoryActivities, true
	case "Objects":
		return CategoryObjects, true
	case "Symbols":
		return CategorySymbols, true
	case "Flags":
		return CategoryFlags, true
	default:
		return 0, false
	}
}

// ParseCategory accepts either the short name or the group name of a category, case-insensitively.
func ParseCategory(val string) (Category, error) {
	val = strings.TrimSpace(val)
	for cat, name := range categoryNames {
		if strings.EqualFold(val, name) || strings.EqualFold(val, cat.GroupName()) {
			return cat, nil
		}
	}
	names := maps.Values(categoryNames)
	slices.Sort(names)
	return 0, fmt.Errorf("%w %q (expected one of %s)", ErrUnknownCategory, val, strings.Join(names, ", "))
}

func ParseCategories(vals []string) ([]Category, error) {
	cats := make([]Category, 0, len(vals))
	for _, val := range vals {
		cat, err := ParseCategory(val)
		if err != nil {
			return nil, err
		}
		cats = append(cats, cat)
	}
	return cats, nil
}

func (c Category) MarshalText() ([]byte, error) {
	if _, ok := categoryNames[c]; !ok {
		return nil, fmt.Errorf("%w %d", ErrUnknownCategory, int(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	cat, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = cat
	return nil
}
