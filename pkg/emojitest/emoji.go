// Package emojitest parses the Unicode emoji-test.txt keyboard/display test data file.
package emojitest

// Emoji is a single palette entry.
type Emoji struct {
	// ID is the emoji name with colons removed and spaces replaced by hyphens, e.g. "smiling-face".
	ID string `json:"id"`
	// Character is the literal emoji sequence, which may span several code points.
	Character string `json:"character"`
}

type Subgroup struct {
	Name   string  `json:"name"`
	Emojis []Emoji `json:"emojis"`
}

type Group struct {
	Name      string     `json:"name"`
	Subgroups []Subgroup `json:"subgroups"`
}

// Emojis returns the emojis of every subgroup in file order.
func (g *Group) Emojis() []Emoji {
	var count int
	for _, sub := range g.Subgroups {
		count += len(sub.Emojis)
	}
	out := make([]Emoji, 0, count)
	for _, sub := range g.Subgroups {
		out = append(out, sub.Emojis...)
	}
	return out
}

// Equal reports whether two parsed trees have the same groups, subgroups and emojis in the same order.
func Equal(a, b []Group) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || len(a[i].Subgroups) != len(b[i].Subgroups) {
			return false
		}
		for j := range a[i].Subgroups {
			subA, subB := a[i].Subgroups[j], b[i].Subgroups[j]
			if subA.Name != subB.Name || len(subA.Emojis) != len(subB.Emojis) {
				return false
			}
			for k := range subA.Emojis {
				if subA.Emojis[k] != subB.Emojis[k] {
					return false
				}
			}
		}
	}
	return true
}
