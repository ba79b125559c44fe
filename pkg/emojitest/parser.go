package emojitest

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

const (
	groupMarker    = "# group:"
	subgroupMarker = "# subgroup:"
	formatMarker   = "Format:"
	skinToneMarker = "skin tone"
)

type dropReason string

const (
	dropMalformed      dropReason = "malformed data line"
	dropUnknownStatus  dropReason = "unrecognized status"
	dropExcludedStatus dropReason = "excluded status"
	dropSkinTone       dropReason = "skin tone variant"
	dropNoGroup        dropReason = "subgroup outside of group"
	dropNoSubgroup     dropReason = "emoji outside of subgroup"
)

type parser struct {
	log *zerolog.Logger

	groups []Group
	// Indexes of the group and subgroup that new entries are appended to, -1 if none has been seen yet.
	group    int
	subgroup int
	lineNum  int
}

func newParser(log *zerolog.Logger) *parser {
	return &parser{log: log, group: -1, subgroup: -1}
}

// Parse reads the emoji-test.txt format and returns its groups in file order.
//
// Lines are classified by substring: a line containing "# group:" starts a group, one containing
// "# subgroup:" starts a subgroup and one containing ";" but not "Format:" is a data line.
// Only component and fully-qualified data lines are kept, and skin tone variants are skipped.
// Unparseable lines are skipped too, so Parse never fails.
//
// The status is separated from the rest of a data line at the first "#", so a "#" inside the name is
// kept: "0023 FE0F 20E3 ; fully-qualified # #️⃣ E0.6 keycap: #" has the ID "keycap-#".
func Parse(text string) []Group {
	log := zerolog.Nop()
	p := newParser(&log)
	for line := range strings.Lines(text) {
		p.feed(strings.TrimRight(line, "\r\n"))
	}
	return p.result()
}

// ParseReader is like Parse, but reads the data from r. Skipped data lines are logged at trace level
// to the logger in ctx. The only errors returned are read errors.
func ParseReader(ctx context.Context, r io.Reader) ([]Group, error) {
	p := newParser(zerolog.Ctx(ctx))
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			p.feed(strings.TrimRight(line, "\r\n"))
		}
		if errors.Is(err, io.EOF) {
			return p.result(), nil
		} else if err != nil {
			return nil, err
		}
	}
}

func (p *parser) result() []Group {
	if p.groups == nil {
		return []Group{}
	}
	return p.groups
}

func (p *parser) feed(line string) {
	p.lineNum++
	switch {
	case strings.Contains(line, groupMarker):
		p.groups = append(p.groups, Group{Name: markerValue(line, groupMarker), Subgroups: []Subgroup{}})
		p.group = len(p.groups) - 1
		p.subgroup = -1
	case strings.Contains(line, subgroupMarker):
		if p.group < 0 {
			p.drop(line, dropNoGroup)
			return
		}
		grp := &p.groups[p.group]
		grp.Subgroups = append(grp.Subgroups, Subgroup{Name: markerValue(line, subgroupMarker), Emojis: []Emoji{}})
		p.subgroup = len(grp.Subgroups) - 1
	case strings.Contains(line, ";") && !strings.Contains(line, formatMarker):
		emoji, reason := parseDataLine(line)
		if reason != "" {
			p.drop(line, reason)
			return
		} else if p.subgroup < 0 {
			p.drop(line, dropNoSubgroup)
			return
		}
		sub := &p.groups[p.group].Subgroups[p.subgroup]
		sub.Emojis = append(sub.Emojis, emoji)
	}
}

func (p *parser) drop(line string, reason dropReason) {
	p.log.Trace().
		Int("line_num", p.lineNum).
		Str("line", line).
		Str("reason", string(reason)).
		Msg("Skipping line")
}

func markerValue(line, marker string) string {
	return strings.TrimSpace(line[strings.LastIndex(line, marker)+len(marker):])
}

// parseDataLine parses a line like
//
//	263A FE0F ; fully-qualified # ☺️ E0.6 smiling face
//
// If the line doesn't produce an emoji, the reason is returned instead.
func parseDataLine(line string) (Emoji, dropReason) {
	_, rest, found := strings.Cut(line, ";")
	if !found {
		return Emoji{}, dropMalformed
	}
	rawStatus, afterHash, found := strings.Cut(rest, "#")
	if !found {
		return Emoji{}, dropMalformed
	}
	status, ok := ParseStatus(strings.TrimSpace(rawStatus))
	if !ok {
		return Emoji{}, dropUnknownStatus
	} else if !status.Included() {
		return Emoji{}, dropExcludedStatus
	}
	afterHash = strings.TrimSpace(afterHash)
	if strings.Contains(afterHash, ":") && strings.Contains(afterHash, skinToneMarker) {
		return Emoji{}, dropSkinTone
	}
	// character, version tag, then one or more name tokens
	fields := strings.Fields(afterHash)
	if len(fields) < 3 {
		return Emoji{}, dropMalformed
	}
	nameParts := fields[2:]
	for i, part := range nameParts {
		nameParts[i] = strings.ReplaceAll(part, ":", "")
	}
	return Emoji{
		ID:        strings.Join(nameParts, "-"),
		Character: fields[0],
	}, ""
}
