package emojitest

// Status is the qualification status column of a data line.
type Status int

const (
	StatusUnknown Status = iota
	StatusComponent
	StatusFullyQualified
	StatusMinimallyQualified
	StatusUnqualified
)

var statusNames = map[Status]string{
	StatusComponent:          "component",
	StatusFullyQualified:     "fully-qualified",
	StatusMinimallyQualified: "minimally-qualified",
	StatusUnqualified:        "unqualified",
}

func (s Status) String() string {
	name, ok := statusNames[s]
	if !ok {
		return "unknown"
	}
	return name
}

// Included reports whether emojis with this status belong in a palette.
// Minimally-qualified and unqualified forms are duplicates of a fully-qualified entry.
func (s Status) Included() bool {
	return s == StatusComponent || s == StatusFullyQualified
}

func ParseStatus(val string) (Status, bool) {
	switch val {
	case "component":
		return StatusComponent, true
	case "fully-qualified":
		return StatusFullyQualified, true
	case "minimally-qualified":
		return StatusMinimallyQualified, true
	case "unqualified":
		return StatusUnqualified, true
	default:
		return StatusUnknown, false
	}
}
