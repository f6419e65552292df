package markup

// Tag is the label of a tagged region. Labels double as the element names
// the HTML renderer emits.
type Tag string

const (
	Bold      Tag = "b"
	Italic    Tag = "i"
	Highlight Tag = "u"
	ListItem  Tag = "li"
	Heading1  Tag = "h1"
	Heading2  Tag = "h2"
	Quote     Tag = "p"
)

// Escape forces the following character to be taken literally.
const Escape = '/'

// noTag sits at the bottom of every tag stack. No marker maps to it.
const noTag Tag = ""

type marker [2]rune

var markerTable = map[marker]Tag{
	{'*', '*'}: Bold,
	{'+', '+'}: Italic,
	{'-', '-'}: Highlight,
	{'=', '='}: ListItem,
	{'#', '#'}: Heading1,
	{'!', '!'}: Heading2,
	{'|', '|'}: Quote,
}

// Lookup reports the tag denoted by the character pair a, b.
func Lookup(a, b rune) (Tag, bool) {
	tag, ok := markerTable[marker{a, b}]
	return tag, ok
}

// Markers returns the marker table keyed by the two-character token.
func Markers() map[string]Tag {
	m := make(map[string]Tag, len(markerTable))
	for k, tag := range markerTable {
		m[string(k[:])] = tag
	}
	return m
}

// Name returns a human-readable name for the tag
func (t Tag) Name() string {
	switch t {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Highlight:
		return "highlight"
	case ListItem:
		return "list-item"
	case Heading1:
		return "heading-1"
	case Heading2:
		return "heading-2"
	case Quote:
		return "quote"
	}
	return string(t)
}
