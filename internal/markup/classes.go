package markup

// classTable maps each tag to the presentation class a renderer selects on.
var classTable = map[Tag]string{
	Bold:      "tag-b",
	Italic:    "tag-i",
	Highlight: "tag-u",
	ListItem:  "tag-li",
	Heading1:  "tag-h1",
	Heading2:  "tag-h2",
	Quote:     "tag-p",
}

// ClassName returns the presentation class for tag, or "" for unknown tags.
func ClassName(tag Tag) string {
	return classTable[tag]
}
