// Package markup parses the note markup language into a node tree.
//
// Regions are delimited by two-character markers (see Markers). A marker
// equal to the innermost open tag closes it; any other marker opens a new
// region. Escape makes the next character literal. Parsing never fails:
// a region left open at end of input is dropped and its contents are
// spliced into the enclosing fragment.
package markup

import "strings"

// sentinel is appended to the input so the two-character lookahead always
// stays in bounds.
const sentinel = ' '

type parser struct {
	text  []rune
	end   int // index of the sentinel
	stack []Tag
}

// Parse converts text into a fragment. It is safe for concurrent use.
func Parse(text string) Fragment {
	p := &parser{
		text:  append([]rune(text), sentinel),
		stack: []Tag{noTag},
	}
	p.end = len(p.text) - 1

	frag, _ := p.parseFrom(0)
	if frag == nil {
		return Fragment{}
	}
	return frag
}

func (p *parser) top() Tag {
	return p.stack[len(p.stack)-1]
}

// parseFrom parses one frame starting at pos. A frame closed by its marker
// comes back as a single container; a frame that runs out of input comes
// back as its bare children. The returned position is where the caller
// resumes.
func (p *parser) parseFrom(pos int) (Fragment, int) {
	var (
		children Fragment
		acc      strings.Builder
	)

	flush := func() {
		if acc.Len() > 0 {
			children = append(children, NewText(acc.String()))
			acc.Reset()
		}
	}

	i := pos
	for i < p.end {
		tag, ok := Lookup(p.text[i], p.text[i+1])
		if !ok {
			// A lone escape right before the sentinel has nothing to
			// escape and is kept as-is.
			if p.text[i] == Escape && i+1 < p.end {
				acc.WriteRune(p.text[i+1])
				i += 2
				continue
			}
			acc.WriteRune(p.text[i])
			i++
			continue
		}

		flush()

		if tag == p.top() {
			p.stack = p.stack[:len(p.stack)-1]
			return Fragment{NewContainer(tag, children)}, i + 2
		}

		p.stack = append(p.stack, tag)
		child, next := p.parseFrom(i + 2)
		children = append(children, child...)
		i = next
	}

	flush()
	return children, p.end
}
