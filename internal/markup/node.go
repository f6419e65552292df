package markup

import "strings"

// Node is either a *Text or a *Container.
type Node interface {
	node()
}

// Text holds literal characters with escapes already resolved.
type Text struct {
	Value string
}

// Container wraps the children of a closed tagged region.
type Container struct {
	Tag      Tag
	Children Fragment
}

func (*Text) node()      {}
func (*Container) node() {}

// Class returns the presentation class of the container's tag
func (c *Container) Class() string {
	return ClassName(c.Tag)
}

// Fragment is an ordered sequence of sibling nodes without an owning tag.
type Fragment []Node

// NewText creates a text node
func NewText(s string) *Text {
	return &Text{Value: s}
}

// NewContainer creates a container node owning children
func NewContainer(tag Tag, children Fragment) *Container {
	if children == nil {
		children = Fragment{}
	}
	return &Container{Tag: tag, Children: children}
}

// Text returns the concatenated literal text of the fragment.
func (f Fragment) Text() string {
	var b strings.Builder
	Walk(func(n Node) bool {
		if t, ok := n.(*Text); ok {
			b.WriteString(t.Value)
		}
		return true
	}, f...)
	return b.String()
}

// Equal reports whether a and b are structurally identical.
func Equal(a, b Fragment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		switch x := a[i].(type) {
		case *Text:
			y, ok := b[i].(*Text)
			if !ok || x.Value != y.Value {
				return false
			}
		case *Container:
			y, ok := b[i].(*Container)
			if !ok || x.Tag != y.Tag || !Equal(x.Children, y.Children) {
				return false
			}
		default:
			return false
		}
	}
	return true
}
