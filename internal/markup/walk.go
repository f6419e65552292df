package markup

// VisitFunc is called for each node in pre-order. Returning false skips the
// node's children.
type VisitFunc func(n Node) (descend bool)

// Walk visits nodes and their descendants in document order.
func Walk(visit VisitFunc, nodes ...Node) {
	for _, n := range nodes {
		if !visit(n) {
			continue
		}
		if c, ok := n.(*Container); ok {
			Walk(visit, c.Children...)
		}
	}
}
