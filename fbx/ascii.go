package fbx

import "strings"

// EmitAscii writes the node and its subtree using the ASCII grammar of
// spec.md §4.2: two-space indent per depth, "Name: prop0, prop1, … {" for
// nodes with children, braces omitted entirely for leaves, and the
// double-space convention ("Name:  {") for property-less parent nodes.
func (n *Node) EmitAscii(w *AsciiWriter) error {
	if err := w.indent(); err != nil {
		return err
	}
	if err := w.raw(n.Name + ": "); err != nil {
		return err
	}

	parts := make([]string, len(n.Properties))
	for i, p := range n.Properties {
		var sb strings.Builder
		sub := &AsciiWriter{w: &sb, depth: w.depth}
		if err := p.EmitAscii(sub); err != nil {
			return err
		}
		parts[i] = sb.String()
	}
	if err := w.raw(strings.Join(parts, ", ")); err != nil {
		return err
	}

	if len(n.Children) == 0 {
		return w.raw("\n")
	}

	if err := w.raw(" {\n"); err != nil {
		return err
	}
	w.depth++
	for _, c := range n.Children {
		if err := c.EmitAscii(w); err != nil {
			return err
		}
	}
	w.depth--
	if err := w.indent(); err != nil {
		return err
	}
	return w.raw("}\n")
}
