package fbx

// nullRecordSize is the width of the sentinel that closes a binary record's
// children list. The FBX SDK documentation is silent on why 13, specifically
// (DESIGN.md Open Question (c)); 13 is what every known consumer expects.
const nullRecordSize = 13

// Node is the Go name for an FBX "Record" (spec.md §3): a named, ordered
// list of Properties plus an ordered list of child Nodes. A Node tree is
// built once by package scene (or fbx/builder) and then emitted exactly
// once — Nodes carry no mutable emission state of their own, unlike
// assimp's Node class which stashes stream offsets on itself during Dump.
type Node struct {
	Name       string
	Properties []*Property
	Children   []*Node
}

// NewNode constructs a leaf or parent node with the given properties.
func NewNode(name string, props ...*Property) *Node {
	return &Node{Name: name, Properties: props}
}

// AddChild appends a single child node and returns the receiver, so calls
// can be chained the way the teacher's bfbx73 builder functions chain
// AddNodes.
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

// AddChildren appends multiple child nodes and returns the receiver.
func (n *Node) AddChildren(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// FindChild returns the first direct child with the given name, or nil.
func (n *Node) FindChild(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// IsLeaf reports whether the node has no children (spec.md §3).
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// IsTerminal reports whether the node has neither children nor properties
// (spec.md §3).
func (n *Node) IsTerminal() bool { return len(n.Children) == 0 && len(n.Properties) == 0 }

// propertyListSize returns the sum of the wire size of every property,
// matching the property_list_size field of the binary record header.
func (n *Node) propertyListSize() int {
	total := 0
	for _, p := range n.Properties {
		total += p.WireSize()
	}
	return total
}
