package corridor

import "fmt"

// NodeID addresses a node inside its Tree.
type NodeID int

// NoNode is the parent of a root and of detached nodes.
const NoNode NodeID = -1

// Node is one carve step: the top-left corner of the corridor footprint
// carved at that step.
type Node struct {
	X, Y     int
	Parent   NodeID
	Children []NodeID
	detached bool
}

// Tree records the carve order of one corridor strand. Nodes live in an
// arena and reference each other by index; a node is owned by the child list
// of its parent and nothing else.
type Tree struct {
	corridor int
	nodes    []Node
}

// NewTree creates an empty tree for the corridor at the given index.
func NewTree(corridor int) *Tree {
	return &Tree{corridor: corridor}
}

// Corridor returns the index of the corridor this tree was carved for.
func (t *Tree) Corridor() int { return t.corridor }

// Add appends a node. The first node must be the root (parent NoNode); every
// later node must name a live parent.
func (t *Tree) Add(parent NodeID, x, y int) NodeID {
	id := NodeID(len(t.nodes))
	if parent == NoNode {
		if len(t.nodes) > 0 {
			panic("corridor: tree already has a root")
		}
	} else {
		t.mustLive(parent)
	}
	t.nodes = append(t.nodes, Node{X: x, Y: y, Parent: parent})
	if parent != NoNode {
		t.nodes[parent].Children = append(t.nodes[parent].Children, id)
	}
	return id
}

// Root returns the root node, or NoNode for an empty tree.
func (t *Tree) Root() NodeID {
	if len(t.nodes) == 0 {
		return NoNode
	}
	return 0
}

// Node returns a copy of the node.
func (t *Tree) Node(id NodeID) Node {
	t.mustExist(id)
	n := t.nodes[id]
	n.Children = append([]NodeID(nil), n.Children...)
	return n
}

// Position returns the footprint corner of the node.
func (t *Tree) Position(id NodeID) (x, y int) {
	t.mustExist(id)
	return t.nodes[id].X, t.nodes[id].Y
}

// Parent returns the node's parent, if it has one.
func (t *Tree) Parent(id NodeID) (NodeID, bool) {
	t.mustExist(id)
	p := t.nodes[id].Parent
	return p, p != NoNode
}

// Children returns a copy of the node's child list, safe to range over while detaching.
func (t *Tree) Children(id NodeID) []NodeID {
	t.mustExist(id)
	return append([]NodeID(nil), t.nodes[id].Children...)
}

// ChildCount returns the number of children the node currently owns.
func (t *Tree) ChildCount(id NodeID) int {
	t.mustExist(id)
	return len(t.nodes[id].Children)
}

// Live reports whether the node is still reachable from the root.
func (t *Tree) Live(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes) && !t.nodes[id].detached
}

// Detach unlinks a leaf from its parent's child list. The root cannot be detached.
func (t *Tree) Detach(id NodeID) {
	t.mustLive(id)
	n := &t.nodes[id]
	if n.Parent == NoNode {
		panic("corridor: cannot detach the root")
	}
	if len(n.Children) > 0 {
		panic(fmt.Sprintf("corridor: node %d still owns %d children", id, len(n.Children)))
	}
	siblings := t.nodes[n.Parent].Children
	for i, c := range siblings {
		if c == id {
			t.nodes[n.Parent].Children = append(siblings[:i:i], siblings[i+1:]...)
			break
		}
	}
	n.Parent = NoNode
	n.detached = true
}

// Len returns the number of live nodes.
func (t *Tree) Len() int {
	n := 0
	for i := range t.nodes {
		if !t.nodes[i].detached {
			n++
		}
	}
	return n
}

// Walk visits every live node depth-first in pre-order. Returning false from
// fn skips the node's subtree.
func (t *Tree) Walk(fn func(id NodeID, depth int) bool) {
	if len(t.nodes) == 0 {
		return
	}
	var visit func(id NodeID, depth int)
	visit = func(id NodeID, depth int) {
		if !fn(id, depth) {
			return
		}
		for _, c := range t.Children(id) {
			visit(c, depth+1)
		}
	}
	visit(0, 0)
}

func (t *Tree) mustExist(id NodeID) {
	if id < 0 || int(id) >= len(t.nodes) {
		panic(fmt.Sprintf("corridor: node %d out of range [0,%d)", id, len(t.nodes)))
	}
}

func (t *Tree) mustLive(id NodeID) {
	t.mustExist(id)
	if t.nodes[id].detached {
		panic(fmt.Sprintf("corridor: node %d is detached", id))
	}
}
