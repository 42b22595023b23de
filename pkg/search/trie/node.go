package trie

const (
	// FirstChar is the lowest byte the trie can index.
	FirstChar = '!'
	// LastChar is the highest byte the trie can index.
	LastChar = '}'
	// AlphabetSize is the number of child slots on every node.
	AlphabetSize = LastChar - FirstChar + 1
)

// Node is one trie vertex. Children are owned by their parent, parent is an
// upward link used only to rebuild words.
type Node struct {
	char     byte
	terminal bool
	depth    int
	parent   *Node
	children [AlphabetSize]*Node
}

func newNode(parent *Node, c byte) *Node {
	n := &Node{parent: parent, char: c}
	if parent != nil {
		n.depth = parent.depth + 1
	}
	return n
}

// alphabetIndex maps c to its child slot. ok is false outside FirstChar..LastChar.
func alphabetIndex(c byte) (idx int, ok bool) {
	if c < FirstChar || c > LastChar {
		return 0, false
	}
	return int(c - FirstChar), true
}

// Char returns the edge label leading to n. Root returns 0.
func (n *Node) Char() byte { return n.char }

// Terminal reports whether an inserted word ends at n.
func (n *Node) Terminal() bool { return n.terminal }

// Depth returns the distance from the root.
func (n *Node) Depth() int { return n.depth }

// Parent returns the node one level up, nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Child returns the child reached by c, or nil.
func (n *Node) Child(c byte) *Node {
	idx, ok := alphabetIndex(c)
	if !ok {
		return nil
	}
	return n.children[idx]
}

// Word rebuilds the path from the root to n.
func (n *Node) Word() string {
	buf := make([]byte, n.depth)
	for p := n; p.depth > 0; p = p.parent {
		buf[p.depth-1] = p.char
	}
	return string(buf)
}
