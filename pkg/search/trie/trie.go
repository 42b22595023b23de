package trie

import (
	"errors"
	"fmt"
)

// ErrOutOfAlphabet is wrapped by every AlphabetError.
var ErrOutOfAlphabet = errors.New("character outside trie alphabet")

// AlphabetError reports the byte that stopped an insertion.
type AlphabetError struct {
	Word string
	Pos  int
	Char byte
}

func (e *AlphabetError) Error() string {
	return fmt.Sprintf("insert %q: byte %#02x at offset %d is outside %q..%q",
		e.Word, e.Char, e.Pos, FirstChar, LastChar)
}

func (e *AlphabetError) Unwrap() error { return ErrOutOfAlphabet }

// Trie stores words over the FirstChar..LastChar alphabet.
// It is not safe for concurrent use.
type Trie struct {
	root  *Node
	words int
	nodes int
}

// New returns a trie holding only the root.
func New() *Trie {
	return &Trie{root: newNode(nil, 0), nodes: 1}
}

// Root returns the root node.
func (t *Trie) Root() *Node { return t.root }

// Len returns the number of distinct words stored.
func (t *Trie) Len() int { return t.words }

// Nodes returns the number of allocated nodes, root included.
func (t *Trie) Nodes() int { return t.nodes }

// Insert adds word. On an out-of-alphabet byte it stops and returns an
// *AlphabetError; nodes created for the bytes before it are kept.
func (t *Trie) Insert(word string) error {
	node := t.root
	for i := 0; i < len(word); i++ {
		idx, ok := alphabetIndex(word[i])
		if !ok {
			return &AlphabetError{Word: word, Pos: i, Char: word[i]}
		}
		if node.children[idx] == nil {
			node.children[idx] = newNode(node, word[i])
			t.nodes++
		}
		node = node.children[idx]
	}
	if !node.terminal {
		node.terminal = true
		t.words++
	}
	return nil
}

// Navigate returns the node spelled by prefix. It stops at the first
// missing edge.
func (t *Trie) Navigate(prefix string) (*Node, bool) {
	node := t.root
	for i := 0; i < len(prefix); i++ {
		node = node.Child(prefix[i])
		if node == nil {
			return nil, false
		}
	}
	return node, true
}

// Contains reports whether word itself was inserted.
func (t *Trie) Contains(word string) bool {
	node, ok := t.Navigate(word)
	return ok && node.terminal
}

// HasPrefix reports whether any path starts with prefix.
func (t *Trie) HasPrefix(prefix string) bool {
	_, ok := t.Navigate(prefix)
	return ok
}

// WalkFunc receives every terminal word under a node. Returning false stops
// the walk.
type WalkFunc func(word string) bool

// Walk visits node and its descendants depth first, children in ascending
// byte order, calling fn for each terminal node.
func Walk(node *Node, fn WalkFunc) {
	if node == nil {
		return
	}
	walk(node, fn)
}

func walk(node *Node, fn WalkFunc) bool {
	if node.terminal && !fn(node.Word()) {
		return false
	}
	for _, child := range node.children {
		if child == nil {
			continue
		}
		if !walk(child, fn) {
			return false
		}
	}
	return true
}

// Collect returns every word stored under node in Walk order.
func Collect(node *Node) []string {
	var words []string
	Walk(node, func(word string) bool {
		words = append(words, word)
		return true
	})
	return words
}

// KeysWithPrefix returns every stored word starting with prefix.
func (t *Trie) KeysWithPrefix(prefix string) []string {
	node, ok := t.Navigate(prefix)
	if !ok {
		return nil
	}
	return Collect(node)
}

// Reset drops every node. The trie is left with a fresh root.
func (t *Trie) Reset() {
	t.root = newNode(nil, 0)
	t.words = 0
	t.nodes = 1
}
