package trie

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrie_InsertAndContains(t *testing.T) {
	tr := New()
	for _, w := range []string{"cat", "car", "cart", "dog"} {
		require.NoError(t, tr.Insert(w))
	}

	tests := []struct {
		word string
		want bool
	}{
		{"cat", true},
		{"car", true},
		{"cart", true},
		{"dog", true},
		{"ca", false},
		{"do", false},
		{"cars", false},
		{"zzz", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Contains(tt.word))
		})
	}
	assert.Equal(t, 4, tr.Len())
}

func TestTrie_InsertIdempotent(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Insert("hello"))
	nodes := tr.Nodes()

	require.NoError(t, tr.Insert("hello"))
	assert.Equal(t, 1, tr.Len())
	assert.Equal(t, nodes, tr.Nodes())
}

func TestTrie_EmptyWord(t *testing.T) {
	tr := New()
	assert.False(t, tr.Contains(""))

	require.NoError(t, tr.Insert(""))
	assert.True(t, tr.Contains(""))
	assert.True(t, tr.Root().Terminal())
	assert.Equal(t, []string{""}, tr.KeysWithPrefix(""))
}

func TestTrie_AlphabetBoundaries(t *testing.T) {
	assert.Equal(t, 93, int(AlphabetSize))

	tr := New()
	assert.NoError(t, tr.Insert("!"))
	assert.NoError(t, tr.Insert("}"))
	assert.True(t, tr.Contains("!"))
	assert.True(t, tr.Contains("}"))

	for _, w := range []string{" ", "~", "\x7f", "\n", "é"} {
		err := tr.Insert(w)
		require.Error(t, err, "%q", w)
		assert.True(t, errors.Is(err, ErrOutOfAlphabet))
		assert.False(t, tr.Contains(w))
	}
}

func TestTrie_PartialInsertIsKept(t *testing.T) {
	tr := New()
	err := tr.Insert("ab cd")

	var aerr *AlphabetError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, 2, aerr.Pos)
	assert.Equal(t, byte(' '), aerr.Char)

	assert.False(t, tr.Contains("ab cd"))
	assert.False(t, tr.Contains("ab"))
	assert.True(t, tr.HasPrefix("ab"))
	assert.Empty(t, tr.KeysWithPrefix("a"))
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, 3, tr.Nodes())
}

func TestTrie_Navigate(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Insert("cart"))

	node, ok := tr.Navigate("car")
	require.True(t, ok)
	assert.Equal(t, byte('r'), node.Char())
	assert.Equal(t, 3, node.Depth())
	assert.False(t, node.Terminal())
	assert.Equal(t, "car", node.Word())
	assert.Equal(t, byte('a'), node.Parent().Char())

	root, ok := tr.Navigate("")
	require.True(t, ok)
	assert.Same(t, tr.Root(), root)
	assert.Nil(t, root.Parent())
	assert.Equal(t, 0, root.Depth())

	_, ok = tr.Navigate("cab")
	assert.False(t, ok)
	_, ok = tr.Navigate("c a")
	assert.False(t, ok)
}

func TestTrie_DepthInvariant(t *testing.T) {
	tr := New()
	for _, w := range []string{"alpha", "alps", "beta", "b"} {
		require.NoError(t, tr.Insert(w))
	}

	var check func(n *Node)
	check = func(n *Node) {
		for _, c := range n.children {
			if c == nil {
				continue
			}
			assert.Same(t, n, c.Parent())
			assert.Equal(t, n.Depth()+1, c.Depth())
			check(c)
		}
	}
	check(tr.Root())
}

func TestTrie_KeysWithPrefix(t *testing.T) {
	tr := New()
	testData := []string{"apple", "app", "banana", "orange", "App", "ap!"}
	for _, w := range testData {
		require.NoError(t, tr.Insert(w))
	}

	tests := []struct {
		name   string
		prefix string
		want   []string
	}{
		{
			name:   "prefix 'app'",
			prefix: "app",
			want:   []string{"app", "apple"},
		},
		{
			name:   "prefix 'ap' in byte order",
			prefix: "ap",
			want:   []string{"ap!", "app", "apple"},
		},
		{
			name:   "case is significant",
			prefix: "A",
			want:   []string{"App"},
		},
		{
			name:   "prefix 'ban'",
			prefix: "ban",
			want:   []string{"banana"},
		},
		{
			name:   "non-existent prefix",
			prefix: "xyz",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.KeysWithPrefix(tt.prefix))
		})
	}
}

func TestTrie_CollectEverything(t *testing.T) {
	words := []string{"zeta", "alpha", "Mid", "a", "a1", "x}"}
	tr := New()
	for _, w := range words {
		require.NoError(t, tr.Insert(w))
	}

	got := Collect(tr.Root())
	want := append([]string(nil), words...)
	sort.Strings(want)
	assert.Equal(t, want, got)
}

func TestWalk_StopsEarly(t *testing.T) {
	tr := New()
	for _, w := range []string{"a", "b", "c", "d"} {
		require.NoError(t, tr.Insert(w))
	}

	var seen []string
	Walk(tr.Root(), func(word string) bool {
		seen = append(seen, word)
		return len(seen) < 2
	})
	assert.Equal(t, []string{"a", "b"}, seen)

	Walk(nil, func(string) bool {
		t.Fatal("walk on nil node called fn")
		return false
	})
}

func TestTrie_Reset(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Insert("gone"))
	tr.Reset()

	assert.False(t, tr.Contains("gone"))
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, 1, tr.Nodes())
	assert.Empty(t, Collect(tr.Root()))
}
