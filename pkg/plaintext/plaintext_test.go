package plaintext

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordsearch/internal"
	"wordsearch/pkg/plaintext/plainhtml"
	"wordsearch/pkg/plaintext/plainmd"
	"wordsearch/pkg/plaintext/plainxml"
)

func TestHTMLParser(t *testing.T) {
	page := `<!DOCTYPE html>
<html><head><title>ignored</title><style>body{}</style></head>
<body>
  <h1>Fruit&nbsp;list</h1>
  <script>var hidden = 1;</script>
  <p>apple <b>banana</b></p>
  <img src="x.png" alt="cherry">
  <ul><li>date</li><li>  elder   berry </li></ul>
</body></html>`

	out, err := (&plainhtml.TextHTMLParser{}).ParseHTML([]byte(page))
	require.NoError(t, err)
	assert.Equal(t, "Fruit list\napple\nbanana\ncherry\ndate\nelder berry", string(out))
}

func TestXMLParser(t *testing.T) {
	doc := `<?xml version="1.0" encoding="ISO-8859-1"?>
<words>
  <!-- comment -->
  <w>alpha</w>
  <w lang="en">beta &amp; gamma</w>
  <group><w>delta</w></group>
</words>`

	out, err := (&plainxml.TextXMLParser{}).ParseXML([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "alpha\nbeta & gamma\ndelta", string(out))
}

func TestMarkdownParser(t *testing.T) {
	md := "# Title\n\nSome *emphasis* and `code`.\n\n- one\n- two [link](http://x)\n\n```go\nfunc main() {}\n```\n\n<div>skip</div>\n"

	out, err := (&plainmd.TextMarkdownParser{}).ParseMarkdown([]byte(md))
	require.NoError(t, err)
	assert.Equal(t, "Title\nSome emphasis and code.\none\ntwo link\nfunc main() {}", string(out))
}

func TestRegisteredParsers(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"list.txt":  "cat\ndog\n",
		"page.html": "<p>cat</p><p>dog</p>",
		"doc.md":    "cat\n\ndog\n",
		"data.xml":  "<a><b>cat</b><b>dog</b></a>",
	}
	for name, body := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

		t.Run(name, func(t *testing.T) {
			out, err := internal.ParseFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(out), "cat")
			assert.Contains(t, string(out), "dog")
		})
	}

	for _, ft := range []int{internal.FileTypeTXT, internal.FileTypeCSV, internal.FileTypeJSON,
		internal.FileTypeXML, internal.FileTypeHTML, internal.FileTypeMD} {
		assert.Contains(t, internal.RegisteredTypes(), ft)
	}
}
