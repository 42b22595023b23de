// Package plaintext registers the parsers for text-based formats.
package plaintext

import (
	"wordsearch/internal"
	"wordsearch/pkg/plaintext/plainhtml"
	"wordsearch/pkg/plaintext/plainmd"
	"wordsearch/pkg/plaintext/plaintxt"
	"wordsearch/pkg/plaintext/plainxml"
)

func init() {
	internal.MustRegisterParser(internal.FileTypeTXT, &plaintxt.TextPlainParser{})
	internal.MustRegisterParser(internal.FileTypeCSV, &plaintxt.TextPlainParser{})
	internal.MustRegisterParser(internal.FileTypeJSON, &plaintxt.TextPlainParser{})
	internal.MustRegisterParser(internal.FileTypeXML, &plainxml.TextXMLParser{})
	internal.MustRegisterParser(internal.FileTypeHTML, &plainhtml.TextHTMLParser{})
	internal.MustRegisterParser(internal.FileTypeMD, &plainmd.TextMarkdownParser{})
}
