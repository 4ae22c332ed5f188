// Package goquery implements embedkit.Parser and embedkit.Document on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/embedkit"
)

// Ensure Parser implements embedkit.Parser at compile time.
var _ embedkit.Parser = (*Parser)(nil)

// Parser parses HTML with goquery.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads HTML from r and returns the parsed document.
func (p *Parser) Parse(r io.Reader) (embedkit.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, embedkit.Errorf(embedkit.EINVALID, "failed to parse HTML: %v", err)
	}
	return NewDocument(doc), nil
}

// Ensure Document implements embedkit.Document at compile time.
var _ embedkit.Document = (*Document)(nil)

// Document adapts a goquery document to embedkit.Document.
type Document struct {
	doc *goquery.Document
}

// NewDocument wraps an already parsed goquery document.
func NewDocument(doc *goquery.Document) *Document {
	return &Document{doc: doc}
}

// NewDocumentFromString parses html into a Document.
func NewDocumentFromString(html string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, embedkit.Errorf(embedkit.EINVALID, "failed to parse HTML: %v", err)
	}
	return NewDocument(doc), nil
}

// ElementsByTagName returns all elements named tag in document order.
// Tag names are matched case-insensitively, as the HTML parser lowercases them.
func (d *Document) ElementsByTagName(tag string) []embedkit.Element {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return nil
	}

	var elements []embedkit.Element
	d.doc.Find(tag).Each(func(_ int, s *goquery.Selection) {
		elements = append(elements, &Element{sel: s})
	})
	return elements
}

// Ensure Element implements embedkit.Element at compile time.
var _ embedkit.Element = (*Element)(nil)

// Element adapts a single-node goquery selection to embedkit.Element.
type Element struct {
	sel *goquery.Selection
}

// Attr returns the attribute value, or "" when absent.
func (e *Element) Attr(name string) string {
	return e.sel.AttrOr(name, "")
}

// HasAttr reports whether the attribute is present.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.sel.Attr(name)
	return ok
}

// Selection returns the underlying goquery selection.
func (e *Element) Selection() *goquery.Selection {
	return e.sel
}
