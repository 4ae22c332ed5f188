package mock

import (
	"io"

	"github.com/fwojciec/embedkit"
)

var _ embedkit.Element = (*Element)(nil)

// Element is an in-memory embedkit.Element holding its attributes in a map.
type Element struct {
	Attrs map[string]string
}

func (e *Element) Attr(name string) string {
	return e.Attrs[name]
}

func (e *Element) HasAttr(name string) bool {
	_, ok := e.Attrs[name]
	return ok
}

var _ embedkit.Document = (*Document)(nil)

// Document is a mock implementation of embedkit.Document.
type Document struct {
	ElementsByTagNameFn func(tag string) []embedkit.Element
}

func (d *Document) ElementsByTagName(tag string) []embedkit.Element {
	return d.ElementsByTagNameFn(tag)
}

var _ embedkit.Parser = (*Parser)(nil)

// Parser is a mock implementation of embedkit.Parser.
type Parser struct {
	ParseFn func(r io.Reader) (embedkit.Document, error)
}

func (p *Parser) Parse(r io.Reader) (embedkit.Document, error) {
	return p.ParseFn(r)
}
