package embedkit

import (
	"io"
	"strings"
)

// Element is a single element of a parsed HTML document.
// Attribute names are case-sensitive.
type Element interface {
	// Attr returns the attribute value, or "" when the attribute is absent.
	Attr(name string) string

	// HasAttr reports whether the attribute is present, even if empty.
	HasAttr(name string) bool
}

// Document is a parsed HTML document.
type Document interface {
	// ElementsByTagName returns all elements with the given tag name
	// in document order.
	ElementsByTagName(tag string) []Element
}

// Parser parses raw HTML into a Document.
type Parser interface {
	// Parse reads HTML from r.
	// Returns EINVALID if the input cannot be parsed.
	Parse(r io.Reader) (Document, error)
}

// MetaEntry is a name/value pair read from a <meta> element.
type MetaEntry struct {
	Name    string
	Value   string
	Element Element
}

// LinkEntry is a rel/href pair read from a <link> element.
type LinkEntry struct {
	Rel     string
	Href    string
	Element Element
}

// ExtractMetas returns an entry for every <meta> element in doc.
//
// The name comes from the property attribute, falling back to name when
// property is empty, and is lowercased and trimmed. The value comes from
// content, falling back to value. Entries with an empty name or value are
// still returned.
func ExtractMetas(doc Document) []MetaEntry {
	var metas []MetaEntry
	for _, el := range doc.ElementsByTagName("meta") {
		name := el.Attr("property")
		if name == "" {
			name = el.Attr("name")
		}

		value := el.Attr("content")
		if value == "" {
			value = el.Attr("value")
		}

		metas = append(metas, MetaEntry{
			Name:    normalize(name),
			Value:   value,
			Element: el,
		})
	}
	return metas
}

// ExtractLinks returns an entry for every <link> element in doc that has
// both a rel and an href attribute. The rel is lowercased and trimmed;
// the href is returned as written.
func ExtractLinks(doc Document) []LinkEntry {
	var links []LinkEntry
	for _, el := range doc.ElementsByTagName("link") {
		if !el.HasAttr("rel") || !el.HasAttr("href") {
			continue
		}

		links = append(links, LinkEntry{
			Rel:     normalize(el.Attr("rel")),
			Href:    el.Attr("href"),
			Element: el,
		})
	}
	return links
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
