// Package html renders HTML fragments for embedding media. Attribute values
// are escaped with golang.org/x/net/html.
package html

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

type attrKind int

const (
	kindOmit attrKind = iota
	kindFlag
	kindText
)

// AttrValue is the value of a rendered attribute: omitted, a bare flag,
// or escaped text. The zero value is omitted.
type AttrValue struct {
	kind attrKind
	text string
}

// Omit returns a value that suppresses the attribute.
func Omit() AttrValue { return AttrValue{kind: kindOmit} }

// Flag returns a value that renders the bare attribute name.
func Flag() AttrValue { return AttrValue{kind: kindFlag} }

// Text returns a value rendered as an escaped, quoted string.
func Text(s string) AttrValue { return AttrValue{kind: kindText, text: s} }

// Bool returns Flag for true and Omit for false.
func Bool(b bool) AttrValue {
	if b {
		return Flag()
	}
	return Omit()
}

// Int returns Omit for zero and the decimal text otherwise.
func Int(n int) AttrValue {
	if n == 0 {
		return Omit()
	}
	return Text(strconv.Itoa(n))
}

// optional returns Omit for an empty string and Text otherwise.
func optional(s string) AttrValue {
	if s == "" {
		return Omit()
	}
	return Text(s)
}

// Attribute is a single named attribute.
type Attribute struct {
	Name  string
	Value AttrValue
}

// Attr is shorthand for an Attribute literal.
func Attr(name string, value AttrValue) Attribute {
	return Attribute{Name: name, Value: value}
}

// Attributes is an ordered list of attributes; rendering keeps its order.
type Attributes []Attribute

// Element renders the opening tag for tag with attrs.
func Element(tag string, attrs Attributes) string {
	var sb strings.Builder
	writeElement(&sb, tag, attrs)
	return sb.String()
}

func writeElement(sb *strings.Builder, tag string, attrs Attributes) {
	sb.WriteByte('<')
	sb.WriteString(tag)
	for _, a := range attrs {
		switch a.Value.kind {
		case kindFlag:
			sb.WriteByte(' ')
			sb.WriteString(a.Name)
		case kindText:
			sb.WriteByte(' ')
			sb.WriteString(a.Name)
			sb.WriteString(`="`)
			sb.WriteString(html.EscapeString(a.Value.text))
			sb.WriteByte('"')
		}
	}
	sb.WriteByte('>')
}
