package embedkit

import "strings"

// Field identifies a named attribute of embeddable content that providers
// report independently (title, image, description, ...).
type Field int

// Known fields.
const (
	FieldTitle Field = iota + 1
	FieldDescription
	FieldURL
	FieldType
	FieldTags
	FieldImage
	FieldCode
	FieldAuthorName
	FieldAuthorURL
	FieldProviderName
	FieldProviderURL
	FieldProviderIcon
	FieldPublishedTime
	FieldLicense
	FieldFeeds
)

var fieldNames = map[Field]string{
	FieldTitle:         "title",
	FieldDescription:   "description",
	FieldURL:           "url",
	FieldType:          "type",
	FieldTags:          "tags",
	FieldImage:         "image",
	FieldCode:          "code",
	FieldAuthorName:    "authorName",
	FieldAuthorURL:     "authorUrl",
	FieldProviderName:  "providerName",
	FieldProviderURL:   "providerUrl",
	FieldProviderIcon:  "providerIcon",
	FieldPublishedTime: "publishedTime",
	FieldLicense:       "license",
	FieldFeeds:         "feeds",
}

// Fields returns all known fields in declaration order.
func Fields() []Field {
	fields := make([]Field, 0, len(fieldNames))
	for f := FieldTitle; f <= FieldFeeds; f++ {
		fields = append(fields, f)
	}
	return fields
}

// String returns the field name, e.g. "title" or "authorName".
func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return "unknown"
}

// IsURL reports whether values of the field are URLs and may be resolved
// against a base URL.
func (f Field) IsURL() bool {
	switch f {
	case FieldURL, FieldImage, FieldAuthorURL, FieldProviderURL, FieldProviderIcon, FieldFeeds:
		return true
	}
	return false
}

// ParseField returns the field with the given name. Matching ignores case.
// Returns EINVALID for unknown names.
func ParseField(name string) (Field, error) {
	name = strings.TrimSpace(name)
	for f, n := range fieldNames {
		if strings.EqualFold(n, name) {
			return f, nil
		}
	}
	return 0, Errorf(EINVALID, "unknown field %q", name)
}
