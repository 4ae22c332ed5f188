package embedkit

// ProviderKey identifies the data source that reported a value.
type ProviderKey string

// Provider reports the metadata one source (OpenGraph tags, a Twitter card,
// an oEmbed response, ...) holds about a piece of embeddable content.
//
// Every accessor returns nil when the source has no value, a single element
// for scalar values, and several elements for lists.
type Provider interface {
	Title() []string
	Description() []string
	URL() []string
	Type() []string
	Tags() []string
	Image() []string
	Code() []string
	AuthorName() []string
	AuthorURL() []string
	ProviderName() []string
	ProviderURL() []string
	ProviderIcon() []string
	PublishedTime() []string
	License() []string
	Feeds() []string
}

// NamedProvider pairs a provider with the key its values are attributed to.
// An ordered slice of NamedProvider is the input to Collect.
type NamedProvider struct {
	Key      ProviderKey
	Provider Provider
}

// FieldValues returns the values p reports for field f.
// Unknown fields yield nil.
func FieldValues(p Provider, f Field) []string {
	switch f {
	case FieldTitle:
		return p.Title()
	case FieldDescription:
		return p.Description()
	case FieldURL:
		return p.URL()
	case FieldType:
		return p.Type()
	case FieldTags:
		return p.Tags()
	case FieldImage:
		return p.Image()
	case FieldCode:
		return p.Code()
	case FieldAuthorName:
		return p.AuthorName()
	case FieldAuthorURL:
		return p.AuthorURL()
	case FieldProviderName:
		return p.ProviderName()
	case FieldProviderURL:
		return p.ProviderURL()
	case FieldProviderIcon:
		return p.ProviderIcon()
	case FieldPublishedTime:
		return p.PublishedTime()
	case FieldLicense:
		return p.License()
	case FieldFeeds:
		return p.Feeds()
	}
	return nil
}

// URLResolver turns a possibly relative reference into an absolute URL.
type URLResolver interface {
	Resolve(ref string) string
}

var _ Provider = StaticProvider(nil)

// StaticProvider is a Provider backed by a fixed set of values per field.
type StaticProvider map[Field][]string

func (p StaticProvider) Title() []string         { return p[FieldTitle] }
func (p StaticProvider) Description() []string   { return p[FieldDescription] }
func (p StaticProvider) URL() []string           { return p[FieldURL] }
func (p StaticProvider) Type() []string          { return p[FieldType] }
func (p StaticProvider) Tags() []string          { return p[FieldTags] }
func (p StaticProvider) Image() []string         { return p[FieldImage] }
func (p StaticProvider) Code() []string          { return p[FieldCode] }
func (p StaticProvider) AuthorName() []string    { return p[FieldAuthorName] }
func (p StaticProvider) AuthorURL() []string     { return p[FieldAuthorURL] }
func (p StaticProvider) ProviderName() []string  { return p[FieldProviderName] }
func (p StaticProvider) ProviderURL() []string   { return p[FieldProviderURL] }
func (p StaticProvider) ProviderIcon() []string  { return p[FieldProviderIcon] }
func (p StaticProvider) PublishedTime() []string { return p[FieldPublishedTime] }
func (p StaticProvider) License() []string       { return p[FieldLicense] }
func (p StaticProvider) Feeds() []string         { return p[FieldFeeds] }
