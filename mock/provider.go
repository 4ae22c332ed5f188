package mock

import "github.com/fwojciec/embedkit"

var _ embedkit.Provider = (*Provider)(nil)

// Provider is a mock implementation of embedkit.Provider.
// Every accessor delegates to ValuesFn with the matching field.
type Provider struct {
	ValuesFn func(field embedkit.Field) []string
}

func (p *Provider) values(field embedkit.Field) []string {
	if p.ValuesFn == nil {
		return nil
	}
	return p.ValuesFn(field)
}

func (p *Provider) Title() []string         { return p.values(embedkit.FieldTitle) }
func (p *Provider) Description() []string   { return p.values(embedkit.FieldDescription) }
func (p *Provider) URL() []string           { return p.values(embedkit.FieldURL) }
func (p *Provider) Type() []string          { return p.values(embedkit.FieldType) }
func (p *Provider) Tags() []string          { return p.values(embedkit.FieldTags) }
func (p *Provider) Image() []string         { return p.values(embedkit.FieldImage) }
func (p *Provider) Code() []string          { return p.values(embedkit.FieldCode) }
func (p *Provider) AuthorName() []string    { return p.values(embedkit.FieldAuthorName) }
func (p *Provider) AuthorURL() []string     { return p.values(embedkit.FieldAuthorURL) }
func (p *Provider) ProviderName() []string  { return p.values(embedkit.FieldProviderName) }
func (p *Provider) ProviderURL() []string   { return p.values(embedkit.FieldProviderURL) }
func (p *Provider) ProviderIcon() []string  { return p.values(embedkit.FieldProviderIcon) }
func (p *Provider) PublishedTime() []string { return p.values(embedkit.FieldPublishedTime) }
func (p *Provider) License() []string       { return p.values(embedkit.FieldLicense) }
func (p *Provider) Feeds() []string         { return p.values(embedkit.FieldFeeds) }

var _ embedkit.URLResolver = (*URLResolver)(nil)

// URLResolver is a mock implementation of embedkit.URLResolver.
type URLResolver struct {
	ResolveFn func(ref string) string
}

func (r *URLResolver) Resolve(ref string) string {
	return r.ResolveFn(ref)
}
