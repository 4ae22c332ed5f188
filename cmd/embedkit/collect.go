package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/embedkit"
	embedslog "github.com/fwojciec/embedkit/slog"
	embedurl "github.com/fwojciec/embedkit/url"
)

// CollectInput is the JSON document read by the collect command. It is
// either a bare array of providers or an object holding providers and
// optional media attributes.
type CollectInput struct {
	Providers []ProviderInput       `json:"providers"`
	Media     map[string]MediaInput `json:"media,omitempty"`
}

// UnmarshalJSON accepts both the array and the object form.
func (in *CollectInput) UnmarshalJSON(data []byte) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		in.Media = nil
		return json.Unmarshal(trimmed, &in.Providers)
	}

	type object CollectInput
	var obj object
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*in = CollectInput(obj)
	return nil
}

// ProviderInput holds the values one provider reported, keyed by field name.
type ProviderInput struct {
	Key    string              `json:"key"`
	Values map[string][]string `json:"values"`
}

// MediaInput holds media attributes for a candidate value.
type MediaInput struct {
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Size   int    `json:"size,omitempty"`
	MIME   string `json:"mime,omitempty"`
}

// Run executes the collect command.
func (c *CollectCmd) Run(deps *Dependencies) error {
	values, err := c.collect(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", embedkit.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(values)
	}

	if out := embedkit.FormatCandidates(values); out != "" {
		fmt.Fprintln(deps.Stdout, out)
	}
	return nil
}

func (c *CollectCmd) collect(deps *Dependencies) ([]embedkit.CandidateValue, error) {
	field, err := embedkit.ParseField(c.Field)
	if err != nil {
		return nil, err
	}

	input, err := c.readInput(deps)
	if err != nil {
		return nil, err
	}

	providers, err := input.namedProviders()
	if err != nil {
		return nil, err
	}

	// Only URL fields are resolved against the base.
	var resolver embedkit.URLResolver
	if c.Base != "" && field.IsURL() {
		r, err := embedurl.NewResolver(c.Base)
		if err != nil {
			return nil, err
		}
		resolver = r
		if deps.Logger != nil {
			resolver = embedslog.NewLoggingResolver(r, deps.Logger)
		}
	}

	values := embedkit.Collect(providers, field, resolver)
	values = input.applyMedia(values)

	if c.Prefer != "" {
		preferred := c.Prefer
		if resolver != nil {
			preferred = resolver.Resolve(preferred)
		}
		values = embedkit.PrependUnique(values, embedkit.CandidateValue{Value: preferred})
	}

	return c.pick(field, values)
}

func (c *CollectCmd) readInput(deps *Dependencies) (*CollectInput, error) {
	r, closeFn, err := openInput(deps, c.File)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	var input CollectInput
	if err := json.NewDecoder(r).Decode(&input); err != nil {
		return nil, embedkit.Errorf(embedkit.EINVALID, "invalid provider JSON: %v", err)
	}
	return &input, nil
}

// pick narrows values to the selected candidate. Selecting from an empty
// list returns ENOTFOUND.
func (c *CollectCmd) pick(field embedkit.Field, values []embedkit.CandidateValue) ([]embedkit.CandidateValue, error) {
	var (
		v  embedkit.CandidateValue
		ok bool
	)
	switch c.Pick {
	case "", "all":
		return values, nil
	case "first":
		v, ok = embedkit.First(values)
	case "popular":
		v, ok = embedkit.MostPopular(values)
	case "largest":
		v, ok = embedkit.Largest(values)
	default:
		return nil, embedkit.Errorf(embedkit.EINVALID, "unknown pick %q", c.Pick)
	}

	if !ok {
		return nil, embedkit.Errorf(embedkit.ENOTFOUND, "no %s candidate for field %s", c.Pick, field)
	}
	return []embedkit.CandidateValue{v}, nil
}

// namedProviders converts the input into providers in input order.
func (in *CollectInput) namedProviders() ([]embedkit.NamedProvider, error) {
	providers := make([]embedkit.NamedProvider, 0, len(in.Providers))
	for i, p := range in.Providers {
		key := p.Key
		if key == "" {
			return nil, embedkit.Errorf(embedkit.EINVALID, "provider %d has no key", i)
		}

		static := make(embedkit.StaticProvider, len(p.Values))
		for name, values := range p.Values {
			field, err := embedkit.ParseField(name)
			if err != nil {
				return nil, err
			}
			static[field] = values
		}

		providers = append(providers, embedkit.NamedProvider{
			Key:      embedkit.ProviderKey(key),
			Provider: static,
		})
	}
	return providers, nil
}

// applyMedia copies media attributes onto matching values. A missing size
// is derived from the pixel area.
func (in *CollectInput) applyMedia(values []embedkit.CandidateValue) []embedkit.CandidateValue {
	if len(in.Media) == 0 {
		return values
	}

	for i := range values {
		m, ok := in.Media[values[i].Value]
		if !ok {
			continue
		}
		values[i].Width = m.Width
		values[i].Height = m.Height
		values[i].MIME = m.MIME
		values[i].Size = m.Size
		if values[i].Size == 0 {
			values[i].Size = m.Width * m.Height
		}
	}
	return values
}
