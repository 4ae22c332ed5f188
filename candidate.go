package embedkit

// CandidateValue is a distinct value reported for a field together with the
// providers that reported it, in the order they were seen.
type CandidateValue struct {
	Value     string        `json:"value"`
	Providers []ProviderKey `json:"providers,omitempty"`

	// Media attributes carried by image and video candidates.
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Size   int    `json:"size,omitempty"`
	MIME   string `json:"mime,omitempty"`
}

// Collect queries every provider for field and merges the results into a
// list of distinct values.
//
// Providers are queried in slice order. Empty values are skipped. When
// resolver is non-nil each value is resolved to an absolute URL before
// comparison. A value seen again appends the provider's key to the existing
// entry instead of creating a new one, so the result keeps the order in which
// distinct values were first seen.
func Collect(providers []NamedProvider, field Field, resolver URLResolver) []CandidateValue {
	// Track seen values with their index in the result slice for O(1) updates
	seen := make(map[string]int)
	var values []CandidateValue

	for _, np := range providers {
		if np.Provider == nil {
			continue
		}

		for _, v := range FieldValues(np.Provider, field) {
			if v == "" {
				continue
			}
			if resolver != nil {
				v = resolver.Resolve(v)
			}

			if idx, ok := seen[v]; ok {
				values[idx].Providers = append(values[idx].Providers, np.Key)
				continue
			}

			seen[v] = len(values)
			values = append(values, CandidateValue{
				Value:     v,
				Providers: []ProviderKey{np.Key},
			})
		}
	}

	return values
}

// GroupByProvider buckets values by every provider that reported them.
// Within a bucket values keep their order in values.
func GroupByProvider(values []CandidateValue) map[ProviderKey][]CandidateValue {
	groups := make(map[ProviderKey][]CandidateValue)
	for _, v := range values {
		for _, key := range v.Providers {
			groups[key] = append(groups[key], v)
		}
	}
	return groups
}

// PrependUnique returns values with v moved to the front.
//
// If values already holds an entry equal to v.Value, the non-zero fields of v
// are merged over that entry and the merged entry replaces it at position 0.
// Provider attribution already recorded is kept unless v names its own
// providers. The input slice is not modified.
func PrependUnique(values []CandidateValue, v CandidateValue) []CandidateValue {
	result := make([]CandidateValue, 0, len(values)+1)

	idx := FindIndex(values, v.Value)
	if idx < 0 {
		result = append(result, v)
		return append(result, values...)
	}

	result = append(result, merge(values[idx], v))
	result = append(result, values[:idx]...)
	return append(result, values[idx+1:]...)
}

// merge overlays the non-zero fields of src on dst.
func merge(dst, src CandidateValue) CandidateValue {
	if len(src.Providers) > 0 {
		dst.Providers = src.Providers
	}
	if src.Width != 0 {
		dst.Width = src.Width
	}
	if src.Height != 0 {
		dst.Height = src.Height
	}
	if src.Size != 0 {
		dst.Size = src.Size
	}
	if src.MIME != "" {
		dst.MIME = src.MIME
	}
	// The result must not alias the caller's provider slice.
	dst.Providers = append([]ProviderKey(nil), dst.Providers...)
	return dst
}

// FindIndex returns the position of the first value equal to target,
// or -1 if there is none.
func FindIndex(values []CandidateValue, target string) int {
	for i, v := range values {
		if v.Value == target {
			return i
		}
	}
	return -1
}

// Find returns the first value equal to target.
// The boolean is false if there is none.
func Find(values []CandidateValue, target string) (CandidateValue, bool) {
	return at(values, FindIndex(values, target))
}

// FirstIndex returns 0 for a non-empty list and -1 otherwise.
func FirstIndex(values []CandidateValue) int {
	if len(values) == 0 {
		return -1
	}
	return 0
}

// First returns the first value. The boolean is false if values is empty.
func First(values []CandidateValue) (CandidateValue, bool) {
	return at(values, FirstIndex(values))
}

// MostPopularIndex returns the position of the value reported by the most
// providers. Ties go to the earliest value. Returns -1 if values is empty.
func MostPopularIndex(values []CandidateValue) int {
	return maxIndex(values, func(v CandidateValue) int { return len(v.Providers) })
}

// MostPopular returns the value reported by the most providers.
// The boolean is false if values is empty.
func MostPopular(values []CandidateValue) (CandidateValue, bool) {
	return at(values, MostPopularIndex(values))
}

// LargestIndex returns the position of the value with the greatest Size.
// Ties go to the earliest value, so a list without sizes yields 0.
// Returns -1 if values is empty.
func LargestIndex(values []CandidateValue) int {
	return maxIndex(values, func(v CandidateValue) int { return v.Size })
}

// Largest returns the value with the greatest Size.
// The boolean is false if values is empty.
func Largest(values []CandidateValue) (CandidateValue, bool) {
	return at(values, LargestIndex(values))
}

// maxIndex scans left to right keeping the first entry whose score is
// strictly greater than every earlier one. The first entry is always a
// candidate, whatever its score.
func maxIndex(values []CandidateValue, score func(CandidateValue) int) int {
	best := -1
	bestScore := 0
	for i, v := range values {
		if s := score(v); best < 0 || s > bestScore {
			best = i
			bestScore = s
		}
	}
	return best
}

func at(values []CandidateValue, idx int) (CandidateValue, bool) {
	if idx < 0 || idx >= len(values) {
		return CandidateValue{}, false
	}
	return values[idx], true
}
