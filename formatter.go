package embedkit

import (
	"strconv"
	"strings"
)

// FormatCandidates formats values for display, one per line as
// "value<TAB>provider,provider". Media attributes are appended when set.
func FormatCandidates(values []CandidateValue) string {
	if len(values) == 0 {
		return ""
	}

	lines := make([]string, 0, len(values))
	for _, v := range values {
		keys := make([]string, len(v.Providers))
		for i, k := range v.Providers {
			keys[i] = string(k)
		}

		line := v.Value + "\t" + strings.Join(keys, ",")
		if v.Size > 0 {
			line += "\tsize=" + strconv.Itoa(v.Size)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}
