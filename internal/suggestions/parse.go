// Package suggestions holds the pure parsing helpers of the suggestion
// pipeline, kept free of network and storage I/O so they can be tested
// against fixtures.
package suggestions

import (
	"regexp"
	"strings"

	"github.com/webcode-studio/studio-backend/internal/suggestions/domain"
)

var numberedMarker = regexp.MustCompile(`^\d+\.\s*`)

// ParseSuggestions extracts up to domain.MaxSuggestions suggestion lines from
// a free-text model response. Only lines carrying a numbered-list marker
// ("1.") or a bullet marker ("-") are kept; the marker and surrounding
// whitespace are stripped. Lines that are empty after stripping are dropped.
func ParseSuggestions(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case numberedMarker.MatchString(line):
			line = numberedMarker.ReplaceAllString(line, "")
		case strings.HasPrefix(line, "-"):
			line = strings.TrimPrefix(line, "-")
		default:
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		out = append(out, line)
		if len(out) == domain.MaxSuggestions {
			break
		}
	}
	return out
}
