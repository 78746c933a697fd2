// Package warnings runs automated checks against submitted translations.
// Check results are advisory: they are stored on the translation and
// surfaced through the API, never blocking persistence.
package warnings

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/meloniq-lab/glotline/pkg/locales"
)

// Checker produces warning strings for a set of plural-form translations of
// an original.
type Checker interface {
	Check(singular string, plural *string, translations []string, locale *locales.Locale) []string
}

var placeholderRe = regexp.MustCompile(`%(\d+\$)?[sdf]`)

// BasicChecker flags empty plural forms, suspicious length ratios, and
// printf-style placeholder mismatches.
type BasicChecker struct{}

func NewBasicChecker() *BasicChecker { return &BasicChecker{} }

func (ch *BasicChecker) Check(singular string, plural *string, translations []string, locale *locales.Locale) []string {
	var out []string
	for i, t := range translations {
		source := singular
		if i > 0 && plural != nil {
			source = *plural
		}
		if strings.TrimSpace(t) == "" {
			out = append(out, fmt.Sprintf("translation_%d: translation is empty", i))
			continue
		}
		if len(source) > 20 && len(t) > 4*len(source) {
			out = append(out, fmt.Sprintf("translation_%d: length is suspiciously long", i))
		}
		want := placeholderRe.FindAllString(source, -1)
		got := placeholderRe.FindAllString(t, -1)
		if len(want) != len(got) {
			out = append(out, fmt.Sprintf("translation_%d: placeholder count differs from original", i))
		}
	}
	return out
}
