// Package sanitize strips markup from strings the API hands us before they
// reach the terminal.
package sanitize

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.StrictPolicy()
	})
	return policy
}

// Text removes all HTML, unescapes entities and drops control characters.
func Text(s string) string {
	if s == "" {
		return ""
	}
	clean := html.UnescapeString(getPolicy().Sanitize(s))
	clean = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, clean)
	return strings.TrimSpace(clean)
}
