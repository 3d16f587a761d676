// Package htmlsanitize strips unsafe markup from user-supplied content
// before it is rendered. Testimonial and review text arrives through the
// backend from people we do not control, so everything passes through here
// on the way to a template.
package htmlsanitize

import (
	"html/template"
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// getPolicy builds the shared sanitizing policy: bluemonday's UGC baseline
// plus tables and the formatting elements the admin rich-text editor emits.
func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowTables()
		p.AllowElements("u", "s", "sub", "sup", "mark")
		p.AllowAttrs("class").OnElements("table", "thead", "tbody", "tr", "th", "td")
		p.AllowAttrs("style").
			Matching(regexp.MustCompile(`^[a-zA-Z0-9:;,.%#\- ]+$`)).
			OnElements("table", "thead", "tbody", "tr", "th", "td")
		policy = p
	})
	return policy
}

// Sanitize returns input with unsafe tags and attributes removed.
func Sanitize(input string) string {
	if input == "" {
		return ""
	}
	return getPolicy().Sanitize(input)
}

// SanitizeToHTML sanitizes and wraps the result for direct template use.
func SanitizeToHTML(input string) template.HTML {
	return template.HTML(Sanitize(input))
}

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// IsPlainText reports whether input contains no markup. A bare "<" (as in
// "5 < 10") does not count as markup.
func IsPlainText(input string) bool {
	return !tagPattern.MatchString(input)
}
