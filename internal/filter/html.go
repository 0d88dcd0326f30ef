// Package filter post-processes model output before it reaches clients:
// literal markdown code-fence markers are stripped and the remaining HTML
// is run through an allowlist sanitizer.
package filter

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// policy allows the tag set the persona instruction asks the model for,
// plus the class attribute carried by the reading wrapper element.
var policy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Globally()
	return p
}()

// StripCodeFences removes literal ```html and ``` markers the model
// sometimes wraps its output in, without parsing the HTML itself.
func StripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```html", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// Sanitize filters the HTML through the allowlist policy. Script, style
// and event-handler content is dropped; the reading wrapper and its class
// attribute survive.
func Sanitize(s string) string {
	return policy.Sanitize(s)
}

// CleanModelHTML is the full post-processing pipeline applied to every
// generation response.
func CleanModelHTML(s string) string {
	return strings.TrimSpace(Sanitize(StripCodeFences(s)))
}
