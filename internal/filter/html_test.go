package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "html fence wrapper",
			in:   "```html\n<div class=\"astro-reading\"><p>Greetings</p></div>\n```",
			want: "<div class=\"astro-reading\"><p>Greetings</p></div>",
		},
		{
			name: "bare fences",
			in:   "```\n<p>hi</p>\n```",
			want: "<p>hi</p>",
		},
		{
			name: "no fences untouched",
			in:   "<p>already clean</p>",
			want: "<p>already clean</p>",
		},
		{
			name: "fences in the middle",
			in:   "<p>a</p>```html<p>b</p>```",
			want: "<p>a</p><p>b</p>",
		},
		{name: "empty input", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripCodeFences(tt.in)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "```")
		})
	}
}

func TestSanitizeDropsScriptKeepsWrapper(t *testing.T) {
	in := `<div class="astro-reading"><h3>Lagna</h3><script>alert(1)</script><p onclick="x()">Mesha</p></div>`
	got := Sanitize(in)

	assert.Contains(t, got, `class="astro-reading"`)
	assert.Contains(t, got, "<h3>Lagna</h3>")
	assert.Contains(t, got, "Mesha")
	assert.NotContains(t, got, "<script>")
	assert.NotContains(t, got, "onclick")
}

func TestCleanModelHTML(t *testing.T) {
	in := "```html\n<div class=\"astro-reading\"><p>Shubha!</p><script>bad()</script></div>\n```"
	got := CleanModelHTML(in)

	assert.NotContains(t, got, "```")
	assert.NotContains(t, got, "```html")
	assert.NotContains(t, got, "script")
	assert.Contains(t, got, `class="astro-reading"`)
	assert.Contains(t, got, "Shubha!")
}
