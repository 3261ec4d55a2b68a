package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
  <title>  Quick   Brown Fox </title>
  <style>body { color: red; }</style>
  <script>var hidden = "nope";</script>
</head>
<body>
  <h1>Jumping</h1>
  <p>The fox jumps over the <b>lazy</b> dog.</p>
  <noscript>enable javascript</noscript>
  <a href="/about">About   us</a>
  <a href="http://other.example/x">Elsewhere</a>
  <a name="anchor"></a>
</body>
</html>`

func TestNew(t *testing.T) {
	extractor := New()
	require.NotNil(t, extractor)
	assert.IsType(t, &Extractor{}, extractor)
}

func TestExtract_Fields(t *testing.T) {
	fields := New().Extract("UTF-8", "http://example.com/dir/page", samplePage)

	assert.Equal(t, "Quick Brown Fox", fields.Title)
	assert.Equal(t, "Jumping The fox jumps over the lazy dog. About us Elsewhere", fields.BodyText)
	assert.Equal(t, "About us Elsewhere", fields.LinkText)
	assert.Equal(t, []string{"http://example.com/about", "http://other.example/x"}, fields.Links)
	assert.Equal(t, "Quick Brown Fox "+fields.BodyText, fields.AllText)
}

func TestExtract_HiddenContentRemoved(t *testing.T) {
	fields := New().Extract("UTF-8", "", samplePage)

	for _, hidden := range []string{"nope", "color", "enable javascript"} {
		assert.NotContains(t, fields.BodyText, hidden)
		assert.NotContains(t, fields.AllText, hidden)
	}
}

func TestExtract_BaseHref(t *testing.T) {
	page := `<html><head><base href="http://mirror.example/root/"></head>
<body><a href="page.html">Page</a></body></html>`

	fields := New().Extract("UTF-8", "http://example.com/", page)

	assert.Equal(t, []string{"http://mirror.example/root/page.html"}, fields.Links)
}

func TestExtract_RelativeBaseHref(t *testing.T) {
	page := `<html><head><base href="/sub/"></head><body><a href="x">X</a></body></html>`

	fields := New().Extract("UTF-8", "http://example.com/a/b", page)

	assert.Equal(t, []string{"http://example.com/sub/x"}, fields.Links)
}

func TestExtract_NoBaseKeepsOnlyAbsoluteLinks(t *testing.T) {
	page := `<body><a href="relative">R</a><a href="https://abs.example/">A</a></body>`

	fields := New().Extract("UTF-8", "", page)

	assert.Equal(t, []string{"https://abs.example/"}, fields.Links)
	assert.Equal(t, "R A", fields.LinkText)
}

func TestExtract_Entities(t *testing.T) {
	fields := New().Extract("UTF-8", "", `<title>Fish &amp; Chips</title><body>caf&eacute;</body>`)

	assert.Equal(t, "Fish & Chips", fields.Title)
	assert.Equal(t, "café", fields.BodyText)
}

func TestExtract_Latin1(t *testing.T) {
	// "caf\xe9" is "café" in ISO-8859-1.
	fields := New().Extract("ISO-8859-1", "", "<body>caf\xe9</body>")

	assert.Equal(t, "café", fields.BodyText)
}

func TestExtract_UnknownEncodingLeavesText(t *testing.T) {
	fields := New().Extract("no-such-charset", "", "<body>plain text</body>")

	assert.Equal(t, "plain text", fields.BodyText)
}

func TestExtract_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		page string
	}{
		{"empty", ""},
		{"whitespace", "   \n\t "},
		{"unclosed tags", "<html><body><div><p>"},
		{"binary", "\x00\x01\x02\xff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				fields := New().Extract("UTF-8", "http://example.com/", tt.page)
				assert.Empty(t, fields.Title)
				assert.Empty(t, fields.LinkText)
				assert.Empty(t, fields.Links)
			})
		})
	}
}

func TestExtract_PlainTextBody(t *testing.T) {
	fields := New().Extract("UTF-8", "", "just some words")

	assert.Empty(t, fields.Title)
	assert.Equal(t, "just some words", fields.BodyText)
}
