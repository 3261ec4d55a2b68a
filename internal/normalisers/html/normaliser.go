package html

import (
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"github.com/custodia-labs/clueconv/internal/core/domain"
	"github.com/custodia-labs/clueconv/internal/core/ports/driven"
	"github.com/custodia-labs/clueconv/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.FieldExtractor = (*Extractor)(nil)

// hiddenElements never contribute text.
const hiddenElements = "script, style, noscript, template"

// Extractor pulls title, body text and link text out of HTML pages.
// It is stateless and safe to share.
type Extractor struct{}

// New creates a new HTML field extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract parses page and returns its fields. encoding names the charset
// the page is decoded with; unknown labels leave the text as is. baseURL
// resolves relative links unless the page declares <base href>.
// Pages that cannot be parsed yield empty fields.
func (e *Extractor) Extract(encoding, baseURL, page string) (fields domain.HTMLFields) {
	defer func() {
		if r := recover(); r != nil {
			logger.Debug("HTML extraction failed for %s: %v", baseURL, r)
			fields = domain.HTMLFields{}
		}
	}()

	doc, err := goquery.NewDocumentFromReader(decode(encoding, page))
	if err != nil {
		logger.Debug("HTML parse failed for %s: %v", baseURL, err)
		return domain.HTMLFields{}
	}

	doc.Find(hiddenElements).Remove()

	fields.Title = collapse(doc.Find("title").First().Text())

	body := doc.Find("body")
	fields.BodyText = collapse(nodeText(body.Nodes))

	anchors := doc.Find("body a")
	var linkText []string
	anchors.Each(func(_ int, a *goquery.Selection) {
		if text := collapse(a.Text()); text != "" {
			linkText = append(linkText, text)
		}
	})
	fields.LinkText = strings.Join(linkText, " ")

	fields.Links = resolveLinks(doc, anchors, baseURL)
	fields.AllText = collapse(fields.Title + " " + fields.BodyText)

	return fields
}

// decode wraps page in a charset decoder for encoding.
func decode(encoding, page string) io.Reader {
	src := strings.NewReader(page)
	if encoding == "" {
		return src
	}
	r, err := charset.NewReaderLabel(encoding, src)
	if err != nil {
		return strings.NewReader(page)
	}
	return r
}

// nodeText concatenates the text nodes below nodes, separating them with spaces.
func nodeText(nodes []*xhtml.Node) string {
	var b strings.Builder
	var walk func(n *xhtml.Node)
	walk = func(n *xhtml.Node) {
		if n.Type == xhtml.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return b.String()
}

// resolveLinks returns the absolute targets of anchors. The document's
// <base href>, itself resolved against baseURL, takes precedence.
func resolveLinks(doc *goquery.Document, anchors *goquery.Selection, baseURL string) []string {
	base, _ := url.Parse(baseURL)
	if href, ok := doc.Find("base[href]").First().Attr("href"); ok {
		if declared, err := url.Parse(strings.TrimSpace(href)); err == nil {
			if base != nil {
				declared = base.ResolveReference(declared)
			}
			base = declared
		}
	}

	var links []string
	anchors.Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}
		if base != nil {
			ref = base.ResolveReference(ref)
		}
		if ref.IsAbs() {
			links = append(links, ref.String())
		}
	})
	return links
}

// collapse squeezes runs of whitespace into single spaces and trims the ends.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
