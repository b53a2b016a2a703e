package utils

import (
	"bytes"
	"html/template"
	"net/url"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	// giphyMedia is the only image source a board renders.
	giphyMedia = regexp.MustCompile(`^https://(media\d*|i)\.giphy\.com/`)
	headingID  = regexp.MustCompile(`^[\p{L}\p{N}_-]+$`)
	checkbox   = regexp.MustCompile(`^checkbox$`)

	summaryMarkdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)
	summaryPolicy = newSummaryPolicy()
)

// newSummaryPolicy allows what a rendered board summary contains: headings,
// post lists, action checkboxes, links and Giphy images.
func newSummaryPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowStandardURLs()
	p.AllowElements("p", "br", "hr", "strong", "em", "del", "code", "pre", "blockquote")
	p.AllowLists()
	p.AllowTables()

	p.AllowElements("h1", "h2", "h3", "h4", "h5", "h6")
	p.AllowAttrs("id").Matching(headingID).OnElements("h1", "h2", "h3", "h4", "h5", "h6")

	p.AllowAttrs("href").OnElements("a")
	p.RequireNoReferrerOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)

	p.AllowAttrs("src").Matching(giphyMedia).OnElements("img")
	p.AllowAttrs("alt").OnElements("img")

	// GFM task list items
	p.AllowAttrs("type").Matching(checkbox).OnElements("input")
	p.AllowAttrs("checked", "disabled").OnElements("input")
	return p
}

// RenderMarkdown converts board markdown to sanitized HTML. Post content is
// user supplied, so the output always goes through the summary policy.
func RenderMarkdown(source string) template.HTML {
	var buf bytes.Buffer
	if err := summaryMarkdown.Convert([]byte(source), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(summaryPolicy.SanitizeBytes(buf.Bytes()))
}

// GiphyURL is the animated image for a Giphy media id.
func GiphyURL(id string) string {
	return "https://media.giphy.com/media/" + url.PathEscape(id) + "/giphy.gif"
}
