package utils

import (
	"bytes"
	"html/template"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// bodyRenderer turns article bodies into HTML. goldmark drops raw HTML from the
// source and bluemonday filters whatever the markdown produced.
type bodyRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func newBodyRenderer() *bodyRenderer {
	p := bluemonday.UGCPolicy()
	p.AllowImages()
	p.AllowAttrs("loading").Matching(regexp.MustCompile(`^lazy$`)).OnElements("img")
	p.RequireNoFollowOnFullyQualifiedLinks(true)
	p.RequireNoReferrerOnFullyQualifiedLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)

	return &bodyRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
		policy: p,
	}
}

func (r *bodyRenderer) render(source string) template.HTML {
	if source == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes()))
}

var articleBodies = newBodyRenderer()

// RenderMarkdown renders an article body for the body_html field.
func RenderMarkdown(source string) template.HTML {
	return articleBodies.render(source)
}
