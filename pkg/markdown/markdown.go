// Package markdown renders model answers to HTML that is safe to inject into
// the chat window.
package markdown

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

var (
	extensions = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock
	htmlFlags  = html.CommonFlags | html.HrefTargetBlank
	policy     = bluemonday.UGCPolicy()
)

func init() {
	policy.AddTargetBlankToFullyQualifiedLinks(true)
}

// ToHTML renders markdown and strips anything outside the UGC allow-list.
func ToHTML(md string) string {
	if md == "" {
		return ""
	}

	// parser and renderer keep state, so both are built per call
	p := parser.NewWithExtensions(extensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})
	unsafeHTML := markdown.ToHTML([]byte(md), p, renderer)

	return string(policy.SanitizeBytes(unsafeHTML))
}
