// Package markdown renders user-supplied Markdown into HTML that is safe to
// embed in the SPA. Raw HTML in the source is allowed through goldmark and
// then stripped down by bluemonday's UGC policy.
package markdown

import (
	"bytes"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	once   sync.Once
	md     goldmark.Markdown
	policy *bluemonday.Policy
)

func setup() {
	md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithUnsafe(), // sanitized below
		),
	)
	policy = bluemonday.UGCPolicy()
}

// Render converts Markdown source to sanitized HTML.
func Render(source string) (string, error) {
	once.Do(setup)

	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return policy.Sanitize(buf.String()), nil
}
