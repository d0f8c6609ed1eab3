// Package news fetches top headlines. Two sources implement the same
// Provider interface: a NewsAPI-compatible JSON endpoint and plain RSS/Atom
// feeds. Descriptions are sanitized down to plain text either way.
package news

import (
	"context"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/delta/pkg/domain"
)

// Provider delivers the current top headlines, newest first
type Provider interface {
	TopHeadlines(ctx context.Context, limit int) ([]domain.Headline, error)
}

var sanitizePolicy = bluemonday.StrictPolicy()

// cleanText strips any HTML markup and collapses whitespace so the text is
// safe to speak or print as a single line
func cleanText(s string) string {
	stripped := sanitizePolicy.Sanitize(s)
	unescaped := html.UnescapeString(stripped)
	return strings.Join(strings.Fields(unescaped), " ")
}
