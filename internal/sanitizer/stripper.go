package sanitizer

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

// HTMLStripperer removes markup from user supplied text.
type HTMLStripperer interface {
	StripHTML(s string) string
}

type HTMLStripper struct {
	bm *bluemonday.Policy
}

// NewHTMLStripper return a new instance of blue monday policy
func NewHTMLStripper() *HTMLStripper {
	return &HTMLStripper{
		bm: bluemonday.StrictPolicy(),
	}
}

// StripHTML drops all tags. The policy escapes what is left, so entities are
// decoded again to keep plain text such as "Bosnia & Herzegovina" searchable.
func (hs *HTMLStripper) StripHTML(s string) string {
	return html.UnescapeString(hs.bm.Sanitize(s))
}
