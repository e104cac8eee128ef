package timeline

import (
	"strings"

	"github.com/bytedance/sonic"
	"github.com/tidwall/pretty"

	"github.com/sadopc/hartl/internal/har"
)

const (
	placeholderEmpty = "<EMPTY>"
	placeholderError = "<ERROR>"
)

// ContentKind tells how a body was resolved.
type ContentKind int

const (
	ContentEmpty ContentKind = iota
	ContentError
	ContentText
	ContentJSON
)

// Content is a resolved request or response body.
type Content struct {
	Kind ContentKind
	// Text is the raw body, the pretty-printed JSON body, or the error
	// message to display.
	Text string
}

// String returns the text shown in the detail panel.
func (c Content) String() string {
	if c.Kind == ContentEmpty {
		return placeholderEmpty
	}
	return c.Text
}

// Width 0 puts every array element on its own line.
var jsonPretty = &pretty.Options{
	Width:    0,
	Indent:   "    ",
	SortKeys: true,
}

// IsJSONMime reports whether a declared mime type is one of the exact JSON
// variants that get pretty-printed.
func IsJSONMime(mime string) bool {
	switch mime {
	case "application/json",
		"application/json; charset=utf-8",
		"application/json;charset=utf-8":
		return true
	}
	return false
}

// FormatJSON validates text and re-serializes it with four-space
// indentation and sorted keys.
func FormatJSON(text string) (string, error) {
	var v any
	if err := sonic.UnmarshalString(text, &v); err != nil {
		return "", err
	}
	out := pretty.PrettyOptions([]byte(text), jsonPretty)
	return strings.TrimRight(string(out), "\n"), nil
}

func requestContent(p *har.PostData) Content {
	if p == nil {
		return Content{Kind: ContentEmpty}
	}
	if !IsJSONMime(p.MimeType) {
		return Content{Kind: ContentText, Text: p.Text}
	}
	out, err := FormatJSON(p.Text)
	if err != nil {
		return Content{Kind: ContentError, Text: placeholderError}
	}
	return Content{Kind: ContentJSON, Text: out}
}

func responseContent(r har.Response) Content {
	c := r.Content
	if c == nil || c.Text == "" || (r.BodySize.Int() <= 0 && c.Size.Int() <= 0) {
		return Content{Kind: ContentEmpty}
	}
	if !IsJSONMime(c.MimeType) {
		return Content{Kind: ContentText, Text: c.Text}
	}
	out, err := FormatJSON(c.Text)
	if err != nil {
		return Content{Kind: ContentError, Text: err.Error()}
	}
	return Content{Kind: ContentJSON, Text: out}
}
