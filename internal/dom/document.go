package dom

import (
	"fmt"
	"html"
	"io"
	"strings"
)

// Document models the live page that rendered fragments are appended to.
// The zero value has no body; appending to it fails, which callers treat as
// a startup-fatal integration error.
type Document struct {
	title string
	sheet *StyleSheet
	body  *Fragment
}

// NewDocument creates a document with an empty body. A nil sheet gets a
// fresh StyleSheet.
func NewDocument(sheet *StyleSheet) *Document {
	if sheet == nil {
		sheet = NewStyleSheet()
	}
	return &Document{
		sheet: sheet,
		body:  NewElement("body"),
	}
}

// SetTitle sets the document title.
func (d *Document) SetTitle(title string) {
	d.title = title
}

// Body returns the document body element.
func (d *Document) Body() (*Fragment, error) {
	if d == nil || d.body == nil {
		return nil, fmt.Errorf("document has no body")
	}
	return d.body, nil
}

// StyleSheet returns the document's stylesheet.
func (d *Document) StyleSheet() *StyleSheet {
	if d == nil {
		return nil
	}
	return d.sheet
}

// AppendChild appends a root fragment to the document body.
func (d *Document) AppendChild(f *Fragment) error {
	body, err := d.Body()
	if err != nil {
		return err
	}
	body.WithChildren(f)
	return nil
}

// WriteHTML renders the full page, including a style element holding every
// class registered on the document's stylesheet. The style element is
// emitted verbatim: CSS is not HTML text content.
func (d *Document) WriteHTML(w io.Writer) error {
	body, err := d.Body()
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("<!doctype html><html><head>")
	if d.title != "" {
		b.WriteString("<title>")
		b.WriteString(html.EscapeString(d.title))
		b.WriteString("</title>")
	}
	if css := d.sheet.CSS(); css != "" {
		b.WriteString("<style>\n")
		b.WriteString(css)
		b.WriteString("</style>")
	}
	b.WriteString("</head>")
	b.WriteString(body.String())
	b.WriteString("</html>")

	_, err = io.WriteString(w, b.String())
	return err
}
