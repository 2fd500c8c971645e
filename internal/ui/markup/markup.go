// Package markup writes escaped HTML for hand-built templ components.
package markup

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Attr is one HTML attribute.
type Attr struct {
	Key     string
	Value   string
	boolean bool
	skip    bool
}

// A is an attribute that is always rendered.
func A(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// Opt is an attribute that is omitted when value is empty.
func Opt(key, value string) Attr {
	return Attr{Key: key, Value: value, skip: value == ""}
}

// Bool is a boolean attribute rendered only when on.
func Bool(key string, on bool) Attr {
	return Attr{Key: key, boolean: true, skip: !on}
}

// URL is an href-style attribute sanitized through templ. Empty values are omitted.
func URL(key, value string) Attr {
	if value == "" {
		return Attr{Key: key, skip: true}
	}
	return Attr{Key: key, Value: string(templ.URL(value))}
}

// Class joins class names through templ, dropping falsy conditional entries.
func Class(classes ...any) Attr {
	return Opt("class", templ.Classes(classes...).String())
}

// TestID is the data-testid attribute.
func TestID(id string) Attr {
	return Opt("data-testid", id)
}

// Writer accumulates the first write error.
type Writer struct {
	w   io.Writer
	err error
}

// New wraps w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes trusted markup.
func (m *Writer) Raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

// Text writes escaped text.
func (m *Writer) Text(s string) {
	m.Raw(templ.EscapeString(s))
}

// Open writes a start tag.
func (m *Writer) Open(tag string, attrs ...Attr) {
	m.Raw("<" + tag)
	m.attrs(attrs)
	m.Raw(">")
}

// Void writes a void element such as <img> or <input>.
func (m *Writer) Void(tag string, attrs ...Attr) {
	m.Open(tag, attrs...)
}

// Close writes an end tag.
func (m *Writer) Close(tag string) {
	m.Raw("</" + tag + ">")
}

// Element writes a start tag, escaped text and an end tag.
func (m *Writer) Element(tag string, text string, attrs ...Attr) {
	m.Open(tag, attrs...)
	m.Text(text)
	m.Close(tag)
}

// Component renders a nested component.
func (m *Writer) Component(ctx context.Context, c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(ctx, m.w)
}

// Err returns the first write error.
func (m *Writer) Err() error {
	return m.err
}

func (m *Writer) attrs(attrs []Attr) {
	for _, attr := range attrs {
		if attr.skip || attr.Key == "" {
			continue
		}
		if attr.boolean {
			m.Raw(" " + attr.Key)
			continue
		}
		m.Raw(" " + attr.Key + `="` + templ.EscapeString(attr.Value) + `"`)
	}
}
