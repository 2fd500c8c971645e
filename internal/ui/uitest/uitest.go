// Package uitest renders components and queries the resulting HTML by
// data-testid for component tests.
package uitest

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
)

// TestIDAttr is the attribute components use for stable test identifiers.
const TestIDAttr = "data-testid"

// Render renders c and parses the output as an HTML fragment body.
func Render(t testing.TB, c templ.Component) *html.Node {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render component: %v", err)
	}
	return Parse(t, buf.String())
}

// RenderString renders c and returns the raw markup.
func RenderString(t testing.TB, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render component: %v", err)
	}
	return buf.String()
}

// Parse parses markup into a document tree.
func Parse(t testing.TB, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// Find returns the first element carrying testID, or nil.
func Find(root *html.Node, testID string) *html.Node {
	if testID == "" {
		return nil
	}
	var found *html.Node
	walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && Attr(n, TestIDAttr) == testID {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAll returns every element carrying testID in document order.
func FindAll(root *html.Node, testID string) []*html.Node {
	var out []*html.Node
	walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && Attr(n, TestIDAttr) == testID {
			out = append(out, n)
		}
		return true
	})
	return out
}

// MustFind is Find that fails the test when testID is missing.
func MustFind(t testing.TB, root *html.Node, testID string) *html.Node {
	t.Helper()
	n := Find(root, testID)
	if n == nil {
		t.Fatalf("element with %s=%q not found", TestIDAttr, testID)
	}
	return n
}

// Attr returns the value of attribute key on n.
func Attr(n *html.Node, key string) string {
	value, _ := LookupAttr(n, key)
	return value
}

// LookupAttr reports the value of attribute key and whether it is present.
func LookupAttr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// HasClass reports whether n's class list contains class.
func HasClass(n *html.Node, class string) bool {
	for _, field := range strings.Fields(Attr(n, "class")) {
		if field == class {
			return true
		}
	}
	return false
}

// Text returns the whitespace-collapsed text content of n.
func Text(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	walk(n, func(child *html.Node) bool {
		if child.Type == html.TextNode {
			b.WriteString(child.Data)
			b.WriteByte(' ')
		}
		return true
	})
	return strings.Join(strings.Fields(b.String()), " ")
}

// AnyAttr reports whether any element under root has one of keys. Icon
// sprite references (<use href="#...">) are not interactions and are skipped.
func AnyAttr(root *html.Node, keys ...string) bool {
	found := false
	walk(root, func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.Data == "use" {
			return true
		}
		for _, key := range keys {
			if _, ok := LookupAttr(n, key); ok {
				found = true
				return false
			}
		}
		return true
	})
	return found
}

// walk visits n depth-first until visit returns false.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if !visit(n) {
		return false
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if !walk(child, visit) {
			return false
		}
	}
	return true
}
