// Package htmldoc provides an in-memory document host backed by
// golang.org/x/net/html. It lets the same mount path the browser uses run
// natively, for pre-rendering pages and for tests.
package htmldoc

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"

	"github.com/vcrobe/ecomarket/vdom"
)

// Compile-time assertion that Document satisfies vdom.Host.
var _ vdom.Host = (*Document)(nil)

// Document is a parsed HTML document that rendered trees can be mounted into.
// The zero value has no document and fails every lookup, like a host
// environment without a DOM.
type Document struct {
	root *html.Node
}

// Parse reads a complete HTML document from r.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parse document")
	}
	return &Document{root: root}, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Shell returns a minimal document with a title, an optional stylesheet
// link, and an empty body.
func Shell(title, stylesheet string) (*Document, error) {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html lang="ru"><head><meta charset="utf-8">`)
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	b.WriteString("<title>" + html.EscapeString(title) + "</title>")
	if stylesheet != "" {
		b.WriteString(`<link rel="stylesheet" href="` + html.EscapeString(stylesheet) + `">`)
	}
	b.WriteString("</head><body></body></html>")
	return ParseString(b.String())
}

// Lookup resolves a selector to a target. Supported selectors are a bare
// tag name ("body"), an id ("#app") and a class (".root"); the first match
// in document order wins.
func (d *Document) Lookup(selector string) (vdom.Target, error) {
	if d == nil || d.root == nil {
		return nil, vdom.TargetUnavailable(selector, "no document")
	}

	match, err := matcher(selector)
	if err != nil {
		return nil, err
	}

	el := find(d.root, match)
	if el == nil {
		return nil, vdom.TargetUnavailable(selector, "mount element not found")
	}
	return &target{el: el}, nil
}

// Render writes the whole document, doctype included.
func (d *Document) Render(w io.Writer) error {
	if d == nil || d.root == nil {
		return errors.New("render: empty document")
	}
	if err := html.Render(w, d.root); err != nil {
		return errors.Wrap(err, "render document")
	}
	return nil
}

// String renders the document, returning "" on failure.
func (d *Document) String() string {
	var b strings.Builder
	if err := d.Render(&b); err != nil {
		return ""
	}
	return b.String()
}

func matcher(selector string) (func(*html.Node) bool, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" || strings.ContainsAny(selector, " >+~[:*,") {
		return nil, vdom.TargetUnavailable(selector, "unsupported selector")
	}

	switch selector[0] {
	case '#':
		id := selector[1:]
		return func(n *html.Node) bool { return attr(n, "id") == id }, nil
	case '.':
		class := selector[1:]
		return func(n *html.Node) bool {
			for _, c := range strings.Fields(attr(n, "class")) {
				if c == class {
					return true
				}
			}
			return false
		}, nil
	default:
		tag := strings.ToLower(selector)
		return func(n *html.Node) bool { return n.Data == tag }, nil
	}
}

func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, match); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

type target struct {
	el *html.Node
}

func (t *target) Clear() {
	for c := t.el.FirstChild; c != nil; {
		next := c.NextSibling
		t.el.RemoveChild(c)
		c = next
	}
}

func (t *target) Append(n *vdom.VNode) error {
	hn := vdom.ToHTMLNode(n)
	if hn == nil {
		return nil
	}
	t.el.AppendChild(hn)
	return nil
}
