package vdom

import (
	"fmt"
	"io"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ToHTMLNode converts a VNode tree into a detached *html.Node tree.
// A nil VNode, or a text node with no content, yields nil.
func ToHTMLNode(n *VNode) *html.Node {
	if n == nil {
		return nil
	}

	if n.Tag == TextTag {
		if n.Content == "" {
			return nil
		}
		return &html.Node{Type: html.TextNode, Data: n.Content}
	}

	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
		Attr:     htmlAttributes(n.Attributes),
	}

	if n.Content != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
	}
	for _, child := range n.Children {
		if c := ToHTMLNode(child); c != nil {
			el.AppendChild(c)
		}
	}
	return el
}

// htmlAttributes converts VNode attributes to html attributes with a stable
// order. Boolean true renders as an empty attribute, false is omitted, and
// function values (event handlers) are skipped.
func htmlAttributes(attrs map[string]any) []html.Attribute {
	if len(attrs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]html.Attribute, 0, len(keys))
	for _, k := range keys {
		switch v := attrs[k].(type) {
		case bool:
			if v {
				out = append(out, html.Attribute{Key: k})
			}
		case func():
		case string:
			out = append(out, html.Attribute{Key: k, Val: v})
		default:
			out = append(out, html.Attribute{Key: k, Val: fmt.Sprint(v)})
		}
	}
	return out
}

// RenderHTML writes the HTML serialization of n to w.
func RenderHTML(w io.Writer, n *VNode) error {
	hn := ToHTMLNode(n)
	if hn == nil {
		return nil
	}
	if err := html.Render(w, hn); err != nil {
		return errors.Wrapf(err, "render <%s>", n.Tag)
	}
	return nil
}
