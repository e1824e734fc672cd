package vdom

import "strings"

// TextTag is the tag used for bare text nodes that have no element wrapper.
const TextTag = "#text"

// VNode represents a virtual DOM node.
// Trees are built once by a component's Render and are not mutated afterwards.
type VNode struct {
	Tag        string         // The HTML tag name
	Attributes map[string]any // The attributes of the node
	Children   []*VNode       // The child nodes
	Content    string         // The text content of the node
}

// NewVNode creates a new VNode.
// Nil children are dropped so callers can build trees with optional branches.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	var kept []*VNode
	for _, c := range children {
		if c != nil {
			kept = append(kept, c)
		}
	}
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   kept,
		Content:    content,
	}
}

// Text creates a bare text node.
func Text(content string) *VNode {
	return NewVNode(TextTag, nil, nil, content)
}

// Paragraph creates a <p> VNode with the given text and allows passing attributes.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// Heading creates an <h1>..<h6> VNode. Levels outside 1..6 are clamped.
func Heading(level int, text string, attrs map[string]any) *VNode {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return NewVNode("h"+string(rune('0'+level)), attrs, nil, text)
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Class builds an attribute map holding a single "class" attribute.
// Each argument may itself contain several space separated names; empty
// and repeated names are dropped and declaration order is kept.
func Class(names ...string) map[string]any {
	seen := make(map[string]bool)
	var out []string
	for _, group := range names {
		for _, name := range strings.Fields(group) {
			if seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, name)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return map[string]any{"class": strings.Join(out, " ")}
}

// Classes returns the node's class names in declaration order.
func (v *VNode) Classes() []string {
	if v == nil || v.Attributes == nil {
		return nil
	}
	s, ok := v.Attributes["class"].(string)
	if !ok {
		return nil
	}
	return strings.Fields(s)
}

// HasClass reports whether name is one of the node's classes.
func (v *VNode) HasClass(name string) bool {
	for _, c := range v.Classes() {
		if c == name {
			return true
		}
	}
	return false
}

// IsHeading reports whether the node is an <h1>..<h6> element.
func (v *VNode) IsHeading() bool {
	return v != nil && len(v.Tag) == 2 && v.Tag[0] == 'h' && v.Tag[1] >= '1' && v.Tag[1] <= '6'
}

// TextContent returns the text of the node, concatenating the text of
// its descendants in document order, like the DOM property of the same name.
func (v *VNode) TextContent() string {
	if v == nil {
		return ""
	}
	var b strings.Builder
	Walk(v, func(n *VNode) bool {
		b.WriteString(n.Content)
		return true
	})
	return b.String()
}

// Walk visits n and its descendants depth-first in document order.
// Returning false from fn skips the children of the current node.
func Walk(n *VNode, fn func(*VNode) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		Walk(child, fn)
	}
}

// FindAll returns every node under root (root included) with the given tag.
func FindAll(root *VNode, tag string) []*VNode {
	var found []*VNode
	Walk(root, func(n *VNode) bool {
		if n.Tag == tag {
			found = append(found, n)
		}
		return true
	})
	return found
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n *VNode) int {
	total := 0
	Walk(n, func(*VNode) bool {
		total++
		return true
	})
	return total
}
