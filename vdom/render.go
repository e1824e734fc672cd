//go:build js || wasm
// +build js wasm

package vdom

import (
	"syscall/js"

	"github.com/pkg/errors"
)

// Compile-time assertion that the browser host satisfies Host.
var _ Host = BrowserHost{}

// supportedTags lists the element tags createElement knows how to build.
var supportedTags = map[string]bool{
	"div": true, "p": true, "span": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "li": true, "a": true,
	"nav": true, "section": true, "article": true, "header": true, "footer": true, "main": true, "aside": true,
}

// BrowserHost resolves mount selectors against the page's global document.
type BrowserHost struct{}

// Lookup returns the first element matching the CSS selector.
func (BrowserHost) Lookup(selector string) (Target, error) {
	if selector == "" {
		return nil, TargetUnavailable(selector, "empty selector")
	}

	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return nil, TargetUnavailable(selector, "no document")
	}

	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		return nil, TargetUnavailable(selector, "mount element not found")
	}

	return browserTarget{doc: doc, el: mount}, nil
}

type browserTarget struct {
	doc js.Value
	el  js.Value
}

// Clear sets innerHTML to an empty string to drop all children.
func (t browserTarget) Clear() {
	t.el.Set("innerHTML", "")
}

// Append creates the DOM subtree for n and appends it to the target.
func (t browserTarget) Append(n *VNode) error {
	if n == nil {
		return nil
	}
	el, err := createElement(t.doc, n)
	if err != nil {
		return err
	}
	if el.Truthy() {
		t.el.Call("appendChild", el)
	}
	return nil
}

// setAttributeValue sets an attribute on an element, handling boolean attributes.
func setAttributeValue(el js.Value, key string, value any) {
	switch v := value.(type) {
	case bool:
		if v {
			el.Call("setAttribute", key, "")
		}
	case func():
		// handlers are not rendered as attributes
	case string:
		el.Call("setAttribute", key, v)
	default:
		el.Call("setAttribute", key, js.ValueOf(v))
	}
}

func createElement(doc js.Value, n *VNode) (js.Value, error) {
	if n.Tag == TextTag {
		// Pure text node - no HTML element wrapper
		if n.Content == "" {
			return js.Undefined(), nil
		}
		return doc.Call("createTextNode", n.Content), nil
	}

	if !supportedTags[n.Tag] {
		return js.Undefined(), errors.Errorf("unsupported tag <%s>", n.Tag)
	}

	el := doc.Call("createElement", n.Tag)
	for k, v := range n.Attributes {
		setAttributeValue(el, k, v)
	}

	if n.Content != "" {
		el.Set("textContent", n.Content)
	}

	for _, child := range n.Children {
		childEl, err := createElement(doc, child)
		if err != nil {
			return js.Undefined(), err
		}
		if childEl.Truthy() {
			el.Call("appendChild", childEl)
		}
	}

	return el, nil
}
