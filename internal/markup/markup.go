// Package markup is the small element-tree API resources are materialized
// into. It wraps golang.org/x/net/html nodes so callers can build elements,
// set attributes and text, and serialize them compactly or indented.
package markup

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// indentUnit is the per-level indentation used by pretty rendering.
const indentUnit = "  "

// CreateRoot returns a new parentless element.
func CreateRoot(tag string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// AppendChild creates an element and appends it to parent.
// A nil parent yields a root element.
func AppendChild(parent *html.Node, tag string) *html.Node {
	el := CreateRoot(tag)
	if parent != nil {
		parent.AppendChild(el)
	}
	return el
}

// SetAttr sets key to val, replacing an existing attribute with the same key.
// Attributes keep insertion order.
func SetAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key && n.Attr[i].Namespace == "" {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// Attr returns the value of key.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key && a.Namespace == "" {
			return a.Val, true
		}
	}
	return "", false
}

// SetText replaces all children of n with a single text node.
func SetText(n *html.Node, text string) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// Text returns the concatenated text of n's direct text children.
func Text(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// Render serializes n to w. Compact output has no added whitespace.
// Pretty output puts each element with element children on its own lines.
func Render(w io.Writer, n *html.Node, pretty bool) error {
	if !pretty {
		return html.Render(w, n)
	}

	var b strings.Builder
	if err := renderPretty(&b, n, 0); err != nil {
		return err
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderString is Render into a string.
func RenderString(n *html.Node, pretty bool) (string, error) {
	var b strings.Builder
	if err := Render(&b, n, pretty); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderPretty(b *strings.Builder, n *html.Node, depth int) error {
	switch n.Type {
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := renderPretty(b, c, depth); err != nil {
				return err
			}
		}
		return nil
	case html.TextNode:
		text := strings.TrimSpace(n.Data)
		if text == "" {
			return nil
		}
		b.WriteString(strings.Repeat(indentUnit, depth))
		b.WriteString(html.EscapeString(text))
		b.WriteByte('\n')
		return nil
	case html.ElementNode:
		if !hasElementChild(n) || isRawText(n) {
			return renderLine(b, n, depth)
		}
	default:
		return renderLine(b, n, depth)
	}

	open, closeTag, err := splitTags(n)
	if err != nil {
		return err
	}

	indent := strings.Repeat(indentUnit, depth)
	b.WriteString(indent + open + "\n")
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := renderPretty(b, c, depth+1); err != nil {
			return err
		}
	}
	b.WriteString(indent + closeTag + "\n")
	return nil
}

// renderLine writes n compactly on a single indented line.
func renderLine(b *strings.Builder, n *html.Node, depth int) error {
	b.WriteString(strings.Repeat(indentUnit, depth))
	if err := html.Render(b, n); err != nil {
		return err
	}
	b.WriteByte('\n')
	return nil
}

// splitTags renders the opening and closing tags of element n.
func splitTags(n *html.Node) (open, closeTag string, err error) {
	shallow := &html.Node{
		Type:      n.Type,
		Data:      n.Data,
		DataAtom:  n.DataAtom,
		Namespace: n.Namespace,
		Attr:      n.Attr,
	}

	var b strings.Builder
	if err := html.Render(&b, shallow); err != nil {
		return "", "", err
	}

	rendered := b.String()
	closeTag = "</" + n.Data + ">"
	return strings.TrimSuffix(rendered, closeTag), closeTag, nil
}

func hasElementChild(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return true
		}
	}
	return false
}

// isRawText reports elements whose content must not be reindented.
func isRawText(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Pre, atom.Textarea:
		return true
	}
	return false
}
