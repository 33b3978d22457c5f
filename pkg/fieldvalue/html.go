package fieldvalue

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// constraintAttrs are the native constraint attributes kept on Input.Attrs.
var constraintAttrs = []string{"min", "max", "minlength", "maxlength", "pattern"}

// ParseHTML reads the named form controls of an HTML document (or fragment)
// into a Form, in document order. Buttons are ignored. A <select> reports its
// first selected option, falling back to the first option of a single select.
func ParseHTML(r io.Reader) (*Form, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errors.Join(ErrInvalidHTML, err)
	}

	f := &Form{}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if in, ok := controlFromNode(n); ok {
				f.inputs = append(f.inputs, in)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return f, nil
}

func controlFromNode(n *html.Node) (Input, bool) {
	name, ok := attr(n, "name")
	if !ok || name == "" {
		return Input{}, false
	}

	in := Input{Name: name}
	switch n.DataAtom {
	case atom.Input:
		typ, _ := attr(n, "type")
		typ = strings.ToLower(strings.TrimSpace(typ))
		if typ == "" {
			typ = "text"
		}
		switch typ {
		case "submit", "button", "reset", "image":
			return Input{}, false
		}
		in.Type = typ
		in.Value, _ = attr(n, "value")
		if typ == TypeCheckbox || typ == TypeRadio {
			_, in.Checked = attr(n, "checked")
			if _, hasValue := attr(n, "value"); !hasValue {
				in.Value = "on"
			}
		}
	case atom.Select:
		in.Value = selectedOption(n)
	case atom.Textarea:
		in.Value = textContent(n)
	default:
		return Input{}, false
	}

	_, in.Required = attr(n, "required")
	for _, a := range constraintAttrs {
		if v, ok := attr(n, a); ok {
			if in.Attrs == nil {
				in.Attrs = make(map[string]string)
			}
			in.Attrs[a] = v
		}
	}
	return in, true
}

func selectedOption(sel *html.Node) string {
	_, multiple := attr(sel, "multiple")
	var first *html.Node
	var selected *html.Node

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if selected != nil {
			return
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.Option {
			if first == nil {
				first = n
			}
			if _, ok := attr(n, "selected"); ok {
				selected = n
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(sel)

	switch {
	case selected != nil:
		return optionValue(selected)
	case first != nil && !multiple:
		return optionValue(first)
	default:
		return ""
	}
}

func optionValue(opt *html.Node) string {
	if v, ok := attr(opt, "value"); ok {
		return v
	}
	return strings.TrimSpace(textContent(opt))
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
