package dom

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// ParseFragment parses a raw markup string into a fragment tree. The input
// must contain exactly one root element. Handlers and style declarations are
// never produced by parsing; attributes (including inline style attributes)
// are preserved verbatim.
func ParseFragment(markup string) (*Fragment, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(markup); err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("parse markup: no root element")
	}
	return fromElement(root), nil
}

func fromElement(el *etree.Element) *Fragment {
	f := NewElement(el.Tag)
	for _, a := range el.Attr {
		key := a.Key
		if a.Space != "" {
			key = a.Space + ":" + a.Key
		}
		f.WithAttr(key, a.Value)
	}
	for _, token := range el.Child {
		switch child := token.(type) {
		case *etree.Element:
			f.WithChildren(fromElement(child))
		case *etree.CharData:
			if text := strings.TrimSpace(child.Data); text != "" {
				f.WithChildren(NewText(text))
			}
		}
	}
	return f
}
