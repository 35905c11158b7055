package dom

import (
	"html"
	"strings"
)

// Attr is a single markup attribute.
type Attr struct {
	Key   string
	Value string
}

// StyleDecl is one declarative style property.
type StyleDecl struct {
	Property string
	Value    string
}

// Fragment is a retained renderable node: either an element carrying a tag,
// attributes, style declarations, classes, handlers and children, or a bare
// text node (empty tag). Fragments are built fluently and rendered to HTML.
type Fragment struct {
	tag      string
	text     string
	attrs    []Attr
	classes  []string
	styles   []StyleDecl
	handlers map[EventType][]Handler
	children []*Fragment
}

// NewElement creates an element fragment with the given tag name.
func NewElement(tag string) *Fragment {
	return &Fragment{tag: tag}
}

// NewText creates a text fragment.
func NewText(content string) *Fragment {
	return &Fragment{text: content}
}

// WithAttr appends a markup attribute.
func (f *Fragment) WithAttr(key, value string) *Fragment {
	f.attrs = append(f.attrs, Attr{Key: key, Value: value})
	return f
}

// WithClass appends one or more class names.
func (f *Fragment) WithClass(names ...string) *Fragment {
	f.classes = append(f.classes, names...)
	return f
}

// WithStyle appends a declarative style property.
func (f *Fragment) WithStyle(property, value string) *Fragment {
	f.styles = append(f.styles, StyleDecl{Property: property, Value: value})
	return f
}

// WithChildren appends child fragments.
func (f *Fragment) WithChildren(children ...*Fragment) *Fragment {
	f.children = append(f.children, children...)
	return f
}

// On registers a handler for the given event type.
func (f *Fragment) On(t EventType, h Handler) *Fragment {
	if f.handlers == nil {
		f.handlers = make(map[EventType][]Handler)
	}
	f.handlers[t] = append(f.handlers[t], h)
	return f
}

// IsText reports whether the fragment is a bare text node.
func (f *Fragment) IsText() bool {
	return f.tag == ""
}

// Tag returns the element tag name, or the empty string for text nodes.
func (f *Fragment) Tag() string {
	return f.tag
}

// Text returns the content of a text node.
func (f *Fragment) Text() string {
	return f.text
}

// Attr looks up a markup attribute by key.
func (f *Fragment) Attr(key string) (string, bool) {
	for _, a := range f.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Style looks up a declarative style property.
func (f *Fragment) Style(property string) (string, bool) {
	for _, d := range f.styles {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

// StyleCount returns the number of style declarations on the fragment.
func (f *Fragment) StyleCount() int {
	return len(f.styles)
}

// Classes returns a copy of the fragment's class list.
func (f *Fragment) Classes() []string {
	out := make([]string, len(f.classes))
	copy(out, f.classes)
	return out
}

// Children returns a copy of the child slice. The children themselves are
// shared, not copied.
func (f *Fragment) Children() []*Fragment {
	out := make([]*Fragment, len(f.children))
	copy(out, f.children)
	return out
}

// Dispatch delivers an event to every handler registered on this fragment
// for the event's type. Delivery is synchronous and in registration order.
func (f *Fragment) Dispatch(e Event) {
	for _, h := range f.handlers[e.Type] {
		h(e)
	}
}

// Find returns the first fragment in depth-first order (the receiver
// included) satisfying pred, or nil.
func (f *Fragment) Find(pred func(*Fragment) bool) *Fragment {
	if f == nil {
		return nil
	}
	if pred(f) {
		return f
	}
	for _, child := range f.children {
		if match := child.Find(pred); match != nil {
			return match
		}
	}
	return nil
}

// Clone produces a deep copy of the fragment tree. Handlers are not carried
// over: a clone is an independent rendering of static content, not a second
// event subscriber.
func (f *Fragment) Clone() *Fragment {
	if f == nil {
		return nil
	}

	clone := &Fragment{
		tag:  f.tag,
		text: f.text,
	}
	if len(f.attrs) > 0 {
		clone.attrs = make([]Attr, len(f.attrs))
		copy(clone.attrs, f.attrs)
	}
	if len(f.classes) > 0 {
		clone.classes = make([]string, len(f.classes))
		copy(clone.classes, f.classes)
	}
	if len(f.styles) > 0 {
		clone.styles = make([]StyleDecl, len(f.styles))
		copy(clone.styles, f.styles)
	}
	if len(f.children) > 0 {
		clone.children = make([]*Fragment, len(f.children))
		for i, child := range f.children {
			clone.children[i] = child.Clone()
		}
	}
	return clone
}

// String renders the fragment tree to HTML.
func (f *Fragment) String() string {
	var b strings.Builder
	f.render(&b)
	return b.String()
}

func (f *Fragment) render(b *strings.Builder) {
	if f.IsText() {
		b.WriteString(html.EscapeString(f.text))
		return
	}

	b.WriteByte('<')
	b.WriteString(f.tag)
	for _, a := range f.attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.Value))
		b.WriteByte('"')
	}
	if len(f.classes) > 0 {
		b.WriteString(` class="`)
		b.WriteString(html.EscapeString(strings.Join(f.classes, " ")))
		b.WriteByte('"')
	}
	if len(f.styles) > 0 {
		b.WriteString(` style="`)
		b.WriteString(html.EscapeString(serializeStyles(f.styles)))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	for _, child := range f.children {
		child.render(b)
	}
	b.WriteString("</")
	b.WriteString(f.tag)
	b.WriteByte('>')
}

func serializeStyles(decls []StyleDecl) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.Property + ": " + d.Value
	}
	return strings.Join(parts, "; ")
}
