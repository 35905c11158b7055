package components

import "github.com/facetui/facet/internal/dom"

// buttonDecls is the fixed visual style shared by every button instance.
// The stylesheet memoizes the generated class, so all buttons rendered
// through one context share a single rule.
func buttonDecls() []dom.StyleDecl {
	return []dom.StyleDecl{
		{Property: "display", Value: "flex"},
		{Property: "align-items", Value: "center"},
		{Property: "justify-content", Value: "center"},
		{Property: "background", Value: "white"},
		{Property: "border", Value: "1px solid rgba(0, 0, 0, 0.2)"},
		{Property: "color", Value: "black"},
		{Property: "padding", Value: "0.5rem"},
		{Property: "border-radius", Value: "1000rem"},
		{Property: "cursor", Value: "pointer"},
	}
}

// Button renders a clickable pill-shaped container wrapping the supplied
// children. Each rendered instance owns an independent dispatcher: the click
// handler captures it, and a click sends exactly one ButtonClicked through
// it to onEvent.
func (c *Context) Button(children []*dom.Fragment, onEvent func(ButtonEvent)) *dom.Fragment {
	class := c.sheet.RegisterClass(buttonDecls()...)
	dispatcher := NewEventDispatcher(onEvent)

	inner := dom.NewElement("div").
		WithClass(class).
		WithChildren(children...).
		On(dom.EventClick, func(dom.Event) {
			dispatcher.Send(ButtonClicked)
		})

	return dom.NewElement("div").WithChildren(inner)
}
