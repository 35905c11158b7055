package components

import "github.com/facetui/facet/internal/dom"

// TextHelper renders a string as a styled block. Terminal methods pick an
// entry of the typographic scale; Custom accepts an arbitrary FontStyle.
type TextHelper struct {
	ctx     *Context
	content string
}

// Preset renders the text with the named scale entry.
func (t TextHelper) Preset(entry ScaleEntry) *dom.Fragment {
	return t.renderWithStyle(entry.Font())
}

// Custom renders the text with an arbitrary font style.
func (t TextHelper) Custom(fs FontStyle) *dom.Fragment {
	return t.renderWithStyle(fs)
}

func (t TextHelper) LargeTitle() *dom.Fragment  { return t.Preset(ScaleLargeTitle) }
func (t TextHelper) Title() *dom.Fragment       { return t.Preset(ScaleTitle) }
func (t TextHelper) Title2() *dom.Fragment      { return t.Preset(ScaleTitle2) }
func (t TextHelper) Title3() *dom.Fragment      { return t.Preset(ScaleTitle3) }
func (t TextHelper) Headline() *dom.Fragment    { return t.Preset(ScaleHeadline) }
func (t TextHelper) Body() *dom.Fragment        { return t.Preset(ScaleBody) }
func (t TextHelper) Callout() *dom.Fragment     { return t.Preset(ScaleCallout) }
func (t TextHelper) Subheadline() *dom.Fragment { return t.Preset(ScaleSubheadline) }
func (t TextHelper) Footnote() *dom.Fragment    { return t.Preset(ScaleFootnote) }
func (t TextHelper) Caption() *dom.Fragment     { return t.Preset(ScaleCaption) }
func (t TextHelper) Caption2() *dom.Fragment    { return t.Preset(ScaleCaption2) }

// renderWithStyle emits the styled block. Weight and italic declarations are
// omitted entirely when the style leaves them unset.
func (t TextHelper) renderWithStyle(fs FontStyle) *dom.Fragment {
	frag := dom.NewElement("div").
		WithClass(t.ctx.fontClass()).
		WithStyle("font-size", t.ctx.px(fs.Size)).
		WithStyle("line-height", t.ctx.px(fs.Leading))
	if fs.Weight != "" {
		frag.WithStyle("font-weight", fs.Weight)
	}
	if fs.Italic {
		frag.WithStyle("font-style", "italic")
	}
	return frag.WithChildren(dom.NewText(t.content))
}
