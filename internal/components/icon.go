package components

import (
	"github.com/facetui/facet/internal/assets"
	"github.com/facetui/facet/internal/dom"
)

const defaultIconSize = 16.0

// IconHelper renders a vector glyph sized and weighted to match adjacent
// text. The builder is a value: each step returns an updated copy.
type IconHelper struct {
	ctx   *Context
	icon  assets.Icon
	style IconStyle
}

// CustomSize overrides the glyph size in pixels.
func (i IconHelper) CustomSize(size float64) IconHelper {
	i.style.Size = size
	return i
}

// Weight sets the stroke weight in pixels.
func (i IconHelper) Weight(weight float64) IconHelper {
	i.style.Weight = weight
	i.style.HasWeight = true
	return i
}

// Font sizes the glyph from a font style so the icon matches text set in the
// same style. The stroke weight is only set when the mapping table yields a
// value for the font's weight token.
func (i IconHelper) Font(fs FontStyle) IconHelper {
	i.style.Size = fs.Size
	if weight, ok := iconWeightFor(fs.Weight); ok {
		i.style.Weight = weight
		i.style.HasWeight = true
	}
	return i
}

// Preset renders the glyph sized for the named scale entry.
func (i IconHelper) Preset(entry ScaleEntry) *dom.Fragment {
	return i.Font(entry.Font()).finish()
}

// Custom renders the glyph sized for an arbitrary font style.
func (i IconHelper) Custom(fs FontStyle) *dom.Fragment {
	return i.Font(fs).finish()
}

func (i IconHelper) LargeTitle() *dom.Fragment  { return i.Preset(ScaleLargeTitle) }
func (i IconHelper) Title() *dom.Fragment       { return i.Preset(ScaleTitle) }
func (i IconHelper) Title2() *dom.Fragment      { return i.Preset(ScaleTitle2) }
func (i IconHelper) Title3() *dom.Fragment      { return i.Preset(ScaleTitle3) }
func (i IconHelper) Headline() *dom.Fragment    { return i.Preset(ScaleHeadline) }
func (i IconHelper) Body() *dom.Fragment        { return i.Preset(ScaleBody) }
func (i IconHelper) Callout() *dom.Fragment     { return i.Preset(ScaleCallout) }
func (i IconHelper) Subheadline() *dom.Fragment { return i.Preset(ScaleSubheadline) }
func (i IconHelper) Footnote() *dom.Fragment    { return i.Preset(ScaleFootnote) }
func (i IconHelper) Caption() *dom.Fragment     { return i.Preset(ScaleCaption) }
func (i IconHelper) Caption2() *dom.Fragment    { return i.Preset(ScaleCaption2) }

// Finish renders the glyph with the style accumulated so far.
func (i IconHelper) Finish() *dom.Fragment {
	return i.finish()
}

// finish emits a square container sized to the scaled glyph size, holding an
// independent copy of the cached icon markup. The stroke weight custom
// property is only declared when a weight is set; it is a stroke width, not
// a layout dimension, so the context scale does not apply to it.
func (i IconHelper) finish() *dom.Fragment {
	frag := dom.NewElement("div").
		WithClass(i.ctx.fontClass()).
		WithStyle("display", "inline-block").
		WithStyle("width", i.ctx.px(i.style.Size)).
		WithStyle("height", i.ctx.px(i.style.Size))
	if i.style.HasWeight {
		frag.WithStyle("--icon-weight", formatPx(i.style.Weight))
	}
	return frag.WithChildren(assets.Markup(i.icon))
}
