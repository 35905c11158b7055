package components

// Font weight tokens understood by the icon stroke mapping.
const (
	WeightBold     = "bold"
	WeightSemibold = "600"
	WeightNormal   = "normal"
)

// FontStyle is one immutable entry of the typographic scale. Values are
// pixels before the context scale is applied.
type FontStyle struct {
	Size    float64
	Leading float64
	Weight  string
	Italic  bool
}

// NewFontStyle creates a FontStyle with the given size and leading.
func NewFontStyle(size, leading float64) FontStyle {
	return FontStyle{Size: size, Leading: leading}
}

// WithWeight returns a copy with the font weight set.
func (fs FontStyle) WithWeight(weight string) FontStyle {
	fs.Weight = weight
	return fs
}

// WithItalic returns a copy with the italic flag set.
func (fs FontStyle) WithItalic() FontStyle {
	fs.Italic = true
	return fs
}

// IconStyle sizes a glyph and optionally sets its stroke weight.
type IconStyle struct {
	Size      float64
	Weight    float64
	HasWeight bool
}

// NewIconStyle creates an IconStyle with the given size and no stroke weight.
func NewIconStyle(size float64) IconStyle {
	return IconStyle{Size: size}
}

// iconWeightFor maps a font weight token to an icon stroke weight so glyphs
// visually match adjacent text. Unknown tokens (including the empty string)
// leave the stroke unset.
func iconWeightFor(weight string) (float64, bool) {
	switch weight {
	case WeightBold:
		return 3.0, true
	case WeightSemibold:
		return 2.5, true
	case WeightNormal:
		return 2.0, true
	default:
		return 0, false
	}
}

// ScaleEntry names one preset of the typographic scale.
type ScaleEntry int

const (
	ScaleLargeTitle ScaleEntry = iota
	ScaleTitle
	ScaleTitle2
	ScaleTitle3
	ScaleHeadline
	ScaleBody
	ScaleCallout
	ScaleSubheadline
	ScaleFootnote
	ScaleCaption
	ScaleCaption2
)

// ScaleEntries returns every preset in display order.
func ScaleEntries() []ScaleEntry {
	return []ScaleEntry{
		ScaleLargeTitle,
		ScaleTitle,
		ScaleTitle2,
		ScaleTitle3,
		ScaleHeadline,
		ScaleBody,
		ScaleCallout,
		ScaleSubheadline,
		ScaleFootnote,
		ScaleCaption,
		ScaleCaption2,
	}
}

func (e ScaleEntry) String() string {
	switch e {
	case ScaleLargeTitle:
		return "large-title"
	case ScaleTitle:
		return "title"
	case ScaleTitle2:
		return "title2"
	case ScaleTitle3:
		return "title3"
	case ScaleHeadline:
		return "headline"
	case ScaleBody:
		return "body"
	case ScaleCallout:
		return "callout"
	case ScaleSubheadline:
		return "subheadline"
	case ScaleFootnote:
		return "footnote"
	case ScaleCaption:
		return "caption"
	case ScaleCaption2:
		return "caption2"
	default:
		return "custom"
	}
}

// Font returns the authoritative (size, leading, weight, italic) tuple for
// the entry. Text and icon rendering both derive from this table so the two
// stay in sync when the scale changes.
func (e ScaleEntry) Font() FontStyle {
	switch e {
	case ScaleLargeTitle:
		return NewFontStyle(34, 41).WithWeight(WeightBold)
	case ScaleTitle:
		return NewFontStyle(28, 34).WithWeight(WeightBold)
	case ScaleTitle2:
		return NewFontStyle(22, 28).WithWeight(WeightBold)
	case ScaleTitle3:
		return NewFontStyle(20, 25).WithWeight(WeightBold)
	case ScaleHeadline:
		return NewFontStyle(17, 22).WithWeight(WeightSemibold)
	case ScaleBody:
		return NewFontStyle(17, 22)
	case ScaleCallout:
		return NewFontStyle(16, 21).WithItalic()
	case ScaleSubheadline:
		return NewFontStyle(15, 20)
	case ScaleFootnote:
		return NewFontStyle(13, 18)
	case ScaleCaption:
		return NewFontStyle(12, 16)
	case ScaleCaption2:
		return NewFontStyle(11, 13)
	default:
		return NewFontStyle(17, 22)
	}
}

// IconStyle returns the icon sizing derived from the entry's font.
func (e ScaleEntry) IconStyle() IconStyle {
	return iconStyleFromFont(e.Font())
}

func iconStyleFromFont(fs FontStyle) IconStyle {
	style := NewIconStyle(fs.Size)
	if weight, ok := iconWeightFor(fs.Weight); ok {
		style.Weight = weight
		style.HasWeight = true
	}
	return style
}
