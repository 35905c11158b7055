package components

import (
	"math"
	"strconv"

	"github.com/facetui/facet/internal/assets"
	"github.com/facetui/facet/internal/dom"
)

// DefaultFontFamily is the standard system font stack shared by text and
// icon containers.
const DefaultFontFamily = "system-ui, -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Ubuntu, sans-serif"

// Options configures a rendering Context.
type Options struct {
	// Scale multiplies every emitted pixel dimension. Zero means 1.0.
	Scale float64
	// FontFamily overrides the standard font stack.
	FontFamily string
	// Sheet receives generated classes. Nil allocates a fresh sheet.
	Sheet *dom.StyleSheet
}

// Context carries the rendering configuration threaded through every helper:
// the global scale knob, the font stack, and the stylesheet that memoizes
// generated classes. Rendering output is a pure function of (content, style,
// context).
type Context struct {
	scale      float64
	fontFamily string
	sheet      *dom.StyleSheet
}

// NewContext creates a Context from Options, filling in defaults.
func NewContext(opts Options) *Context {
	scale := opts.Scale
	if scale == 0 {
		scale = 1.0
	}
	fontFamily := opts.FontFamily
	if fontFamily == "" {
		fontFamily = DefaultFontFamily
	}
	sheet := opts.Sheet
	if sheet == nil {
		sheet = dom.NewStyleSheet()
	}
	return &Context{scale: scale, fontFamily: fontFamily, sheet: sheet}
}

// DefaultContext creates a Context with scale 1.0 and the standard font stack.
func DefaultContext() *Context {
	return NewContext(Options{})
}

// Scale returns the context's global scale factor.
func (c *Context) Scale() float64 {
	return c.scale
}

// StyleSheet returns the sheet collecting this context's generated classes.
func (c *Context) StyleSheet() *dom.StyleSheet {
	return c.sheet
}

// Text starts a text helper for the given content.
func (c *Context) Text(content string) TextHelper {
	return TextHelper{ctx: c, content: content}
}

// Icon starts an icon helper for the given glyph.
func (c *Context) Icon(icon assets.Icon) IconHelper {
	return IconHelper{ctx: c, icon: icon, style: NewIconStyle(defaultIconSize)}
}

// px renders a pixel dimension with the context scale applied.
func (c *Context) px(v float64) string {
	return formatPx(v * c.scale)
}

// fontClass returns the shared base class applied to text blocks and icon
// containers. The stylesheet memoizes it, so the rule is emitted once no
// matter how many fragments use it.
func (c *Context) fontClass() string {
	return c.sheet.RegisterClass(
		dom.StyleDecl{Property: "font-family", Value: c.fontFamily},
		dom.StyleDecl{Property: "color", Value: "inherit"},
	)
}

func formatPx(v float64) string {
	rounded := math.Round(v*10000) / 10000
	return strconv.FormatFloat(rounded, 'f', -1, 64) + "px"
}
