package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementRendering(t *testing.T) {
	t.Parallel()

	frag := NewElement("div").
		WithClass("fct-1").
		WithStyle("width", "28px").
		WithStyle("height", "28px").
		WithChildren(NewText("hello"))

	assert.Equal(t, `<div class="fct-1" style="width: 28px; height: 28px">hello</div>`, frag.String())
}

func TestTextEscaping(t *testing.T) {
	t.Parallel()

	frag := NewElement("div").WithChildren(NewText(`<b>&"unsafe"</b>`))
	assert.NotContains(t, frag.String(), "<b>")
	assert.Contains(t, frag.String(), "&lt;b&gt;")
}

func TestStyleLookup(t *testing.T) {
	t.Parallel()

	frag := NewElement("div").WithStyle("font-size", "17px")

	value, ok := frag.Style("font-size")
	require.True(t, ok)
	assert.Equal(t, "17px", value)

	_, ok = frag.Style("font-weight")
	assert.False(t, ok)
}

func TestDispatchInvokesHandlersForType(t *testing.T) {
	t.Parallel()

	clicks := 0
	frag := NewElement("div").On(EventClick, func(Event) { clicks++ })

	frag.Dispatch(Event{Type: EventClick})
	assert.Equal(t, 1, clicks)

	frag.Dispatch(Event{Type: EventClick})
	assert.Equal(t, 2, clicks)
}

func TestFindDepthFirst(t *testing.T) {
	t.Parallel()

	inner := NewElement("span").WithClass("target")
	root := NewElement("div").WithChildren(
		NewElement("div").WithChildren(inner),
		NewElement("span"),
	)

	found := root.Find(func(f *Fragment) bool {
		return len(f.Classes()) > 0
	})
	require.NotNil(t, found)
	assert.Same(t, inner, found)

	assert.Nil(t, root.Find(func(f *Fragment) bool { return f.Tag() == "table" }))
}

func TestCloneIsDeepAndIndependent(t *testing.T) {
	t.Parallel()

	original := NewElement("svg").
		WithAttr("viewBox", "0 0 16 16").
		WithChildren(NewElement("path").WithAttr("d", "M8 3v10"))

	clone := original.Clone()
	require.Equal(t, original.String(), clone.String())

	clone.Children()[0].WithAttr("stroke", "red")
	assert.NotEqual(t, original.String(), clone.String(), "mutating a clone must not affect the original")
}

func TestCloneDropsHandlers(t *testing.T) {
	t.Parallel()

	clicks := 0
	original := NewElement("div").On(EventClick, func(Event) { clicks++ })

	clone := original.Clone()
	clone.Dispatch(Event{Type: EventClick})
	assert.Equal(t, 0, clicks, "a clone is static content, not a second subscriber")
}
