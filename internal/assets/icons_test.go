package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facetui/facet/internal/dom"
)

func TestMarkupReturnsIndependentIdenticalCopies(t *testing.T) {
	t.Parallel()

	copies := make([]*dom.Fragment, 5)
	for i := range copies {
		copies[i] = Markup(IconPlus)
	}

	for i := 1; i < len(copies); i++ {
		assert.Equal(t, copies[0].String(), copies[i].String(), "every copy must be structurally identical")
		assert.NotSame(t, copies[0], copies[i])
	}

	copies[0].WithAttr("data-marker", "mutated")
	assert.NotEqual(t, copies[0].String(), copies[1].String(), "copies must not share state")
}

func TestMarkupMatchesSource(t *testing.T) {
	t.Parallel()

	parsed, err := dom.ParseFragment(plusMarkup)
	require.NoError(t, err)
	assert.Equal(t, parsed.String(), Markup(IconPlus).String())

	parsed, err = dom.ParseFragment(trashMarkup)
	require.NoError(t, err)
	assert.Equal(t, parsed.String(), Markup(IconTrash).String())
}

func TestEveryIconHasRootSVG(t *testing.T) {
	t.Parallel()

	for _, icon := range Icons() {
		frag := Markup(icon)
		assert.Equal(t, "svg", frag.Tag(), "icon %s must render an svg root", icon)
	}
}

func TestUnknownIconPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { Markup(Icon(99)) })
}

func TestIconStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "trash", IconTrash.String())
	assert.Equal(t, "plus", IconPlus.String())
}
