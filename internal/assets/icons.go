package assets

import (
	"fmt"
	"sync"

	"github.com/facetui/facet/internal/dom"
	facetErrors "github.com/facetui/facet/pkg/errors"
)

// Icon identifies one of the built-in vector glyphs. The set is closed:
// adding a variant requires both a new constant and its markup.
type Icon int

const (
	IconTrash Icon = iota
	IconPlus
)

func (i Icon) String() string {
	switch i {
	case IconTrash:
		return "trash"
	case IconPlus:
		return "plus"
	default:
		return fmt.Sprintf("icon(%d)", int(i))
	}
}

// Icons returns every icon in declaration order.
func Icons() []Icon {
	return []Icon{IconTrash, IconPlus}
}

const trashMarkup = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path fill="none" stroke="currentColor" stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M4 6h16l-1.58 14.22A2 2 0 0 1 16.432 22H7.568a2 2 0 0 1-1.988-1.78zm3.345-2.853A2 2 0 0 1 9.154 2h5.692a2 2 0 0 1 1.81 1.147L18 6H6zM2 6h20m-12 5v5m4-5v5"/></svg>`

const plusMarkup = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 16"> <path stroke="currentColor" stroke-linecap="round" stroke-linejoin="round" d="M8 3v10M3 8h10" style="stroke-width: var(--icon-weight, 2);"/></svg>`

// Each glyph is parsed exactly once per process; Markup hands out deep
// clones so every call site owns an independent fragment.
var (
	trashFragment = sync.OnceValue(func() *dom.Fragment { return mustParse("trash", trashMarkup) })
	plusFragment  = sync.OnceValue(func() *dom.Fragment { return mustParse("plus", plusMarkup) })
)

func mustParse(name, markup string) *dom.Fragment {
	frag, err := dom.ParseFragment(markup)
	if err != nil {
		panic(facetErrors.NewMarkupError(name, err))
	}
	return frag
}

// Markup returns an independent copy of the parsed vector markup for icon.
func Markup(icon Icon) *dom.Fragment {
	switch icon {
	case IconTrash:
		return trashFragment().Clone()
	case IconPlus:
		return plusFragment().Clone()
	default:
		panic(facetErrors.NewMarkupError(icon.String(), fmt.Errorf("unknown icon")))
	}
}
