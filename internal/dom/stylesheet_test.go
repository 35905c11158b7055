package dom

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterClassMemoizes(t *testing.T) {
	t.Parallel()

	sheet := NewStyleSheet()

	first := sheet.RegisterClass(StyleDecl{Property: "display", Value: "flex"})
	second := sheet.RegisterClass(StyleDecl{Property: "display", Value: "flex"})

	assert.Equal(t, first, second, "identical declarations must share one class")
	assert.Equal(t, 1, sheet.Len())
}

func TestRegisterClassDistinguishesDeclarations(t *testing.T) {
	t.Parallel()

	sheet := NewStyleSheet()

	flex := sheet.RegisterClass(StyleDecl{Property: "display", Value: "flex"})
	block := sheet.RegisterClass(StyleDecl{Property: "display", Value: "block"})

	assert.NotEqual(t, flex, block)
	assert.Equal(t, 2, sheet.Len())
}

func TestCSSRendersRegisteredRules(t *testing.T) {
	t.Parallel()

	sheet := NewStyleSheet()
	name := sheet.RegisterClass(
		StyleDecl{Property: "background", Value: "white"},
		StyleDecl{Property: "cursor", Value: "pointer"},
	)

	css := sheet.CSS()
	assert.Contains(t, css, "."+name+" { background: white; cursor: pointer; }")
}

func TestRegisterClassConcurrentAccess(t *testing.T) {
	t.Parallel()

	sheet := NewStyleSheet()
	decls := []StyleDecl{{Property: "color", Value: "inherit"}}

	names := make([]string, 16)
	var wg sync.WaitGroup
	for i := range names {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			names[i] = sheet.RegisterClass(decls...)
		}(i)
	}
	wg.Wait()

	require.Equal(t, 1, sheet.Len(), "exactly one initializer must win")
	for _, name := range names {
		assert.Equal(t, names[0], name, "all callers must observe the same class")
	}
}
