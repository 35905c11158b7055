package app

import (
	"github.com/facetui/facet/internal/assets"
	"github.com/facetui/facet/internal/components"
	"github.com/facetui/facet/internal/dom"
	"github.com/facetui/facet/internal/logger"
)

// App is the application root: it composes the gallery page out of the
// rendering helpers and appends it to a document.
type App struct {
	ctx   *components.Context
	log   *logger.Logger
	title string
}

// New creates the application root.
func New(ctx *components.Context, log *logger.Logger, title string) *App {
	return &App{ctx: ctx, log: log, title: title}
}

// RenderDocument builds the gallery page into a fresh document backed by the
// context's stylesheet.
func (a *App) RenderDocument() (*dom.Document, error) {
	doc := dom.NewDocument(a.ctx.StyleSheet())
	doc.SetTitle(a.title)
	if err := doc.AppendChild(a.Render()); err != nil {
		return nil, err
	}
	return doc, nil
}

// Render produces the root fragment.
func (a *App) Render() *dom.Fragment {
	return dom.NewElement("div").
		WithStyle("padding", "1rem").
		WithChildren(
			a.ctx.Text("facet").LargeTitle(),
			a.textSamples(),
			a.iconSamples(),
			a.actions(),
		)
}

// textSamples renders every entry of the typographic scale plus one custom
// style, each labelled with its own name.
func (a *App) textSamples() *dom.Fragment {
	section := dom.NewElement("div").
		WithChildren(a.ctx.Text("Text").Title2())
	for _, entry := range components.ScaleEntries() {
		section.WithChildren(a.ctx.Text(entry.String()).Preset(entry))
	}
	section.WithChildren(
		a.ctx.Text("custom").Custom(components.NewFontStyle(18, 24).WithWeight("500").WithItalic()),
	)
	return section
}

// iconSamples renders each glyph across the scale.
func (a *App) iconSamples() *dom.Fragment {
	section := dom.NewElement("div").
		WithChildren(a.ctx.Text("Icons").Title2())
	for _, icon := range assets.Icons() {
		row := dom.NewElement("div")
		for _, entry := range components.ScaleEntries() {
			row.WithChildren(a.ctx.Icon(icon).Preset(entry))
		}
		row.WithChildren(
			a.ctx.Icon(icon).Custom(components.NewFontStyle(18, 24).WithWeight("500").WithItalic()),
		)
		section.WithChildren(row)
	}
	return section
}

// actions renders the interactive sample: a button whose clicks are logged.
func (a *App) actions() *dom.Fragment {
	button := a.ctx.Button(
		[]*dom.Fragment{
			a.ctx.Icon(assets.IconPlus).Body(),
			a.ctx.Text("Add item").Body(),
		},
		func(components.ButtonEvent) {
			a.log.Info("button clicked")
		},
	)
	return dom.NewElement("div").
		WithChildren(a.ctx.Text("Actions").Title2(), button)
}
