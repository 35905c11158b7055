package config

import (
	"github.com/facetui/facet/internal/components"
	"github.com/facetui/facet/internal/dom"
)

// Settings represents the full facet configuration document.
type Settings struct {
	// Scale multiplies every pixel dimension emitted by the helpers.
	Scale float64 `yaml:"scale,omitempty" validate:"omitempty,gt=0,lte=16"`
	// FontFamily replaces the standard font stack.
	FontFamily string `yaml:"font_family,omitempty" validate:"omitempty,font_stack"`
	Output     Output `yaml:"output,omitempty"`
	Log        Log    `yaml:"log,omitempty"`
}

// Output holds gallery rendering parameters.
type Output struct {
	// Path receives the rendered page; empty means stdout.
	Path string `yaml:"path,omitempty"`
	// Title is the document title of the rendered page.
	Title string `yaml:"title,omitempty" validate:"omitempty,max=200"`
}

// Log holds logging parameters.
type Log struct {
	Level  string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	Pretty bool   `yaml:"pretty,omitempty"`
}

// Default returns the settings used when no configuration file is supplied.
func Default() Settings {
	return Settings{
		Scale: 1.0,
		Output: Output{
			Title: "facet gallery",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// ContextOptions translates the settings into rendering context options.
func (s Settings) ContextOptions(sheet *dom.StyleSheet) components.Options {
	return components.Options{
		Scale:      s.Scale,
		FontFamily: s.FontFamily,
		Sheet:      sheet,
	}
}
