package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	facetErrors "github.com/facetui/facet/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a settings file from disk, validates it, and returns the
// resulting model. An empty path yields the defaults.
func Load(path string) (*Settings, error) {
	settings := Default()
	if path == "" {
		return &settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, facetErrors.NewParseError(path, 0, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, facetErrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
