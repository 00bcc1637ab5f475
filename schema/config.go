package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// entityFile is the YAML shape of a custom-entity definition file:
//
//	entities:
//	  - key: stain
//	    name: staining
//	    format: label
//	  - key: chunk
//	    name: chunk
//	    format: index
type entityFile struct {
	Entities []entityEntry `yaml:"entities"`
}

type entityEntry struct {
	Key    string   `yaml:"key"`
	Name   string   `yaml:"name"`
	Format string   `yaml:"format"`
	Values []string `yaml:"values"`
}

// LoadEntityFile reads custom entity definitions from a YAML file.
//
// The returned defs preserve file order and are intended to be appended
// after the built-ins with Schema.Merge before compilation. Format is one of
// "label", "index" or "enum"; an omitted format defaults to "label". An
// omitted name defaults to the key.
func LoadEntityFile(path string) ([]EntityDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read entity file: %w", err)
	}
	return ParseEntityConfig(data)
}

// ParseEntityConfig parses the YAML entity-definition document.
func ParseEntityConfig(data []byte) ([]EntityDef, error) {
	var file entityFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse entity file: %w", err)
	}

	defs := make([]EntityDef, 0, len(file.Entities))
	for i, e := range file.Entities {
		if e.Key == "" {
			return nil, fmt.Errorf("entity %d is missing a key", i)
		}
		def := EntityDef{Key: e.Key, Name: e.Name, Values: e.Values}
		if def.Name == "" {
			def.Name = e.Key
		}
		switch e.Format {
		case "", "label":
			def.Format = Label
		case "index":
			def.Format = Index
		case "enum":
			def.Format = Enum
			if len(e.Values) == 0 {
				return nil, fmt.Errorf("entity %q: enum format requires values", e.Key)
			}
		default:
			return nil, fmt.Errorf("entity %q: unknown format %q", e.Key, e.Format)
		}
		defs = append(defs, def)
	}
	return defs, nil
}
