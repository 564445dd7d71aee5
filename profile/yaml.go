package profile

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// definitionsFile is the on-disk shape of a definitions document.
type definitionsFile struct {
	Profiles []ProfileDefinition `yaml:"profiles"`
}

// LoadDefinitions decodes profile definitions from YAML. The definitions are
// integrity-checked the same way NewRegistry checks them, so a successful
// load always yields a buildable registry.
func LoadDefinitions(r io.Reader) ([]ProfileDefinition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions: %w", err)
	}

	var file definitionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse definitions: %w", err)
	}
	if len(file.Profiles) == 0 {
		return nil, fmt.Errorf("%w: no profiles in definitions document", ErrBadDefinition)
	}

	for _, def := range file.Profiles {
		if err := def.validate(); err != nil {
			return nil, err
		}
	}
	return file.Profiles, nil
}

// LoadDefinitionsFile loads profile definitions from a YAML file.
func LoadDefinitionsFile(path string) ([]ProfileDefinition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open definitions file: %w", err)
	}
	defer f.Close()
	return LoadDefinitions(f)
}
