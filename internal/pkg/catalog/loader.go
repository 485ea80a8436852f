package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/evandrarf/promptquest-be/internal/delivery/http/entity"
)

type catalogFile struct {
	Quests []entity.Quest `yaml:"quests"`
}

// LoadFile reads a YAML quest catalog.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from YAML bytes.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(file.Quests) == 0 {
		return nil, fmt.Errorf("catalog has no quests")
	}
	return New(file.Quests)
}
