package reference

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"teslo/internal/jdl"
)

// LoadCatalogs reads every *.yaml/*.yml in dir into enums that are seeded
// into the parser's enum set (DSL declarations win on name collision).
// Catalog name falls back to the file name without extension.
func LoadCatalogs(dir string) ([]jdl.Enum, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []jdl.Enum
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(file.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, file.Name()))
		if err != nil {
			return nil, err
		}
		var cat EnumCatalog
		if err := yaml.Unmarshal(data, &cat); err != nil {
			return nil, err
		}
		name := cat.Name
		if name == "" {
			name = strings.TrimSuffix(file.Name(), filepath.Ext(file.Name()))
		}
		out = append(out, jdl.Enum{Name: name, Values: cat.Values})
	}
	return out, nil
}
