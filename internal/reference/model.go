package reference

// EnumCatalog: enum-справочник, подгружаемый из YAML помимо DSL-текста
type EnumCatalog struct {
	Name   string   `yaml:"name"`
	Values []string `yaml:"values"`
}
