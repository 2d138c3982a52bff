// Package gen renders the assembled model into TypeScript source artifacts:
// one .model.ts per entity, one .enum.ts per enum.
package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"teslo/internal/render"
)

type tsImport struct {
	Symbol string
	Path   string
}

type tsProp struct {
	Name     string
	Type     string
	Optional bool
	Comment  string
}

type tsEntityView struct {
	Name    string
	Imports []tsImport
	Props   []tsProp
}

// ModelFilename / EnumFilename fix the on-disk artifact names; import paths
// in generated files must stay in sync with them.
func ModelFilename(entity string) string { return strings.ToLower(entity) + ".model.ts" }
func EnumFilename(enum string) string    { return strings.ToLower(enum) + ".enum.ts" }

func hasRule(rules []string, want string) bool {
	for _, r := range rules {
		if r == want {
			return true
		}
	}
	return false
}

func buildEntityView(ec *render.EntityContext) tsEntityView {
	v := tsEntityView{Name: ec.Name}
	seen := map[string]struct{}{}
	addImport := func(symbol, path string) {
		if symbol == ec.Name {
			return // self reference needs no import
		}
		if _, ok := seen[symbol]; ok {
			return
		}
		seen[symbol] = struct{}{}
		v.Imports = append(v.Imports, tsImport{Symbol: symbol, Path: path})
	}

	for _, f := range ec.Fields {
		if f.IsEnum {
			addImport(f.TSType, "./"+strings.ToLower(f.TSType)+".enum")
		}
		v.Props = append(v.Props, tsProp{
			Name:     f.Name,
			Type:     f.TSType,
			Optional: !hasRule(f.ValidateRules, "required"),
			Comment:  f.Comment,
		})
	}

	for _, r := range ec.Relationships {
		other := r.OtherEntityNameCapitalized
		addImport(other, "./"+strings.ToLower(r.OtherEntityName)+".model")

		name := r.FieldName
		typ := other
		switch r.Type {
		case "OneToMany", "ManyToMany":
			if name == "" {
				name = render.Decapitalize(r.OtherEntityNamePlural)
			}
			typ = other + "[]"
		default: // OneToOne, ManyToOne
			if name == "" {
				name = render.Decapitalize(r.OtherEntityName)
			}
		}
		v.Props = append(v.Props, tsProp{Name: name, Type: typ, Optional: true})
	}
	return v
}

// RenderEntity renders one entity context to TypeScript source.
func RenderEntity(ec *render.EntityContext) ([]byte, error) {
	var buf bytes.Buffer
	if err := entityTmpl.Execute(&buf, buildEntityView(ec)); err != nil {
		return nil, fmt.Errorf("render entity %s: %w", ec.Name, err)
	}
	return buf.Bytes(), nil
}

// RenderEnum renders one enum context to TypeScript source.
func RenderEnum(ec *render.EnumContext) ([]byte, error) {
	var buf bytes.Buffer
	if err := enumTmpl.Execute(&buf, ec); err != nil {
		return nil, fmt.Errorf("render enum %s: %w", ec.Name, err)
	}
	return buf.Bytes(), nil
}

// WriteAll emits every entity and enum artifact under outDir and returns the
// written paths in emission order. Contexts are independent of each other, so
// order only affects the returned list.
func WriteAll(m *render.Model, outDir string) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}
	var written []string

	for _, ec := range m.Entities {
		b, err := RenderEntity(ec)
		if err != nil {
			return written, err
		}
		path := filepath.Join(outDir, ModelFilename(ec.Name))
		if err := os.WriteFile(path, b, 0o644); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	for _, ec := range m.Enums {
		b, err := RenderEnum(ec)
		if err != nil {
			return written, err
		}
		path := filepath.Join(outDir, EnumFilename(ec.Name))
		if err := os.WriteFile(path, b, 0o644); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
