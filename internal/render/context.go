package render

import (
	"fmt"

	"teslo/internal/jdl"
)

// FieldContext is a Field with its mapped target type attached.
type FieldContext struct {
	jdl.Field
	TSType string
}

// RelationshipContext annotates one relationship from the owning entity's
// point of view (from side). Derived names are computed here once so the
// templates stay dumb.
type RelationshipContext struct {
	Type                       jdl.RelationshipType
	FieldName                  string // role field on this side, "" if omitted
	OtherEntityName            string
	OtherEntityNameCapitalized string
	OtherEntityNamePlural      string
	OtherFieldName             string // role field on the far side, "" if omitted
}

// EntityContext: контекст рендеринга одной сущности
type EntityContext struct {
	Name          string
	Audit         jdl.AuditMode
	Fields        []FieldContext
	Relationships []RelationshipContext
}

// EnumContext is handed to the enum template as-is.
type EnumContext struct {
	Name   string
	Values []string
}

// DanglingReferenceWarning flags a relationship endpoint that names no
// declared entity. Informational only: assembly never halts on it and the
// relationship is passed through unresolved.
type DanglingReferenceWarning struct {
	Relationship jdl.Relationship
	Side         string // "from" or "to"
	Entity       string
}

func (w DanglingReferenceWarning) String() string {
	return fmt.Sprintf("relationship %s { %s to %s }: %s side references undeclared entity %q",
		w.Relationship.Type, w.Relationship.From.Name, w.Relationship.To.Name, w.Side, w.Entity)
}

// Model is the fully assembled output handed to the rendering layer.
type Model struct {
	Entities      []*EntityContext
	Enums         []*EnumContext
	Relationships []jdl.Relationship // raw sequence, kept for DDL generation
	Warnings      []DanglingReferenceWarning
}

// Assemble joins the extractor outputs into render contexts: mapped types per
// field, and per entity the relationships whose from side is that entity, in
// declaration order. Pure projection, no validation beyond the dangling
// reference warnings.
func Assemble(doc *jdl.Document) *Model {
	m := &Model{Relationships: doc.Relationships}

	for _, e := range doc.Entities.All() {
		ec := &EntityContext{Name: e.Name, Audit: e.Audit}
		for _, f := range e.Fields {
			ec.Fields = append(ec.Fields, FieldContext{Field: f, TSType: jdl.MapType(f.Type)})
		}
		for _, r := range doc.Relationships {
			if r.From.Name != e.Name {
				continue
			}
			ec.Relationships = append(ec.Relationships, RelationshipContext{
				Type:                       r.Type,
				FieldName:                  r.From.Field,
				OtherEntityName:            r.To.Name,
				OtherEntityNameCapitalized: Capitalize(r.To.Name),
				OtherEntityNamePlural:      Pluralize(r.To.Name),
				OtherFieldName:             r.To.Field,
			})
		}
		m.Entities = append(m.Entities, ec)
	}

	for _, e := range doc.Enums.All() {
		m.Enums = append(m.Enums, &EnumContext{Name: e.Name, Values: e.Values})
	}

	for _, r := range doc.Relationships {
		if !doc.Entities.Has(r.From.Name) {
			m.Warnings = append(m.Warnings, DanglingReferenceWarning{Relationship: r, Side: "from", Entity: r.From.Name})
		}
		if !doc.Entities.Has(r.To.Name) {
			m.Warnings = append(m.Warnings, DanglingReferenceWarning{Relationship: r, Side: "to", Entity: r.To.Name})
		}
	}

	return m
}

// Capitalize upper-cases the first byte only (entity names are ASCII words).
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	if c := s[0]; c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}

// Pluralize appends "s", nothing smarter: category -> categorys. Generated
// identifiers in existing output depend on this, do not "fix" it here.
func Pluralize(s string) string {
	return s + "s"
}

// Decapitalize lower-cases the first byte; used for property names.
func Decapitalize(s string) string {
	if s == "" {
		return s
	}
	if c := s[0]; c >= 'A' && c <= 'Z' {
		return string(c-'A'+'a') + s[1:]
	}
	return s
}
