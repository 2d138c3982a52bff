package jdl

import (
	"fmt"
	"log"
	"regexp"
	"strings"
)

var (
	entityRe = regexp.MustCompile(`(@EnableAudit\s+)?\bentity\s+(\w+)\s*\{([^}]*)\}`)
	enumRe   = regexp.MustCompile(`\benum\s+(\w+)\s*\{([^}]*)\}`)
	relRe    = regexp.MustCompile(`\brelationship\s+(OneToOne|OneToMany|ManyToOne|ManyToMany)\s*\{\s*(\w+)\s*(?:\(\s*(\w+)\s*\))?\s+to\s+(\w+)\s*(?:\(\s*(\w+)\s*\))?\s*\}`)
	fieldRe  = regexp.MustCompile(`^([A-Za-z_]\w*)\s+([A-Za-z_]\w*)\s*(.*)$`)
)

// Options управляет разбором документа
type Options struct {
	// Strict turns silently-dropped malformed field lines into a
	// *MalformedFieldError. Off by default: the parser is permissive.
	Strict bool
	// ExtraEnums are seeded into the enum set before the document's own
	// declarations (document declarations win on name collision). Used for
	// enum catalogs loaded outside the DSL text.
	ExtraEnums []Enum
}

// MalformedFieldError is reported only in strict mode for a field line that
// does not match the "<name> <type> <rest>" grammar.
type MalformedFieldError struct {
	Entity string
	Line   string
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("entity %s: malformed field line %q", e.Entity, e.Line)
}

// Audit fields appended to every @EnableAudit entity, in this exact order.
var auditFields = []Field{
	{Name: "createdBy", Type: "String"},
	{Name: "createdDate", Type: "Instant"},
	{Name: "lastModifiedBy", Type: "String"},
	{Name: "lastModifiedDate", Type: "Instant"},
}

// Parse strips block comments and runs the three extractors over the cleaned
// text. Enums are extracted first so that field classification sees the full
// enum set regardless of declaration order in the source.
func Parse(text string, opts Options) (*Document, error) {
	clean := StripBlockComments(text)

	enums := ExtractEnums(clean)
	if len(opts.ExtraEnums) > 0 {
		seeded := NewEnumSet()
		for _, e := range opts.ExtraEnums {
			seeded.Put(e)
		}
		for _, e := range enums.All() {
			seeded.Put(e)
		}
		enums = seeded
	}

	entities, err := ExtractEntities(clean, enums, opts)
	if err != nil {
		return nil, err
	}

	return &Document{
		Entities:      entities,
		Enums:         enums,
		Relationships: ExtractRelationships(clean),
	}, nil
}

// ExtractEnums scans cleaned text for `enum Name { A, B, ... }` blocks.
// Each value token is trimmed and any parenthesized suffix is stripped
// (e.g. `FRENCH (french)` -> `FRENCH`); empty tokens are discarded.
// Re-declaring a name overwrites the previous record.
func ExtractEnums(clean string) *EnumSet {
	set := NewEnumSet()
	for _, m := range enumRe.FindAllStringSubmatchIndex(clean, -1) {
		if IsCommented(clean, m[0]) {
			continue
		}
		name := clean[m[2]:m[3]]
		body := clean[m[4]:m[5]]

		var values []string
		for _, tok := range strings.Split(body, ",") {
			v := strings.TrimSpace(tok)
			if i := strings.IndexByte(v, '('); i >= 0 {
				v = strings.TrimSpace(v[:i])
			}
			if v == "" {
				continue
			}
			values = append(values, v)
		}
		set.Put(Enum{Name: name, Values: values})
	}
	return set
}

// ExtractEntities scans cleaned text for `[@EnableAudit] entity Name { ... }`
// blocks. Field classification requires the fully populated enum set, so
// ExtractEnums must have completed over the whole document first.
func ExtractEntities(clean string, enums *EnumSet, opts Options) (*EntitySet, error) {
	set := NewEntitySet()
	for _, m := range entityRe.FindAllStringSubmatchIndex(clean, -1) {
		if IsCommented(clean, m[0]) {
			continue
		}
		audit := AuditNone
		if m[2] >= 0 { // leading @EnableAudit token present
			audit = AuditEnabled
		}
		name := clean[m[4]:m[5]]
		body := clean[m[6]:m[7]]

		fields, err := parseFieldLines(name, body, enums, opts)
		if err != nil {
			return nil, err
		}
		if audit == AuditEnabled {
			fields = append(fields, auditFields...)
			log.Printf("audit fields enabled for entity %s", name)
		}
		set.Put(&Entity{Name: name, Fields: fields, Audit: audit})
	}
	return set, nil
}

// parseFieldLines разбирает тело сущности построчно: `<name> <type> <rest>`.
// Everything in <rest> before the first // is whitespace-split into
// validation tokens; everything after it becomes the field comment.
// Lines that do not match the grammar are dropped (or rejected in strict mode).
func parseFieldLines(entity, body string, enums *EnumSet, opts Options) ([]Field, error) {
	var fields []Field
	for _, raw := range strings.Split(body, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		m := fieldRe.FindStringSubmatch(line)
		if m == nil {
			if opts.Strict {
				return nil, &MalformedFieldError{Entity: entity, Line: line}
			}
			continue
		}
		name, typ, rest := m[1], m[2], m[3]

		var rules []string
		comment := ""
		if i := strings.Index(rest, "//"); i >= 0 {
			rules = strings.Fields(rest[:i])
			comment = strings.TrimSpace(rest[i+2:])
		} else {
			rules = strings.Fields(rest)
		}

		fields = append(fields, Field{
			Name:          name,
			Type:          typ,
			IsEnum:        enums.Has(typ),
			ValidateRules: rules,
			Comment:       comment,
		})
	}
	return fields, nil
}

// ExtractRelationships scans cleaned text for
// `relationship <Cardinality> { From[(field)] to To[(field)] }`.
// Declaration order is preserved and duplicates are kept as separate entries.
// Endpoint entity names are NOT checked against the entity set here.
func ExtractRelationships(clean string) []Relationship {
	var rels []Relationship
	for _, m := range relRe.FindAllStringSubmatchIndex(clean, -1) {
		if IsCommented(clean, m[0]) {
			continue
		}
		group := func(i int) string {
			if m[2*i] < 0 {
				return ""
			}
			return clean[m[2*i]:m[2*i+1]]
		}
		rels = append(rels, Relationship{
			Type: RelationshipType(group(1)),
			From: Endpoint{Name: group(2), Field: group(3)},
			To:   Endpoint{Name: group(4), Field: group(5)},
		})
	}
	return rels
}
