package pg

import (
	"fmt"
	"strings"

	"teslo/internal/render"
)

var reserved = map[string]struct{}{
	"user": {}, "select": {}, "table": {}, "insert": {}, "update": {}, "delete": {},
	"where": {}, "join": {}, "group": {}, "order": {}, "limit": {}, "offset": {},
	"primary": {}, "foreign": {}, "key": {}, "constraint": {}, "default": {},
	"from": {}, "into": {}, "values": {}, "unique": {}, "index": {}, "create": {},
	"drop": {}, "alter": {}, "schema": {}, "grant": {}, "revoke": {},
}

func isReserved(s string) bool { _, ok := reserved[strings.ToLower(s)]; return ok }

// tableName: naive plural of the entity name, lower-cased, with a prefix
// guard for SQL keywords. Pluralization matches the model assembler on
// purpose (category -> categorys).
func tableName(entity string) string {
	t := strings.ToLower(render.Pluralize(entity))
	if isReserved(t) {
		t = "t_" + t
	}
	return t
}

// snakeCase converts camelCase field names to snake_case column names.
func snakeCase(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				sb.WriteByte('_')
			}
			c = c - 'A' + 'a'
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

func sqlIdent(s string) string { return `"` + strings.ToLower(s) + `"` }

// columnType maps raw DSL type names to Postgres column types. Separate from
// the TypeScript mapper: columns need per-kind types, not one numeric type.
// Enum and custom types are stored as text.
func columnType(rawType string) string {
	switch rawType {
	case "Integer", "Long", "Duration":
		return "bigint"
	case "Float", "Double", "BigDecimal":
		return "double precision"
	case "Boolean":
		return "boolean"
	case "LocalDate":
		return "date"
	case "Instant", "ZonedDateTime", "LocalDateTime":
		return "timestamp with time zone"
	default:
		return "text"
	}
}

func hasRequired(rules []string) bool {
	for _, r := range rules {
		if r == "required" {
			return true
		}
	}
	return false
}

// GenerateDDL returns idempotent DDL keyed for stable apply order:
// tables first, foreign keys after every table exists. Relationship columns
// are emitted on the from side for ManyToOne and OneToOne; the FK constraint
// is skipped (column kept) when the target entity was never declared;
// dangling references are a legal model state, the database just cannot
// enforce them.
func GenerateDDL(m *render.Model) (map[string]string, error) {
	declared := make(map[string]struct{}, len(m.Entities))
	for _, e := range m.Entities {
		declared[e.Name] = struct{}{}
	}

	type fkStmt struct {
		tbl, name, col, refTbl string
	}
	var fks []fkStmt

	var tablesSb strings.Builder
	for _, e := range m.Entities {
		tbl := tableName(e.Name)

		cols := []string{`"id" text primary key`}
		seen := map[string]struct{}{"id": {}}

		for _, f := range e.Fields {
			col := snakeCase(f.Name)
			if _, dup := seen[col]; dup {
				return nil, fmt.Errorf("%s: field %q collides with an existing column", e.Name, f.Name)
			}
			seen[col] = struct{}{}

			null := "null"
			if hasRequired(f.ValidateRules) {
				null = "not null"
			}
			cols = append(cols, fmt.Sprintf("%s %s %s", sqlIdent(col), columnType(f.Type), null))
		}

		for _, r := range e.Relationships {
			if r.Type != "ManyToOne" && r.Type != "OneToOne" {
				continue // collection sides carry no column
			}
			base := r.FieldName
			if base == "" {
				base = strings.ToLower(r.OtherEntityName)
			}
			col := snakeCase(base) + "_id"
			if _, dup := seen[col]; dup {
				return nil, fmt.Errorf("%s: relationship column %q collides with an existing column", e.Name, col)
			}
			seen[col] = struct{}{}
			cols = append(cols, fmt.Sprintf("%s text null", sqlIdent(col)))

			if _, ok := declared[r.OtherEntityName]; ok {
				fks = append(fks, fkStmt{
					tbl:    tbl,
					name:   strings.ToLower(e.Name + "_" + base + "_fk"),
					col:    col,
					refTbl: tableName(r.OtherEntityName),
				})
			}
		}

		fmt.Fprintf(&tablesSb, "create table if not exists %s (\n  %s\n);\n",
			sqlIdent(tbl), strings.Join(cols, ",\n  "))
	}

	out := map[string]string{"000_tables": tablesSb.String()}

	var fkSb strings.Builder
	for _, fk := range fks {
		fmt.Fprintf(&fkSb,
			"alter table %s add constraint %s foreign key (%s) references %s(id) on delete restrict;\n",
			sqlIdent(fk.tbl), fk.name, sqlIdent(fk.col), sqlIdent(fk.refTbl))
	}
	if fkSb.Len() > 0 {
		out["200_foreign_keys"] = fkSb.String()
	}
	return out, nil
}
