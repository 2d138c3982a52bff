package jdl

// Fixed table of DSL primitive -> TypeScript type. Anything not listed here
// passes through unchanged, which is how enum and custom types end up as
// nominal type references in the generated model.
var typeTable = map[string]string{
	"Integer":    "number",
	"Long":       "number",
	"Float":      "number",
	"Double":     "number",
	"BigDecimal": "number",

	"Instant":       "Date",
	"ZonedDateTime": "Date",
	"LocalDate":     "Date",
	"LocalDateTime": "Date",
	"Duration":      "Date",

	"String":   "string",
	"UUID":     "string",
	"TextBlob": "string",

	"Boolean": "boolean",
}

// MapType maps a raw DSL type name to its target-language equivalent.
// Total and idempotent: mapped outputs are never table keys, so applying it
// twice yields the same result.
func MapType(name string) string {
	if t, ok := typeTable[name]; ok {
		return t
	}
	return name
}
