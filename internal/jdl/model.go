package jdl

// RelationshipType is one of the four accepted cardinalities.
type RelationshipType string

const (
	OneToOne   RelationshipType = "OneToOne"
	OneToMany  RelationshipType = "OneToMany"
	ManyToOne  RelationshipType = "ManyToOne"
	ManyToMany RelationshipType = "ManyToMany"
)

// AuditMode says whether an entity carries the @EnableAudit annotation.
type AuditMode int

const (
	AuditNone AuditMode = iota
	AuditEnabled
)

// Field описывает одно поле сущности
type Field struct {
	Name          string
	Type          string   // raw DSL type name: String, Long, Instant, enum/custom names
	IsEnum        bool     // true if Type names a declared enum
	ValidateRules []string // raw validation tokens in declaration order, may be empty
	Comment       string   // trailing // annotation on the field line, "" if absent
}

// Entity описывает сущность из DSL
type Entity struct {
	Name   string
	Fields []Field
	Audit  AuditMode
}

// Enum is a named, ordered value list. Duplicate values are kept as written.
type Enum struct {
	Name   string
	Values []string
}

// Endpoint is one side of a relationship: entity name plus optional role field.
type Endpoint struct {
	Name  string
	Field string // "" when the parenthesized role name is omitted
}

// Relationship is a directed, typed association between two entities.
type Relationship struct {
	Type RelationshipType
	From Endpoint
	To   Endpoint
}

// EntitySet keeps entities in first-declaration order. Re-declaring a name
// replaces the record in place: last writer wins, on purpose; downstream
// output depends on this exact behavior.
type EntitySet struct {
	names  []string
	byName map[string]*Entity
}

func NewEntitySet() *EntitySet {
	return &EntitySet{byName: make(map[string]*Entity)}
}

func (s *EntitySet) Put(e *Entity) {
	if _, ok := s.byName[e.Name]; !ok {
		s.names = append(s.names, e.Name)
	}
	s.byName[e.Name] = e
}

func (s *EntitySet) Get(name string) (*Entity, bool) {
	e, ok := s.byName[name]
	return e, ok
}

func (s *EntitySet) Has(name string) bool { _, ok := s.byName[name]; return ok }
func (s *EntitySet) Len() int             { return len(s.names) }

// All returns the entities in declaration order.
func (s *EntitySet) All() []*Entity {
	out := make([]*Entity, 0, len(s.names))
	for _, n := range s.names {
		out = append(out, s.byName[n])
	}
	return out
}

// EnumSet mirrors EntitySet for enums: ordered, last-writer-wins.
type EnumSet struct {
	names  []string
	byName map[string]Enum
}

func NewEnumSet() *EnumSet {
	return &EnumSet{byName: make(map[string]Enum)}
}

func (s *EnumSet) Put(e Enum) {
	if _, ok := s.byName[e.Name]; !ok {
		s.names = append(s.names, e.Name)
	}
	s.byName[e.Name] = e
}

func (s *EnumSet) Get(name string) (Enum, bool) {
	e, ok := s.byName[name]
	return e, ok
}

func (s *EnumSet) Has(name string) bool { _, ok := s.byName[name]; return ok }
func (s *EnumSet) Len() int             { return len(s.names) }

func (s *EnumSet) All() []Enum {
	out := make([]Enum, 0, len(s.names))
	for _, n := range s.names {
		out = append(out, s.byName[n])
	}
	return out
}

// Document is the parse result for one DSL document.
type Document struct {
	Entities      *EntitySet
	Enums         *EnumSet
	Relationships []Relationship // declaration order, duplicates retained
}
