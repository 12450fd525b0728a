package schemas

import (
	"fmt"
	"slices"
	"strings"
)

// FieldType is the scalar type of a column as seen by the data model.
type FieldType string

const (
	TypeString   FieldType = "String"
	TypeInt      FieldType = "Int"
	TypeBoolean  FieldType = "Boolean"
	TypeDateTime FieldType = "DateTime"
	TypeRole     FieldType = "Role"
)

// Formats applied to string columns.
const (
	FormatCUID  = "cuid"
	FormatUUID  = "uuid"
	FormatEmail = "email"
	FormatURL   = "url"
	FormatSlug  = "slug"
)

// RelationKind tells whether a relation points at one record or many.
type RelationKind string

const (
	ToOne  RelationKind = "one"
	ToMany RelationKind = "many"
)

// Field describes one scalar column.
type Field struct {
	Name       string    `json:"name"`
	Column     string    `json:"column"`
	Type       FieldType `json:"type"`
	Nullable   bool      `json:"nullable,omitempty"`
	ID         bool      `json:"id,omitempty"`
	Unique     bool      `json:"unique,omitempty"`
	Default    string    `json:"default,omitempty"`
	Format     string    `json:"format,omitempty"`
	UpdatedAt  bool      `json:"updatedAt,omitempty"`
	ForeignKey bool      `json:"foreignKey,omitempty"`
}

// Relation describes a link to another model. Fields and References are set
// on the side that owns the foreign key.
type Relation struct {
	Name       string       `json:"name"`
	Model      string       `json:"model"`
	Kind       RelationKind `json:"kind"`
	Optional   bool         `json:"optional,omitempty"`
	Fields     []string     `json:"fields,omitempty"`
	References []string     `json:"references,omitempty"`
	OnDelete   string       `json:"onDelete,omitempty"`
}

// Owns reports whether the foreign key of r lives on this side.
func (r Relation) Owns() bool {
	return len(r.Fields) > 0
}

// Model is the descriptor of one entity: its table, columns, relations,
// unique keys and the Go shapes that validate its payloads.
type Model struct {
	Name       string
	Table      string
	Fields     []Field
	Relations  []Relation
	PrimaryKey []string
	Uniques    [][]string

	shapes map[Shape]func() any
}

// Descriptor is the JSON form of a Model.
type Descriptor struct {
	Name       string     `json:"name"`
	Table      string     `json:"table"`
	Fields     []Field    `json:"fields"`
	Relations  []Relation `json:"relations"`
	PrimaryKey []string   `json:"primaryKey"`
	UniqueKeys []string   `json:"uniqueKeys"`
	Shapes     []Shape    `json:"shapes"`
}

// Field returns the field named name.
func (m *Model) Field(name string) (Field, bool) {
	for _, f := range m.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func (m *Model) hasField(name string) bool {
	_, ok := m.Field(name)
	return ok
}

// Relation returns the relation named name.
func (m *Model) Relation(name string) (Relation, bool) {
	for _, r := range m.Relations {
		if r.Name == name {
			return r, true
		}
	}
	return Relation{}, false
}

// UniqueKeys lists every way a record can be selected uniquely, as the key
// names accepted by the where-unique shape. Compound keys are joined with "_".
func (m *Model) UniqueKeys() []string {
	keys := make([]string, 0, len(m.Uniques)+1)
	if len(m.PrimaryKey) > 0 {
		keys = append(keys, strings.Join(m.PrimaryKey, "_"))
	}
	for _, u := range m.Uniques {
		key := strings.Join(u, "_")
		if !slices.Contains(keys, key) {
			keys = append(keys, key)
		}
	}
	return keys
}

// Shapes lists the registered shapes in a stable order.
func (m *Model) Shapes() []Shape {
	out := make([]Shape, 0, len(m.shapes))
	for _, s := range AllShapes() {
		if _, ok := m.shapes[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// New returns a pointer to a zero value of the given shape.
func (m *Model) New(shape Shape) (any, error) {
	ctor, ok := m.shapes[shape]
	if !ok {
		return nil, fmt.Errorf("%s.%s: %w", m.Name, shape, ErrShapeNotFound)
	}
	return ctor(), nil
}

// Describe returns the JSON descriptor of m.
func (m *Model) Describe() Descriptor {
	rels := m.Relations
	if rels == nil {
		rels = []Relation{}
	}
	return Descriptor{
		Name:       m.Name,
		Table:      m.Table,
		Fields:     m.Fields,
		Relations:  rels,
		PrimaryKey: m.PrimaryKey,
		UniqueKeys: m.UniqueKeys(),
		Shapes:     m.Shapes(),
	}
}

func ctor[T any]() func() any {
	return func() any { return new(T) }
}
