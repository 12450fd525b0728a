// Package drift compares the schema registry with a reflected database
// schema and reports where the two disagree.
package drift

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/jrazmi/pollschema/core/schemas"
	"github.com/jrazmi/pollschema/schema/reflector"
)

// Kind classifies a Finding.
type Kind string

const (
	MissingTable      Kind = "missing_table"
	MissingColumn     Kind = "missing_column"
	Nullability       Kind = "nullability"
	TypeFamily        Kind = "type_family"
	MissingPrimaryKey Kind = "missing_primary_key"
	MissingUnique     Kind = "missing_unique"
	MissingForeignKey Kind = "missing_foreign_key"
	OnDeleteMismatch  Kind = "on_delete"
	EnumMismatch      Kind = "enum"
)

// Finding is one disagreement between a model and its table.
type Finding struct {
	Kind   Kind   `json:"kind"`
	Model  string `json:"model"`
	Table  string `json:"table"`
	Column string `json:"column,omitempty"`
	Detail string `json:"detail"`
}

func (f Finding) String() string {
	where := f.Table
	if f.Column != "" {
		where += "." + f.Column
	}
	return fmt.Sprintf("%-20s %-32s %s", f.Kind, where, f.Detail)
}

// Report lists every finding, ordered by table then column.
type Report struct {
	Schema   string    `json:"schema"`
	Findings []Finding `json:"findings"`
}

// OK reports whether the database matches the registry.
func (r Report) OK() bool {
	return len(r.Findings) == 0
}

// Write prints one finding per line.
func (r Report) Write(w io.Writer) error {
	if r.OK() {
		_, err := fmt.Fprintf(w, "schema %s matches the registry\n", r.Schema)
		return err
	}
	if _, err := fmt.Fprintf(w, "schema %s has %d finding(s)\n", r.Schema, len(r.Findings)); err != nil {
		return err
	}
	for _, f := range r.Findings {
		if _, err := fmt.Fprintln(w, f.String()); err != nil {
			return err
		}
	}
	return nil
}

// Compare checks every model of registry against reflected. Tables that
// exist only in the database are ignored.
func Compare(registry *schemas.Registry, reflected *reflector.ReflectedSchema) Report {
	c := comparer{registry: registry, reflected: reflected}
	for _, m := range registry.Models() {
		c.model(m)
	}
	c.enums()

	slices.SortStableFunc(c.findings, func(a, b Finding) int {
		return cmp.Or(cmp.Compare(a.Table, b.Table), cmp.Compare(a.Column, b.Column))
	})
	if c.findings == nil {
		c.findings = []Finding{}
	}
	return Report{Schema: reflected.SchemaName, Findings: c.findings}
}

type comparer struct {
	registry  *schemas.Registry
	reflected *reflector.ReflectedSchema
	findings  []Finding
}

func (c *comparer) add(kind Kind, m *schemas.Model, column, format string, args ...any) {
	c.findings = append(c.findings, Finding{
		Kind:   kind,
		Model:  m.Name,
		Table:  m.Table,
		Column: column,
		Detail: fmt.Sprintf(format, args...),
	})
}

func (c *comparer) model(m *schemas.Model) {
	table, ok := c.reflected.Tables[m.Table]
	if !ok {
		c.add(MissingTable, m, "", "model %s has no table", m.Name)
		return
	}

	for _, f := range m.Fields {
		c.column(m, table, f)
	}

	pk := columnsOf(m, m.PrimaryKey)
	if table.PrimaryKey == nil || !sameSet(pk, table.PrimaryKey.Columns) {
		c.add(MissingPrimaryKey, m, "", "expected primary key (%s)", strings.Join(pk, ", "))
	}

	for _, u := range m.Uniques {
		cols := columnsOf(m, u)
		if !hasUnique(table, cols) {
			c.add(MissingUnique, m, strings.Join(cols, ","), "expected unique index on (%s)", strings.Join(cols, ", "))
		}
	}

	for _, rel := range m.Relations {
		if rel.Owns() {
			c.foreignKeys(m, table, rel)
		}
	}
}

func (c *comparer) column(m *schemas.Model, table *reflector.TableInfo, f schemas.Field) {
	col, ok := table.Column(f.Column)
	if !ok {
		c.add(MissingColumn, m, f.Column, "field %s has no column", f.Name)
		return
	}

	if col.IsNullable != f.Nullable {
		c.add(Nullability, m, f.Column, "field nullable=%t, column nullable=%t", f.Nullable, col.IsNullable)
	}

	if !matchesFamily(f, col) {
		c.add(TypeFamily, m, f.Column, "field type %s does not fit column type %s", f.Type, col.DBType)
	}
}

func (c *comparer) foreignKeys(m *schemas.Model, table *reflector.TableInfo, rel schemas.Relation) {
	target, err := c.registry.Model(rel.Model)
	if err != nil {
		c.add(MissingForeignKey, m, "", "relation %s points at unknown model %s", rel.Name, rel.Model)
		return
	}

	for i, name := range rel.Fields {
		f, _ := m.Field(name)
		ref, _ := target.Field(rel.References[i])

		idx := slices.IndexFunc(table.ForeignKeys, func(fk reflector.ForeignKeyInfo) bool {
			return fk.ColumnName == f.Column && fk.RefTable == target.Table && fk.RefColumn == ref.Column
		})
		if idx < 0 {
			c.add(MissingForeignKey, m, f.Column, "expected foreign key to %s(%s)", target.Table, ref.Column)
			continue
		}

		want := normalizeAction(rel.OnDelete)
		got := normalizeAction(table.ForeignKeys[idx].OnDelete)
		if want != "" && want != got {
			c.add(OnDeleteMismatch, m, f.Column, "expected ON DELETE %s, found %s", want, got)
		}
	}
}

func (c *comparer) enums() {
	roles := schemas.Roles()
	want := make([]string, len(roles))
	for i, r := range roles {
		want[i] = string(r)
	}

	got, ok := c.reflected.Enums["Role"]
	if !ok || !slices.Equal(want, got) {
		c.findings = append(c.findings, Finding{
			Kind:   EnumMismatch,
			Model:  "Role",
			Detail: fmt.Sprintf("expected enum Role (%s), found (%s)", strings.Join(want, ", "), strings.Join(got, ", ")),
		})
	}
}

// =============================================================================
// Helpers
// =============================================================================

var families = map[schemas.FieldType][]string{
	schemas.TypeString:   {"text", "varchar", "char", "bpchar", "citext", "uuid"},
	schemas.TypeInt:      {"int2", "int4", "int8", "smallint", "integer", "bigint"},
	schemas.TypeBoolean:  {"bool", "boolean"},
	schemas.TypeDateTime: {"timestamp", "timestamptz", "date"},
}

func matchesFamily(f schemas.Field, col reflector.ColumnInfo) bool {
	if f.Type == schemas.TypeRole {
		return col.IsEnum && col.DBType == "Role"
	}
	base, _, _ := strings.Cut(col.DBType, "(")
	return slices.Contains(families[f.Type], strings.TrimSpace(base))
}

func columnsOf(m *schemas.Model, fields []string) []string {
	out := make([]string, len(fields))
	for i, name := range fields {
		if f, ok := m.Field(name); ok {
			out[i] = f.Column
		} else {
			out[i] = name
		}
	}
	return out
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	x, y := slices.Clone(a), slices.Clone(b)
	slices.Sort(x)
	slices.Sort(y)
	return slices.Equal(x, y)
}

// hasUnique accepts a unique index or a UNIQUE constraint over cols.
func hasUnique(table *reflector.TableInfo, cols []string) bool {
	for _, idx := range table.Indexes {
		if idx.Unique && sameSet(idx.Columns, cols) {
			return true
		}
	}
	for _, con := range table.Constraints {
		if con.Type == "UNIQUE" && sameSet(constraintColumns(con.Definition), cols) {
			return true
		}
	}
	if table.PrimaryKey != nil && sameSet(table.PrimaryKey.Columns, cols) {
		return true
	}
	return false
}

// constraintColumns reads the column list of a definition such as
// UNIQUE (provider, "providerAccountId").
func constraintColumns(def string) []string {
	_, rest, ok := strings.Cut(def, "(")
	if !ok {
		return nil
	}
	list, _, _ := strings.Cut(rest, ")")
	parts := strings.Split(list, ",")
	for i, p := range parts {
		parts[i] = strings.Trim(strings.TrimSpace(p), `"`)
	}
	return parts
}

func normalizeAction(a string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(a), " ", "_"))
}
