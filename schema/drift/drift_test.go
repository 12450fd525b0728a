package drift

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrazmi/pollschema/core/schemas"
	"github.com/jrazmi/pollschema/schema/reflector"
)

var dbTypes = map[schemas.FieldType]string{
	schemas.TypeString:   "text",
	schemas.TypeInt:      "int4",
	schemas.TypeBoolean:  "bool",
	schemas.TypeDateTime: "timestamp",
}

// mirror builds the reflection a freshly migrated database would produce.
func mirror(t *testing.T, r *schemas.Registry) *reflector.ReflectedSchema {
	t.Helper()

	rs := &reflector.ReflectedSchema{
		SchemaName: "public",
		Tables:     make(map[string]*reflector.TableInfo),
		Enums:      map[string][]string{"Role": {"USER", "ADMIN"}},
	}

	for _, m := range r.Models() {
		table := &reflector.TableInfo{TableName: m.Table, Schema: "public"}
		for _, f := range m.Fields {
			col := reflector.ColumnInfo{Name: f.Column, IsNullable: f.Nullable, DBType: dbTypes[f.Type]}
			if f.Format == schemas.FormatUUID {
				col.DBType = "uuid"
			}
			if f.Type == schemas.TypeRole {
				col.DBType, col.IsEnum = "Role", true
			}
			table.Columns = append(table.Columns, col)
		}

		table.PrimaryKey = &reflector.PrimaryKeyInfo{Name: m.Table + "_pkey", Columns: columnsOf(m, m.PrimaryKey)}
		for _, u := range m.Uniques {
			cols := columnsOf(m, u)
			table.Indexes = append(table.Indexes, reflector.IndexInfo{
				Name:    m.Table + "_" + strings.Join(cols, "_") + "_key",
				Columns: cols,
				Unique:  true,
				Method:  "btree",
			})
		}

		for _, rel := range m.Relations {
			if !rel.Owns() {
				continue
			}
			target, err := r.Model(rel.Model)
			require.NoError(t, err)
			for i, name := range rel.Fields {
				f, _ := m.Field(name)
				ref, _ := target.Field(rel.References[i])
				table.ForeignKeys = append(table.ForeignKeys, reflector.ForeignKeyInfo{
					Name:       m.Table + "_" + f.Column + "_fkey",
					ColumnName: f.Column,
					RefTable:   target.Table,
					RefColumn:  ref.Column,
					OnDelete:   strings.ReplaceAll(rel.OnDelete, " ", "_"),
					OnUpdate:   "CASCADE",
				})
			}
		}
		rs.Tables[m.Table] = table
	}
	return rs
}

func kinds(r Report) []Kind {
	out := make([]Kind, len(r.Findings))
	for i, f := range r.Findings {
		out[i] = f.Kind
	}
	return out
}

func TestCompare_Matching(t *testing.T) {
	reg := schemas.Default()
	rs := mirror(t, reg)
	rs.Tables["schema_migrations"] = &reflector.TableInfo{TableName: "schema_migrations"}

	report := Compare(reg, rs)
	assert.True(t, report.OK(), "%v", report.Findings)
	assert.NotNil(t, report.Findings)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf))
	assert.Equal(t, "schema public matches the registry\n", buf.String())
}

func TestCompare_Findings(t *testing.T) {
	reg := schemas.Default()

	tests := []struct {
		name   string
		mutate func(rs *reflector.ReflectedSchema)
		want   Finding
	}{
		{
			name:   "missing table",
			mutate: func(rs *reflector.ReflectedSchema) { delete(rs.Tables, "blog_likes") },
			want:   Finding{Kind: MissingTable, Model: "BlogLike", Table: "blog_likes"},
		},
		{
			name: "missing column",
			mutate: func(rs *reflector.ReflectedSchema) {
				tbl := rs.Tables["polls"]
				tbl.Columns = slices.DeleteFunc(tbl.Columns, func(c reflector.ColumnInfo) bool { return c.Name == "closes_at" })
			},
			want: Finding{Kind: MissingColumn, Model: "Poll", Table: "polls", Column: "closes_at"},
		},
		{
			name: "nullability",
			mutate: func(rs *reflector.ReflectedSchema) {
				rs.Tables["users"].Columns[2].IsNullable = false
			},
			want: Finding{Kind: Nullability, Model: "User", Table: "users", Column: "email"},
		},
		{
			name: "type family",
			mutate: func(rs *reflector.ReflectedSchema) {
				rs.Tables["poll_options"].Columns[3].DBType = "text"
			},
			want: Finding{Kind: TypeFamily, Model: "PollOption", Table: "poll_options", Column: "position"},
		},
		{
			name: "role column not an enum",
			mutate: func(rs *reflector.ReflectedSchema) {
				col := &rs.Tables["users"].Columns[5]
				col.DBType, col.IsEnum = "text", false
			},
			want: Finding{Kind: TypeFamily, Model: "User", Table: "users", Column: "role"},
		},
		{
			name: "compound primary key",
			mutate: func(rs *reflector.ReflectedSchema) {
				rs.Tables["verification_tokens"].PrimaryKey.Columns = []string{"token"}
			},
			want: Finding{Kind: MissingPrimaryKey, Model: "VerificationToken", Table: "verification_tokens"},
		},
		{
			name: "compound unique",
			mutate: func(rs *reflector.ReflectedSchema) {
				rs.Tables["votes"].Indexes[1].Unique = false
			},
			want: Finding{Kind: MissingUnique, Model: "Vote", Table: "votes", Column: "option_id,voter_token"},
		},
		{
			name: "foreign key",
			mutate: func(rs *reflector.ReflectedSchema) {
				rs.Tables["polls"].ForeignKeys = nil
			},
			want: Finding{Kind: MissingForeignKey, Model: "Poll", Table: "polls", Column: "category_id"},
		},
		{
			name: "on delete",
			mutate: func(rs *reflector.ReflectedSchema) {
				rs.Tables["polls"].ForeignKeys[0].OnDelete = "CASCADE"
			},
			want: Finding{Kind: OnDeleteMismatch, Model: "Poll", Table: "polls", Column: "category_id"},
		},
		{
			name: "enum labels",
			mutate: func(rs *reflector.ReflectedSchema) {
				rs.Enums["Role"] = []string{"USER"}
			},
			want: Finding{Kind: EnumMismatch, Model: "Role"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := mirror(t, reg)
			tt.mutate(rs)

			report := Compare(reg, rs)
			require.Len(t, report.Findings, 1, "%v", report.Findings)
			got := report.Findings[0]
			assert.NotEmpty(t, got.Detail)
			got.Detail = ""
			assert.Equal(t, tt.want, got)
			assert.False(t, report.OK())
		})
	}
}

func TestCompare_UniqueConstraintCounts(t *testing.T) {
	reg := schemas.Default()
	rs := mirror(t, reg)

	tbl := rs.Tables["accounts"]
	tbl.Indexes = nil
	tbl.Constraints = []reflector.ConstraintInfo{
		{Name: "accounts_provider_key", Type: "UNIQUE", Definition: `UNIQUE (provider, "provider_account_id")`},
	}

	assert.True(t, Compare(reg, rs).OK())
}

func TestCompare_SortedAndWritten(t *testing.T) {
	reg := schemas.Default()
	rs := mirror(t, reg)
	delete(rs.Tables, "votes")
	delete(rs.Tables, "authors")
	rs.Tables["users"].Columns[2].IsNullable = false

	report := Compare(reg, rs)
	assert.Equal(t, []Kind{MissingTable, Nullability, MissingTable}, kinds(report))
	assert.Equal(t, "authors", report.Findings[0].Table)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "schema public has 3 finding(s)", lines[0])
	assert.Contains(t, lines[3], "votes")
}

func TestMatchesFamily(t *testing.T) {
	str := schemas.Field{Type: schemas.TypeString}
	assert.True(t, matchesFamily(str, reflector.ColumnInfo{DBType: "varchar(255)"}))
	assert.True(t, matchesFamily(str, reflector.ColumnInfo{DBType: "uuid"}))
	assert.False(t, matchesFamily(str, reflector.ColumnInfo{DBType: "int4"}))

	ts := schemas.Field{Type: schemas.TypeDateTime}
	assert.True(t, matchesFamily(ts, reflector.ColumnInfo{DBType: "timestamptz"}))
	assert.False(t, matchesFamily(ts, reflector.ColumnInfo{DBType: "text"}))
}

func TestNormalizeAction(t *testing.T) {
	assert.Equal(t, "SET_NULL", normalizeAction("set null"))
	assert.Equal(t, "NO_ACTION", normalizeAction("NO_ACTION"))
}
