package reflector

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	tables  map[string]*TableInfo
	enums   map[string][]string
	failOn  string
	comment error
}

func (f *fakeStore) GetTables(ctx context.Context, schemaName string) ([]string, error) {
	if f.failOn == "tables" {
		return nil, errors.New("connection reset")
	}
	names := make([]string, 0, len(f.tables))
	for _, n := range []string{"users", "verification_tokens", "audit_log"} {
		if _, ok := f.tables[n]; ok {
			names = append(names, n)
		}
	}
	return names, nil
}

func (f *fakeStore) GetColumns(ctx context.Context, schemaName, tableName string) ([]ColumnInfo, error) {
	if f.failOn == "columns" {
		return nil, errors.New("permission denied")
	}
	return append([]ColumnInfo(nil), f.tables[tableName].Columns...), nil
}

func (f *fakeStore) GetPrimaryKey(ctx context.Context, schemaName, tableName string) (*PrimaryKeyInfo, error) {
	return f.tables[tableName].PrimaryKey, nil
}

func (f *fakeStore) GetForeignKeys(ctx context.Context, schemaName, tableName string) ([]ForeignKeyInfo, error) {
	return f.tables[tableName].ForeignKeys, nil
}

func (f *fakeStore) GetIndexes(ctx context.Context, schemaName, tableName string) ([]IndexInfo, error) {
	return f.tables[tableName].Indexes, nil
}

func (f *fakeStore) GetConstraints(ctx context.Context, schemaName, tableName string) ([]ConstraintInfo, error) {
	return nil, nil
}

func (f *fakeStore) GetTableComment(ctx context.Context, schemaName, tableName string) (string, error) {
	if f.comment != nil {
		return "", f.comment
	}
	return f.tables[tableName].Comment, nil
}

func (f *fakeStore) GetEnums(ctx context.Context, schemaName string) (map[string][]string, error) {
	return f.enums, nil
}

func (f *fakeStore) GetDatabaseName() string { return "pollschema" }
func (f *fakeStore) GetSourceType() string   { return "postgres" }

func newFakeStore() *fakeStore {
	return &fakeStore{
		enums: map[string][]string{"Role": {"USER", "ADMIN"}},
		tables: map[string]*TableInfo{
			"users": {
				Comment:    "registered people",
				PrimaryKey: &PrimaryKeyInfo{Name: "users_pkey", Columns: []string{"id"}},
				Columns: []ColumnInfo{
					{Name: "id", DBType: "text"},
					{Name: "email", DBType: "text", IsNullable: true},
					{Name: "role", DBType: "Role", IsEnum: true, HasDefault: true, DefaultValue: "USER"},
				},
				Indexes: []IndexInfo{{Name: "users_email_key", Columns: []string{"email"}, Unique: true, Method: "btree"}},
			},
			"verification_tokens": {
				PrimaryKey: &PrimaryKeyInfo{Name: "verification_tokens_pkey", Columns: []string{"identifier", "token"}},
				Columns: []ColumnInfo{
					{Name: "identifier", DBType: "text"},
					{Name: "token", DBType: "text"},
					{Name: "expires", DBType: "timestamp"},
				},
			},
			"audit_log": {
				Columns: []ColumnInfo{
					{Name: "user_id", DBType: "text", IsNullable: true},
				},
				ForeignKeys: []ForeignKeyInfo{
					{Name: "audit_log_user_id_fkey", ColumnName: "user_id", RefSchema: "public", RefTable: "users", RefColumn: "id", OnDelete: "SET_NULL", OnUpdate: "CASCADE"},
				},
			},
		},
	}
}

func TestReflect(t *testing.T) {
	schema, err := NewReflector(newFakeStore(), nil).Reflect(context.Background(), "public")
	require.NoError(t, err)

	assert.Equal(t, FormatVersion, schema.Version)
	assert.Equal(t, "pollschema", schema.Database)
	assert.Equal(t, []string{"USER", "ADMIN"}, schema.Enums["Role"])
	require.Len(t, schema.Tables, 3)

	vt := schema.Tables["verification_tokens"]
	for _, c := range vt.Columns {
		assert.Equal(t, c.Name != "expires", c.IsPrimaryKey, c.Name)
	}

	audit := schema.Tables["audit_log"]
	assert.Nil(t, audit.PrimaryKey)
	assert.True(t, audit.Columns[0].IsForeignKey)
	assert.NotNil(t, audit.Indexes)
	assert.NotNil(t, audit.Constraints)
}

func TestReflect_Errors(t *testing.T) {
	store := newFakeStore()
	store.failOn = "columns"
	_, err := NewReflector(store, nil).Reflect(context.Background(), "public")
	assert.ErrorContains(t, err, "get columns for users")

	store = newFakeStore()
	store.comment = errors.New("no comment")
	schema, err := NewReflector(store, nil).Reflect(context.Background(), "public")
	require.NoError(t, err)
	assert.Empty(t, schema.Tables["users"].Comment)
}

func TestEncodeSQL(t *testing.T) {
	schema, err := NewReflector(newFakeStore(), nil).Reflect(context.Background(), "public")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeSQL(&buf, schema))
	out := buf.String()

	assert.Contains(t, out, `CREATE TYPE "public"."Role" AS ENUM ('USER', 'ADMIN');`)
	assert.Contains(t, out, `CREATE TABLE "public"."users" (`)
	assert.Contains(t, out, `    "role" "public"."Role" NOT NULL DEFAULT USER`)
	assert.Contains(t, out, `    "email" text,`)
	assert.Contains(t, out, `    PRIMARY KEY ("identifier", "token")`)
	assert.Contains(t, out, `FOREIGN KEY ("user_id") REFERENCES "public"."users"("id") ON DELETE SET NULL ON UPDATE CASCADE`)
	assert.Contains(t, out, `CREATE UNIQUE INDEX "users_email_key" ON "public"."users" USING btree ("email");`)
	assert.Contains(t, out, `COMMENT ON TABLE "public"."users" IS 'registered people';`)

	assert.Less(t, bytes.Index(buf.Bytes(), []byte("audit_log")), bytes.Index(buf.Bytes(), []byte(`"public"."users" (`)))
}

func TestEncodeSQL_RejectsBadIdentifiers(t *testing.T) {
	schema := &ReflectedSchema{
		SchemaName: "public",
		Tables: map[string]*TableInfo{
			"x": {TableName: `x"; drop`, Schema: "public"},
		},
	}
	assert.Error(t, EncodeSQL(&bytes.Buffer{}, schema))
}

func TestWriteAndReadJSON(t *testing.T) {
	schema, err := NewReflector(newFakeStore(), nil).Reflect(context.Background(), "public")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "public.json")
	require.NoError(t, WriteJSON(schema, path))
	require.NoError(t, WriteSQL(schema, filepath.Join(t.TempDir(), "public.sql")))

	got, err := ReadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, schema.Enums, got.Enums)
	assert.Equal(t, schema.Tables["users"].Columns, got.Tables["users"].Columns)
	assert.Equal(t, []string{"identifier", "token"}, got.Tables["verification_tokens"].PrimaryKey.Columns)
}

func TestCleanDefaultValue(t *testing.T) {
	tests := map[string]string{
		`'USER'::"Role"`:         "USER",
		"'x'::character varying": "x",
		"CURRENT_TIMESTAMP":      "CURRENT_TIMESTAMP",
		"gen_random_uuid()":      "gen_random_uuid()",
		"'{}'::text[]":           "{}",
		"0":                      "0",
	}
	for in, want := range tests {
		assert.Equal(t, want, cleanDefaultValue(in), in)
	}
}

func TestNormalizePostgresType(t *testing.T) {
	n := int64(255)
	assert.Equal(t, "varchar(255)", normalizePostgresType("character varying", "varchar", &n, nil, nil))
	assert.Equal(t, "timestamp", normalizePostgresType("timestamp without time zone", "timestamp", nil, nil, nil))
	assert.Equal(t, "Role", normalizePostgresType("USER-DEFINED", "Role", nil, nil, nil))
	assert.Equal(t, "text[]", normalizePostgresType("ARRAY", "_text", nil, nil, nil))
}
