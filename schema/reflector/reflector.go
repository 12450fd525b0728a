// Package reflector reads the live shape of a database schema (tables,
// columns, keys, indexes and enums) and writes it out as JSON or SQL.
package reflector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/jrazmi/pollschema/infrastructure/postgresdb"
)

// FormatVersion is written into every ReflectedSchema.
const FormatVersion = "1.1"

// Reflector orchestrates schema reflection over an injected Store.
type Reflector struct {
	store Store
	log   *slog.Logger
}

// NewReflector creates a new Reflector with the given store. A nil log
// discards warnings.
func NewReflector(store Store, log *slog.Logger) *Reflector {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Reflector{
		store: store,
		log:   log,
	}
}

// Reflect queries the store and returns a complete schema reflection
func (r *Reflector) Reflect(ctx context.Context, schemaName string) (*ReflectedSchema, error) {
	schema := &ReflectedSchema{
		Version:     FormatVersion,
		Source:      r.store.GetSourceType(),
		Database:    r.store.GetDatabaseName(),
		SchemaName:  schemaName,
		ReflectedAt: time.Now().UTC(),
		Tables:      make(map[string]*TableInfo),
	}

	enums, err := r.store.GetEnums(ctx, schemaName)
	if err != nil {
		return nil, fmt.Errorf("get enums: %w", err)
	}
	if enums == nil {
		enums = make(map[string][]string)
	}
	schema.Enums = enums

	tables, err := r.store.GetTables(ctx, schemaName)
	if err != nil {
		return nil, fmt.Errorf("get tables: %w", err)
	}

	for _, tableName := range tables {
		table, err := r.reflectTable(ctx, schemaName, tableName)
		if err != nil {
			return nil, err
		}
		schema.Tables[tableName] = table
	}

	return schema, nil
}

func (r *Reflector) reflectTable(ctx context.Context, schemaName, tableName string) (*TableInfo, error) {
	table := &TableInfo{
		TableName:   tableName,
		Schema:      schemaName,
		Columns:     []ColumnInfo{},
		ForeignKeys: []ForeignKeyInfo{},
		Indexes:     []IndexInfo{},
		Constraints: []ConstraintInfo{},
	}

	columns, err := r.store.GetColumns(ctx, schemaName, tableName)
	if err != nil {
		return nil, fmt.Errorf("get columns for %s: %w", tableName, err)
	}
	table.Columns = columns

	pk, err := r.store.GetPrimaryKey(ctx, schemaName, tableName)
	if err != nil {
		return nil, fmt.Errorf("get primary key for %s: %w", tableName, err)
	}
	if pk == nil {
		r.log.WarnContext(ctx, "table has no primary key", "schema", schemaName, "table", tableName)
	} else {
		table.PrimaryKey = pk
		for i := range table.Columns {
			if slices.Contains(pk.Columns, table.Columns[i].Name) {
				table.Columns[i].IsPrimaryKey = true
			}
		}
	}

	fks, err := r.store.GetForeignKeys(ctx, schemaName, tableName)
	if err != nil {
		return nil, fmt.Errorf("get foreign keys for %s: %w", tableName, err)
	}
	if fks != nil {
		table.ForeignKeys = fks
	}
	for i := range table.Columns {
		for _, fk := range fks {
			if table.Columns[i].Name == fk.ColumnName {
				table.Columns[i].IsForeignKey = true
			}
		}
	}

	indexes, err := r.store.GetIndexes(ctx, schemaName, tableName)
	if err != nil {
		return nil, fmt.Errorf("get indexes for %s: %w", tableName, err)
	}
	if indexes != nil {
		table.Indexes = indexes
	}

	constraints, err := r.store.GetConstraints(ctx, schemaName, tableName)
	if err != nil {
		return nil, fmt.Errorf("get constraints for %s: %w", tableName, err)
	}
	if constraints != nil {
		table.Constraints = constraints
	}

	comment, err := r.store.GetTableComment(ctx, schemaName, tableName)
	if err != nil {
		r.log.WarnContext(ctx, "could not read table comment", "table", tableName, "err", err)
	}
	table.Comment = comment

	return table, nil
}

// =============================================================================
// Output
// =============================================================================

// WriteJSON writes the schema to a JSON file
func WriteJSON(schema *ReflectedSchema, filePath string) error {
	return writeFile(filePath, func(w io.Writer) error {
		return EncodeJSON(w, schema)
	})
}

// WriteSQL writes the schema to an SQL file (documentation format)
func WriteSQL(schema *ReflectedSchema, filePath string) error {
	return writeFile(filePath, func(w io.Writer) error {
		return EncodeSQL(w, schema)
	})
}

// ReadJSON loads a schema written by WriteJSON.
func ReadJSON(filePath string) (*ReflectedSchema, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var schema ReflectedSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filePath, err)
	}
	return &schema, nil
}

func writeFile(filePath string, write func(io.Writer) error) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// EncodeJSON writes the schema as indented JSON.
func EncodeJSON(w io.Writer, schema *ReflectedSchema) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(schema)
}

// EncodeSQL writes the schema as DDL. Identifiers are quoted.
func EncodeSQL(w io.Writer, schema *ReflectedSchema) error {
	var b strings.Builder

	fmt.Fprintf(&b, "-- =============================================================================\n")
	fmt.Fprintf(&b, "-- Schema Reflection: %s.%s\n", schema.Database, schema.SchemaName)
	fmt.Fprintf(&b, "-- Reflected at: %s\n", schema.ReflectedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "-- Tables: %d\n", len(schema.Tables))
	fmt.Fprintf(&b, "-- =============================================================================\n\n")

	for _, name := range slices.Sorted(maps.Keys(schema.Enums)) {
		typ, err := qualified(schema.SchemaName, name)
		if err != nil {
			return err
		}
		labels := make([]string, len(schema.Enums[name]))
		for i, l := range schema.Enums[name] {
			labels[i] = "'" + escapeSQLString(l) + "'"
		}
		fmt.Fprintf(&b, "CREATE TYPE %s AS ENUM (%s);\n\n", typ, strings.Join(labels, ", "))
	}

	for _, tableName := range slices.Sorted(maps.Keys(schema.Tables)) {
		if err := writeTableSQL(&b, schema.Tables[tableName]); err != nil {
			return fmt.Errorf("write table %s: %w", tableName, err)
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func qualified(schema, name string) (string, error) {
	s, err := postgresdb.QuoteIdentifier(schema)
	if err != nil {
		return "", err
	}
	n, err := postgresdb.QuoteIdentifier(name)
	if err != nil {
		return "", err
	}
	return s + "." + n, nil
}

func quoteAll(names []string) (string, error) {
	quoted := make([]string, len(names))
	for i, n := range names {
		q, err := postgresdb.QuoteIdentifier(n)
		if err != nil {
			return "", err
		}
		quoted[i] = q
	}
	return strings.Join(quoted, ", "), nil
}

// writeTableSQL writes a single table's SQL definition
func writeTableSQL(b *strings.Builder, table *TableInfo) error {
	name, err := qualified(table.Schema, table.TableName)
	if err != nil {
		return err
	}

	fmt.Fprintf(b, "-- -----------------------------------------------------------------------------\n")
	fmt.Fprintf(b, "-- Table: %s\n", table.TableName)
	if table.Comment != "" {
		fmt.Fprintf(b, "-- %s\n", table.Comment)
	}
	fmt.Fprintf(b, "-- -----------------------------------------------------------------------------\n")
	fmt.Fprintf(b, "CREATE TABLE %s (\n", name)

	lines := make([]string, 0, len(table.Columns)+len(table.ForeignKeys)+1)
	for _, col := range table.Columns {
		colName, err := postgresdb.QuoteIdentifier(col.Name)
		if err != nil {
			return err
		}
		dbType := col.DBType
		if col.IsEnum {
			if dbType, err = qualified(table.Schema, col.DBType); err != nil {
				return err
			}
		}

		line := fmt.Sprintf("    %s %s", colName, dbType)
		if !col.IsNullable {
			line += " NOT NULL"
		}
		if col.HasDefault && col.DefaultValue != "" {
			line += " DEFAULT " + col.DefaultValue
		}
		lines = append(lines, line)
	}

	if table.PrimaryKey != nil {
		cols, err := quoteAll(table.PrimaryKey.Columns)
		if err != nil {
			return err
		}
		lines = append(lines, fmt.Sprintf("    PRIMARY KEY (%s)", cols))
	}

	for _, fk := range table.ForeignKeys {
		col, err := postgresdb.QuoteIdentifier(fk.ColumnName)
		if err != nil {
			return err
		}
		ref, err := qualified(fk.RefSchema, fk.RefTable)
		if err != nil {
			return err
		}
		refCol, err := postgresdb.QuoteIdentifier(fk.RefColumn)
		if err != nil {
			return err
		}

		line := fmt.Sprintf("    FOREIGN KEY (%s) REFERENCES %s(%s)", col, ref, refCol)
		if fk.OnDelete != "" && fk.OnDelete != "NO_ACTION" {
			line += " ON DELETE " + strings.ReplaceAll(fk.OnDelete, "_", " ")
		}
		if fk.OnUpdate != "" && fk.OnUpdate != "NO_ACTION" {
			line += " ON UPDATE " + strings.ReplaceAll(fk.OnUpdate, "_", " ")
		}
		lines = append(lines, line)
	}

	for _, c := range table.Constraints {
		if c.Type == "CHECK" {
			lines = append(lines, fmt.Sprintf("    CONSTRAINT %s %s", c.Name, c.Definition))
		}
	}

	b.WriteString(strings.Join(lines, ",\n"))
	b.WriteString("\n);\n")

	for _, idx := range table.Indexes {
		unique := ""
		if idx.Unique {
			unique = "UNIQUE "
		}
		idxName, err := postgresdb.QuoteIdentifier(idx.Name)
		if err != nil {
			return err
		}
		cols, err := quoteAll(idx.Columns)
		if err != nil {
			return err
		}
		method := idx.Method
		if method == "" {
			method = "btree"
		}
		fmt.Fprintf(b, "CREATE %sINDEX %s ON %s USING %s (%s);\n", unique, idxName, name, method, cols)
	}

	if table.Comment != "" {
		fmt.Fprintf(b, "\nCOMMENT ON TABLE %s IS '%s';\n", name, escapeSQLString(table.Comment))
	}
	for _, col := range table.Columns {
		if col.Comment == "" {
			continue
		}
		colName, err := postgresdb.QuoteIdentifier(col.Name)
		if err != nil {
			return err
		}
		fmt.Fprintf(b, "COMMENT ON COLUMN %s.%s IS '%s';\n", name, colName, escapeSQLString(col.Comment))
	}

	return nil
}

// escapeSQLString escapes single quotes in SQL strings
func escapeSQLString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
