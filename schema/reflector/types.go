package reflector

import (
	"context"
	"time"
)

// ReflectedSchema represents the complete schema reflection for a single database schema
type ReflectedSchema struct {
	Version     string                `json:"version"`
	Source      string                `json:"source"`
	Database    string                `json:"database"`
	SchemaName  string                `json:"schema_name"`
	ReflectedAt time.Time             `json:"reflected_at"`
	Tables      map[string]*TableInfo `json:"tables"`
	Enums       map[string][]string   `json:"enums"`
}

// TableInfo represents a single table's metadata
type TableInfo struct {
	TableName   string           `json:"table_name"`
	Schema      string           `json:"schema"`
	PrimaryKey  *PrimaryKeyInfo  `json:"primary_key"`
	Columns     []ColumnInfo     `json:"columns"`
	ForeignKeys []ForeignKeyInfo `json:"foreign_keys"`
	Indexes     []IndexInfo      `json:"indexes"`
	Constraints []ConstraintInfo `json:"constraints"`
	Comment     string           `json:"comment,omitempty"`
}

// Column returns the column named name.
func (t *TableInfo) Column(name string) (ColumnInfo, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return ColumnInfo{}, false
}

// ColumnInfo represents a single column's metadata
type ColumnInfo struct {
	Name         string `json:"name"`
	DBType       string `json:"db_type"` // e.g. "uuid", "varchar(255)", "Role"
	IsEnum       bool   `json:"is_enum,omitempty"`
	IsNullable   bool   `json:"is_nullable"`
	IsPrimaryKey bool   `json:"is_primary_key"`
	IsForeignKey bool   `json:"is_foreign_key"`
	DefaultValue string `json:"default_value,omitempty"`
	HasDefault   bool   `json:"has_default"`
	MaxLength    int    `json:"max_length,omitempty"`
	Precision    int    `json:"precision,omitempty"`
	Scale        int    `json:"scale,omitempty"`
	Comment      string `json:"comment,omitempty"`
}

// PrimaryKeyInfo lists the primary key columns in key order.
type PrimaryKeyInfo struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
}

// ForeignKeyInfo represents a foreign key relationship
type ForeignKeyInfo struct {
	Name       string `json:"name"`
	ColumnName string `json:"column_name"`
	RefTable   string `json:"ref_table"`
	RefSchema  string `json:"ref_schema"`
	RefColumn  string `json:"ref_column"`
	OnDelete   string `json:"on_delete"` // CASCADE, SET_NULL, RESTRICT, NO_ACTION
	OnUpdate   string `json:"on_update"`
}

// IndexInfo represents an index
type IndexInfo struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Unique  bool     `json:"unique"`
	Method  string   `json:"method"` // btree, hash, gin, gist, etc.
}

// ConstraintInfo represents a table constraint (CHECK, UNIQUE, EXCLUDE)
type ConstraintInfo struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Definition string `json:"definition"`
}

// Store is the interface that database stores must implement for reflection
type Store interface {
	GetTables(ctx context.Context, schemaName string) ([]string, error)
	GetColumns(ctx context.Context, schemaName, tableName string) ([]ColumnInfo, error)

	// GetPrimaryKey returns nil without error when the table has no primary key.
	GetPrimaryKey(ctx context.Context, schemaName, tableName string) (*PrimaryKeyInfo, error)
	GetForeignKeys(ctx context.Context, schemaName, tableName string) ([]ForeignKeyInfo, error)
	GetIndexes(ctx context.Context, schemaName, tableName string) ([]IndexInfo, error)
	GetConstraints(ctx context.Context, schemaName, tableName string) ([]ConstraintInfo, error)
	GetTableComment(ctx context.Context, schemaName, tableName string) (string, error)

	// GetEnums returns each enum type of the schema with its labels in sort order.
	GetEnums(ctx context.Context, schemaName string) (map[string][]string, error)

	GetDatabaseName() string
	GetSourceType() string
}
