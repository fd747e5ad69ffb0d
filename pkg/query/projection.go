// Package query provides a fluent SQL query builder with column projection
// mapping between view-model field names and database columns.
package query

import "strings"

// ProjectionMap maps view-model field names to aliased database columns
// for a single table.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	order   []string
	columns map[string]string
}

// NewProjectionMap creates a projection for the given schema-qualified table and alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema:  schema,
		table:   table,
		alias:   alias,
		columns: make(map[string]string),
	}
}

// Project registers a database column under a view-model field name.
// Registration order determines column order in generated SELECT lists.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	p.order = append(p.order, field)
	p.columns[field] = p.alias + "." + column
	return p
}

// Alias returns the table alias.
func (p *ProjectionMap) Alias() string {
	return p.alias
}

// Table returns the schema-qualified table name with its alias.
func (p *ProjectionMap) Table() string {
	return p.schema + "." + p.table + " " + p.alias
}

// Column returns the aliased column for a view-model field name.
// Unknown fields are returned unchanged.
func (p *ProjectionMap) Column(field string) string {
	if col, ok := p.columns[field]; ok {
		return col
	}
	return field
}

// Columns returns the comma-separated SELECT list in registration order.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.ColumnList(), ", ")
}

// ColumnList returns the aliased columns in registration order.
func (p *ProjectionMap) ColumnList() []string {
	list := make([]string, len(p.order))
	for i, field := range p.order {
		list[i] = p.columns[field]
	}
	return list
}
