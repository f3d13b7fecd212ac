// Package schema holds the resolved (post-resolution) model — Table,
// Field, DataType and TableCollection — plus the resolver that turns a
// set of rawast.RawTable values into it: dependency ordering, foreign-key
// expansion and validation (spec.md §3.2, §4.3).
//
// Grounded on the original Rust implementation's lib/src/types.rs
// (Table::parse_raw_tables, Table::parse), rewritten around an explicit
// working set keyed by table name (a map from name to raw table plus a
// sorted slice of pending names) rather than Rc<RefCell<_>>.
package schema

import (
	"sort"

	"github.com/letsmelon/tsql-go/internal/rawast"
	"github.com/letsmelon/tsql-go/internal/tsqlerr"
)

// Field is a single resolved column.
type Field struct {
	Name     string
	Datatype DataType
	// ForeignKeyReference is set when this field was synthesized from a
	// referenced table's primary-key column (spec.md §3.2). It holds a
	// by-value snapshot of that column, sufficient for emission and safe
	// because the dependency graph is a DAG (no cycle can arise).
	ForeignKeyReference *ForeignKeyReference
}

// ForeignKeyReference names the table a synthesized field was expanded
// from, plus a snapshot of the referenced primary-key field itself.
type ForeignKeyReference struct {
	Table string
	Field Field
}

// TableExtra holds table-level metadata; today only the ordered
// primary-key field-name list.
type TableExtra struct {
	PrimaryKey []string
}

// Table is one resolved table: sentinel-free fields plus primary-key
// metadata.
type Table struct {
	Name string
	// FieldOrder is the deterministic iteration order for Fields —
	// source declaration order for real fields, with synthesized
	// foreign-key columns appended in primary-key order immediately
	// after the virtual field that produced them.
	FieldOrder []string
	Fields     map[string]Field
	Extra      TableExtra
}

// GetField looks up a resolved field by name.
func (t *Table) GetField(name string) (Field, bool) {
	f, ok := t.Fields[name]
	return f, ok
}

// TableCollection is an ordered mapping from table name to resolved
// Table. Iteration is always lexicographic by name (spec.md §3.2) via
// Names/Each below, so downstream output is deterministic regardless of
// Go's randomized map order.
type TableCollection struct {
	tables map[string]*Table
	order  []string // resolution order, for internal bookkeeping only
}

// NewTableCollection builds an (initially empty) collection.
func NewTableCollection() *TableCollection {
	return &TableCollection{tables: map[string]*Table{}}
}

// Get looks up a resolved table by name.
func (c *TableCollection) Get(name string) (*Table, bool) {
	t, ok := c.tables[name]
	return t, ok
}

// Len returns the number of resolved tables.
func (c *TableCollection) Len() int {
	return len(c.tables)
}

func (c *TableCollection) insert(t *Table) {
	c.tables[t.Name] = t
	c.order = append(c.order, t.Name)
}

// Names returns every table name in lexicographic order.
func (c *TableCollection) Names() []string {
	names := make([]string, 0, len(c.tables))
	for name := range c.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Each calls fn for every resolved table in lexicographic name order.
func (c *TableCollection) Each(fn func(*Table)) {
	for _, name := range c.Names() {
		fn(c.tables[name])
	}
}

// NewTableCollectionForGenerated wraps a single already-built Table (as
// produced by internal/generate, which never goes through the resolver) in
// a TableCollection so callers can reuse internal/emit's formatters.
func NewTableCollectionForGenerated(t *Table) *TableCollection {
	c := NewTableCollection()
	c.insert(t)
	return c
}

// Resolve is the resolver entry point (spec.md §4.3): it orders raw
// tables so every foreign-key reference resolves against an
// already-resolved table, expands @foreign_key() fields into concrete
// columns, and validates primary keys. The order of rawTables does not
// matter: resolution order is fixed by dependencyOrder below (spec.md
// §4.3.1's "ties broken by lexicographic name order"), and the returned
// collection iterates in lexicographic name order.
func Resolve(rawTables []rawast.RawTable) (*TableCollection, error) {
	byName := make(map[string]*rawast.RawTable, len(rawTables))
	for i := range rawTables {
		byName[rawTables[i].Name] = &rawTables[i]
	}

	order, err := dependencyOrder(byName)
	if err != nil {
		return nil, err
	}

	resolved := NewTableCollection()
	for _, name := range order {
		raw := byName[name]
		table, err := resolveTable(raw, resolved)
		if err != nil {
			return nil, err
		}
		resolved.insert(table)
	}

	return resolved, nil
}

// dependencyOrder implements spec.md §4.3.1: repeatedly pick the
// lexicographically smallest unprocessed table; if every table it
// references is already ordered, append it, otherwise push it to the
// back of the unprocessed set and keep going. A full pass over the
// unprocessed set with no progress means the dependency graph has a
// cycle.
func dependencyOrder(byName map[string]*rawast.RawTable) ([]string, error) {
	pending := make([]string, 0, len(byName))
	for name := range byName {
		pending = append(pending, name)
	}
	sort.Strings(pending)

	// A reference to a table name that isn't declared at all can never
	// become ordered no matter how many passes run; left unchecked it
	// would be misreported as a cycle once the rest of the set drains.
	// Surface it as UnresolvedForeignKeyError up front instead.
	for _, name := range pending {
		raw := byName[name]
		for _, fkTable := range raw.ForeignKeyTables() {
			if _, ok := byName[fkTable]; !ok {
				return nil, &tsqlerr.UnresolvedForeignKeyError{Table: fkTable, ReferencedBy: name}
			}
		}
	}

	ordered := []string{}
	orderedSet := map[string]bool{}

	for len(pending) > 0 {
		progressed := false
		next := make([]string, 0, len(pending))

		for _, name := range pending {
			raw := byName[name]
			if allReferencesOrdered(raw, orderedSet) {
				ordered = append(ordered, name)
				orderedSet[name] = true
				progressed = true
			} else {
				next = append(next, name)
			}
		}

		pending = next
		if !progressed {
			return nil, &tsqlerr.ForeignKeyCycleError{Stuck: append([]string{}, pending...)}
		}
	}

	return ordered, nil
}

func allReferencesOrdered(raw *rawast.RawTable, orderedSet map[string]bool) bool {
	for _, fkTable := range raw.ForeignKeyTables() {
		if !orderedSet[fkTable] {
			return false
		}
	}
	return true
}

// resolveTable builds one resolved Table from a raw table, given the
// already-resolved tables it may reference (spec.md §4.3.2).
func resolveTable(raw *rawast.RawTable, resolved *TableCollection) (*Table, error) {
	table := &Table{
		Name:   raw.Name,
		Fields: map[string]Field{},
	}

	for _, fieldName := range raw.FieldOrder {
		entry := raw.Fields[fieldName]

		switch entry.Kind {
		case rawast.KindReal:
			dt, err := resolveDataType(entry.Field.Datatype, raw.Name, entry.Field.Name)
			if err != nil {
				return nil, err
			}
			table.Fields[entry.Field.Name] = Field{Name: entry.Field.Name, Datatype: dt}
			table.FieldOrder = append(table.FieldOrder, entry.Field.Name)

		case rawast.KindVirtualForeignKey:
			if err := expandForeignKey(table, entry, raw.Name, resolved); err != nil {
				return nil, err
			}
		}
	}

	for _, pkName := range raw.Extra.PrimaryKey {
		if _, ok := table.Fields[pkName]; !ok {
			return nil, &tsqlerr.MissingPrimaryKeyFieldError{Table: raw.Name, Field: pkName}
		}
		table.Extra.PrimaryKey = append(table.Extra.PrimaryKey, pkName)
	}

	return table, nil
}

// expandForeignKey synthesizes one concrete column per primary-key
// column of the referenced table, per spec.md §4.3.2 step 2 and the
// field-naming invariant of §3.3: "<raw_field.name>_<pk-col.name>".
func expandForeignKey(table *Table, entry rawast.FieldEntry, tableName string, resolved *TableCollection) error {
	fkTableName := entry.Field.Datatype.ForeignKeyTableName

	fkTable, ok := resolved.Get(fkTableName)
	if !ok {
		return &tsqlerr.UnresolvedForeignKeyError{Table: fkTableName, Field: entry.Field.Name, ReferencedBy: tableName}
	}

	prefix := entry.Field.Name
	for _, pkName := range fkTable.Extra.PrimaryKey {
		pkField, ok := fkTable.Fields[pkName]
		if !ok {
			return &tsqlerr.MissingPrimaryKeyFieldError{Table: fkTableName, Field: pkName}
		}

		fieldName := prefix + "_" + pkField.Name
		if _, exists := table.Fields[fieldName]; exists {
			return &tsqlerr.DataTypeDecodeError{
				Keyword:   fieldName,
				Arguments: nil,
				Reason:    "synthesized foreign key column name collides with an existing field on table " + tableName,
			}
		}

		field := Field{
			Name:     fieldName,
			Datatype: pkField.Datatype,
			ForeignKeyReference: &ForeignKeyReference{
				Table: fkTableName,
				Field: pkField,
			},
		}
		table.Fields[fieldName] = field
		table.FieldOrder = append(table.FieldOrder, fieldName)
	}

	return nil
}
