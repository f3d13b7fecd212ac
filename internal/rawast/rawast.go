// Package rawast holds the pre-resolution AST produced by the grammar:
// untyped tables, fields and datatypes, including sentinel variants that
// must not survive into the resolved model (internal/schema). See
// spec.md §3.1.
package rawast

// RawDataTypeKind tags the variant of a RawDataType.
type RawDataTypeKind int

const (
	KindInt RawDataTypeKind = iota
	KindBool
	KindBigInt
	KindDate
	KindDateTime
	KindTime
	KindDouble
	KindFloat
	KindUuid
	KindVarChar
	KindChar
	KindText
	KindDecimal
	// KindUnknown and KindForeignKeyTable are sentinel/raw-only variants
	// that must never survive resolution (spec.md §3.3 invariant 2).
	KindUnknown
	KindForeignKeyTable
)

// RawDataType is a tagged sum over the primitive set plus the two
// sentinel variants Unknown and ForeignKeyTable. Only the fields relevant
// to Kind are meaningful.
type RawDataType struct {
	Kind RawDataTypeKind

	// VarCharLen / TextLen hold the u16 argument of VarChar/Text.
	VarCharLen uint16
	TextLen    uint16
	// CharLen holds the u8 argument of Char.
	CharLen uint8
	// DecimalPrecision / DecimalScale hold Decimal's two u8 arguments.
	DecimalPrecision uint8
	DecimalScale     uint8
	// ForeignKeyTableName holds the referenced table's identifier for
	// the ForeignKeyTable sentinel.
	ForeignKeyTableName string
}

// FieldKind distinguishes an ordinary column from an annotated one.
type FieldKind int

const (
	// KindReal is an ordinary column: maps one-to-one to a resolved
	// column.
	KindReal FieldKind = iota
	// KindVirtualForeignKey carries the @foreign_key() annotation and is
	// expanded into one or more concrete columns during resolution.
	KindVirtualForeignKey
)

// RawField is a single field declaration before annotation dispatch.
type RawField struct {
	Name     string
	Datatype RawDataType
}

// FieldEntry is the two-variant sum described in spec.md §3.1:
// Real(RawField) for ordinary columns, Virtual(RawField, ForeignKey) for
// annotated ones. Only one annotation exists today.
type FieldEntry struct {
	Kind  FieldKind
	Field RawField
}

// TableExtra holds table-level metadata taken verbatim from annotations —
// today, only the ordered list of primary-key field names.
type TableExtra struct {
	PrimaryKey []string
}

// RawTable is one parsed "table NAME { ... };" declaration, prior to
// dependency ordering and foreign-key expansion.
type RawTable struct {
	Name   string
	Extra  TableExtra
	Fields map[string]FieldEntry
	// FieldOrder preserves source declaration order so callers that care
	// about determinism (the TSQL re-emitter, the resolver's column
	// synthesis) don't depend on Go's randomized map iteration.
	FieldOrder []string
}

// ForeignKeyTables returns the names of tables referenced by this table's
// virtual foreign-key fields, in field-declaration order.
func (t *RawTable) ForeignKeyTables() []string {
	var names []string
	for _, fname := range t.FieldOrder {
		entry := t.Fields[fname]
		if entry.Kind != KindVirtualForeignKey {
			continue
		}
		if entry.Field.Datatype.Kind == KindForeignKeyTable {
			names = append(names, entry.Field.Datatype.ForeignKeyTableName)
		}
	}
	return names
}

// HasForeignKey reports whether this table declares any virtual
// foreign-key field.
func (t *RawTable) HasForeignKey() bool {
	return len(t.ForeignKeyTables()) > 0
}
