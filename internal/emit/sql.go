package emit

import (
	"fmt"
	"strings"

	"github.com/letsmelon/tsql-go/internal/schema"
)

// SQL renders an entire resolved TableCollection as a sequence of
// "CREATE TABLE" statements, one per table in the collection's
// lexicographic iteration order (spec.md §4.4).
func SQL(tables *schema.TableCollection) string {
	var b strings.Builder
	tables.Each(func(t *schema.Table) {
		writeTableSQL(&b, t)
	})
	return b.String()
}

// writeTableSQL writes one table's CREATE TABLE statement: a column line
// per field, a FOREIGN KEY clause per distinct referenced table (grouping
// multi-column references per spec.md §4.3.3), and a trailing
// PRIMARY KEY clause.
func writeTableSQL(b *strings.Builder, t *schema.Table) {
	fmt.Fprintf(b, "CREATE TABLE %s (\n", t.Name)

	foreignKeysByTable := map[string][]schema.Field{}
	var foreignKeyTableOrder []string

	for _, name := range t.FieldOrder {
		field := t.Fields[name]
		fmt.Fprintf(b, "%s %s,\n", field.Name, formatSQLDataType(field.Datatype))

		if field.ForeignKeyReference != nil {
			ref := field.ForeignKeyReference.Table
			if _, seen := foreignKeysByTable[ref]; !seen {
				foreignKeyTableOrder = append(foreignKeyTableOrder, ref)
			}
			foreignKeysByTable[ref] = append(foreignKeysByTable[ref], field)
		}
	}

	// Referenced-table order is fixed by first appearance in FieldOrder,
	// which is itself deterministic (source declaration order plus
	// per-table FK expansion order) — no sort needed here, unlike the
	// reference implementation's HashMap-driven nondeterministic order.
	for _, refTable := range foreignKeyTableOrder {
		fields := foreignKeysByTable[refTable]
		columnNames := make([]string, len(fields))
		referencedNames := make([]string, len(fields))
		for i, f := range fields {
			columnNames[i] = f.Name
			referencedNames[i] = f.ForeignKeyReference.Field.Name
		}
		fmt.Fprintf(b, "FOREIGN KEY (%s) REFERENCES %s(%s),\n",
			strings.Join(columnNames, ","), refTable, strings.Join(referencedNames, ","))
	}

	fmt.Fprintf(b, "PRIMARY KEY (%s)\n", strings.Join(t.Extra.PrimaryKey, ","))
	b.WriteString(");\n")
}
