package emit

import (
	"fmt"
	"strings"

	"github.com/letsmelon/tsql-go/internal/schema"
)

// TSQL renders a resolved TableCollection back into TSQL source (spec.md
// §4.5). Synthesized foreign-key columns are emitted as plain fields
// (their virtual-field origin isn't recoverable after expansion), which is
// why round-tripping (§8.2) is only claimed for documents the core itself
// already emitted and re-resolved, not for arbitrary hand-written input.
func TSQL(tables *schema.TableCollection) string {
	var b strings.Builder
	tables.Each(func(t *schema.Table) {
		writeTableTSQL(&b, t)
	})
	return b.String()
}

func writeTableTSQL(b *strings.Builder, t *schema.Table) {
	if len(t.Extra.PrimaryKey) > 0 {
		// Note the comma-space join here versus SQL's comma-only join in
		// writeTableSQL — the reference implementation uses different
		// separators for the two output formats and this preserves that.
		fmt.Fprintf(b, "@primary_key(%s)\n", strings.Join(t.Extra.PrimaryKey, ", "))
	}

	fmt.Fprintf(b, "table %s {\n", t.Name)
	for _, name := range t.FieldOrder {
		field := t.Fields[name]
		fmt.Fprintf(b, "\t%s %s,\n", formatTSQLDataType(field.Datatype), field.Name)
	}
	b.WriteString("};\n")
}
