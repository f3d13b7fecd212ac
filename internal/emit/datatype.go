// Package emit turns a resolved schema.TableCollection back into text: SQL
// DDL (spec.md §4.4), TSQL source (§4.5), and a JSON dump for tooling. It
// also validates emitted SQL by round-tripping it through a real SQL
// parser.
//
// Grounded on the original Rust implementation's TransformSQL/TransformTSQL
// trait impls in lib/src/types.rs, following the teacher's
// strings.Builder-accumulation, one-clause-per-line style from
// internal/dialect/mysql/table.go and format.go.
package emit

import (
	"fmt"

	"github.com/letsmelon/tsql-go/internal/schema"
)

// formatSQLDataType renders a DataType the way both emitters need it:
// SQL gets "boolean" for DTBool (no native BOOL keyword assumed); TSQL's
// reverse emitter uses the very same strings as its type keywords since
// they round-trip through decodeDataType, except "boolean" vs "bool" —
// see formatTSQLDataType below.
func formatSQLDataType(dt schema.DataType) string {
	switch dt.Kind {
	case schema.DTInt:
		return "int"
	case schema.DTBool:
		return "boolean"
	case schema.DTBigInt:
		return "bigint"
	case schema.DTDate:
		return "date"
	case schema.DTDateTime:
		return "datetime"
	case schema.DTTime:
		return "time"
	case schema.DTDouble:
		return "double"
	case schema.DTFloat:
		return "float"
	case schema.DTUuid:
		return "uuid"
	case schema.DTVarChar:
		return fmt.Sprintf("varchar(%d)", dt.VarCharLen)
	case schema.DTChar:
		return fmt.Sprintf("char(%d)", dt.CharLen)
	case schema.DTText:
		return fmt.Sprintf("text(%d)", dt.TextLen)
	case schema.DTDecimal:
		return fmt.Sprintf("decimal(%d, %d)", dt.DecimalPrecision, dt.DecimalScale)
	default:
		return "unknown"
	}
}

// formatTSQLDataType renders a DataType back into its TSQL source keyword —
// the same spelling decodeDataType accepts, so parse(emit(x)) round-trips
// (spec.md §8.2). Unlike SQL output, bool stays "bool", not "boolean".
func formatTSQLDataType(dt schema.DataType) string {
	if dt.Kind == schema.DTBool {
		return "bool"
	}
	return formatSQLDataType(dt)
}
