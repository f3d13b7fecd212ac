package schema

import (
	"github.com/letsmelon/tsql-go/internal/rawast"
	"github.com/letsmelon/tsql-go/internal/tsqlerr"
)

// DataTypeKind mirrors rawast.RawDataTypeKind minus the two sentinel
// variants Unknown and ForeignKeyTable (spec.md §3.2's static invariant:
// |variants(DataType)| = |variants(RawDataType)| - 2).
type DataTypeKind int

const (
	DTInt DataTypeKind = iota
	DTBool
	DTBigInt
	DTDate
	DTDateTime
	DTTime
	DTDouble
	DTFloat
	DTUuid
	DTVarChar
	DTChar
	DTText
	DTDecimal
)

// DataType is the fully-resolved, sentinel-free datatype of a column.
// Its variant count must always equal rawast.RawDataTypeKind's minus the
// two sentinels (Unknown, ForeignKeyTable) — enforced by
// TestDataTypeVariantCount in datatype_test.go rather than at compile
// time, since Go has no const_assert_eq! equivalent over enum arity.
type DataType struct {
	Kind DataTypeKind

	VarCharLen       uint16
	TextLen          uint16
	CharLen          uint8
	DecimalPrecision uint8
	DecimalScale     uint8
}

// resolveDataType converts a RawDataType into a DataType, rejecting the
// two sentinel variants (spec.md §4.3.2 step 1).
func resolveDataType(raw rawast.RawDataType, table, field string) (DataType, error) {
	switch raw.Kind {
	case rawast.KindInt:
		return DataType{Kind: DTInt}, nil
	case rawast.KindBool:
		return DataType{Kind: DTBool}, nil
	case rawast.KindBigInt:
		return DataType{Kind: DTBigInt}, nil
	case rawast.KindDate:
		return DataType{Kind: DTDate}, nil
	case rawast.KindDateTime:
		return DataType{Kind: DTDateTime}, nil
	case rawast.KindTime:
		return DataType{Kind: DTTime}, nil
	case rawast.KindDouble:
		return DataType{Kind: DTDouble}, nil
	case rawast.KindFloat:
		return DataType{Kind: DTFloat}, nil
	case rawast.KindUuid:
		return DataType{Kind: DTUuid}, nil
	case rawast.KindVarChar:
		return DataType{Kind: DTVarChar, VarCharLen: raw.VarCharLen}, nil
	case rawast.KindChar:
		return DataType{Kind: DTChar, CharLen: raw.CharLen}, nil
	case rawast.KindText:
		return DataType{Kind: DTText, TextLen: raw.TextLen}, nil
	case rawast.KindDecimal:
		return DataType{Kind: DTDecimal, DecimalPrecision: raw.DecimalPrecision, DecimalScale: raw.DecimalScale}, nil
	default:
		return DataType{}, &tsqlerr.UnknownTypeInResolvedError{Table: table, Field: field}
	}
}
