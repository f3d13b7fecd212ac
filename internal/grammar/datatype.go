package grammar

import (
	"strconv"

	"github.com/letsmelon/tsql-go/internal/rawast"
	"github.com/letsmelon/tsql-go/internal/tsqlerr"
)

// decodeDataType turns a (keyword, argument-list) pair into a RawDataType,
// per the table in spec.md §4.2. Unrecognized zero-arity identifiers
// decode to the ForeignKeyTable sentinel rather than failing — the
// grammar can't tell a forward-declared table name from a typo, so that
// distinction is deferred to the resolver (spec.md §4.3).
func decodeDataType(keyword string, args []string) (rawast.RawDataType, error) {
	switch {
	case keyword == "int" && len(args) == 0:
		return rawast.RawDataType{Kind: rawast.KindInt}, nil
	case keyword == "bool" && len(args) == 0:
		return rawast.RawDataType{Kind: rawast.KindBool}, nil
	case keyword == "bigint" && len(args) == 0:
		return rawast.RawDataType{Kind: rawast.KindBigInt}, nil
	case keyword == "date" && len(args) == 0:
		return rawast.RawDataType{Kind: rawast.KindDate}, nil
	case keyword == "datetime" && len(args) == 0:
		return rawast.RawDataType{Kind: rawast.KindDateTime}, nil
	case keyword == "time" && len(args) == 0:
		return rawast.RawDataType{Kind: rawast.KindTime}, nil
	case keyword == "double" && len(args) == 0:
		return rawast.RawDataType{Kind: rawast.KindDouble}, nil
	case keyword == "float" && len(args) == 0:
		return rawast.RawDataType{Kind: rawast.KindFloat}, nil
	case keyword == "uuid" && len(args) == 0:
		return rawast.RawDataType{Kind: rawast.KindUuid}, nil
	case keyword == "_" && len(args) == 0:
		return rawast.RawDataType{Kind: rawast.KindUnknown}, nil

	case keyword == "varchar" && len(args) == 1:
		n, err := parseUint(args[0], 16)
		if err != nil {
			return rawast.RawDataType{}, &tsqlerr.DataTypeDecodeError{Keyword: keyword, Arguments: args, Reason: err.Error()}
		}
		return rawast.RawDataType{Kind: rawast.KindVarChar, VarCharLen: uint16(n)}, nil
	case keyword == "char" && len(args) == 1:
		n, err := parseUint(args[0], 8)
		if err != nil {
			return rawast.RawDataType{}, &tsqlerr.DataTypeDecodeError{Keyword: keyword, Arguments: args, Reason: err.Error()}
		}
		return rawast.RawDataType{Kind: rawast.KindChar, CharLen: uint8(n)}, nil
	case keyword == "text" && len(args) == 1:
		n, err := parseUint(args[0], 16)
		if err != nil {
			return rawast.RawDataType{}, &tsqlerr.DataTypeDecodeError{Keyword: keyword, Arguments: args, Reason: err.Error()}
		}
		return rawast.RawDataType{Kind: rawast.KindText, TextLen: uint16(n)}, nil

	case keyword == "decimal" && len(args) == 2:
		precision, err := parseUint(args[0], 8)
		if err != nil {
			return rawast.RawDataType{}, &tsqlerr.DataTypeDecodeError{Keyword: keyword, Arguments: args, Reason: err.Error()}
		}
		scale, err := parseUint(args[1], 8)
		if err != nil {
			return rawast.RawDataType{}, &tsqlerr.DataTypeDecodeError{Keyword: keyword, Arguments: args, Reason: err.Error()}
		}
		return rawast.RawDataType{Kind: rawast.KindDecimal, DecimalPrecision: uint8(precision), DecimalScale: uint8(scale)}, nil

	case len(args) == 0:
		return rawast.RawDataType{Kind: rawast.KindForeignKeyTable, ForeignKeyTableName: keyword}, nil

	default:
		return rawast.RawDataType{}, &tsqlerr.DataTypeDecodeError{
			Keyword:   keyword,
			Arguments: args,
			Reason:    "no datatype accepts this arity",
		}
	}
}

func parseUint(s string, bits int) (uint64, error) {
	return strconv.ParseUint(s, 10, bits)
}
