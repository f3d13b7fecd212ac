// Package grammar assembles the lexical primitives in internal/lex into
// the TSQL productions of spec.md §4.2 / §6.1: table-level @primary_key
// annotations, field declarations (including @foreign_key() fields) and
// the outer "table NAME { ... };" shape, producing a rawast.RawTable per
// declaration.
//
// Grounded on the original Rust implementation's lib/src/parser/parser.rs
// and lib/src/parser/mod.rs, rewritten as plain Go functions returning
// (remaining, value, error) instead of nom combinators — see DESIGN.md.
package grammar

import (
	"os"
	"strings"

	"github.com/letsmelon/tsql-go/internal/lex"
	"github.com/letsmelon/tsql-go/internal/rawast"
	"github.com/letsmelon/tsql-go/internal/tsqlerr"
)

// parsedField is the grammar-level view of one field declaration, before
// it's folded into a rawast.FieldEntry.
type parsedField struct {
	isForeignKey  bool
	fieldType     string
	typeArguments []string
	fieldName     string
}

// parseSingleTableField parses:
//
//	<space> [ "@foreign_key()" <space> ] <word:type> [ "(" <digit_list> ")" ] <space> <word:name>
func parseSingleTableField(input string) (rest string, field parsedField, err error) {
	rest, err = lex.Space1(input)
	if err != nil {
		return input, parsedField{}, err
	}

	isFK := false
	if stripped, e := lex.Tag(rest, "@foreign_key()"); e == nil {
		isFK = true
		rest = lex.Space0(stripped)
	}

	rest, typeWord, err := lex.Word(rest)
	if err != nil {
		return input, parsedField{}, err
	}

	var args []string
	if afterParen, values, e := lex.SeparatedTupleList(rest, lex.DigitRun); e == nil {
		rest = afterParen
		args = values
	} else {
		args = []string{}
	}

	rest, err = lex.Space1(rest)
	if err != nil {
		return input, parsedField{}, err
	}

	rest, name, err := lex.Word(rest)
	if err != nil {
		return input, parsedField{}, err
	}

	return rest, parsedField{
		isForeignKey:  isFK,
		fieldType:     typeWord,
		typeArguments: args,
		fieldName:     name,
	}, nil
}

// parseTableFields parses "(<field> ",")+" — every field, including the
// last, must be terminated by a comma (spec.md §4.2, §8.3).
func parseTableFields(input string) (rest string, fields []parsedField, err error) {
	rest = input
	for {
		var f parsedField
		rest, f, err = parseSingleTableField(rest)
		if err != nil {
			if len(fields) == 0 {
				return input, nil, err
			}
			break
		}
		fields = append(fields, f)

		var ok bool
		rest, ok = tryTag(rest, ",")
		if !ok {
			return input, nil, &tsqlerr.LexError{Expected: "trailing comma after field", Input: rest}
		}
	}
	return rest, fields, nil
}

func tryTag(input, lit string) (string, bool) {
	rest, err := lex.Tag(input, lit)
	if err != nil {
		return input, false
	}
	return rest, true
}

// parseTableBody extracts the substring between '{' and the matching
// (first) '}', allowing an empty body ("{}").
func parseTableBody(input string) (rest string, body string, err error) {
	rest = lex.Space0(input)
	if len(rest) == 0 || rest[0] != '{' {
		return input, "", &tsqlerr.LexError{Expected: "{", Input: rest}
	}
	rest = rest[1:]

	idx := strings.IndexByte(rest, '}')
	if idx < 0 {
		return input, "", &tsqlerr.LexError{Expected: "}", Input: rest}
	}
	return rest[idx+1:], rest[:idx], nil
}

// parseTableExtra parses an optional "@primary_key( <word_list> )"; its
// absence yields an empty primary-key list.
func parseTableExtra(input string) (rest string, extra rawast.TableExtra, err error) {
	rest, err = lex.Tag(input, "@primary_key")
	if err != nil {
		return input, rawast.TableExtra{PrimaryKey: []string{}}, nil
	}

	rest, names, err := lex.SeparatedTupleList(rest, lex.Word)
	if err != nil {
		return input, rawast.TableExtra{}, err
	}
	if names == nil {
		names = []string{}
	}
	return rest, rawast.TableExtra{PrimaryKey: names}, nil
}

// ParseOneTable parses a single top-level table declaration and returns
// the unconsumed remainder (spec.md §4.2):
//
//	[table_extra] "table" <space> <word:name> <space> "{" <body> "}" ";"
func ParseOneTable(input string) (rest string, table rawast.RawTable, err error) {
	rest, extra, err := parseTableExtra(lex.Space0(input))
	if err != nil {
		return input, rawast.RawTable{}, err
	}

	rest = lex.Space0(rest)

	rest, err = lex.Tag(rest, "table")
	if err != nil {
		return input, rawast.RawTable{}, err
	}

	rest, name, err := lex.PrecededSpaceWord(rest)
	if err != nil {
		return input, rawast.RawTable{}, err
	}

	rest, body, err := parseTableBody(rest)
	if err != nil {
		return input, rawast.RawTable{}, err
	}

	rest, err = lex.Tag(rest, ";")
	if err != nil {
		return input, rawast.RawTable{}, err
	}

	fields, fieldOrder, err := parseFields(body, name)
	if err != nil {
		return input, rawast.RawTable{}, err
	}

	return rest, rawast.RawTable{
		Name:       name,
		Extra:      extra,
		Fields:     fields,
		FieldOrder: fieldOrder,
	}, nil
}

// parseFields parses the field list inside a table body and decodes each
// field's datatype, folding the @foreign_key() annotation into the
// FieldEntry sum described in spec.md §3.1.
func parseFields(body string, tableName string) (map[string]rawast.FieldEntry, []string, error) {
	trimmed := strings.TrimSpace(body)
	fields := map[string]rawast.FieldEntry{}
	order := []string{}

	if trimmed == "" {
		return fields, order, nil
	}

	_, raw, err := parseTableFields(body)
	if err != nil {
		return nil, nil, err
	}

	for _, pf := range raw {
		datatype, err := decodeDataType(pf.fieldType, pf.typeArguments)
		if err != nil {
			return nil, nil, err
		}

		kind := rawast.KindReal
		if pf.isForeignKey {
			kind = rawast.KindVirtualForeignKey
			if datatype.Kind != rawast.KindForeignKeyTable {
				return nil, nil, &tsqlerr.MalformedForeignKeyError{Table: tableName, Field: pf.fieldName}
			}
		}

		fields[pf.fieldName] = rawast.FieldEntry{
			Kind: kind,
			Field: rawast.RawField{
				Name:     pf.fieldName,
				Datatype: datatype,
			},
		}
		order = append(order, pf.fieldName)
	}

	return fields, order, nil
}

// ParseString parses an entire TSQL document into an ordered collection
// of raw tables, invoking ParseOneTable repeatedly until the input is
// empty (spec.md §4.2's "stream-level loop"). Unlike the reference
// implementation, a repeated table name is rejected rather than silently
// overwritten (spec.md §9 open question; see DESIGN.md).
func ParseString(content string) ([]rawast.RawTable, error) {
	var tables []rawast.RawTable
	seen := map[string]bool{}

	for strings.TrimSpace(content) != "" {
		rest, table, err := ParseOneTable(content)
		if err != nil {
			return nil, err
		}
		if seen[table.Name] {
			return nil, &tsqlerr.DuplicateTableError{Table: table.Name}
		}
		seen[table.Name] = true
		tables = append(tables, table)
		content = rest
	}

	return tables, nil
}

// ParseFile reads path, strips newlines (the lexer would also accept them
// as spaces, see lex.Space1) and parses the result, mirroring
// spec.md §6.3's parse_file: "read text, strip newlines, call parse_str".
func ParseFile(path string) ([]rawast.RawTable, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &tsqlerr.IoError{Path: path, Err: err}
	}
	return ParseString(StripNewlines(string(content)))
}

// StripNewlines replaces CRLF and LF with a single space so the
// whitespace-sensitive grammar (spec.md §4.1) sees only spaces/tabs between
// tokens, matching spec.md §4.1's "callers typically strip newlines before
// parsing".
func StripNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
