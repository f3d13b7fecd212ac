// Package tsqlerr defines the typed error taxonomy returned by every stage
// of the TSQL compiler pipeline: lexing, grammar, resolution and file
// reading. The emitters' SQL validation returns plain wrapped errors.
// Each error kind is a distinct exported type so callers can recover
// structured context with errors.As instead of parsing message strings.
package tsqlerr

import "fmt"

// LexError reports that the input does not match the requested production
// at the given byte offset.
type LexError struct {
	Pos      int
	Expected string
	Input    string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at byte %d: expected %s near %q", e.Pos, e.Expected, snippet(e.Input))
}

func snippet(s string) string {
	const max = 24
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// DataTypeDecodeError reports a datatype keyword used with the wrong arity,
// or a numeric argument that overflows its target range.
type DataTypeDecodeError struct {
	Keyword   string
	Arguments []string
	Reason    string
}

func (e *DataTypeDecodeError) Error() string {
	return fmt.Sprintf("cannot decode datatype %q%v: %s", e.Keyword, e.Arguments, e.Reason)
}

// UnresolvedForeignKeyError reports a virtual field referencing a table
// that is not declared anywhere in the input.
type UnresolvedForeignKeyError struct {
	Table        string
	Field        string
	ReferencedBy string
}

func (e *UnresolvedForeignKeyError) Error() string {
	return fmt.Sprintf("table %q field %q references undeclared table %q", e.ReferencedBy, e.Field, e.Table)
}

// ForeignKeyCycleError reports that the foreign-key dependency graph
// contains a cycle. Stuck names at least one participating table.
type ForeignKeyCycleError struct {
	Stuck []string
}

func (e *ForeignKeyCycleError) Error() string {
	return fmt.Sprintf("foreign key cycle detected, involving tables: %v", e.Stuck)
}

// UnknownTypeInResolvedError reports that an Unknown or ForeignKeyTable
// sentinel datatype survived into the resolved model. This indicates a bug
// in the resolver rather than malformed user input.
type UnknownTypeInResolvedError struct {
	Table string
	Field string
}

func (e *UnknownTypeInResolvedError) Error() string {
	return fmt.Sprintf("internal error: sentinel datatype survived resolution for %s.%s", e.Table, e.Field)
}

// MissingPrimaryKeyFieldError reports that a name listed in
// @primary_key(...) does not match any resolved field on the table.
type MissingPrimaryKeyFieldError struct {
	Table string
	Field string
}

func (e *MissingPrimaryKeyFieldError) Error() string {
	return fmt.Sprintf("table %q declares primary key field %q which does not exist", e.Table, e.Field)
}

// MalformedForeignKeyError reports a Virtual(_, ForeignKey) field whose
// datatype decoded to a concrete primitive instead of ForeignKeyTable(_).
// Distinct from UnknownTypeInResolvedError: this is malformed user input
// caught before resolution, not an invariant violated after it.
type MalformedForeignKeyError struct {
	Table string
	Field string
}

func (e *MalformedForeignKeyError) Error() string {
	return fmt.Sprintf("table %q field %q is annotated @foreign_key() but its type is a concrete primitive, not a table reference", e.Table, e.Field)
}

// DuplicateTableError reports that a table name was declared more than
// once in the input. spec.md §9 flags the reference implementation's
// silent overwrite as a bug; tsql-go surfaces it instead.
type DuplicateTableError struct {
	Table string
}

func (e *DuplicateTableError) Error() string {
	return fmt.Sprintf("table %q is declared more than once", e.Table)
}

// IoError wraps an underlying read/write failure. Never raised by pure
// parsing or resolution.
type IoError struct {
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("io error for %q: %v", e.Path, e.Err)
}

func (e *IoError) Unwrap() error {
	return e.Err
}
