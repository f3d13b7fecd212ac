// Package lex provides the lexical primitives the TSQL grammar is built
// from: word, digit_run, delimited and separated_tuple_list, as described
// in spec.md §4.1. Every parser here follows the same shape: it consumes a
// prefix of its input and returns the unconsumed remainder alongside the
// parsed value, or a *tsqlerr.LexError when the production doesn't match.
//
// This mirrors the combinator style of the original Rust implementation's
// nom-based parser (lib/src/parser/helper.rs), rewritten without a
// combinator library since none of this pack's Go repos use one for
// character-level grammars — see DESIGN.md.
package lex

import (
	"strings"
	"unicode"

	"github.com/letsmelon/tsql-go/internal/tsqlerr"
)

// Word consumes one or more consecutive characters in the class
// alphabetic ∪ {'_'}. It fails on an empty match.
func Word(input string) (rest string, value string, err error) {
	n := 0
	for _, r := range input {
		if unicode.IsLetter(r) || r == '_' {
			n += len(string(r))
			continue
		}
		break
	}
	if n == 0 {
		return input, "", &tsqlerr.LexError{Pos: 0, Expected: "word", Input: input}
	}
	return input[n:], input[:n], nil
}

// PrecededSpaceWord consumes one or more whitespace characters, then a
// Word.
func PrecededSpaceWord(input string) (rest string, value string, err error) {
	rest, err = Space1(input)
	if err != nil {
		return input, "", err
	}
	return Word(rest)
}

// DigitRun consumes one or more ASCII decimal digits.
func DigitRun(input string) (rest string, value string, err error) {
	n := 0
	for n < len(input) && input[n] >= '0' && input[n] <= '9' {
		n++
	}
	if n == 0 {
		return input, "", &tsqlerr.LexError{Pos: 0, Expected: "digit_run", Input: input}
	}
	return input[n:], input[:n], nil
}

// isSpaceByte reports whether b is whitespace the grammar treats as a
// field/token separator. Newlines count as spaces (spec.md §4.1: "Newlines
// in the input are treated as spaces"); callers reading whole files still
// pre-strip them via grammar.StripNewlines so the stream-level loop in
// grammar.ParseString never has to reason about line structure, but the
// lexical primitives themselves tolerate either form.
func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// Space1 consumes one or more space/tab/newline characters.
func Space1(input string) (rest string, err error) {
	n := 0
	for n < len(input) && isSpaceByte(input[n]) {
		n++
	}
	if n == 0 {
		return input, &tsqlerr.LexError{Pos: 0, Expected: "space1", Input: input}
	}
	return input[n:], nil
}

// Space0 consumes zero or more space/tab/newline characters; it never
// fails.
func Space0(input string) (rest string) {
	n := 0
	for n < len(input) && isSpaceByte(input[n]) {
		n++
	}
	return input[n:]
}

// Tag consumes the literal string lit if input starts with it.
func Tag(input, lit string) (rest string, err error) {
	if !strings.HasPrefix(input, lit) {
		return input, &tsqlerr.LexError{Pos: 0, Expected: "tag " + lit, Input: input}
	}
	return input[len(lit):], nil
}

// Delimited matches the literal open, then inner, then the literal close,
// yielding inner's value.
func Delimited[T any](input string, open byte, inner func(string) (string, T, error), close_ byte) (rest string, value T, err error) {
	var zero T
	if len(input) == 0 || input[0] != open {
		return input, zero, &tsqlerr.LexError{Pos: 0, Expected: string(open), Input: input}
	}
	rest = input[1:]
	rest, value, err = inner(rest)
	if err != nil {
		return input, zero, err
	}
	if len(rest) == 0 || rest[0] != close_ {
		return input, zero, &tsqlerr.LexError{Pos: 0, Expected: string(close_), Input: rest}
	}
	return rest[1:], value, nil
}

// TakeUntil consumes every byte up to (but not including) the first
// occurrence of stop, yielding the consumed slice. Fails on an empty match,
// mirroring take_while1's "at least one character" requirement.
func TakeUntil(input string, stop byte) (rest string, value string, err error) {
	idx := strings.IndexByte(input, stop)
	if idx < 0 {
		return input, "", &tsqlerr.LexError{Pos: 0, Expected: "content before " + string(stop), Input: input}
	}
	if idx == 0 {
		return input, "", &tsqlerr.LexError{Pos: 0, Expected: "non-empty content before " + string(stop), Input: input}
	}
	return input[idx:], input[:idx], nil
}

// SeparatedTupleList matches "(" then zero or more values produced by elem,
// separated by "," (with optional surrounding whitespace), then ")". It
// yields the ordered sequence of values, which may be empty.
func SeparatedTupleList(input string, elem func(string) (string, string, error)) (rest string, values []string, err error) {
	rest, err = Tag(input, "(")
	if err != nil {
		return input, nil, err
	}

	values = []string{}

	rest = Space0(rest)
	if len(rest) > 0 && rest[0] == ')' {
		return rest[1:], values, nil
	}

	for {
		var v string
		rest, v, err = elem(rest)
		if err != nil {
			return input, nil, err
		}
		values = append(values, v)

		rest = Space0(rest)
		if len(rest) > 0 && rest[0] == ',' {
			rest = Space0(rest[1:])
			continue
		}
		break
	}

	if len(rest) == 0 || rest[0] != ')' {
		return input, nil, &tsqlerr.LexError{Pos: 0, Expected: ")", Input: rest}
	}
	return rest[1:], values, nil
}
