package lex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letsmelon/tsql-go/internal/lex"
)

func TestWord(t *testing.T) {
	rest, v, err := lex.Word("Hello")
	require.NoError(t, err)
	assert.Equal(t, "", rest)
	assert.Equal(t, "Hello", v)

	rest, v, err = lex.Word("Hello123")
	require.NoError(t, err)
	assert.Equal(t, "123", rest)
	assert.Equal(t, "Hello", v)

	rest, v, err = lex.Word("Hello@World")
	require.NoError(t, err)
	assert.Equal(t, "@World", rest)
	assert.Equal(t, "Hello", v)

	rest, v, err = lex.Word("Hello World")
	require.NoError(t, err)
	assert.Equal(t, " World", rest)
	assert.Equal(t, "Hello", v)
}

func TestWordWithUnderscore(t *testing.T) {
	rest, v, err := lex.Word("Hello_World")
	require.NoError(t, err)
	assert.Equal(t, "", rest)
	assert.Equal(t, "Hello_World", v)

	rest, v, err = lex.Word("Hello_World123")
	require.NoError(t, err)
	assert.Equal(t, "123", rest)
	assert.Equal(t, "Hello_World", v)
}

func TestWordEmptyErrors(t *testing.T) {
	_, _, err := lex.Word("")
	assert.Error(t, err)
}

func TestSpace1TreatsNewlinesAsSpace(t *testing.T) {
	rest, err := lex.Space1("\n\t  int")
	require.NoError(t, err)
	assert.Equal(t, "int", rest)

	_, err = lex.Space1("int")
	assert.Error(t, err)
}

func TestSpace0TreatsNewlinesAsSpace(t *testing.T) {
	assert.Equal(t, "int", lex.Space0("\r\n\t int"))
	assert.Equal(t, "int", lex.Space0("int"))
}

func TestDigitRun(t *testing.T) {
	rest, v, err := lex.DigitRun("255)")
	require.NoError(t, err)
	assert.Equal(t, ")", rest)
	assert.Equal(t, "255", v)

	_, _, err = lex.DigitRun("abc")
	assert.Error(t, err)
}

func TestDelimited(t *testing.T) {
	digitsInner := func(s string) (string, string, error) {
		return lex.TakeUntil(s, ')')
	}
	rest, v, err := lex.Delimited("(1)", '(', digitsInner, ')')
	require.NoError(t, err)
	assert.Equal(t, "", rest)
	assert.Equal(t, "1", v)

	rest, v, err = lex.Delimited("(abc,1)", '(', digitsInner, ')')
	require.NoError(t, err)
	assert.Equal(t, "", rest)
	assert.Equal(t, "abc,1", v)

	_, _, err = lex.Delimited("", '(', digitsInner, ')')
	assert.Error(t, err)
}

func TestSeparatedTupleList(t *testing.T) {
	rest, values, err := lex.SeparatedTupleList("(abc)", lex.Word)
	require.NoError(t, err)
	assert.Equal(t, "", rest)
	assert.Equal(t, []string{"abc"}, values)

	rest, values, err = lex.SeparatedTupleList("(abc, def)", lex.Word)
	require.NoError(t, err)
	assert.Equal(t, "", rest)
	assert.Equal(t, []string{"abc", "def"}, values)

	rest, values, err = lex.SeparatedTupleList("(1, 2)", lex.DigitRun)
	require.NoError(t, err)
	assert.Equal(t, "", rest)
	assert.Equal(t, []string{"1", "2"}, values)

	rest, values, err = lex.SeparatedTupleList("()", lex.Word)
	require.NoError(t, err)
	assert.Equal(t, "", rest)
	assert.Equal(t, []string{}, values)

	_, _, err = lex.SeparatedTupleList("", lex.Word)
	assert.Error(t, err)
}
