package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letsmelon/tsql-go/internal/rawast"
	"github.com/letsmelon/tsql-go/internal/tsqlerr"
)

func TestParseOneTableAllPrimitives(t *testing.T) {
	src := `@primary_key(id) table All {
		int id,
		bool flag,
		bigint big,
		date d,
		datetime dt,
		time t,
		double dbl,
		float flt,
		uuid u,
		varchar(255) vc,
		char(4) c,
		text(1024) tx,
		decimal(10, 2) dec,
	};`

	rest, table, err := ParseOneTable(src)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, "All", table.Name)
	assert.Len(t, table.Fields, 13)
	assert.Equal(t, []string{"id"}, table.Extra.PrimaryKey)
}

func TestParseOneTableCompositePrimaryKeyWithExtraSpace(t *testing.T) {
	// Two spaces between the annotation and "table" must parse (spec.md's
	// own worked example uses this spacing).
	src := `@primary_key(start, end)  table Termin { datetime start, datetime end, };`

	rest, table, err := ParseOneTable(src)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, []string{"start", "end"}, table.Extra.PrimaryKey)
}

func TestParseOneTableEmptyBody(t *testing.T) {
	src := `table Empty {};`

	rest, table, err := ParseOneTable(src)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, "Empty", table.Name)
	assert.Empty(t, table.Fields)
}

func TestParseOneTableForeignKeyField(t *testing.T) {
	// The type word names the referenced table; the name word is the
	// column-name prefix used during resolution (internal/schema).
	src := `table Pet { @foreign_key() Human owner, varchar(32) name, };`

	rest, table, err := ParseOneTable(src)
	require.NoError(t, err)
	assert.Empty(t, rest)

	entry, ok := table.Fields["owner"]
	require.True(t, ok)
	assert.Equal(t, rawast.KindVirtualForeignKey, entry.Kind)
	assert.Equal(t, rawast.KindForeignKeyTable, entry.Field.Datatype.Kind)
	assert.Equal(t, "Human", entry.Field.Datatype.ForeignKeyTableName)
}

func TestParseOneTableMissingTrailingCommaFails(t *testing.T) {
	src := `table Bad { int id };`
	_, _, err := ParseOneTable(src)
	require.Error(t, err)
}

func TestParseStringDetectsDuplicateTableNames(t *testing.T) {
	src := `table A { int id, }; table A { int id, };`
	_, err := ParseString(src)
	require.Error(t, err)

	var dupErr *tsqlerr.DuplicateTableError
	assert.ErrorAs(t, err, &dupErr)
}

func TestParseStringMultipleTables(t *testing.T) {
	src := `table A { int id, }; table B { int id, };`
	tables, err := ParseString(src)
	require.NoError(t, err)
	require.Len(t, tables, 2)
	assert.Equal(t, "A", tables[0].Name)
	assert.Equal(t, "B", tables[1].Name)
}

func TestParseStringTrailingWhitespaceDoesNotLoopForever(t *testing.T) {
	src := "table A { int id, };\n"
	_, err := ParseString(StripNewlines(src))
	require.NoError(t, err)
}

func TestStripNewlinesLetsMultilineSourceParse(t *testing.T) {
	// Real-world .tsql files are laid out over multiple lines; spec.md
	// §4.1/§6.3 expect callers to strip newlines before parsing, and the
	// stripped source must still parse field by field.
	src := "table A {\n\tint id,\n\tvarchar(32) name,\n};\n"
	tables, err := ParseString(StripNewlines(src))
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, "A", tables[0].Name)
	assert.Len(t, tables[0].Fields, 2)
}
