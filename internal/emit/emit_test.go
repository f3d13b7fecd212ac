package emit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letsmelon/tsql-go/internal/grammar"
	"github.com/letsmelon/tsql-go/internal/rawast"
	"github.com/letsmelon/tsql-go/internal/schema"
)

func resolve(t *testing.T, src string) *schema.TableCollection {
	t.Helper()
	tables, err := grammar.ParseString(src)
	require.NoError(t, err)
	resolved, err := schema.Resolve(tables)
	require.NoError(t, err)
	return resolved
}

func TestSQLForeignKeyExpansion(t *testing.T) {
	src := `
	@primary_key(id) table Human { int id, };
	table Pet { @foreign_key() Human owner, varchar(32) name, };`

	resolved := resolve(t, src)
	sql := SQL(resolved)

	assert.Contains(t, sql, "CREATE TABLE Human (")
	assert.Contains(t, sql, "CREATE TABLE Pet (")
	assert.Contains(t, sql, "FOREIGN KEY (owner_id) REFERENCES Human(id),")
	assert.Contains(t, sql, "PRIMARY KEY (id)")
}

func TestSQLCompositePrimaryKey(t *testing.T) {
	src := `@primary_key(start, end)  table Termin { datetime start, datetime end, };`

	resolved := resolve(t, src)
	sql := SQL(resolved)
	assert.Contains(t, sql, "PRIMARY KEY (start,end)")
}

func TestSQLAllPrimitivesOneLinePerType(t *testing.T) {
	src := `table All {
		int a,
		bool b,
		bigint c,
		date d,
		datetime e,
		time f,
		double g,
		float h,
		uuid i,
		varchar(10) j,
		char(1) k,
		text(99) l,
		decimal(5, 2) m,
	};`

	resolved := resolve(t, src)
	sql := SQL(resolved)
	assert.Contains(t, sql, "CREATE TABLE All (")
	assert.Contains(t, sql, "PRIMARY KEY ()")
	assert.Contains(t, sql, "decimal(5, 2)")
	assert.Contains(t, sql, "b boolean,")
	// CREATE TABLE line, 13 column lines, PRIMARY KEY line, closing ");".
	assert.Equal(t, 16, strings.Count(sql, "\n"))
}

func TestTSQLCompositePrimaryKeyUsesCommaSpace(t *testing.T) {
	src := `@primary_key(start, end)  table Termin { datetime start, datetime end, };`

	resolved := resolve(t, src)
	out := TSQL(resolved)
	assert.Contains(t, out, "@primary_key(start, end)")
	assert.Contains(t, out, "datetime start,")
}

func TestTSQLRoundTrip(t *testing.T) {
	src := `@primary_key(id) table Human { int id, varchar(32) name, };`

	resolved := resolve(t, src)
	reEmitted := TSQL(resolved)

	rawTables, err := grammar.ParseString(reEmitted)
	require.NoError(t, err)
	require.Len(t, rawTables, 1)
	assert.Equal(t, "Human", rawTables[0].Name)
	assert.Equal(t, []string{"id"}, rawTables[0].Extra.PrimaryKey)

	idEntry := rawTables[0].Fields["id"]
	assert.Equal(t, rawast.KindInt, idEntry.Field.Datatype.Kind)
}

func TestJSONDumpIncludesForeignKeyReference(t *testing.T) {
	src := `
	@primary_key(id) table Human { int id, };
	table Pet { @foreign_key() Human owner, };`

	resolved := resolve(t, src)
	out, err := JSONDump(resolved)
	require.NoError(t, err)
	assert.Contains(t, out, `"foreignKeyTable": "Human"`)
	assert.Contains(t, out, `"foreignKeyColumnName": "id"`)
}

func TestValidateSQLAcceptsWellFormedOutput(t *testing.T) {
	src := `@primary_key(id) table Human { int id, varchar(32) name, };`

	resolved := resolve(t, src)
	sql := SQL(resolved)

	err := ValidateSQL(sql, resolved.Names())
	require.NoError(t, err)
}

func TestValidateSQLRejectsGarbage(t *testing.T) {
	err := ValidateSQL("not even close to sql;", []string{"Human"})
	require.Error(t, err)
}
