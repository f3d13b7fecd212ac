package emit

import (
	"fmt"

	"github.com/pingcap/tidb/pkg/parser"
	"github.com/pingcap/tidb/pkg/parser/ast"
	_ "github.com/pingcap/tidb/pkg/parser/test_driver"
)

// ValidateSQL parses emitted SQL text with a real SQL grammar and confirms
// it round-trips into exactly the CREATE TABLE statements expected, one
// per table name. It doesn't re-validate column types against the TSQL
// primitive set — that's already guaranteed by the resolver — only that
// the text is syntactically well-formed SQL a real engine would accept.
//
// Grounded on internal/parser/mysql/parser.go's parser.New()/Parse usage of
// the TiDB parser.
func ValidateSQL(sql string, expectedTables []string) error {
	p := parser.New()

	stmtNodes, _, err := p.Parse(sql, "", "")
	if err != nil {
		return fmt.Errorf("emitted SQL failed to parse: %w", err)
	}

	var createdTables []string
	for _, stmt := range stmtNodes {
		create, ok := stmt.(*ast.CreateTableStmt)
		if !ok {
			return fmt.Errorf("emitted SQL contains a non-CREATE-TABLE statement: %T", stmt)
		}
		createdTables = append(createdTables, create.Table.Name.O)
	}

	if len(createdTables) != len(expectedTables) {
		return fmt.Errorf("expected %d CREATE TABLE statements, parsed %d", len(expectedTables), len(createdTables))
	}
	for i, name := range expectedTables {
		if createdTables[i] != name {
			return fmt.Errorf("statement %d: expected table %q, parsed %q", i, name, createdTables[i])
		}
	}

	return nil
}
