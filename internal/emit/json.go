package emit

import (
	"encoding/json"

	"github.com/letsmelon/tsql-go/internal/schema"
)

// jsonField and jsonTable mirror the resolved model but as plain
// JSON-taggable structs (schema.Table keeps its fields as a map plus a
// separate FieldOrder slice, which has no stable wire shape on its own).
//
// Tagging convention grounded on internal/output/json.go's lowerCamelCase
// json tags.
type jsonField struct {
	Name                string `json:"name"`
	DataType            string `json:"dataType"`
	ForeignKeyTable      string `json:"foreignKeyTable,omitempty"`
	ForeignKeyColumnName string `json:"foreignKeyColumnName,omitempty"`
}

type jsonTable struct {
	Name       string      `json:"name"`
	Fields     []jsonField `json:"fields"`
	PrimaryKey []string    `json:"primaryKey"`
}

type jsonDocument struct {
	Tables []jsonTable `json:"tables"`
}

// JSONDump renders a resolved TableCollection as an indented JSON document
// intended for debugging and tooling, not as a TSQL input format.
func JSONDump(tables *schema.TableCollection) (string, error) {
	doc := jsonDocument{}

	tables.Each(func(t *schema.Table) {
		jt := jsonTable{Name: t.Name, PrimaryKey: t.Extra.PrimaryKey}
		for _, name := range t.FieldOrder {
			f := t.Fields[name]
			jf := jsonField{Name: f.Name, DataType: formatSQLDataType(f.Datatype)}
			if f.ForeignKeyReference != nil {
				jf.ForeignKeyTable = f.ForeignKeyReference.Table
				jf.ForeignKeyColumnName = f.ForeignKeyReference.Field.Name
			}
			jt.Fields = append(jt.Fields, jf)
		}
		doc.Tables = append(doc.Tables, jt)
	})

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
