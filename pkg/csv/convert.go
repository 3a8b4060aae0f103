package csv

import (
	"github.com/shapestone/shape-core/pkg/ast"
)

// DocumentToAST converts a Document into Shape's AST, the shape ParseAST
// produces: an *ast.ArrayDataNode of records, each an *ast.ArrayDataNode of
// *ast.LiteralNode string fields.
//
// Example:
//
//	doc := csv.Document{{"name", "age"}, {"Alice", "30"}}
//	node := csv.DocumentToAST(doc)
//	back, _ := csv.DocumentFromAST(node) // equal to doc
func DocumentToAST(doc Document) ast.SchemaNode {
	records := make([]ast.SchemaNode, len(doc))
	for i, record := range doc {
		fields := make([]ast.SchemaNode, len(record))
		for j, field := range record {
			fields[j] = ast.NewLiteralNode(field, ast.ZeroPosition())
		}
		records[i] = ast.NewArrayDataNode(fields, ast.ZeroPosition())
	}
	return ast.NewArrayDataNode(records, ast.ZeroPosition())
}
