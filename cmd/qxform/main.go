// Command qxform seeds an in-memory catalog with a demo table, builds a
// demo ast.Statement, runs it through the query-to-logical-operator
// transformer, and prints the resulting operator tree.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ardentql/qxform/ast"
	"github.com/ardentql/qxform/internal/catalog"
	"github.com/ardentql/qxform/internal/log"
	"github.com/ardentql/qxform/internal/optimizer"
	"github.com/ardentql/qxform/internal/sql/types"
)

func main() {
	cfg, err := ParseConfig(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	log.Configure(log.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	logger := log.Default()

	cat, err := seedCatalog()
	if err != nil {
		logger.Fatal("failed to seed catalog", "error", err)
	}

	stmt := demoStatement()
	transformer := optimizer.New(catalog.NewMemoryCatalogAccessor(cat), logger)

	ctx := log.ContextWithQueryID(context.Background(), "demo-payment-select")
	tree, err := transformer.Transform(ctx, stmt)
	if err != nil {
		logger.Fatal("transform failed", "error", err)
	}

	printOperatorTree(tree, 0)
}

// seedCatalog builds the in-memory catalog backing the demo query: a
// WAREHOUSE table with the columns TPC-C's PAYMENT transaction reads.
func seedCatalog() (*catalog.MemoryCatalog, error) {
	mc := catalog.NewMemoryCatalog()
	_, err := mc.CreateTable(&catalog.TableSchema{
		TableName: "warehouse",
		Columns: []catalog.ColumnDef{
			{Name: "w_id", DataType: types.Integer, IsNullable: false},
			{Name: "w_street_1", DataType: types.Text, IsNullable: true},
			{Name: "w_ytd", DataType: types.Float, IsNullable: false},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("seed warehouse table: %w", err)
	}
	return mc, nil
}

// demoStatement builds SELECT w_street_1 FROM warehouse WHERE w_id = 1,
// scenario 1 of this transformer's testable properties.
func demoStatement() *ast.Statement {
	sel := ast.Select(ast.SelectExpr(ast.Col("warehouse", "w_street_1"))).
		From_(ast.NewTableRef("warehouse", "")).
		WhereExpr(ast.Eq(ast.Col("warehouse", "w_id"), ast.Int(1)))

	return &ast.Statement{Kind: ast.StmtSelect, Select: sel}
}

func printOperatorTree(node *optimizer.OperatorExpression, depth int) {
	if node == nil {
		fmt.Println(indent(depth) + "<empty>")
		return
	}
	fmt.Println(indent(depth) + node.Op.Kind.String())
	for _, child := range node.Children {
		printOperatorTree(child, depth+1)
	}
}

func indent(depth int) string {
	out := ""
	for i := 0; i < depth; i++ {
		out += "  "
	}
	return out
}
