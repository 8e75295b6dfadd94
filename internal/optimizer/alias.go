package optimizer

import (
	"strings"

	"github.com/ardentql/qxform/ast"
)

// buildAliasMap builds the lowercased-alias -> expression map a
// QueryDerivedGet exposes for its derived table's select list: an item
// contributes its explicit alias if any, else its column name if it is a
// bare COLUMN_VALUE, else nothing (unnamed, unaddressable by name).
// Collisions keep the last write, matching the source transformer; this
// package logs the collision at Debug so the behavior stays observable.
func (t *Transformer) buildAliasMap(columns []ast.SelectColumn) map[string]*ast.Expr {
	out := make(map[string]*ast.Expr)
	for _, col := range columns {
		name := aliasFor(col)
		if name == "" {
			continue
		}
		name = strings.ToLower(name)
		if _, exists := out[name]; exists {
			t.log.Debug("alias map collision in derived table select list", "alias", name)
		}
		out[name] = col.Expr
	}
	return out
}

func aliasFor(col ast.SelectColumn) string {
	if col.Alias != "" {
		return col.Alias
	}
	if col.Expr != nil && col.Expr.Kind == ast.ExprColumnValue && col.Expr.Column != nil {
		return col.Expr.Column.ColumnName
	}
	return ""
}
