package optimizer

import (
	"strings"

	"github.com/ardentql/qxform/ast"
)

// aggregateFunctionNames are the built-in aggregates the analyzer
// recognizes by name; anything else is treated as a scalar function.
var aggregateFunctionNames = map[string]struct{}{
	"count": {},
	"sum":   {},
	"avg":   {},
	"min":   {},
	"max":   {},
}

func isAggregateFunctionName(name string) bool {
	_, ok := aggregateFunctionNames[strings.ToLower(name)]
	return ok
}

// containsAggregate reports whether e is, or contains, an aggregate
// function call.
func containsAggregate(e *ast.Expr) bool {
	if e == nil {
		return false
	}
	if e.Kind == ast.ExprFunctionCall && isAggregateFunctionName(e.FuncName) {
		return true
	}
	for _, c := range e.Children {
		if containsAggregate(c) {
			return true
		}
	}
	return false
}

// RequireAggregation decides whether sel's SELECT list requires an
// AggregateAndGroupBy node: GROUP BY always does, otherwise every select
// item must unanimously be aggregate-free or aggregate-bearing. A mix
// without GROUP BY is an error.
func RequireAggregation(sel *ast.SelectStmt) (bool, error) {
	if len(sel.GroupBy) > 0 {
		return true, nil
	}

	sawAggregate := false
	sawPlain := false
	var mixedColumn string
	for _, col := range sel.Columns {
		if containsAggregate(col.Expr) {
			sawAggregate = true
		} else {
			sawPlain = true
			if mixedColumn == "" {
				mixedColumn = columnDisplayName(col)
			}
		}
	}

	if sawAggregate && sawPlain {
		return false, AggregationMixErr(mixedColumn)
	}
	return sawAggregate, nil
}

func columnDisplayName(col ast.SelectColumn) string {
	if col.Alias != "" {
		return col.Alias
	}
	if col.Expr != nil && col.Expr.Kind == ast.ExprColumnValue && col.Expr.Column != nil {
		return col.Expr.Column.ColumnName
	}
	return "<expr>"
}
