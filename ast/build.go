package ast

import "github.com/ardentql/qxform/internal/sql/types"

// This file is a small fluent builder over the Expr/Statement types above,
// not a SQL parser: it exists so tests and cmd/qxform's demo queries can
// assemble bound statements without hand-wiring every *Expr pointer.

// Col builds a bare COLUMN_VALUE reference at depth 0.
func Col(table, column string) *Expr {
	return NewColumnValue(table, column, 0)
}

// ColAt builds a COLUMN_VALUE reference at an explicit depth, for
// constructing correlated sub-selects in tests.
func ColAt(table, column string, depth int) *Expr {
	return NewColumnValue(table, column, depth)
}

// Int builds an integer literal.
func Int(v int32) *Expr { return NewLiteral(types.NewIntegerValue(v)) }

// Str builds a string literal.
func Str(v string) *Expr { return NewLiteral(types.NewValue(v)) }

// Eq, Lt, Le, Gt, Ge build the five ordering comparisons.
func Eq(l, r *Expr) *Expr { return NewCompare(ExprCompareEqual, l, r) }
func Lt(l, r *Expr) *Expr { return NewCompare(ExprCompareLT, l, r) }
func Le(l, r *Expr) *Expr { return NewCompare(ExprCompareLE, l, r) }
func Gt(l, r *Expr) *Expr { return NewCompare(ExprCompareGT, l, r) }
func Ge(l, r *Expr) *Expr { return NewCompare(ExprCompareGE, l, r) }

// And conjoins two or more predicates.
func And(first, second *Expr, rest ...*Expr) *Expr { return NewAnd(first, second, rest...) }

// Select starts a SelectStmt with the given projection list.
func Select(cols ...SelectColumn) *SelectStmt {
	return &SelectStmt{Columns: cols}
}

// SelectExpr is shorthand for an unaliased SelectColumn.
func SelectExpr(e *Expr) SelectColumn { return SelectColumn{Expr: e} }

// SelectAs is shorthand for an aliased SelectColumn.
func SelectAs(e *Expr, alias string) SelectColumn { return SelectColumn{Expr: e, Alias: alias} }

// From_ sets the FROM clause and returns the statement for chaining.
func (s *SelectStmt) From_(ref *TableRef) *SelectStmt { s.From = ref; return s }

// WhereExpr sets the WHERE clause and returns the statement for chaining.
func (s *SelectStmt) WhereExpr(e *Expr) *SelectStmt { s.Where = e; return s }

// WithLimit sets LIMIT/OFFSET and returns the statement for chaining.
func (s *SelectStmt) WithLimit(limit, offset int) *SelectStmt {
	s.Limit = &LimitClause{Limit: limit, Offset: offset}
	return s
}

// AsSubquery wraps s as a ROW_SUBQUERY expression at the given depth.
func (s *SelectStmt) AsSubquery(depth int) *Expr { return NewRowSubquery(s, depth) }
