// Package ast models the bound SQL abstract syntax tree consumed by the
// optimizer's query-to-logical-operator transformer. It stands in for the
// parser/binder collaborator described as external to that transformer:
// in a full system this tree would arrive already bound (aliases resolved,
// depth assigned) from a separate parser package.
package ast

import (
	"fmt"

	"github.com/ardentql/qxform/internal/sql/types"
)

// ExprKind tags the variant held by an Expr. Expr is deliberately a single
// struct for every kind, mirroring the polymorphic AbstractExpression base
// class this tree is modeled on, rather than one Go type per kind: the
// subquery rewriter needs uniform by-index child mutation and a uniform
// Depth across arbitrary node kinds, which a family of distinct structs
// cannot provide without a parallel interface method on every one of them.
type ExprKind int

const (
	ExprInvalid ExprKind = iota
	ExprColumnValue
	ExprLiteral
	ExprParameter
	ExprStar
	ExprFunctionCall
	ExprCompareEqual
	ExprCompareLT
	ExprCompareLE
	ExprCompareGT
	ExprCompareGE
	ExprCompareIn
	ExprOperatorExists
	ExprOperatorIsNotNull
	ExprOperatorIsNull
	ExprOperatorNot
	ExprConjunctionAnd
	ExprConjunctionOr
	ExprRowSubquery
)

func (k ExprKind) String() string {
	switch k {
	case ExprColumnValue:
		return "COLUMN_VALUE"
	case ExprLiteral:
		return "LITERAL"
	case ExprParameter:
		return "PARAMETER"
	case ExprStar:
		return "STAR"
	case ExprFunctionCall:
		return "FUNCTION_CALL"
	case ExprCompareEqual:
		return "COMPARE_EQUAL"
	case ExprCompareLT:
		return "COMPARE_LT"
	case ExprCompareLE:
		return "COMPARE_LE"
	case ExprCompareGT:
		return "COMPARE_GT"
	case ExprCompareGE:
		return "COMPARE_GE"
	case ExprCompareIn:
		return "COMPARE_IN"
	case ExprOperatorExists:
		return "OPERATOR_EXISTS"
	case ExprOperatorIsNotNull:
		return "OPERATOR_IS_NOT_NULL"
	case ExprOperatorIsNull:
		return "OPERATOR_IS_NULL"
	case ExprOperatorNot:
		return "OPERATOR_NOT"
	case ExprConjunctionAnd:
		return "CONJUNCTION_AND"
	case ExprConjunctionOr:
		return "CONJUNCTION_OR"
	case ExprRowSubquery:
		return "ROW_SUBQUERY"
	default:
		return fmt.Sprintf("INVALID(%d)", int(k))
	}
}

// IsComparison reports whether k is one of the five ordering comparisons the
// subquery rewriter treats uniformly (EQUAL/LT/LE/GT/GE).
func (k ExprKind) IsComparison() bool {
	switch k {
	case ExprCompareEqual, ExprCompareLT, ExprCompareLE, ExprCompareGT, ExprCompareGE:
		return true
	default:
		return false
	}
}

// ColumnRef identifies the table alias and column name a COLUMN_VALUE
// expression reads from.
type ColumnRef struct {
	TableName  string
	ColumnName string
}

// Expr is a node in a bound expression tree. Every expression kind in this
// package, from literals to subqueries, is a value of this one type; Kind
// selects which of the payload fields below are meaningful.
type Expr struct {
	Kind     ExprKind
	Children []*Expr

	// Depth is the scope-nesting level assigned by the binder: 0 for the
	// outermost query, incrementing for each nested sub-select. The
	// subquery admissibility check (package optimizer) compares depths to
	// decide whether a predicate is correlated.
	Depth int

	// Alias is the expression's projection alias, if the select list item
	// that produced it carried one (e.g. "SELECT a+1 AS total").
	Alias string

	// Column is populated when Kind == ExprColumnValue.
	Column *ColumnRef

	// Literal is populated when Kind == ExprLiteral.
	Literal types.Value

	// Param is populated when Kind == ExprParameter (1-based, as in "$1").
	Param int

	// FuncName is populated when Kind == ExprFunctionCall.
	FuncName string

	// Subquery is populated when Kind == ExprRowSubquery.
	Subquery *SelectStmt
}

// Child returns the i-th child, or nil if out of range.
func (e *Expr) Child(i int) *Expr {
	if e == nil || i < 0 || i >= len(e.Children) {
		return nil
	}
	return e.Children[i]
}

// SetChild replaces the i-th child in place. The subquery rewriter relies on
// this to splice a mark/single-join's projected column into a predicate
// without rebuilding the whole expression; see the tree-edit caveat in
// SPEC_FULL.md's design notes about why this is unsafe to apply twice to the
// same node.
func (e *Expr) SetChild(i int, child *Expr) {
	e.Children[i] = child
}

// NumChildren returns the number of children e has.
func (e *Expr) NumChildren() int {
	if e == nil {
		return 0
	}
	return len(e.Children)
}

// IsRowSubquery reports whether e is itself a ROW_SUBQUERY node.
func (e *Expr) IsRowSubquery() bool {
	return e != nil && e.Kind == ExprRowSubquery
}

// ContainsSubquery reports whether e or any descendant is a ROW_SUBQUERY.
// The spec models this as a cached flag set by the binder; this package
// computes it on demand instead, since the subquery rewriter mutates
// expression children in place and a cached flag would go stale exactly
// when it matters most (immediately after a rewrite).
func ContainsSubquery(e *Expr) bool {
	if e == nil {
		return false
	}
	if e.Kind == ExprRowSubquery {
		return true
	}
	for _, c := range e.Children {
		if ContainsSubquery(c) {
			return true
		}
	}
	return false
}

// ColumnAliases walks e pre-order and returns the set of distinct
// COLUMN_VALUE.TableName values reachable from it. Used to build the alias
// set of an AnnotatedExpression.
func ColumnAliases(e *Expr) map[string]struct{} {
	aliases := make(map[string]struct{})
	collectColumnAliases(e, aliases)
	return aliases
}

func collectColumnAliases(e *Expr, out map[string]struct{}) {
	if e == nil {
		return
	}
	if e.Kind == ExprColumnValue && e.Column != nil && e.Column.TableName != "" {
		out[e.Column.TableName] = struct{}{}
	}
	for _, c := range e.Children {
		collectColumnAliases(c, out)
	}
}

// NewColumnValue builds a COLUMN_VALUE expression.
func NewColumnValue(table, column string, depth int) *Expr {
	return &Expr{
		Kind:   ExprColumnValue,
		Depth:  depth,
		Column: &ColumnRef{TableName: table, ColumnName: column},
	}
}

// NewLiteral builds a LITERAL expression wrapping v.
func NewLiteral(v types.Value) *Expr {
	return &Expr{Kind: ExprLiteral, Literal: v}
}

// NewParameter builds a PARAMETER expression for the given 1-based index.
func NewParameter(index int) *Expr {
	return &Expr{Kind: ExprParameter, Param: index}
}

// NewStar builds a STAR ("*") expression.
func NewStar() *Expr {
	return &Expr{Kind: ExprStar}
}

// NewFunctionCall builds a FUNCTION_CALL expression over args.
func NewFunctionCall(name string, args ...*Expr) *Expr {
	return &Expr{Kind: ExprFunctionCall, FuncName: name, Children: args}
}

// NewCompare builds one of the COMPARE_* binary expressions.
func NewCompare(kind ExprKind, left, right *Expr) *Expr {
	return &Expr{Kind: kind, Children: []*Expr{left, right}}
}

// NewIn builds a COMPARE_IN expression: left IN right.
func NewIn(left, right *Expr) *Expr {
	return &Expr{Kind: ExprCompareIn, Children: []*Expr{left, right}}
}

// NewExists builds an OPERATOR_EXISTS expression over a row-subquery child.
func NewExists(subquery *Expr) *Expr {
	return &Expr{Kind: ExprOperatorExists, Children: []*Expr{subquery}}
}

// NewIsNotNull builds an OPERATOR_IS_NOT_NULL expression.
func NewIsNotNull(child *Expr) *Expr {
	return &Expr{Kind: ExprOperatorIsNotNull, Children: []*Expr{child}}
}

// NewIsNull builds an OPERATOR_IS_NULL expression.
func NewIsNull(child *Expr) *Expr {
	return &Expr{Kind: ExprOperatorIsNull, Children: []*Expr{child}}
}

// NewAnd builds a CONJUNCTION_AND over two or more operands, left-associated.
func NewAnd(first, second *Expr, rest ...*Expr) *Expr {
	e := &Expr{Kind: ExprConjunctionAnd, Children: []*Expr{first, second}}
	for _, r := range rest {
		e = &Expr{Kind: ExprConjunctionAnd, Children: []*Expr{e, r}}
	}
	return e
}

// NewRowSubquery wraps a SelectStmt as a ROW_SUBQUERY expression at the
// given depth (one greater than its enclosing scope).
func NewRowSubquery(stmt *SelectStmt, depth int) *Expr {
	return &Expr{Kind: ExprRowSubquery, Depth: depth, Subquery: stmt}
}
