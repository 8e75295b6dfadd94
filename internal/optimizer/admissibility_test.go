package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ardentql/qxform/ast"
)

func TestIsSupportedConjunctivePredicateNoSubquery(t *testing.T) {
	assert.True(t, IsSupportedConjunctivePredicate(ast.Eq(ast.Col("t", "a"), ast.Int(1))))
}

func TestIsSupportedConjunctivePredicateInSubquery(t *testing.T) {
	sub := ast.Select(ast.SelectExpr(ast.Col("u", "b"))).From_(ast.NewTableRef("u", ""))
	pred := ast.NewIn(ast.Col("t", "a"), sub.AsSubquery(1))
	assert.True(t, IsSupportedConjunctivePredicate(pred))
}

func TestIsSupportedConjunctivePredicateInWithSubqueryLeftSide(t *testing.T) {
	sub := ast.Select(ast.SelectExpr(ast.Col("u", "b"))).From_(ast.NewTableRef("u", ""))
	// IN's left side must not itself be a subquery.
	pred := ast.NewIn(sub.AsSubquery(1), ast.Col("t", "a"))
	assert.False(t, IsSupportedConjunctivePredicate(pred))
}

func TestIsSupportedConjunctivePredicateExists(t *testing.T) {
	sub := ast.Select(ast.SelectExpr(ast.Int(1))).From_(ast.NewTableRef("u", ""))
	assert.True(t, IsSupportedConjunctivePredicate(ast.NewExists(sub.AsSubquery(1))))
}

func TestIsSupportedConjunctivePredicateScalarCompare(t *testing.T) {
	sub := ast.Select(ast.SelectExpr(ast.Col("u", "b"))).From_(ast.NewTableRef("u", ""))
	assert.True(t, IsSupportedConjunctivePredicate(ast.Eq(ast.Col("t", "a"), sub.AsSubquery(1))))
	assert.True(t, IsSupportedConjunctivePredicate(ast.Eq(sub.AsSubquery(1), ast.Col("t", "a"))))
}

func TestIsSupportedConjunctivePredicateBothSidesSubquery(t *testing.T) {
	sub1 := ast.Select(ast.SelectExpr(ast.Col("u", "b"))).From_(ast.NewTableRef("u", ""))
	sub2 := ast.Select(ast.SelectExpr(ast.Col("v", "b"))).From_(ast.NewTableRef("v", ""))
	assert.False(t, IsSupportedConjunctivePredicate(ast.Eq(sub1.AsSubquery(1), sub2.AsSubquery(1))))
}

func TestIsSupportedSubSelectNonAggregateAlwaysAdmissible(t *testing.T) {
	sub := ast.Select(ast.SelectExpr(ast.Col("u", "b"))).
		From_(ast.NewTableRef("u", "")).
		WhereExpr(ast.Eq(ast.ColAt("u", "b", 1), ast.NewFunctionCall("upper", ast.ColAt("t", "a", 0))))
	sub.Depth = 1
	assert.True(t, IsSupportedSubSelect(sub))
}

func TestIsSupportedSubSelectAggregateBareEquality(t *testing.T) {
	sub := ast.Select(ast.SelectExpr(ast.NewFunctionCall("count", ast.NewStar()))).
		From_(ast.NewTableRef("u", "")).
		WhereExpr(ast.Eq(ast.ColAt("u", "a", 1), ast.ColAt("t", "a", 0)))
	sub.Depth = 1
	assert.True(t, IsSupportedSubSelect(sub))
}

func TestIsSupportedSubSelectAggregateRejectsNonEqualityCorrelation(t *testing.T) {
	sub := ast.Select(ast.SelectExpr(ast.NewFunctionCall("count", ast.NewStar()))).
		From_(ast.NewTableRef("u", "")).
		WhereExpr(ast.Lt(ast.ColAt("u", "a", 1), ast.ColAt("t", "a", 0)))
	sub.Depth = 1
	assert.False(t, IsSupportedSubSelect(sub))
}

func TestIsSupportedSubSelectAggregateRejectsExpressionOnCorrelatedSide(t *testing.T) {
	sub := ast.Select(ast.SelectExpr(ast.NewFunctionCall("count", ast.NewStar()))).
		From_(ast.NewTableRef("u", "")).
		WhereExpr(ast.Eq(ast.NewFunctionCall("upper", ast.ColAt("t", "a", 0)), ast.ColAt("u", "a", 1)))
	sub.Depth = 1
	assert.False(t, IsSupportedSubSelect(sub))
}
