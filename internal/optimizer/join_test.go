package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardentql/qxform/ast"
)

func getLeaf(table string) *OperatorExpression {
	return NewOperatorExpression(&LogicalOperator{Kind: OpGet, Get: &GetPayload{Table: table}})
}

func TestBuildJoinInnerDefersConditionToAccumulator(t *testing.T) {
	tr := newTestTransformer(t)
	cond := ast.Eq(ast.Col("t1", "a"), ast.Col("t2", "a"))

	joined, err := tr.buildJoin(getLeaf("t1"), getLeaf("t2"), ast.JoinInner, cond)
	require.NoError(t, err)

	assert.Equal(t, OpInnerJoin, joined.Op.Kind)
	assert.Nil(t, joined.Op.Join.Condition)
	require.Len(t, tr.predicates, 1)
	assert.Same(t, cond, tr.predicates[0].Predicate)
}

func TestBuildJoinInnerWithNilConditionDoesNotAccumulate(t *testing.T) {
	tr := newTestTransformer(t)

	joined, err := tr.buildJoin(getLeaf("t1"), getLeaf("t2"), ast.JoinInner, nil)
	require.NoError(t, err)

	assert.Equal(t, OpInnerJoin, joined.Op.Kind)
	assert.Empty(t, tr.predicates)
}

func TestBuildJoinOuterCarriesConditionOnNode(t *testing.T) {
	tr := newTestTransformer(t)
	cond := ast.Eq(ast.Col("t1", "a"), ast.Col("t2", "a"))

	joined, err := tr.buildJoin(getLeaf("t1"), getLeaf("t2"), ast.JoinOuter, cond)
	require.NoError(t, err)

	assert.Equal(t, OpOuterJoin, joined.Op.Kind)
	assert.Same(t, cond, joined.Op.Join.Condition)
	assert.Empty(t, tr.predicates)
}

func TestBuildJoinLeftRightSemi(t *testing.T) {
	tr := newTestTransformer(t)
	cond := ast.Eq(ast.Col("t1", "a"), ast.Col("t2", "a"))

	left, err := tr.buildJoin(getLeaf("t1"), getLeaf("t2"), ast.JoinLeft, cond)
	require.NoError(t, err)
	assert.Equal(t, OpLeftJoin, left.Op.Kind)

	right, err := tr.buildJoin(getLeaf("t1"), getLeaf("t2"), ast.JoinRight, cond)
	require.NoError(t, err)
	assert.Equal(t, OpRightJoin, right.Op.Kind)

	semi, err := tr.buildJoin(getLeaf("t1"), getLeaf("t2"), ast.JoinSemi, cond)
	require.NoError(t, err)
	assert.Equal(t, OpSemiJoin, semi.Op.Kind)
}

func TestBuildJoinInvalidTypeErrors(t *testing.T) {
	tr := newTestTransformer(t)

	_, err := tr.buildJoin(getLeaf("t1"), getLeaf("t2"), ast.JoinInvalid, nil)
	require.Error(t, err)
}

func TestBuildJoinInnerSplitsConjunctiveCondition(t *testing.T) {
	tr := newTestTransformer(t)
	cond := ast.And(
		ast.Eq(ast.Col("t1", "a"), ast.Col("t2", "a")),
		ast.Eq(ast.Col("t1", "b"), ast.Col("t2", "b")),
	)

	joined, err := tr.buildJoin(getLeaf("t1"), getLeaf("t2"), ast.JoinInner, cond)
	require.NoError(t, err)

	assert.Equal(t, OpInnerJoin, joined.Op.Kind)
	require.Len(t, tr.predicates, 2)
	for _, p := range tr.predicates {
		assert.Equal(t, ast.ExprCompareEqual, p.Predicate.Kind)
	}
}

func TestBuildJoinInnerRewritesSubqueryCondition(t *testing.T) {
	tr := newTestTransformer(t)

	inner := ast.Select(ast.SelectExpr(ast.Col("u", "b"))).From_(ast.NewTableRef("u", ""))
	inner.Depth = 1
	cond := ast.NewIn(ast.Col("t1", "a"), inner.AsSubquery(1))

	joined, err := tr.buildJoin(getLeaf("t1"), getLeaf("t2"), ast.JoinInner, cond)
	require.NoError(t, err)

	require.Len(t, tr.predicates, 1)
	pred := tr.predicates[0].Predicate
	assert.Equal(t, ast.ExprCompareEqual, pred.Kind)
	assert.Equal(t, "u", pred.Child(1).Column.TableName)
	assert.Equal(t, "b", pred.Child(1).Column.ColumnName)

	require.Equal(t, OpMarkJoin, joined.Op.Kind)
	require.Len(t, joined.Children, 2)
	inJoin := joined.Children[0]
	assert.Equal(t, OpInnerJoin, inJoin.Op.Kind)
	assert.Equal(t, OpGet, joined.Children[1].Op.Kind)
	assert.Equal(t, "u", joined.Children[1].Op.Get.Table)
}
