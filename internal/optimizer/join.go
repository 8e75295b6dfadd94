package optimizer

import "github.com/ardentql/qxform/ast"

// buildJoin lowers an explicit JOIN between two already-visited subtrees.
// INNER runs its condition through CollectPredicates and defers to
// t.predicates for the enclosing SELECT to collect into a Filter, the same
// as a WHERE clause; every other supported kind carries the condition
// directly on the join node. An unrecognized join type is a transformer
// bug (the binder should never produce one) and is reported as such.
func (t *Transformer) buildJoin(left, right *OperatorExpression, joinType ast.JoinType, cond *ast.Expr) (*OperatorExpression, error) {
	switch joinType {
	case ast.JoinInner:
		op := &LogicalOperator{Kind: OpInnerJoin, Join: &JoinPayload{}}
		output := NewOperatorExpression(op, left, right)
		if cond != nil {
			var err error
			t.predicates, err = t.CollectPredicates(cond, t.predicates, &output)
			if err != nil {
				return nil, err
			}
		}
		return output, nil

	case ast.JoinOuter:
		op := &LogicalOperator{Kind: OpOuterJoin, Join: &JoinPayload{Condition: cond}}
		return NewOperatorExpression(op, left, right), nil

	case ast.JoinLeft:
		op := &LogicalOperator{Kind: OpLeftJoin, Join: &JoinPayload{Condition: cond}}
		return NewOperatorExpression(op, left, right), nil

	case ast.JoinRight:
		op := &LogicalOperator{Kind: OpRightJoin, Join: &JoinPayload{Condition: cond}}
		return NewOperatorExpression(op, left, right), nil

	case ast.JoinSemi:
		op := &LogicalOperator{Kind: OpSemiJoin, Join: &JoinPayload{Condition: cond}}
		return NewOperatorExpression(op, left, right), nil

	default:
		t.log.Error("invalid join type", "join_type", joinType.String())
		return nil, InvalidJoinTypeErr(joinType)
	}
}
