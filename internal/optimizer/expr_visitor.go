package optimizer

import "github.com/ardentql/qxform/ast"

// visitExpr walks e, attempting a local subquery rewrite at each
// comparison/EXISTS node before recursing into (possibly replaced)
// children. output is the operator subtree currently being assembled for
// the enclosing SELECT scope; GenerateSubqueryTree wraps it in a
// MarkJoin/SingleJoin in place when a rewrite fires. visitExpr returns the
// (possibly rewritten) root of e's subtree — rewrites change a node's Kind
// or a child pointer but never reallocate the node itself, except where
// GenerateSubqueryTree replaces a child outright.
func (t *Transformer) visitExpr(e *ast.Expr, output **OperatorExpression) (*ast.Expr, error) {
	if e == nil {
		return nil, nil
	}

	switch e.Kind {
	case ast.ExprCompareIn:
		ok, err := t.generateSubqueryTree(e, 1, false, output)
		if err != nil {
			return nil, err
		}
		if ok {
			e.Kind = ast.ExprCompareEqual
		}

	case ast.ExprCompareEqual, ast.ExprCompareLT, ast.ExprCompareLE, ast.ExprCompareGT, ast.ExprCompareGE:
		left, right := e.Child(0), e.Child(1)
		if left.IsRowSubquery() && right.IsRowSubquery() {
			return nil, ScalarSubqueryCompareErr()
		}
		ok, err := t.generateSubqueryTree(e, 0, true, output)
		if err != nil {
			return nil, err
		}
		if !ok {
			if _, err := t.generateSubqueryTree(e, 1, true, output); err != nil {
				return nil, err
			}
		}

	case ast.ExprOperatorExists:
		ok, err := t.generateSubqueryTree(e, 0, false, output)
		if err != nil {
			return nil, err
		}
		if ok {
			e.Kind = ast.ExprOperatorIsNotNull
		}
	}

	for i := 0; i < e.NumChildren(); i++ {
		rewritten, err := t.visitExpr(e.Child(i), output)
		if err != nil {
			return nil, err
		}
		e.SetChild(i, rewritten)
	}

	return e, nil
}

// generateSubqueryTree implements §4.6's GenerateSubqueryTree: it checks
// whether parent's child at childIndex is a row-subquery, and if so,
// lowers it into a MarkJoin (singleJoin=false) or SingleJoin
// (singleJoin=true) wrapping *output, then splices the subquery's sole
// projected column into parent in its place. Returns false, nil when the
// child is not a row-subquery (no-op, not an error).
func (t *Transformer) generateSubqueryTree(parent *ast.Expr, childIndex int, singleJoin bool, output **OperatorExpression) (bool, error) {
	child := parent.Child(childIndex)
	if !child.IsRowSubquery() {
		return false, nil
	}

	sub := child.Subquery
	if !IsSupportedSubSelect(sub) {
		return false, SubSelectNotSupportedErr()
	}
	if len(sub.Columns) != 1 {
		return false, SubSelectArityErr(len(sub.Columns))
	}

	subOutput, err := t.visitSelect(sub)
	if err != nil {
		return false, err
	}

	kind := OpMarkJoin
	if singleJoin {
		kind = OpSingleJoin
	}
	t.log.Debug("rewriting subquery predicate into join",
		"join_kind", kind.String(),
		"depth", sub.Depth,
	)

	joinOp := NewOperatorExpression(&LogicalOperator{Kind: kind, Join: &JoinPayload{}}, *output, subOutput)
	*output = joinOp

	parent.SetChild(childIndex, sub.Columns[0].Expr)
	return true, nil
}
