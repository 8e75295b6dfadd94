package optimizer

import "github.com/ardentql/qxform/ast"

// IsSupportedConjunctivePredicate reports whether e is a conjunct shape
// this package knows how to lower, possibly after a subquery rewrite.
func IsSupportedConjunctivePredicate(e *ast.Expr) bool {
	if !ast.ContainsSubquery(e) {
		return true
	}

	switch e.Kind {
	case ast.ExprCompareIn:
		return !ast.ContainsSubquery(e.Child(0)) && e.Child(1).IsRowSubquery()
	case ast.ExprOperatorExists:
		return e.Child(0).IsRowSubquery()
	default:
		if e.Kind.IsComparison() {
			left, right := e.Child(0), e.Child(1)
			leftSub, rightSub := left.IsRowSubquery(), right.IsRowSubquery()
			if leftSub == rightSub {
				// Neither or both are row-subqueries: unsupported either
				// way (a plain comparison wouldn't reach here since
				// ContainsSubquery was already true above).
				return false
			}
			if leftSub {
				return !ast.ContainsSubquery(right)
			}
			return !ast.ContainsSubquery(left)
		}
		return false
	}
}

// IsSupportedSubSelect reports whether sub is an admissible correlated
// sub-select: one whose aggregation requirement, if any, leaves every
// correlated WHERE conjunct shaped as a bare equality between an
// outer-depth column and an inner-depth column.
func IsSupportedSubSelect(sub *ast.SelectStmt) bool {
	required, err := RequireAggregation(sub)
	if err != nil || !required {
		return true
	}

	for _, conjunct := range SplitPredicates(sub.Where) {
		if !isCorrelated(conjunct, sub.Depth) {
			continue
		}
		if conjunct.Kind != ast.ExprCompareEqual {
			return false
		}
		left, right := conjunct.Child(0), conjunct.Child(1)
		leftOuterRightInner := isBareOuterColumn(left, sub.Depth) && isBareColumnAtDepth(right, sub.Depth)
		rightOuterLeftInner := isBareOuterColumn(right, sub.Depth) && isBareColumnAtDepth(left, sub.Depth)
		if !leftOuterRightInner && !rightOuterLeftInner {
			return false
		}
	}
	return true
}

// isCorrelated reports whether e references a scope shallower than depth.
func isCorrelated(e *ast.Expr, depth int) bool {
	if e == nil {
		return false
	}
	if e.Kind == ast.ExprColumnValue && e.Depth < depth {
		return true
	}
	for _, c := range e.Children {
		if isCorrelated(c, depth) {
			return true
		}
	}
	return false
}

func isBareOuterColumn(e *ast.Expr, innerDepth int) bool {
	return e != nil && e.Kind == ast.ExprColumnValue && e.Depth < innerDepth
}

func isBareColumnAtDepth(e *ast.Expr, depth int) bool {
	return e != nil && e.Kind == ast.ExprColumnValue && e.Depth == depth
}
