package optimizer

import "github.com/ardentql/qxform/ast"

// SplitPredicates decomposes expr into its top-level conjuncts: if expr is
// a CONJUNCTION_AND, it recurses into both children; otherwise expr itself
// is the sole result. A nil expr yields an empty slice.
func SplitPredicates(expr *ast.Expr) []*ast.Expr {
	if expr == nil {
		return nil
	}
	if expr.Kind == ast.ExprConjunctionAnd {
		var out []*ast.Expr
		out = append(out, SplitPredicates(expr.Child(0))...)
		out = append(out, SplitPredicates(expr.Child(1))...)
		return out
	}
	return []*ast.Expr{expr}
}

// ExtractPredicates splits expr into conjuncts and annotates each with its
// alias set.
func ExtractPredicates(expr *ast.Expr) []AnnotatedExpression {
	conjuncts := SplitPredicates(expr)
	out := make([]AnnotatedExpression, 0, len(conjuncts))
	for _, c := range conjuncts {
		out = append(out, AnnotatedExpression{
			Predicate: c,
			Aliases:   ast.ColumnAliases(c),
		})
	}
	return out
}

// CollectPredicates splits expr, checks every conjunct's admissibility,
// rewrites any admissible subquery-bearing conjuncts into join nodes via
// the expression visitor (which may wrap *output in a MarkJoin/SingleJoin),
// and appends the (possibly rewritten) conjuncts, annotated, to out. It
// returns the new value of out.
func (t *Transformer) CollectPredicates(expr *ast.Expr, out []AnnotatedExpression, output **OperatorExpression) ([]AnnotatedExpression, error) {
	if expr == nil {
		return out, nil
	}

	conjuncts := SplitPredicates(expr)
	for _, c := range conjuncts {
		if !IsSupportedConjunctivePredicate(c) {
			return nil, PredicateNotSupportedErr(c)
		}
	}

	for _, c := range conjuncts {
		rewritten, err := t.visitExpr(c, output)
		if err != nil {
			return nil, err
		}
		out = append(out, AnnotatedExpression{
			Predicate: rewritten,
			Aliases:   ast.ColumnAliases(rewritten),
		})
	}
	return out, nil
}
