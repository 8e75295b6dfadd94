package optimizer

import (
	"fmt"

	"github.com/ardentql/qxform/ast"
	"github.com/ardentql/qxform/internal/errors"
)

// InvalidJoinTypeErr reports a join type the join builder does not
// recognize.
func InvalidJoinTypeErr(joinType ast.JoinType) *errors.Error {
	return errors.InvalidJoinTypeError(joinType.String())
}

// AggregationMixErr reports a SELECT list mixing aggregate and
// non-aggregate items without a GROUP BY.
func AggregationMixErr(columnName string) *errors.Error {
	return errors.AggregationMixError(columnName)
}

// PredicateNotSupportedErr reports a conjunct whose subquery shape this
// package does not admit.
func PredicateNotSupportedErr(e *ast.Expr) *errors.Error {
	return errors.PredicateNotSupportedError(fmt.Sprintf("%s at depth %d", e.Kind, e.Depth))
}

// ScalarSubqueryCompareErr reports a comparison between two row-subqueries.
func ScalarSubqueryCompareErr() *errors.Error {
	return errors.ScalarSubqueryCompareError("comparison between two sub-selects")
}

// SubSelectNotSupportedErr reports a correlated sub-select outside the
// admissible shape.
func SubSelectNotSupportedErr() *errors.Error {
	return errors.SubSelectNotSupportedError("correlated conjunct is not a bare equality against an outer-depth column")
}

// SubSelectArityErr reports a sub-select in a predicate position that does
// not project exactly one column.
func SubSelectArityErr(projected int) *errors.Error {
	return errors.SubSelectArityError(projected)
}

// TooManyValuesErr reports an INSERT row wider than its target columns.
func TooManyValuesErr(got, want int) *errors.Error {
	return errors.TooManyValuesError(got, want)
}

// TooFewValuesErr reports an INSERT row narrower than its explicit target
// columns.
func TooFewValuesErr(got, want int) *errors.Error {
	return errors.TooFewValuesError(got, want)
}

// UnknownColumnErr reports an explicit INSERT column not present in
// the target table's schema.
func UnknownColumnErr(columnName, tableName string) *errors.Error {
	return errors.UnknownColumnError(columnName, tableName)
}

// NotNullViolationErr reports an omitted non-nullable column without a
// default.
func NotNullViolationErr(columnName, tableName string) *errors.Error {
	return errors.NotNullViolationError(columnName, tableName)
}
