// Package optimizer implements the query-to-logical-operator transformer:
// it lowers a bound ast.Statement into a LogicalOperator tree suitable for
// downstream rule-based rewriting and cost-based search, neither of which
// this package performs itself.
package optimizer

import (
	"github.com/ardentql/qxform/ast"
	"github.com/ardentql/qxform/internal/catalog"
)

// LogicalOperatorKind tags the variant held by a LogicalOperator.
type LogicalOperatorKind int

const (
	OpInvalid LogicalOperatorKind = iota
	OpGet
	OpQueryDerivedGet
	OpExternalFileGet
	OpFilter
	OpInnerJoin
	OpLeftJoin
	OpRightJoin
	OpOuterJoin
	OpSemiJoin
	OpMarkJoin
	OpSingleJoin
	OpAggregateAndGroupBy
	OpDistinct
	OpLimit
	OpInsert
	OpInsertSelect
	OpUpdate
	OpDelete
	OpExportExternalFile
)

func (k LogicalOperatorKind) String() string {
	switch k {
	case OpGet:
		return "GET"
	case OpQueryDerivedGet:
		return "QUERY_DERIVED_GET"
	case OpExternalFileGet:
		return "EXTERNAL_FILE_GET"
	case OpFilter:
		return "FILTER"
	case OpInnerJoin:
		return "INNER_JOIN"
	case OpLeftJoin:
		return "LEFT_JOIN"
	case OpRightJoin:
		return "RIGHT_JOIN"
	case OpOuterJoin:
		return "OUTER_JOIN"
	case OpSemiJoin:
		return "SEMI_JOIN"
	case OpMarkJoin:
		return "MARK_JOIN"
	case OpSingleJoin:
		return "SINGLE_JOIN"
	case OpAggregateAndGroupBy:
		return "AGGREGATE_AND_GROUP_BY"
	case OpDistinct:
		return "DISTINCT"
	case OpLimit:
		return "LIMIT"
	case OpInsert:
		return "INSERT"
	case OpInsertSelect:
		return "INSERT_SELECT"
	case OpUpdate:
		return "UPDATE"
	case OpDelete:
		return "DELETE"
	case OpExportExternalFile:
		return "EXPORT_EXTERNAL_FILE"
	default:
		return "INVALID"
	}
}

// AnnotatedExpression pairs a conjunctive predicate with the set of
// distinct table aliases it references.
type AnnotatedExpression struct {
	Predicate *ast.Expr
	Aliases   map[string]struct{}
}

// GetPayload backs OpGet: a base table scan, or a tableless scalar scan
// when Table is empty.
type GetPayload struct {
	DatabaseOid Oid
	NamespaceOid Oid
	TableOid    Oid
	Table       string
	Alias       string
	Predicates  []AnnotatedExpression
	ForUpdate   bool
}

// Oid is an alias of catalog.Oid, exported here so callers outside
// internal/catalog don't need to import it directly for every operator
// payload field.
type Oid = catalog.Oid

// QueryDerivedGetPayload backs OpQueryDerivedGet: a sub-select used in a
// FROM clause, exposed to outer scopes by alias.
type QueryDerivedGetPayload struct {
	Alias      string
	AliasMap   map[string]*ast.Expr
}

// ExternalFileGetPayload backs OpExternalFileGet: the source side of a
// COPY ... FROM.
type ExternalFileGetPayload struct {
	Format    string
	Path      string
	Delimiter string
	Quote     string
	Escape    string
}

// FilterPayload backs OpFilter.
type FilterPayload struct {
	Predicates []AnnotatedExpression
}

// JoinPayload backs every join kind. Condition is nil for OpInnerJoin,
// whose condition instead flows into the enclosing SELECT's predicate
// accumulator.
type JoinPayload struct {
	Condition *ast.Expr
}

// AggregatePayload backs OpAggregateAndGroupBy.
type AggregatePayload struct {
	GroupBy []*ast.Expr
}

// LimitPayload backs OpLimit.
type LimitPayload struct {
	Offset      int
	Limit       int
	SortExprs   []*ast.Expr
	SortDescs   []bool
}

// InsertPayload backs OpInsert.
type InsertPayload struct {
	DatabaseOid  Oid
	NamespaceOid Oid
	TableOid     Oid
	Table        string
	ColumnOids   []Oid
	Values       [][]*ast.Expr
}

// InsertSelectPayload backs OpInsertSelect.
type InsertSelectPayload struct {
	DatabaseOid  Oid
	NamespaceOid Oid
	TableOid     Oid
	Table        string
}

// UpdatePayload backs OpUpdate.
type UpdatePayload struct {
	DatabaseOid  Oid
	NamespaceOid Oid
	TableOid     Oid
	Table        string
	Alias        string
	SetClauses   []ast.SetClause
}

// DeletePayload backs OpDelete.
type DeletePayload struct {
	DatabaseOid  Oid
	NamespaceOid Oid
	TableOid     Oid
	Table        string
}

// ExportExternalFilePayload backs OpExportExternalFile.
type ExportExternalFilePayload struct {
	Format    string
	Path      string
	Delimiter string
	Quote     string
	Escape    string
}

// LogicalOperator is a tagged variant over every logical node kind this
// package produces. Kind selects which payload field is meaningful; the
// others are left at their zero value.
type LogicalOperator struct {
	Kind LogicalOperatorKind

	Get                *GetPayload
	QueryDerivedGet    *QueryDerivedGetPayload
	ExternalFileGet    *ExternalFileGetPayload
	Filter             *FilterPayload
	Join               *JoinPayload
	Aggregate          *AggregatePayload
	Limit              *LimitPayload
	Insert             *InsertPayload
	InsertSelect       *InsertSelectPayload
	Update             *UpdatePayload
	Delete             *DeletePayload
	ExportExternalFile *ExportExternalFilePayload
}

// OperatorExpression is a node in the logical operator tree: a
// LogicalOperator with an ordered sequence of children. The transformer
// exclusively owns the trees it builds; callers own the returned root once
// Transform returns.
type OperatorExpression struct {
	Op       *LogicalOperator
	Children []*OperatorExpression
}

// NewOperatorExpression builds a node wrapping op over the given children.
func NewOperatorExpression(op *LogicalOperator, children ...*OperatorExpression) *OperatorExpression {
	return &OperatorExpression{Op: op, Children: children}
}
