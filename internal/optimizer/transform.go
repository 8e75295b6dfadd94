package optimizer

import (
	"context"

	"github.com/ardentql/qxform/ast"
	"github.com/ardentql/qxform/internal/catalog"
	"github.com/ardentql/qxform/internal/log"
)

// Transformer lowers a bound ast.Statement into a LogicalOperator tree. It
// is single-threaded and synchronous: one instance processes one statement
// at a time. Callers needing concurrency should use one instance per
// goroutine; the catalog collaborator is expected to tolerate concurrent
// read access on its own.
type Transformer struct {
	catalog catalog.CatalogAccessor
	log     log.Logger

	// predicates is the predicate accumulator for the SELECT scope
	// currently being visited. visitSelect saves and restores it around
	// its own recursion so nested sub-selects don't clobber outer-scope
	// predicates still pending a Filter wrap.
	predicates []AnnotatedExpression
}

// New builds a Transformer over cat, logging through logger.
func New(cat catalog.CatalogAccessor, logger log.Logger) *Transformer {
	return &Transformer{catalog: cat, log: logger}
}

// Transform lowers stmt into an operator tree. ctx carries an optional
// query id (see log.ContextWithQueryID) that tags every log line this call
// emits; the transform itself never blocks or checks ctx.Done(), since a
// cancellation mid-rewrite would leave a partial tree, which §7 forbids.
func (t *Transformer) Transform(ctx context.Context, stmt *ast.Statement) (*OperatorExpression, error) {
	logger := t.log.WithContext(ctx).With("stmt_kind", stmt.Kind.String())
	saved := t.log
	t.log = logger
	defer func() { t.log = saved }()

	switch stmt.Kind {
	case ast.StmtSelect:
		return t.visitSelect(stmt.Select)
	case ast.StmtInsert:
		return t.visitInsert(stmt.Insert)
	case ast.StmtUpdate:
		return t.visitUpdate(stmt.Update)
	case ast.StmtDelete:
		return t.visitDelete(stmt.Delete)
	case ast.StmtCopy:
		return t.visitCopy(stmt.Copy)
	default:
		logger.Debug("statement kind produces no operator output")
		return nil, nil
	}
}

// resolvedTable bundles the OID triple and schema looked up for one table
// name, so the statement visitor doesn't repeat the catalog round-trip.
type resolvedTable struct {
	dbOid, nsOid, tableOid Oid
	schema                 *catalog.Schema
}

func (t *Transformer) resolveTable(name string) (resolvedTable, error) {
	dbOid, err := t.catalog.GetDatabaseOid("")
	if err != nil {
		return resolvedTable{}, err
	}
	nsOid := t.catalog.GetDefaultNamespace()
	tableOid, err := t.catalog.GetTableOid(name)
	if err != nil {
		return resolvedTable{}, err
	}
	schema, err := t.catalog.GetSchema(tableOid)
	if err != nil {
		return resolvedTable{}, err
	}
	return resolvedTable{dbOid: dbOid, nsOid: nsOid, tableOid: tableOid, schema: schema}, nil
}
