package catalog

import (
	"fmt"
	"sync"

	"github.com/ardentql/qxform/ast"
)

// Oid is a catalog object identifier: a stable integer handle the optimizer
// carries through a Get/Insert/Update/Delete node instead of a table name,
// the way a real catalog would.
type Oid int64

// InvalidOid is never assigned to a real object.
const InvalidOid Oid = 0

// CatalogAccessor is the OID-resolving catalog contract the transformer
// consumes. It is the external collaborator described in SPEC_FULL.md §6;
// this package supplies the only implementation, MemoryCatalogAccessor, so
// the transformer is testable without a real catalog service.
type CatalogAccessor interface {
	GetDatabaseOid(name string) (Oid, error)
	GetDefaultNamespace() Oid
	GetTableOid(name string) (Oid, error)
	GetSchema(tableOid Oid) (*Schema, error)
}

// Schema is the ordered column list of a table, as the transformer needs it
// for INSERT validation and Get/Update/Delete construction.
type Schema struct {
	columns []*SchemaColumn
	byName  map[string]*SchemaColumn
}

// GetColumns returns the schema's columns in ordinal order.
func (s *Schema) GetColumns() []*SchemaColumn {
	return s.columns
}

// GetColumn looks up a column by name, raising when it does not exist.
func (s *Schema) GetColumn(name string) (*SchemaColumn, error) {
	col, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("column %q does not exist", name)
	}
	return col, nil
}

// SchemaColumn is one column of a Schema.
type SchemaColumn struct {
	oid         Oid
	name        string
	nullable    bool
	defaultExpr *ast.Expr
}

func (c *SchemaColumn) Oid() Oid               { return c.oid }
func (c *SchemaColumn) Name() string           { return c.name }
func (c *SchemaColumn) Nullable() bool         { return c.nullable }
func (c *SchemaColumn) StoredExpression() *ast.Expr { return c.defaultExpr }

// MemoryCatalogAccessor adapts a MemoryCatalog, which identifies tables by
// schema-qualified name, to the OID-based CatalogAccessor contract. It
// assigns namespace OIDs lazily and reuses MemoryCatalog's own table/column
// IDs as table/column OIDs, so the two stay in lockstep without a second
// bookkeeping table.
type MemoryCatalogAccessor struct {
	mc *MemoryCatalog

	mu               sync.Mutex
	namespaceOids    map[string]Oid
	nextNamespaceOid Oid
}

// NewMemoryCatalogAccessor wraps mc.
func NewMemoryCatalogAccessor(mc *MemoryCatalog) *MemoryCatalogAccessor {
	return &MemoryCatalogAccessor{
		mc:               mc,
		namespaceOids:    map[string]Oid{defaultSchemaName: 1},
		nextNamespaceOid: 2,
	}
}

// GetDatabaseOid always resolves to the single database this in-memory
// catalog represents; MemoryCatalog itself has no multi-database concept.
func (a *MemoryCatalogAccessor) GetDatabaseOid(_ string) (Oid, error) {
	return Oid(1), nil
}

// GetDefaultNamespace returns the OID of the "public" schema.
func (a *MemoryCatalogAccessor) GetDefaultNamespace() Oid {
	return a.namespaceOid(defaultSchemaName)
}

func (a *MemoryCatalogAccessor) namespaceOid(name string) Oid {
	a.mu.Lock()
	defer a.mu.Unlock()

	if oid, ok := a.namespaceOids[name]; ok {
		return oid
	}
	oid := a.nextNamespaceOid
	a.nextNamespaceOid++
	a.namespaceOids[name] = oid
	return oid
}

// GetTableOid resolves a table name in the default namespace to its OID.
func (a *MemoryCatalogAccessor) GetTableOid(name string) (Oid, error) {
	table, err := a.mc.GetTable("", name)
	if err != nil {
		return InvalidOid, err
	}
	return Oid(table.ID), nil
}

// GetSchema returns the ordered column list for tableOid.
func (a *MemoryCatalogAccessor) GetSchema(tableOid Oid) (*Schema, error) {
	table, ok := a.mc.GetTableByID(int64(tableOid))
	if !ok {
		return nil, fmt.Errorf("table with oid %d does not exist", tableOid)
	}

	cols := make([]*SchemaColumn, 0, len(table.Columns))
	byName := make(map[string]*SchemaColumn, len(table.Columns))
	for _, col := range table.Columns {
		sc := &SchemaColumn{
			oid:         Oid(col.ID),
			name:        col.Name,
			nullable:    col.IsNullable,
			defaultExpr: defaultExpression(col),
		}
		cols = append(cols, sc)
		byName[col.Name] = sc
	}
	return &Schema{columns: cols, byName: byName}, nil
}

// defaultExpression returns col's default-value expression, or nil when the
// column carries no DEFAULT. MemoryCatalog represents "no default" as the
// zero Value (Null=false, Data=nil); anything else, including an explicit
// DEFAULT NULL, is wrapped as a literal.
func defaultExpression(col *Column) *ast.Expr {
	if !col.DefaultValue.Null && col.DefaultValue.Data == nil {
		return nil
	}
	return ast.NewLiteral(col.DefaultValue)
}
