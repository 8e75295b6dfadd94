package optimizer

import (
	"strings"

	"github.com/ardentql/qxform/ast"
)

// visitSelect lowers sel following the normative SELECT ordering: save and
// clear the predicate accumulator, visit FROM, fold WHERE into a Filter,
// apply aggregation (and HAVING), apply DISTINCT, apply LIMIT, then
// restore the accumulator.
func (t *Transformer) visitSelect(sel *ast.SelectStmt) (*OperatorExpression, error) {
	saved := t.predicates
	t.predicates = nil
	defer func() { t.predicates = saved }()

	var output *OperatorExpression
	var err error
	if sel.From != nil {
		output, err = t.visitTableRef(sel.From)
		if err != nil {
			return nil, err
		}
	} else {
		output = NewOperatorExpression(&LogicalOperator{Kind: OpGet, Get: &GetPayload{}})
	}

	if sel.Where != nil {
		t.predicates, err = t.CollectPredicates(sel.Where, t.predicates, &output)
		if err != nil {
			return nil, err
		}
	}
	if len(t.predicates) > 0 {
		output = NewOperatorExpression(&LogicalOperator{Kind: OpFilter, Filter: &FilterPayload{Predicates: t.predicates}}, output)
		t.predicates = nil
	}

	required, err := RequireAggregation(sel)
	if err != nil {
		return nil, err
	}
	if required {
		output = NewOperatorExpression(&LogicalOperator{Kind: OpAggregateAndGroupBy, Aggregate: &AggregatePayload{GroupBy: sel.GroupBy}}, output)

		if sel.Having != nil {
			having, err := t.CollectPredicates(sel.Having, nil, &output)
			if err != nil {
				return nil, err
			}
			if len(having) > 0 {
				output = NewOperatorExpression(&LogicalOperator{Kind: OpFilter, Filter: &FilterPayload{Predicates: having}}, output)
			}
		}
	}

	if sel.Distinct {
		output = NewOperatorExpression(&LogicalOperator{Kind: OpDistinct}, output)
	}

	if sel.Limit != nil && sel.Limit.Limit != ast.LimitSentinel {
		sortExprs := make([]*ast.Expr, len(sel.OrderBy))
		sortDescs := make([]bool, len(sel.OrderBy))
		for i, item := range sel.OrderBy {
			sortExprs[i] = item.Expr
			sortDescs[i] = item.Desc
		}
		output = NewOperatorExpression(&LogicalOperator{
			Kind: OpLimit,
			Limit: &LimitPayload{
				Offset:    sel.Limit.Offset,
				Limit:     sel.Limit.Limit,
				SortExprs: sortExprs,
				SortDescs: sortDescs,
			},
		}, output)
	}

	return output, nil
}

// visitTableRef lowers a FROM-clause entry: a single table, a derived
// table, an explicit JOIN, or an implicit (comma-separated) list, which
// becomes a left-deep chain of cross-product InnerJoins.
func (t *Transformer) visitTableRef(ref *ast.TableRef) (*OperatorExpression, error) {
	switch ref.Kind {
	case ast.TableRefTable:
		rt, err := t.resolveTable(ref.Table.Name)
		if err != nil {
			return nil, err
		}
		get := &GetPayload{
			DatabaseOid:  rt.dbOid,
			NamespaceOid: rt.nsOid,
			TableOid:     rt.tableOid,
			Table:        ref.Table.Name,
			Alias:        ref.Table.EffectiveAlias(),
		}
		return NewOperatorExpression(&LogicalOperator{Kind: OpGet, Get: get}), nil

	case ast.TableRefSubquery:
		alias := strings.ToLower(ref.Subquery.Alias)
		aliasMap := t.buildAliasMap(ref.Subquery.Query.Columns)
		sub, err := t.visitSelect(ref.Subquery.Query)
		if err != nil {
			return nil, err
		}
		op := &LogicalOperator{Kind: OpQueryDerivedGet, QueryDerivedGet: &QueryDerivedGetPayload{Alias: alias, AliasMap: aliasMap}}
		return NewOperatorExpression(op, sub), nil

	case ast.TableRefJoin:
		left, err := t.visitTableRef(ref.Join.Left)
		if err != nil {
			return nil, err
		}
		right, err := t.visitTableRef(ref.Join.Right)
		if err != nil {
			return nil, err
		}
		return t.buildJoin(left, right, ref.Join.Type, ref.Join.Condition)

	case ast.TableRefList:
		result, err := t.visitTableRef(ref.List[0])
		if err != nil {
			return nil, err
		}
		for _, next := range ref.List[1:] {
			nextOp, err := t.visitTableRef(next)
			if err != nil {
				return nil, err
			}
			result, err = t.buildJoin(result, nextOp, ast.JoinInner, nil)
			if err != nil {
				return nil, err
			}
		}
		return result, nil

	default:
		return nil, nil
	}
}

// visitInsert lowers an INSERT statement.
func (t *Transformer) visitInsert(ins *ast.InsertStmt) (*OperatorExpression, error) {
	rt, err := t.resolveTable(ins.Table.Name)
	if err != nil {
		return nil, err
	}

	if ins.Select != nil {
		child, err := t.visitSelect(ins.Select)
		if err != nil {
			return nil, err
		}
		op := &LogicalOperator{Kind: OpInsertSelect, InsertSelect: &InsertSelectPayload{
			DatabaseOid: rt.dbOid, NamespaceOid: rt.nsOid, TableOid: rt.tableOid, Table: ins.Table.Name,
		}}
		return NewOperatorExpression(op, child), nil
	}

	colOids, err := t.resolveInsertColumns(ins, rt)
	if err != nil {
		return nil, err
	}

	op := &LogicalOperator{Kind: OpInsert, Insert: &InsertPayload{
		DatabaseOid: rt.dbOid, NamespaceOid: rt.nsOid, TableOid: rt.tableOid, Table: ins.Table.Name,
		ColumnOids: colOids, Values: ins.Values,
	}}
	return NewOperatorExpression(op), nil
}

func (t *Transformer) resolveInsertColumns(ins *ast.InsertStmt, rt resolvedTable) ([]Oid, error) {
	cols := rt.schema.GetColumns()

	if len(ins.Columns) == 0 {
		colOids := make([]Oid, len(cols))
		for i, c := range cols {
			colOids[i] = c.Oid()
		}
		for _, row := range ins.Values {
			if len(row) > len(cols) {
				return nil, TooManyValuesErr(len(row), len(cols))
			}
			for i := len(row); i < len(cols); i++ {
				c := cols[i]
				if !c.Nullable() && c.StoredExpression() == nil {
					return nil, NotNullViolationErr(c.Name(), ins.Table.Name)
				}
			}
		}
		return colOids, nil
	}

	colOids := make([]Oid, len(ins.Columns))
	specified := make(map[string]struct{}, len(ins.Columns))
	for i, name := range ins.Columns {
		col, err := rt.schema.GetColumn(name)
		if err != nil {
			return nil, UnknownColumnErr(name, ins.Table.Name)
		}
		colOids[i] = col.Oid()
		specified[name] = struct{}{}
	}
	for _, row := range ins.Values {
		switch {
		case len(row) > len(ins.Columns):
			return nil, TooManyValuesErr(len(row), len(ins.Columns))
		case len(row) < len(ins.Columns):
			return nil, TooFewValuesErr(len(row), len(ins.Columns))
		}
	}
	for _, c := range cols {
		if _, ok := specified[c.Name()]; ok {
			continue
		}
		if !c.Nullable() && c.StoredExpression() == nil {
			return nil, NotNullViolationErr(c.Name(), ins.Table.Name)
		}
	}
	return colOids, nil
}

// visitUpdate lowers an UPDATE statement over a for_update Get carrying
// its WHERE predicates, extracted without subquery rewriting.
func (t *Transformer) visitUpdate(upd *ast.UpdateStmt) (*OperatorExpression, error) {
	rt, err := t.resolveTable(upd.Table.Name)
	if err != nil {
		return nil, err
	}

	getPayload := &GetPayload{
		DatabaseOid: rt.dbOid, NamespaceOid: rt.nsOid, TableOid: rt.tableOid,
		Table: upd.Table.Name, Alias: upd.Table.EffectiveAlias(), ForUpdate: true,
	}
	if upd.Where != nil {
		getPayload.Predicates = ExtractPredicates(upd.Where)
	}
	getExpr := NewOperatorExpression(&LogicalOperator{Kind: OpGet, Get: getPayload})

	op := &LogicalOperator{Kind: OpUpdate, Update: &UpdatePayload{
		DatabaseOid: rt.dbOid, NamespaceOid: rt.nsOid, TableOid: rt.tableOid,
		Table: upd.Table.Name, Alias: upd.Table.EffectiveAlias(), SetClauses: upd.SetClauses,
	}}
	return NewOperatorExpression(op, getExpr), nil
}

// visitDelete lowers a DELETE statement over a for_update Get carrying its
// WHERE predicates, extracted without subquery rewriting.
func (t *Transformer) visitDelete(del *ast.DeleteStmt) (*OperatorExpression, error) {
	rt, err := t.resolveTable(del.Table.Name)
	if err != nil {
		return nil, err
	}

	getPayload := &GetPayload{
		DatabaseOid: rt.dbOid, NamespaceOid: rt.nsOid, TableOid: rt.tableOid,
		Table: del.Table.Name, Alias: del.Table.EffectiveAlias(), ForUpdate: true,
	}
	if del.Where != nil {
		getPayload.Predicates = ExtractPredicates(del.Where)
	}
	getExpr := NewOperatorExpression(&LogicalOperator{Kind: OpGet, Get: getPayload})

	op := &LogicalOperator{Kind: OpDelete, Delete: &DeletePayload{
		DatabaseOid: rt.dbOid, NamespaceOid: rt.nsOid, TableOid: rt.tableOid, Table: del.Table.Name,
	}}
	return NewOperatorExpression(op, getExpr), nil
}

// visitCopy lowers a COPY statement: FROM a file becomes an InsertSelect
// over an ExternalFileGet leaf; TO a file wraps either a SELECT or a
// direct table scan in ExportExternalFile.
func (t *Transformer) visitCopy(cp *ast.CopyStmt) (*OperatorExpression, error) {
	switch cp.Direction {
	case ast.CopyFrom:
		rt, err := t.resolveTable(cp.Table.Name)
		if err != nil {
			return nil, err
		}
		leaf := NewOperatorExpression(&LogicalOperator{Kind: OpExternalFileGet, ExternalFileGet: &ExternalFileGetPayload{
			Format: cp.Format, Path: cp.FilePath, Delimiter: cp.Delimiter, Quote: cp.Quote, Escape: cp.Escape,
		}})
		op := &LogicalOperator{Kind: OpInsertSelect, InsertSelect: &InsertSelectPayload{
			DatabaseOid: rt.dbOid, NamespaceOid: rt.nsOid, TableOid: rt.tableOid, Table: cp.Table.Name,
		}}
		return NewOperatorExpression(op, leaf), nil

	case ast.CopyTo:
		var source *OperatorExpression
		var err error
		if cp.Select != nil {
			source, err = t.visitSelect(cp.Select)
		} else {
			source, err = t.visitTableRef(ast.NewTableRef(cp.Table.Name, cp.Table.Alias))
		}
		if err != nil {
			return nil, err
		}
		op := &LogicalOperator{Kind: OpExportExternalFile, ExportExternalFile: &ExportExternalFilePayload{
			Format: cp.Format, Path: cp.FilePath, Delimiter: cp.Delimiter, Quote: cp.Quote, Escape: cp.Escape,
		}}
		return NewOperatorExpression(op, source), nil

	default:
		return nil, nil
	}
}
