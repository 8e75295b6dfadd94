package optimizer

import (
	"io"
	"log/slog"
	"testing"

	"github.com/ardentql/qxform/internal/catalog"
	"github.com/ardentql/qxform/internal/log"
	"github.com/ardentql/qxform/internal/sql/types"
)

func discardLogger() log.Logger {
	return log.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestTransformer seeds an in-memory catalog with the tables the table
// driven tests below reference and returns a Transformer over it.
func newTestTransformer(t *testing.T) *Transformer {
	t.Helper()
	mc := catalog.NewMemoryCatalog()

	_, err := mc.CreateTable(&catalog.TableSchema{
		TableName: "warehouse",
		Columns: []catalog.ColumnDef{
			{Name: "w_id", DataType: types.Integer, IsNullable: false},
			{Name: "w_street_1", DataType: types.Text, IsNullable: true},
			{Name: "w_ytd", DataType: types.Float, IsNullable: false},
		},
	})
	if err != nil {
		t.Fatalf("seed warehouse: %v", err)
	}

	_, err = mc.CreateTable(&catalog.TableSchema{
		TableName: "history",
		Columns: []catalog.ColumnDef{
			{Name: "h_c_d_id", DataType: types.Integer, IsNullable: false},
			{Name: "h_c_w_id", DataType: types.Integer, IsNullable: false},
			{Name: "h_c_id", DataType: types.Integer, IsNullable: false},
			{Name: "h_d_id", DataType: types.Integer, IsNullable: false},
			{Name: "h_w_id", DataType: types.Integer, IsNullable: false},
			{Name: "h_date", DataType: types.Integer, IsNullable: true},
			{Name: "h_amount", DataType: types.Float, IsNullable: false},
			{Name: "h_data", DataType: types.Text, IsNullable: true},
		},
	})
	if err != nil {
		t.Fatalf("seed history: %v", err)
	}

	for _, name := range []string{"t", "u", "t1", "t2", "t3"} {
		_, err = mc.CreateTable(&catalog.TableSchema{
			TableName: name,
			Columns: []catalog.ColumnDef{
				{Name: "a", DataType: types.Integer, IsNullable: true},
				{Name: "b", DataType: types.Integer, IsNullable: true},
				{Name: "x", DataType: types.Integer, IsNullable: true},
			},
		})
		if err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}

	return New(catalog.NewMemoryCatalogAccessor(mc), discardLogger())
}
