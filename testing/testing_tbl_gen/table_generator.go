package testing_tbl_gen

import (
	"github.com/devlights/gomy/output"
	"github.com/ryogrid/SuzumeDB/common"
	"github.com/ryogrid/SuzumeDB/storage/access"
	"github.com/ryogrid/SuzumeDB/storage/table/column"
	"github.com/ryogrid/SuzumeDB/storage/table/schema"
	"github.com/ryogrid/SuzumeDB/storage/tuple"
	"github.com/ryogrid/SuzumeDB/testing/testing_util"
	"github.com/ryogrid/SuzumeDB/types"
)

type ColumnMeta struct {
	Name string
	Kind types.TypeID
}

// MakeSchema builds a schema from (name, type) metadata.
func MakeSchema(colMetas []ColumnMeta) *schema.Schema {
	columns := make([]*column.Column, 0, len(colMetas))
	for _, meta := range colMetas {
		columns = append(columns, column.NewColumn(meta.Name, meta.Kind))
	}
	return schema.NewSchema(columns)
}

// GenerateTestTable materializes the given row literals into a fresh table
// heap. Row values are converted with testing_util.GetValue.
func GenerateTestTable(schema_ *schema.Schema, rows [][]interface{}) (*access.TableHeap, error) {
	heap := access.NewTableHeap(schema_)
	for _, row := range rows {
		values := make([]types.Value, 0, len(row))
		for _, data := range row {
			values = append(values, testing_util.GetValue(data))
		}
		if err := heap.InsertTuple(tuple.NewTuple(values)); err != nil {
			return nil, err
		}
	}
	if common.EnableDebug {
		DumpTable(heap)
	}
	return heap, nil
}

// DumpTable prints every tuple of the heap for debugging.
func DumpTable(heap *access.TableHeap) {
	for it := heap.Iterator(); !it.End(); it.Next() {
		output.Stdoutl("=== tuple", it.Current().String())
	}
}
