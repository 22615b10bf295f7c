package schema

import (
	"math"

	"github.com/ryogrid/SuzumeDB/storage/table/column"
)

type Schema struct {
	columns []*column.Column // All the columns in the schema, in tuple order
}

func NewSchema(columns []*column.Column) *Schema {
	schema := &Schema{}
	schema.columns = append(schema.columns, columns...)
	return schema
}

func (s *Schema) GetColumn(colIndex uint32) *column.Column {
	return s.columns[colIndex]
}

func (s *Schema) GetColumnCount() uint32 {
	return uint32(len(s.columns))
}

// GetColIndex returns the position of the named column, or math.MaxUint32
// when the schema has no column of that name. Callers translate the
// sentinel into a FieldNotFoundError.
func (s *Schema) GetColIndex(columnName string) uint32 {
	for i := uint32(0); i < s.GetColumnCount(); i++ {
		if s.columns[i].GetColumnName() == columnName {
			return i
		}
	}

	return math.MaxUint32
}

func (s *Schema) GetColumns() []*column.Column {
	return s.columns
}

func (s *Schema) IsHaveColumn(columnName *string) bool {
	for _, col := range s.columns {
		if col.GetColumnName() == *columnName {
			return true
		}
	}
	return false
}
