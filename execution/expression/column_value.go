package expression

import (
	"fmt"
	"math"

	"github.com/ryogrid/SuzumeDB/common"
	"github.com/ryogrid/SuzumeDB/storage/table/schema"
	"github.com/ryogrid/SuzumeDB/storage/tuple"
	"github.com/ryogrid/SuzumeDB/types"
)

// ColumnValue maintains the name of the column to fetch from a tuple; the
// name is resolved against the schema at evaluation time.
type ColumnValue struct {
	colName string
}

func NewColumnValue(colName string) Expression {
	return &ColumnValue{colName}
}

func (c *ColumnValue) Evaluate(tuple_ *tuple.Tuple, schema_ *schema.Schema) (types.Value, error) {
	colIndex := schema_.GetColIndex(c.colName)
	if colIndex == math.MaxUint32 {
		return types.Value{}, common.QueryError{
			Code:      common.FieldNotFoundError,
			ErrString: fmt.Sprintf("field %s is not in schema", c.colName),
		}
	}
	return tuple_.GetValue(colIndex), nil
}

func (c *ColumnValue) GetColName() string {
	return c.colName
}
