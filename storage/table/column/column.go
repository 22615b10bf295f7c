package column

import (
	"github.com/ryogrid/SuzumeDB/types"
)

type Column struct {
	columnName string
	columnType types.TypeID
}

func NewColumn(name string, columnType types.TypeID) *Column {
	return &Column{name, columnType}
}

func (c *Column) GetType() types.TypeID {
	return c.columnType
}

func (c *Column) GetColumnName() string {
	return c.columnName
}
