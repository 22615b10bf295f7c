package schema

import (
	"math"
	"testing"

	"github.com/ryogrid/SuzumeDB/storage/table/column"
	"github.com/ryogrid/SuzumeDB/types"
	"github.com/stretchr/testify/require"
)

func TestGetColIndex(t *testing.T) {
	schema_ := NewSchema([]*column.Column{
		column.NewColumn("a", types.Integer),
		column.NewColumn("b", types.Varchar),
	})

	require.Equal(t, uint32(0), schema_.GetColIndex("a"))
	require.Equal(t, uint32(1), schema_.GetColIndex("b"))
	require.Equal(t, uint32(math.MaxUint32), schema_.GetColIndex("c"))

	name := "b"
	require.True(t, schema_.IsHaveColumn(&name))
	missing := "c"
	require.False(t, schema_.IsHaveColumn(&missing))
	require.Equal(t, uint32(2), schema_.GetColumnCount())
}
