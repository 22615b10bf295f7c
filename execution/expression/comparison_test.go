package expression

import (
	"testing"

	"github.com/ryogrid/SuzumeDB/common"
	"github.com/ryogrid/SuzumeDB/storage/table/column"
	"github.com/ryogrid/SuzumeDB/storage/table/schema"
	"github.com/ryogrid/SuzumeDB/storage/tuple"
	"github.com/ryogrid/SuzumeDB/types"
	"github.com/stretchr/testify/require"
)

func testSchemaAndTuple() (*schema.Schema, *tuple.Tuple) {
	schema_ := schema.NewSchema([]*column.Column{
		column.NewColumn("a", types.Integer),
		column.NewColumn("c", types.Varchar),
	})
	t := tuple.NewTuple([]types.Value{types.NewInteger(20), types.NewVarchar("foo")})
	return schema_, t
}

func TestComparisonOperators(t *testing.T) {
	schema_, tuple_ := testSchemaAndTuple()

	cases := []struct {
		op      ComparisonType
		literal int32
		exp     bool
	}{
		{Equal, 20, true},
		{Equal, 21, false},
		{NotEqual, 21, true},
		{LessThan, 21, true},
		{LessThanOrEqual, 20, true},
		{GreaterThan, 19, true},
		{GreaterThanOrEqual, 21, false},
	}
	for _, c := range cases {
		cmp := NewComparison(NewColumnValue("a"), NewConstantValue(types.NewInteger(c.literal)), c.op)
		matched, err := cmp.Compare(tuple_, schema_)
		require.NoError(t, err)
		require.Equal(t, c.exp, matched, "a %s %d", c.op, c.literal)
	}
}

func TestComparisonTypeMismatch(t *testing.T) {
	schema_, tuple_ := testSchemaAndTuple()

	cmp := NewComparison(NewColumnValue("a"), NewConstantValue(types.NewVarchar("20")), Equal)
	_, err := cmp.Compare(tuple_, schema_)
	require.Error(t, err)

	var qerr common.QueryError
	require.ErrorAs(t, err, &qerr)
	require.Equal(t, common.UnsupportedComparisonError, qerr.Code)
	require.Contains(t, qerr.ErrString, "a")
}

func TestComparisonUnknownOperator(t *testing.T) {
	schema_, tuple_ := testSchemaAndTuple()

	cmp := NewComparison(NewColumnValue("a"), NewConstantValue(types.NewInteger(20)), ComparisonType(99))
	_, err := cmp.Compare(tuple_, schema_)
	require.Error(t, err)

	var qerr common.QueryError
	require.ErrorAs(t, err, &qerr)
	require.Equal(t, common.UnsupportedComparisonError, qerr.Code)
}

func TestComparisonFieldNotFound(t *testing.T) {
	schema_, tuple_ := testSchemaAndTuple()

	cmp := NewComparison(NewColumnValue("missing"), NewConstantValue(types.NewInteger(1)), Equal)
	_, err := cmp.Compare(tuple_, schema_)
	require.Error(t, err)

	var qerr common.QueryError
	require.ErrorAs(t, err, &qerr)
	require.Equal(t, common.FieldNotFoundError, qerr.Code)
	require.Contains(t, qerr.ErrString, "missing")
}
