package tuple

import (
	"strings"

	"github.com/ryogrid/SuzumeDB/common"
	"github.com/ryogrid/SuzumeDB/storage/table/schema"
	"github.com/ryogrid/SuzumeDB/types"
)

// A Tuple is an immutable ordered sequence of field values. The table heap
// holding the tuple, not the tuple itself, carries the schema.
type Tuple struct {
	values []types.Value
}

func NewTuple(values []types.Value) *Tuple {
	return &Tuple{values}
}

// NewTupleFromSchema creates a new tuple and asserts that the value count
// matches the schema shape.
func NewTupleFromSchema(values []types.Value, schema_ *schema.Schema) *Tuple {
	common.SH_Assert(uint32(len(values)) == schema_.GetColumnCount(),
		"value count does not match schema column count")
	return &Tuple{values}
}

func (t *Tuple) GetValue(colIndex uint32) types.Value {
	return t.values[colIndex]
}

func (t *Tuple) Values() []types.Value {
	return t.values
}

func (t *Tuple) Count() uint32 {
	return uint32(len(t.values))
}

// Serialize encodes the tuple's values back to back. Varchar values carry
// their own length prefix, so the encoding decodes sequentially against the
// owning schema.
func (t *Tuple) Serialize() []byte {
	data := make([]byte, 0)
	for _, value := range t.values {
		data = append(data, value.Serialize()...)
	}
	return data
}

// NewTupleFromBytes decodes a tuple serialized by Serialize, using the
// schema's column types to walk the payload.
func NewTupleFromBytes(data []byte, schema_ *schema.Schema) *Tuple {
	values := make([]types.Value, 0, schema_.GetColumnCount())
	offset := uint32(0)
	for i := uint32(0); i < schema_.GetColumnCount(); i++ {
		value := types.NewValueFromBytes(data[offset:], schema_.GetColumn(i).GetType())
		common.SH_Assert(value != nil, "tuple payload does not match schema")
		values = append(values, *value)
		offset += value.Size()
	}
	return &Tuple{values}
}

func (t *Tuple) String() string {
	fields := make([]string, 0, len(t.values))
	for _, value := range t.values {
		fields = append(fields, value.String())
	}
	return "(" + strings.Join(fields, ", ") + ")"
}
