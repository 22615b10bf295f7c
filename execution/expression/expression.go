package expression

import (
	"github.com/ryogrid/SuzumeDB/storage/table/schema"
	"github.com/ryogrid/SuzumeDB/storage/tuple"
	"github.com/ryogrid/SuzumeDB/types"
)

type Expression interface {
	Evaluate(tuple_ *tuple.Tuple, schema_ *schema.Schema) (types.Value, error)
}
