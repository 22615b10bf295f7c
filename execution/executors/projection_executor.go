package executors

import (
	"fmt"
	"math"

	"github.com/ryogrid/SuzumeDB/common"
	"github.com/ryogrid/SuzumeDB/execution/plans"
	"github.com/ryogrid/SuzumeDB/storage/tuple"
	"github.com/ryogrid/SuzumeDB/types"
)

// ProjectionExecutor emits, for every input tuple in input order, one tuple
// holding exactly the named fields in the requested order.
type ProjectionExecutor struct {
	context *ExecutorContext
	plan    *plans.ProjectionPlanNode
}

func NewProjectionExecutor(context *ExecutorContext, plan *plans.ProjectionPlanNode) Executor {
	return &ProjectionExecutor{context, plan}
}

func (e *ProjectionExecutor) Execute() error {
	in := e.context.GetInput()
	out := e.context.GetOutput()
	schema_ := in.Schema()

	// resolve every requested name before scanning so an unknown field
	// fails even on an empty input
	colIndexes := make([]uint32, 0, len(e.plan.GetColumnNames()))
	for _, colName := range e.plan.GetColumnNames() {
		colIndex := schema_.GetColIndex(colName)
		if colIndex == math.MaxUint32 {
			return common.QueryError{
				Code:      common.FieldNotFoundError,
				ErrString: fmt.Sprintf("field %s is not in schema", colName),
			}
		}
		colIndexes = append(colIndexes, colIndex)
	}

	for it := in.Iterator(); !it.End(); it.Next() {
		t := it.Current()
		values := make([]types.Value, 0, len(colIndexes))
		for _, colIndex := range colIndexes {
			values = append(values, t.GetValue(colIndex))
		}
		if err := out.InsertTuple(tuple.NewTuple(values)); err != nil {
			return err
		}
	}

	return nil
}
