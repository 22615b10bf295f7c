package executors

import (
	"fmt"
	"math"

	"github.com/ryogrid/SuzumeDB/common"
	"github.com/ryogrid/SuzumeDB/execution/plans"
	"github.com/ryogrid/SuzumeDB/storage/tuple"
	"github.com/ryogrid/SuzumeDB/types"
)

/**
 * NestedLoopJoinExecutor executes the inequality join strategy: a full
 * L x R scan emitting one combined tuple for every pair whose join-field
 * values differ. Unlike the equality strategy, all right fields are
 * retained, the join field included.
 */
type NestedLoopJoinExecutor struct {
	context *ExecutorContext
	plan    *plans.JoinPlanNode
}

func NewNestedLoopJoinExecutor(context *ExecutorContext, plan *plans.JoinPlanNode) Executor {
	return &NestedLoopJoinExecutor{context, plan}
}

func (e *NestedLoopJoinExecutor) Execute() error {
	left := e.context.GetLeft()
	right := e.context.GetRight()
	out := e.context.GetOutput()

	leftIndex := left.Schema().GetColIndex(e.plan.GetLeftColName())
	if leftIndex == math.MaxUint32 {
		return common.QueryError{
			Code:      common.FieldNotFoundError,
			ErrString: fmt.Sprintf("field %s is not in left schema", e.plan.GetLeftColName()),
		}
	}
	rightIndex := right.Schema().GetColIndex(e.plan.GetRightColName())
	if rightIndex == math.MaxUint32 {
		return common.QueryError{
			Code:      common.FieldNotFoundError,
			ErrString: fmt.Sprintf("field %s is not in right schema", e.plan.GetRightColName()),
		}
	}

	// materialize the right side once so the inner loop does not re-scan
	// the heap per left tuple
	rightTuples := make([]*tuple.Tuple, 0, right.NumTuples())
	for it := right.Iterator(); !it.End(); it.Next() {
		rightTuples = append(rightTuples, it.Current())
	}

	for it := left.Iterator(); !it.End(); it.Next() {
		leftTuple := it.Current()
		leftKey := leftTuple.GetValue(leftIndex)

		for _, rightTuple := range rightTuples {
			if !leftKey.CompareNotEquals(rightTuple.GetValue(rightIndex)) {
				continue
			}
			if err := out.InsertTuple(e.makeOutputTuple(leftTuple, rightTuple)); err != nil {
				return err
			}
		}
	}

	return nil
}

func (e *NestedLoopJoinExecutor) makeOutputTuple(leftTuple *tuple.Tuple, rightTuple *tuple.Tuple) *tuple.Tuple {
	values := make([]types.Value, 0, leftTuple.Count()+rightTuple.Count())
	values = append(values, leftTuple.Values()...)
	values = append(values, rightTuple.Values()...)
	return tuple.NewTuple(values)
}
