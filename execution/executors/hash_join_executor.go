package executors

import (
	"fmt"
	"math"

	pair "github.com/notEpsilon/go-pair"
	"github.com/ryogrid/SuzumeDB/common"
	"github.com/ryogrid/SuzumeDB/container/hash"
	"github.com/ryogrid/SuzumeDB/execution/plans"
	"github.com/ryogrid/SuzumeDB/storage/tuple"
	"github.com/ryogrid/SuzumeDB/types"
)

/**
 * HashJoinExecutor executes the equality join strategy: build a multimap
 * over the left heap keyed by the left join field, then probe it once per
 * right tuple. Duplicate keys on either side fan out multiplicatively; the
 * output is not deduplicated.
 */
type HashJoinExecutor struct {
	context *ExecutorContext
	plan    *plans.JoinPlanNode
}

func NewHashJoinExecutor(context *ExecutorContext, plan *plans.JoinPlanNode) Executor {
	return &HashJoinExecutor{context, plan}
}

func (e *HashJoinExecutor) Execute() error {
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

	// build phase: first traversal of the left heap
	jht := make(map[uint32][]pair.Pair[types.Value, *tuple.Tuple])
	for it := left.Iterator(); !it.End(); it.Next() {
		leftTuple := it.Current()
		key := leftTuple.GetValue(leftIndex)
		hashVal := hash.HashValue(&key)
		jht[hashVal] = append(jht[hashVal], pair.Pair[types.Value, *tuple.Tuple]{First: key, Second: leftTuple})
	}

	common.ShPrintf(common.DEBUG_INFO, "HashJoinExecutor: built index over %d left tuples\n", left.NumTuples())

	// probe phase: single traversal of the right heap; bucket entries keep
	// the raw key, so hash collisions are rejected by CompareEquals
	for it := right.Iterator(); !it.End(); it.Next() {
		rightTuple := it.Current()
		rightKey := rightTuple.GetValue(rightIndex)

		for _, candidate := range jht[hash.HashValue(&rightKey)] {
			if !candidate.First.CompareEquals(rightKey) {
				continue
			}
			if err := out.InsertTuple(e.makeOutputTuple(candidate.Second, rightTuple, rightIndex)); err != nil {
				return err
			}
		}
	}

	return nil
}

// makeOutputTuple combines all left fields in order with all right fields
// in order, omitting the right-side join field: it is redundant with the
// matched left field.
func (e *HashJoinExecutor) makeOutputTuple(leftTuple *tuple.Tuple, rightTuple *tuple.Tuple, rightIndex uint32) *tuple.Tuple {
	values := make([]types.Value, 0, leftTuple.Count()+rightTuple.Count()-1)
	values = append(values, leftTuple.Values()...)
	for i, value := range rightTuple.Values() {
		if uint32(i) != rightIndex {
			values = append(values, value)
		}
	}
	return tuple.NewTuple(values)
}
