package executors

import (
	"fmt"
	"math"

	"github.com/ryogrid/SuzumeDB/common"
	"github.com/ryogrid/SuzumeDB/container/hash"
	"github.com/ryogrid/SuzumeDB/execution/plans"
	"github.com/ryogrid/SuzumeDB/storage/tuple"
	"github.com/ryogrid/SuzumeDB/types"
)

// aggregateState is the running state folded over one group (or over the
// whole input when no group-by is given).
type aggregateState struct {
	sum   float64
	count int64
	min   float64
	max   float64
}

func newAggregateState() *aggregateState {
	return &aggregateState{0, 0, math.MaxFloat64, -math.MaxFloat64}
}

func (s *aggregateState) combine(aggType plans.AggregationType, value float64) {
	switch aggType {
	case plans.COUNT_AGGREGATE:
		// Count increases by one.
		s.count++
	case plans.SUM_AGGREGATE, plans.AVG_AGGREGATE:
		// Sum increases by addition; the count feeds AVG finalization.
		s.sum += value
		s.count++
	case plans.MIN_AGGREGATE:
		if value < s.min {
			s.min = value
		}
	case plans.MAX_AGGREGATE:
		if value > s.max {
			s.max = value
		}
	}
}

// finalize produces the per-group result. Grouped results stay floating
// point; truncation only happens on the non-grouped path.
func (s *aggregateState) finalize(aggType plans.AggregationType) float64 {
	switch aggType {
	case plans.COUNT_AGGREGATE:
		return float64(s.count)
	case plans.SUM_AGGREGATE:
		return s.sum
	case plans.AVG_AGGREGATE:
		return s.sum / float64(s.count)
	case plans.MIN_AGGREGATE:
		return s.min
	case plans.MAX_AGGREGATE:
		return s.max
	}
	panic("finalize called with unsupported aggregation type")
}

type aggregateEntry struct {
	groupKey types.Value
	state    *aggregateState
}

/**
 * A simplified hash table that has all the necessary functionality for
 * aggregations. Buckets keep the raw group key so that hash collisions
 * never merge distinct groups.
 */
type SimpleAggregationHashTable struct {
	buckets map[uint32][]*aggregateEntry
	aggType plans.AggregationType
}

func NewSimpleAggregationHashTable(aggType plans.AggregationType) *SimpleAggregationHashTable {
	ret := new(SimpleAggregationHashTable)
	ret.buckets = make(map[uint32][]*aggregateEntry)
	ret.aggType = aggType
	return ret
}

/** Folds one value into the state of its group, creating the group on first sight. */
func (aht *SimpleAggregationHashTable) InsertCombine(groupKey types.Value, value float64) {
	hashVal := hash.HashValue(&groupKey)
	for _, entry := range aht.buckets[hashVal] {
		if entry.groupKey.CompareEquals(groupKey) {
			entry.state.combine(aht.aggType, value)
			return
		}
	}
	entry := &aggregateEntry{groupKey, newAggregateState()}
	entry.state.combine(aht.aggType, value)
	aht.buckets[hashVal] = append(aht.buckets[hashVal], entry)
}

// Entries returns every group's entry. Emergence order follows map
// iteration and is unspecified.
func (aht *SimpleAggregationHashTable) Entries() []*aggregateEntry {
	entries := make([]*aggregateEntry, 0)
	for _, bucket := range aht.buckets {
		entries = append(entries, bucket...)
	}
	return entries
}

/**
 * AggregationExecutor executes an aggregation operation (e.g. COUNT, SUM,
 * MIN, MAX) over the input heap, one result tuple per distinct group, or a
 * single global result when no group-by field is given.
 */
type AggregationExecutor struct {
	context *ExecutorContext
	plan    *plans.AggregationPlanNode
}

func NewAggregationExecutor(context *ExecutorContext, plan *plans.AggregationPlanNode) Executor {
	return &AggregationExecutor{context, plan}
}

func (e *AggregationExecutor) Execute() error {
	in := e.context.GetInput()
	out := e.context.GetOutput()
	schema_ := in.Schema()
	aggType := e.plan.GetAggregationType()

	switch aggType {
	case plans.COUNT_AGGREGATE, plans.SUM_AGGREGATE, plans.AVG_AGGREGATE,
		plans.MIN_AGGREGATE, plans.MAX_AGGREGATE:
	default:
		return common.QueryError{
			Code:      common.UnsupportedOperatorError,
			ErrString: fmt.Sprintf("aggregate operator %s is not supported", aggType),
		}
	}

	colIndex := schema_.GetColIndex(e.plan.GetColName())
	if colIndex == math.MaxUint32 {
		return common.QueryError{
			Code:      common.FieldNotFoundError,
			ErrString: fmt.Sprintf("field %s is not in schema", e.plan.GetColName()),
		}
	}

	groupIndex := uint32(0)
	if e.plan.HasGroupBy() {
		groupIndex = schema_.GetColIndex(e.plan.GetGroupByCol())
		if groupIndex == math.MaxUint32 {
			return common.QueryError{
				Code:      common.FieldNotFoundError,
				ErrString: fmt.Sprintf("field %s is not in schema", e.plan.GetGroupByCol()),
			}
		}
	}

	aht := NewSimpleAggregationHashTable(aggType)
	globalState := newAggregateState()
	numRows := uint32(0)

	for it := in.Iterator(); !it.End(); it.Next() {
		t := it.Current()

		v := t.GetValue(colIndex)
		if !v.IsNumeric() {
			return common.QueryError{
				Code: common.NonNumericFieldError,
				ErrString: fmt.Sprintf("field %s holds a non-numeric value (%s)",
					e.plan.GetColName(), v.ValueType()),
			}
		}
		value := v.ToDecimal()
		numRows++

		if e.plan.HasGroupBy() {
			aht.InsertCombine(t.GetValue(groupIndex), value)
		} else {
			globalState.combine(aggType, value)
		}
	}

	common.ShPrintf(common.DEBUG_INFO, "AggregationExecutor: %s over %d rows\n", aggType, numRows)

	if e.plan.HasGroupBy() {
		// one (group value, aggregate value) tuple per distinct group;
		// an empty input has no group keys and yields zero output rows
		for _, entry := range aht.Entries() {
			result := types.NewFloat(float32(entry.state.finalize(aggType)))
			if err := out.InsertTuple(tuple.NewTuple([]types.Value{entry.groupKey, result})); err != nil {
				return err
			}
		}
		return nil
	}

	// the non-grouped path always emits exactly one row, defaulted when the
	// input was empty; SUM/MIN/MAX truncate to integer here
	var result types.Value
	switch aggType {
	case plans.SUM_AGGREGATE:
		result = types.NewInteger(int32(globalState.sum))
	case plans.AVG_AGGREGATE:
		if globalState.count > 0 {
			result = types.NewFloat(float32(globalState.sum / float64(globalState.count)))
		} else {
			result = types.NewFloat(0)
		}
	case plans.MIN_AGGREGATE:
		if numRows > 0 {
			result = types.NewInteger(int32(globalState.min))
		} else {
			result = types.NewInteger(0)
		}
	case plans.MAX_AGGREGATE:
		if numRows > 0 {
			result = types.NewInteger(int32(globalState.max))
		} else {
			result = types.NewInteger(0)
		}
	case plans.COUNT_AGGREGATE:
		result = types.NewInteger(int32(globalState.count))
	}

	return out.InsertTuple(tuple.NewTuple([]types.Value{result}))
}
