package executors

import (
	"fmt"

	"github.com/ryogrid/SuzumeDB/common"
	"github.com/ryogrid/SuzumeDB/execution/expression"
	"github.com/ryogrid/SuzumeDB/execution/plans"
)

// ExecutionEngine dispatches a plan descriptor to the matching executor and
// runs it to completion.
type ExecutionEngine struct{}

func (e *ExecutionEngine) Execute(plan plans.Plan, context *ExecutorContext) error {
	common.ShPrintf(common.DEBUG_INFO, "ExecutionEngine: executing plan type %d\n", plan.GetType())

	switch plan.GetType() {
	case plans.Projection:
		return NewProjectionExecutor(context, plan.(*plans.ProjectionPlanNode)).Execute()
	case plans.Selection:
		return NewSelectionExecutor(context, plan.(*plans.SelectionPlanNode)).Execute()
	case plans.Aggregation:
		return NewAggregationExecutor(context, plan.(*plans.AggregationPlanNode)).Execute()
	case plans.Join:
		joinPlan := plan.(*plans.JoinPlanNode)
		switch joinPlan.GetComparisonType() {
		case expression.Equal:
			return NewHashJoinExecutor(context, joinPlan).Execute()
		case expression.NotEqual:
			return NewNestedLoopJoinExecutor(context, joinPlan).Execute()
		default:
			return common.QueryError{
				Code: common.UnsupportedJoinPredicateError,
				ErrString: fmt.Sprintf("join predicate operator %s is not supported",
					joinPlan.GetComparisonType()),
			}
		}
	}

	common.SH_Assert(false, fmt.Sprintf("unknown plan type %d", plan.GetType()))
	return nil
}
