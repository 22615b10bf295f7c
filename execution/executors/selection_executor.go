package executors

import (
	"github.com/ryogrid/SuzumeDB/execution/plans"
)

// SelectionExecutor appends to the output heap every input tuple satisfying
// all predicate clauses, preserving input order and tuple content. Clauses
// are evaluated left to right with short-circuit on the first failure.
type SelectionExecutor struct {
	context *ExecutorContext
	plan    *plans.SelectionPlanNode
}

func NewSelectionExecutor(context *ExecutorContext, plan *plans.SelectionPlanNode) Executor {
	return &SelectionExecutor{context, plan}
}

func (e *SelectionExecutor) Execute() error {
	in := e.context.GetInput()
	out := e.context.GetOutput()
	schema_ := in.Schema()

	for it := in.Iterator(); !it.End(); it.Next() {
		t := it.Current()

		matches := true
		for _, pred := range e.plan.GetPredicates() {
			matched, err := pred.Compare(t, schema_)
			if err != nil {
				return err
			}
			if !matched {
				matches = false
				break
			}
		}

		if matches {
			if err := out.InsertTuple(t); err != nil {
				return err
			}
		}
	}

	return nil
}
