package plans

import (
	"github.com/ryogrid/SuzumeDB/execution/expression"
)

// SelectionPlanNode carries the WHERE clauses as a conjunction: a tuple is
// kept only when every clause matches, evaluated left to right with
// short-circuit on the first failure. An empty clause list keeps all tuples.
type SelectionPlanNode struct {
	predicates []*expression.Comparison
}

func NewSelectionPlanNode(predicates []*expression.Comparison) *SelectionPlanNode {
	return &SelectionPlanNode{predicates}
}

func (p *SelectionPlanNode) GetPredicates() []*expression.Comparison {
	return p.predicates
}

func (p *SelectionPlanNode) GetType() PlanType {
	return Selection
}
