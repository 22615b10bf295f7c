package plans

import (
	"github.com/ryogrid/SuzumeDB/execution/expression"
)

// JoinPlanNode describes a join predicate: left field, comparison operator,
// right field. Equal selects the hash join strategy, NotEqual the nested
// loop strategy; any other operator is rejected at dispatch.
type JoinPlanNode struct {
	leftColName    string
	rightColName   string
	comparisonType expression.ComparisonType
}

func NewJoinPlanNode(leftColName string, rightColName string, comparisonType expression.ComparisonType) *JoinPlanNode {
	return &JoinPlanNode{leftColName, rightColName, comparisonType}
}

func (p *JoinPlanNode) GetLeftColName() string {
	return p.leftColName
}

func (p *JoinPlanNode) GetRightColName() string {
	return p.rightColName
}

func (p *JoinPlanNode) GetComparisonType() expression.ComparisonType {
	return p.comparisonType
}

func (p *JoinPlanNode) GetType() PlanType {
	return Join
}
