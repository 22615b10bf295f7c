package plans

// ProjectionPlanNode names the fields to keep, in output order.
type ProjectionPlanNode struct {
	columnNames []string
}

func NewProjectionPlanNode(columnNames []string) *ProjectionPlanNode {
	return &ProjectionPlanNode{columnNames}
}

func (p *ProjectionPlanNode) GetColumnNames() []string {
	return p.columnNames
}

func (p *ProjectionPlanNode) GetType() PlanType {
	return Projection
}
