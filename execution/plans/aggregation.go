package plans

import "fmt"

/** AggregationType enumerates all the possible aggregation functions in our system. */
type AggregationType int32

const (
	COUNT_AGGREGATE AggregationType = iota
	SUM_AGGREGATE
	AVG_AGGREGATE
	MIN_AGGREGATE
	MAX_AGGREGATE
)

func (at AggregationType) String() string {
	switch at {
	case COUNT_AGGREGATE:
		return "COUNT"
	case SUM_AGGREGATE:
		return "SUM"
	case AVG_AGGREGATE:
		return "AVG"
	case MIN_AGGREGATE:
		return "MIN"
	case MAX_AGGREGATE:
		return "MAX"
	}
	return fmt.Sprintf("aggregate(%d)", int32(at))
}

// AggregationPlanNode describes one aggregation: the aggregated field, the
// operator, and an optional group-by field.
type AggregationPlanNode struct {
	colName    string
	aggType    AggregationType
	groupByCol *string
}

func NewAggregationPlanNode(colName string, aggType AggregationType) *AggregationPlanNode {
	return &AggregationPlanNode{colName, aggType, nil}
}

func NewGroupedAggregationPlanNode(colName string, aggType AggregationType, groupByCol string) *AggregationPlanNode {
	return &AggregationPlanNode{colName, aggType, &groupByCol}
}

func (p *AggregationPlanNode) GetColName() string {
	return p.colName
}

func (p *AggregationPlanNode) GetAggregationType() AggregationType {
	return p.aggType
}

func (p *AggregationPlanNode) HasGroupBy() bool {
	return p.groupByCol != nil
}

func (p *AggregationPlanNode) GetGroupByCol() string {
	return *p.groupByCol
}

func (p *AggregationPlanNode) GetType() PlanType {
	return Aggregation
}
