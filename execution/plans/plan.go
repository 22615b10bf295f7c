package plans

type PlanType int32

const (
	Projection PlanType = iota
	Selection
	Aggregation
	Join
)

// Plan is a descriptor of one relational operator invocation. Plans carry
// no child plans: every operator here reads fully materialized table heaps
// and appends to one, with no operator-to-operator pipelining.
type Plan interface {
	GetType() PlanType
}
