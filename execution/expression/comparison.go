package expression

import (
	"fmt"

	"github.com/ryogrid/SuzumeDB/common"
	"github.com/ryogrid/SuzumeDB/storage/table/schema"
	"github.com/ryogrid/SuzumeDB/storage/tuple"
	"github.com/ryogrid/SuzumeDB/types"
)

type ComparisonType int

/** ComparisonType represents the type of comparison that we want to perform. */
const (
	Equal ComparisonType = iota
	NotEqual
	LessThan
	LessThanOrEqual
	GreaterThan
	GreaterThanOrEqual
)

func (ct ComparisonType) String() string {
	switch ct {
	case Equal:
		return "="
	case NotEqual:
		return "!="
	case LessThan:
		return "<"
	case LessThanOrEqual:
		return "<="
	case GreaterThan:
		return ">"
	case GreaterThanOrEqual:
		return ">="
	}
	return fmt.Sprintf("op(%d)", int(ct))
}

/**
 * Comparison represents two expressions being compared.
 */
type Comparison struct {
	comparisonType ComparisonType
	leftSide       Expression
	rightSide      Expression
}

func NewComparison(left Expression, right Expression, comparisonType ComparisonType) *Comparison {
	return &Comparison{comparisonType, left, right}
}

// Compare evaluates both sides against the tuple and applies the comparison
// operator. Comparing values of different types, or using an operator
// outside the supported enumeration, is an UnsupportedComparisonError.
func (c *Comparison) Compare(tuple_ *tuple.Tuple, schema_ *schema.Schema) (bool, error) {
	lhs, err := c.leftSide.Evaluate(tuple_, schema_)
	if err != nil {
		return false, err
	}
	rhs, err := c.rightSide.Evaluate(tuple_, schema_)
	if err != nil {
		return false, err
	}

	if lhs.ValueType() != rhs.ValueType() {
		return false, common.QueryError{
			Code: common.UnsupportedComparisonError,
			ErrString: fmt.Sprintf("field %s: cannot compare %s against %s",
				c.describeLeft(), lhs.ValueType(), rhs.ValueType()),
		}
	}

	switch c.comparisonType {
	case Equal:
		return lhs.CompareEquals(rhs), nil
	case NotEqual:
		return lhs.CompareNotEquals(rhs), nil
	case LessThan:
		return lhs.CompareLessThan(rhs), nil
	case LessThanOrEqual:
		return lhs.CompareLessThanOrEqual(rhs), nil
	case GreaterThan:
		return lhs.CompareGreaterThan(rhs), nil
	case GreaterThanOrEqual:
		return lhs.CompareGreaterThanOrEqual(rhs), nil
	}

	return false, common.QueryError{
		Code: common.UnsupportedComparisonError,
		ErrString: fmt.Sprintf("field %s: comparison operator %s is not supported",
			c.describeLeft(), c.comparisonType),
	}
}

func (c *Comparison) Evaluate(tuple_ *tuple.Tuple, schema_ *schema.Schema) (types.Value, error) {
	matched, err := c.Compare(tuple_, schema_)
	if err != nil {
		return types.Value{}, err
	}
	return types.NewBoolean(matched), nil
}

func (c *Comparison) GetComparisonType() ComparisonType {
	return c.comparisonType
}

func (c *Comparison) describeLeft() string {
	if colVal, ok := c.leftSide.(*ColumnValue); ok {
		return colVal.GetColName()
	}
	return "expression"
}
