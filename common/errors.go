package common

import "fmt"

type QueryErrorCode int

const (
	// FieldNotFoundError indicates a field name lookup miss on a schema.
	FieldNotFoundError QueryErrorCode = iota
	// UnsupportedComparisonError indicates a predicate clause comparing
	// values of different types, or a comparison operator outside the
	// supported enumeration.
	UnsupportedComparisonError
	// UnsupportedOperatorError indicates an aggregate operator outside the
	// supported enumeration.
	UnsupportedOperatorError
	// UnsupportedJoinPredicateError indicates a join predicate operator
	// other than equals / not-equals.
	UnsupportedJoinPredicateError
	// NonNumericFieldError indicates an aggregate applied to a field whose
	// value is not numeric.
	NonNumericFieldError
	// SchemaMismatchError indicates an inserted tuple whose field count does
	// not match the table heap's schema.
	SchemaMismatchError
)

func (ec QueryErrorCode) String() string {
	switch ec {
	case FieldNotFoundError:
		return "FieldNotFoundError"
	case UnsupportedComparisonError:
		return "UnsupportedComparisonError"
	case UnsupportedOperatorError:
		return "UnsupportedOperatorError"
	case UnsupportedJoinPredicateError:
		return "UnsupportedJoinPredicateError"
	case NonNumericFieldError:
		return "NonNumericFieldError"
	case SchemaMismatchError:
		return "SchemaMismatchError"
	}
	return "unknown"
}

// QueryError is the error type shared by the relational operators. A failed
// operator call aborts immediately and the caller must treat the output
// table heap as unreliable; none of these errors is retryable.
type QueryError struct {
	Code      QueryErrorCode
	ErrString string
}

func (e QueryError) Error() string {
	return fmt.Sprintf("err: %s; msg: %s", e.Code.String(), e.ErrString)
}
