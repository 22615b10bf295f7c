package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueCompareSameType(t *testing.T) {
	require.True(t, NewInteger(20).CompareEquals(NewInteger(20)))
	require.False(t, NewInteger(20).CompareEquals(NewInteger(22)))
	require.True(t, NewInteger(20).CompareNotEquals(NewInteger(22)))
	require.True(t, NewInteger(1).CompareLessThan(NewInteger(2)))
	require.True(t, NewInteger(2).CompareLessThanOrEqual(NewInteger(2)))
	require.True(t, NewInteger(9).CompareGreaterThan(NewInteger(5)))
	require.True(t, NewInteger(9).CompareGreaterThanOrEqual(NewInteger(9)))

	require.True(t, NewFloat(1.5).CompareLessThan(NewFloat(2.5)))
	require.True(t, NewVarchar("abc").CompareLessThan(NewVarchar("abd")))
	require.True(t, NewBoolean(true).CompareEquals(NewBoolean(true)))
}

func TestValueCompareAcrossTypes(t *testing.T) {
	// equality across types is false, not-equals is true, order is false
	require.False(t, NewInteger(1).CompareEquals(NewVarchar("1")))
	require.True(t, NewInteger(1).CompareNotEquals(NewVarchar("1")))
	require.False(t, NewInteger(1).CompareLessThan(NewFloat(2.0)))
	require.False(t, NewFloat(2.0).CompareGreaterThan(NewInteger(1)))
}

func TestValueNumericConversion(t *testing.T) {
	require.True(t, NewInteger(42).IsNumeric())
	require.True(t, NewFloat(4.2).IsNumeric())
	require.False(t, NewVarchar("42").IsNumeric())
	require.False(t, NewBoolean(true).IsNumeric())

	require.Equal(t, 42.0, NewInteger(42).ToDecimal())
	require.Equal(t, float64(float32(4.5)), NewFloat(4.5).ToDecimal())
}

func TestValueSerializeRoundTrip(t *testing.T) {
	for _, v := range []Value{
		NewInteger(-7),
		NewFloat(3.25),
		NewVarchar("foo"),
		NewBoolean(true),
	} {
		data := v.Serialize()
		require.Equal(t, int(v.Size()), len(data))
		decoded := NewValueFromBytes(data, v.ValueType())
		require.NotNil(t, decoded)
		require.True(t, v.CompareEquals(*decoded))
	}
}
