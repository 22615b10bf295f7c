package types

import (
	"bytes"
	"encoding/binary"
	"strconv"
)

// A Value is a view over a single typed scalar stored in a tuple. All values
// have a type, comparison functions, and type-specific accessors. Comparing
// values of different types is defined: equality is false, not-equals is
// true, and ordered comparisons are false.
type Value struct {
	valueType TypeID
	integer   *int32
	boolean   *bool
	varchar   *string
	float     *float32
}

func NewInteger(value int32) Value {
	return Value{Integer, &value, nil, nil, nil}
}

func NewFloat(value float32) Value {
	return Value{Float, nil, nil, nil, &value}
}

func NewBoolean(value bool) Value {
	return Value{Boolean, nil, &value, nil, nil}
}

func NewVarchar(value string) Value {
	return Value{Varchar, nil, nil, &value, nil}
}

// NewValueFromBytes deserializes a value of the given type from the prefix
// of data. The number of bytes consumed is Size() of the returned value.
func NewValueFromBytes(data []byte, valueType TypeID) *Value {
	switch valueType {
	case Integer:
		v := new(int32)
		binary.Read(bytes.NewBuffer(data), binary.LittleEndian, v)
		vInteger := NewInteger(*v)
		return &vInteger
	case Float:
		v := new(float32)
		binary.Read(bytes.NewBuffer(data), binary.LittleEndian, v)
		vFloat := NewFloat(*v)
		return &vFloat
	case Varchar:
		length := new(uint16)
		binary.Read(bytes.NewBuffer(data), binary.LittleEndian, length)
		varchar := NewVarchar(string(data[2 : uint32(*length)+2]))
		return &varchar
	case Boolean:
		v := new(bool)
		binary.Read(bytes.NewBuffer(data), binary.LittleEndian, v)
		vBoolean := NewBoolean(*v)
		return &vBoolean
	}
	return nil
}

func (v Value) CompareEquals(right Value) bool {
	if v.valueType != right.valueType {
		return false
	}

	switch v.valueType {
	case Integer:
		return *v.integer == *right.integer
	case Float:
		return *v.float == *right.float
	case Varchar:
		return *v.varchar == *right.varchar
	case Boolean:
		return *v.boolean == *right.boolean
	}
	return false
}

func (v Value) CompareNotEquals(right Value) bool {
	if v.valueType != right.valueType {
		return true
	}

	switch v.valueType {
	case Integer:
		return *v.integer != *right.integer
	case Float:
		return *v.float != *right.float
	case Varchar:
		return *v.varchar != *right.varchar
	case Boolean:
		return *v.boolean != *right.boolean
	}
	return false
}

func (v Value) CompareGreaterThan(right Value) bool {
	if v.valueType != right.valueType {
		return false
	}

	switch v.valueType {
	case Integer:
		return *v.integer > *right.integer
	case Float:
		return *v.float > *right.float
	case Varchar:
		return *v.varchar > *right.varchar
	case Boolean:
		return false
	}
	return false
}

func (v Value) CompareGreaterThanOrEqual(right Value) bool {
	if v.valueType != right.valueType {
		return false
	}

	switch v.valueType {
	case Integer:
		return *v.integer >= *right.integer
	case Float:
		return *v.float >= *right.float
	case Varchar:
		return *v.varchar >= *right.varchar
	case Boolean:
		return *v.boolean == *right.boolean
	}
	return false
}

func (v Value) CompareLessThan(right Value) bool {
	if v.valueType != right.valueType {
		return false
	}

	switch v.valueType {
	case Integer:
		return *v.integer < *right.integer
	case Float:
		return *v.float < *right.float
	case Varchar:
		return *v.varchar < *right.varchar
	case Boolean:
		return false
	}
	return false
}

func (v Value) CompareLessThanOrEqual(right Value) bool {
	if v.valueType != right.valueType {
		return false
	}

	switch v.valueType {
	case Integer:
		return *v.integer <= *right.integer
	case Float:
		return *v.float <= *right.float
	case Varchar:
		return *v.varchar <= *right.varchar
	case Boolean:
		return *v.boolean == *right.boolean
	}
	return false
}

// IsNumeric reports whether the value participates in aggregate arithmetic.
func (v Value) IsNumeric() bool {
	return v.valueType == Integer || v.valueType == Float
}

// ToDecimal widens a numeric value to float64 for aggregate arithmetic.
// The caller must check IsNumeric beforehand.
func (v Value) ToDecimal() float64 {
	switch v.valueType {
	case Integer:
		return float64(*v.integer)
	case Float:
		return float64(*v.float)
	}
	panic("ToDecimal is implemented to Integer and Float only.")
}

func (v Value) Serialize() []byte {
	switch v.valueType {
	case Integer:
		buf := new(bytes.Buffer)
		binary.Write(buf, binary.LittleEndian, v.ToInteger())
		return buf.Bytes()
	case Float:
		buf := new(bytes.Buffer)
		binary.Write(buf, binary.LittleEndian, v.ToFloat())
		return buf.Bytes()
	case Varchar:
		buf := new(bytes.Buffer)
		binary.Write(buf, binary.LittleEndian, uint16(len(v.ToVarchar())))
		lengthInBytes := buf.Bytes()
		return append(lengthInBytes, []byte(v.ToVarchar())...)
	case Boolean:
		buf := new(bytes.Buffer)
		binary.Write(buf, binary.LittleEndian, v.ToBoolean())
		return buf.Bytes()
	}
	return []byte{}
}

// Size returns the size in bytes that the value occupies inside a
// serialized tuple.
func (v Value) Size() uint32 {
	switch v.valueType {
	case Integer:
		return v.valueType.Size()
	case Float:
		return v.valueType.Size()
	case Varchar:
		// varchar occupies the size of the string + 2 bytes for length storage
		return uint32(len(*v.varchar)) + 2
	case Boolean:
		return v.valueType.Size()
	}
	panic("not implemented")
}

func (v Value) ToBoolean() bool {
	return *v.boolean
}

func (v Value) ToInteger() int32 {
	return *v.integer
}

func (v Value) ToFloat() float32 {
	return *v.float
}

func (v Value) ToVarchar() string {
	return *v.varchar
}

func (v Value) ValueType() TypeID {
	return v.valueType
}

func (v Value) String() string {
	switch v.valueType {
	case Integer:
		return strconv.FormatInt(int64(*v.integer), 10)
	case Float:
		return strconv.FormatFloat(float64(*v.float), 'g', -1, 32)
	case Varchar:
		return *v.varchar
	case Boolean:
		return strconv.FormatBool(*v.boolean)
	}
	return "invalid"
}
