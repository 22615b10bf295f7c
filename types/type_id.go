package types

type TypeID int

const (
	Invalid TypeID = iota
	Boolean
	Integer
	Float
	Varchar
)

// Size returns the serialized size in bytes of a fixed-length type.
func (t TypeID) Size() uint32 {
	switch t {
	case Boolean:
		return 1
	case Integer:
		return 4
	case Float:
		return 4
	}
	panic("not a fixed-length type")
}

func (t TypeID) String() string {
	switch t {
	case Boolean:
		return "boolean"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Varchar:
		return "varchar"
	}
	return "invalid"
}
