package hash

import (
	"testing"

	"github.com/ryogrid/SuzumeDB/types"
	"github.com/stretchr/testify/require"
)

func TestHashValueDeterministic(t *testing.T) {
	v1 := types.NewInteger(42)
	v2 := types.NewInteger(42)
	require.Equal(t, HashValue(&v1), HashValue(&v2))

	s1 := types.NewVarchar("grouped")
	s2 := types.NewVarchar("grouped")
	require.Equal(t, HashValue(&s1), HashValue(&s2))
}

func TestHashValueSeparatesTypes(t *testing.T) {
	// an integer and a varchar with identical payload bytes must not share
	// a bucket by construction
	i := types.NewInteger(0x616263)
	s := types.NewVarchar("abc")
	require.NotEqual(t, HashValue(&i), HashValue(&s))
}

func TestCombineHashes(t *testing.T) {
	require.Equal(t, CombineHashes(1, 2), CombineHashes(1, 2))
	require.NotEqual(t, CombineHashes(1, 2), CombineHashes(2, 1))
}
