package v5

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJunctions(t *testing.T) {
	t.Parallel()

	j, err := NewJunctions()
	require.NoError(t, err)
	assert.Equal(t, Here{}, j)

	j, err = NewJunctions(Parachain(1), Parachain(2), Parachain(3))
	require.NoError(t, err)
	assert.IsType(t, X3{}, j)
	assert.Equal(t, []Junction{Parachain(1), Parachain(2), Parachain(3)}, j.Slice())

	nine := make([]Junction, 9)
	for i := range nine {
		nine[i] = OnlyChild{}
	}

	_, err = NewJunctions(nine...)
	require.ErrorIs(t, err, ErrTooManyJunctions)
}

func TestJunctions_SharedPayload(t *testing.T) {
	t.Parallel()

	src := [2]Junction{Parachain(1), Parachain(2)}
	x := NewX2(src)
	y := x

	assert.Same(t, x.arc, y.arc)

	// The constructor copies its argument.
	src[0] = OnlyChild{}
	assert.Equal(t, Parachain(1), x.At(0))

	// Slice and Array hand out copies.
	s := x.Slice()
	s[1] = OnlyChild{}
	a := x.Array()
	a[1] = OnlyChild{}
	assert.Equal(t, Parachain(2), y.At(1))
}

func TestJunctionsEqual(t *testing.T) {
	t.Parallel()

	a := NewX2([2]Junction{Parachain(1), PalletInstance(2)})
	b := NewX2([2]Junction{Parachain(1), PalletInstance(2)})
	c := NewX2([2]Junction{PalletInstance(2), Parachain(1)})

	assert.True(t, JunctionsEqual(a, b))
	assert.False(t, JunctionsEqual(a, c))
	assert.False(t, JunctionsEqual(a, NewX1([1]Junction{Parachain(1)})))
	assert.True(t, JunctionsEqual(nil, Here{}))
	assert.Zero(t, JunctionsLen(nil))
}

func TestHere_At(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { Here{}.At(0) })
	assert.Nil(t, Here{}.Slice())
}

func TestLocation_Accessors(t *testing.T) {
	t.Parallel()

	var zero Location
	assert.True(t, zero.IsHere())
	assert.Equal(t, Here{}, zero.Junctions())
	assert.True(t, zero.Equal(NewLocation(0, Here{})))
	assert.Equal(t, "Location{Parents: 0, Interior: Here}", zero.String())

	loc := NewLocation(1, NewX2([2]Junction{Parachain(1000), AccountIndex64{Network: Kusama{}, Index: 9}}))
	assert.False(t, loc.IsHere())
	assert.Equal(t, uint8(1), loc.ParentCount())
	assert.Equal(t, 2, loc.Len())
	assert.False(t, loc.Equal(NewLocation(2, loc.Interior)))
	assert.Equal(t, "Location{Parents: 1, Interior: X2(Parachain(1000), AccountIndex64(Kusama, 9))}", loc.String())
}

func TestJunction_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		j    Junction
		want string
	}{
		{Parachain(7), "Parachain(7)"},
		{PalletInstance(50), "PalletInstance(50)"},
		{GeneralIndex(1984), "GeneralIndex(1984)"},
		{OnlyChild{}, "OnlyChild"},
		{GeneralKey{Length: 2, Data: [32]byte{0xbe, 0xef, 0x01}}, "GeneralKey(beef)"},
		{AccountKey20{Key: [20]byte{0xaa}}, "AccountKey20(aa00000000000000000000000000000000000000)"},
		{GlobalConsensus{Network: Ethereum{ChainID: 1}}, "GlobalConsensus(Ethereum(1))"},
		{GlobalConsensus{Network: ByFork{BlockNumber: 5}}, "GlobalConsensus(ByFork(5, " +
			"0000000000000000000000000000000000000000000000000000000000000000))"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.j.String())
	}
}
