package v5

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parentsConversions[p][k] converts p Parent markers and k junctions.
var parentsConversions = [][]any{
	{LocationFromParents0X0, LocationFromParents0X1, LocationFromParents0X2, LocationFromParents0X3, LocationFromParents0X4, LocationFromParents0X5, LocationFromParents0X6, LocationFromParents0X7, LocationFromParents0X8},
	{LocationFromParents1X0, LocationFromParents1X1, LocationFromParents1X2, LocationFromParents1X3, LocationFromParents1X4, LocationFromParents1X5, LocationFromParents1X6, LocationFromParents1X7, LocationFromParents1X8},
	{LocationFromParents2X0, LocationFromParents2X1, LocationFromParents2X2, LocationFromParents2X3, LocationFromParents2X4, LocationFromParents2X5, LocationFromParents2X6, LocationFromParents2X7, LocationFromParents2X8},
	{LocationFromParents3X0, LocationFromParents3X1, LocationFromParents3X2, LocationFromParents3X3, LocationFromParents3X4, LocationFromParents3X5, LocationFromParents3X6, LocationFromParents3X7, LocationFromParents3X8},
	{LocationFromParents4X0, LocationFromParents4X1, LocationFromParents4X2, LocationFromParents4X3, LocationFromParents4X4, LocationFromParents4X5, LocationFromParents4X6, LocationFromParents4X7, LocationFromParents4X8},
	{LocationFromParents5X0, LocationFromParents5X1, LocationFromParents5X2, LocationFromParents5X3, LocationFromParents5X4, LocationFromParents5X5, LocationFromParents5X6, LocationFromParents5X7, LocationFromParents5X8},
	{LocationFromParents6X0, LocationFromParents6X1, LocationFromParents6X2, LocationFromParents6X3, LocationFromParents6X4, LocationFromParents6X5, LocationFromParents6X6, LocationFromParents6X7, LocationFromParents6X8},
	{LocationFromParents7X0, LocationFromParents7X1, LocationFromParents7X2, LocationFromParents7X3, LocationFromParents7X4, LocationFromParents7X5, LocationFromParents7X6, LocationFromParents7X7, LocationFromParents7X8},
	{LocationFromParents8X0, LocationFromParents8X1, LocationFromParents8X2, LocationFromParents8X3, LocationFromParents8X4, LocationFromParents8X5, LocationFromParents8X6, LocationFromParents8X7, LocationFromParents8X8},
}

// ancestorConversions[k] converts an Ancestor and k junctions.
var ancestorConversions = []any{
	LocationFromAncestorX0, LocationFromAncestorX1, LocationFromAncestorX2, LocationFromAncestorX3, LocationFromAncestorX4, LocationFromAncestorX5, LocationFromAncestorX6, LocationFromAncestorX7, LocationFromAncestorX8,
}

// parentsJunctionsConversions[p] converts p Parent markers and a Junctions.
var parentsJunctionsConversions = []any{
	LocationFromParents0Junctions, LocationFromParents1Junctions, LocationFromParents2Junctions, LocationFromParents3Junctions, LocationFromParents4Junctions, LocationFromParents5Junctions, LocationFromParents6Junctions, LocationFromParents7Junctions, LocationFromParents8Junctions,
}

// junctionsConversions[k-1] converts a tuple of k junctions.
var junctionsConversions = []any{
	JunctionsFrom1, JunctionsFrom2, JunctionsFrom3, JunctionsFrom4, JunctionsFrom5, JunctionsFrom6, JunctionsFrom7, JunctionsFrom8,
}

// sample holds eight distinct junctions of different variants.
var sample = []Junction{
	Parachain(1000),
	PalletInstance(50),
	GeneralIndex(1984),
	AccountId32{Network: Polkadot{}, ID: [32]byte{1, 2, 3}},
	AccountIndex64{Index: 7},
	AccountKey20{Network: Ethereum{ChainID: 1}, Key: [20]byte{0xaa}},
	GeneralKey{Length: 2, Data: [32]byte{0xbe, 0xef}},
	OnlyChild{},
}

// call invokes a generated conversion with the given arguments.
func call(fn any, args ...any) reflect.Value {
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		in[i] = reflect.ValueOf(a)
	}

	return reflect.ValueOf(fn).Call(in)[0]
}

func callLocation(fn any, args ...any) Location {
	return call(fn, args...).Interface().(Location)
}

func junctionArgs(k int) []any {
	args := make([]any, k)
	for i := range k {
		args[i] = sample[i]
	}

	return args
}

func parentArgs(p int) []any {
	args := make([]any, p)
	for i := range p {
		args[i] = Parent{}
	}

	return args
}

// requireInterior checks the variant and the order of the interior.
func requireInterior(t *testing.T, interior Junctions, k int) {
	t.Helper()

	require.NotNil(t, interior)

	wantVariant := "Here"
	if k > 0 {
		wantVariant = fmt.Sprintf("X%d", k)
	}

	assert.Equal(t, wantVariant, reflect.TypeOf(interior).Name())
	require.Equal(t, k, interior.Len())

	for i := range k {
		assert.Equal(t, sample[i], interior.At(i), "junction %d", i)
	}
}

func TestLocationFromArray_AllArities(t *testing.T) {
	t.Parallel()

	arrays := []any{
		LocationFromArray0, LocationFromArray1, LocationFromArray2, LocationFromArray3, LocationFromArray4,
		LocationFromArray5, LocationFromArray6, LocationFromArray7, LocationFromArray8,
	}

	for k, fn := range arrays {
		arr := reflect.New(reflect.ArrayOf(k, reflect.TypeFor[Junction]())).Elem()
		for i := range k {
			arr.Index(i).Set(reflect.ValueOf(sample[i]))
		}

		loc := callLocation(fn, arr.Interface())

		assert.Zero(t, loc.Parents, "k=%d", k)
		requireInterior(t, loc.Interior, k)
	}
}

func TestLocationFromParents_AllArities(t *testing.T) {
	t.Parallel()

	require.Len(t, parentsConversions, 9)

	for p, row := range parentsConversions {
		require.Len(t, row, 9)

		for k, fn := range row {
			loc := callLocation(fn, append(parentArgs(p), junctionArgs(k)...)...)

			assert.Equal(t, uint8(p), loc.Parents, "p=%d k=%d", p, k)
			requireInterior(t, loc.Interior, k)
		}
	}
}

func TestLocationFromAncestor_MatchesParents(t *testing.T) {
	t.Parallel()

	for p, row := range parentsConversions {
		for k, fn := range row {
			byAncestor := callLocation(ancestorConversions[k], append([]any{Ancestor(p)}, junctionArgs(k)...)...)
			byParents := callLocation(fn, append(parentArgs(p), junctionArgs(k)...)...)

			assert.True(t, byAncestor.Equal(byParents), "p=%d k=%d: %v != %v", p, k, byAncestor, byParents)
			assert.Equal(t, byParents, byAncestor)
		}
	}
}

func TestLocationFromAncestor_FullParentRange(t *testing.T) {
	t.Parallel()

	loc := LocationFromAncestorX1(Ancestor(255), OnlyChild{})
	assert.Equal(t, uint8(255), loc.ParentCount())
	assert.Equal(t, 1, loc.Len())
}

func TestLocationFromParentsJunctions(t *testing.T) {
	t.Parallel()

	interior := NewX2([2]Junction{sample[0], sample[1]})

	for p, fn := range parentsJunctionsConversions {
		loc := callLocation(fn, append(parentArgs(p), Junctions(interior))...)

		assert.Equal(t, uint8(p), loc.Parents)
		requireInterior(t, loc.Interior, 2)
	}

	loc := LocationFromAncestorJunctions(Ancestor(4), interior)
	assert.Equal(t, uint8(4), loc.Parents)
	requireInterior(t, loc.Interior, 2)
	assert.Equal(t, LocationFromParents4Junctions(Parent{}, Parent{}, Parent{}, Parent{}, interior), loc)
}

func TestLocationFromJunction(t *testing.T) {
	t.Parallel()

	loc := LocationFromJunction(sample[0])

	assert.Zero(t, loc.Parents)
	requireInterior(t, loc.Interior, 1)
	assert.Equal(t, LocationFromArray1([1]Junction{sample[0]}), loc)
}

func TestJunctionsFrom_AllArities(t *testing.T) {
	t.Parallel()

	require.Len(t, junctionsConversions, 8)

	for i, fn := range junctionsConversions {
		k := i + 1
		got := call(fn, junctionArgs(k)...).Interface().(Junctions)

		requireInterior(t, got, k)

		want, err := NewJunctions(sample[:k]...)
		require.NoError(t, err)
		assert.True(t, JunctionsEqual(want, got))
	}
}

func TestConversions_IntoJunction(t *testing.T) {
	t.Parallel()

	loc := LocationFromParents1X2(Parent{}, Kusama{}, Parachain(2000))

	assert.Equal(t, uint8(1), loc.Parents)
	assert.Equal(t, GlobalConsensus{Network: Kusama{}}, loc.Interior.At(0))
	assert.Equal(t, Parachain(2000), loc.Interior.At(1))

	j := JunctionsFrom1(WestendGenesisHash)
	assert.Equal(t, GlobalConsensus{Network: WestendGenesisHash}, j.At(0))
}

func TestScenario_ArrayOfTwo(t *testing.T) {
	t.Parallel()

	a, b := PalletInstance(50), GeneralIndex(1984)
	loc := LocationFromArray2([2]Junction{a, b})

	want := Location{Parents: 0, Interior: NewX2([2]Junction{a, b})}
	assert.Equal(t, want, loc)
	assert.True(t, want.Equal(loc))
	assert.IsType(t, X2{}, loc.Interior)
}

func TestScenario_AncestorThree(t *testing.T) {
	t.Parallel()

	x := Polkadot{}
	loc := LocationFromAncestorX1(Ancestor(3), x)

	want := Location{Parents: 3, Interior: NewX1([1]Junction{x.IntoJunction()})}
	assert.Equal(t, want, loc)
	assert.Equal(t, "Location{Parents: 3, Interior: X1(GlobalConsensus(Polkadot))}", loc.String())
}
