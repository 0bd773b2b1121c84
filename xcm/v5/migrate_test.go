package v5

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v4 "xcm-generator/xcm/v4"
)

func oldJunctions(t *testing.T, js ...v4.Junction) v4.Junctions {
	t.Helper()

	switch len(js) {
	case 0:
		return v4.Here{}
	case 1:
		return v4.NewX1([1]v4.Junction(js))
	case 2:
		return v4.NewX2([2]v4.Junction(js))
	case 3:
		return v4.NewX3([3]v4.Junction(js))
	case 4:
		return v4.NewX4([4]v4.Junction(js))
	case 5:
		return v4.NewX5([5]v4.Junction(js))
	case 6:
		return v4.NewX6([6]v4.Junction(js))
	case 7:
		return v4.NewX7([7]v4.Junction(js))
	case 8:
		return v4.NewX8([8]v4.Junction(js))
	}

	t.Fatalf("no v4 variant holds %d junctions", len(js))

	return nil
}

func oldParachains(n int) []v4.Junction {
	res := make([]v4.Junction, n)
	for i := range res {
		res[i] = v4.Parachain(100 + i)
	}

	return res
}

var tooLongKey = v4.GeneralKey{Length: 40}

func TestJunctionsFromV4_Here(t *testing.T) {
	t.Parallel()

	got, err := JunctionsFromV4(v4.Here{})
	require.NoError(t, err)
	assert.Equal(t, Here{}, got)

	got, err = JunctionsFromV4(nil)
	require.NoError(t, err)
	assert.Equal(t, Here{}, got)
}

func TestJunctionsFromV4_PreservesOrder(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 8; n++ {
		got, err := JunctionsFromV4(oldJunctions(t, oldParachains(n)...))
		require.NoError(t, err, "n=%d", n)
		require.Equal(t, n, got.Len())

		for i := range n {
			assert.Equal(t, Parachain(100+i), got.At(i), "n=%d i=%d", n, i)
		}
	}
}

func TestJunctionsFromV4_FailsAtEveryPosition(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 8; n++ {
		for bad := range n {
			js := oldParachains(n)
			js[bad] = tooLongKey

			got, err := JunctionsFromV4(oldJunctions(t, js...))
			require.Error(t, err, "n=%d bad=%d", n, bad)
			assert.Nil(t, got, "no partial value for n=%d bad=%d", n, bad)

			assert.ErrorIs(t, err, ErrMigration)
			assert.ErrorIs(t, err, ErrGeneralKeyLength)

			var merr *MigrationError
			require.ErrorAs(t, err, &merr)
			assert.Equal(t, bad, merr.Index)
		}
	}
}

func TestJunctionsFromV4_ReportsFirstFailure(t *testing.T) {
	t.Parallel()

	old := oldJunctions(t, v4.Parachain(1), v4.GlobalConsensus{Network: v4.Wococo{}}, tooLongKey)

	_, err := JunctionsFromV4(old)

	var merr *MigrationError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, 1, merr.Index)
	assert.ErrorIs(t, err, ErrRetiredNetwork)
	assert.NotErrorIs(t, err, ErrGeneralKeyLength)
	assert.Equal(t, "v5: junctions migration failed: junction 1: v5: network retired: Wococo", err.Error())
}

func TestJunctionsFromV4_MissingNetwork(t *testing.T) {
	t.Parallel()

	_, err := JunctionsFromV4(oldJunctions(t, v4.Parachain(1), v4.GlobalConsensus{}))

	var merr *MigrationError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, 1, merr.Index)
	assert.ErrorIs(t, err, ErrMissingNetwork)
	assert.ErrorIs(t, err, ErrMigration)
}

func TestJunctionsFromV4_ParachainAndAccount(t *testing.T) {
	t.Parallel()

	id := [32]byte{0x01, 0x02}
	old := oldJunctions(t, v4.Parachain(1000), v4.AccountId32{ID: id})

	got, err := JunctionsFromV4(old)
	require.NoError(t, err)

	want := NewX2([2]Junction{Parachain(1000), AccountId32{ID: id}})
	assert.True(t, JunctionsEqual(want, got), "%v != %v", want, got)
	assert.IsType(t, X2{}, got)
}

func TestJunctionFromV4_Mapping(t *testing.T) {
	t.Parallel()

	var key [32]byte
	copy(key[:], "abc")

	tests := []struct {
		name string
		old  v4.Junction
		want Junction
	}{
		{"parachain", v4.Parachain(2000), Parachain(2000)},
		{"pallet", v4.PalletInstance(50), PalletInstance(50)},
		{"index", v4.GeneralIndex(1984), GeneralIndex(1984)},
		{"only child", v4.OnlyChild{}, OnlyChild{}},
		{"key", v4.GeneralKey{Length: 3, Data: key}, GeneralKey{Length: 3, Data: key}},
		{"full key", v4.GeneralKey{Length: 32}, GeneralKey{Length: 32}},
		{"account index", v4.AccountIndex64{Network: v4.Kusama{}, Index: 9}, AccountIndex64{Network: Kusama{}, Index: 9}},
		{
			"account key",
			v4.AccountKey20{Network: v4.Ethereum{ChainID: 1}, Key: [20]byte{0xaa}},
			AccountKey20{Network: Ethereum{ChainID: 1}, Key: [20]byte{0xaa}},
		},
		{"westend", v4.GlobalConsensus{Network: v4.Westend{}}, GlobalConsensus{Network: WestendGenesisHash}},
		{"rococo", v4.AccountId32{Network: v4.Rococo{}}, AccountId32{Network: RococoGenesisHash}},
		{"by genesis", v4.GlobalConsensus{Network: v4.ByGenesis{0x01}}, GlobalConsensus{Network: ByGenesis{0x01}}},
		{
			"by fork",
			v4.GlobalConsensus{Network: v4.ByFork{BlockNumber: 3, BlockHash: [32]byte{0x02}}},
			GlobalConsensus{Network: ByFork{BlockNumber: 3, BlockHash: [32]byte{0x02}}},
		},
		{"bulletin", v4.GlobalConsensus{Network: v4.PolkadotBulletin{}}, GlobalConsensus{Network: PolkadotBulletin{}}},
		{"bitcoin", v4.GlobalConsensus{Network: v4.BitcoinCore{}}, GlobalConsensus{Network: BitcoinCore{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := JunctionFromV4(tt.old)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJunctionFromV4_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		old  v4.Junction
		want error
	}{
		{"long key", tooLongKey, ErrGeneralKeyLength},
		{"wococo consensus", v4.GlobalConsensus{Network: v4.Wococo{}}, ErrRetiredNetwork},
		{"wococo account", v4.AccountKey20{Network: v4.Wococo{}}, ErrRetiredNetwork},
		{"nil", nil, ErrNilJunction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := JunctionFromV4(tt.old)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, got)
		})
	}

	got, err := JunctionFromV4(v4.GlobalConsensus{})
	require.ErrorIs(t, err, ErrMissingNetwork)
	assert.Nil(t, got)
}

func TestJunctionsFromV4_ZeroVariant(t *testing.T) {
	t.Parallel()

	zeros := []v4.Junctions{
		v4.X1{}, v4.X2{}, v4.X3{}, v4.X4{}, v4.X5{}, v4.X6{}, v4.X7{}, v4.X8{},
	}

	for _, old := range zeros {
		var (
			got Junctions
			err error
		)

		require.NotPanics(t, func() { got, err = JunctionsFromV4(old) }, "%T", old)
		assert.Nil(t, got, "%T", old)
		assert.ErrorIs(t, err, ErrMigration)
		assert.ErrorIs(t, err, ErrZeroJunctions)

		var merr *MigrationError
		require.ErrorAs(t, err, &merr)
		assert.Equal(t, -1, merr.Index)
	}

	_, err := LocationFromV4(v4.Location{Parents: 1, Interior: v4.X2{}})
	require.ErrorIs(t, err, ErrZeroJunctions)
}

func TestLocationFromV4(t *testing.T) {
	t.Parallel()

	loc, err := LocationFromV4(v4.Location{
		Parents:  1,
		Interior: oldJunctions(t, v4.Parachain(1000), v4.PalletInstance(50)),
	})
	require.NoError(t, err)
	assert.Equal(t, LocationFromParents1X2(Parent{}, Parachain(1000), PalletInstance(50)), loc)

	loc, err = LocationFromV4(v4.Location{Parents: 2})
	require.NoError(t, err)
	assert.True(t, loc.Equal(Location{Parents: 2, Interior: Here{}}))

	loc, err = LocationFromV4(v4.Location{Interior: oldJunctions(t, tooLongKey)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMigration))
	assert.Equal(t, Location{}, loc)
}
