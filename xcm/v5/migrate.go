package v5

import (
	"errors"
	"fmt"

	v4 "xcm-generator/xcm/v4"
)

var (
	// ErrMigration is matched by every failed v4 junctions migration.
	ErrMigration = errors.New("v5: junctions migration failed")
	// ErrRetiredNetwork is returned for v4 networks with no v5 counterpart.
	ErrRetiredNetwork = errors.New("v5: network retired")
	// ErrGeneralKeyLength is returned for general keys longer than 32 bytes.
	ErrGeneralKeyLength = errors.New("v5: general key too long")
	// ErrNilJunction is returned when a v4 path holds a nil junction.
	ErrNilJunction = errors.New("v5: nil junction")
	// ErrTooManyJunctions is returned when no Junctions variant fits.
	ErrTooManyJunctions = errors.New("v5: too many junctions")
	// ErrMissingNetwork is returned for a global consensus junction without
	// a network.
	ErrMissingNetwork = errors.New("v5: global consensus without network")
	// ErrUnknownVariant is returned for v4 values of no known variant.
	ErrUnknownVariant = errors.New("v5: unknown v4 variant")
	// ErrZeroJunctions is returned for an X1..X8 value not built by its
	// constructor.
	ErrZeroJunctions = errors.New("v5: uninitialized v4 junctions")
)

// MigrationError reports which junction stopped a migration. It matches
// both ErrMigration and the junction's own error.
type MigrationError struct {
	// Index of the failed junction, -1 when the path itself is invalid.
	Index int
	Err   error
}

func (e *MigrationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s", ErrMigration, e.Err)
	}

	return fmt.Sprintf("%s: junction %d: %s", ErrMigration, e.Index, e.Err)
}

func (e *MigrationError) Unwrap() []error {
	return []error{ErrMigration, e.Err}
}

func unknownJunctions(old v4.Junctions) error {
	return &MigrationError{Index: -1, Err: fmt.Errorf("%w: junctions %T", ErrUnknownVariant, old)}
}

func zeroJunctions(old v4.Junctions) error {
	return &MigrationError{Index: -1, Err: fmt.Errorf("%w: zero %T", ErrZeroJunctions, old)}
}

// JunctionFromV4 converts a single v4 junction.
func JunctionFromV4(old v4.Junction) (Junction, error) {
	switch j := old.(type) {
	case v4.Parachain:
		return Parachain(j), nil
	case v4.AccountId32:
		network, err := networkFromV4(j.Network)
		if err != nil {
			return nil, err
		}

		return AccountId32{Network: network, ID: j.ID}, nil
	case v4.AccountIndex64:
		network, err := networkFromV4(j.Network)
		if err != nil {
			return nil, err
		}

		return AccountIndex64{Network: network, Index: j.Index}, nil
	case v4.AccountKey20:
		network, err := networkFromV4(j.Network)
		if err != nil {
			return nil, err
		}

		return AccountKey20{Network: network, Key: j.Key}, nil
	case v4.PalletInstance:
		return PalletInstance(j), nil
	case v4.GeneralIndex:
		return GeneralIndex(j), nil
	case v4.GeneralKey:
		if j.Length > MaxGeneralKeyLength {
			return nil, fmt.Errorf("%w: %d bytes", ErrGeneralKeyLength, j.Length)
		}

		return GeneralKey{Length: j.Length, Data: j.Data}, nil
	case v4.OnlyChild:
		return OnlyChild{}, nil
	case v4.GlobalConsensus:
		if j.Network == nil {
			return nil, ErrMissingNetwork
		}

		network, err := networkFromV4(j.Network)
		if err != nil {
			return nil, err
		}

		return GlobalConsensus{Network: network}, nil
	case nil:
		return nil, ErrNilJunction
	default:
		return nil, fmt.Errorf("%w: junction %T", ErrUnknownVariant, old)
	}
}

// networkFromV4 converts an optional v4 network; nil stays nil.
func networkFromV4(old v4.NetworkId) (NetworkId, error) {
	switch n := old.(type) {
	case nil:
		return nil, nil
	case v4.ByGenesis:
		return ByGenesis(n), nil
	case v4.ByFork:
		return ByFork{BlockNumber: n.BlockNumber, BlockHash: n.BlockHash}, nil
	case v4.Polkadot:
		return Polkadot{}, nil
	case v4.Kusama:
		return Kusama{}, nil
	case v4.Westend:
		return WestendGenesisHash, nil
	case v4.Rococo:
		return RococoGenesisHash, nil
	case v4.Wococo:
		return nil, fmt.Errorf("%w: Wococo", ErrRetiredNetwork)
	case v4.Ethereum:
		return Ethereum{ChainID: n.ChainID}, nil
	case v4.BitcoinCore:
		return BitcoinCore{}, nil
	case v4.BitcoinCash:
		return BitcoinCash{}, nil
	case v4.PolkadotBulletin:
		return PolkadotBulletin{}, nil
	default:
		return nil, fmt.Errorf("%w: network %T", ErrUnknownVariant, old)
	}
}

// LocationFromV4 converts a v4 location. The parents count is kept as is and
// the interior is migrated all-or-nothing.
func LocationFromV4(old v4.Location) (Location, error) {
	interior, err := JunctionsFromV4(old.Interior)
	if err != nil {
		return Location{}, err
	}

	return Location{Parents: old.Parents, Interior: interior}, nil
}
