package v5

import "fmt"

// NetworkId identifies a global consensus system. Every NetworkId converts
// into a GlobalConsensus junction.
type NetworkId interface {
	IntoJunction

	isNetworkId()
}

type (
	// ByGenesis identifies a network by its genesis block hash.
	ByGenesis [32]byte
	// ByFork identifies a network forked from another one at a given block.
	ByFork struct {
		BlockNumber uint64
		BlockHash   [32]byte
	}
	Polkadot struct{}
	Kusama   struct{}
	// Ethereum is an EVM chain identified by its chain id.
	Ethereum struct {
		ChainID uint64
	}
	BitcoinCore      struct{}
	BitcoinCash      struct{}
	PolkadotBulletin struct{}
)

func (ByGenesis) isNetworkId()        {}
func (ByFork) isNetworkId()           {}
func (Polkadot) isNetworkId()         {}
func (Kusama) isNetworkId()           {}
func (Ethereum) isNetworkId()         {}
func (BitcoinCore) isNetworkId()      {}
func (BitcoinCash) isNetworkId()      {}
func (PolkadotBulletin) isNetworkId() {}

func (n ByGenesis) IntoJunction() Junction        { return GlobalConsensus{Network: n} }
func (n ByFork) IntoJunction() Junction           { return GlobalConsensus{Network: n} }
func (n Polkadot) IntoJunction() Junction         { return GlobalConsensus{Network: n} }
func (n Kusama) IntoJunction() Junction           { return GlobalConsensus{Network: n} }
func (n Ethereum) IntoJunction() Junction         { return GlobalConsensus{Network: n} }
func (n BitcoinCore) IntoJunction() Junction      { return GlobalConsensus{Network: n} }
func (n BitcoinCash) IntoJunction() Junction      { return GlobalConsensus{Network: n} }
func (n PolkadotBulletin) IntoJunction() Junction { return GlobalConsensus{Network: n} }

func (Polkadot) String() string         { return "Polkadot" }
func (Kusama) String() string           { return "Kusama" }
func (n Ethereum) String() string       { return fmt.Sprintf("Ethereum(%d)", n.ChainID) }
func (BitcoinCore) String() string      { return "BitcoinCore" }
func (BitcoinCash) String() string      { return "BitcoinCash" }
func (PolkadotBulletin) String() string { return "PolkadotBulletin" }

func (n ByGenesis) String() string {
	return fmt.Sprintf("ByGenesis(%x)", [32]byte(n))
}

func (n ByFork) String() string {
	return fmt.Sprintf("ByFork(%d, %x)", n.BlockNumber, n.BlockHash)
}

// Genesis hashes of networks that v4 named directly.
var (
	WestendGenesisHash = ByGenesis{
		0xe1, 0x43, 0xf2, 0x38, 0x03, 0xac, 0x50, 0xe8, 0xf6, 0xf8, 0xe6, 0x26, 0x95, 0xd1, 0xce, 0x9e,
		0x4e, 0x1d, 0x68, 0xaa, 0x36, 0xc1, 0xcd, 0x2c, 0xfd, 0x15, 0x34, 0x02, 0x13, 0xf3, 0x42, 0x3e,
	}
	RococoGenesisHash = ByGenesis{
		0x64, 0x08, 0xde, 0x77, 0x37, 0xc5, 0x9c, 0x23, 0x88, 0x90, 0x53, 0x3a, 0xf2, 0x58, 0x96, 0xa2,
		0xc2, 0x06, 0x08, 0xd8, 0xb3, 0x80, 0xbb, 0x01, 0x02, 0x9a, 0xcb, 0x39, 0x27, 0x81, 0x06, 0x3e,
	}
)
