package v4

// NetworkId identifies a global consensus system.
type NetworkId interface {
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
	Westend  struct{}
	Rococo   struct{}
	Wococo   struct{}
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
func (Westend) isNetworkId()          {}
func (Rococo) isNetworkId()           {}
func (Wococo) isNetworkId()           {}
func (Ethereum) isNetworkId()         {}
func (BitcoinCore) isNetworkId()      {}
func (BitcoinCash) isNetworkId()      {}
func (PolkadotBulletin) isNetworkId() {}
