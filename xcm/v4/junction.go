package v4

// Junction is a single hop of an interior path.
type Junction interface {
	isJunction()
}

type (
	// Parachain is a parachain id under the relay chain.
	Parachain uint32
	// AccountId32 is a 32-byte account, optionally qualified by network.
	AccountId32 struct {
		Network NetworkId
		ID      [32]byte
	}
	// AccountIndex64 is an account index, optionally qualified by network.
	AccountIndex64 struct {
		Network NetworkId
		Index   uint64
	}
	// AccountKey20 is a 20-byte account key, optionally qualified by network.
	AccountKey20 struct {
		Network NetworkId
		Key     [20]byte
	}
	PalletInstance uint8
	GeneralIndex   uint64
	// GeneralKey is a key of Length bytes stored left aligned in Data.
	GeneralKey struct {
		Length uint8
		Data   [32]byte
	}
	OnlyChild       struct{}
	GlobalConsensus struct {
		Network NetworkId
	}
)

func (Parachain) isJunction()       {}
func (AccountId32) isJunction()     {}
func (AccountIndex64) isJunction()  {}
func (AccountKey20) isJunction()    {}
func (PalletInstance) isJunction()  {}
func (GeneralIndex) isJunction()    {}
func (GeneralKey) isJunction()      {}
func (OnlyChild) isJunction()       {}
func (GlobalConsensus) isJunction() {}
