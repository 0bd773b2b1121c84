package v5

import "fmt"

// MaxGeneralKeyLength is the largest key a GeneralKey can hold.
const MaxGeneralKeyLength = 32

// IntoJunction is implemented by every value that converts into a Junction
// without failing.
type IntoJunction interface {
	IntoJunction() Junction
}

// Junction is a single hop of an interior path.
type Junction interface {
	IntoJunction
	fmt.Stringer

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

func (j Parachain) IntoJunction() Junction       { return j }
func (j AccountId32) IntoJunction() Junction     { return j }
func (j AccountIndex64) IntoJunction() Junction  { return j }
func (j AccountKey20) IntoJunction() Junction    { return j }
func (j PalletInstance) IntoJunction() Junction  { return j }
func (j GeneralIndex) IntoJunction() Junction    { return j }
func (j GeneralKey) IntoJunction() Junction      { return j }
func (j OnlyChild) IntoJunction() Junction       { return j }
func (j GlobalConsensus) IntoJunction() Junction { return j }

func (j Parachain) String() string      { return fmt.Sprintf("Parachain(%d)", uint32(j)) }
func (j PalletInstance) String() string { return fmt.Sprintf("PalletInstance(%d)", uint8(j)) }
func (j GeneralIndex) String() string   { return fmt.Sprintf("GeneralIndex(%d)", uint64(j)) }
func (OnlyChild) String() string        { return "OnlyChild" }

func (j AccountId32) String() string {
	return fmt.Sprintf("AccountId32(%s%x)", networkPrefix(j.Network), j.ID)
}

func (j AccountIndex64) String() string {
	return fmt.Sprintf("AccountIndex64(%s%d)", networkPrefix(j.Network), j.Index)
}

func (j AccountKey20) String() string {
	return fmt.Sprintf("AccountKey20(%s%x)", networkPrefix(j.Network), j.Key)
}

func (j GeneralKey) String() string {
	n := min(int(j.Length), MaxGeneralKeyLength)
	return fmt.Sprintf("GeneralKey(%x)", j.Data[:n])
}

func (j GlobalConsensus) String() string {
	return fmt.Sprintf("GlobalConsensus(%v)", j.Network)
}

func networkPrefix(n NetworkId) string {
	if n == nil {
		return ""
	}

	return fmt.Sprint(n) + ", "
}
