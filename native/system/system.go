package system

import (
	"math"

	"minichain/core/types"
)

// Pallet is the chain clock. It tracks the current block number and the
// per-account nonce counters used for extrinsic sequencing.
type Pallet struct {
	blockNumber uint64
	nonces      map[types.AccountID]uint64
}

func NewPallet() *Pallet {
	return &Pallet{nonces: make(map[types.AccountID]uint64)}
}

// BlockNumber returns the current block number.
func (p *Pallet) BlockNumber() uint64 {
	return p.blockNumber
}

// IncrementBlockNumber advances the clock by one. The counter is not
// expected to reach the uint64 ceiling within any realistic chain
// lifetime; hitting it is unrecoverable.
func (p *Pallet) IncrementBlockNumber() {
	if p.blockNumber == math.MaxUint64 {
		panic("system: block number overflow")
	}
	p.blockNumber++
}

// Nonce returns the stored nonce for the account, zero when unseen.
func (p *Pallet) Nonce(who types.AccountID) uint64 {
	return p.nonces[who]
}

// IncrementNonce records one extrinsic submitted by the account. The
// state processor calls this exactly once per extrinsic, before
// routing, whether or not the call succeeds.
func (p *Pallet) IncrementNonce(who types.AccountID) {
	p.nonces[who]++
}

// Nonces returns a snapshot of every recorded nonce.
func (p *Pallet) Nonces() map[types.AccountID]uint64 {
	out := make(map[types.AccountID]uint64, len(p.nonces))
	for who, nonce := range p.nonces {
		out[who] = nonce
	}
	return out
}
