package bank

import (
	"errors"

	"github.com/holiman/uint256"

	"minichain/core/types"
)

var (
	ErrInsufficientBalance = errors.New("bank: insufficient balance")
	ErrBalanceOverflow     = errors.New("bank: balance overflow")
)

// Pallet holds the account ledger. Accounts absent from the map hold a
// zero balance; entries are only materialised by explicit writes.
type Pallet struct {
	balances map[types.AccountID]*uint256.Int
}

func NewPallet() *Pallet {
	return &Pallet{balances: make(map[types.AccountID]*uint256.Int)}
}

// BalanceOf returns a copy of the stored balance, zero when unseen.
func (p *Pallet) BalanceOf(who types.AccountID) *uint256.Int {
	if balance, ok := p.balances[who]; ok {
		return new(uint256.Int).Set(balance)
	}
	return new(uint256.Int)
}

// SetBalance writes the balance unconditionally. This is the privileged
// genesis path; it is never reachable through extrinsic dispatch.
func (p *Pallet) SetBalance(who types.AccountID, amount *uint256.Int) {
	stored := new(uint256.Int)
	if amount != nil {
		stored.Set(amount)
	}
	p.balances[who] = stored
}

// Transfer moves amount from caller to to. Both the debit and the
// credit are checked against the pre-transfer balances before either
// account is written, so a failed transfer leaves the ledger untouched.
func (p *Pallet) Transfer(caller, to types.AccountID, amount *uint256.Int) error {
	if amount == nil {
		amount = new(uint256.Int)
	}
	callerBalance := p.BalanceOf(caller)
	toBalance := p.BalanceOf(to)

	newCallerBalance, underflow := new(uint256.Int).SubOverflow(callerBalance, amount)
	if underflow {
		return ErrInsufficientBalance
	}
	newToBalance, overflow := new(uint256.Int).AddOverflow(toBalance, amount)
	if overflow {
		return ErrBalanceOverflow
	}

	if caller == to {
		// Both checks ran against the pre-transfer balance; the net
		// movement is zero.
		return nil
	}

	p.balances[caller] = newCallerBalance
	p.balances[to] = newToBalance
	return nil
}

// Balances returns a snapshot of every materialised balance.
func (p *Pallet) Balances() map[types.AccountID]*uint256.Int {
	out := make(map[types.AccountID]*uint256.Int, len(p.balances))
	for who, balance := range p.balances {
		out[who] = new(uint256.Int).Set(balance)
	}
	return out
}
