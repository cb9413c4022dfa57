package events

import (
	"github.com/holiman/uint256"

	"minichain/core/types"
)

// TypeTransfer is emitted for successful balance movements.
const TypeTransfer = "bank.transfer"

type Transfer struct {
	From   types.AccountID
	To     types.AccountID
	Amount *uint256.Int
}

func (Transfer) EventType() string { return TypeTransfer }

func (e Transfer) Attributes() map[string]string {
	amount := "0"
	if e.Amount != nil {
		amount = e.Amount.Dec()
	}
	return map[string]string{
		"from":   string(e.From),
		"to":     string(e.To),
		"amount": amount,
	}
}
