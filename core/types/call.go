package types

import "github.com/holiman/uint256"

// AccountID identifies an account. Any string is a valid account; no
// registry of known accounts exists.
type AccountID string

// CallType names the pallet operation an extrinsic invokes.
type CallType byte

const (
	CallTypeTransfer    CallType = 0x01 // bank: move funds between accounts
	CallTypeCreateClaim CallType = 0x02 // poe: claim ownership of content
	CallTypeRevokeClaim CallType = 0x03 // poe: release an owned claim
)

func (t CallType) String() string {
	switch t {
	case CallTypeTransfer:
		return "bank.transfer"
	case CallTypeCreateClaim:
		return "poe.create_claim"
	case CallTypeRevokeClaim:
		return "poe.revoke_claim"
	default:
		return "unknown"
	}
}

// Call names one pallet operation together with its arguments. The set
// of call types is closed: routing happens through an exhaustive switch
// in the state processor, and adding an operation means adding a
// constant here and an arm there.
type Call struct {
	Type    CallType
	To      AccountID    // transfer recipient
	Amount  *uint256.Int // transfer amount
	Content string       // claimed content
}

// NewTransferCall builds a bank transfer call. The amount is copied so
// later mutation by the caller cannot alias runtime state.
func NewTransferCall(to AccountID, amount *uint256.Int) Call {
	copied := new(uint256.Int)
	if amount != nil {
		copied.Set(amount)
	}
	return Call{Type: CallTypeTransfer, To: to, Amount: copied}
}

// NewCreateClaimCall builds a proof-of-existence claim creation call.
func NewCreateClaimCall(content string) Call {
	return Call{Type: CallTypeCreateClaim, Content: content}
}

// NewRevokeClaimCall builds a proof-of-existence claim revocation call.
func NewRevokeClaimCall(content string) Call {
	return Call{Type: CallTypeRevokeClaim, Content: content}
}

// Extrinsic pairs the submitting account with the call it submits.
type Extrinsic struct {
	Caller AccountID
	Call   Call
}
