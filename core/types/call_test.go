package types

import (
	"bytes"
	"testing"

	"github.com/holiman/uint256"
)

func TestNewTransferCallCopiesAmount(t *testing.T) {
	amount := uint256.NewInt(30)
	call := NewTransferCall("bob", amount)

	amount.SetUint64(999)
	if !call.Amount.Eq(uint256.NewInt(30)) {
		t.Fatalf("call amount aliased caller's value: %s", call.Amount.Dec())
	}

	nilCall := NewTransferCall("bob", nil)
	if nilCall.Amount == nil || !nilCall.Amount.IsZero() {
		t.Fatalf("nil amount should normalise to zero")
	}
}

func TestCallTypeString(t *testing.T) {
	tests := []struct {
		callType CallType
		want     string
	}{
		{CallTypeTransfer, "bank.transfer"},
		{CallTypeCreateClaim, "poe.create_claim"},
		{CallTypeRevokeClaim, "poe.revoke_claim"},
		{CallType(0x7f), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.callType.String(); got != tc.want {
			t.Fatalf("CallType(0x%02x): expected %q, got %q", byte(tc.callType), tc.want, got)
		}
	}
}

func TestHeaderHash(t *testing.T) {
	first, err := (&BlockHeader{Height: 1}).Hash()
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	same, err := (&BlockHeader{Height: 1}).Hash()
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	other, err := (&BlockHeader{Height: 2}).Hash()
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if !bytes.Equal(first, same) {
		t.Fatalf("header hash is not deterministic")
	}
	if bytes.Equal(first, other) {
		t.Fatalf("distinct headers hashed identically")
	}
}
