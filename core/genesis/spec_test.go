package genesis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/holiman/uint256"

	"minichain/native/bank"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    *GenesisSpec
		wantErr bool
	}{
		{
			name: "valid",
			spec: &GenesisSpec{Alloc: map[string]string{"alice": "100", "bob": "0"}},
		},
		{
			name: "empty alloc",
			spec: &GenesisSpec{},
		},
		{
			name:    "empty account",
			spec:    &GenesisSpec{Alloc: map[string]string{"  ": "100"}},
			wantErr: true,
		},
		{
			name:    "empty amount",
			spec:    &GenesisSpec{Alloc: map[string]string{"alice": ""}},
			wantErr: true,
		},
		{
			name:    "non-decimal amount",
			spec:    &GenesisSpec{Alloc: map[string]string{"alice": "0x64"}},
			wantErr: true,
		},
		{
			name:    "negative amount",
			spec:    &GenesisSpec{Alloc: map[string]string{"alice": "-1"}},
			wantErr: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.spec.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestLoadSpec(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "genesis.json")
	raw := []byte(`{"chainName":"testnet","alloc":{"alice":"100"}}`)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write spec: %v", err)
	}

	spec, err := LoadSpec(path)
	if err != nil {
		t.Fatalf("load spec: %v", err)
	}
	if spec.ChainName != "testnet" {
		t.Fatalf("chain name: expected testnet, got %q", spec.ChainName)
	}
	if spec.Alloc["alice"] != "100" {
		t.Fatalf("alice allocation: expected 100, got %q", spec.Alloc["alice"])
	}
}

func TestLoadSpecRejectsMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "genesis.json")
	if err := os.WriteFile(path, []byte(`{"alloc":`), 0o644); err != nil {
		t.Fatalf("write spec: %v", err)
	}
	if _, err := LoadSpec(path); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := LoadSpec(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("expected read error")
	}
}

func TestApply(t *testing.T) {
	ledger := bank.NewPallet()
	spec := &GenesisSpec{Alloc: map[string]string{
		"alice": "100",
		"bob":   "42",
	}}
	if err := Apply(spec, ledger); err != nil {
		t.Fatalf("apply genesis: %v", err)
	}
	if got := ledger.BalanceOf("alice"); !got.Eq(uint256.NewInt(100)) {
		t.Fatalf("alice balance: expected 100, got %s", got.Dec())
	}
	if got := ledger.BalanceOf("bob"); !got.Eq(uint256.NewInt(42)) {
		t.Fatalf("bob balance: expected 42, got %s", got.Dec())
	}
	if got := ledger.BalanceOf("charlie"); !got.IsZero() {
		t.Fatalf("charlie balance: expected 0, got %s", got.Dec())
	}
}

func TestApplyRejectsInvalidSpec(t *testing.T) {
	ledger := bank.NewPallet()
	if err := Apply(nil, ledger); err == nil {
		t.Fatalf("expected error for nil spec")
	}
	if err := Apply(&GenesisSpec{}, nil); err == nil {
		t.Fatalf("expected error for nil ledger")
	}
	bad := &GenesisSpec{Alloc: map[string]string{"alice": "not-a-number"}}
	if err := Apply(bad, ledger); err == nil {
		t.Fatalf("expected error for invalid amount")
	}
	if got := ledger.BalanceOf("alice"); !got.IsZero() {
		t.Fatalf("ledger funded from invalid spec: %s", got.Dec())
	}
}
