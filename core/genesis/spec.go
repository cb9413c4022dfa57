package genesis

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/holiman/uint256"
)

// GenesisSpec describes the pre-dispatch state of a chain: the balances
// funded before the first block executes.
type GenesisSpec struct {
	ChainName string            `json:"chainName,omitempty"`
	Alloc     map[string]string `json:"alloc"` // account -> decimal amount
}

// LoadSpec reads and validates a genesis spec from a JSON file.
func LoadSpec(path string) (*GenesisSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("genesis: read spec: %w", err)
	}
	spec := &GenesisSpec{}
	if err := json.Unmarshal(raw, spec); err != nil {
		return nil, fmt.Errorf("genesis: parse spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

// Validate checks every allocation names a non-empty account and a
// decimal amount within the balance range.
func (s *GenesisSpec) Validate() error {
	if s == nil {
		return fmt.Errorf("genesis: spec must not be nil")
	}
	seen := make(map[string]struct{}, len(s.Alloc))
	for account, amount := range s.Alloc {
		trimmed := strings.TrimSpace(account)
		if trimmed == "" {
			return fmt.Errorf("genesis: allocation with empty account")
		}
		if _, ok := seen[trimmed]; ok {
			return fmt.Errorf("genesis: duplicate allocation for %q", trimmed)
		}
		seen[trimmed] = struct{}{}
		if _, err := parseAmount(amount); err != nil {
			return fmt.Errorf("genesis: allocation for %q: %w", trimmed, err)
		}
	}
	return nil
}

func parseAmount(amount string) (*uint256.Int, error) {
	trimmed := strings.TrimSpace(amount)
	if trimmed == "" {
		return nil, fmt.Errorf("amount required")
	}
	value, err := uint256.FromDecimal(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", trimmed, err)
	}
	return value, nil
}
