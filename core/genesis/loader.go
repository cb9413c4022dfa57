package genesis

import (
	"fmt"
	"sort"
	"strings"

	"minichain/core/types"
	"minichain/native/bank"
)

// Apply funds the ledger from the spec's allocations, in sorted account
// order so seeding is deterministic. This uses the privileged
// SetBalance path, outside extrinsic dispatch.
func Apply(spec *GenesisSpec, ledger *bank.Pallet) error {
	if spec == nil {
		return fmt.Errorf("genesis: spec must not be nil")
	}
	if ledger == nil {
		return fmt.Errorf("genesis: ledger must not be nil")
	}
	if err := spec.Validate(); err != nil {
		return err
	}

	accounts := make([]string, 0, len(spec.Alloc))
	for account := range spec.Alloc {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)

	for _, account := range accounts {
		amount, err := parseAmount(spec.Alloc[account])
		if err != nil {
			return fmt.Errorf("genesis: allocation for %q: %w", account, err)
		}
		ledger.SetBalance(types.AccountID(strings.TrimSpace(account)), amount)
	}
	return nil
}
