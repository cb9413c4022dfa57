package poe

import (
	"encoding/hex"
	"errors"

	"lukechampine.com/blake3"

	"minichain/core/types"
)

var (
	ErrClaimAlreadyExists = errors.New("poe: claim already exists")
	ErrClaimNotFound      = errors.New("poe: claim not found")
	ErrNotClaimOwner      = errors.New("poe: caller does not own claim")
)

// Pallet is the proof-of-existence registry. It maps claimed content to
// the account owning the claim; each content value has at most one
// owner at a time.
type Pallet struct {
	claims map[string]types.AccountID
}

func NewPallet() *Pallet {
	return &Pallet{claims: make(map[string]types.AccountID)}
}

// Owner returns the account owning content and whether a claim exists.
func (p *Pallet) Owner(content string) (types.AccountID, bool) {
	owner, ok := p.claims[content]
	return owner, ok
}

// CreateClaim records caller as the owner of content. Content that
// already has an owner cannot be claimed again until revoked.
func (p *Pallet) CreateClaim(caller types.AccountID, content string) error {
	if _, ok := p.claims[content]; ok {
		return ErrClaimAlreadyExists
	}
	p.claims[content] = caller
	return nil
}

// RevokeClaim removes the claim on content. Only the current owner may
// revoke; the ownership check and the removal happen against the same
// lookup.
func (p *Pallet) RevokeClaim(caller types.AccountID, content string) error {
	owner, ok := p.claims[content]
	if !ok {
		return ErrClaimNotFound
	}
	if owner != caller {
		return ErrNotClaimOwner
	}
	delete(p.claims, content)
	return nil
}

// Claims returns a snapshot of every live claim.
func (p *Pallet) Claims() map[string]types.AccountID {
	out := make(map[string]types.AccountID, len(p.claims))
	for content, owner := range p.claims {
		out[content] = owner
	}
	return out
}

// ContentDigest returns the hex-encoded blake3 digest of a document,
// the conventional content value for file claims.
func ContentDigest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
