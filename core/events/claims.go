package events

import "minichain/core/types"

const (
	// TypeClaimCreated is emitted when content is claimed.
	TypeClaimCreated = "poe.claim_created"
	// TypeClaimRevoked is emitted when a claim is released by its owner.
	TypeClaimRevoked = "poe.claim_revoked"
)

type ClaimCreated struct {
	Owner   types.AccountID
	Content string
}

func (ClaimCreated) EventType() string { return TypeClaimCreated }

func (e ClaimCreated) Attributes() map[string]string {
	return map[string]string{
		"owner":   string(e.Owner),
		"content": e.Content,
	}
}

type ClaimRevoked struct {
	Owner   types.AccountID
	Content string
}

func (ClaimRevoked) EventType() string { return TypeClaimRevoked }

func (e ClaimRevoked) Attributes() map[string]string {
	return map[string]string{
		"owner":   string(e.Owner),
		"content": e.Content,
	}
}
