package types

import (
	"crypto/sha256"
	"encoding/json"
)

// BlockHeader carries the metadata for a block. Height is the block
// number the chain clock advances to when the block executes.
type BlockHeader struct {
	Height uint64 `json:"height"`
}

// Block is an ordered batch of extrinsics executed as one unit. Blocks
// are inputs to the runtime; it reads them once and never mutates them.
type Block struct {
	Header     *BlockHeader
	Extrinsics []Extrinsic
}

// NewBlock creates a new block from a header and a set of extrinsics.
func NewBlock(header *BlockHeader, extrinsics []Extrinsic) *Block {
	return &Block{
		Header:     header,
		Extrinsics: extrinsics,
	}
}

// Hash calculates and returns the SHA-256 hash of the block header.
func (h *BlockHeader) Hash() ([]byte, error) {
	b, err := json.Marshal(h)
	if err != nil {
		return nil, err
	}
	hash := sha256.Sum256(b)
	return hash[:], nil
}
