// Copyright 2024 The Tanssi Go Authors
// SPDX-License-Identifier: LGPL-3.0-only

package collator

import (
	"context"
	"time"

	"github.com/albertov19/tanssi/dot/types"
	"github.com/albertov19/tanssi/lib/common"
)

// RelayChainClient reads relay chain state on behalf of the collator
type RelayChainClient interface {
	// Header returns the relay chain header with the given hash.
	// It returns (nil, nil) if the relay chain does not know the hash.
	Header(ctx context.Context, hash common.Hash) (*types.Header, error)
}

// AuthorityRetriever returns the ordered authority set eligible to author the
// next block for the given (parent, relay parent) context. The set is valid
// for one context only and must not be cached across requests.
type AuthorityRetriever interface {
	RetrieveAuthorities(ctx context.Context, parentHash common.Hash,
		relayParentHash common.Hash,
		validationData types.PersistedValidationData) ([]types.Authority, error)
}

// InherentDataProviders supplies the inherent data a block must embed for one
// (parent, relay parent) context
type InherentDataProviders interface {
	// Slot returns the slot the block will be authored in
	Slot() uint64
	// CreateInherentData returns the inherent data of all providers
	CreateInherentData() (*types.InherentsData, error)
}

// InherentDataProviderFactory creates the inherent data providers for one
// collation request
type InherentDataProviderFactory interface {
	Create(ctx context.Context, parentHash common.Hash, relayParent common.Hash,
		validationData types.PersistedValidationData) (InherentDataProviders, error)
}

// Proposal is the outcome of building one parachain block
type Proposal struct {
	// Collation holds the built block and its proof of validity
	Collation types.Collation
	// ProofSize is the storage proof size of the built block in bytes
	ProofSize uint64
	// PostHash is the hash of the built block's sealed header
	PostHash common.Hash
}

// Proposer builds a parachain block on top of the given parent. The proposer
// owns deadline enforcement: it must stop its own work before maxDuration
// elapses, and the collation payload must not exceed maxBlockSize bytes.
type Proposer interface {
	Propose(ctx context.Context, parent *types.Header, claim *SlotClaim,
		inherentData *types.InherentsData, maxDuration time.Duration,
		maxBlockSize uint32) (*Proposal, error)
}

// CollatorService is the node's collation handling layer
type CollatorService interface {
	// CheckBlockStatus returns true if the block can be built upon
	CheckBlockStatus(hash common.Hash, header *types.Header) bool
	// AnnounceWithBarrier announces the built block to the network and
	// returns the sender the network layer fires once the collation is
	// seconded by a validator
	AnnounceWithBarrier(blockHash common.Hash) chan<- types.CollationSecondedSignal
}
