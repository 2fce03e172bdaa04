// Copyright 2024 The Tanssi Go Authors
// SPDX-License-Identifier: LGPL-3.0-only

package collator

import (
	"time"

	"github.com/albertov19/tanssi/dot/types"
	"github.com/albertov19/tanssi/lib/crypto"
	"github.com/albertov19/tanssi/lib/keystore"
)

// SlotClaim binds a slot to one authority whose key is held in the local
// keystore. It carries everything a proposer needs to seal the built header.
type SlotClaim struct {
	slot           uint64
	authorityIndex uint32
	keypair        crypto.Keypair
}

// Slot returns the claimed slot number
func (c *SlotClaim) Slot() uint64 {
	return c.slot
}

// AuthorityIndex returns the index of the claimed authority in the authority set
func (c *SlotClaim) AuthorityIndex() uint32 {
	return c.authorityIndex
}

// Author returns the public key of the claimed authority
func (c *SlotClaim) Author() crypto.PublicKey {
	return c.keypair.Public()
}

// Sign signs the given data with the claimed authority key
func (c *SlotClaim) Sign(data []byte) ([]byte, error) {
	return c.keypair.Sign(data)
}

// PreRuntimeDigest returns the aura pre-runtime digest for the claimed slot
func (c *SlotClaim) PreRuntimeDigest() types.DigestItem {
	return types.NewAuraPreRuntimeDigest(c.slot)
}

// claimSlot determines whether the local node is the block author for the
// given slot. The assigned authority is authorities[slot mod len(authorities)];
// if its key is not held locally the result is (nil, nil), meaning the slot
// belongs to someone else. With forceAuthoring the claimer instead claims with
// the first authority in list order whose key is held locally, so the outcome
// stays deterministic for a given key set.
func claimSlot(authorities []types.Authority, slot uint64,
	ks keystore.Keystore, forceAuthoring bool) (*SlotClaim, error) {
	if len(authorities) == 0 {
		return nil, ErrEmptyAuthoritySet
	}

	index := slot % uint64(len(authorities))
	assigned := authorities[index]

	if kp := ks.GetKeypair(assigned.Key); kp != nil {
		return &SlotClaim{
			slot:           slot,
			authorityIndex: uint32(index),
			keypair:        kp,
		}, nil
	}

	if !forceAuthoring {
		return nil, nil
	}

	for i, authority := range authorities {
		if kp := ks.GetKeypair(authority.Key); kp != nil {
			return &SlotClaim{
				slot:           slot,
				authorityIndex: uint32(i),
				keypair:        kp,
			}, nil
		}
	}

	return nil, nil
}

func getSlotStartTime(slot uint64, slotDuration time.Duration) time.Time {
	return time.Unix(0, int64(slot)*slotDuration.Nanoseconds())
}
