// Copyright 2024 The Tanssi Go Authors
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"bytes"
	"fmt"

	"github.com/albertov19/tanssi/lib/common"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// PersistedValidationData is the validation data persisted on the relay chain
// for the parachain's current state. It is supplied by the requester and
// trusted as-is, except for decode validation of ParentHead.
type PersistedValidationData struct {
	// ParentHead is the SCALE encoding of the parachain parent header
	ParentHead []byte
	// RelayParentNumber is the relay chain block number this is in the context of
	RelayParentNumber uint32
	// RelayParentStorageRoot is the relay chain storage root this is in the context of
	RelayParentStorageRoot common.Hash
	// MaxPovSize is the maximum legal size of the proof of validity, in bytes
	MaxPovSize uint32
}

// Encode returns the SCALE encoding of the persisted validation data
func (pvd *PersistedValidationData) Encode() ([]byte, error) {
	var buffer bytes.Buffer
	err := scale.NewEncoder(&buffer).Encode(*pvd)
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// DecodePersistedValidationData decodes the SCALE encoded input into
// persisted validation data
func DecodePersistedValidationData(in []byte) (*PersistedValidationData, error) {
	pvd := new(PersistedValidationData)
	err := scale.NewDecoder(bytes.NewBuffer(in)).Decode(pvd)
	if err != nil {
		return nil, err
	}
	return pvd, nil
}

// PoV is the proof-of-validity payload accompanying a block candidate
type PoV struct {
	BlockData []byte
}

// Size returns the PoV payload size in bytes
func (p *PoV) Size() uint32 {
	return uint32(len(p.BlockData))
}

// Collation is a built parachain block candidate together with everything the
// relay chain validators need to process it
type Collation struct {
	// UpwardMessages sent by the parachain
	UpwardMessages [][]byte
	// HorizontalMessages sent by the parachain
	HorizontalMessages [][]byte
	// NewValidationCode is a new validation code, if any. An update to the
	// validation code should be treated as a hint to the relay chain.
	NewValidationCode []byte
	// HeadData is the SCALE encoding of the candidate block header
	HeadData []byte
	// ProofOfValidity is the size-bounded witness payload for the candidate
	ProofOfValidity PoV
	// ProcessedDownwardMessages is the number of messages processed from the DMQ
	ProcessedDownwardMessages uint32
	// HrmpWatermark is the mark which specifies the block number up to which
	// all inbound HRMP messages are processed
	HrmpWatermark uint32
}

// String returns a short formatted collation string
func (c *Collation) String() string {
	return fmt.Sprintf("head data len=%d pov size=%d upward messages=%d",
		len(c.HeadData), c.ProofOfValidity.Size(), len(c.UpwardMessages))
}

// CollationSecondedSignal is sent back through the result sender once a relay
// chain validator has seconded the collation
type CollationSecondedSignal struct {
	RelayParent common.Hash
	// Statement is the SCALE encoded signed full statement, opaque to the collator
	Statement []byte
}

// CollationResult is delivered through a collation request's completion on success
type CollationResult struct {
	// Collation that was built
	Collation Collation
	// ResultSender is the channel the network layer listens on for the
	// seconded signal, used for downstream backpressure
	ResultSender chan<- CollationSecondedSignal
}

// ParachainInherentData is the parachain-system inherent embedded in every
// parachain block
type ParachainInherentData struct {
	ValidationData PersistedValidationData
	// RelayChainState is the relay chain storage proof backing the validation data
	RelayChainState [][]byte
	// DownwardMessages processed in this block
	DownwardMessages [][]byte
	// HorizontalMessages processed in this block
	HorizontalMessages [][]byte
}
