// Copyright 2024 The Tanssi Go Authors
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"encoding/binary"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// ConsensusEngineID is a 4-byte identifier identifying the consensus engine
type ConsensusEngineID [4]byte

// ToBytes turns ConsensusEngineID to a byte array
func (h ConsensusEngineID) ToBytes() []byte {
	b := [4]byte(h)
	return b[:]
}

// AuraEngineID is the hard-coded aura ID
var AuraEngineID = ConsensusEngineID{'a', 'u', 'r', 'a'}

// NimbusEngineID is the hard-coded nimbus ID used by container chains
var NimbusEngineID = ConsensusEngineID{'n', 'm', 'b', 's'}

// Digest item types, matching the substrate digest item indices
const (
	ConsensusDigestType  = uint8(4)
	SealDigestType       = uint8(5)
	PreRuntimeDigestType = uint8(6)
)

// DigestItem is one entry of a block header digest
type DigestItem struct {
	Type              uint8
	ConsensusEngineID ConsensusEngineID
	Data              []byte
}

// String returns the digest item as a formatted string
func (d DigestItem) String() string {
	return fmt.Sprintf("DigestItem Type=%d ConsensusEngineID=%s Data=0x%x",
		d.Type, d.ConsensusEngineID.ToBytes(), d.Data)
}

// NewPreRuntimeDigest returns a new pre-runtime digest item for the given engine
func NewPreRuntimeDigest(engine ConsensusEngineID, data []byte) DigestItem {
	return DigestItem{
		Type:              PreRuntimeDigestType,
		ConsensusEngineID: engine,
		Data:              data,
	}
}

// NewSealDigest returns a new seal digest item for the given engine
func NewSealDigest(engine ConsensusEngineID, data []byte) DigestItem {
	return DigestItem{
		Type:              SealDigestType,
		ConsensusEngineID: engine,
		Data:              data,
	}
}

// NewConsensusDigest returns a new consensus digest item for the given engine
func NewConsensusDigest(engine ConsensusEngineID, data []byte) DigestItem {
	return DigestItem{
		Type:              ConsensusDigestType,
		ConsensusEngineID: engine,
		Data:              data,
	}
}

// NewAuraPreRuntimeDigest returns the aura pre-runtime digest carrying the slot number
func NewAuraPreRuntimeDigest(slot uint64) DigestItem {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint64(data, slot)
	return NewPreRuntimeDigest(AuraEngineID, data)
}

// Digest is the ordered list of digest items of a block header
type Digest []DigestItem

func (d Digest) encode(enc *scale.Encoder) error {
	err := enc.EncodeUintCompact(*newCompact(uint64(len(d))))
	if err != nil {
		return err
	}

	for _, item := range d {
		err = enc.PushByte(item.Type)
		if err != nil {
			return err
		}

		err = enc.Encode(item.ConsensusEngineID)
		if err != nil {
			return err
		}

		err = enc.Encode(item.Data)
		if err != nil {
			return err
		}
	}

	return nil
}

func decodeDigest(dec *scale.Decoder) (Digest, error) {
	length, err := dec.DecodeUintCompact()
	if err != nil {
		return nil, err
	}

	// the item count is untrusted input; decode item by item rather than
	// allocating for the claimed count up front
	digest := Digest{}
	for i := uint64(0); i < length.Uint64(); i++ {
		var item DigestItem

		item.Type, err = dec.ReadOneByte()
		if err != nil {
			return nil, err
		}

		err = dec.Decode(&item.ConsensusEngineID)
		if err != nil {
			return nil, err
		}

		err = dec.Decode(&item.Data)
		if err != nil {
			return nil, err
		}

		digest = append(digest, item)
	}

	return digest, nil
}
