// Copyright 2024 The Tanssi Go Authors
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/albertov19/tanssi/lib/common"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Header is a parachain block header
type Header struct {
	ParentHash     common.Hash
	Number         uint
	StateRoot      common.Hash
	ExtrinsicsRoot common.Hash
	Digest         Digest
	hash           common.Hash
}

// NewHeader creates a new block header and sets its hash field
func NewHeader(parentHash, stateRoot, extrinsicsRoot common.Hash,
	number uint, digest Digest) *Header {
	bh := &Header{
		ParentHash:     parentHash,
		Number:         number,
		StateRoot:      stateRoot,
		ExtrinsicsRoot: extrinsicsRoot,
		Digest:         digest,
	}

	bh.Hash()
	return bh
}

// NewEmptyHeader returns a new header with all zero values
func NewEmptyHeader() *Header {
	return &Header{
		Digest: Digest{},
	}
}

// DeepCopy returns a deep copy of the header to prevent side effects down the road
func (bh *Header) DeepCopy() *Header {
	cp := NewEmptyHeader()
	copy(cp.ParentHash[:], bh.ParentHash[:])
	copy(cp.StateRoot[:], bh.StateRoot[:])
	copy(cp.ExtrinsicsRoot[:], bh.ExtrinsicsRoot[:])
	cp.Number = bh.Number

	if len(bh.Digest) > 0 {
		cp.Digest = make(Digest, len(bh.Digest))
		copy(cp.Digest, bh.Digest)
	}

	return cp
}

// String returns the formatted header as a string
func (bh *Header) String() string {
	return fmt.Sprintf("ParentHash=%s Number=%d StateRoot=%s ExtrinsicsRoot=%s Digest=%v Hash=%s",
		bh.ParentHash, bh.Number, bh.StateRoot, bh.ExtrinsicsRoot, bh.Digest, bh.Hash())
}

// Hash returns the hash of the block header.
// If the internal hash field is not set, it hashes the header and caches the result.
// If hashing the header errors, this will panic.
func (bh *Header) Hash() common.Hash {
	if bh.hash == [32]byte{} {
		enc, err := bh.Encode()
		if err != nil {
			panic(err)
		}

		hash, err := common.Blake2bHash(enc)
		if err != nil {
			panic(err)
		}

		bh.hash = hash
	}

	return bh.hash
}

// Encode returns the SCALE encoding of the header
func (bh *Header) Encode() ([]byte, error) {
	var buffer bytes.Buffer
	enc := scale.NewEncoder(&buffer)

	err := enc.Encode(bh.ParentHash)
	if err != nil {
		return nil, err
	}

	err = enc.EncodeUintCompact(*newCompact(uint64(bh.Number)))
	if err != nil {
		return nil, err
	}

	err = enc.Encode(bh.StateRoot)
	if err != nil {
		return nil, err
	}

	err = enc.Encode(bh.ExtrinsicsRoot)
	if err != nil {
		return nil, err
	}

	err = bh.Digest.encode(enc)
	if err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

// MustEncode returns the SCALE encoded header and panics if it fails to encode
func (bh *Header) MustEncode() []byte {
	enc, err := bh.Encode()
	if err != nil {
		panic(err)
	}
	return enc
}

// DecodeHeader decodes the SCALE encoded input into a header
func DecodeHeader(in []byte) (*Header, error) {
	buf := bytes.NewBuffer(in)
	dec := scale.NewDecoder(buf)

	bh := NewEmptyHeader()
	err := dec.Decode(&bh.ParentHash)
	if err != nil {
		return nil, err
	}

	number, err := dec.DecodeUintCompact()
	if err != nil {
		return nil, err
	}
	bh.Number = uint(number.Uint64())

	err = dec.Decode(&bh.StateRoot)
	if err != nil {
		return nil, err
	}

	err = dec.Decode(&bh.ExtrinsicsRoot)
	if err != nil {
		return nil, err
	}

	bh.Digest, err = decodeDigest(dec)
	if err != nil {
		return nil, err
	}

	return bh, nil
}

func newCompact(v uint64) *big.Int {
	return new(big.Int).SetUint64(v)
}
