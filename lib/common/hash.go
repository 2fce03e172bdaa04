// Copyright 2024 The Tanssi Go Authors
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const (
	// HashLength is the expected length of the common.Hash type
	HashLength = 32
)

// EmptyHash is the all-zero hash
var EmptyHash = Hash{}

var errHexPrefixMissing = errors.New("could not byteify non 0x prefixed string")

// Hash is a 32-byte blake2b hash
type Hash [HashLength]byte

// NewHash casts a byte slice to a Hash.
// If the input is longer than 32 bytes, it takes the first 32 bytes.
func NewHash(in []byte) (res Hash) {
	res = [HashLength]byte{}
	copy(res[:], in)
	return res
}

// ToBytes turns a hash into a byte slice
func (h Hash) ToBytes() []byte {
	b := [HashLength]byte(h)
	return b[:]
}

// IsEmpty returns true if the hash is all-zero
func (h Hash) IsEmpty() bool {
	return h == EmptyHash
}

// String returns the hex string for the hash
func (h Hash) String() string {
	return fmt.Sprintf("0x%x", h[:])
}

// Short returns the first 8 bytes of the hash as a hex string
func (h Hash) Short() string {
	const nBytes = 8
	return fmt.Sprintf("0x%x...", h[:nBytes])
}

// SetBytes sets the hash to the value of b.
// If b is larger than len(h), b will be cropped from the left.
func (h *Hash) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-HashLength:]
	}

	copy(h[HashLength-len(b):], b)
}

// HexToBytes turns a 0x prefixed hex string into a byte slice
func HexToBytes(in string) ([]byte, error) {
	if len(in) < 2 {
		return nil, errors.New("invalid string")
	}

	if !strings.HasPrefix(in, "0x") {
		return nil, errHexPrefixMissing
	}

	// Ensure we have an even length, otherwise hex.DecodeString will fail and return zero hash
	if len(in)%2 != 0 {
		return nil, errors.New("cannot decode a odd length string")
	}

	in = strings.TrimPrefix(in, "0x")
	return hex.DecodeString(in)
}

// MustHexToBytes turns a 0x prefixed hex string into a byte slice.
// It panics if it fails to decode the string.
func MustHexToBytes(in string) []byte {
	out, err := HexToBytes(in)
	if err != nil {
		panic(err)
	}

	return out
}

// BytesToHex turns a byte slice into a 0x prefixed hex string
func BytesToHex(in []byte) string {
	s := hex.EncodeToString(in)
	return "0x" + s
}

// HexToHash turns a 0x prefixed hex string into a Hash
func HexToHash(in string) (Hash, error) {
	if !strings.HasPrefix(in, "0x") {
		return [HashLength]byte{}, errHexPrefixMissing
	}

	in = strings.TrimPrefix(in, "0x")
	out, err := hex.DecodeString(in)
	if err != nil {
		return [HashLength]byte{}, err
	}

	if len(out) != HashLength {
		return [HashLength]byte{}, errors.New("invalid hash length")
	}

	var buf = [HashLength]byte{}
	copy(buf[:], out)
	return buf, nil
}

// MustHexToHash turns a 0x prefixed hex string into a Hash.
// It panics if it fails to turn the string into a Hash
func MustHexToHash(in string) Hash {
	hash, err := HexToHash(in)
	if err != nil {
		panic(err)
	}

	return hash
}
