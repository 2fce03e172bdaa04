// Copyright 2024 The Tanssi Go Authors
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"github.com/albertov19/tanssi/lib/crypto"
	"github.com/albertov19/tanssi/lib/crypto/sr25519"
)

// AuthorityID is the raw public key of an authority eligible to author blocks
type AuthorityID [sr25519.PublicKeyLength]byte

// Authority represents one member of the ordered authoring set
type Authority struct {
	Key crypto.PublicKey
}

// FromRawSr25519 sets the Authority given an AuthorityID. It converts the byte
// representation of the authority public key into a sr25519.PublicKey.
func (a *Authority) FromRawSr25519(id AuthorityID) error {
	key, err := sr25519.NewPublicKey(id[:])
	if err != nil {
		return err
	}

	a.Key = key
	return nil
}

// ToRaw returns the raw public key of the authority
func (a *Authority) ToRaw() AuthorityID {
	raw := AuthorityID{}
	copy(raw[:], a.Key.Encode())
	return raw
}

// AuthorityIDsToAuthorities turns a slice of AuthorityID into a slice of Authority
func AuthorityIDsToAuthorities(ids []AuthorityID) ([]Authority, error) {
	authorities := make([]Authority, len(ids))
	for i, r := range ids {
		authorities[i] = Authority{}
		err := authorities[i].FromRawSr25519(r)
		if err != nil {
			return nil, err
		}
	}

	return authorities, nil
}
