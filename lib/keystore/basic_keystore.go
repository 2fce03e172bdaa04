// Copyright 2024 The Tanssi Go Authors
// SPDX-License-Identifier: LGPL-3.0-only

package keystore

import (
	"fmt"
	"sync"

	"github.com/albertov19/tanssi/lib/crypto"
)

// BasicKeystore holds keypairs of a single cryptographic type
type BasicKeystore struct {
	name Name
	typ  crypto.KeyType

	mutex sync.RWMutex
	keys  map[string]crypto.Keypair // map of public key hex string -> keypair
}

// NewBasicKeystore creates a new BasicKeystore with the given key type
func NewBasicKeystore(name Name, typ crypto.KeyType) *BasicKeystore {
	return &BasicKeystore{
		name: name,
		typ:  typ,
		keys: make(map[string]crypto.Keypair),
	}
}

// Name returns the keystore's name
func (ks *BasicKeystore) Name() Name {
	return ks.name
}

// Type returns the keystore's key type
func (ks *BasicKeystore) Type() crypto.KeyType {
	return ks.typ
}

// Size returns the number of keypairs in the keystore
func (ks *BasicKeystore) Size() int {
	return len(ks.Keypairs())
}

// Insert adds a keypair to the keystore
func (ks *BasicKeystore) Insert(kp KeyPair) error {
	if kp.Type() != ks.typ {
		return fmt.Errorf("%w: expected %s, got %s", ErrKeyTypeNotSupported, ks.typ, kp.Type())
	}

	ks.mutex.Lock()
	defer ks.mutex.Unlock()

	pub := kp.Public()
	ks.keys[pub.Hex()] = kp
	return nil
}

// GetKeypair returns the keypair corresponding to the given public key, or nil if it
// is not in the keystore
func (ks *BasicKeystore) GetKeypair(pub crypto.PublicKey) KeyPair {
	ks.mutex.RLock()
	defer ks.mutex.RUnlock()

	return ks.keys[pub.Hex()]
}

// PublicKeys returns all public keys in the keystore
func (ks *BasicKeystore) PublicKeys() []crypto.PublicKey {
	ks.mutex.RLock()
	defer ks.mutex.RUnlock()

	srkeys := make([]crypto.PublicKey, 0, len(ks.keys))
	for _, key := range ks.keys {
		srkeys = append(srkeys, key.Public())
	}

	return srkeys
}

// Keypairs returns all keypairs in the keystore
func (ks *BasicKeystore) Keypairs() []KeyPair {
	ks.mutex.RLock()
	defer ks.mutex.RUnlock()

	srkeys := make([]KeyPair, 0, len(ks.keys))
	for _, key := range ks.keys {
		srkeys = append(srkeys, key)
	}

	return srkeys
}
