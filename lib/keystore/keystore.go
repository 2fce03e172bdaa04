// Copyright 2024 The Tanssi Go Authors
// SPDX-License-Identifier: LGPL-3.0-only

package keystore

import (
	"errors"

	"github.com/albertov19/tanssi/lib/crypto"
)

var (
	// ErrInvalidKeystoreName is returned when a keystore name is not recognised
	ErrInvalidKeystoreName = errors.New("invalid keystore name")
	// ErrKeyTypeNotSupported is returned when a keypair's type does not match the keystore's type
	ErrKeyTypeNotSupported = errors.New("given key type is not supported by this keystore")
)

// Name represents a defined keystore name
type Name string

// Keystore names for the key types the collator handles
var (
	AuraName Name = "aura"
	NmbsName Name = "nmbs"
	DumyName Name = "dumy"
)

// KeyPair is an alias for crypto.Keypair
type KeyPair = crypto.Keypair

// Keystore provides key management functionality
type Keystore interface {
	Name() Name
	Type() crypto.KeyType
	Insert(kp KeyPair) error
	Keypairs() []KeyPair
	GetKeypair(pub crypto.PublicKey) KeyPair
	PublicKeys() []crypto.PublicKey
	Size() int
}

// GlobalKeystore defines the various keystores used by the node
type GlobalKeystore struct {
	Aura Keystore
	Nmbs Keystore
	Dumy Keystore
}

// NewGlobalKeystore returns a new GlobalKeystore
func NewGlobalKeystore() *GlobalKeystore {
	return &GlobalKeystore{
		Aura: NewBasicKeystore(AuraName, crypto.Sr25519Type),
		Nmbs: NewBasicKeystore(NmbsName, crypto.Sr25519Type),
		Dumy: NewBasicKeystore(DumyName, crypto.Sr25519Type),
	}
}

// GetKeystore returns a keystore given its name
func (k *GlobalKeystore) GetKeystore(name []byte) (Keystore, error) {
	nameStr := Name(name)
	switch nameStr {
	case AuraName:
		return k.Aura, nil
	case NmbsName:
		return k.Nmbs, nil
	case DumyName:
		return k.Dumy, nil
	default:
		return nil, ErrInvalidKeystoreName
	}
}
