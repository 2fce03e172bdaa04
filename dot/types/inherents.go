// Copyright 2024 The Tanssi Go Authors
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

var (
	// Timstap0 is the timestamp inherent key
	Timstap0 = []byte("timstap0")
	// Auraslot is the aura slot inherent key
	Auraslot = []byte("auraslot")
	// Sysi1337 is the parachain-system inherent key
	Sysi1337 = []byte("sysi1337")
)

// InherentsData contains a mapping of inherent keys to values.
// Keys must be 8 bytes, values are a scale-encoded byte array.
type InherentsData struct {
	data map[[8]byte][]byte
}

// NewInherentsData returns InherentsData
func NewInherentsData() *InherentsData {
	return &InherentsData{
		data: make(map[[8]byte][]byte),
	}
}

func (d *InherentsData) String() string {
	str := ""
	for k, v := range d.data {
		str = str + fmt.Sprintf("key=%v\tvalue=%v\n", k, v)
	}
	return str
}

// Len returns the number of inherents that were set
func (d *InherentsData) Len() int {
	return len(d.data)
}

// Has returns true if an inherent was set for the given key
func (d *InherentsData) Has(key []byte) bool {
	kb := [8]byte{}
	copy(kb[:], key)
	_, has := d.data[kb]
	return has
}

// SetInt64Inherent sets an inherent of type uint64
func (d *InherentsData) SetInt64Inherent(key []byte, data uint64) error {
	if len(key) != 8 {
		return errors.New("inherent key must be 8 bytes")
	}

	val := make([]byte, 8)
	binary.LittleEndian.PutUint64(val, data)

	var buffer bytes.Buffer
	err := scale.NewEncoder(&buffer).Encode(val)
	if err != nil {
		return err
	}

	kb := [8]byte{}
	copy(kb[:], key)

	d.data[kb] = buffer.Bytes()
	return nil
}

// SetInherent sets an inherent by scale encoding the given value
func (d *InherentsData) SetInherent(key []byte, value interface{}) error {
	if len(key) != 8 {
		return errors.New("inherent key must be 8 bytes")
	}

	var valueBuffer bytes.Buffer
	err := scale.NewEncoder(&valueBuffer).Encode(value)
	if err != nil {
		return err
	}

	var buffer bytes.Buffer
	err = scale.NewEncoder(&buffer).Encode(valueBuffer.Bytes())
	if err != nil {
		return err
	}

	kb := [8]byte{}
	copy(kb[:], key)

	d.data[kb] = buffer.Bytes()
	return nil
}

// Encode will encode the inherents data as a length-prefixed sequence of
// key-value pairs
func (d *InherentsData) Encode() ([]byte, error) {
	buffer := bytes.Buffer{}
	enc := scale.NewEncoder(&buffer)

	err := enc.EncodeUintCompact(*newCompact(uint64(len(d.data))))
	if err != nil {
		return nil, err
	}

	for k, v := range d.data {
		_, err = buffer.Write(k[:])
		if err != nil {
			return nil, err
		}
		_, err = buffer.Write(v)
		if err != nil {
			return nil, err
		}
	}

	return buffer.Bytes(), nil
}
