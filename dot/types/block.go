// Copyright 2024 The Tanssi Go Authors
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"bytes"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Extrinsic is a generic transaction whose format is verified in the runtime
type Extrinsic []byte

// Body is the extrinsics inside a state block
type Body []Extrinsic

// NewBody returns a Body from an Extrinsic array
func NewBody(e []Extrinsic) *Body {
	body := Body(e)
	return &body
}

// BytesArrayToExtrinsics converts a byte array to an array of extrinsics
func BytesArrayToExtrinsics(b [][]byte) []Extrinsic {
	exts := make([]Extrinsic, len(b))
	for i, be := range b {
		exts[i] = be
	}
	return exts
}

// Block defines a state block
type Block struct {
	Header Header
	Body   Body
}

// NewBlock returns a new Block
func NewBlock(header Header, body Body) Block {
	return Block{
		Header: header,
		Body:   body,
	}
}

// String returns the formatted Block string
func (b *Block) String() string {
	return fmt.Sprintf("header: %v\nbody: %v",
		&b.Header, b.Body)
}

// Encode returns the SCALE encoding of the block
func (b *Block) Encode() ([]byte, error) {
	enc, err := b.Header.Encode()
	if err != nil {
		return nil, err
	}

	var buffer bytes.Buffer
	buffer.Write(enc)

	se := scale.NewEncoder(&buffer)
	err = se.EncodeUintCompact(*newCompact(uint64(len(b.Body))))
	if err != nil {
		return nil, err
	}

	for _, ext := range b.Body {
		err = se.Encode([]byte(ext))
		if err != nil {
			return nil, err
		}
	}

	return buffer.Bytes(), nil
}
