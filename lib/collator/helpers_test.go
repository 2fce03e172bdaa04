// Copyright 2024 The Tanssi Go Authors
// SPDX-License-Identifier: LGPL-3.0-only

package collator

import (
	"testing"
	"time"

	"github.com/albertov19/tanssi/dot/types"
	"github.com/albertov19/tanssi/lib/common"
	"github.com/albertov19/tanssi/lib/crypto"
	"github.com/albertov19/tanssi/lib/keystore"

	log "github.com/ChainSafe/log15"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

const testMaxPovSize uint32 = 4096

var testRelayParent = common.MustHexToHash(
	"0x8550326cee1e0e9b52cc1fafa8cdeb2a0e17ec797cef795b2e870cdd02152f63")

type testCollaborators struct {
	relayClient     *MockRelayChainClient
	authorities     *MockAuthorityRetriever
	inherentFactory *MockInherentDataProviderFactory
	providers       *MockInherentDataProviders
	proposer        *MockProposer
	collatorService *MockCollatorService
}

func newTestService(t *testing.T, ctrl *gomock.Controller,
	requests <-chan *CollationRequest, ks keystore.Keystore,
	forceAuthoring bool) (*Service, *testCollaborators) {
	t.Helper()

	mocks := &testCollaborators{
		relayClient:     NewMockRelayChainClient(ctrl),
		authorities:     NewMockAuthorityRetriever(ctrl),
		inherentFactory: NewMockInherentDataProviderFactory(ctrl),
		providers:       NewMockInherentDataProviders(ctrl),
		proposer:        NewMockProposer(ctrl),
		collatorService: NewMockCollatorService(ctrl),
	}

	service, err := NewService(&ServiceConfig{
		LogLvl:              log.LvlError,
		CollationRequests:   requests,
		RelayChainClient:    mocks.relayClient,
		AuthorityRetriever:  mocks.authorities,
		InherentDataFactory: mocks.inherentFactory,
		Proposer:            mocks.proposer,
		CollatorService:     mocks.collatorService,
		Keystore:            ks,
		ForceAuthoring:      forceAuthoring,
	})
	require.NoError(t, err)

	return service, mocks
}

// newTestKeystore returns an aura keystore holding only Alice's key,
// alongside the full test keyring
func newTestKeystore(t *testing.T) (keystore.Keystore, *keystore.Sr25519Keyring) {
	t.Helper()

	kr, err := keystore.NewSr25519Keyring()
	require.NoError(t, err)

	ks := keystore.NewBasicKeystore(keystore.AuraName, crypto.Sr25519Type)
	err = ks.Insert(kr.Alice())
	require.NoError(t, err)

	return ks, kr
}

func newTestParentHeader(t *testing.T) *types.Header {
	t.Helper()

	parentHash := common.MustHexToHash(
		"0x3b1a31500a3c28f3744ecb48bb56e2bd27d85a0291f7fcb4c4f2d792ff3a321b")
	stateRoot := common.MustHexToHash(
		"0x2747ab7c0dc38b7f2afba82bd5e2d6acef8c31e09800f660b75ec84a7005099f")
	extrinsicsRoot := common.MustHexToHash(
		"0x03170a2e7597b7b7e3d84c05391d139a62b157e78786d8c082f29dcf4c111314")

	return types.NewHeader(parentHash, stateRoot, extrinsicsRoot, 10, types.Digest{})
}

func newTestRequest(t *testing.T, parent *types.Header) *CollationRequest {
	t.Helper()

	return NewCollationRequest(testRelayParent, types.PersistedValidationData{
		ParentHead:        parent.MustEncode(),
		RelayParentNumber: 128,
		MaxPovSize:        testMaxPovSize,
	})
}

func newTestProposal(t *testing.T, parent *types.Header, povSize uint32) *Proposal {
	t.Helper()

	header := types.NewHeader(parent.Hash(), parent.StateRoot,
		parent.ExtrinsicsRoot, parent.Number+1, types.Digest{})

	// one padding extrinsic so the encoded block carries at least povSize bytes
	block := types.NewBlock(*header, types.Body{make(types.Extrinsic, int(povSize))})
	blockData, err := block.Encode()
	require.NoError(t, err)

	return &Proposal{
		Collation: types.Collation{
			HeadData:        header.MustEncode(),
			ProofOfValidity: types.PoV{BlockData: blockData},
			HrmpWatermark:   128,
		},
		ProofSize: 256,
		PostHash:  header.Hash(),
	}
}

func requireNotCompleted(t *testing.T, request *CollationRequest) {
	t.Helper()

	select {
	case result, ok := <-request.Result():
		t.Fatalf("request unexpectedly completed: result=%v closed=%v", result, !ok)
	default:
	}
}

func requireCompletedWith(t *testing.T, request *CollationRequest,
	timeout time.Duration) *types.CollationResult {
	t.Helper()

	select {
	case result := <-request.Result():
		return result
	case <-time.After(timeout):
		t.Fatal("timeout waiting for request completion")
		return nil
	}
}
